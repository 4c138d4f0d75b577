package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	apperrors "budgetly/internal/errors"
	"budgetly/internal/models"
)

// findOwned loads the entity with the given id and checks that callerID owns
// it. A missing row yields notFound; a row owned by someone else yields
// ErrUnauthorized without exposing any of its content.
func findOwned[T models.Owned](ctx context.Context, db *gorm.DB, id, callerID string, notFound *apperrors.AppError) (*T, error) {
	var entity T
	if err := db.WithContext(ctx).Where("id = ?", id).First(&entity).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if entity.OwnerID() != callerID {
		return nil, apperrors.ErrUnauthorized
	}
	return &entity, nil
}

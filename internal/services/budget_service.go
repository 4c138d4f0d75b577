package services

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	apperrors "budgetly/internal/errors"
	"budgetly/internal/metrics"
	"budgetly/internal/models"
)

// MinBudgetYear is the earliest year a budget may target.
const MinBudgetYear = 2000

// budgetService handles budget-related business logic.
type budgetService struct {
	db *gorm.DB
}

// NewBudgetService creates a new BudgetServicer.
func NewBudgetService(db *gorm.DB) BudgetServicer {
	return &budgetService{db: db}
}

// ListBudgets returns the user's budgets, most recent period first.
func (s *budgetService) ListBudgets(ctx context.Context, userID string, filter BudgetFilter) ([]models.Budget, error) {
	query := s.db.WithContext(ctx).Where("user_id = ?", userID)
	if filter.Month != nil {
		query = query.Where("month = ?", *filter.Month)
	}
	if filter.Year != nil {
		query = query.Where("year = ?", *filter.Year)
	}

	budgets := []models.Budget{}
	if err := query.Order("year DESC").Order("month DESC").Order("category ASC").Find(&budgets).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return budgets, nil
}

// UpsertBudget sets the budget amount for (user, month, year, category),
// creating the row when none exists. The unique index idx_budget_period backs
// the check: an insert that races another one turns into an update, so the
// tuple never has more than one row and the last write wins.
func (s *budgetService) UpsertBudget(
	ctx context.Context,
	userID string,
	month, year int,
	category models.Category,
	amount float64,
) (*models.Budget, error) {
	if category == "" {
		category = models.CategoryTotal
	}
	if err := validateBudget(month, year, category, amount); err != nil {
		return nil, err
	}

	outcome := "updated"
	var budget models.Budget
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		tuple := tx.Where("user_id = ? AND month = ? AND year = ? AND category = ?", userID, month, year, category).
			Session(&gorm.Session{})

		var existing models.Budget
		err := tuple.First(&existing).Error
		switch {
		case err == nil:
			if err := tx.Model(&existing).Update("amount", amount).Error; err != nil {
				return err
			}
		case errors.Is(err, gorm.ErrRecordNotFound):
			outcome = "created"
			created := models.Budget{
				UserID:   userID,
				Month:    month,
				Year:     year,
				Category: category,
				Amount:   amount,
			}
			if err := createBudget(tx, &created); err != nil {
				return err
			}
		default:
			return err
		}

		return tuple.First(&budget).Error
	})
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	metrics.BudgetUpsertsTotal.WithLabelValues(outcome).Inc()
	return &budget, nil
}

// DeleteBudget permanently removes a budget owned by the user.
func (s *budgetService) DeleteBudget(ctx context.Context, userID, budgetID string) error {
	budget, err := findOwned[models.Budget](ctx, s.db, budgetID, userID, apperrors.ErrBudgetNotFound)
	if err != nil {
		return err
	}

	if err := s.db.WithContext(ctx).Delete(budget).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// createBudget inserts b, or overwrites the amount of the row already holding
// its (user, month, year, category) tuple.
func createBudget(tx *gorm.DB, b *models.Budget) error {
	return tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "month"}, {Name: "year"}, {Name: "category"}},
		DoUpdates: clause.AssignmentColumns([]string{"amount", "updated_at"}),
	}).Create(b).Error
}

func validateBudget(month, year int, category models.Category, amount float64) error {
	switch {
	case month < 1 || month > 12:
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "month must be between 1 and 12")
	case year < MinBudgetYear:
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "year must be 2000 or later")
	case amount < 0:
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must not be negative")
	case amount > models.MaxAmount:
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "amount is too large")
	case !category.IsBudgetCategory():
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid budget category")
	}
	return nil
}

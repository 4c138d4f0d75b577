package services

import (
	"context"
	"strings"
	"time"

	"gorm.io/gorm"

	apperrors "budgetly/internal/errors"
	"budgetly/internal/metrics"
	"budgetly/internal/models"
)

// expenseService handles expense-related business logic.
type expenseService struct {
	db  *gorm.DB
	now func() time.Time
}

// NewExpenseService creates a new ExpenseServicer.
func NewExpenseService(db *gorm.DB) ExpenseServicer {
	return &expenseService{db: db, now: time.Now}
}

// CreateExpense records a new expense for the user.
func (s *expenseService) CreateExpense(ctx context.Context, userID string, in CreateExpenseInput) (*models.Expense, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "title is required")
	}
	if in.Amount < 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must not be negative")
	}
	if in.Amount > models.MaxAmount {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount is too large")
	}
	if !in.Category.IsExpenseCategory() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid expense category")
	}

	date := s.now()
	if in.Date != nil {
		date = *in.Date
	}
	// stored in UTC so range comparisons order correctly on every driver
	date = date.UTC()

	expense := &models.Expense{
		UserID:      userID,
		Title:       title,
		Amount:      in.Amount,
		Category:    in.Category,
		Date:        date,
		Description: strings.TrimSpace(in.Description),
	}

	if err := s.db.WithContext(ctx).Create(expense).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	metrics.ExpenseOperationsTotal.WithLabelValues("create").Inc()
	return expense, nil
}

// ListExpenses returns the user's expenses matching the filter, newest first.
func (s *expenseService) ListExpenses(ctx context.Context, userID string, filter ExpenseFilter) ([]models.Expense, error) {
	query := s.db.WithContext(ctx).Where("user_id = ?", userID)
	if filter.StartDate != nil {
		query = query.Where("date >= ?", filter.StartDate.UTC())
	}
	if filter.EndDate != nil {
		query = query.Where("date <= ?", filter.EndDate.UTC())
	}
	if filter.Category != nil {
		query = query.Where("category = ?", *filter.Category)
	}

	expenses := []models.Expense{}
	if err := query.Order("date DESC").Order("created_at DESC").Find(&expenses).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return expenses, nil
}

// GetExpenseByID returns an expense if it belongs to the user.
func (s *expenseService) GetExpenseByID(ctx context.Context, userID, expenseID string) (*models.Expense, error) {
	return findOwned[models.Expense](ctx, s.db, expenseID, userID, apperrors.ErrExpenseNotFound)
}

// UpdateExpense applies a partial update to an expense owned by the user.
func (s *expenseService) UpdateExpense(ctx context.Context, userID, expenseID string, in UpdateExpenseInput) (*models.Expense, error) {
	expense, err := s.GetExpenseByID(ctx, userID, expenseID)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if in.Title != nil {
		title := strings.TrimSpace(*in.Title)
		if title == "" {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "title must not be blank")
		}
		updates["title"] = title
	}
	if in.Amount != nil {
		if *in.Amount < 0 {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must not be negative")
		}
		if *in.Amount > models.MaxAmount {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount is too large")
		}
		updates["amount"] = *in.Amount
	}
	if in.Category != nil {
		if !in.Category.IsExpenseCategory() {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid expense category")
		}
		updates["category"] = *in.Category
	}
	if in.Date != nil {
		updates["date"] = in.Date.UTC()
	}
	if in.Description != nil {
		updates["description"] = strings.TrimSpace(*in.Description)
	}

	if len(updates) == 0 {
		return expense, nil
	}

	db := s.db.WithContext(ctx)
	if err := db.Model(expense).Updates(updates).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var updated models.Expense
	if err := db.Where("id = ?", expense.ID).First(&updated).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	metrics.ExpenseOperationsTotal.WithLabelValues("update").Inc()
	return &updated, nil
}

// DeleteExpense permanently removes an expense owned by the user.
func (s *expenseService) DeleteExpense(ctx context.Context, userID, expenseID string) error {
	expense, err := s.GetExpenseByID(ctx, userID, expenseID)
	if err != nil {
		return err
	}

	if err := s.db.WithContext(ctx).Delete(expense).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	metrics.ExpenseOperationsTotal.WithLabelValues("delete").Inc()
	return nil
}

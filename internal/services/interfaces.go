package services

import (
	"context"
	"time"

	"budgetly/internal/analytics"
	"budgetly/internal/models"
)

// UserServicer defines the contract for user-related business logic.
type UserServicer interface {
	CreateUser(ctx context.Context, email, password, name string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByID(ctx context.Context, id string) (*models.User, error)
	VerifyPassword(user *models.User, password string) bool
	AttemptLogin(ctx context.Context, email, password string) (*models.User, error)
	StoreRefreshTokenHash(ctx context.Context, userID, tokenHash string) error
	GetRefreshTokenHash(ctx context.Context, userID string) (string, error)
}

// ExpenseFilter holds optional filter parameters for listing expenses.
// Both dates are inclusive.
type ExpenseFilter struct {
	StartDate *time.Time
	EndDate   *time.Time
	Category  *models.Category
}

// CreateExpenseInput carries the fields of a new expense. A nil Date means now.
type CreateExpenseInput struct {
	Title       string
	Amount      float64
	Category    models.Category
	Date        *time.Time
	Description string
}

// UpdateExpenseInput carries a partial update; nil fields are left unchanged.
type UpdateExpenseInput struct {
	Title       *string
	Amount      *float64
	Category    *models.Category
	Date        *time.Time
	Description *string
}

// ExpenseServicer defines the contract for expense-related business logic.
type ExpenseServicer interface {
	CreateExpense(ctx context.Context, userID string, in CreateExpenseInput) (*models.Expense, error)
	ListExpenses(ctx context.Context, userID string, filter ExpenseFilter) ([]models.Expense, error)
	GetExpenseByID(ctx context.Context, userID, expenseID string) (*models.Expense, error)
	UpdateExpense(ctx context.Context, userID, expenseID string, in UpdateExpenseInput) (*models.Expense, error)
	DeleteExpense(ctx context.Context, userID, expenseID string) error
}

// BudgetFilter holds optional filter parameters for listing budgets.
type BudgetFilter struct {
	Month *int
	Year  *int
}

// BudgetServicer defines the contract for budget-related business logic.
type BudgetServicer interface {
	ListBudgets(ctx context.Context, userID string, filter BudgetFilter) ([]models.Budget, error)
	UpsertBudget(ctx context.Context, userID string, month, year int, category models.Category, amount float64) (*models.Budget, error)
	DeleteBudget(ctx context.Context, userID, budgetID string) error
}

// AnalyticsServicer defines the contract for spending analytics. A nil month
// or year is taken from the current date.
type AnalyticsServicer interface {
	Summary(ctx context.Context, userID string, month, year *int) (*analytics.Summary, error)
	BudgetOverview(ctx context.Context, userID string, month, year *int) (*analytics.Overview, error)
}

// AuditServicer defines the contract for audit logging.
type AuditServicer interface {
	Log(ctx context.Context, userID, action, resourceType, resourceID, ipAddress string, changes map[string]any)
}

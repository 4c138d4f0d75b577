package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"budgetly/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// TestPassword is the plaintext password of every fixture user.
const TestPassword = "password123"

// CreateTestUser creates a user with a hashed password and unique email.
func CreateTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	email := fmt.Sprintf("user%d@test.com", nextID())
	return CreateTestUserWithEmail(t, db, email)
}

// CreateTestUserWithEmail creates a user with the given email.
func CreateTestUserWithEmail(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(TestPassword), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &models.User{
		Email:    email,
		Password: string(hash),
		Name:     "Test User",
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateTestExpense creates an expense dated now.
func CreateTestExpense(t *testing.T, db *gorm.DB, userID string, category models.Category, amount float64) *models.Expense {
	t.Helper()
	return CreateTestExpenseOn(t, db, userID, category, amount, time.Now())
}

// CreateTestExpenseOn creates an expense with the given date.
func CreateTestExpenseOn(t *testing.T, db *gorm.DB, userID string, category models.Category, amount float64, date time.Time) *models.Expense {
	t.Helper()

	expense := &models.Expense{
		UserID:   userID,
		Title:    fmt.Sprintf("Test Expense %d", nextID()),
		Amount:   amount,
		Category: category,
		Date:     date,
	}
	if err := db.Create(expense).Error; err != nil {
		t.Fatalf("failed to create test expense: %v", err)
	}
	return expense
}

// CreateTestBudget creates a budget for the given month and category.
func CreateTestBudget(t *testing.T, db *gorm.DB, userID string, month, year int, category models.Category, amount float64) *models.Budget {
	t.Helper()

	budget := &models.Budget{
		UserID:   userID,
		Month:    month,
		Year:     year,
		Category: category,
		Amount:   amount,
	}
	if err := db.Create(budget).Error; err != nil {
		t.Fatalf("failed to create test budget: %v", err)
	}
	return budget
}

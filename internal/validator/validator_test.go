package validator

import (
	"testing"

	"github.com/gin-gonic/gin/binding"

	"budgetly/internal/testutil"
)

func init() {
	Register()
}

type budgetInput struct {
	Month    *int     `json:"month" binding:"required,min=1,max=12"`
	Amount   *float64 `json:"amount" binding:"required,gte=0,lte=1000000000000"`
	Category string   `json:"category" binding:"omitempty,budget_category"`
}

type expenseInput struct {
	Title    string `json:"title" binding:"required,notblank"`
	Category string `json:"category" binding:"required,expense_category"`
}

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }

func TestBudgetCategoryAcceptsTotal(t *testing.T) {
	in := budgetInput{Month: intPtr(3), Amount: floatPtr(0), Category: "Total"}
	if err := binding.Validator.ValidateStruct(&in); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestExpenseCategoryRejectsTotal(t *testing.T) {
	in := expenseInput{Title: "Rent", Category: "Total"}
	err := binding.Validator.ValidateStruct(&in)
	if err == nil {
		t.Fatal("expected Total to be rejected for expenses")
	}

	appErr := BindingError(err)
	if appErr.Code != "INVALID_INPUT" {
		t.Errorf("code = %q, want INVALID_INPUT", appErr.Code)
	}
	if len(appErr.Details) != 1 || appErr.Details[0].Field != "category" {
		t.Fatalf("unexpected details: %+v", appErr.Details)
	}
}

func TestBindingErrorReportsEveryField(t *testing.T) {
	in := budgetInput{Month: intPtr(13), Amount: floatPtr(-1), Category: "Groceries"}
	err := binding.Validator.ValidateStruct(&in)
	if err == nil {
		t.Fatal("expected validation error")
	}

	appErr := BindingError(err)
	fields := map[string]bool{}
	for _, d := range appErr.Details {
		fields[d.Field] = true
	}
	for _, want := range []string{"month", "amount", "category"} {
		if !fields[want] {
			t.Errorf("missing detail for %q in %+v", want, appErr.Details)
		}
	}
}

func TestNotBlank(t *testing.T) {
	in := expenseInput{Title: "   ", Category: "Travel"}
	err := binding.Validator.ValidateStruct(&in)
	if err == nil {
		t.Fatal("expected blank title to be rejected")
	}
	appErr := BindingError(err)
	if appErr.Details[0].Message != "title must not be blank" {
		t.Errorf("message = %q", appErr.Details[0].Message)
	}
}

func TestFieldInvalid(t *testing.T) {
	err := FieldInvalid("date", "date must be RFC3339 or YYYY-MM-DD")
	if err.StatusCode != 400 || err.Details[0].Field != "date" {
		t.Errorf("unexpected error: %+v", err)
	}
}

func TestAmountUpperBound(t *testing.T) {
	in := budgetInput{Month: intPtr(1), Amount: floatPtr(1e13)}
	err := binding.Validator.ValidateStruct(&in)
	if err == nil {
		t.Fatal("expected amount above the cap to be rejected")
	}

	appErr := BindingError(err)
	testutil.AssertInvalidFields(t, appErr, "amount")
	if appErr.Details[0].Message != "amount must be at most 1000000000000" {
		t.Errorf("message = %q", appErr.Details[0].Message)
	}
}

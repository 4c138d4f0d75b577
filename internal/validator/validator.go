// Package validator provides custom validation functions for Gin's binding
// engine and translates validation failures into field-level error details.
package validator

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	apperrors "budgetly/internal/errors"
	"budgetly/internal/models"
)

// Register registers all custom validators with the Gin binding engine and
// makes validation errors report JSON/form field names.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(fieldName)
		_ = v.RegisterValidation("expense_category", validateExpenseCategory)
		_ = v.RegisterValidation("budget_category", validateBudgetCategory)
		_ = v.RegisterValidation("notblank", validateNotBlank)
	}
}

// fieldName prefers the json tag, then the form tag, then the Go name.
func fieldName(fld reflect.StructField) string {
	for _, tag := range []string{"json", "form"} {
		name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return fld.Name
}

func categoryOf(fl validator.FieldLevel) models.Category {
	return models.Category(fl.Field().String())
}

func validateExpenseCategory(fl validator.FieldLevel) bool {
	return categoryOf(fl).IsExpenseCategory()
}

func validateBudgetCategory(fl validator.FieldLevel) bool {
	return categoryOf(fl).IsBudgetCategory()
}

func validateNotBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

// BindingError converts an error returned by ShouldBindJSON/ShouldBindQuery
// into an INVALID_INPUT AppError. Validator failures carry one detail per
// field; decoding failures carry the decoder's message.
func BindingError(err error) *apperrors.AppError {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		details := make([]apperrors.FieldError, 0, len(verrs))
		for _, fe := range verrs {
			details = append(details, apperrors.FieldError{
				Field:   fe.Field(),
				Message: describe(fe),
			})
		}
		return apperrors.WithDetails(apperrors.WithMessage(apperrors.ErrInvalidInput, "Validation failed"), details)
	}
	return apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error())
}

// FieldInvalid builds an INVALID_INPUT error for a single field.
func FieldInvalid(field, message string) *apperrors.AppError {
	return apperrors.WithDetails(
		apperrors.WithMessage(apperrors.ErrInvalidInput, "Validation failed"),
		[]apperrors.FieldError{{Field: field, Message: message}},
	)
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "notblank":
		return fmt.Sprintf("%s must not be blank", fe.Field())
	case "min":
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", fe.Field(), fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be greater than or equal to %s", fe.Field(), fe.Param())
	case "lte":
		return fmt.Sprintf("%s must be at most %s", fe.Field(), fe.Param())
	case "email":
		return fmt.Sprintf("%s must be a valid email address", fe.Field())
	case "expense_category":
		return fmt.Sprintf("%s must be one of: %s", fe.Field(), joinCategories(models.ExpenseCategories))
	case "budget_category":
		return fmt.Sprintf("%s must be one of: %s", fe.Field(), joinCategories(models.BudgetCategories))
	}
	return fmt.Sprintf("%s failed the %q check", fe.Field(), fe.Tag())
}

func joinCategories(categories []models.Category) string {
	names := make([]string, len(categories))
	for i, c := range categories {
		names[i] = string(c)
	}
	return strings.Join(names, ", ")
}

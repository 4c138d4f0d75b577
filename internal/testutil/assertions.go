package testutil

import (
	"errors"
	"strings"
	"testing"

	apperrors "budgetly/internal/errors"
)

// AssertAppError checks that err is an *AppError carrying expectedCode, the
// value the error middleware writes to the response body.
func AssertAppError(t *testing.T, err error, expectedCode string) {
	t.Helper()

	if err == nil {
		t.Fatalf("expected AppError with code %q, got nil", expectedCode)
	}

	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("expected *AppError, got %T: %v", err, err)
	}

	if appErr.Code != expectedCode {
		t.Errorf("expected error code %q, got %q (message: %s)", expectedCode, appErr.Code, appErr.Message)
	}
}

// AssertInvalidFields checks that err is an INVALID_INPUT AppError whose
// details name exactly the given fields, in order.
func AssertInvalidFields(t *testing.T, err error, fields ...string) {
	t.Helper()

	AssertAppError(t, err, apperrors.ErrInvalidInput.Code)

	var appErr *apperrors.AppError
	errors.As(err, &appErr)
	got := make([]string, len(appErr.Details))
	for i, d := range appErr.Details {
		got[i] = d.Field
	}
	if strings.Join(got, ",") != strings.Join(fields, ",") {
		t.Errorf("expected invalid fields %v, got %v (details: %+v)", fields, got, appErr.Details)
	}
}

// AssertNoError fails the test if err is not nil.
func AssertNoError(t *testing.T, err error) {
	t.Helper()

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

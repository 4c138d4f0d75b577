package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	"budgetly/internal/analytics"
	apperrors "budgetly/internal/errors"
)

// --- mock analytics service ---

type mockAnalyticsService struct {
	summaryFn        func(userID string, month, year *int) (*analytics.Summary, error)
	budgetOverviewFn func(userID string, month, year *int) (*analytics.Overview, error)
}

func (m *mockAnalyticsService) Summary(_ context.Context, userID string, month, year *int) (*analytics.Summary, error) {
	if m.summaryFn != nil {
		return m.summaryFn(userID, month, year)
	}
	return &analytics.Summary{ByCategory: map[string]float64{}, ByDay: map[string]float64{}}, nil
}

func (m *mockAnalyticsService) BudgetOverview(_ context.Context, userID string, month, year *int) (*analytics.Overview, error) {
	if m.budgetOverviewFn != nil {
		return m.budgetOverviewFn(userID, month, year)
	}
	return &analytics.Overview{Categories: []analytics.CategoryBreakdown{}}, nil
}

func setupAnalyticsRouter(handler *AnalyticsHandler) *gin.Engine {
	r := gin.New()
	r.GET("/analytics/summary", injectUserID(testUserID), handler.GetSummary)
	r.GET("/budgets/overview", injectUserID(testUserID), handler.GetBudgetOverview)
	return r
}

func TestAnalyticsHandler_GetSummary(t *testing.T) {
	t.Run("passes month and year", func(t *testing.T) {
		var gotMonth, gotYear *int
		svc := &mockAnalyticsService{
			summaryFn: func(_ string, month, year *int) (*analytics.Summary, error) {
				gotMonth, gotYear = month, year
				return &analytics.Summary{
					Total:      100,
					Count:      3,
					ByCategory: map[string]float64{"Food & Dining": 50, "Transportation": 30, "Shopping": 20},
					ByDay:      map[string]float64{"2024-01-10": 100},
				}, nil
			},
		}
		r := setupAnalyticsRouter(NewAnalyticsHandler(svc))

		rec := doRequest(r, "GET", "/analytics/summary?month=1&year=2024", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if gotMonth == nil || *gotMonth != 1 || gotYear == nil || *gotYear != 2024 {
			t.Errorf("unexpected period: %v %v", gotMonth, gotYear)
		}
		result := parseJSON(t, rec)
		if result["total"] != 100.0 || result["count"] != 3.0 {
			t.Errorf("unexpected summary: %v", result)
		}
		byCategory := result["byCategory"].(map[string]interface{})
		if byCategory["Food & Dining"] != 50.0 {
			t.Errorf("unexpected byCategory: %v", byCategory)
		}
	})

	t.Run("omitted period is passed as nil", func(t *testing.T) {
		called := false
		svc := &mockAnalyticsService{
			summaryFn: func(_ string, month, year *int) (*analytics.Summary, error) {
				called = true
				if month != nil || year != nil {
					t.Errorf("expected nil period, got %v %v", month, year)
				}
				return &analytics.Summary{ByCategory: map[string]float64{}, ByDay: map[string]float64{}}, nil
			},
		}
		r := setupAnalyticsRouter(NewAnalyticsHandler(svc))

		rec := doRequest(r, "GET", "/analytics/summary", "")

		if rec.Code != http.StatusOK || !called {
			t.Fatalf("expected 200 from service, got %d", rec.Code)
		}
		result := parseJSON(t, rec)
		if _, ok := result["byCategory"].(map[string]interface{}); !ok {
			t.Errorf("expected empty byCategory object, got %v", result["byCategory"])
		}
	})

	t.Run("rejects month 13", func(t *testing.T) {
		r := setupAnalyticsRouter(NewAnalyticsHandler(&mockAnalyticsService{}))

		rec := doRequest(r, "GET", "/analytics/summary?month=13", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("rejects non-numeric year", func(t *testing.T) {
		r := setupAnalyticsRouter(NewAnalyticsHandler(&mockAnalyticsService{}))

		rec := doRequest(r, "GET", "/analytics/summary?year=soon", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})

	t.Run("surfaces service errors", func(t *testing.T) {
		svc := &mockAnalyticsService{
			summaryFn: func(string, *int, *int) (*analytics.Summary, error) {
				return nil, apperrors.ErrInternalServer
			},
		}
		r := setupAnalyticsRouter(NewAnalyticsHandler(svc))

		rec := doRequest(r, "GET", "/analytics/summary", "")

		if rec.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", rec.Code)
		}
	})
}

func TestAnalyticsHandler_GetBudgetOverview(t *testing.T) {
	budget := 1000.0
	remaining := 150.0
	pct := 85.0
	svc := &mockAnalyticsService{
		budgetOverviewFn: func(_ string, month, year *int) (*analytics.Overview, error) {
			return &analytics.Overview{
				Month: *month,
				Year:  *year,
				Total: analytics.BudgetComparison{
					HasBudget:  true,
					Budget:     &budget,
					Spent:      850,
					Remaining:  &remaining,
					Percentage: &pct,
					State:      analytics.BudgetStateWarning,
				},
				Categories: []analytics.CategoryBreakdown{},
			}, nil
		},
	}
	r := setupAnalyticsRouter(NewAnalyticsHandler(svc))

	rec := doRequest(r, "GET", "/budgets/overview?month=2&year=2024", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	total := result["total"].(map[string]interface{})
	if total["state"] != "warning" || total["percentage"] != 85.0 || total["remaining"] != 150.0 {
		t.Errorf("unexpected total comparison: %v", total)
	}
	if result["month"] != 2.0 || result["year"] != 2024.0 {
		t.Errorf("unexpected period: %v", result)
	}
}

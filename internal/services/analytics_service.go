package services

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"gorm.io/gorm"

	"budgetly/internal/analytics"
	apperrors "budgetly/internal/errors"
	"budgetly/internal/metrics"
	"budgetly/internal/models"
)

var tracer = otel.Tracer("budgetly/internal/services")

// analyticsService computes spending summaries and budget comparisons.
type analyticsService struct {
	db  *gorm.DB
	loc *time.Location
	now func() time.Time
}

// NewAnalyticsService creates a new AnalyticsServicer. Month boundaries and
// per-day buckets are computed in loc.
func NewAnalyticsService(db *gorm.DB, loc *time.Location) AnalyticsServicer {
	if loc == nil {
		loc = time.UTC
	}
	return &analyticsService{db: db, loc: loc, now: time.Now}
}

// Summary aggregates the user's expenses for one calendar month.
func (s *analyticsService) Summary(ctx context.Context, userID string, month, year *int) (*analytics.Summary, error) {
	y, m, err := s.resolveMonth(month, year)
	if err != nil {
		return nil, err
	}

	ctx, span := tracer.Start(ctx, "analytics.Summary")
	defer span.End()
	span.SetAttributes(attribute.Int("budgetly.year", y), attribute.Int("budgetly.month", int(m)))

	summary, err := s.summarize(ctx, userID, analytics.MonthPeriod(y, m, s.loc))
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	return &summary, nil
}

// BudgetOverview compares one month's spending with that month's budgets.
func (s *analyticsService) BudgetOverview(ctx context.Context, userID string, month, year *int) (*analytics.Overview, error) {
	y, m, err := s.resolveMonth(month, year)
	if err != nil {
		return nil, err
	}

	ctx, span := tracer.Start(ctx, "analytics.BudgetOverview")
	defer span.End()
	span.SetAttributes(attribute.Int("budgetly.year", y), attribute.Int("budgetly.month", int(m)))

	summary, err := s.summarize(ctx, userID, analytics.MonthPeriod(y, m, s.loc))
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	var budgets []models.Budget
	err = s.db.WithContext(ctx).
		Where("user_id = ? AND month = ? AND year = ?", userID, int(m), y).
		Find(&budgets).Error
	if err != nil {
		span.RecordError(err)
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	overview := analytics.BuildOverview(y, m, summary, budgets)
	switch overview.Total.State {
	case analytics.BudgetStateWarning, analytics.BudgetStateOverBudget:
		metrics.BudgetAlertsTotal.WithLabelValues(string(overview.Total.State)).Inc()
	}
	return &overview, nil
}

// summarize loads the expenses inside period in creation order and totals them.
func (s *analyticsService) summarize(ctx context.Context, userID string, period analytics.Period) (analytics.Summary, error) {
	var expenses []models.Expense
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND date >= ? AND date <= ?", userID, period.Start.UTC(), period.End.UTC()).
		Order("created_at ASC").
		Order("id ASC").
		Find(&expenses).Error
	if err != nil {
		return analytics.Summary{}, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return analytics.Summarize(expenses, period, s.loc), nil
}

// resolveMonth fills a missing month or year from the current date.
func (s *analyticsService) resolveMonth(month, year *int) (int, time.Month, error) {
	now := s.now().In(s.loc)
	y, m := now.Year(), now.Month()
	if year != nil {
		if *year < MinBudgetYear {
			return 0, 0, apperrors.WithMessage(apperrors.ErrInvalidInput, "year must be 2000 or later")
		}
		y = *year
	}
	if month != nil {
		if *month < 1 || *month > 12 {
			return 0, 0, apperrors.WithMessage(apperrors.ErrInvalidInput, "month must be between 1 and 12")
		}
		m = time.Month(*month)
	}
	return y, m, nil
}

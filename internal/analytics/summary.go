// Package analytics aggregates expenses into spending summaries and compares
// them against budgets. It has no storage dependencies; callers select the
// expenses and pass them in.
package analytics

import (
	"time"

	"budgetly/internal/models"
)

// Summary is the aggregate view of a set of expenses over a period.
type Summary struct {
	Total      float64            `json:"total"`
	Count      int                `json:"count"`
	ByCategory map[string]float64 `json:"byCategory"`
	ByDay      map[string]float64 `json:"byDay"`
	StartDate  time.Time          `json:"startDate"`
	EndDate    time.Time          `json:"endDate"`
}

// Summarize totals the expenses that fall inside period. Expenses outside the
// period are ignored. Sums are accumulated in slice order; day keys are the
// expense date's calendar day in loc. An empty selection yields zero totals
// and empty, non-nil maps.
func Summarize(expenses []models.Expense, period Period, loc *time.Location) Summary {
	if loc == nil {
		loc = time.UTC
	}

	summary := Summary{
		ByCategory: make(map[string]float64),
		ByDay:      make(map[string]float64),
		StartDate:  period.Start,
		EndDate:    period.End,
	}

	for _, e := range expenses {
		if !period.Contains(e.Date) {
			continue
		}
		summary.Total += e.Amount
		summary.Count++
		summary.ByCategory[string(e.Category)] += e.Amount
		summary.ByDay[e.Date.In(loc).Format(DayLayout)] += e.Amount
	}

	return summary
}

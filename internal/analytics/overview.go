package analytics

import (
	"time"

	"budgetly/internal/models"
)

// CategoryBreakdown is one category's line in a budget overview.
type CategoryBreakdown struct {
	Category models.Category `json:"category"`
	Spent    float64         `json:"spent"`
	// ShareOfBudget is Spent as a percentage of the month's Total budget.
	ShareOfBudget *float64 `json:"shareOfBudget"`
	// Budget compares Spent against a budget set for this category, if any.
	Budget *BudgetComparison `json:"budget,omitempty"`
}

// Overview combines a month's summary with its budgets.
type Overview struct {
	Month      int                 `json:"month"`
	Year       int                 `json:"year"`
	Total      BudgetComparison    `json:"total"`
	Categories []CategoryBreakdown `json:"categories"`
	Summary    Summary             `json:"summary"`
}

// BuildOverview compares the summary against the month's budgets. The Total
// budget drives the headline comparison; category budgets, when present, get
// their own comparison. Categories appear in display order and only when they
// have spending or a budget of their own.
func BuildOverview(year int, month time.Month, summary Summary, budgets []models.Budget) Overview {
	var total *float64
	byCategory := make(map[models.Category]float64)
	for _, b := range budgets {
		if b.Year != year || b.Month != int(month) {
			continue
		}
		amount := b.Amount
		if b.Category == models.CategoryTotal {
			total = &amount
			continue
		}
		byCategory[b.Category] = amount
	}

	overview := Overview{
		Month:      int(month),
		Year:       year,
		Total:      CompareBudget(total, summary.Total),
		Categories: []CategoryBreakdown{},
		Summary:    summary,
	}

	for _, category := range models.ExpenseCategories {
		spent, hasSpend := summary.ByCategory[string(category)]
		catBudget, hasBudget := byCategory[category]
		if !hasSpend && !hasBudget {
			continue
		}

		line := CategoryBreakdown{Category: category, Spent: spent}
		if total != nil {
			if share, ok := Percentage(spent, *total); ok {
				line.ShareOfBudget = &share
			}
		}
		if hasBudget {
			cmp := CompareBudget(&catBudget, spent)
			line.Budget = &cmp
		}
		overview.Categories = append(overview.Categories, line)
	}

	return overview
}

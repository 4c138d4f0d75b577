package analytics

// Alert thresholds, in percent of the budget used.
const (
	WarningThreshold    = 80.0
	OverBudgetThreshold = 100.0
)

// BudgetState is the display state derived from the percentage used.
type BudgetState string

const (
	BudgetStateNoBudget   BudgetState = "no_budget"
	BudgetStateNormal     BudgetState = "normal"
	BudgetStateWarning    BudgetState = "warning"
	BudgetStateOverBudget BudgetState = "over_budget"
)

// BudgetComparison holds the figures derived from a budget and the amount
// spent against it. Budget, Remaining and Percentage are nil when they are
// not defined: all three without a budget, Percentage alone for a zero budget.
type BudgetComparison struct {
	HasBudget  bool        `json:"hasBudget"`
	Budget     *float64    `json:"budget"`
	Spent      float64     `json:"spent"`
	Remaining  *float64    `json:"remaining"`
	Percentage *float64    `json:"percentage"`
	OverBy     float64     `json:"overBy"`
	State      BudgetState `json:"state"`
}

// CompareBudget derives remaining, percentage used and alert state.
// A nil budget means none is set for the period.
func CompareBudget(budget *float64, spent float64) BudgetComparison {
	if budget == nil {
		return BudgetComparison{Spent: spent, State: BudgetStateNoBudget}
	}

	amount := *budget
	remaining := amount - spent
	cmp := BudgetComparison{
		HasBudget: true,
		Budget:    &amount,
		Spent:     spent,
		Remaining: &remaining,
		State:     BudgetStateNormal,
	}
	if remaining < 0 {
		cmp.OverBy = -remaining
	}

	pct, ok := Percentage(spent, amount)
	if !ok {
		return cmp
	}
	cmp.Percentage = &pct
	cmp.State = StateFor(pct)
	return cmp
}

// Percentage returns part as a percentage of whole. It reports false when
// whole is not positive, in which case the percentage is undefined.
func Percentage(part, whole float64) (float64, bool) {
	if whole <= 0 {
		return 0, false
	}
	// multiply first so exact inputs such as 800/1000 stay exact
	return part * 100 / whole, true
}

// StateFor maps a percentage used to its alert state. The warning band is
// open at 80 and closed at 100.
func StateFor(pct float64) BudgetState {
	switch {
	case pct > OverBudgetThreshold:
		return BudgetStateOverBudget
	case pct > WarningThreshold:
		return BudgetStateWarning
	default:
		return BudgetStateNormal
	}
}

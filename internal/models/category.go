package models

// Category is one of the fixed spending categories shared by expenses and
// budgets. CategoryTotal is only valid on budgets, where it represents the
// whole-month cap rather than a spending category.
type Category string

const (
	CategoryFoodDining     Category = "Food & Dining"
	CategoryTransportation Category = "Transportation"
	CategoryShopping       Category = "Shopping"
	CategoryEntertainment  Category = "Entertainment"
	CategoryBillsUtilities Category = "Bills & Utilities"
	CategoryHealthcare     Category = "Healthcare"
	CategoryEducation      Category = "Education"
	CategoryTravel         Category = "Travel"
	CategoryPersonal       Category = "Personal"
	CategoryOther          Category = "Other"
	CategoryTotal          Category = "Total"
)

// ExpenseCategories lists the categories an expense may be filed under,
// in display order.
var ExpenseCategories = []Category{
	CategoryFoodDining,
	CategoryTransportation,
	CategoryShopping,
	CategoryEntertainment,
	CategoryBillsUtilities,
	CategoryHealthcare,
	CategoryEducation,
	CategoryTravel,
	CategoryPersonal,
	CategoryOther,
}

// BudgetCategories lists the categories a budget may target.
var BudgetCategories = append(append([]Category{}, ExpenseCategories...), CategoryTotal)

// IsExpenseCategory reports whether c is a valid expense category.
func (c Category) IsExpenseCategory() bool {
	for _, known := range ExpenseCategories {
		if c == known {
			return true
		}
	}
	return false
}

// IsBudgetCategory reports whether c is a valid budget category.
func (c Category) IsBudgetCategory() bool {
	return c == CategoryTotal || c.IsExpenseCategory()
}

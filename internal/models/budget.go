package models

// Budget is a spending cap for one month and one category. At most one row
// exists per (user, month, year, category); idx_budget_period enforces it.
type Budget struct {
	Base
	UserID   string   `gorm:"type:uuid;not null;uniqueIndex:idx_budget_period,priority:1" json:"userId"`
	Month    int      `gorm:"not null;uniqueIndex:idx_budget_period,priority:2" json:"month"`
	Year     int      `gorm:"not null;uniqueIndex:idx_budget_period,priority:3" json:"year"`
	Category Category `gorm:"not null;default:'Total';uniqueIndex:idx_budget_period,priority:4" json:"category"`
	Amount   float64  `gorm:"not null" json:"amount"`
}

// OwnerID implements Owned.
func (b Budget) OwnerID() string { return b.UserID }

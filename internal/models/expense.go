package models

import "time"

// MaxAmount caps expense and budget amounts so that sums stay finite.
const MaxAmount = 1e12

// Expense is a single recorded spend owned by one user.
type Expense struct {
	Base
	UserID      string    `gorm:"type:uuid;not null;index:idx_expense_user_date,priority:1" json:"userId"`
	Title       string    `gorm:"not null" json:"title"`
	Amount      float64   `gorm:"not null" json:"amount"`
	Category    Category  `gorm:"not null;index" json:"category"`
	Date        time.Time `gorm:"not null;index:idx_expense_user_date,priority:2" json:"date"`
	Description string    `json:"description,omitempty"`
}

// OwnerID implements Owned.
func (e Expense) OwnerID() string { return e.UserID }

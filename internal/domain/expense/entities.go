package expense

import "time"

// Expense is one row in a user's private spending ledger. No cross-entity
// invariants: expenses never touch loans or payments.
type Expense struct {
	ID            uint64    `gorm:"primaryKey;column:id" json:"-"`
	ExpenseID     string    `gorm:"size:32;uniqueIndex:ux_expenses_expense_id" json:"expense_id"`
	UserID        string    `gorm:"size:32;index:idx_expenses_user" json:"user_id"`
	Description   string    `gorm:"type:text" json:"description"`
	Amount        float64   `gorm:"type:decimal(18,2)" json:"amount"`
	Category      string    `gorm:"size:100" json:"category"`
	ExpenseDate   time.Time `gorm:"type:date" json:"expense_date"`
	IsRecurring   bool      `gorm:"default:false" json:"is_recurring"`
	RecurrenceDay *int      `json:"recurrence_day,omitempty"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Expense) TableName() string { return "expenses" }

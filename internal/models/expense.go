package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense represents a single recorded spending event. Category is a soft
// reference to a budget by name; it is checked only when the expense is created.
type Expense struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Amount   decimal.Decimal `json:"amount"`
	Category Category        `json:"category"`
	Date     time.Time       `json:"date"`
}

// RecurringExpense is a free-form recurring expense template. Only the "id"
// key is managed by the ledger; every other key belongs to the caller.
type RecurringExpense map[string]any

// ID returns the template id, or an empty string if none is set.
func (r RecurringExpense) ID() string {
	id, _ := r["id"].(string)
	return id
}

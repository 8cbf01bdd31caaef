package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// RecurrenceType represents how often a budget rolls over.
type RecurrenceType string

const (
	RecurrenceNone      RecurrenceType = "None"
	RecurrenceDaily     RecurrenceType = "Daily"
	RecurrenceWeekly    RecurrenceType = "Weekly"
	RecurrenceMonthly   RecurrenceType = "Monthly"
	RecurrenceQuarterly RecurrenceType = "Quarterly"
	RecurrenceAnnually  RecurrenceType = "Annually"
)

// IsValid reports whether r is a known recurrence type. The empty string is
// accepted and read as None.
func (r RecurrenceType) IsValid() bool {
	switch r {
	case "", RecurrenceNone, RecurrenceDaily, RecurrenceWeekly, RecurrenceMonthly, RecurrenceQuarterly, RecurrenceAnnually:
		return true
	}
	return false
}

// IsRecurring reports whether r describes an active recurrence.
func (r RecurrenceType) IsRecurring() bool {
	return r != "" && r != RecurrenceNone && r.IsValid()
}

// Budget represents a spending allocation for one category.
//
// SpentAmount is maintained incrementally by the expense ledger and must equal
// the sum of the amounts of all expenses in Category.
type Budget struct {
	ID                 string          `json:"id"`
	Category           Category        `json:"category"`
	Amount             decimal.Decimal `json:"amount"`
	SpentAmount        decimal.Decimal `json:"spentAmount"`
	Date               time.Time       `json:"date"`
	RecurrenceType     RecurrenceType  `json:"recurrenceType"`
	RecurrenceDuration *int            `json:"recurrenceDuration,omitempty"`

	// Occurrences counts the rollovers already emitted from this budget.
	Occurrences int `json:"occurrences,omitempty"`
	// SourceID is set on budgets created by a rollover and points at the
	// budget that produced them.
	SourceID string `json:"sourceId,omitempty"`
}

// Remaining returns the part of the allocation not yet spent.
func (b Budget) Remaining() decimal.Decimal {
	return b.Amount.Sub(b.SpentAmount)
}

// IsRolloverSource reports whether the budget drives a recurrence lineage.
func (b Budget) IsRolloverSource() bool {
	return b.SourceID == "" && b.RecurrenceType.IsRecurring()
}

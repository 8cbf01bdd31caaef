package services

import (
	"walletmate/internal/config"
	"walletmate/internal/store"
)

// Ledger bundles the services that share one store.
type Ledger struct {
	Budgets           BudgetServicer
	Expenses          ExpenseServicer
	Recurrence        RecurrenceServicer
	RecurringExpenses RecurringExpenseServicer
	Summary           SummaryServicer
}

// NewLedger wires every service over st.
func NewLedger(st *store.Store, policy config.RecurrencePolicy) *Ledger {
	budgets := NewBudgetService(st)
	expenses := NewExpenseService(st, budgets)
	return &Ledger{
		Budgets:           budgets,
		Expenses:          expenses,
		Recurrence:        NewRecurrenceService(st, policy),
		RecurringExpenses: NewRecurringExpenseService(st),
		Summary:           NewSummaryService(budgets, expenses),
	}
}

package testutil

import (
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/shopspring/decimal"

	"walletmate/internal/models"
	"walletmate/internal/store"
	"walletmate/internal/uuid"
)

// CreateTestBudget appends a non-recurring budget directly to the store.
func CreateTestBudget(t *testing.T, st *store.Store, category models.Category, amount string) *models.Budget {
	t.Helper()
	return CreateTestBudgetWithSpent(t, st, category, amount, "0")
}

// CreateTestBudgetWithSpent appends a budget with the given spent amount,
// bypassing the expense ledger. Useful for seeding drifted state.
func CreateTestBudgetWithSpent(t *testing.T, st *store.Store, category models.Category, amount, spent string) *models.Budget {
	t.Helper()

	budget := models.Budget{
		ID:             uuid.New(),
		Category:       category,
		Amount:         decimal.RequireFromString(amount),
		SpentAmount:    decimal.RequireFromString(spent),
		Date:           time.Now().UTC(),
		RecurrenceType: models.RecurrenceNone,
	}
	appendItem(t, st, store.KeyBudgets, budget)
	return &budget
}

// CreateTestRecurringBudget appends a recurring budget starting at date.
func CreateTestRecurringBudget(t *testing.T, st *store.Store, category models.Category, amount string, recurrence models.RecurrenceType, date time.Time, duration *int) *models.Budget {
	t.Helper()

	budget := models.Budget{
		ID:                 uuid.New(),
		Category:           category,
		Amount:             decimal.RequireFromString(amount),
		SpentAmount:        decimal.Zero,
		Date:               date,
		RecurrenceType:     recurrence,
		RecurrenceDuration: duration,
	}
	appendItem(t, st, store.KeyBudgets, budget)
	return &budget
}

// CreateTestExpense appends an expense with a generated name directly to the
// store. Budgets are not adjusted.
func CreateTestExpense(t *testing.T, st *store.Store, category models.Category, amount string) *models.Expense {
	t.Helper()

	expense := models.Expense{
		ID:       uuid.New(),
		Name:     gofakeit.ProductName(),
		Amount:   decimal.RequireFromString(amount),
		Category: category,
		Date:     time.Now().UTC(),
	}
	appendItem(t, st, store.KeyExpenses, expense)
	return &expense
}

// FakeExpenseName returns a realistic expense description.
func FakeExpenseName() string {
	return gofakeit.ProductName()
}

// IntPtr returns a pointer to v.
func IntPtr(v int) *int {
	return &v
}

func appendItem[T any](t *testing.T, st *store.Store, key string, item T) {
	t.Helper()

	items, err := store.Load[T](st, key)
	if err != nil {
		t.Fatalf("failed to load %s: %v", key, err)
	}
	if err := store.Save(st, key, append(items, item)); err != nil {
		t.Fatalf("failed to save %s: %v", key, err)
	}
}

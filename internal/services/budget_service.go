package services

import (
	"time"

	"github.com/shopspring/decimal"

	apperrors "walletmate/internal/errors"
	"walletmate/internal/logger"
	"walletmate/internal/models"
	"walletmate/internal/store"
	"walletmate/internal/uuid"
)

// budgetService handles the budget ledger.
type budgetService struct {
	store *store.Store
}

// NewBudgetService creates a new BudgetServicer.
func NewBudgetService(st *store.Store) BudgetServicer {
	return &budgetService{store: st}
}

// CreateOrUpdateBudget sets the allocation for a category. An existing budget
// keeps its id and spent amount and only has its amount replaced; otherwise a
// new budget is appended with nothing spent.
func (s *budgetService) CreateOrUpdateBudget(input BudgetInput) ([]models.Budget, error) {
	if err := validateBudgetCategory(input.Category); err != nil {
		return nil, err
	}
	if err := validateAmount(input.Amount, "amount"); err != nil {
		return nil, err
	}
	if err := validateRecurrence(input.RecurrenceType, input.RecurrenceDuration); err != nil {
		return nil, err
	}

	recurrenceType := input.RecurrenceType
	if recurrenceType == "" {
		recurrenceType = models.RecurrenceNone
	}

	var result []models.Budget
	err := s.store.Transaction(func(tx *store.Store) error {
		budgets, err := loadBudgets(tx)
		if err != nil {
			return err
		}

		if i := budgetIndexByCategory(budgets, input.Category); i >= 0 {
			budgets[i].Amount = input.Amount
		} else {
			budgets = append(budgets, models.Budget{
				ID:                 uuid.New(),
				Category:           input.Category,
				Amount:             input.Amount,
				SpentAmount:        decimal.Zero,
				Date:               time.Now().UTC(),
				RecurrenceType:     recurrenceType,
				RecurrenceDuration: input.RecurrenceDuration,
			})
		}

		if err := saveBudgets(tx, budgets); err != nil {
			return err
		}
		result = budgets
		return nil
	})
	if err != nil {
		return nil, storageErr(err)
	}

	return result, nil
}

// ListBudgets returns every budget in insertion order.
func (s *budgetService) ListBudgets() ([]models.Budget, error) {
	return loadBudgets(s.store)
}

// GetBudgetByID returns a single budget.
func (s *budgetService) GetBudgetByID(id string) (*models.Budget, error) {
	budgets, err := loadBudgets(s.store)
	if err != nil {
		return nil, err
	}
	i := budgetIndexByID(budgets, id)
	if i < 0 {
		return nil, apperrors.ErrBudgetNotFound
	}
	return &budgets[i], nil
}

// UpdateBudget merges the given fields into the budget with id. A missing id
// leaves the collection untouched.
func (s *budgetService) UpdateBudget(id string, update BudgetUpdate) ([]models.Budget, error) {
	if update.Category != nil {
		if err := validateBudgetCategory(*update.Category); err != nil {
			return nil, err
		}
	}
	if update.Amount != nil {
		if err := validateAmount(*update.Amount, "amount"); err != nil {
			return nil, err
		}
	}
	if update.SpentAmount != nil && update.SpentAmount.IsNegative() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "spent amount cannot be negative")
	}
	if update.RecurrenceType != nil {
		if err := validateRecurrence(*update.RecurrenceType, update.RecurrenceDuration); err != nil {
			return nil, err
		}
	} else if err := validateRecurrence("", update.RecurrenceDuration); err != nil {
		return nil, err
	}

	var result []models.Budget
	err := s.store.Transaction(func(tx *store.Store) error {
		budgets, err := loadBudgets(tx)
		if err != nil {
			return err
		}

		i := budgetIndexByID(budgets, id)
		if i < 0 {
			result = budgets
			return nil
		}

		if update.Category != nil && *update.Category != budgets[i].Category {
			for j := range budgets {
				if j != i && budgets[j].Category == *update.Category {
					return apperrors.ErrCategoryTaken
				}
			}
			budgets[i].Category = *update.Category
		}
		if update.Amount != nil {
			budgets[i].Amount = *update.Amount
		}
		if update.SpentAmount != nil {
			budgets[i].SpentAmount = *update.SpentAmount
		}
		if update.Date != nil {
			budgets[i].Date = *update.Date
		}
		if update.RecurrenceType != nil {
			budgets[i].RecurrenceType = *update.RecurrenceType
			if budgets[i].RecurrenceType == "" {
				budgets[i].RecurrenceType = models.RecurrenceNone
			}
		}
		if update.RecurrenceDuration != nil {
			duration := *update.RecurrenceDuration
			budgets[i].RecurrenceDuration = &duration
		}

		if err := saveBudgets(tx, budgets); err != nil {
			return err
		}
		result = budgets
		return nil
	})
	if err != nil {
		return nil, storageErr(err)
	}

	return result, nil
}

// DeleteBudget removes the budget with id. Expenses in its category are kept
// and become orphaned.
func (s *budgetService) DeleteBudget(id string) ([]models.Budget, error) {
	var result []models.Budget
	err := s.store.Transaction(func(tx *store.Store) error {
		budgets, err := loadBudgets(tx)
		if err != nil {
			return err
		}

		kept := budgets[:0]
		for _, b := range budgets {
			if b.ID != id {
				kept = append(kept, b)
			}
		}

		if err := saveBudgets(tx, kept); err != nil {
			return err
		}
		result = kept
		return nil
	})
	if err != nil {
		return nil, storageErr(err)
	}

	return result, nil
}

// AdjustSpentAmount moves the spent amount of the budget for category by delta,
// clamping at zero. A category without a budget is silently ignored.
func (s *budgetService) AdjustSpentAmount(category models.Category, delta decimal.Decimal) error {
	err := s.store.Transaction(func(tx *store.Store) error {
		return s.ApplySpentAdjustments(tx, SpentAdjustment{Category: category, Delta: delta})
	})
	return storageErr(err)
}

// ApplySpentAdjustments applies the adjustments in order against a single read
// of the budget collection and writes the result once through tx.
func (s *budgetService) ApplySpentAdjustments(tx *store.Store, adjustments ...SpentAdjustment) error {
	if len(adjustments) == 0 {
		return nil
	}

	budgets, err := loadBudgets(tx)
	if err != nil {
		return err
	}

	changed := false
	for _, adj := range adjustments {
		i := budgetIndexByCategory(budgets, adj.Category)
		if i < 0 {
			logger.Get().Warnw("spent adjustment skipped, no budget for category",
				"category", adj.Category,
				"delta", adj.Delta.String(),
			)
			continue
		}
		budgets[i].SpentAmount = decimal.Max(decimal.Zero, budgets[i].SpentAmount.Add(adj.Delta))
		changed = true
	}

	if !changed {
		return nil
	}
	return saveBudgets(tx, budgets)
}

// TotalBudget returns the sum of all budget amounts.
func (s *budgetService) TotalBudget() (decimal.Decimal, error) {
	budgets, err := loadBudgets(s.store)
	if err != nil {
		return decimal.Zero, err
	}

	total := decimal.Zero
	for _, b := range budgets {
		total = total.Add(b.Amount)
	}
	return total, nil
}

// RebuildSpentAmounts recomputes every spent amount from the expense
// collection. The first budget of a category receives the category total and
// any later budget sharing the category is reset to zero.
func (s *budgetService) RebuildSpentAmounts() ([]models.Budget, error) {
	var result []models.Budget
	err := s.store.Transaction(func(tx *store.Store) error {
		budgets, err := loadBudgets(tx)
		if err != nil {
			return err
		}
		expenses, err := loadExpenses(tx)
		if err != nil {
			return err
		}

		sums := make(map[models.Category]decimal.Decimal)
		for _, e := range expenses {
			sums[e.Category] = sums[e.Category].Add(e.Amount)
		}

		seen := make(map[models.Category]bool)
		drifted := 0
		for i := range budgets {
			want := decimal.Zero
			if !seen[budgets[i].Category] {
				want = sums[budgets[i].Category]
				seen[budgets[i].Category] = true
			}
			if !budgets[i].SpentAmount.Equal(want) {
				drifted++
			}
			budgets[i].SpentAmount = want
		}

		if err := saveBudgets(tx, budgets); err != nil {
			return err
		}
		logger.Get().Infow("rebuilt budget spent amounts",
			"budgets", len(budgets),
			"expenses", len(expenses),
			"corrected", drifted,
		)
		result = budgets
		return nil
	})
	if err != nil {
		return nil, storageErr(err)
	}

	return result, nil
}

package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	apperrors "walletmate/internal/errors"
	"walletmate/internal/models"
	"walletmate/internal/store"
	"walletmate/internal/uuid"
)

// expenseService handles the expense ledger and cascades every change into
// the budget spent amounts.
type expenseService struct {
	store         *store.Store
	budgetService BudgetServicer
}

// NewExpenseService creates a new ExpenseServicer.
func NewExpenseService(st *store.Store, budgetService BudgetServicer) ExpenseServicer {
	return &expenseService{
		store:         st,
		budgetService: budgetService,
	}
}

// CreateExpense records a new expense against the budget for its category.
// The budget must exist and have at least amount remaining.
func (s *expenseService) CreateExpense(name string, amount decimal.Decimal, category models.Category) (*models.Expense, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrMissingRequiredField, "expense name is required")
	}
	if category == "" {
		return nil, apperrors.WithMessage(apperrors.ErrMissingRequiredField, "category is required")
	}
	if err := validateAmount(amount, "amount"); err != nil {
		return nil, err
	}

	var expense *models.Expense
	err := s.store.Transaction(func(tx *store.Store) error {
		budgets, err := loadBudgets(tx)
		if err != nil {
			return err
		}

		i := budgetIndexByCategory(budgets, category)
		if i < 0 {
			return apperrors.ErrNoMatchingBudget
		}
		remaining := budgets[i].Remaining()
		if amount.GreaterThan(remaining) {
			return apperrors.WithMessage(apperrors.ErrBudgetExceeded,
				fmt.Sprintf("You have exceeded your budget for %s. Remaining budget: %s", category, remaining.StringFixed(2)))
		}

		expenses, err := loadExpenses(tx)
		if err != nil {
			return err
		}

		created := models.Expense{
			ID:       uuid.New(),
			Name:     name,
			Amount:   amount,
			Category: category,
			Date:     time.Now().UTC(),
		}
		expenses = append(expenses, created)
		if err := saveExpenses(tx, expenses); err != nil {
			return err
		}

		if err := s.budgetService.ApplySpentAdjustments(tx, SpentAdjustment{Category: category, Delta: amount}); err != nil {
			return err
		}

		expense = &created
		return nil
	})
	if err != nil {
		return nil, storageErr(err)
	}

	return expense, nil
}

// ListExpenses returns expenses in insertion order, optionally limited to one category.
func (s *expenseService) ListExpenses(filter ExpenseFilter) ([]models.Expense, error) {
	expenses, err := loadExpenses(s.store)
	if err != nil {
		return nil, err
	}
	if filter.Category == nil {
		return expenses, nil
	}

	filtered := make([]models.Expense, 0, len(expenses))
	for _, e := range expenses {
		if e.Category == *filter.Category {
			filtered = append(filtered, e)
		}
	}
	return filtered, nil
}

// GetExpenseByID returns a single expense.
func (s *expenseService) GetExpenseByID(id string) (*models.Expense, error) {
	expenses, err := loadExpenses(s.store)
	if err != nil {
		return nil, err
	}
	i := expenseIndexByID(expenses, id)
	if i < 0 {
		return nil, apperrors.ErrExpenseNotFound
	}
	return &expenses[i], nil
}

// UpdateExpense merges the given fields into an expense and reconciles the
// affected budgets. Both budget adjustments of a category change are applied
// in the same transaction as the expense write.
func (s *expenseService) UpdateExpense(id string, update ExpenseUpdate) (*models.Expense, error) {
	if update.Name != nil && strings.TrimSpace(*update.Name) == "" {
		return nil, apperrors.WithMessage(apperrors.ErrMissingRequiredField, "expense name is required")
	}
	if update.Category != nil && *update.Category == "" {
		return nil, apperrors.WithMessage(apperrors.ErrMissingRequiredField, "category is required")
	}
	if update.Amount != nil {
		if err := validateAmount(*update.Amount, "amount"); err != nil {
			return nil, err
		}
	}

	var expense *models.Expense
	err := s.store.Transaction(func(tx *store.Store) error {
		expenses, err := loadExpenses(tx)
		if err != nil {
			return err
		}

		i := expenseIndexByID(expenses, id)
		if i < 0 {
			return apperrors.ErrExpenseNotFound
		}

		old := expenses[i]
		updated := old
		if update.Name != nil {
			updated.Name = strings.TrimSpace(*update.Name)
		}
		if update.Amount != nil {
			updated.Amount = *update.Amount
		}
		if update.Category != nil {
			updated.Category = *update.Category
		}
		expenses[i] = updated

		if err := saveExpenses(tx, expenses); err != nil {
			return err
		}

		var adjustments []SpentAdjustment
		if old.Category == updated.Category {
			adjustments = []SpentAdjustment{
				{Category: updated.Category, Delta: updated.Amount.Sub(old.Amount)},
			}
		} else {
			adjustments = []SpentAdjustment{
				{Category: old.Category, Delta: old.Amount.Neg()},
				{Category: updated.Category, Delta: updated.Amount},
			}
		}
		if err := s.budgetService.ApplySpentAdjustments(tx, adjustments...); err != nil {
			return err
		}

		expense = &updated
		return nil
	})
	if err != nil {
		return nil, storageErr(err)
	}

	return expense, nil
}

// DeleteExpense removes an expense and gives its amount back to its budget.
// Deleting a missing id is a no-op.
func (s *expenseService) DeleteExpense(id string) ([]models.Expense, error) {
	var result []models.Expense
	err := s.store.Transaction(func(tx *store.Store) error {
		expenses, err := loadExpenses(tx)
		if err != nil {
			return err
		}

		i := expenseIndexByID(expenses, id)
		if i < 0 {
			result = expenses
			return nil
		}

		removed := expenses[i]
		expenses = append(expenses[:i], expenses[i+1:]...)
		if err := saveExpenses(tx, expenses); err != nil {
			return err
		}

		if err := s.budgetService.ApplySpentAdjustments(tx, SpentAdjustment{Category: removed.Category, Delta: removed.Amount.Neg()}); err != nil {
			return err
		}

		result = expenses
		return nil
	})
	if err != nil {
		return nil, storageErr(err)
	}

	return result, nil
}

// TotalExpenses sums expense amounts, optionally for one category only.
func (s *expenseService) TotalExpenses(category *models.Category) (decimal.Decimal, error) {
	expenses, err := s.ListExpenses(ExpenseFilter{Category: category})
	if err != nil {
		return decimal.Zero, err
	}

	total := decimal.Zero
	for _, e := range expenses {
		total = total.Add(e.Amount)
	}
	return total, nil
}

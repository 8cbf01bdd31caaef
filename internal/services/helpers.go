package services

import (
	"errors"

	"github.com/shopspring/decimal"

	apperrors "walletmate/internal/errors"
	"walletmate/internal/models"
	"walletmate/internal/store"
)

// storageErr passes AppErrors through and wraps anything else as a storage failure.
func storageErr(err error) error {
	if err == nil {
		return nil
	}
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		return err
	}
	return apperrors.Wrap(apperrors.ErrStorageFailure, err)
}

func loadBudgets(st *store.Store) ([]models.Budget, error) {
	budgets, err := store.Load[models.Budget](st, store.KeyBudgets)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStorageFailure, err)
	}
	return budgets, nil
}

func saveBudgets(st *store.Store, budgets []models.Budget) error {
	if err := store.Save(st, store.KeyBudgets, budgets); err != nil {
		return apperrors.Wrap(apperrors.ErrStorageFailure, err)
	}
	return nil
}

func loadExpenses(st *store.Store) ([]models.Expense, error) {
	expenses, err := store.Load[models.Expense](st, store.KeyExpenses)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStorageFailure, err)
	}
	return expenses, nil
}

func saveExpenses(st *store.Store, expenses []models.Expense) error {
	if err := store.Save(st, store.KeyExpenses, expenses); err != nil {
		return apperrors.Wrap(apperrors.ErrStorageFailure, err)
	}
	return nil
}

// budgetIndexByCategory returns the index of the first budget with category,
// or -1. Rollover occurrences share their source's category, so the first
// match in insertion order is the lineage source.
func budgetIndexByCategory(budgets []models.Budget, category models.Category) int {
	for i := range budgets {
		if budgets[i].Category == category {
			return i
		}
	}
	return -1
}

func budgetIndexByID(budgets []models.Budget, id string) int {
	for i := range budgets {
		if budgets[i].ID == id {
			return i
		}
	}
	return -1
}

func expenseIndexByID(expenses []models.Expense, id string) int {
	for i := range expenses {
		if expenses[i].ID == id {
			return i
		}
	}
	return -1
}

// validateAmount rejects an amount that is not strictly positive. A missing
// amount is caught earlier by request binding.
func validateAmount(amount decimal.Decimal, field string) error {
	if !amount.IsPositive() {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, field+" must be greater than zero")
	}
	return nil
}

func validateBudgetCategory(category models.Category) error {
	if category == "" {
		return apperrors.WithMessage(apperrors.ErrMissingRequiredField, "category is required")
	}
	if !category.IsValid() {
		return apperrors.WithMessage(apperrors.ErrInvalidCategory, "unknown budget category: "+string(category))
	}
	return nil
}

func validateRecurrence(recurrenceType models.RecurrenceType, duration *int) error {
	if !recurrenceType.IsValid() {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "unknown recurrence type: "+string(recurrenceType))
	}
	if duration != nil && *duration < 0 {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "recurrence duration cannot be negative")
	}
	return nil
}

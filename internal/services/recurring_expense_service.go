package services

import (
	apperrors "walletmate/internal/errors"
	"walletmate/internal/models"
	"walletmate/internal/store"
	"walletmate/internal/uuid"
)

// recurringExpenseService stores free-form recurring expense templates. It
// never touches budgets or expenses.
type recurringExpenseService struct {
	store *store.Store
}

// NewRecurringExpenseService creates a new RecurringExpenseServicer.
func NewRecurringExpenseService(st *store.Store) RecurringExpenseServicer {
	return &recurringExpenseService{store: st}
}

func (s *recurringExpenseService) load(st *store.Store) ([]models.RecurringExpense, error) {
	items, err := store.Load[models.RecurringExpense](st, store.KeyRecurringExpenses)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStorageFailure, err)
	}
	return items, nil
}

func (s *recurringExpenseService) save(st *store.Store, items []models.RecurringExpense) error {
	if err := store.Save(st, store.KeyRecurringExpenses, items); err != nil {
		return apperrors.Wrap(apperrors.ErrStorageFailure, err)
	}
	return nil
}

// SaveRecurringExpense appends a template built from fields and assigns it a new id.
func (s *recurringExpenseService) SaveRecurringExpense(fields map[string]any) (models.RecurringExpense, error) {
	if len(fields) == 0 {
		return nil, apperrors.WithMessage(apperrors.ErrMissingRequiredField, "recurring expense fields are required")
	}

	record := make(models.RecurringExpense, len(fields)+1)
	for k, v := range fields {
		record[k] = v
	}
	record["id"] = uuid.New()

	err := s.store.Transaction(func(tx *store.Store) error {
		items, err := s.load(tx)
		if err != nil {
			return err
		}
		return s.save(tx, append(items, record))
	})
	if err != nil {
		return nil, storageErr(err)
	}

	return record, nil
}

// ListRecurringExpenses returns all templates in insertion order.
func (s *recurringExpenseService) ListRecurringExpenses() ([]models.RecurringExpense, error) {
	return s.load(s.store)
}

// UpdateRecurringExpense merges fields into the template with id. The id
// itself cannot be changed, and a missing id is a no-op.
func (s *recurringExpenseService) UpdateRecurringExpense(id string, fields map[string]any) error {
	err := s.store.Transaction(func(tx *store.Store) error {
		items, err := s.load(tx)
		if err != nil {
			return err
		}

		for _, item := range items {
			if item.ID() != id {
				continue
			}
			for k, v := range fields {
				if k == "id" {
					continue
				}
				item[k] = v
			}
		}
		return s.save(tx, items)
	})
	return storageErr(err)
}

// DeleteRecurringExpense removes the template with id.
func (s *recurringExpenseService) DeleteRecurringExpense(id string) error {
	err := s.store.Transaction(func(tx *store.Store) error {
		items, err := s.load(tx)
		if err != nil {
			return err
		}

		kept := items[:0]
		for _, item := range items {
			if item.ID() != id {
				kept = append(kept, item)
			}
		}
		return s.save(tx, kept)
	})
	return storageErr(err)
}

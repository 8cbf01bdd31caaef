// Package store implements the persisted key-value store behind the ledger.
// Each key holds one whole collection serialized as a JSON array, and every
// write replaces the full value.
package store

import (
	"errors"
	"fmt"

	"github.com/goccy/go-json"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"walletmate/internal/models"
)

// Collection keys.
const (
	KeyBudgets           = "budgets"
	KeyExpenses          = "expenses"
	KeyRecurringExpenses = "recurringExpenses"
)

// Store is a key-value store over a single gorm table.
type Store struct {
	db *gorm.DB
}

// New creates a Store on top of db. The kv_entries table must already exist.
func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// GetItem returns the raw value stored under key. The boolean is false when
// the key has never been written.
func (s *Store) GetItem(key string) ([]byte, bool, error) {
	var entry models.KVEntry
	err := s.db.Where(&models.KVEntry{Key: key}).Take(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get %q: %w", key, err)
	}
	return []byte(entry.Value), true, nil
}

// SetItem stores value under key, replacing any previous value.
func (s *Store) SetItem(key string, value []byte) error {
	entry := models.KVEntry{Key: key, Value: string(value)}
	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&entry).Error
	if err != nil {
		return fmt.Errorf("set %q: %w", key, err)
	}
	return nil
}

// RemoveItem deletes key. Removing a missing key is not an error.
func (s *Store) RemoveItem(key string) error {
	if err := s.db.Where(&models.KVEntry{Key: key}).Delete(&models.KVEntry{}).Error; err != nil {
		return fmt.Errorf("remove %q: %w", key, err)
	}
	return nil
}

// Transaction runs fn against a Store bound to a single database transaction.
// Every write made through tx is committed together or not at all.
func (s *Store) Transaction(fn func(tx *Store) error) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		return fn(&Store{db: tx})
	})
}

// Load decodes the collection stored under key. A key that was never written
// yields an empty, non-nil slice.
func Load[T any](s *Store, key string) ([]T, error) {
	raw, ok, err := s.GetItem(key)
	if err != nil {
		return nil, err
	}
	items := []T{}
	if !ok || len(raw) == 0 {
		return items, nil
	}
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("decode %q: %w", key, err)
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

// Save encodes items and writes them under key as a single value.
func Save[T any](s *Store, key string, items []T) error {
	if items == nil {
		items = []T{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode %q: %w", key, err)
	}
	return s.SetItem(key, raw)
}

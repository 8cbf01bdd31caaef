package models

import "time"

// KVEntry is one row of the key-value table backing the ledger. Value holds
// the JSON array of an entire collection.
type KVEntry struct {
	Key       string    `gorm:"primaryKey;size:64" json:"key"`
	Value     string    `gorm:"type:text;not null" json:"value"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName pins the table name used by the SQL migrations.
func (KVEntry) TableName() string {
	return "kv_entries"
}

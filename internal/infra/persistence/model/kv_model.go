package model

import "time"

// KeyValueModel is the GORM-specific struct for the 'kv_entries' table.
// Each row holds one JSON document written by the session stores.
type KeyValueModel struct {
	Key       string `gorm:"type:varchar(255);primary_key"`
	Value     string `gorm:"type:text;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (KeyValueModel) TableName() string {
	return "kv_entries"
}

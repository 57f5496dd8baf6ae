package schema

import "time"

// KeyValueStore holds service state keyed by name, e.g. the publish cursor of a collection
type KeyValueStore struct {
	Key       string    `gorm:"primaryKey;type:text"`
	Value     string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (KeyValueStore) TableName() string {
	return "key_value_store"
}

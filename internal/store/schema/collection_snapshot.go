package schema

import (
	"time"

	"gorm.io/datatypes"
)

// CollectionSnapshot represents the collection_snapshots table - the latest full state of a collection
type CollectionSnapshot struct {
	// CollectionAddress is the lower-case hex identity of the collection
	CollectionAddress string `gorm:"column:collection_address;primaryKey;type:text"`
	// Version increases by one with every committed operation
	Version int64 `gorm:"column:version;not null"`
	// State is the JSON encoded collection state
	State datatypes.JSON `gorm:"column:state;type:jsonb;not null"`
	// Checksum is the keccak256 of the canonical (RFC 8785) form of State
	Checksum  string    `gorm:"column:checksum;type:text;not null"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName specifies the table name for the CollectionSnapshot model
func (CollectionSnapshot) TableName() string {
	return "collection_snapshots"
}

package schema

import (
	"time"

	"gorm.io/datatypes"
)

// CollectionEvent represents the collection_events table - the append-only journal of committed operations
type CollectionEvent struct {
	// Cursor is an auto-incrementing sequence number for efficient pagination and ordering
	Cursor int64 `gorm:"column:\"cursor\";primaryKey;autoIncrement"`
	// ID is the ULID assigned when the event was committed
	ID string `gorm:"column:id;type:text;uniqueIndex;not null"`
	// CollectionAddress is the lower-case hex identity of the collection
	CollectionAddress string `gorm:"column:collection_address;type:text;not null"`
	// Version is the snapshot version the event was committed with
	Version int64 `gorm:"column:version;not null"`
	// EventType is the type of the event (minted, staked, unstaked, ...)
	EventType string `gorm:"column:event_type;type:text;not null"`
	// Actor is the lower-case hex address of the caller
	Actor string `gorm:"column:actor;type:text;not null"`
	// TokenID is set for token scoped events
	TokenID *int64 `gorm:"column:token_id"`
	// Payload is the JSON encoded event data
	Payload    datatypes.JSON `gorm:"column:payload;type:jsonb"`
	OccurredAt time.Time      `gorm:"column:occurred_at;type:timestamptz;not null"`
	CreatedAt  time.Time      `gorm:"column:created_at;autoCreateTime"`
}

// TableName specifies the table name for the CollectionEvent model
func (CollectionEvent) TableName() string {
	return "collection_events"
}

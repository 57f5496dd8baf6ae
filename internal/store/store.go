package store

import (
	"context"
	"errors"
	"time"

	"gorm.io/datatypes"

	"github.com/feral-file/ff-collection-launch/internal/store/schema"
)

// ErrVersionConflict is returned when a commit is based on a stale snapshot version
var ErrVersionConflict = errors.New("collection snapshot version conflict")

// Store defines the interface for database operations
//
//go:generate mockgen -source=store.go -destination=../mocks/store.go -package=mocks -mock_names=Store=MockStore
type Store interface {
	// GetLatestSnapshot retrieves the latest state snapshot of a collection, nil if none exists
	GetLatestSnapshot(ctx context.Context, collectionAddress string) (*schema.CollectionSnapshot, error)
	// CommitOperation stores a snapshot and the events of one operation in a single transaction
	CommitOperation(ctx context.Context, input CommitOperationInput) error
	// GetEvents retrieves events of a collection ordered by cursor, with the total count
	GetEvents(ctx context.Context, filter EventQueryFilter) ([]*schema.CollectionEvent, uint64, error)
	// GetPublishCursor retrieves the cursor of the last published event of a collection
	GetPublishCursor(ctx context.Context, collectionAddress string) (int64, error)
	// SetPublishCursor stores the cursor of the last published event of a collection
	SetPublishCursor(ctx context.Context, collectionAddress string, cursor int64) error
	// Ping checks the database connection
	Ping(ctx context.Context) error
}

// CommitOperationInput is the outcome of one collection operation
type CommitOperationInput struct {
	CollectionAddress string
	// ExpectedVersion is the version the operation was applied on, 0 for a new collection
	ExpectedVersion int64
	State           datatypes.JSON
	Checksum        string
	Events          []CreateEventInput
}

// CreateEventInput represents an event to be journaled
type CreateEventInput struct {
	ID         string
	EventType  string
	Actor      string
	TokenID    *int64
	Payload    datatypes.JSON
	OccurredAt time.Time
}

// EventQueryFilter filters the event journal of a collection
type EventQueryFilter struct {
	CollectionAddress string
	EventTypes        []string
	Actor             *string
	TokenID           *int64
	// AfterCursor returns only events with a larger cursor
	AfterCursor *int64
	Limit       int
	Offset      uint64
}

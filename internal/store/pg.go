package store

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/feral-file/ff-collection-launch/internal/store/schema"
)

const (
	// DefaultEventLimit is used when an event query does not specify a limit
	DefaultEventLimit = 50
	// MaxEventLimit caps the page size of event queries
	MaxEventLimit = 500
)

type pgStore struct {
	db *gorm.DB
}

// NewPGStore creates a new PostgreSQL store instance
func NewPGStore(db *gorm.DB) Store {
	return &pgStore{db: db}
}

// ConfigureConnectionPool configures the connection pool settings for a GORM database connection.
// If any of the pool settings are 0, defaults are used (see NormalizeConnectionPoolSettings).
func ConfigureConnectionPool(db *gorm.DB, maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime =
		NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime)

	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)
	sqlDB.SetConnMaxIdleTime(connMaxIdleTime)

	return nil
}

// NormalizeConnectionPoolSettings applies defaults and clamps pool settings into safe values.
//
// Defaults (when zero):
//   - MaxOpenConns: 10
//   - MaxIdleConns: 2
//   - ConnMaxLifetime: 5 minutes
//   - ConnMaxIdleTime: 10 minutes
func NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) (int, int, time.Duration, time.Duration) {
	if maxOpenConns == 0 {
		maxOpenConns = 10
	}
	if maxIdleConns == 0 {
		maxIdleConns = 2
	}
	if connMaxLifetime == 0 {
		connMaxLifetime = 5 * time.Minute
	}
	if connMaxIdleTime == 0 {
		connMaxIdleTime = 10 * time.Minute
	}

	// Ensure MaxIdleConns doesn't exceed MaxOpenConns
	if maxIdleConns > maxOpenConns {
		maxIdleConns = maxOpenConns
	}

	return maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime
}

// GetLatestSnapshot retrieves the latest state snapshot of a collection
func (s *pgStore) GetLatestSnapshot(ctx context.Context, collectionAddress string) (*schema.CollectionSnapshot, error) {
	var snapshot schema.CollectionSnapshot
	err := s.db.WithContext(ctx).Where("collection_address = ?", collectionAddress).First(&snapshot).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get collection snapshot: %w", err)
	}

	return &snapshot, nil
}

// CommitOperation stores the snapshot with version ExpectedVersion+1 and journals the events.
// The snapshot is only written when the stored version still equals ExpectedVersion.
func (s *pgStore) CommitOperation(ctx context.Context, input CommitOperationInput) error {
	if input.CollectionAddress == "" {
		return fmt.Errorf("collection address is required")
	}
	nextVersion := input.ExpectedVersion + 1

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if input.ExpectedVersion == 0 {
			snapshot := schema.CollectionSnapshot{
				CollectionAddress: input.CollectionAddress,
				Version:           nextVersion,
				State:             input.State,
				Checksum:          input.Checksum,
			}
			result := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&snapshot)
			if result.Error != nil {
				return fmt.Errorf("failed to create collection snapshot: %w", result.Error)
			}
			if result.RowsAffected == 0 {
				return ErrVersionConflict
			}
		} else {
			result := tx.Model(&schema.CollectionSnapshot{}).
				Where("collection_address = ? AND version = ?", input.CollectionAddress, input.ExpectedVersion).
				Updates(map[string]interface{}{
					"version":    nextVersion,
					"state":      input.State,
					"checksum":   input.Checksum,
					"updated_at": time.Now(),
				})
			if result.Error != nil {
				return fmt.Errorf("failed to update collection snapshot: %w", result.Error)
			}
			if result.RowsAffected == 0 {
				return ErrVersionConflict
			}
		}

		if len(input.Events) == 0 {
			return nil
		}

		events := make([]schema.CollectionEvent, 0, len(input.Events))
		for _, e := range input.Events {
			events = append(events, schema.CollectionEvent{
				ID:                e.ID,
				CollectionAddress: input.CollectionAddress,
				Version:           nextVersion,
				EventType:         e.EventType,
				Actor:             e.Actor,
				TokenID:           e.TokenID,
				Payload:           e.Payload,
				OccurredAt:        e.OccurredAt,
			})
		}
		if err := tx.Create(&events).Error; err != nil {
			return fmt.Errorf("failed to create collection events: %w", err)
		}

		return nil
	})
}

// GetEvents retrieves events of a collection ordered by cursor
func (s *pgStore) GetEvents(ctx context.Context, filter EventQueryFilter) ([]*schema.CollectionEvent, uint64, error) {
	query := s.db.WithContext(ctx).Model(&schema.CollectionEvent{}).
		Where("collection_address = ?", filter.CollectionAddress)

	if len(filter.EventTypes) > 0 {
		query = query.Where("event_type IN ?", filter.EventTypes)
	}
	if filter.Actor != nil {
		query = query.Where("actor = ?", *filter.Actor)
	}
	if filter.TokenID != nil {
		query = query.Where("token_id = ?", *filter.TokenID)
	}
	if filter.AfterCursor != nil {
		query = query.Where("\"cursor\" > ?", *filter.AfterCursor)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count collection events: %w", err)
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = DefaultEventLimit
	}
	if limit > MaxEventLimit {
		limit = MaxEventLimit
	}

	var events []*schema.CollectionEvent
	err := query.Order("\"cursor\" ASC").
		Limit(limit).
		Offset(int(filter.Offset)). //nolint:gosec,G115
		Find(&events).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get collection events: %w", err)
	}

	return events, uint64(total), nil //nolint:gosec,G115
}

// GetPublishCursor retrieves the cursor of the last published event of a collection
func (s *pgStore) GetPublishCursor(ctx context.Context, collectionAddress string) (int64, error) {
	var kv schema.KeyValueStore
	err := s.db.WithContext(ctx).Where("key = ?", publishCursorKey(collectionAddress)).First(&kv).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil // Nothing has been published yet
		}
		return 0, fmt.Errorf("failed to get publish cursor: %w", err)
	}

	cursor, err := strconv.ParseInt(kv.Value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse publish cursor: %w", err)
	}

	return cursor, nil
}

// SetPublishCursor stores the cursor of the last published event of a collection
func (s *pgStore) SetPublishCursor(ctx context.Context, collectionAddress string, cursor int64) error {
	kv := schema.KeyValueStore{
		Key:   publishCursorKey(collectionAddress),
		Value: strconv.FormatInt(cursor, 10),
	}

	err := s.db.WithContext(ctx).Save(&kv).Error
	if err != nil {
		return fmt.Errorf("failed to set publish cursor: %w", err)
	}

	return nil
}

// Ping checks the database connection
func (s *pgStore) Ping(ctx context.Context) error {
	if err := s.db.WithContext(ctx).Exec("SELECT 1").Error; err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}
	return nil
}

func publishCursorKey(collectionAddress string) string {
	return fmt.Sprintf("publish_cursor:%s", collectionAddress)
}

package store

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

const testCollection = "0x5fbdb2315678afecb367f032d93f642f64180aa3"

// RunStoreTests runs all store tests against a store implementation
func RunStoreTests(t *testing.T, initDB func(t *testing.T) Store) {
	tests := []struct {
		name string
		fn   func(*testing.T, Store)
	}{
		{"CommitOperation", testCommitOperation},
		{"CommitOperationVersionConflict", testCommitOperationVersionConflict},
		{"GetEvents", testGetEvents},
		{"PublishCursor", testPublishCursor},
		{"Ping", testPing},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := initDB(t)
			tt.fn(t, store)
		})
	}
}

// =============================================================================
// Test Data Builders
// =============================================================================

func buildTestEvent(id, eventType, actor string, tokenID *int64) CreateEventInput {
	return CreateEventInput{
		ID:         id,
		EventType:  eventType,
		Actor:      actor,
		TokenID:    tokenID,
		Payload:    datatypes.JSON(fmt.Sprintf(`{"event":"%s"}`, id)),
		OccurredAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func int64Ptr(v int64) *int64 {
	return &v
}

func stringPtr(v string) *string {
	return &v
}

// =============================================================================
// Tests
// =============================================================================

func testCommitOperation(t *testing.T, store Store) {
	ctx := context.Background()

	snapshot, err := store.GetLatestSnapshot(ctx, testCollection)
	require.NoError(t, err)
	assert.Nil(t, snapshot)

	err = store.CommitOperation(ctx, CommitOperationInput{
		CollectionAddress: testCollection,
		ExpectedVersion:   0,
		State:             datatypes.JSON(`{"total_minted":0}`),
		Checksum:          "0x01",
	})
	require.NoError(t, err)

	err = store.CommitOperation(ctx, CommitOperationInput{
		CollectionAddress: testCollection,
		ExpectedVersion:   1,
		State:             datatypes.JSON(`{"total_minted":2}`),
		Checksum:          "0x02",
		Events: []CreateEventInput{
			buildTestEvent("01J0000000000000000000000A", "minted", "0xaa", nil),
		},
	})
	require.NoError(t, err)

	snapshot, err = store.GetLatestSnapshot(ctx, testCollection)
	require.NoError(t, err)
	require.NotNil(t, snapshot)
	assert.Equal(t, int64(2), snapshot.Version)
	assert.Equal(t, "0x02", snapshot.Checksum)
	assert.JSONEq(t, `{"total_minted":2}`, string(snapshot.State))

	events, total, err := store.GetEvents(ctx, EventQueryFilter{CollectionAddress: testCollection})
	require.NoError(t, err)
	assert.Equal(t, uint64(1), total)
	require.Len(t, events, 1)
	assert.Equal(t, int64(2), events[0].Version)
	assert.Equal(t, "minted", events[0].EventType)
	assert.JSONEq(t, `{"event":"01J0000000000000000000000A"}`, string(events[0].Payload))
}

func testCommitOperationVersionConflict(t *testing.T, store Store) {
	ctx := context.Background()

	input := CommitOperationInput{
		CollectionAddress: testCollection,
		ExpectedVersion:   0,
		State:             datatypes.JSON(`{}`),
		Checksum:          "0x01",
	}
	require.NoError(t, store.CommitOperation(ctx, input))

	// a second creation of the same collection conflicts
	err := store.CommitOperation(ctx, input)
	assert.ErrorIs(t, err, ErrVersionConflict)

	// stale version with events: neither snapshot nor events are written
	err = store.CommitOperation(ctx, CommitOperationInput{
		CollectionAddress: testCollection,
		ExpectedVersion:   5,
		State:             datatypes.JSON(`{"stale":true}`),
		Checksum:          "0x05",
		Events: []CreateEventInput{
			buildTestEvent("01J0000000000000000000000B", "staked", "0xaa", int64Ptr(1)),
		},
	})
	assert.ErrorIs(t, err, ErrVersionConflict)

	snapshot, err := store.GetLatestSnapshot(ctx, testCollection)
	require.NoError(t, err)
	assert.Equal(t, int64(1), snapshot.Version)
	assert.Equal(t, "0x01", snapshot.Checksum)

	_, total, err := store.GetEvents(ctx, EventQueryFilter{CollectionAddress: testCollection})
	require.NoError(t, err)
	assert.Equal(t, uint64(0), total)

	err = store.CommitOperation(ctx, CommitOperationInput{})
	assert.Error(t, err)
}

func testGetEvents(t *testing.T, store Store) {
	ctx := context.Background()

	require.NoError(t, store.CommitOperation(ctx, CommitOperationInput{
		CollectionAddress: testCollection,
		State:             datatypes.JSON(`{}`),
		Checksum:          "0x01",
		Events: []CreateEventInput{
			buildTestEvent("01J0000000000000000000000C", "minted", "0xaa", nil),
			buildTestEvent("01J0000000000000000000000D", "staked", "0xaa", int64Ptr(1)),
			buildTestEvent("01J0000000000000000000000E", "staked", "0xbb", int64Ptr(2)),
			buildTestEvent("01J0000000000000000000000F", "unstaked", "0xaa", int64Ptr(1)),
		},
	}))
	// events of another collection are never returned
	require.NoError(t, store.CommitOperation(ctx, CommitOperationInput{
		CollectionAddress: "0xother",
		State:             datatypes.JSON(`{}`),
		Checksum:          "0x01",
		Events: []CreateEventInput{
			buildTestEvent("01J0000000000000000000000G", "minted", "0xaa", nil),
		},
	}))

	t.Run("all events in order", func(t *testing.T) {
		events, total, err := store.GetEvents(ctx, EventQueryFilter{CollectionAddress: testCollection})
		require.NoError(t, err)
		assert.Equal(t, uint64(4), total)
		require.Len(t, events, 4)
		for i := 1; i < len(events); i++ {
			assert.Greater(t, events[i].Cursor, events[i-1].Cursor)
		}
		assert.Equal(t, "01J0000000000000000000000C", events[0].ID)
	})

	t.Run("filter by type", func(t *testing.T) {
		events, total, err := store.GetEvents(ctx, EventQueryFilter{
			CollectionAddress: testCollection,
			EventTypes:        []string{"staked"},
		})
		require.NoError(t, err)
		assert.Equal(t, uint64(2), total)
		assert.Len(t, events, 2)
	})

	t.Run("filter by actor and token", func(t *testing.T) {
		events, total, err := store.GetEvents(ctx, EventQueryFilter{
			CollectionAddress: testCollection,
			Actor:             stringPtr("0xaa"),
			TokenID:           int64Ptr(1),
		})
		require.NoError(t, err)
		assert.Equal(t, uint64(2), total)
		require.Len(t, events, 2)
		assert.Equal(t, "staked", events[0].EventType)
		assert.Equal(t, "unstaked", events[1].EventType)
	})

	t.Run("pagination", func(t *testing.T) {
		events, total, err := store.GetEvents(ctx, EventQueryFilter{
			CollectionAddress: testCollection,
			Limit:             2,
			Offset:            1,
		})
		require.NoError(t, err)
		assert.Equal(t, uint64(4), total)
		require.Len(t, events, 2)
		assert.Equal(t, "01J0000000000000000000000D", events[0].ID)
	})

	t.Run("after cursor", func(t *testing.T) {
		all, _, err := store.GetEvents(ctx, EventQueryFilter{CollectionAddress: testCollection})
		require.NoError(t, err)

		events, total, err := store.GetEvents(ctx, EventQueryFilter{
			CollectionAddress: testCollection,
			AfterCursor:       &all[1].Cursor,
		})
		require.NoError(t, err)
		assert.Equal(t, uint64(2), total)
		assert.Equal(t, all[2].ID, events[0].ID)
	})
}

func testPublishCursor(t *testing.T, store Store) {
	ctx := context.Background()

	cursor, err := store.GetPublishCursor(ctx, testCollection)
	require.NoError(t, err)
	assert.Equal(t, int64(0), cursor)

	require.NoError(t, store.SetPublishCursor(ctx, testCollection, 42))
	cursor, err = store.GetPublishCursor(ctx, testCollection)
	require.NoError(t, err)
	assert.Equal(t, int64(42), cursor)

	require.NoError(t, store.SetPublishCursor(ctx, testCollection, 43))
	cursor, err = store.GetPublishCursor(ctx, testCollection)
	require.NoError(t, err)
	assert.Equal(t, int64(43), cursor)
}

func testPing(t *testing.T, store Store) {
	assert.NoError(t, store.Ping(context.Background()))
}

package jetstream_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/golang/mock/gomock"
	"github.com/nats-io/nats.go/jetstream"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-collection-launch/internal/adapter"
	"github.com/feral-file/ff-collection-launch/internal/domain"
	"github.com/feral-file/ff-collection-launch/internal/mocks"
	jetstreamProvider "github.com/feral-file/ff-collection-launch/internal/providers/jetstream"
)

var collectionAddr = common.HexToAddress("0x5FbDB2315678afecb367f032d93F642f64180aa3")

func testEvent() *domain.Event {
	id := domain.TokenID(3)
	return &domain.Event{
		ID:         "01J9Z6X7Q8R9S0T1V2W3X4Y5Z6",
		Collection: collectionAddr,
		Type:       domain.EventTypeStaked,
		Actor:      common.HexToAddress("0x70997970C51812dc3A010C7d01b50e0d17dc79C8"),
		TokenID:    &id,
		Timestamp:  time.Unix(1_700_000_000, 0).UTC(),
		Data:       &domain.StakedData{OptionIndex: 0},
	}
}

func newTestPublisher(t *testing.T, ctrl *gomock.Controller, retries uint64) (*mocks.MockJetStream, *mocks.MockNatsConn, func() error) {
	t.Helper()

	mockNatsJS := mocks.NewMockNatsJetStream(ctrl)
	mockJS := mocks.NewMockJetStream(ctrl)
	mockConn := mocks.NewMockNatsConn(ctrl)

	mockNatsJS.EXPECT().
		Connect("nats://localhost:4222", gomock.Any()).
		Return(mockConn, mockJS, nil)

	p, err := jetstreamProvider.NewPublisher(jetstreamProvider.Config{
		URL:                  "nats://localhost:4222",
		StreamName:           "COLLECTION_EVENTS",
		ConnectionName:       "test",
		PublishRetries:       retries,
		PublishRetryInterval: time.Millisecond,
	}, mockNatsJS, adapter.NewJSON())
	require.NoError(t, err)

	return mockJS, mockConn, func() error { return p.PublishEvent(context.Background(), testEvent()) }
}

func TestBuildSubject(t *testing.T) {
	assert.Equal(t,
		"collection.0x5fbdb2315678afecb367f032d93f642f64180aa3.staked",
		jetstreamProvider.BuildSubject(testEvent()))
}

func TestPublisher_PublishEvent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockJS, _, publish := newTestPublisher(t, ctrl, 0)

	mockJS.EXPECT().
		Publish(gomock.Any(), "collection.0x5fbdb2315678afecb367f032d93f642f64180aa3.staked", gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, subject string, data []byte, opts ...jetstream.PublishOpt) (*jetstream.PubAck, error) {
			var decoded map[string]interface{}
			require.NoError(t, json.Unmarshal(data, &decoded))
			assert.Equal(t, "staked", decoded["type"])
			assert.Equal(t, float64(3), decoded["token_id"])
			assert.Len(t, opts, 2)
			return &jetstream.PubAck{Stream: "COLLECTION_EVENTS", Sequence: 1}, nil
		})

	require.NoError(t, publish())
}

func TestPublisher_RetriesThenSucceeds(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockJS, _, publish := newTestPublisher(t, ctrl, 3)

	gomock.InOrder(
		mockJS.EXPECT().Publish(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errors.New("nats: timeout")),
		mockJS.EXPECT().Publish(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(&jetstream.PubAck{Sequence: 2}, nil),
	)

	require.NoError(t, publish())
}

func TestPublisher_GivesUp(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockJS, _, publish := newTestPublisher(t, ctrl, 2)

	mockJS.EXPECT().
		Publish(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, errors.New("nats: no responders")).
		Times(3)

	err := publish()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to publish event")
}

func TestNewPublisher_ConnectError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockNatsJS := mocks.NewMockNatsJetStream(ctrl)
	mockNatsJS.EXPECT().
		Connect(gomock.Any(), gomock.Any()).
		Return(nil, nil, errors.New("connection refused"))

	_, err := jetstreamProvider.NewPublisher(jetstreamProvider.Config{URL: "nats://localhost:4222"}, mockNatsJS, adapter.NewJSON())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to connect to NATS")
}

func TestPublisher_Close(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockNatsJS := mocks.NewMockNatsJetStream(ctrl)
	mockConn := mocks.NewMockNatsConn(ctrl)
	mockNatsJS.EXPECT().
		Connect(gomock.Any(), gomock.Any()).
		Return(mockConn, mocks.NewMockJetStream(ctrl), nil)
	mockConn.EXPECT().Close()

	p, err := jetstreamProvider.NewPublisher(jetstreamProvider.Config{URL: "nats://localhost:4222"}, mockNatsJS, adapter.NewJSON())
	require.NoError(t, err)
	p.Close()
}

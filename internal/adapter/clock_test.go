package adapter_test

import (
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/feral-file/ff-collection-launch/internal/adapter"
	"github.com/feral-file/ff-collection-launch/internal/mocks"
)

func TestMonotonicClock_NeverGoesBackwards(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	base := time.Unix(1_700_000_000, 0).UTC()
	inner := mocks.NewMockClock(ctrl)
	gomock.InOrder(
		inner.EXPECT().Now().Return(base.Add(1500*time.Millisecond)),
		inner.EXPECT().Now().Return(base),
		inner.EXPECT().Now().Return(base.Add(3*time.Second)),
	)

	clock := adapter.NewMonotonicClock(inner)

	assert.Equal(t, base.Add(time.Second), clock.Now())
	assert.Equal(t, base.Add(time.Second), clock.Now(), "earlier reading is clamped")
	assert.Equal(t, base.Add(3*time.Second), clock.Now())
}

func TestRealClock_UTC(t *testing.T) {
	now := adapter.NewClock().Now()
	assert.Equal(t, time.UTC, now.Location())
}

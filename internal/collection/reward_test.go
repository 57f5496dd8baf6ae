package collection_test

import (
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-collection-launch/internal/collection"
	"github.com/feral-file/ff-collection-launch/internal/domain"
)

func TestComputeReward(t *testing.T) {
	option := domain.StakeOption{
		Interval:          5000 * time.Second,
		RewardPerInterval: uint256.NewInt(1000),
		ExtensionLimit:    5,
		Enabled:           true,
	}

	tests := []struct {
		name           string
		elapsed        time.Duration
		lifetime       uint64
		identity       common.Address
		expectedCount  uint64
		expectedReward uint64
	}{
		{name: "before first interval", elapsed: 4999 * time.Second, identity: alice},
		{name: "one interval", elapsed: 7500 * time.Second, identity: alice, expectedCount: 1, expectedReward: 1000},
		{name: "three intervals", elapsed: 15100 * time.Second, identity: alice, expectedCount: 3, expectedReward: 3000},
		{name: "capped by extension limit", elapsed: 40000 * time.Second, identity: alice, expectedCount: 6, expectedReward: 6000},
		{name: "capped by lifetime headroom", elapsed: 40000 * time.Second, lifetime: 2, identity: alice, expectedCount: 5, expectedReward: 5000},
		{name: "lifetime exhausted", elapsed: 40000 * time.Second, lifetime: 7, identity: alice},
		{name: "lifetime beyond limit", elapsed: 40000 * time.Second, lifetime: 9, identity: alice},
		{name: "not the original minter", elapsed: 40000 * time.Second, identity: bob},
		{name: "clock behind start", elapsed: -10 * time.Second, identity: alice},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			count, reward, err := collection.ComputeReward(collection.RewardInput{
				Option:        option,
				StartTime:     fixedTime,
				Now:           fixedTime.Add(tt.elapsed),
				StakeLimit:    7,
				LifetimeCount: tt.lifetime,
				Identity:      tt.identity,
				Minter:        alice,
			})
			require.NoError(t, err)
			assert.Equal(t, tt.expectedCount, count)
			assert.Equal(t, uint256.NewInt(tt.expectedReward), reward)
		})
	}
}

func TestComputeReward_Monotonic(t *testing.T) {
	option := domain.StakeOption{
		Interval:          time.Hour,
		RewardPerInterval: uint256.NewInt(3),
		ExtensionLimit:    10,
	}

	var last uint64
	for elapsed := time.Duration(0); elapsed <= 24*time.Hour; elapsed += 17 * time.Minute {
		count, _, err := collection.ComputeReward(collection.RewardInput{
			Option:     option,
			StartTime:  fixedTime,
			Now:        fixedTime.Add(elapsed),
			StakeLimit: 8,
			Identity:   alice,
			Minter:     alice,
		})
		require.NoError(t, err)
		assert.GreaterOrEqual(t, count, last)
		assert.LessOrEqual(t, count, uint64(8))
		last = count
	}
	assert.Equal(t, uint64(8), last)
}

func TestComputeReward_ExtremeValues(t *testing.T) {
	limit := ^uint64(0)

	count, _, err := collection.ComputeReward(collection.RewardInput{
		Option: domain.StakeOption{
			Interval:          time.Second,
			RewardPerInterval: uint256.NewInt(1),
			ExtensionLimit:    limit,
		},
		StartTime:  fixedTime,
		Now:        fixedTime.Add(10 * time.Second),
		StakeLimit: limit,
		Identity:   alice,
		Minter:     alice,
	})
	require.NoError(t, err)
	assert.Equal(t, uint64(10), count)

	_, _, err = collection.ComputeReward(collection.RewardInput{
		Option: domain.StakeOption{
			Interval:          time.Second,
			RewardPerInterval: new(uint256.Int).SetAllOne(),
			ExtensionLimit:    5,
		},
		StartTime:  fixedTime,
		Now:        fixedTime.Add(10 * time.Second),
		StakeLimit: 10,
		Identity:   alice,
		Minter:     alice,
	})
	assert.ErrorIs(t, err, domain.ErrArithmeticOverflow)
}

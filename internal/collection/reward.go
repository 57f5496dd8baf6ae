package collection

import (
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"

	"github.com/feral-file/ff-collection-launch/internal/domain"
)

// RewardInput is everything the reward of a single stake cycle depends on
type RewardInput struct {
	Option        domain.StakeOption
	StartTime     time.Time
	Now           time.Time
	StakeLimit    uint64
	LifetimeCount uint64
	Identity      common.Address
	Minter        common.Address
}

// ComputeReward returns the number of reward intervals and the reward amount
// earned by a stake cycle. Only the original minter of a token earns rewards.
//
// The count is capped by the completed intervals, the remaining lifetime
// headroom of the token and one interval plus the option extension limit.
func ComputeReward(in RewardInput) (uint64, *uint256.Int, error) {
	if in.Identity != in.Minter || in.Option.Interval <= 0 {
		return 0, uint256.NewInt(0), nil
	}

	elapsed := in.Now.Sub(in.StartTime)
	if elapsed < 0 {
		elapsed = 0
	}
	count := uint64(elapsed / in.Option.Interval) //nolint:gosec,G115 // non-negative

	var headroom uint64
	if in.StakeLimit > in.LifetimeCount {
		headroom = in.StakeLimit - in.LifetimeCount
	}
	count = min(count, headroom)

	// extension limit + 1 saturates instead of wrapping
	if in.Option.ExtensionLimit < ^uint64(0) {
		count = min(count, in.Option.ExtensionLimit+1)
	}

	reward, overflow := new(uint256.Int).MulOverflow(uint256.NewInt(count), domain.CloneAmount(in.Option.RewardPerInterval))
	if overflow {
		return 0, nil, domain.ErrArithmeticOverflow
	}
	return count, reward, nil
}

// rewardOf computes the reward of a staked token for identity at now
func (s *State) rewardOf(token *domain.Token, identity common.Address, now time.Time) (uint64, *uint256.Int, error) {
	option := s.Params.StakeOptions[token.Stake.OptionIndex]
	return ComputeReward(RewardInput{
		Option:        option,
		StartTime:     token.Stake.StartTime,
		Now:           now,
		StakeLimit:    s.Params.StakeLimitPerToken,
		LifetimeCount: token.LifetimeRewardCount,
		Identity:      identity,
		Minter:        token.OriginalMinter,
	})
}

package collection

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"

	"github.com/feral-file/ff-collection-launch/internal/domain"
)

// Stake locks tokenIDs under the stake option at optionIndex. The caller must
// own every token and none of them may be staked already.
func (c *Collection) Stake(caller common.Address, tokenIDs []domain.TokenID, optionIndex int) ([]domain.Event, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(tokenIDs) == 0 {
		return nil, domain.ErrEmptyTokenList
	}

	p := &c.state.Params
	if optionIndex < 0 || optionIndex >= len(p.StakeOptions) {
		return nil, domain.ErrInvalidOption
	}
	if !p.StakeOptions[optionIndex].Enabled {
		return nil, domain.ErrOptionDisabled
	}

	seen := make(map[domain.TokenID]struct{}, len(tokenIDs))
	for _, id := range tokenIDs {
		token, ok := c.state.Tokens[id]
		if !ok || token.Owner != caller {
			return nil, fmt.Errorf("token %s: %w", id, domain.ErrNotTokenOwner)
		}
		if _, dup := seen[id]; dup || token.Staked() {
			return nil, fmt.Errorf("token %s: %w", id, domain.ErrAlreadyStaked)
		}
		if token.LifetimeRewardCount >= p.StakeLimitPerToken {
			return nil, fmt.Errorf("token %s: %w", id, domain.ErrStakeLimitExhausted)
		}
		seen[id] = struct{}{}
	}

	now := c.clock.Now()
	events := make([]domain.Event, 0, len(tokenIDs))
	for _, id := range tokenIDs {
		c.state.Tokens[id].Stake = &domain.StakeRecord{
			OptionIndex: optionIndex,
			StartTime:   now,
			Staker:      caller,
		}
		events = append(events, c.newEvent(domain.EventTypeStaked, caller, tokenRef(id), &domain.StakedData{
			OptionIndex: optionIndex,
			StartTime:   now,
		}))
	}
	return events, nil
}

// Unstake ends the stake cycle of tokenIDs and pays the earned rewards from
// the pooled balance to the caller. Only the wallet that staked a token may
// unstake it; only the original minter of a token earns a reward.
func (c *Collection) Unstake(caller common.Address, tokenIDs []domain.TokenID) ([]domain.Event, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(tokenIDs) == 0 {
		return nil, domain.ErrEmptyTokenList
	}

	type settlement struct {
		token  *domain.Token
		count  uint64
		reward *uint256.Int
	}

	now := c.clock.Now()
	total := uint256.NewInt(0)
	settlements := make([]settlement, 0, len(tokenIDs))
	seen := make(map[domain.TokenID]struct{}, len(tokenIDs))
	for _, id := range tokenIDs {
		token, ok := c.state.Tokens[id]
		if _, dup := seen[id]; dup || !ok || !token.Staked() {
			return nil, fmt.Errorf("token %s: %w", id, domain.ErrNotStaked)
		}
		if token.Stake.Staker != caller {
			return nil, fmt.Errorf("token %s: %w", id, domain.ErrNotStakeOwner)
		}
		seen[id] = struct{}{}

		count, reward, err := c.state.rewardOf(token, caller, now)
		if err != nil {
			return nil, fmt.Errorf("token %s: %w", id, err)
		}
		var overflow bool
		if total, overflow = new(uint256.Int).AddOverflow(total, reward); overflow {
			return nil, domain.ErrArithmeticOverflow
		}
		settlements = append(settlements, settlement{token: token, count: count, reward: reward})
	}

	if total.Gt(c.state.Pool) {
		return nil, domain.ErrInsufficientBalance
	}
	if !total.IsZero() {
		if _, overflow := new(uint256.Int).AddOverflow(c.state.credit(caller), total); overflow {
			return nil, domain.ErrArithmeticOverflow
		}
	}

	events := make([]domain.Event, 0, len(settlements))
	for _, s := range settlements {
		record := s.token.Stake
		if s.count > 0 {
			s.token.LifetimeRewardCount += s.count
			c.state.Pool = new(uint256.Int).Sub(c.state.Pool, s.reward)
			c.state.Credits[caller] = new(uint256.Int).Add(c.state.credit(caller), s.reward)
		}
		s.token.Stake = nil

		events = append(events, c.newEvent(domain.EventTypeUnstaked, caller, tokenRef(s.token.ID), &domain.UnstakedData{
			TokenID:              s.token.ID,
			OptionIndex:          record.OptionIndex,
			Reward:               s.reward,
			RewardCount:          s.count,
			TotalTokenStakeCount: s.token.LifetimeRewardCount,
			StartTime:            record.StartTime,
			EndTime:              now,
		}))
	}
	return events, nil
}

// CalculateTokenStakeRewards projects the rewards caller would receive when
// unstaking tokenIDs now. It never changes the collection state.
func (c *Collection) CalculateTokenStakeRewards(caller common.Address, tokenIDs []domain.TokenID) ([]domain.StakeReward, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	now := c.clock.Now()
	rewards := make([]domain.StakeReward, 0, len(tokenIDs))
	for _, id := range tokenIDs {
		token, ok := c.state.Tokens[id]
		if !ok || !token.Staked() {
			return nil, fmt.Errorf("token %s: %w", id, domain.ErrNotStaked)
		}
		count, reward, err := c.state.rewardOf(token, caller, now)
		if err != nil {
			return nil, fmt.Errorf("token %s: %w", id, err)
		}
		rewards = append(rewards, domain.StakeReward{
			TokenID:     id,
			Reward:      reward,
			RewardCount: count,
		})
	}
	return rewards, nil
}

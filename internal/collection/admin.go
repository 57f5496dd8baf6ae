package collection

import (
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"

	"github.com/feral-file/ff-collection-launch/internal/access"
	"github.com/feral-file/ff-collection-launch/internal/domain"
)

// Owner administration operations. Every operation is rejected with
// domain.ErrNotOwner unless the access policy grants the caller RoleOwner.

// TogglePublicSale flips the public sale flag
func (c *Collection) TogglePublicSale(caller common.Address) ([]domain.Event, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.policy.Authorize(caller, access.RoleOwner); err != nil {
		return nil, err
	}

	c.state.Params.PublicSaleEnabled = !c.state.Params.PublicSaleEnabled
	return c.parametersUpdated(caller, "toggle_public_sale", c.state.Params.PublicSaleEnabled), nil
}

// SetPhase selects the whitelist phase private mints are checked against
func (c *Collection) SetPhase(caller common.Address, phase int) ([]domain.Event, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.policy.Authorize(caller, access.RoleOwner); err != nil {
		return nil, err
	}
	if phase < 0 || phase >= len(c.state.Params.PhaseCost) {
		return nil, domain.ErrInvalidPhase
	}

	c.state.Params.CurrentPhase = phase
	return c.parametersUpdated(caller, "set_phase", phase), nil
}

// SetPublicSaleCost sets the per-token price of the public sale
func (c *Collection) SetPublicSaleCost(caller common.Address, cost *uint256.Int) ([]domain.Event, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.policy.Authorize(caller, access.RoleOwner); err != nil {
		return nil, err
	}

	c.state.Params.PublicSaleCost = domain.CloneAmount(cost)
	return c.parametersUpdated(caller, "set_public_sale_cost", c.state.Params.PublicSaleCost.Dec()), nil
}

// SetMintLimitByWallet replaces the per-phase wallet limits and the public sale wallet limit
func (c *Collection) SetMintLimitByWallet(caller common.Address, phaseLimits []uint64, publicLimit uint64) ([]domain.Event, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.policy.Authorize(caller, access.RoleOwner); err != nil {
		return nil, err
	}
	if len(phaseLimits) != len(c.state.Params.PhaseWalletLimit) {
		return nil, domain.ErrInvalidLimitLength
	}

	c.state.Params.PhaseWalletLimit = append([]uint64(nil), phaseLimits...)
	c.state.Params.PublicSaleWalletLimit = publicLimit
	return c.parametersUpdated(caller, "set_mint_limit_by_wallet", map[string]any{
		"phase_wallet_limit":       c.state.Params.PhaseWalletLimit,
		"public_sale_wallet_limit": publicLimit,
	}), nil
}

// BlacklistSignatures permanently revokes whitelist signatures
func (c *Collection) BlacklistSignatures(caller common.Address, sigs [][]byte) ([]domain.Event, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.policy.Authorize(caller, access.RoleOwner); err != nil {
		return nil, err
	}

	keys := make([]string, 0, len(sigs))
	for _, sig := range sigs {
		key := signatureKey(sig)
		c.state.Blacklist[key] = true
		keys = append(keys, key)
	}
	return []domain.Event{c.newEvent(domain.EventTypeSignatureBlacklist, caller, nil, &domain.SignaturesBlacklistedData{
		Signatures: keys,
	})}, nil
}

// UpdateStakeLimitPerToken sets the lifetime cap on reward intervals per token
func (c *Collection) UpdateStakeLimitPerToken(caller common.Address, limit uint64) ([]domain.Event, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.policy.Authorize(caller, access.RoleOwner); err != nil {
		return nil, err
	}

	c.state.Params.StakeLimitPerToken = limit
	return c.parametersUpdated(caller, "update_stake_limit_per_token", limit), nil
}

// AddStakeOption appends a stake option and returns its index in the event payload
func (c *Collection) AddStakeOption(caller common.Address, interval time.Duration, reward *uint256.Int, extensionLimit uint64, enabled bool) ([]domain.Event, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.policy.Authorize(caller, access.RoleOwner); err != nil {
		return nil, err
	}
	if interval <= 0 {
		return nil, domain.ErrInvalidInterval
	}

	option := domain.StakeOption{
		Interval:          interval,
		RewardPerInterval: domain.CloneAmount(reward),
		ExtensionLimit:    extensionLimit,
		Enabled:           enabled,
	}
	c.state.Params.StakeOptions = append(c.state.Params.StakeOptions, option)
	return c.parametersUpdated(caller, "add_stake_option", stakeOptionValue(len(c.state.Params.StakeOptions)-1, option)), nil
}

// UpdateStakeOption replaces the stake option at index. Active stake cycles
// using the option are settled with the new values.
func (c *Collection) UpdateStakeOption(caller common.Address, index int, interval time.Duration, reward *uint256.Int, extensionLimit uint64, enabled bool) ([]domain.Event, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.policy.Authorize(caller, access.RoleOwner); err != nil {
		return nil, err
	}
	if index < 0 || index >= len(c.state.Params.StakeOptions) {
		return nil, domain.ErrInvalidOption
	}
	if interval <= 0 {
		return nil, domain.ErrInvalidInterval
	}

	option := domain.StakeOption{
		Interval:          interval,
		RewardPerInterval: domain.CloneAmount(reward),
		ExtensionLimit:    extensionLimit,
		Enabled:           enabled,
	}
	c.state.Params.StakeOptions[index] = option
	return c.parametersUpdated(caller, "update_stake_option", stakeOptionValue(index, option)), nil
}

// ToggleAllStakeOptions sets the enabled flag of every stake option
func (c *Collection) ToggleAllStakeOptions(caller common.Address, enabled bool) ([]domain.Event, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.policy.Authorize(caller, access.RoleOwner); err != nil {
		return nil, err
	}

	for i := range c.state.Params.StakeOptions {
		c.state.Params.StakeOptions[i].Enabled = enabled
	}
	return c.parametersUpdated(caller, "toggle_all_stake_options", enabled), nil
}

func (c *Collection) parametersUpdated(caller common.Address, operation string, value any) []domain.Event {
	return []domain.Event{c.newEvent(domain.EventTypeParametersUpdated, caller, nil, &domain.ParametersUpdatedData{
		Operation: operation,
		Value:     value,
	})}
}

func stakeOptionValue(index int, option domain.StakeOption) map[string]any {
	return map[string]any{
		"index":               index,
		"interval_seconds":    int64(option.Interval / time.Second),
		"reward_per_interval": option.RewardPerInterval.Dec(),
		"extension_limit":     option.ExtensionLimit,
		"enabled":             option.Enabled,
	}
}

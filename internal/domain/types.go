package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
)

// TokenID identifies a token within the collection. Ids are issued sequentially starting at 1.
type TokenID uint64

// String returns the decimal representation of the token id
func (t TokenID) String() string {
	return fmt.Sprintf("%d", uint64(t))
}

// Network is the label appended to metadata URIs (e.g. "Ethereum")
type Network string

const (
	NetworkEthereum Network = "Ethereum"
	NetworkSepolia  Network = "Sepolia"
)

// StakeOption describes one way of locking a token for rewards
type StakeOption struct {
	// Interval is the duration after which one reward interval accrues
	Interval time.Duration `json:"interval"`
	// RewardPerInterval is the amount paid per completed interval
	RewardPerInterval *uint256.Int `json:"reward_per_interval"`
	// ExtensionLimit is the number of intervals beyond the first one a single cycle may accrue
	ExtensionLimit uint64 `json:"extension_limit"`
	// Enabled reports whether new stakes may use this option
	Enabled bool `json:"enabled"`
}

// Clone returns a deep copy of the option
func (o StakeOption) Clone() StakeOption {
	o.RewardPerInterval = cloneAmount(o.RewardPerInterval)
	return o
}

// StakeRecord is the active staking cycle of a token
type StakeRecord struct {
	OptionIndex int            `json:"option_index"`
	StartTime   time.Time      `json:"start_time"`
	Staker      common.Address `json:"staker"`
}

// Token is the ledger entry of an issued token
type Token struct {
	ID                  TokenID        `json:"id"`
	Owner               common.Address `json:"owner"`
	OriginalMinter      common.Address `json:"original_minter"`
	LifetimeRewardCount uint64         `json:"lifetime_reward_count"`
	Stake               *StakeRecord   `json:"stake,omitempty"`
}

// Staked reports whether the token has an active stake record
func (t *Token) Staked() bool {
	return t.Stake != nil
}

// Clone returns a deep copy of the token
func (t *Token) Clone() *Token {
	c := *t
	if t.Stake != nil {
		s := *t.Stake
		c.Stake = &s
	}
	return &c
}

// StakeReward is the reward projection of one staked token
type StakeReward struct {
	TokenID     TokenID      `json:"token_id"`
	Reward      *uint256.Int `json:"reward"`
	RewardCount uint64       `json:"reward_count"`
}

// WithdrawShare is a single entry of a withdrawal split
type WithdrawShare struct {
	Wallet     common.Address `json:"wallet"`
	Percentage uint64         `json:"percentage"`
}

// Payout is an amount transferred out of the pooled balance to a wallet
type Payout struct {
	Wallet common.Address `json:"wallet"`
	Amount *uint256.Int   `json:"amount"`
}

// ParseAddress parses a hex encoded wallet address
func ParseAddress(s string) (common.Address, error) {
	if !common.IsHexAddress(s) {
		return common.Address{}, fmt.Errorf("invalid address: %q", s)
	}
	return common.HexToAddress(s), nil
}

// ParseAmount parses a decimal or 0x-prefixed hex amount
func ParseAmount(s string) (*uint256.Int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return uint256.NewInt(0), nil
	}
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		v, err := uint256.FromHex(s)
		if err != nil {
			return nil, fmt.Errorf("invalid amount %q: %w", s, err)
		}
		return v, nil
	}
	v, err := uint256.FromDecimal(s)
	if err != nil {
		return nil, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return v, nil
}

// IsZeroAddress reports whether the address is the zero address
func IsZeroAddress(a common.Address) bool {
	return a == (common.Address{})
}

func cloneAmount(v *uint256.Int) *uint256.Int {
	if v == nil {
		return uint256.NewInt(0)
	}
	return new(uint256.Int).Set(v)
}

// CloneAmount returns a copy of v, treating nil as zero
func CloneAmount(v *uint256.Int) *uint256.Int {
	return cloneAmount(v)
}

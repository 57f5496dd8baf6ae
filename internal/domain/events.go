package domain

import (
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
)

// EventType represents the type of a collection event
type EventType string

const (
	EventTypeMinted             EventType = "minted"
	EventTypeStaked             EventType = "staked"
	EventTypeUnstaked           EventType = "unstaked"
	EventTypeTransferred        EventType = "transferred"
	EventTypeDeposited          EventType = "deposited"
	EventTypeWithdrawn          EventType = "withdrawn"
	EventTypeSignatureBlacklist EventType = "signatures_blacklisted"
	EventTypeParametersUpdated  EventType = "parameters_updated"
)

// Event is a record emitted by a committed collection operation.
// ID is assigned when the event is persisted.
type Event struct {
	ID         string         `json:"id"`
	Collection common.Address `json:"collection"`
	Type       EventType      `json:"type"`
	Actor      common.Address `json:"actor"`
	TokenID    *TokenID       `json:"token_id,omitempty"`
	Timestamp  time.Time      `json:"timestamp"`
	Data       any            `json:"data"`
}

// MintedData is the payload of a minted event
type MintedData struct {
	Phase      *int         `json:"phase,omitempty"` // nil for public sale mints
	Amount     uint64       `json:"amount"`
	Value      *uint256.Int `json:"value"`
	FirstToken TokenID      `json:"first_token"`
	LastToken  TokenID      `json:"last_token"`
}

// StakedData is the payload of a staked event
type StakedData struct {
	OptionIndex int       `json:"option_index"`
	StartTime   time.Time `json:"start_time"`
}

// UnstakedData is the payload of an unstaked event
type UnstakedData struct {
	TokenID              TokenID      `json:"token_id"`
	OptionIndex          int          `json:"option_index"`
	Reward               *uint256.Int `json:"reward"`
	RewardCount          uint64       `json:"reward_count"`
	TotalTokenStakeCount uint64       `json:"total_token_stake_count"`
	StartTime            time.Time    `json:"start_time"`
	EndTime              time.Time    `json:"end_time"`
}

// TransferredData is the payload of a transferred event
type TransferredData struct {
	From common.Address `json:"from"`
	To   common.Address `json:"to"`
}

// DepositedData is the payload of a deposited event
type DepositedData struct {
	Value *uint256.Int `json:"value"`
}

// WithdrawnData is the payload of a withdrawn event
type WithdrawnData struct {
	Requester string       `json:"requester"`
	Balance   *uint256.Int `json:"balance"`
	Payouts   []Payout     `json:"payouts"`
}

// SignaturesBlacklistedData is the payload of a signatures_blacklisted event
type SignaturesBlacklistedData struct {
	Signatures []string `json:"signatures"`
}

// ParametersUpdatedData is the payload of a parameters_updated event
type ParametersUpdatedData struct {
	Operation string `json:"operation"`
	Value     any    `json:"value,omitempty"`
}

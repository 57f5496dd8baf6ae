package dto

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"

	"github.com/feral-file/ff-collection-launch/internal/collection"
	"github.com/feral-file/ff-collection-launch/internal/domain"
	"github.com/feral-file/ff-collection-launch/internal/store/schema"
)

// PhaseResponse describes one issuance phase
type PhaseResponse struct {
	Index       int    `json:"index"`
	Cost        string `json:"cost"`
	WalletLimit uint64 `json:"wallet_limit"`
}

// StakeOptionResponse describes one stake option
type StakeOptionResponse struct {
	Index             int    `json:"index"`
	Interval          string `json:"interval"`
	IntervalSeconds   int64  `json:"interval_seconds"`
	RewardPerInterval string `json:"reward_per_interval"`
	ExtensionLimit    uint64 `json:"extension_limit"`
	Enabled           bool   `json:"enabled"`
}

// CollectionResponse represents the public state of the collection
type CollectionResponse struct {
	Name                  string                `json:"name"`
	Symbol                string                `json:"symbol"`
	Address               string                `json:"address"`
	Owner                 string                `json:"owner"`
	AuthorizedSigner      string                `json:"authorized_signer"`
	TotalSupplyLimit      uint64                `json:"total_supply_limit"`
	TotalMinted           uint64                `json:"total_minted"`
	CurrentPhase          int                   `json:"current_phase"`
	Phases                []PhaseResponse       `json:"phases"`
	PublicSaleEnabled     bool                  `json:"public_sale_enabled"`
	PublicSaleCost        string                `json:"public_sale_cost"`
	PublicSaleWalletLimit uint64                `json:"public_sale_wallet_limit"`
	StakeLimitPerToken    uint64                `json:"stake_limit_per_token"`
	StakeOptions          []StakeOptionResponse `json:"stake_options"`
	PooledBalance         string                `json:"pooled_balance"`
	BaseURI               string                `json:"base_uri"`
	Network               string                `json:"network"`
}

// StakeResponse describes the active stake of a token
type StakeResponse struct {
	OptionIndex int       `json:"option_index"`
	StartTime   time.Time `json:"start_time"`
	Staker      string    `json:"staker"`
}

// TokenResponse represents a token of the collection
type TokenResponse struct {
	ID                  uint64         `json:"id"`
	Owner               string         `json:"owner"`
	OriginalMinter      string         `json:"original_minter"`
	LifetimeRewardCount uint64         `json:"lifetime_reward_count"`
	Staked              bool           `json:"staked"`
	Stake               *StakeResponse `json:"stake,omitempty"`
	TokenURI            string         `json:"token_uri"`
}

// TokenURIResponse represents the metadata URI of a token
type TokenURIResponse struct {
	TokenID  uint64 `json:"token_id"`
	TokenURI string `json:"token_uri"`
}

// WalletResponse represents the mint accounting and credits of a wallet
type WalletResponse struct {
	Address          string         `json:"address"`
	Balance          uint64         `json:"balance"`
	NumberMinted     uint64         `json:"number_minted"`
	PhaseMinted      map[int]uint64 `json:"phase_minted"`
	PublicSaleMinted uint64         `json:"public_sale_minted"`
	Credit           string         `json:"credit"`
}

// VerifySignatureResponse represents the result of a whitelist signature check
type VerifySignatureResponse struct {
	Valid       bool `json:"valid"`
	Blacklisted bool `json:"blacklisted"`
}

// RewardResponse represents the reward projection of one staked token
type RewardResponse struct {
	TokenID     uint64 `json:"token_id"`
	Reward      string `json:"reward"`
	RewardCount uint64 `json:"reward_count"`
}

// RewardsResponse represents the reward projection of a set of staked tokens
type RewardsResponse struct {
	Rewards []RewardResponse `json:"rewards"`
	Total   string           `json:"total"`
}

// EventResponse represents an event of the collection
type EventResponse struct {
	Cursor     int64           `json:"cursor,omitempty"`
	ID         string          `json:"id"`
	Type       string          `json:"type"`
	Actor      string          `json:"actor"`
	TokenID    *uint64         `json:"token_id,omitempty"`
	Data       json.RawMessage `json:"data"`
	OccurredAt time.Time       `json:"occurred_at"`
}

// OperationResponse represents the outcome of a committed operation
type OperationResponse struct {
	Version int64           `json:"version"`
	Events  []EventResponse `json:"events"`
}

// EventListResponse represents a page of the event journal
type EventListResponse struct {
	Events     []EventResponse `json:"events"`
	Total      uint64          `json:"total"`
	NextCursor *int64          `json:"next_cursor,omitempty"`
}

// HealthResponse represents the health status of the service
type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Version  int64  `json:"version"`
}

// MapCollectionToDTO maps collection parameters and counters to a response
func MapCollectionToDTO(p collection.Params, totalMinted uint64, pooled string) *CollectionResponse {
	phases := make([]PhaseResponse, len(p.PhaseCost))
	for i := range p.PhaseCost {
		phases[i] = PhaseResponse{
			Index:       i,
			Cost:        p.PhaseCost[i].Dec(),
			WalletLimit: p.PhaseWalletLimit[i],
		}
	}

	return &CollectionResponse{
		Name:                  p.Name,
		Symbol:                p.Symbol,
		Address:               addressString(p.Address),
		Owner:                 addressString(p.Owner),
		AuthorizedSigner:      addressString(p.AuthorizedSigner),
		TotalSupplyLimit:      p.TotalSupplyLimit,
		TotalMinted:           totalMinted,
		CurrentPhase:          p.CurrentPhase,
		Phases:                phases,
		PublicSaleEnabled:     p.PublicSaleEnabled,
		PublicSaleCost:        p.PublicSaleCost.Dec(),
		PublicSaleWalletLimit: p.PublicSaleWalletLimit,
		StakeLimitPerToken:    p.StakeLimitPerToken,
		StakeOptions:          MapStakeOptionsToDTO(p.StakeOptions),
		PooledBalance:         pooled,
		BaseURI:               p.BaseURI,
		Network:               string(p.Network),
	}
}

// MapStakeOptionsToDTO maps stake options to responses
func MapStakeOptionsToDTO(options []domain.StakeOption) []StakeOptionResponse {
	out := make([]StakeOptionResponse, len(options))
	for i, o := range options {
		out[i] = StakeOptionResponse{
			Index:             i,
			Interval:          o.Interval.String(),
			IntervalSeconds:   int64(o.Interval / time.Second),
			RewardPerInterval: o.RewardPerInterval.Dec(),
			ExtensionLimit:    o.ExtensionLimit,
			Enabled:           o.Enabled,
		}
	}
	return out
}

// MapTokenToDTO maps a token to a response
func MapTokenToDTO(t *domain.Token, uri string) *TokenResponse {
	resp := &TokenResponse{
		ID:                  uint64(t.ID),
		Owner:               addressString(t.Owner),
		OriginalMinter:      addressString(t.OriginalMinter),
		LifetimeRewardCount: t.LifetimeRewardCount,
		Staked:              t.Staked(),
		TokenURI:            uri,
	}
	if t.Stake != nil {
		resp.Stake = &StakeResponse{
			OptionIndex: t.Stake.OptionIndex,
			StartTime:   t.Stake.StartTime,
			Staker:      addressString(t.Stake.Staker),
		}
	}
	return resp
}

// MapRewardsToDTO maps reward projections to a response
func MapRewardsToDTO(rewards []domain.StakeReward, total string) *RewardsResponse {
	out := make([]RewardResponse, len(rewards))
	for i, r := range rewards {
		out[i] = RewardResponse{
			TokenID:     uint64(r.TokenID),
			Reward:      r.Reward.Dec(),
			RewardCount: r.RewardCount,
		}
	}
	return &RewardsResponse{Rewards: out, Total: total}
}

// MapEventToDTO maps a journaled event to a response
func MapEventToDTO(e *schema.CollectionEvent) EventResponse {
	resp := EventResponse{
		Cursor:     e.Cursor,
		ID:         e.ID,
		Type:       e.EventType,
		Actor:      e.Actor,
		Data:       json.RawMessage(e.Payload),
		OccurredAt: e.OccurredAt,
	}
	if e.TokenID != nil {
		id := uint64(*e.TokenID) //nolint:gosec,G115
		resp.TokenID = &id
	}
	return resp
}

func addressString(a common.Address) string {
	return strings.ToLower(a.Hex())
}

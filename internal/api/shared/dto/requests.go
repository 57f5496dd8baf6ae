package dto

import (
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/holiman/uint256"

	"github.com/feral-file/ff-collection-launch/internal/api/shared/constants"
	apierrors "github.com/feral-file/ff-collection-launch/internal/api/shared/errors"
	"github.com/feral-file/ff-collection-launch/internal/domain"
)

// PrivateMintRequest represents the request body for a whitelisted mint
type PrivateMintRequest struct {
	Amount    uint64 `json:"amount"`
	Value     string `json:"value"`     // decimal or 0x-prefixed amount paid
	Signature string `json:"signature"` // hex encoded whitelist signature
}

// Validate validates the request body
func (r *PrivateMintRequest) Validate() error {
	if _, err := domain.ParseAmount(r.Value); err != nil {
		return apierrors.NewValidationError(err.Error())
	}
	if _, err := DecodeHex(r.Signature); err != nil {
		return apierrors.NewValidationError(fmt.Sprintf("invalid signature: %v", err))
	}
	return nil
}

// PublicMintRequest represents the request body for a public sale mint
type PublicMintRequest struct {
	Amount uint64 `json:"amount"`
	Value  string `json:"value"`
}

// Validate validates the request body
func (r *PublicMintRequest) Validate() error {
	if _, err := domain.ParseAmount(r.Value); err != nil {
		return apierrors.NewValidationError(err.Error())
	}
	return nil
}

// TokenIDsRequest represents a request body carrying a list of token ids.
// It is used to stake, unstake and query rewards.
type TokenIDsRequest struct {
	TokenIDs []uint64 `json:"token_ids"`
}

// Validate validates the request body
func (r *TokenIDsRequest) Validate() error {
	if len(r.TokenIDs) == 0 {
		return apierrors.NewValidationError("token_ids is required")
	}
	if len(r.TokenIDs) > constants.MAX_TOKEN_IDS_PER_REQUEST {
		return apierrors.NewValidationError(fmt.Sprintf("maximum %d token ids allowed", constants.MAX_TOKEN_IDS_PER_REQUEST))
	}
	return nil
}

// IDs converts the token ids into domain ids
func (r *TokenIDsRequest) IDs() []domain.TokenID {
	ids := make([]domain.TokenID, len(r.TokenIDs))
	for i, id := range r.TokenIDs {
		ids[i] = domain.TokenID(id)
	}
	return ids
}

// StakeRequest represents the request body for staking tokens
type StakeRequest struct {
	TokenIDsRequest
	OptionIndex int `json:"option_index"`
}

// TransferRequest represents the request body for transferring a token
type TransferRequest struct {
	From    string `json:"from"`
	To      string `json:"to"`
	TokenID uint64 `json:"token_id"`
}

// Validate validates the request body
func (r *TransferRequest) Validate() error {
	if _, err := domain.ParseAddress(r.From); err != nil {
		return apierrors.NewValidationError(fmt.Sprintf("from: %v", err))
	}
	if _, err := domain.ParseAddress(r.To); err != nil {
		return apierrors.NewValidationError(fmt.Sprintf("to: %v", err))
	}
	return nil
}

// DepositRequest represents the request body for a deposit into the pooled balance
type DepositRequest struct {
	Value string `json:"value"`
}

// Validate validates the request body
func (r *DepositRequest) Validate() error {
	if _, err := domain.ParseAmount(r.Value); err != nil {
		return apierrors.NewValidationError(err.Error())
	}
	return nil
}

// WithdrawShareRequest is one entry of a withdrawal split
type WithdrawShareRequest struct {
	Wallet     string `json:"wallet"`
	Percentage uint64 `json:"percentage"`
}

// WithdrawRequest represents the request body for splitting the pooled balance
type WithdrawRequest struct {
	Shares    []WithdrawShareRequest `json:"shares"`
	Requester string                 `json:"requester"`
}

// Validate validates the request body
func (r *WithdrawRequest) Validate() error {
	if len(r.Shares) == 0 {
		return apierrors.NewValidationError("shares is required")
	}
	if len(r.Shares) > constants.MAX_WITHDRAW_SHARES {
		return apierrors.NewValidationError(fmt.Sprintf("maximum %d shares allowed", constants.MAX_WITHDRAW_SHARES))
	}
	for i, s := range r.Shares {
		if _, err := domain.ParseAddress(s.Wallet); err != nil {
			return apierrors.NewValidationError(fmt.Sprintf("shares[%d].wallet: %v", i, err))
		}
	}
	return nil
}

// DomainShares converts the shares into domain shares. Validate must succeed first.
func (r *WithdrawRequest) DomainShares() []domain.WithdrawShare {
	shares := make([]domain.WithdrawShare, len(r.Shares))
	for i, s := range r.Shares {
		wallet, _ := domain.ParseAddress(s.Wallet)
		shares[i] = domain.WithdrawShare{Wallet: wallet, Percentage: s.Percentage}
	}
	return shares
}

// VerifySignatureRequest represents the request body for checking a whitelist signature
type VerifySignatureRequest struct {
	Wallet    string `json:"wallet"`
	Phase     int    `json:"phase"`
	Signature string `json:"signature"`
}

// Validate validates the request body
func (r *VerifySignatureRequest) Validate() error {
	if _, err := domain.ParseAddress(r.Wallet); err != nil {
		return apierrors.NewValidationError(fmt.Sprintf("wallet: %v", err))
	}
	if _, err := DecodeHex(r.Signature); err != nil {
		return apierrors.NewValidationError(fmt.Sprintf("invalid signature: %v", err))
	}
	return nil
}

// SetPhaseRequest represents the request body for moving to another phase
type SetPhaseRequest struct {
	Phase int `json:"phase"`
}

// SetPublicSaleCostRequest represents the request body for changing the public sale price
type SetPublicSaleCostRequest struct {
	Cost string `json:"cost"`
}

// Validate validates the request body
func (r *SetPublicSaleCostRequest) Validate() error {
	if _, err := domain.ParseAmount(r.Cost); err != nil {
		return apierrors.NewValidationError(err.Error())
	}
	return nil
}

// SetMintLimitsRequest represents the request body for replacing the per-wallet mint limits
type SetMintLimitsRequest struct {
	PhaseLimits     []uint64 `json:"phase_limits"`
	PublicSaleLimit uint64   `json:"public_sale_limit"`
}

// BlacklistSignaturesRequest represents the request body for blacklisting whitelist signatures
type BlacklistSignaturesRequest struct {
	Signatures []string `json:"signatures"`
}

// Validate validates the request body
func (r *BlacklistSignaturesRequest) Validate() error {
	if len(r.Signatures) == 0 {
		return apierrors.NewValidationError("signatures is required")
	}
	if len(r.Signatures) > constants.MAX_SIGNATURES_PER_REQUEST {
		return apierrors.NewValidationError(fmt.Sprintf("maximum %d signatures allowed", constants.MAX_SIGNATURES_PER_REQUEST))
	}
	for i, s := range r.Signatures {
		if _, err := DecodeHex(s); err != nil {
			return apierrors.NewValidationError(fmt.Sprintf("signatures[%d]: %v", i, err))
		}
	}
	return nil
}

// DecodedSignatures returns the signatures as bytes. Validate must succeed first.
func (r *BlacklistSignaturesRequest) DecodedSignatures() [][]byte {
	sigs := make([][]byte, len(r.Signatures))
	for i, s := range r.Signatures {
		sigs[i], _ = DecodeHex(s)
	}
	return sigs
}

// SetStakeLimitRequest represents the request body for changing the per-token stake limit
type SetStakeLimitRequest struct {
	Limit uint64 `json:"limit"`
}

// StakeOptionRequest represents the request body for adding or updating a stake option
type StakeOptionRequest struct {
	Interval          string `json:"interval"` // Go duration, e.g. "720h"
	RewardPerInterval string `json:"reward_per_interval"`
	ExtensionLimit    uint64 `json:"extension_limit"`
	Enabled           bool   `json:"enabled"`
}

// Parse validates the request body and returns the interval and reward
func (r *StakeOptionRequest) Parse() (time.Duration, *uint256.Int, error) {
	interval, err := time.ParseDuration(r.Interval)
	if err != nil {
		return 0, nil, apierrors.NewValidationError(fmt.Sprintf("invalid interval: %v", err))
	}
	reward, err := domain.ParseAmount(r.RewardPerInterval)
	if err != nil {
		return 0, nil, apierrors.NewValidationError(err.Error())
	}
	return interval, reward, nil
}

// ToggleStakeOptionsRequest represents the request body for enabling or disabling every stake option
type ToggleStakeOptionsRequest struct {
	Enabled bool `json:"enabled"`
}

// DecodeHex decodes a hex string with an optional 0x prefix
func DecodeHex(s string) ([]byte, error) {
	s = strings.TrimPrefix(strings.TrimPrefix(strings.TrimSpace(s), "0x"), "0X")
	if s == "" {
		return nil, fmt.Errorf("empty hex string")
	}
	return hex.DecodeString(s)
}

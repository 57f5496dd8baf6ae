package domain

import "errors"

// RevertError is a typed rejection of a collection operation.
// Its reason is stable and safe to show to callers.
type RevertError struct {
	reason string
}

// NewRevert creates a rejection with the given reason
func NewRevert(reason string) *RevertError {
	return &RevertError{reason: reason}
}

func (e *RevertError) Error() string {
	return e.reason
}

// Reason returns the human-readable rejection reason
func (e *RevertError) Reason() string {
	return e.reason
}

// IsRevert reports whether err is (or wraps) a rejection
func IsRevert(err error) bool {
	if err == nil {
		return false
	}
	var re *RevertError
	return errors.As(err, &re)
}

var (
	// Access control
	ErrNotOwner = NewRevert("Ownable: caller is not the owner")

	// Issuance gate
	ErrPublicSaleActive     = NewRevert("Public sale is enabled")
	ErrPublicSaleDisabled   = NewRevert("Public sale is disabled")
	ErrInvalidSignature     = NewRevert("Invalid signature")
	ErrSignatureBlacklisted = NewRevert("Signature is blacklisted")
	ErrInvalidCostAmount    = NewRevert("Invalid cost amount")
	ErrInvalidMintAmount    = NewRevert("Invalid mint amount")
	ErrSupplyExceeded       = NewRevert("Out of total supply limit")
	ErrWalletLimitExceeded  = NewRevert("Out of max mint limit")
	ErrInvalidPhase         = NewRevert("Invalid phase")
	ErrInvalidLimitLength   = NewRevert("Invalid mint limit length")

	// Staking
	ErrInvalidOption        = NewRevert("Invalid stake option")
	ErrOptionDisabled       = NewRevert("Stake option is disabled")
	ErrNotTokenOwner        = NewRevert("Invalid token owner")
	ErrAlreadyStaked        = NewRevert("Token already staked")
	ErrStakeLimitExhausted  = NewRevert("Out of stake limit per token")
	ErrNotStaked            = NewRevert("Token is not staked")
	ErrNotStakeOwner        = NewRevert("Only the owner can unstake it")
	ErrInvalidInterval      = NewRevert("Invalid interval")
	ErrEmptyTokenList       = NewRevert("Empty token list")
	ErrTokenStaked          = NewRevert("Token is staked")
	ErrInvalidRecipient     = NewRevert("Invalid recipient")
	ErrNotMinted            = NewRevert("Nonexistent token")
	ErrInsufficientBalance  = NewRevert("Not enough balance")
	ErrInvalidTotalPercent  = NewRevert("Invalid total percentage")
	ErrArithmeticOverflow   = NewRevert("Arithmetic overflow")
	ErrInvalidDepositAmount = NewRevert("Invalid deposit amount")
)

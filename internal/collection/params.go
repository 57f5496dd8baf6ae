package collection

import (
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"

	"github.com/feral-file/ff-collection-launch/internal/domain"
)

// Params holds the collection parameters. Name, symbol, identity, owner,
// signer, supply limit, base URI and network are fixed at creation; the rest
// is changed through the owner administration operations.
type Params struct {
	Name                  string               `json:"name"`
	Symbol                string               `json:"symbol"`
	Address               common.Address       `json:"address"`
	Owner                 common.Address       `json:"owner"`
	AuthorizedSigner      common.Address       `json:"authorized_signer"`
	TotalSupplyLimit      uint64               `json:"total_supply_limit"`
	CurrentPhase          int                  `json:"current_phase"`
	PhaseCost             []*uint256.Int       `json:"phase_cost"`
	PhaseWalletLimit      []uint64             `json:"phase_wallet_limit"`
	PublicSaleCost        *uint256.Int         `json:"public_sale_cost"`
	PublicSaleWalletLimit uint64               `json:"public_sale_wallet_limit"`
	PublicSaleEnabled     bool                 `json:"public_sale_enabled"`
	StakeLimitPerToken    uint64               `json:"stake_limit_per_token"`
	StakeOptions          []domain.StakeOption `json:"stake_options"`
	BaseURI               string               `json:"base_uri"`
	Network               domain.Network       `json:"network"`
}

// Validate checks the invariants a collection must satisfy at creation
func (p *Params) Validate() error {
	if domain.IsZeroAddress(p.Address) {
		return errors.New("collection address is required")
	}
	if domain.IsZeroAddress(p.Owner) {
		return errors.New("owner address is required")
	}
	if domain.IsZeroAddress(p.AuthorizedSigner) {
		return errors.New("authorized signer is required")
	}
	if len(p.PhaseCost) == 0 {
		return errors.New("at least one phase is required")
	}
	if len(p.PhaseCost) > domain.MAX_PHASES {
		return fmt.Errorf("at most %d phases are supported", domain.MAX_PHASES)
	}
	if len(p.PhaseCost) != len(p.PhaseWalletLimit) {
		return fmt.Errorf("phase cost and wallet limit tables differ in length: %d != %d", len(p.PhaseCost), len(p.PhaseWalletLimit))
	}
	if p.CurrentPhase < 0 || p.CurrentPhase >= len(p.PhaseCost) {
		return fmt.Errorf("current phase %d out of range", p.CurrentPhase)
	}
	for i, option := range p.StakeOptions {
		if option.Interval <= 0 {
			return fmt.Errorf("stake option %d: interval must be positive", i)
		}
	}
	return nil
}

// Clone returns a deep copy of the parameters
func (p *Params) Clone() Params {
	c := *p
	c.PhaseCost = make([]*uint256.Int, len(p.PhaseCost))
	for i, cost := range p.PhaseCost {
		c.PhaseCost[i] = domain.CloneAmount(cost)
	}
	c.PhaseWalletLimit = append([]uint64(nil), p.PhaseWalletLimit...)
	c.PublicSaleCost = domain.CloneAmount(p.PublicSaleCost)
	c.StakeOptions = make([]domain.StakeOption, len(p.StakeOptions))
	for i, option := range p.StakeOptions {
		c.StakeOptions[i] = option.Clone()
	}
	return c
}

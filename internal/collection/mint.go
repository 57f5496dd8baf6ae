package collection

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"

	"github.com/feral-file/ff-collection-launch/internal/domain"
)

// PrivateMint issues amount tokens to caller during the current whitelist phase.
// value must equal amount times the phase cost and sig must be a
// non-blacklisted whitelist signature for (collection, caller, phase).
func (c *Collection) PrivateMint(caller common.Address, amount uint64, value *uint256.Int, sig []byte) ([]domain.Event, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	p := &c.state.Params
	if p.PublicSaleEnabled {
		return nil, domain.ErrPublicSaleActive
	}

	phase := p.CurrentPhase
	if !c.verifier.Verify(p.Address, caller, uint8(phase), sig) { //nolint:gosec,G115 // phases are bounded by MAX_PHASES
		return nil, domain.ErrInvalidSignature
	}
	if c.state.Blacklist[signatureKey(sig)] {
		return nil, domain.ErrSignatureBlacklisted
	}

	limit := p.PhaseWalletLimit[phase]
	if err := c.state.checkMint(amount, value, p.PhaseCost[phase], c.state.phaseMinted(caller, phase), limit); err != nil {
		return nil, err
	}

	phases, ok := c.state.PhaseMinted[caller]
	if !ok {
		phases = make(map[int]uint64)
		c.state.PhaseMinted[caller] = phases
	}
	phases[phase] += amount

	data := c.state.issue(caller, amount, value)
	data.Phase = &phase
	return []domain.Event{c.newEvent(domain.EventTypeMinted, caller, nil, data)}, nil
}

// Mint issues amount tokens to caller during the public sale
func (c *Collection) Mint(caller common.Address, amount uint64, value *uint256.Int) ([]domain.Event, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	p := &c.state.Params
	if !p.PublicSaleEnabled {
		return nil, domain.ErrPublicSaleDisabled
	}
	if err := c.state.checkMint(amount, value, p.PublicSaleCost, c.state.PublicMinted[caller], p.PublicSaleWalletLimit); err != nil {
		return nil, err
	}

	c.state.PublicMinted[caller] += amount

	data := c.state.issue(caller, amount, value)
	return []domain.Event{c.newEvent(domain.EventTypeMinted, caller, nil, data)}, nil
}

// checkMint validates amount, payment, supply and the wallet limit of a mint
func (s *State) checkMint(amount uint64, value, cost *uint256.Int, walletMinted, walletLimit uint64) error {
	if amount == 0 {
		return domain.ErrInvalidMintAmount
	}

	expected, overflow := new(uint256.Int).MulOverflow(uint256.NewInt(amount), cost)
	if overflow {
		return domain.ErrArithmeticOverflow
	}
	if value == nil || !expected.Eq(value) {
		return domain.ErrInvalidCostAmount
	}

	if amount > s.Params.TotalSupplyLimit || s.TotalMinted > s.Params.TotalSupplyLimit-amount {
		return domain.ErrSupplyExceeded
	}
	if amount > walletLimit || walletMinted > walletLimit-amount {
		return domain.ErrWalletLimitExceeded
	}

	if _, overflow := new(uint256.Int).AddOverflow(s.Pool, value); overflow {
		return domain.ErrArithmeticOverflow
	}
	return nil
}

// issue creates amount sequential tokens owned by and attributed to minter.
// It must only be called after checkMint succeeded.
func (s *State) issue(minter common.Address, amount uint64, value *uint256.Int) *domain.MintedData {
	first := domain.FIRST_TOKEN_ID + domain.TokenID(s.TotalMinted)
	for i := uint64(0); i < amount; i++ {
		id := first + domain.TokenID(i)
		s.Tokens[id] = &domain.Token{
			ID:             id,
			Owner:          minter,
			OriginalMinter: minter,
		}
	}

	s.TotalMinted += amount
	s.WalletMinted[minter] += amount
	s.Balances[minter] += amount
	s.Pool = new(uint256.Int).Add(s.Pool, value)

	return &domain.MintedData{
		Amount:     amount,
		Value:      domain.CloneAmount(value),
		FirstToken: first,
		LastToken:  first + domain.TokenID(amount-1),
	}
}

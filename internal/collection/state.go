package collection

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"

	"github.com/feral-file/ff-collection-launch/internal/domain"
)

// State is the complete persistent state of a collection
type State struct {
	Params Params `json:"params"`

	TotalMinted  uint64                            `json:"total_minted"`
	PhaseMinted  map[common.Address]map[int]uint64 `json:"phase_minted"`
	PublicMinted map[common.Address]uint64         `json:"public_minted"`
	WalletMinted map[common.Address]uint64         `json:"wallet_minted"`

	Blacklist map[string]bool `json:"blacklist"`

	Tokens   map[domain.TokenID]*domain.Token `json:"tokens"`
	Balances map[common.Address]uint64        `json:"balances"`

	Pool    *uint256.Int                    `json:"pool"`
	Credits map[common.Address]*uint256.Int `json:"credits"`
}

// NewState creates the initial state of a collection
func NewState(params Params) (*State, error) {
	if err := params.Validate(); err != nil {
		return nil, fmt.Errorf("invalid collection parameters: %w", err)
	}

	s := &State{Params: params.Clone()}
	s.normalize()
	return s, nil
}

// normalize replaces nil maps and amounts, e.g. after decoding a snapshot
func (s *State) normalize() {
	if s.PhaseMinted == nil {
		s.PhaseMinted = make(map[common.Address]map[int]uint64)
	}
	if s.PublicMinted == nil {
		s.PublicMinted = make(map[common.Address]uint64)
	}
	if s.WalletMinted == nil {
		s.WalletMinted = make(map[common.Address]uint64)
	}
	if s.Blacklist == nil {
		s.Blacklist = make(map[string]bool)
	}
	if s.Tokens == nil {
		s.Tokens = make(map[domain.TokenID]*domain.Token)
	}
	if s.Balances == nil {
		s.Balances = make(map[common.Address]uint64)
	}
	if s.Credits == nil {
		s.Credits = make(map[common.Address]*uint256.Int)
	}
	if s.Pool == nil {
		s.Pool = uint256.NewInt(0)
	}
	if s.Params.PublicSaleCost == nil {
		s.Params.PublicSaleCost = uint256.NewInt(0)
	}
	for i, cost := range s.Params.PhaseCost {
		if cost == nil {
			s.Params.PhaseCost[i] = uint256.NewInt(0)
		}
	}
	for i := range s.Params.StakeOptions {
		if s.Params.StakeOptions[i].RewardPerInterval == nil {
			s.Params.StakeOptions[i].RewardPerInterval = uint256.NewInt(0)
		}
	}
}

// Clone returns a deep copy of the state
func (s *State) Clone() *State {
	c := &State{
		Params:       s.Params.Clone(),
		TotalMinted:  s.TotalMinted,
		PhaseMinted:  make(map[common.Address]map[int]uint64, len(s.PhaseMinted)),
		PublicMinted: make(map[common.Address]uint64, len(s.PublicMinted)),
		WalletMinted: make(map[common.Address]uint64, len(s.WalletMinted)),
		Blacklist:    make(map[string]bool, len(s.Blacklist)),
		Tokens:       make(map[domain.TokenID]*domain.Token, len(s.Tokens)),
		Balances:     make(map[common.Address]uint64, len(s.Balances)),
		Pool:         domain.CloneAmount(s.Pool),
		Credits:      make(map[common.Address]*uint256.Int, len(s.Credits)),
	}
	for wallet, phases := range s.PhaseMinted {
		m := make(map[int]uint64, len(phases))
		for phase, count := range phases {
			m[phase] = count
		}
		c.PhaseMinted[wallet] = m
	}
	for k, v := range s.PublicMinted {
		c.PublicMinted[k] = v
	}
	for k, v := range s.WalletMinted {
		c.WalletMinted[k] = v
	}
	for k, v := range s.Blacklist {
		c.Blacklist[k] = v
	}
	for k, v := range s.Tokens {
		c.Tokens[k] = v.Clone()
	}
	for k, v := range s.Balances {
		c.Balances[k] = v
	}
	for k, v := range s.Credits {
		c.Credits[k] = domain.CloneAmount(v)
	}
	return c
}

func (s *State) phaseMinted(wallet common.Address, phase int) uint64 {
	return s.PhaseMinted[wallet][phase]
}

func (s *State) credit(wallet common.Address) *uint256.Int {
	if v, ok := s.Credits[wallet]; ok {
		return v
	}
	return uint256.NewInt(0)
}

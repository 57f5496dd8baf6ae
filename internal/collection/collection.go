package collection

import (
	"encoding/hex"
	"errors"
	"sort"
	"strings"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"

	"github.com/feral-file/ff-collection-launch/internal/access"
	"github.com/feral-file/ff-collection-launch/internal/adapter"
	"github.com/feral-file/ff-collection-launch/internal/domain"
	"github.com/feral-file/ff-collection-launch/internal/signature"
)

// Collection is a fixed-supply token collection with a whitelisted issuance
// gate and a timed staking reward engine.
//
// Every operation runs under the collection lock and validates all of its
// inputs before the first write, so a rejected call leaves the state untouched.
type Collection struct {
	mu       sync.RWMutex
	state    *State
	clock    adapter.Clock
	verifier signature.Verifier
	policy   access.Authorizer
}

// Option customizes a collection
type Option func(*Collection)

// WithVerifier replaces the whitelist signature verifier
func WithVerifier(v signature.Verifier) Option {
	return func(c *Collection) {
		c.verifier = v
	}
}

// WithAuthorizer replaces the access policy
func WithAuthorizer(a access.Authorizer) Option {
	return func(c *Collection) {
		c.policy = a
	}
}

// New creates a collection operating on state. The state is owned by the
// collection afterwards.
func New(state *State, clock adapter.Clock, opts ...Option) (*Collection, error) {
	if state == nil {
		return nil, errors.New("state is required")
	}
	if clock == nil {
		return nil, errors.New("clock is required")
	}
	if err := state.Params.Validate(); err != nil {
		return nil, err
	}
	state.normalize()

	c := &Collection{
		state:    state,
		clock:    clock,
		verifier: signature.NewWhitelistVerifier(state.Params.AuthorizedSigner),
		policy:   access.NewOwnerPolicy(state.Params.Owner),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Address returns the collection identity
func (c *Collection) Address() common.Address {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state.Params.Address
}

// Snapshot returns a deep copy of the current state
func (c *Collection) Snapshot() *State {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state.Clone()
}

// Restore replaces the current state with a copy of s
func (c *Collection) Restore(s *State) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = s.Clone()
	c.state.normalize()
}

// Params returns a copy of the collection parameters
func (c *Collection) Params() Params {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state.Params.Clone()
}

// TotalMinted returns the number of tokens issued so far
func (c *Collection) TotalMinted() uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state.TotalMinted
}

// NumberMinted returns the number of tokens a wallet minted across all phases and the public sale
func (c *Collection) NumberMinted(wallet common.Address) uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state.WalletMinted[wallet]
}

// PhaseMinted returns the number of tokens a wallet minted in a phase
func (c *Collection) PhaseMinted(wallet common.Address, phase int) uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state.phaseMinted(wallet, phase)
}

// PublicSaleMinted returns the number of tokens a wallet minted in the public sale
func (c *Collection) PublicSaleMinted(wallet common.Address) uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state.PublicMinted[wallet]
}

// Token returns a copy of the token ledger entry
func (c *Collection) Token(id domain.TokenID) (*domain.Token, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	token, ok := c.state.Tokens[id]
	if !ok {
		return nil, domain.ErrNotMinted
	}
	return token.Clone(), nil
}

// StakeOptions returns a copy of all stake options
func (c *Collection) StakeOptions() []domain.StakeOption {
	c.mu.RLock()
	defer c.mu.RUnlock()
	options := make([]domain.StakeOption, len(c.state.Params.StakeOptions))
	for i, option := range c.state.Params.StakeOptions {
		options[i] = option.Clone()
	}
	return options
}

// StakeLimitPerToken returns the lifetime cap on reward intervals per token
func (c *Collection) StakeLimitPerToken() uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state.Params.StakeLimitPerToken
}

// PooledBalance returns the balance rewards and withdrawals are paid from
func (c *Collection) PooledBalance() *uint256.Int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return domain.CloneAmount(c.state.Pool)
}

// CreditOf returns the total amount paid out of the pool to a wallet
func (c *Collection) CreditOf(wallet common.Address) *uint256.Int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return domain.CloneAmount(c.state.credit(wallet))
}

// IsBlacklisted reports whether a whitelist signature has been revoked
func (c *Collection) IsBlacklisted(sig []byte) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state.Blacklist[signatureKey(sig)]
}

// BlacklistedSignatures returns all revoked signatures, sorted
func (c *Collection) BlacklistedSignatures() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	sigs := make([]string, 0, len(c.state.Blacklist))
	for sig := range c.state.Blacklist {
		sigs = append(sigs, sig)
	}
	sort.Strings(sigs)
	return sigs
}

// VerifySignature reports whether sig authorizes wallet to mint in phase.
// It does not consult the blacklist.
func (c *Collection) VerifySignature(wallet common.Address, phase int, sig []byte) bool {
	if phase < 0 || phase >= domain.MAX_PHASES {
		return false
	}
	c.mu.RLock()
	addr := c.state.Params.Address
	c.mu.RUnlock()
	return c.verifier.Verify(addr, wallet, uint8(phase), sig) //nolint:gosec,G115 // bounded above
}

// newEvent builds an event stamped with the collection identity
func (c *Collection) newEvent(typ domain.EventType, actor common.Address, tokenID *domain.TokenID, data any) domain.Event {
	return domain.Event{
		Collection: c.state.Params.Address,
		Type:       typ,
		Actor:      actor,
		TokenID:    tokenID,
		Timestamp:  c.clock.Now(),
		Data:       data,
	}
}

// signatureKey normalizes a signature to its lower-case hex form
func signatureKey(sig []byte) string {
	return "0x" + strings.ToLower(hex.EncodeToString(sig))
}

func tokenRef(id domain.TokenID) *domain.TokenID {
	return &id
}

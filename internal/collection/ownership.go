package collection

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"

	"github.com/feral-file/ff-collection-launch/internal/domain"
)

// OwnerOf returns the current owner of a token
func (c *Collection) OwnerOf(id domain.TokenID) (common.Address, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	token, ok := c.state.Tokens[id]
	if !ok {
		return common.Address{}, domain.ErrNotMinted
	}
	return token.Owner, nil
}

// BalanceOf returns the number of tokens a wallet currently owns
func (c *Collection) BalanceOf(wallet common.Address) uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state.Balances[wallet]
}

// Transfer moves a token from one wallet to another. Staked tokens are locked.
func (c *Collection) Transfer(caller, from, to common.Address, id domain.TokenID) ([]domain.Event, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	token, ok := c.state.Tokens[id]
	if !ok {
		return nil, domain.ErrNotMinted
	}
	if token.Owner != from || caller != from {
		return nil, domain.ErrNotTokenOwner
	}
	if domain.IsZeroAddress(to) {
		return nil, domain.ErrInvalidRecipient
	}
	if token.Staked() {
		return nil, domain.ErrTokenStaked
	}

	token.Owner = to
	c.state.Balances[from]--
	if c.state.Balances[from] == 0 {
		delete(c.state.Balances, from)
	}
	c.state.Balances[to]++

	return []domain.Event{c.newEvent(domain.EventTypeTransferred, caller, tokenRef(id), &domain.TransferredData{
		From: from,
		To:   to,
	})}, nil
}

// Deposit adds value sent by a wallet to the pooled balance
func (c *Collection) Deposit(from common.Address, value *uint256.Int) ([]domain.Event, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if value == nil || value.IsZero() {
		return nil, domain.ErrInvalidDepositAmount
	}
	pool, overflow := new(uint256.Int).AddOverflow(c.state.Pool, value)
	if overflow {
		return nil, domain.ErrArithmeticOverflow
	}

	c.state.Pool = pool
	return []domain.Event{c.newEvent(domain.EventTypeDeposited, from, nil, &domain.DepositedData{
		Value: domain.CloneAmount(value),
	})}, nil
}

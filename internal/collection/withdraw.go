package collection

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"

	"github.com/feral-file/ff-collection-launch/internal/access"
	"github.com/feral-file/ff-collection-launch/internal/domain"
)

// Withdraw splits the pooled balance between wallets by percentage. Each wallet
// receives floor(balance * percentage / 100); the rounding remainder stays in
// the pool. requester is an opaque reference carried into the event.
func (c *Collection) Withdraw(caller common.Address, shares []domain.WithdrawShare, requester string) ([]domain.Event, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.policy.Authorize(caller, access.RoleOwner); err != nil {
		return nil, err
	}

	balance := domain.CloneAmount(c.state.Pool)
	if balance.IsZero() {
		return nil, domain.ErrInsufficientBalance
	}

	var total uint64
	for _, share := range shares {
		if share.Percentage > domain.PERCENTAGE_TOTAL {
			return nil, domain.ErrInvalidTotalPercent
		}
		total += share.Percentage
	}
	if total != domain.PERCENTAGE_TOTAL {
		return nil, domain.ErrInvalidTotalPercent
	}

	hundred := uint256.NewInt(domain.PERCENTAGE_TOTAL)
	payouts := make([]domain.Payout, 0, len(shares))
	credits := make(map[common.Address]*uint256.Int, len(shares))
	paid := uint256.NewInt(0)
	for _, share := range shares {
		amount, overflow := new(uint256.Int).MulDivOverflow(balance, uint256.NewInt(share.Percentage), hundred)
		if overflow {
			return nil, domain.ErrArithmeticOverflow
		}
		credit, ok := credits[share.Wallet]
		if !ok {
			credit = c.state.credit(share.Wallet)
		}
		if credit, overflow = new(uint256.Int).AddOverflow(credit, amount); overflow {
			return nil, domain.ErrArithmeticOverflow
		}
		credits[share.Wallet] = credit
		paid.Add(paid, amount)
		payouts = append(payouts, domain.Payout{Wallet: share.Wallet, Amount: amount})
	}

	for wallet, credit := range credits {
		c.state.Credits[wallet] = credit
	}
	c.state.Pool = new(uint256.Int).Sub(balance, paid)

	return []domain.Event{c.newEvent(domain.EventTypeWithdrawn, caller, nil, &domain.WithdrawnData{
		Requester: requester,
		Balance:   balance,
		Payouts:   payouts,
	})}, nil
}

package signature

import (
	"context"
	"crypto/ecdsa"
	"fmt"

	"github.com/alitto/pond/v2"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// WhitelistEntry is a signed whitelist grant of one wallet
type WhitelistEntry struct {
	Wallet    common.Address `json:"wallet"`
	Phase     uint8          `json:"phase"`
	Signature hexutil.Bytes  `json:"signature"`
}

// SignBatch signs the whitelist message of every wallet for the given phase on a bounded
// worker pool. Entries are returned in the order of wallets.
func SignBatch(ctx context.Context, key *ecdsa.PrivateKey, collection common.Address, wallets []common.Address, phase uint8, workers int) ([]WhitelistEntry, error) {
	if workers <= 0 {
		workers = 1
	}

	pool := pond.NewResultPool[WhitelistEntry](workers, pond.WithContext(ctx))
	defer pool.StopAndWait()

	group := pool.NewGroup()
	for _, wallet := range wallets {
		group.SubmitErr(func() (WhitelistEntry, error) {
			sig, err := Sign(key, collection, wallet, phase)
			if err != nil {
				return WhitelistEntry{}, fmt.Errorf("wallet %s: %w", wallet.Hex(), err)
			}
			return WhitelistEntry{Wallet: wallet, Phase: phase, Signature: sig}, nil
		})
	}

	entries, err := group.Wait()
	if err != nil {
		return nil, err
	}
	return entries, nil
}

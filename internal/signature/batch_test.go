package signature_test

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-collection-launch/internal/signature"
)

func TestSignBatch(t *testing.T) {
	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	verifier := signature.NewWhitelistVerifier(crypto.PubkeyToAddress(key.PublicKey))

	wallets := make([]common.Address, 25)
	for i := range wallets {
		wallets[i] = common.HexToAddress(fmt.Sprintf("0x%040x", i+1))
	}

	entries, err := signature.SignBatch(context.Background(), key, collectionAddr, wallets, 2, 4)
	require.NoError(t, err)
	require.Len(t, entries, len(wallets))

	for i, entry := range entries {
		assert.Equal(t, wallets[i], entry.Wallet)
		assert.Equal(t, uint8(2), entry.Phase)
		assert.True(t, verifier.Verify(collectionAddr, entry.Wallet, 2, entry.Signature))
	}
}

func TestSignBatch_Empty(t *testing.T) {
	key, err := crypto.GenerateKey()
	require.NoError(t, err)

	entries, err := signature.SignBatch(context.Background(), key, collectionAddr, nil, 0, 0)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestWhitelistEntry_JSON(t *testing.T) {
	entry := signature.WhitelistEntry{
		Wallet:    wallet,
		Phase:     1,
		Signature: []byte{0xab, 0xcd},
	}

	data, err := json.Marshal(entry)
	require.NoError(t, err)
	assert.JSONEq(t, `{"wallet":"0x3333333333333333333333333333333333333333","phase":1,"signature":"0xabcd"}`, string(data))
}

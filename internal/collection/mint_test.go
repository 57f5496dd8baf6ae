package collection_test

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/golang/mock/gomock"
	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-collection-launch/internal/collection"
	"github.com/feral-file/ff-collection-launch/internal/domain"
	"github.com/feral-file/ff-collection-launch/internal/mocks"
)

func TestPrivateMint(t *testing.T) {
	f := newFixture(t)

	events, err := f.coll.PrivateMint(alice, 2, uint256.NewInt(20000000), f.sign(alice, 0))
	require.NoError(t, err)
	require.Len(t, events, 1)

	event := events[0]
	assert.Equal(t, domain.EventTypeMinted, event.Type)
	assert.Equal(t, alice, event.Actor)
	assert.Equal(t, collectionAddr, event.Collection)
	assert.Equal(t, f.now, event.Timestamp)

	data := event.Data.(*domain.MintedData)
	require.NotNil(t, data.Phase)
	assert.Equal(t, 0, *data.Phase)
	assert.Equal(t, uint64(2), data.Amount)
	assert.Equal(t, domain.TokenID(1), data.FirstToken)
	assert.Equal(t, domain.TokenID(2), data.LastToken)

	assert.Equal(t, uint64(2), f.coll.TotalMinted())
	assert.Equal(t, uint64(2), f.coll.NumberMinted(alice))
	assert.Equal(t, uint64(2), f.coll.PhaseMinted(alice, 0))
	assert.Equal(t, uint64(0), f.coll.PhaseMinted(alice, 1))
	assert.Equal(t, uint64(2), f.coll.BalanceOf(alice))
	assert.Equal(t, uint256.NewInt(20000000), f.coll.PooledBalance())

	for _, id := range []domain.TokenID{1, 2} {
		token, err := f.coll.Token(id)
		require.NoError(t, err)
		assert.Equal(t, alice, token.Owner)
		assert.Equal(t, alice, token.OriginalMinter)
		assert.False(t, token.Staked())
	}

	// ids continue across wallets
	ids := f.mintPhase0(bob, 1)
	assert.Equal(t, []domain.TokenID{3}, ids)
}

func TestPrivateMint_SecondPhase(t *testing.T) {
	f := newFixture(t)
	_, err := f.coll.SetPhase(ownerAddr, 1)
	require.NoError(t, err)

	// a phase 0 signature is not valid in phase 1
	_, err = f.coll.PrivateMint(alice, 1, uint256.NewInt(20000000), f.sign(alice, 0))
	assert.ErrorIs(t, err, domain.ErrInvalidSignature)

	_, err = f.coll.PrivateMint(alice, 15, uint256.NewInt(300000000), f.sign(alice, 1))
	require.NoError(t, err)
	assert.Equal(t, uint64(15), f.coll.PhaseMinted(alice, 1))

	_, err = f.coll.PrivateMint(alice, 1, uint256.NewInt(20000000), f.sign(alice, 1))
	assert.ErrorIs(t, err, domain.ErrWalletLimitExceeded)
}

func TestPrivateMint_Rejections(t *testing.T) {
	tests := []struct {
		name        string
		modify      func(*collection.Params)
		setup       func(f *fixture) []byte
		amount      uint64
		value       *uint256.Int
		expectedErr error
	}{
		{
			name:        "public sale enabled",
			modify:      func(p *collection.Params) { p.PublicSaleEnabled = true },
			setup:       func(f *fixture) []byte { return f.sign(alice, 0) },
			amount:      1,
			value:       uint256.NewInt(10000000),
			expectedErr: domain.ErrPublicSaleActive,
		},
		{
			name:        "signature for another wallet",
			setup:       func(f *fixture) []byte { return f.sign(bob, 0) },
			amount:      1,
			value:       uint256.NewInt(10000000),
			expectedErr: domain.ErrInvalidSignature,
		},
		{
			name:        "signature for another phase",
			setup:       func(f *fixture) []byte { return f.sign(alice, 1) },
			amount:      1,
			value:       uint256.NewInt(10000000),
			expectedErr: domain.ErrInvalidSignature,
		},
		{
			name:        "malformed signature",
			setup:       func(f *fixture) []byte { return []byte{0x01, 0x02} },
			amount:      1,
			value:       uint256.NewInt(10000000),
			expectedErr: domain.ErrInvalidSignature,
		},
		{
			name: "blacklisted signature",
			setup: func(f *fixture) []byte {
				sig := f.sign(alice, 0)
				_, err := f.coll.BlacklistSignatures(ownerAddr, [][]byte{sig})
				require.NoError(f.t, err)
				return sig
			},
			amount:      1,
			value:       uint256.NewInt(10000000),
			expectedErr: domain.ErrSignatureBlacklisted,
		},
		{
			name:        "zero amount",
			setup:       func(f *fixture) []byte { return f.sign(alice, 0) },
			amount:      0,
			value:       uint256.NewInt(0),
			expectedErr: domain.ErrInvalidMintAmount,
		},
		{
			name:        "underpayment",
			setup:       func(f *fixture) []byte { return f.sign(alice, 0) },
			amount:      2,
			value:       uint256.NewInt(19999999),
			expectedErr: domain.ErrInvalidCostAmount,
		},
		{
			name:        "overpayment",
			setup:       func(f *fixture) []byte { return f.sign(alice, 0) },
			amount:      1,
			value:       uint256.NewInt(10000001),
			expectedErr: domain.ErrInvalidCostAmount,
		},
		{
			name:        "missing payment",
			setup:       func(f *fixture) []byte { return f.sign(alice, 0) },
			amount:      1,
			expectedErr: domain.ErrInvalidCostAmount,
		},
		{
			name:        "total supply",
			modify:      func(p *collection.Params) { p.TotalSupplyLimit = 3 },
			setup:       func(f *fixture) []byte { return f.sign(alice, 0) },
			amount:      4,
			value:       uint256.NewInt(40000000),
			expectedErr: domain.ErrSupplyExceeded,
		},
		{
			name:        "wallet limit",
			setup:       func(f *fixture) []byte { return f.sign(alice, 0) },
			amount:      11,
			value:       uint256.NewInt(110000000),
			expectedErr: domain.ErrWalletLimitExceeded,
		},
		{
			name: "cost overflow",
			modify: func(p *collection.Params) {
				p.PhaseCost[0] = new(uint256.Int).SetAllOne()
			},
			setup:       func(f *fixture) []byte { return f.sign(alice, 0) },
			amount:      2,
			value:       uint256.NewInt(1),
			expectedErr: domain.ErrArithmeticOverflow,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var modify []func(*collection.Params)
			if tt.modify != nil {
				modify = append(modify, tt.modify)
			}
			f := newFixture(t, modify...)
			sig := tt.setup(f)

			events, err := f.coll.PrivateMint(alice, tt.amount, tt.value, sig)
			assert.ErrorIs(t, err, tt.expectedErr)
			assert.True(t, domain.IsRevert(err))
			assert.Nil(t, events)

			assert.Equal(t, uint64(0), f.coll.TotalMinted())
			assert.Equal(t, uint64(0), f.coll.NumberMinted(alice))
			assert.True(t, f.coll.PooledBalance().IsZero())
		})
	}
}

func TestPrivateMint_SignatureReusableUpToLimit(t *testing.T) {
	f := newFixture(t)
	sig := f.sign(alice, 0)

	for i := 0; i < 10; i++ {
		_, err := f.coll.PrivateMint(alice, 1, uint256.NewInt(10000000), sig)
		require.NoError(t, err)
	}
	_, err := f.coll.PrivateMint(alice, 1, uint256.NewInt(10000000), sig)
	assert.ErrorIs(t, err, domain.ErrWalletLimitExceeded)
	assert.Equal(t, uint64(10), f.coll.TotalMinted())
}

func TestPrivateMint_BlacklistedSignatureReencoded(t *testing.T) {
	f := newFixture(t)
	sig := f.sign(alice, 0)
	_, err := f.coll.BlacklistSignatures(ownerAddr, [][]byte{sig})
	require.NoError(t, err)

	rawV := append([]byte{}, sig...)
	rawV[64] -= 27

	highS := append([]byte{}, sig...)
	s := new(big.Int).SetBytes(sig[32:64])
	s.Sub(crypto.S256().Params().N, s)
	s.FillBytes(highS[32:64])
	highS[64] = 55 - sig[64]

	for name, variant := range map[string][]byte{"raw recovery id": rawV, "high s": highS} {
		t.Run(name, func(t *testing.T) {
			assert.False(t, f.coll.IsBlacklisted(variant))
			_, err := f.coll.PrivateMint(alice, 1, uint256.NewInt(10000000), variant)
			assert.ErrorIs(t, err, domain.ErrInvalidSignature)
		})
	}
	assert.Equal(t, uint64(0), f.coll.PhaseMinted(alice, 0))
	assert.Equal(t, uint64(0), f.coll.TotalMinted())
}

func TestPrivateMint_SupplyAcrossWallets(t *testing.T) {
	f := newFixture(t, func(p *collection.Params) { p.TotalSupplyLimit = 12 })

	f.mintPhase0(alice, 10)
	_, err := f.coll.PrivateMint(bob, 3, uint256.NewInt(30000000), f.sign(bob, 0))
	assert.ErrorIs(t, err, domain.ErrSupplyExceeded)

	f.mintPhase0(bob, 2)
	assert.Equal(t, uint64(12), f.coll.TotalMinted())
}

func TestPrivateMint_VerifierMock(t *testing.T) {
	ctrl := gomock.NewController(t)
	verifier := mocks.NewMockVerifier(ctrl)
	clock := mocks.NewMockClock(ctrl)
	clock.EXPECT().Now().Return(fixedTime).AnyTimes()

	state, err := collection.NewState(defaultParams(carol))
	require.NoError(t, err)
	c, err := collection.New(state, clock, collection.WithVerifier(verifier))
	require.NoError(t, err)

	sig := []byte("signature")
	verifier.EXPECT().Verify(collectionAddr, alice, uint8(0), sig).Return(true)
	_, err = c.PrivateMint(alice, 1, uint256.NewInt(10000000), sig)
	require.NoError(t, err)

	verifier.EXPECT().Verify(collectionAddr, bob, uint8(0), sig).Return(false)
	_, err = c.PrivateMint(bob, 1, uint256.NewInt(10000000), sig)
	assert.ErrorIs(t, err, domain.ErrInvalidSignature)
}

func TestMint(t *testing.T) {
	f := newFixture(t)

	_, err := f.coll.Mint(alice, 1, uint256.NewInt(300000))
	assert.ErrorIs(t, err, domain.ErrPublicSaleDisabled)

	_, err = f.coll.TogglePublicSale(ownerAddr)
	require.NoError(t, err)

	events, err := f.coll.Mint(alice, 3, uint256.NewInt(900000))
	require.NoError(t, err)
	require.Len(t, events, 1)
	data := events[0].Data.(*domain.MintedData)
	assert.Nil(t, data.Phase)
	assert.Equal(t, domain.TokenID(1), data.FirstToken)
	assert.Equal(t, domain.TokenID(3), data.LastToken)

	assert.Equal(t, uint64(3), f.coll.PublicSaleMinted(alice))
	assert.Equal(t, uint64(3), f.coll.NumberMinted(alice))
	assert.Equal(t, uint64(0), f.coll.PhaseMinted(alice, 0))
	assert.Equal(t, uint256.NewInt(900000), f.coll.PooledBalance())

	_, err = f.coll.Mint(alice, 1, uint256.NewInt(300001))
	assert.ErrorIs(t, err, domain.ErrInvalidCostAmount)

	_, err = f.coll.Mint(alice, 0, uint256.NewInt(0))
	assert.ErrorIs(t, err, domain.ErrInvalidMintAmount)

	_, err = f.coll.Mint(alice, 8, uint256.NewInt(2400000))
	assert.ErrorIs(t, err, domain.ErrWalletLimitExceeded)

	_, err = f.coll.Mint(alice, 7, uint256.NewInt(2100000))
	require.NoError(t, err)

	// private mints are closed while the public sale runs
	_, err = f.coll.PrivateMint(bob, 1, uint256.NewInt(10000000), f.sign(bob, 0))
	assert.ErrorIs(t, err, domain.ErrPublicSaleActive)
}

func TestMint_PhaseCountersAreIndependent(t *testing.T) {
	f := newFixture(t)
	f.mintPhase0(alice, 10)

	_, err := f.coll.TogglePublicSale(ownerAddr)
	require.NoError(t, err)

	_, err = f.coll.Mint(alice, 10, uint256.NewInt(3000000))
	require.NoError(t, err)
	assert.Equal(t, uint64(20), f.coll.NumberMinted(alice))
	assert.Equal(t, uint64(10), f.coll.PublicSaleMinted(alice))
	assert.Equal(t, uint64(10), f.coll.PhaseMinted(alice, 0))
}

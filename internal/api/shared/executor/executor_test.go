package executor_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/golang/mock/gomock"
	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-collection-launch/internal/adapter"
	apierrors "github.com/feral-file/ff-collection-launch/internal/api/shared/errors"
	"github.com/feral-file/ff-collection-launch/internal/api/shared/executor"
	"github.com/feral-file/ff-collection-launch/internal/collection"
	"github.com/feral-file/ff-collection-launch/internal/domain"
	"github.com/feral-file/ff-collection-launch/internal/metrics"
	"github.com/feral-file/ff-collection-launch/internal/mocks"
	"github.com/feral-file/ff-collection-launch/internal/signature"
	"github.com/feral-file/ff-collection-launch/internal/store"
	"github.com/feral-file/ff-collection-launch/internal/store/schema"
)

var (
	collectionAddr = common.HexToAddress("0x5FbDB2315678afecb367f032d93F642f64180aa3")
	ownerAddr      = common.HexToAddress("0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266")
	alice          = common.HexToAddress("0x70997970C51812dc3A010C7d01b50e0d17dc79C8")
	fixedTime      = time.Unix(1_700_000_000, 0).UTC()
	addressKey     = strings.ToLower(collectionAddr.Hex())
)

type testDeps struct {
	ctrl      *gomock.Controller
	store     *mocks.MockStore
	publisher *mocks.MockPublisher
	clock     *mocks.MockClock
	json      adapter.JSON
	coll      *collection.Collection
	params    collection.Params
}

func testParams(signer common.Address) collection.Params {
	return collection.Params{
		Name:                  "Collection Launch",
		Symbol:                "CL",
		Address:               collectionAddr,
		Owner:                 ownerAddr,
		AuthorizedSigner:      signer,
		TotalSupplyLimit:      100,
		PhaseCost:             []*uint256.Int{uint256.NewInt(1000)},
		PhaseWalletLimit:      []uint64{10},
		PublicSaleCost:        uint256.NewInt(300),
		PublicSaleWalletLimit: 10,
		PublicSaleEnabled:     true,
		StakeLimitPerToken:    7,
		StakeOptions: []domain.StakeOption{
			{Interval: time.Hour, RewardPerInterval: uint256.NewInt(10), ExtensionLimit: 5, Enabled: true},
		},
		BaseURI: "https://feralfile.com/api",
		Network: domain.NetworkEthereum,
	}
}

func setupTestDeps(t *testing.T) *testDeps {
	t.Helper()

	ctrl := gomock.NewController(t)
	clock := mocks.NewMockClock(ctrl)
	clock.EXPECT().Now().Return(fixedTime).AnyTimes()

	params := testParams(common.HexToAddress("0x90F79bf6EB2c4f870365E785982E1f101E93b906"))
	state, err := collection.NewState(params)
	require.NoError(t, err)
	coll, err := collection.New(state, clock)
	require.NoError(t, err)

	return &testDeps{
		ctrl:      ctrl,
		store:     mocks.NewMockStore(ctrl),
		publisher: mocks.NewMockPublisher(ctrl),
		clock:     clock,
		json:      adapter.NewJSON(),
		coll:      coll,
		params:    params,
	}
}

func (d *testDeps) executor(version int64, recorder metrics.Recorder) executor.Executor {
	return executor.NewExecutor(d.coll, version, d.store, d.publisher, d.json, d.clock, recorder)
}

func TestExecutor_PublicMint(t *testing.T) {
	d := setupTestDeps(t)
	defer d.ctrl.Finish()
	exec := d.executor(1, nil)

	var committed store.CommitOperationInput
	d.store.EXPECT().
		CommitOperation(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, input store.CommitOperationInput) error {
			committed = input
			return nil
		})

	resp, err := exec.PublicMint(context.Background(), alice, 2, uint256.NewInt(600))
	require.NoError(t, err)
	assert.Equal(t, int64(2), resp.Version)
	require.Len(t, resp.Events, 1)
	assert.Equal(t, "minted", resp.Events[0].Type)
	assert.Len(t, resp.Events[0].ID, 26)

	tokenID := int64(1)
	d.store.EXPECT().GetPublishCursor(gomock.Any(), addressKey).Return(int64(4), nil)
	d.store.EXPECT().
		GetEvents(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, filter store.EventQueryFilter) ([]*schema.CollectionEvent, uint64, error) {
			require.NotNil(t, filter.AfterCursor)
			assert.Equal(t, int64(4), *filter.AfterCursor)
			assert.Equal(t, addressKey, filter.CollectionAddress)
			return []*schema.CollectionEvent{{
				Cursor:            5,
				ID:                committed.Events[0].ID,
				CollectionAddress: addressKey,
				EventType:         "minted",
				Actor:             strings.ToLower(alice.Hex()),
				TokenID:           &tokenID,
				Payload:           committed.Events[0].Payload,
				OccurredAt:        fixedTime,
			}}, 1, nil
		})
	d.publisher.EXPECT().
		PublishEvent(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, event *domain.Event) error {
			assert.Equal(t, domain.EventTypeMinted, event.Type)
			assert.Equal(t, collectionAddr, event.Collection)
			assert.Equal(t, alice, event.Actor)
			return nil
		})
	d.store.EXPECT().SetPublishCursor(gomock.Any(), addressKey, int64(5)).Return(nil)
	require.NoError(t, exec.PublishPending(context.Background()))

	assert.Equal(t, addressKey, committed.CollectionAddress)
	assert.Equal(t, int64(1), committed.ExpectedVersion)
	require.Len(t, committed.Events, 1)
	assert.Equal(t, strings.ToLower(alice.Hex()), committed.Events[0].Actor)
	assert.Equal(t, fixedTime, committed.Events[0].OccurredAt)

	// the stored snapshot carries the new state and a matching checksum
	state, err := collection.DecodeState(d.json, committed.State, committed.Checksum)
	require.NoError(t, err)
	assert.Equal(t, uint64(2), state.TotalMinted)
	assert.Equal(t, uint64(2), d.coll.BalanceOf(alice))
}

func TestExecutor_Rejection(t *testing.T) {
	d := setupTestDeps(t)
	defer d.ctrl.Finish()

	recorder := mocks.NewMockRecorder(d.ctrl)
	recorder.EXPECT().SetSupply(uint64(0), float64(0))
	recorder.EXPECT().ObserveOperation("public_mint", metrics.OutcomeRejected, gomock.Any())
	exec := d.executor(1, recorder)

	_, err := exec.PublicMint(context.Background(), alice, 2, uint256.NewInt(599))
	require.Error(t, err)

	var apiErr *apierrors.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, apierrors.ErrCodeRejected, apiErr.Code)
	assert.Equal(t, domain.ErrInvalidCostAmount.Reason(), apiErr.Message)
	assert.Equal(t, uint64(0), d.coll.TotalMinted())
}

func TestExecutor_AdminForbidden(t *testing.T) {
	d := setupTestDeps(t)
	defer d.ctrl.Finish()
	exec := d.executor(1, nil)

	_, err := exec.TogglePublicSale(context.Background(), alice)
	require.Error(t, err)

	var apiErr *apierrors.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, apierrors.ErrCodeForbidden, apiErr.Code)
	assert.True(t, d.coll.Params().PublicSaleEnabled)
}

func TestExecutor_CommitFailureRestoresState(t *testing.T) {
	d := setupTestDeps(t)
	defer d.ctrl.Finish()
	exec := d.executor(3, nil)

	d.store.EXPECT().CommitOperation(gomock.Any(), gomock.Any()).Return(errors.New("connection reset"))

	_, err := exec.Deposit(context.Background(), alice, uint256.NewInt(5000))
	require.Error(t, err)

	var apiErr *apierrors.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, apierrors.ErrCodeDatabaseError, apiErr.Code)
	assert.True(t, d.coll.PooledBalance().IsZero())

	// the next operation is still based on the stored version
	d.store.EXPECT().
		CommitOperation(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, input store.CommitOperationInput) error {
			assert.Equal(t, int64(3), input.ExpectedVersion)
			return nil
		})

	resp, err := exec.Deposit(context.Background(), alice, uint256.NewInt(7))
	require.NoError(t, err)
	assert.Equal(t, int64(4), resp.Version)
	assert.Equal(t, "7", d.coll.PooledBalance().Dec())
}

func TestExecutor_VersionConflictReloadsSnapshot(t *testing.T) {
	d := setupTestDeps(t)
	defer d.ctrl.Finish()

	// another writer committed a deposit of 900 as version 5
	other := setupTestDeps(t)
	defer other.ctrl.Finish()
	other.store.EXPECT().CommitOperation(gomock.Any(), gomock.Any()).Return(nil)
	_, err := other.executor(4, nil).Deposit(context.Background(), ownerAddr, uint256.NewInt(900))
	require.NoError(t, err)
	data, checksum, err := collection.EncodeState(d.json, other.coll.Snapshot())
	require.NoError(t, err)

	exec := d.executor(3, nil)
	d.store.EXPECT().CommitOperation(gomock.Any(), gomock.Any()).Return(store.ErrVersionConflict)
	d.store.EXPECT().GetLatestSnapshot(gomock.Any(), addressKey).Return(&schema.CollectionSnapshot{
		CollectionAddress: addressKey,
		Version:           5,
		State:             data,
		Checksum:          checksum,
	}, nil)

	_, err = exec.Deposit(context.Background(), alice, uint256.NewInt(5000))
	require.Error(t, err)
	var apiErr *apierrors.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, apierrors.ErrCodeConflict, apiErr.Code)
	assert.Equal(t, "900", d.coll.PooledBalance().Dec())

	health, err := exec.Health(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(5), health.Version)

	// the retry is based on the reloaded version
	d.store.EXPECT().
		CommitOperation(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, input store.CommitOperationInput) error {
			assert.Equal(t, int64(5), input.ExpectedVersion)
			return nil
		})

	resp, err := exec.Deposit(context.Background(), alice, uint256.NewInt(5000))
	require.NoError(t, err)
	assert.Equal(t, int64(6), resp.Version)
	assert.Equal(t, "5900", d.coll.PooledBalance().Dec())
}

func TestExecutor_VersionConflictReloadFailure(t *testing.T) {
	d := setupTestDeps(t)
	defer d.ctrl.Finish()
	exec := d.executor(3, nil)

	d.store.EXPECT().CommitOperation(gomock.Any(), gomock.Any()).Return(store.ErrVersionConflict)
	d.store.EXPECT().GetLatestSnapshot(gomock.Any(), addressKey).Return(nil, errors.New("connection refused"))

	_, err := exec.Deposit(context.Background(), alice, uint256.NewInt(5000))
	var apiErr *apierrors.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, apierrors.ErrCodeConflict, apiErr.Code)
	assert.True(t, d.coll.PooledBalance().IsZero())

	// the next conflict tries again
	d.store.EXPECT().CommitOperation(gomock.Any(), gomock.Any()).Return(store.ErrVersionConflict)
	d.store.EXPECT().GetLatestSnapshot(gomock.Any(), addressKey).Return(nil, nil)

	_, err = exec.Deposit(context.Background(), alice, uint256.NewInt(5000))
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, apierrors.ErrCodeConflict, apiErr.Code)
}

func TestExecutor_PublishFailureKeepsCursor(t *testing.T) {
	d := setupTestDeps(t)
	defer d.ctrl.Finish()

	recorder := mocks.NewMockRecorder(d.ctrl)
	recorder.EXPECT().SetSupply(gomock.Any(), gomock.Any()).Times(2)
	recorder.EXPECT().ObserveOperation("deposit", metrics.OutcomeCommitted, gomock.Any())
	recorder.EXPECT().IncPublishFailure("deposited")
	exec := d.executor(1, recorder)

	d.store.EXPECT().CommitOperation(gomock.Any(), gomock.Any()).Return(nil)

	resp, err := exec.Deposit(context.Background(), alice, uint256.NewInt(5))
	require.NoError(t, err)
	assert.Equal(t, int64(2), resp.Version)

	d.store.EXPECT().GetPublishCursor(gomock.Any(), addressKey).Return(int64(0), nil)
	d.store.EXPECT().GetEvents(gomock.Any(), gomock.Any()).Return([]*schema.CollectionEvent{{
		Cursor:            1,
		ID:                "01J9Z6X7Q8R9S0T1V2W3X4Y5Z6",
		CollectionAddress: addressKey,
		EventType:         "deposited",
		Actor:             strings.ToLower(alice.Hex()),
		Payload:           []byte(`{"value":"5"}`),
		OccurredAt:        fixedTime,
	}}, uint64(1), nil)
	d.publisher.EXPECT().PublishEvent(gomock.Any(), gomock.Any()).Return(errors.New("nats: timeout"))

	// the cursor is not advanced, the event is retried on the next pass
	err = exec.PublishPending(context.Background())
	require.Error(t, err)
}

func TestExecutor_RunPublishesInBackground(t *testing.T) {
	d := setupTestDeps(t)
	defer d.ctrl.Finish()
	exec := d.executor(1, nil)

	entered := make(chan struct{})
	release := make(chan struct{})
	drained := make(chan struct{})

	d.store.EXPECT().CommitOperation(gomock.Any(), gomock.Any()).Return(nil).Times(2)
	d.store.EXPECT().GetPublishCursor(gomock.Any(), addressKey).Return(int64(0), nil)
	d.store.EXPECT().GetEvents(gomock.Any(), gomock.Any()).Return([]*schema.CollectionEvent{{
		Cursor:            1,
		ID:                "01J9Z6X7Q8R9S0T1V2W3X4Y5Z6",
		CollectionAddress: addressKey,
		EventType:         "deposited",
		Actor:             strings.ToLower(alice.Hex()),
		Payload:           []byte(`{"value":"5"}`),
		OccurredAt:        fixedTime,
	}}, uint64(1), nil)
	d.publisher.EXPECT().
		PublishEvent(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, event *domain.Event) error {
			_, ok := ctx.Deadline()
			assert.True(t, ok)
			close(entered)
			<-release
			return nil
		})
	d.store.EXPECT().SetPublishCursor(gomock.Any(), addressKey, int64(1)).Return(nil)
	d.store.EXPECT().GetPublishCursor(gomock.Any(), addressKey).Return(int64(1), nil)
	d.store.EXPECT().
		GetEvents(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, filter store.EventQueryFilter) ([]*schema.CollectionEvent, uint64, error) {
			if assert.NotNil(t, filter.AfterCursor) {
				assert.Equal(t, int64(1), *filter.AfterCursor)
			}
			close(drained)
			return nil, uint64(0), nil
		})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		exec.Run(ctx)
		close(done)
	}()

	_, err := exec.Deposit(context.Background(), alice, uint256.NewInt(5))
	require.NoError(t, err)
	<-entered

	// a slow subscriber does not hold up the next request
	reqCtx, reqCancel := context.WithTimeout(context.Background(), time.Second)
	defer reqCancel()
	resp, err := exec.Deposit(reqCtx, alice, uint256.NewInt(5))
	require.NoError(t, err)
	assert.Equal(t, int64(3), resp.Version)

	close(release)
	select {
	case <-drained:
	case <-time.After(5 * time.Second):
		t.Fatal("second publish pass did not run")
	}

	cancel()
	<-done
}

func TestExecutor_ReadsWaitForCommit(t *testing.T) {
	d := setupTestDeps(t)
	defer d.ctrl.Finish()
	exec := d.executor(1, nil)

	entered := make(chan struct{})
	release := make(chan struct{})
	d.store.EXPECT().
		CommitOperation(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, input store.CommitOperationInput) error {
			close(entered)
			<-release
			return errors.New("connection reset")
		})

	errCh := make(chan error, 1)
	go func() {
		_, err := exec.Deposit(context.Background(), alice, uint256.NewInt(5000))
		errCh <- err
	}()
	<-entered

	// the deposit is applied in memory but not stored yet
	assert.Equal(t, "5000", d.coll.PooledBalance().Dec())

	read := make(chan string, 1)
	go func() {
		info, err := exec.GetCollection(context.Background())
		assert.NoError(t, err)
		read <- info.PooledBalance
	}()

	select {
	case balance := <-read:
		t.Fatalf("read returned %s before the commit finished", balance)
	case <-time.After(50 * time.Millisecond):
	}

	close(release)
	require.Error(t, <-errCh)
	assert.Equal(t, "0", <-read)
}

func TestExecutor_ApplyBlacklistSeed(t *testing.T) {
	d := setupTestDeps(t)
	defer d.ctrl.Finish()
	exec := d.executor(1, nil)

	seed := staticBlacklist{collectionAddr: {{0x01, 0x02}, {0x03}}}

	d.store.EXPECT().
		CommitOperation(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, input store.CommitOperationInput) error {
			require.Len(t, input.Events, 1)
			assert.Equal(t, string(domain.EventTypeSignatureBlacklist), input.Events[0].EventType)
			assert.Equal(t, strings.ToLower(ownerAddr.Hex()), input.Events[0].Actor)
			return nil
		})

	n, err := exec.ApplyBlacklistSeed(context.Background(), seed)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.True(t, d.coll.IsBlacklisted([]byte{0x03}))

	// already applied
	n, err = exec.ApplyBlacklistSeed(context.Background(), seed)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestExecutor_GetEvents(t *testing.T) {
	d := setupTestDeps(t)
	defer d.ctrl.Finish()
	exec := d.executor(1, nil)

	tokenID := domain.TokenID(3)
	d.store.EXPECT().
		GetEvents(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, filter store.EventQueryFilter) ([]*schema.CollectionEvent, uint64, error) {
			assert.Equal(t, addressKey, filter.CollectionAddress)
			assert.Equal(t, []string{"staked"}, filter.EventTypes)
			require.NotNil(t, filter.Actor)
			assert.Equal(t, strings.ToLower(alice.Hex()), *filter.Actor)
			require.NotNil(t, filter.TokenID)
			assert.Equal(t, int64(3), *filter.TokenID)
			assert.Equal(t, 1, filter.Limit)
			id := int64(3)
			return []*schema.CollectionEvent{{
				Cursor:    9,
				ID:        "01J9Z6X7Q8R9S0T1V2W3X4Y5Z6",
				EventType: "staked",
				Actor:     strings.ToLower(alice.Hex()),
				TokenID:   &id,
				Payload:   []byte(`{"option_index":0}`),
			}}, 4, nil
		})

	resp, err := exec.GetEvents(context.Background(), executor.EventFilter{
		Types:   []string{"staked"},
		Actor:   &alice,
		TokenID: &tokenID,
		Limit:   1,
	})
	require.NoError(t, err)
	assert.Equal(t, uint64(4), resp.Total)
	require.Len(t, resp.Events, 1)
	require.NotNil(t, resp.Events[0].TokenID)
	assert.Equal(t, uint64(3), *resp.Events[0].TokenID)
	require.NotNil(t, resp.NextCursor)
	assert.Equal(t, int64(9), *resp.NextCursor)
}

func TestExecutor_Reads(t *testing.T) {
	d := setupTestDeps(t)
	defer d.ctrl.Finish()
	exec := d.executor(1, nil)
	ctx := context.Background()

	token, err := exec.GetToken(ctx, 1)
	require.NoError(t, err)
	assert.Nil(t, token)

	_, err = exec.GetTokenURI(ctx, 1)
	var apiErr *apierrors.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, apierrors.ErrCodeNotFound, apiErr.Code)

	d.store.EXPECT().CommitOperation(gomock.Any(), gomock.Any()).Return(nil)
	_, err = exec.PublicMint(ctx, alice, 1, uint256.NewInt(300))
	require.NoError(t, err)

	token, err = exec.GetToken(ctx, 1)
	require.NoError(t, err)
	require.NotNil(t, token)
	assert.Equal(t, strings.ToLower(alice.Hex()), token.Owner)
	assert.False(t, token.Staked)
	assert.Equal(t, "https://feralfile.com/api/collection-launches/"+addressKey+"/tokens/1/metadata?network=Ethereum", token.TokenURI)

	wallet, err := exec.GetWallet(ctx, alice)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), wallet.NumberMinted)
	assert.Equal(t, uint64(1), wallet.PublicSaleMinted)
	assert.Equal(t, uint64(1), wallet.Balance)
	assert.Equal(t, "0", wallet.Credit)

	info, err := exec.GetCollection(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), info.TotalMinted)
	assert.Equal(t, "300", info.PooledBalance)
	require.Len(t, info.Phases, 1)
	assert.Equal(t, "1000", info.Phases[0].Cost)

	options, err := exec.GetStakeOptions(ctx)
	require.NoError(t, err)
	require.Len(t, options, 1)
	assert.Equal(t, int64(3600), options[0].IntervalSeconds)
}

func TestExecutor_StakeAndCalculateRewards(t *testing.T) {
	d := setupTestDeps(t)
	defer d.ctrl.Finish()
	exec := d.executor(1, nil)
	ctx := context.Background()

	d.store.EXPECT().CommitOperation(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	_, err := exec.PublicMint(ctx, alice, 2, uint256.NewInt(600))
	require.NoError(t, err)
	resp, err := exec.Stake(ctx, alice, []domain.TokenID{1, 2}, 0)
	require.NoError(t, err)
	assert.Len(t, resp.Events, 2)

	rewards, err := exec.CalculateRewards(ctx, alice, []domain.TokenID{1, 2})
	require.NoError(t, err)
	require.Len(t, rewards.Rewards, 2)
	assert.Equal(t, "0", rewards.Total)

	_, err = exec.CalculateRewards(ctx, alice, []domain.TokenID{3})
	require.Error(t, err)
}

func TestExecutor_VerifySignature(t *testing.T) {
	key, err := crypto.GenerateKey()
	require.NoError(t, err)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	clock := mocks.NewMockClock(ctrl)
	clock.EXPECT().Now().Return(fixedTime).AnyTimes()

	state, err := collection.NewState(testParams(crypto.PubkeyToAddress(key.PublicKey)))
	require.NoError(t, err)
	coll, err := collection.New(state, clock)
	require.NoError(t, err)

	exec := executor.NewExecutor(coll, 1, mocks.NewMockStore(ctrl), nil, adapter.NewJSON(), clock, nil)

	sig, err := signature.Sign(key, collectionAddr, alice, 0)
	require.NoError(t, err)

	resp, err := exec.VerifySignature(context.Background(), alice, 0, sig)
	require.NoError(t, err)
	assert.True(t, resp.Valid)
	assert.False(t, resp.Blacklisted)

	resp, err = exec.VerifySignature(context.Background(), alice, 1, sig)
	require.NoError(t, err)
	assert.False(t, resp.Valid)
}

func TestExecutor_Health(t *testing.T) {
	d := setupTestDeps(t)
	defer d.ctrl.Finish()
	exec := d.executor(7, nil)

	d.store.EXPECT().Ping(gomock.Any()).Return(nil)
	resp, err := exec.Health(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, int64(7), resp.Version)

	d.store.EXPECT().Ping(gomock.Any()).Return(errors.New("connection refused"))
	resp, err = exec.Health(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "degraded", resp.Status)
	assert.Equal(t, "unavailable", resp.Database)
}

func TestOpen(t *testing.T) {
	t.Run("creates a new collection", func(t *testing.T) {
		d := setupTestDeps(t)
		defer d.ctrl.Finish()

		d.store.EXPECT().GetLatestSnapshot(gomock.Any(), addressKey).Return(nil, nil)
		d.store.EXPECT().
			CommitOperation(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, input store.CommitOperationInput) error {
				assert.Equal(t, int64(0), input.ExpectedVersion)
				assert.Empty(t, input.Events)
				assert.NotEmpty(t, input.Checksum)
				return nil
			})

		coll, version, err := executor.Open(context.Background(), d.store, d.json, d.clock, d.params)
		require.NoError(t, err)
		assert.Equal(t, int64(1), version)
		assert.Equal(t, collectionAddr, coll.Address())
	})

	t.Run("loads the latest snapshot", func(t *testing.T) {
		d := setupTestDeps(t)
		defer d.ctrl.Finish()

		d.store.EXPECT().CommitOperation(gomock.Any(), gomock.Any()).Return(nil)
		_, err := d.executor(1, nil).PublicMint(context.Background(), alice, 3, uint256.NewInt(900))
		require.NoError(t, err)

		data, checksum, err := collection.EncodeState(d.json, d.coll.Snapshot())
		require.NoError(t, err)
		d.store.EXPECT().GetLatestSnapshot(gomock.Any(), addressKey).Return(&schema.CollectionSnapshot{
			CollectionAddress: addressKey,
			Version:           2,
			State:             data,
			Checksum:          checksum,
		}, nil)

		coll, version, err := executor.Open(context.Background(), d.store, d.json, d.clock, d.params)
		require.NoError(t, err)
		assert.Equal(t, int64(2), version)
		assert.Equal(t, uint64(3), coll.TotalMinted())
		assert.Equal(t, "900", coll.PooledBalance().Dec())
	})

	t.Run("rejects a corrupted snapshot", func(t *testing.T) {
		d := setupTestDeps(t)
		defer d.ctrl.Finish()

		data, _, err := collection.EncodeState(d.json, d.coll.Snapshot())
		require.NoError(t, err)
		d.store.EXPECT().GetLatestSnapshot(gomock.Any(), addressKey).Return(&schema.CollectionSnapshot{
			CollectionAddress: addressKey,
			Version:           2,
			State:             data,
			Checksum:          "0x00",
		}, nil)

		_, _, err = executor.Open(context.Background(), d.store, d.json, d.clock, d.params)
		require.Error(t, err)
		assert.True(t, errors.Is(err, collection.ErrChecksumMismatch))
	})

	t.Run("store error", func(t *testing.T) {
		d := setupTestDeps(t)
		defer d.ctrl.Finish()

		d.store.EXPECT().GetLatestSnapshot(gomock.Any(), addressKey).Return(nil, errors.New("connection refused"))

		_, _, err := executor.Open(context.Background(), d.store, d.json, d.clock, d.params)
		require.Error(t, err)
	})
}

type staticBlacklist map[common.Address][][]byte

func (s staticBlacklist) IsBlacklisted(addr common.Address, sig []byte) bool {
	for _, b := range s[addr] {
		if string(b) == string(sig) {
			return true
		}
	}
	return false
}

func (s staticBlacklist) Signatures(addr common.Address) [][]byte {
	return s[addr]
}

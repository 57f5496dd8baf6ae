package executor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"

	"github.com/feral-file/ff-collection-launch/internal/adapter"
	"github.com/feral-file/ff-collection-launch/internal/api/shared/constants"
	"github.com/feral-file/ff-collection-launch/internal/api/shared/dto"
	apierrors "github.com/feral-file/ff-collection-launch/internal/api/shared/errors"
	"github.com/feral-file/ff-collection-launch/internal/collection"
	"github.com/feral-file/ff-collection-launch/internal/domain"
	"github.com/feral-file/ff-collection-launch/internal/logger"
	"github.com/feral-file/ff-collection-launch/internal/messaging"
	"github.com/feral-file/ff-collection-launch/internal/metrics"
	"github.com/feral-file/ff-collection-launch/internal/registry"
	"github.com/feral-file/ff-collection-launch/internal/store"
)

// Executor is the interface for the API executor
//
//go:generate mockgen -source=executor.go -destination=../../../mocks/mock_api_executor.go -package=mocks -mock_names=Executor=MockAPIExecutor
type Executor interface {
	// GetCollection retrieves the public state of the collection
	GetCollection(ctx context.Context) (*dto.CollectionResponse, error)
	// GetToken retrieves a single token, nil if it was never issued
	GetToken(ctx context.Context, id domain.TokenID) (*dto.TokenResponse, error)
	// GetTokenURI retrieves the metadata URI of a token
	GetTokenURI(ctx context.Context, id domain.TokenID) (*dto.TokenURIResponse, error)
	// GetWallet retrieves the mint accounting and credits of a wallet
	GetWallet(ctx context.Context, wallet common.Address) (*dto.WalletResponse, error)
	// VerifySignature checks a whitelist signature against the authorized signer
	VerifySignature(ctx context.Context, wallet common.Address, phase int, sig []byte) (*dto.VerifySignatureResponse, error)
	// GetStakeOptions retrieves the stake options
	GetStakeOptions(ctx context.Context) ([]dto.StakeOptionResponse, error)
	// GetEvents retrieves the event journal
	GetEvents(ctx context.Context, filter EventFilter) (*dto.EventListResponse, error)
	// CalculateRewards projects the rewards of staked tokens without changing them
	CalculateRewards(ctx context.Context, caller common.Address, ids []domain.TokenID) (*dto.RewardsResponse, error)

	PrivateMint(ctx context.Context, caller common.Address, amount uint64, value *uint256.Int, sig []byte) (*dto.OperationResponse, error)
	PublicMint(ctx context.Context, caller common.Address, amount uint64, value *uint256.Int) (*dto.OperationResponse, error)
	Stake(ctx context.Context, caller common.Address, ids []domain.TokenID, optionIndex int) (*dto.OperationResponse, error)
	Unstake(ctx context.Context, caller common.Address, ids []domain.TokenID) (*dto.OperationResponse, error)
	Transfer(ctx context.Context, caller, from, to common.Address, id domain.TokenID) (*dto.OperationResponse, error)
	Deposit(ctx context.Context, from common.Address, value *uint256.Int) (*dto.OperationResponse, error)
	Withdraw(ctx context.Context, caller common.Address, shares []domain.WithdrawShare, requester string) (*dto.OperationResponse, error)

	TogglePublicSale(ctx context.Context, caller common.Address) (*dto.OperationResponse, error)
	SetPhase(ctx context.Context, caller common.Address, phase int) (*dto.OperationResponse, error)
	SetPublicSaleCost(ctx context.Context, caller common.Address, cost *uint256.Int) (*dto.OperationResponse, error)
	SetMintLimits(ctx context.Context, caller common.Address, phaseLimits []uint64, publicLimit uint64) (*dto.OperationResponse, error)
	BlacklistSignatures(ctx context.Context, caller common.Address, sigs [][]byte) (*dto.OperationResponse, error)
	UpdateStakeLimitPerToken(ctx context.Context, caller common.Address, limit uint64) (*dto.OperationResponse, error)
	AddStakeOption(ctx context.Context, caller common.Address, interval time.Duration, reward *uint256.Int, extensionLimit uint64, enabled bool) (*dto.OperationResponse, error)
	UpdateStakeOption(ctx context.Context, caller common.Address, index int, interval time.Duration, reward *uint256.Int, extensionLimit uint64, enabled bool) (*dto.OperationResponse, error)
	ToggleAllStakeOptions(ctx context.Context, caller common.Address, enabled bool) (*dto.OperationResponse, error)

	// ApplyBlacklistSeed blacklists, as the owner, the seeded signatures not blacklisted yet
	ApplyBlacklistSeed(ctx context.Context, seed registry.BlacklistRegistry) (int, error)
	// PublishPending publishes the journaled events after the publish cursor
	PublishPending(ctx context.Context) error
	// Run publishes committed events in the background until ctx is done
	Run(ctx context.Context)
	// Health reports the health of the service
	Health(ctx context.Context) (*dto.HealthResponse, error)
}

// EventFilter filters the event journal
type EventFilter struct {
	Types       []string
	Actor       *common.Address
	TokenID     *domain.TokenID
	AfterCursor *int64
	Limit       int
	Offset      uint64
}

const (
	publishInterval = 30 * time.Second
	publishTimeout  = 2 * time.Minute
)

type executor struct {
	// mu serializes mutating operations together with their commit.
	// Readers hold it shared so they never observe an uncommitted state.
	mu        sync.RWMutex
	publishMu sync.Mutex
	notify    chan struct{}

	coll      *collection.Collection
	version   int64
	address   string
	store     store.Store
	publisher messaging.Publisher
	json      adapter.JSON
	clock     adapter.Clock
	metrics   metrics.Recorder
}

// NewExecutor creates an executor for a collection whose snapshot is stored with the given version
func NewExecutor(coll *collection.Collection, version int64, st store.Store, publisher messaging.Publisher, jsonAdapter adapter.JSON, clock adapter.Clock, recorder metrics.Recorder) Executor {
	if publisher == nil {
		publisher = messaging.NewNopPublisher()
	}
	if recorder == nil {
		recorder = metrics.Nop{}
	}

	e := &executor{
		coll:      coll,
		version:   version,
		address:   addressKey(coll.Address()),
		store:     st,
		publisher: publisher,
		json:      jsonAdapter,
		clock:     clock,
		metrics:   recorder,
		notify:    make(chan struct{}, 1),
	}
	e.recordSupply()
	return e
}

// Open loads the latest snapshot of the collection identified by params.Address,
// or creates and stores a new collection from params when none exists.
// It returns the collection and the stored snapshot version.
func Open(ctx context.Context, st store.Store, jsonAdapter adapter.JSON, clock adapter.Clock, params collection.Params, opts ...collection.Option) (*collection.Collection, int64, error) {
	address := addressKey(params.Address)

	snapshot, err := st.GetLatestSnapshot(ctx, address)
	if err != nil {
		return nil, 0, err
	}

	if snapshot != nil {
		state, err := collection.DecodeState(jsonAdapter, snapshot.State, snapshot.Checksum)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to decode snapshot of %s: %w", address, err)
		}
		if state.Params.Address != params.Address {
			return nil, 0, fmt.Errorf("snapshot of %s belongs to %s", address, state.Params.Address.Hex())
		}
		coll, err := collection.New(state, clock, opts...)
		if err != nil {
			return nil, 0, err
		}

		logger.Info("Loaded collection snapshot",
			zap.String("collection", address),
			zap.Int64("version", snapshot.Version),
			zap.Uint64("totalMinted", state.TotalMinted))
		return coll, snapshot.Version, nil
	}

	state, err := collection.NewState(params)
	if err != nil {
		return nil, 0, err
	}
	coll, err := collection.New(state, clock, opts...)
	if err != nil {
		return nil, 0, err
	}

	data, checksum, err := collection.EncodeState(jsonAdapter, coll.Snapshot())
	if err != nil {
		return nil, 0, err
	}
	err = st.CommitOperation(ctx, store.CommitOperationInput{
		CollectionAddress: address,
		ExpectedVersion:   0,
		State:             data,
		Checksum:          checksum,
	})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to store new collection: %w", err)
	}

	logger.Info("Created collection", zap.String("collection", address))
	return coll, 1, nil
}

func (e *executor) GetCollection(ctx context.Context) (*dto.CollectionResponse, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	return dto.MapCollectionToDTO(e.coll.Params(), e.coll.TotalMinted(), e.coll.PooledBalance().Dec()), nil
}

func (e *executor) GetToken(ctx context.Context, id domain.TokenID) (*dto.TokenResponse, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	token, err := e.coll.Token(id)
	if err != nil {
		if errors.Is(err, domain.ErrNotMinted) {
			return nil, nil
		}
		return nil, apierrors.NewInternalError(fmt.Sprintf("Failed to get token: %v", err))
	}

	uri, err := e.coll.TokenURI(id)
	if err != nil {
		return nil, apierrors.NewInternalError(fmt.Sprintf("Failed to get token URI: %v", err))
	}

	return dto.MapTokenToDTO(token, uri), nil
}

func (e *executor) GetTokenURI(ctx context.Context, id domain.TokenID) (*dto.TokenURIResponse, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	uri, err := e.coll.TokenURI(id)
	if err != nil {
		if apiErr := apierrors.FromRevert(err); apiErr != nil {
			return nil, apiErr
		}
		return nil, apierrors.NewInternalError(fmt.Sprintf("Failed to get token URI: %v", err))
	}

	return &dto.TokenURIResponse{TokenID: uint64(id), TokenURI: uri}, nil
}

func (e *executor) GetWallet(ctx context.Context, wallet common.Address) (*dto.WalletResponse, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	params := e.coll.Params()
	phaseMinted := make(map[int]uint64, len(params.PhaseCost))
	for phase := range params.PhaseCost {
		if n := e.coll.PhaseMinted(wallet, phase); n > 0 {
			phaseMinted[phase] = n
		}
	}

	return &dto.WalletResponse{
		Address:          addressKey(wallet),
		Balance:          e.coll.BalanceOf(wallet),
		NumberMinted:     e.coll.NumberMinted(wallet),
		PhaseMinted:      phaseMinted,
		PublicSaleMinted: e.coll.PublicSaleMinted(wallet),
		Credit:           e.coll.CreditOf(wallet).Dec(),
	}, nil
}

func (e *executor) VerifySignature(ctx context.Context, wallet common.Address, phase int, sig []byte) (*dto.VerifySignatureResponse, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	return &dto.VerifySignatureResponse{
		Valid:       e.coll.VerifySignature(wallet, phase, sig),
		Blacklisted: e.coll.IsBlacklisted(sig),
	}, nil
}

func (e *executor) GetStakeOptions(ctx context.Context) ([]dto.StakeOptionResponse, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	return dto.MapStakeOptionsToDTO(e.coll.StakeOptions()), nil
}

func (e *executor) GetEvents(ctx context.Context, filter EventFilter) (*dto.EventListResponse, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = constants.DEFAULT_EVENTS_LIMIT
	}
	if limit > constants.MAX_EVENTS_PAGE_SIZE {
		limit = constants.MAX_EVENTS_PAGE_SIZE
	}

	query := store.EventQueryFilter{
		CollectionAddress: e.address,
		EventTypes:        filter.Types,
		AfterCursor:       filter.AfterCursor,
		Limit:             limit,
		Offset:            filter.Offset,
	}
	if filter.Actor != nil {
		actor := addressKey(*filter.Actor)
		query.Actor = &actor
	}
	if filter.TokenID != nil {
		id := int64(*filter.TokenID) //nolint:gosec,G115
		query.TokenID = &id
	}

	rows, total, err := e.store.GetEvents(ctx, query)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get events: %v", err))
	}

	events := make([]dto.EventResponse, len(rows))
	for i, row := range rows {
		events[i] = dto.MapEventToDTO(row)
	}

	resp := &dto.EventListResponse{Events: events, Total: total}
	if len(rows) == limit {
		next := rows[len(rows)-1].Cursor
		resp.NextCursor = &next
	}
	return resp, nil
}

func (e *executor) CalculateRewards(ctx context.Context, caller common.Address, ids []domain.TokenID) (*dto.RewardsResponse, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	rewards, err := e.coll.CalculateTokenStakeRewards(caller, ids)
	if err != nil {
		if apiErr := apierrors.FromRevert(err); apiErr != nil {
			return nil, apiErr
		}
		return nil, apierrors.NewInternalError(fmt.Sprintf("Failed to calculate rewards: %v", err))
	}

	total := uint256.NewInt(0)
	for _, r := range rewards {
		if _, overflow := total.AddOverflow(total, r.Reward); overflow {
			return nil, apierrors.FromRevert(domain.ErrArithmeticOverflow)
		}
	}

	return dto.MapRewardsToDTO(rewards, total.Dec()), nil
}

func (e *executor) PrivateMint(ctx context.Context, caller common.Address, amount uint64, value *uint256.Int, sig []byte) (*dto.OperationResponse, error) {
	return e.apply(ctx, "private_mint", caller, func() ([]domain.Event, error) {
		return e.coll.PrivateMint(caller, amount, value, sig)
	})
}

func (e *executor) PublicMint(ctx context.Context, caller common.Address, amount uint64, value *uint256.Int) (*dto.OperationResponse, error) {
	return e.apply(ctx, "public_mint", caller, func() ([]domain.Event, error) {
		return e.coll.Mint(caller, amount, value)
	})
}

func (e *executor) Stake(ctx context.Context, caller common.Address, ids []domain.TokenID, optionIndex int) (*dto.OperationResponse, error) {
	return e.apply(ctx, "stake", caller, func() ([]domain.Event, error) {
		return e.coll.Stake(caller, ids, optionIndex)
	})
}

func (e *executor) Unstake(ctx context.Context, caller common.Address, ids []domain.TokenID) (*dto.OperationResponse, error) {
	return e.apply(ctx, "unstake", caller, func() ([]domain.Event, error) {
		return e.coll.Unstake(caller, ids)
	})
}

func (e *executor) Transfer(ctx context.Context, caller, from, to common.Address, id domain.TokenID) (*dto.OperationResponse, error) {
	return e.apply(ctx, "transfer", caller, func() ([]domain.Event, error) {
		return e.coll.Transfer(caller, from, to, id)
	})
}

func (e *executor) Deposit(ctx context.Context, from common.Address, value *uint256.Int) (*dto.OperationResponse, error) {
	return e.apply(ctx, "deposit", from, func() ([]domain.Event, error) {
		return e.coll.Deposit(from, value)
	})
}

func (e *executor) Withdraw(ctx context.Context, caller common.Address, shares []domain.WithdrawShare, requester string) (*dto.OperationResponse, error) {
	return e.apply(ctx, "withdraw", caller, func() ([]domain.Event, error) {
		return e.coll.Withdraw(caller, shares, requester)
	})
}

func (e *executor) TogglePublicSale(ctx context.Context, caller common.Address) (*dto.OperationResponse, error) {
	return e.apply(ctx, "toggle_public_sale", caller, func() ([]domain.Event, error) {
		return e.coll.TogglePublicSale(caller)
	})
}

func (e *executor) SetPhase(ctx context.Context, caller common.Address, phase int) (*dto.OperationResponse, error) {
	return e.apply(ctx, "set_phase", caller, func() ([]domain.Event, error) {
		return e.coll.SetPhase(caller, phase)
	})
}

func (e *executor) SetPublicSaleCost(ctx context.Context, caller common.Address, cost *uint256.Int) (*dto.OperationResponse, error) {
	return e.apply(ctx, "set_public_sale_cost", caller, func() ([]domain.Event, error) {
		return e.coll.SetPublicSaleCost(caller, cost)
	})
}

func (e *executor) SetMintLimits(ctx context.Context, caller common.Address, phaseLimits []uint64, publicLimit uint64) (*dto.OperationResponse, error) {
	return e.apply(ctx, "set_mint_limits", caller, func() ([]domain.Event, error) {
		return e.coll.SetMintLimitByWallet(caller, phaseLimits, publicLimit)
	})
}

func (e *executor) BlacklistSignatures(ctx context.Context, caller common.Address, sigs [][]byte) (*dto.OperationResponse, error) {
	return e.apply(ctx, "blacklist_signatures", caller, func() ([]domain.Event, error) {
		return e.coll.BlacklistSignatures(caller, sigs)
	})
}

func (e *executor) UpdateStakeLimitPerToken(ctx context.Context, caller common.Address, limit uint64) (*dto.OperationResponse, error) {
	return e.apply(ctx, "update_stake_limit", caller, func() ([]domain.Event, error) {
		return e.coll.UpdateStakeLimitPerToken(caller, limit)
	})
}

func (e *executor) AddStakeOption(ctx context.Context, caller common.Address, interval time.Duration, reward *uint256.Int, extensionLimit uint64, enabled bool) (*dto.OperationResponse, error) {
	return e.apply(ctx, "add_stake_option", caller, func() ([]domain.Event, error) {
		return e.coll.AddStakeOption(caller, interval, reward, extensionLimit, enabled)
	})
}

func (e *executor) UpdateStakeOption(ctx context.Context, caller common.Address, index int, interval time.Duration, reward *uint256.Int, extensionLimit uint64, enabled bool) (*dto.OperationResponse, error) {
	return e.apply(ctx, "update_stake_option", caller, func() ([]domain.Event, error) {
		return e.coll.UpdateStakeOption(caller, index, interval, reward, extensionLimit, enabled)
	})
}

func (e *executor) ToggleAllStakeOptions(ctx context.Context, caller common.Address, enabled bool) (*dto.OperationResponse, error) {
	return e.apply(ctx, "toggle_stake_options", caller, func() ([]domain.Event, error) {
		return e.coll.ToggleAllStakeOptions(caller, enabled)
	})
}

func (e *executor) ApplyBlacklistSeed(ctx context.Context, seed registry.BlacklistRegistry) (int, error) {
	if seed == nil {
		return 0, nil
	}

	e.mu.RLock()
	var pending [][]byte
	for _, sig := range seed.Signatures(e.coll.Address()) {
		if !e.coll.IsBlacklisted(sig) {
			pending = append(pending, sig)
		}
	}
	owner := e.coll.Params().Owner
	e.mu.RUnlock()
	if len(pending) == 0 {
		return 0, nil
	}

	if _, err := e.BlacklistSignatures(ctx, owner, pending); err != nil {
		return 0, err
	}
	return len(pending), nil
}

// apply runs one mutating operation and commits its outcome. A failed commit
// restores the state the operation started from. Committed events are
// published by Run, outside of the request.
func (e *executor) apply(ctx context.Context, operation string, caller common.Address, op func() ([]domain.Event, error)) (*dto.OperationResponse, error) {
	start := time.Now()
	ctx = logger.WithFields(ctx,
		zap.String("operation", operation),
		zap.String("caller", addressKey(caller)))

	resp, err := e.commit(ctx, op)
	if err != nil {
		outcome := metrics.OutcomeFailed
		var apiErr *apierrors.APIError
		if errors.As(err, &apiErr) {
			switch apiErr.Code {
			case apierrors.ErrCodeRejected, apierrors.ErrCodeForbidden, apierrors.ErrCodeNotFound:
				outcome = metrics.OutcomeRejected
			}
		}
		e.metrics.ObserveOperation(operation, outcome, time.Since(start))
		return nil, err
	}
	e.metrics.ObserveOperation(operation, metrics.OutcomeCommitted, time.Since(start))

	select {
	case e.notify <- struct{}{}:
	default:
	}

	return resp, nil
}

func (e *executor) commit(ctx context.Context, op func() ([]domain.Event, error)) (*dto.OperationResponse, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	before := e.coll.Snapshot()

	events, err := op()
	if err != nil {
		if apiErr := apierrors.FromRevert(err); apiErr != nil {
			logger.InfoCtx(ctx, "Operation rejected", zap.String("reason", err.Error()))
			return nil, apiErr
		}
		logger.ErrorCtx(ctx, err)
		return nil, apierrors.NewInternalError("Operation failed")
	}

	input, err := e.buildCommit(events)
	if err != nil {
		e.coll.Restore(before)
		logger.ErrorCtx(ctx, err)
		return nil, apierrors.NewInternalError("Failed to encode operation")
	}

	if err := e.store.CommitOperation(ctx, input); err != nil {
		e.coll.Restore(before)
		logger.ErrorCtx(ctx, err, zap.Int64("expectedVersion", input.ExpectedVersion))
		if errors.Is(err, store.ErrVersionConflict) {
			e.reload(ctx)
			return nil, apierrors.NewConflictError("Collection was modified concurrently")
		}
		return nil, apierrors.NewDatabaseError("Failed to commit operation")
	}
	e.version = input.ExpectedVersion + 1
	e.recordSupply()

	logger.DebugCtx(ctx, "Operation committed",
		zap.Int64("version", e.version),
		zap.Int("events", len(events)))

	resp := &dto.OperationResponse{
		Version: e.version,
		Events:  make([]dto.EventResponse, len(events)),
	}
	for i, ev := range events {
		in := input.Events[i]
		resp.Events[i] = dto.EventResponse{
			ID:         ev.ID,
			Type:       string(ev.Type),
			Actor:      in.Actor,
			TokenID:    tokenIDPtr(ev.TokenID),
			Data:       []byte(in.Payload),
			OccurredAt: ev.Timestamp,
		}
	}
	return resp, nil
}

// reload replaces the in-memory state with the latest stored snapshot once
// another writer has advanced the version. The caller holds e.mu.
func (e *executor) reload(ctx context.Context) {
	snapshot, err := e.store.GetLatestSnapshot(ctx, e.address)
	if err != nil {
		logger.ErrorCtx(ctx, fmt.Errorf("failed to reload snapshot: %w", err))
		return
	}
	if snapshot == nil {
		logger.ErrorCtx(ctx, fmt.Errorf("no snapshot stored for %s", e.address))
		return
	}

	state, err := collection.DecodeState(e.json, snapshot.State, snapshot.Checksum)
	if err != nil {
		logger.ErrorCtx(ctx, fmt.Errorf("failed to decode snapshot: %w", err), zap.Int64("version", snapshot.Version))
		return
	}
	if state.Params.Address != e.coll.Address() {
		logger.ErrorCtx(ctx, fmt.Errorf("snapshot of %s belongs to %s", e.address, state.Params.Address.Hex()))
		return
	}

	e.coll.Restore(state)
	e.version = snapshot.Version
	e.recordSupply()

	logger.WarnCtx(ctx, "Reloaded collection snapshot after a version conflict",
		zap.Int64("version", e.version))
}

// buildCommit assigns event ids and encodes the state and events of an operation
func (e *executor) buildCommit(events []domain.Event) (store.CommitOperationInput, error) {
	data, checksum, err := collection.EncodeState(e.json, e.coll.Snapshot())
	if err != nil {
		return store.CommitOperationInput{}, err
	}

	inputs := make([]store.CreateEventInput, len(events))
	for i := range events {
		ts := events[i].Timestamp
		if ts.IsZero() {
			ts = e.clock.Now()
			events[i].Timestamp = ts
		}
		events[i].ID = ulid.MustNewDefault(ts).String()

		payload, err := e.json.Marshal(events[i].Data)
		if err != nil {
			return store.CommitOperationInput{}, fmt.Errorf("failed to marshal %s event: %w", events[i].Type, err)
		}

		var tokenID *int64
		if events[i].TokenID != nil {
			id := int64(*events[i].TokenID) //nolint:gosec,G115
			tokenID = &id
		}

		inputs[i] = store.CreateEventInput{
			ID:         events[i].ID,
			EventType:  string(events[i].Type),
			Actor:      addressKey(events[i].Actor),
			TokenID:    tokenID,
			Payload:    payload,
			OccurredAt: ts,
		}
	}

	return store.CommitOperationInput{
		CollectionAddress: e.address,
		ExpectedVersion:   e.version,
		State:             data,
		Checksum:          checksum,
		Events:            inputs,
	}, nil
}

func (e *executor) PublishPending(ctx context.Context) error {
	e.publishMu.Lock()
	defer e.publishMu.Unlock()

	cursor, err := e.store.GetPublishCursor(ctx, e.address)
	if err != nil {
		return err
	}

	for {
		after := cursor
		rows, _, err := e.store.GetEvents(ctx, store.EventQueryFilter{
			CollectionAddress: e.address,
			AfterCursor:       &after,
			Limit:             store.MaxEventLimit,
		})
		if err != nil {
			return err
		}

		for _, row := range rows {
			event := &domain.Event{
				ID:         row.ID,
				Collection: common.HexToAddress(row.CollectionAddress),
				Type:       domain.EventType(row.EventType),
				Actor:      common.HexToAddress(row.Actor),
				Timestamp:  row.OccurredAt,
				Data:       json.RawMessage(row.Payload),
			}
			if row.TokenID != nil {
				id := domain.TokenID(*row.TokenID) //nolint:gosec,G115
				event.TokenID = &id
			}

			if err := e.publisher.PublishEvent(ctx, event); err != nil {
				e.metrics.IncPublishFailure(row.EventType)
				return fmt.Errorf("failed to publish event %s: %w", row.ID, err)
			}

			cursor = row.Cursor
			if err := e.store.SetPublishCursor(ctx, e.address, cursor); err != nil {
				return err
			}
		}

		if len(rows) < store.MaxEventLimit {
			return nil
		}
	}
}

// Run starts a publish pass after every committed operation and on every
// publishInterval tick, until ctx is done
func (e *executor) Run(ctx context.Context) {
	ticker := time.NewTicker(publishInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-e.notify:
		case <-ticker.C:
		}

		publishCtx, cancel := context.WithTimeout(ctx, publishTimeout)
		if err := e.PublishPending(publishCtx); err != nil {
			logger.WarnCtx(ctx, "Failed to publish committed events", zap.Error(err))
		}
		cancel()
	}
}

func (e *executor) Health(ctx context.Context) (*dto.HealthResponse, error) {
	e.mu.RLock()
	version := e.version
	e.mu.RUnlock()

	resp := &dto.HealthResponse{Status: "ok", Database: "ok", Version: version}
	if err := e.store.Ping(ctx); err != nil {
		logger.ErrorCtx(ctx, err)
		resp.Status = "degraded"
		resp.Database = "unavailable"
	}
	return resp, nil
}

func (e *executor) recordSupply() {
	pooled, _ := new(big.Float).SetInt(e.coll.PooledBalance().ToBig()).Float64()
	e.metrics.SetSupply(e.coll.TotalMinted(), pooled)
}

func addressKey(a common.Address) string {
	return strings.ToLower(a.Hex())
}

func tokenIDPtr(id *domain.TokenID) *uint64 {
	if id == nil {
		return nil
	}
	v := uint64(*id)
	return &v
}

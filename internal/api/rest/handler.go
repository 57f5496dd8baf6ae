package rest

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gin-gonic/gin"

	"github.com/feral-file/ff-collection-launch/internal/api/middleware"
	"github.com/feral-file/ff-collection-launch/internal/api/shared/dto"
	"github.com/feral-file/ff-collection-launch/internal/api/shared/executor"
	"github.com/feral-file/ff-collection-launch/internal/domain"
)

// Handler defines the interface for REST API handlers
type Handler interface {
	// HealthCheck returns the health status of the API
	// GET /health
	HealthCheck(c *gin.Context)

	// GetCollection retrieves the public state of the collection
	// GET /api/v1/collection
	GetCollection(c *gin.Context)

	// GetToken retrieves a token with its owner, original minter and staking state
	// GET /api/v1/tokens/:id
	GetToken(c *gin.Context)

	// GetTokenURI retrieves the metadata URI of a token
	// GET /api/v1/tokens/:id/uri
	GetTokenURI(c *gin.Context)

	// GetWallet retrieves minted counts and credits of a wallet
	// GET /api/v1/wallets/:address
	GetWallet(c *gin.Context)

	// GetStakeOptions retrieves the stake options
	// GET /api/v1/stake-options
	GetStakeOptions(c *gin.Context)

	// GetEvents retrieves the event journal in cursor order
	// GET /api/v1/events?type=<type1>,<type2>&actor=<address>&token_id=<id>&after_cursor=<cursor>&limit=<limit>&offset=<offset>
	GetEvents(c *gin.Context)

	// VerifySignature checks a whitelist signature
	// POST /api/v1/signatures/verify
	VerifySignature(c *gin.Context)

	// POST /api/v1/mints/private
	PrivateMint(c *gin.Context)
	// POST /api/v1/mints/public
	PublicMint(c *gin.Context)
	// POST /api/v1/stakes
	Stake(c *gin.Context)
	// POST /api/v1/unstakes
	Unstake(c *gin.Context)
	// QueryRewards projects the rewards of staked tokens without claiming them
	// POST /api/v1/rewards/query
	QueryRewards(c *gin.Context)
	// POST /api/v1/transfers
	Transfer(c *gin.Context)
	// POST /api/v1/deposits
	Deposit(c *gin.Context)

	// POST /api/v1/admin/public-sale/toggle
	TogglePublicSale(c *gin.Context)
	// POST /api/v1/admin/phase
	SetPhase(c *gin.Context)
	// POST /api/v1/admin/public-sale/cost
	SetPublicSaleCost(c *gin.Context)
	// POST /api/v1/admin/mint-limits
	SetMintLimits(c *gin.Context)
	// POST /api/v1/admin/blacklist
	BlacklistSignatures(c *gin.Context)
	// POST /api/v1/admin/stake-limit
	SetStakeLimit(c *gin.Context)
	// POST /api/v1/admin/stake-options
	AddStakeOption(c *gin.Context)
	// POST /api/v1/admin/stake-options/:index
	UpdateStakeOption(c *gin.Context)
	// POST /api/v1/admin/stake-options/toggle
	ToggleStakeOptions(c *gin.Context)
	// POST /api/v1/admin/withdraw
	Withdraw(c *gin.Context)
}

// handler implements the Handler interface
type handler struct {
	executor executor.Executor
}

// NewHandler creates a new REST API handler using the shared executor
func NewHandler(exec executor.Executor) Handler {
	return &handler{
		executor: exec,
	}
}

type validator interface {
	Validate() error
}

// bindRequest binds the JSON body and validates it when the request type supports it.
// It responds and returns false on failure.
func bindRequest(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return false
	}
	if v, ok := req.(validator); ok {
		if err := v.Validate(); err != nil {
			respondError(c, err, "Invalid request body")
			return false
		}
	}
	return true
}

// requireCaller returns the authenticated caller or responds with 401
func requireCaller(c *gin.Context) (common.Address, bool) {
	caller, ok := middleware.CallerFromContext(c)
	if !ok {
		respondUnauthorized(c, "Caller is not authenticated")
	}
	return caller, ok
}

func respondOperation(c *gin.Context, resp *dto.OperationResponse, err error, message string) {
	if err != nil {
		respondError(c, err, message)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// HealthCheck returns the health status of the API
func (h *handler) HealthCheck(c *gin.Context) {
	resp, err := h.executor.Health(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to check health")
		return
	}

	status := http.StatusOK
	if resp.Status != "ok" {
		status = http.StatusServiceUnavailable
	}
	c.JSON(status, resp)
}

func (h *handler) GetCollection(c *gin.Context) {
	resp, err := h.executor.GetCollection(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to get collection")
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *handler) GetToken(c *gin.Context) {
	id, err := parseTokenIDParam(c)
	if err != nil {
		respondBadRequest(c, "Invalid token id", err.Error())
		return
	}

	token, err := h.executor.GetToken(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Failed to get token")
		return
	}

	if token == nil {
		respondNotFound(c, "Token not found")
		return
	}

	c.JSON(http.StatusOK, token)
}

func (h *handler) GetTokenURI(c *gin.Context) {
	id, err := parseTokenIDParam(c)
	if err != nil {
		respondBadRequest(c, "Invalid token id", err.Error())
		return
	}

	resp, err := h.executor.GetTokenURI(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Failed to get token URI")
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *handler) GetWallet(c *gin.Context) {
	wallet, err := parseAddressParam(c)
	if err != nil {
		respondBadRequest(c, "Invalid wallet address", err.Error())
		return
	}

	resp, err := h.executor.GetWallet(c.Request.Context(), wallet)
	if err != nil {
		respondError(c, err, "Failed to get wallet")
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *handler) GetStakeOptions(c *gin.Context) {
	options, err := h.executor.GetStakeOptions(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to get stake options")
		return
	}
	c.JSON(http.StatusOK, options)
}

func (h *handler) GetEvents(c *gin.Context) {
	queryParams, err := ParseGetEventsQuery(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	filter, err := queryParams.Filter()
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	resp, err := h.executor.GetEvents(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err, "Failed to get events")
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *handler) VerifySignature(c *gin.Context) {
	var req dto.VerifySignatureRequest
	if !bindRequest(c, &req) {
		return
	}

	wallet, _ := domain.ParseAddress(req.Wallet)
	sig, _ := dto.DecodeHex(req.Signature)

	resp, err := h.executor.VerifySignature(c.Request.Context(), wallet, req.Phase, sig)
	if err != nil {
		respondError(c, err, "Failed to verify signature")
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *handler) PrivateMint(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}

	var req dto.PrivateMintRequest
	if !bindRequest(c, &req) {
		return
	}

	value, _ := domain.ParseAmount(req.Value)
	sig, _ := dto.DecodeHex(req.Signature)

	resp, err := h.executor.PrivateMint(c.Request.Context(), caller, req.Amount, value, sig)
	respondOperation(c, resp, err, "Failed to mint")
}

func (h *handler) PublicMint(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}

	var req dto.PublicMintRequest
	if !bindRequest(c, &req) {
		return
	}

	value, _ := domain.ParseAmount(req.Value)

	resp, err := h.executor.PublicMint(c.Request.Context(), caller, req.Amount, value)
	respondOperation(c, resp, err, "Failed to mint")
}

func (h *handler) Stake(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}

	var req dto.StakeRequest
	if !bindRequest(c, &req) {
		return
	}

	resp, err := h.executor.Stake(c.Request.Context(), caller, req.IDs(), req.OptionIndex)
	respondOperation(c, resp, err, "Failed to stake")
}

func (h *handler) Unstake(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}

	var req dto.TokenIDsRequest
	if !bindRequest(c, &req) {
		return
	}

	resp, err := h.executor.Unstake(c.Request.Context(), caller, req.IDs())
	respondOperation(c, resp, err, "Failed to unstake")
}

func (h *handler) QueryRewards(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}

	var req dto.TokenIDsRequest
	if !bindRequest(c, &req) {
		return
	}

	resp, err := h.executor.CalculateRewards(c.Request.Context(), caller, req.IDs())
	if err != nil {
		respondError(c, err, "Failed to calculate rewards")
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *handler) Transfer(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}

	var req dto.TransferRequest
	if !bindRequest(c, &req) {
		return
	}

	from, _ := domain.ParseAddress(req.From)
	to, _ := domain.ParseAddress(req.To)

	resp, err := h.executor.Transfer(c.Request.Context(), caller, from, to, domain.TokenID(req.TokenID))
	respondOperation(c, resp, err, "Failed to transfer")
}

func (h *handler) Deposit(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}

	var req dto.DepositRequest
	if !bindRequest(c, &req) {
		return
	}

	value, _ := domain.ParseAmount(req.Value)

	resp, err := h.executor.Deposit(c.Request.Context(), caller, value)
	respondOperation(c, resp, err, "Failed to deposit")
}

func (h *handler) TogglePublicSale(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}

	resp, err := h.executor.TogglePublicSale(c.Request.Context(), caller)
	respondOperation(c, resp, err, "Failed to toggle public sale")
}

func (h *handler) SetPhase(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}

	var req dto.SetPhaseRequest
	if !bindRequest(c, &req) {
		return
	}

	resp, err := h.executor.SetPhase(c.Request.Context(), caller, req.Phase)
	respondOperation(c, resp, err, "Failed to set phase")
}

func (h *handler) SetPublicSaleCost(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}

	var req dto.SetPublicSaleCostRequest
	if !bindRequest(c, &req) {
		return
	}

	cost, _ := domain.ParseAmount(req.Cost)

	resp, err := h.executor.SetPublicSaleCost(c.Request.Context(), caller, cost)
	respondOperation(c, resp, err, "Failed to set public sale cost")
}

func (h *handler) SetMintLimits(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}

	var req dto.SetMintLimitsRequest
	if !bindRequest(c, &req) {
		return
	}

	resp, err := h.executor.SetMintLimits(c.Request.Context(), caller, req.PhaseLimits, req.PublicSaleLimit)
	respondOperation(c, resp, err, "Failed to set mint limits")
}

func (h *handler) BlacklistSignatures(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}

	var req dto.BlacklistSignaturesRequest
	if !bindRequest(c, &req) {
		return
	}

	resp, err := h.executor.BlacklistSignatures(c.Request.Context(), caller, req.DecodedSignatures())
	respondOperation(c, resp, err, "Failed to blacklist signatures")
}

func (h *handler) SetStakeLimit(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}

	var req dto.SetStakeLimitRequest
	if !bindRequest(c, &req) {
		return
	}

	resp, err := h.executor.UpdateStakeLimitPerToken(c.Request.Context(), caller, req.Limit)
	respondOperation(c, resp, err, "Failed to set stake limit")
}

func (h *handler) AddStakeOption(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}

	var req dto.StakeOptionRequest
	if !bindRequest(c, &req) {
		return
	}
	interval, reward, err := req.Parse()
	if err != nil {
		respondError(c, err, "Invalid stake option")
		return
	}

	resp, err := h.executor.AddStakeOption(c.Request.Context(), caller, interval, reward, req.ExtensionLimit, req.Enabled)
	respondOperation(c, resp, err, "Failed to add stake option")
}

func (h *handler) UpdateStakeOption(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}

	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		respondBadRequest(c, "Invalid stake option index", err.Error())
		return
	}

	var req dto.StakeOptionRequest
	if !bindRequest(c, &req) {
		return
	}
	interval, reward, err := req.Parse()
	if err != nil {
		respondError(c, err, "Invalid stake option")
		return
	}

	resp, err := h.executor.UpdateStakeOption(c.Request.Context(), caller, index, interval, reward, req.ExtensionLimit, req.Enabled)
	respondOperation(c, resp, err, "Failed to update stake option")
}

func (h *handler) ToggleStakeOptions(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}

	var req dto.ToggleStakeOptionsRequest
	if !bindRequest(c, &req) {
		return
	}

	resp, err := h.executor.ToggleAllStakeOptions(c.Request.Context(), caller, req.Enabled)
	respondOperation(c, resp, err, "Failed to toggle stake options")
}

func (h *handler) Withdraw(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}

	var req dto.WithdrawRequest
	if !bindRequest(c, &req) {
		return
	}

	resp, err := h.executor.Withdraw(c.Request.Context(), caller, req.DomainShares(), req.Requester)
	respondOperation(c, resp, err, "Failed to withdraw")
}

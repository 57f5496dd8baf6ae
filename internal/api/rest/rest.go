package rest

import (
	"github.com/gin-gonic/gin"

	"github.com/feral-file/ff-collection-launch/internal/api/middleware"
	"github.com/feral-file/ff-collection-launch/internal/ratelimit"
)

// SetupRoutes configures all REST API routes. A nil limiter disables rate limiting.
func SetupRoutes(router *gin.Engine, handler Handler, authCfg middleware.AuthConfig, limiter ratelimit.Limiter) {
	public := []gin.HandlerFunc{}
	authenticated := []gin.HandlerFunc{middleware.Auth(authCfg)}
	if limiter != nil {
		public = append(public, middleware.RateLimit(limiter))
		authenticated = append(authenticated, middleware.RateLimit(limiter))
	}

	// Health check endpoint (no auth, no version prefix)
	router.GET("/health", handler.HealthCheck)

	v1 := router.Group("/api/v1")
	{
		// Public read access
		pub := v1.Group("", public...)
		pub.GET("/collection", handler.GetCollection)
		pub.GET("/tokens/:id", handler.GetToken)
		pub.GET("/tokens/:id/uri", handler.GetTokenURI)
		pub.GET("/wallets/:address", handler.GetWallet)
		pub.GET("/stake-options", handler.GetStakeOptions)
		pub.GET("/events", handler.GetEvents)
		pub.POST("/signatures/verify", handler.VerifySignature)

		// Operations of the authenticated caller
		authed := v1.Group("", authenticated...)
		authed.POST("/mints/private", handler.PrivateMint)
		authed.POST("/mints/public", handler.PublicMint)
		authed.POST("/stakes", handler.Stake)
		authed.POST("/unstakes", handler.Unstake)
		authed.POST("/rewards/query", handler.QueryRewards)
		authed.POST("/transfers", handler.Transfer)
		authed.POST("/deposits", handler.Deposit)

		// Owner administration, the collection rejects any other caller
		admin := v1.Group("/admin", authenticated...)
		admin.POST("/public-sale/toggle", handler.TogglePublicSale)
		admin.POST("/phase", handler.SetPhase)
		admin.POST("/public-sale/cost", handler.SetPublicSaleCost)
		admin.POST("/mint-limits", handler.SetMintLimits)
		admin.POST("/blacklist", handler.BlacklistSignatures)
		admin.POST("/stake-limit", handler.SetStakeLimit)
		admin.POST("/stake-options", handler.AddStakeOption)
		admin.POST("/stake-options/toggle", handler.ToggleStakeOptions)
		admin.POST("/stake-options/:index", handler.UpdateStakeOption)
		admin.POST("/withdraw", handler.Withdraw)
	}
}

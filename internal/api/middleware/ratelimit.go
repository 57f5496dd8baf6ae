package middleware

import (
	"math"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apierrors "github.com/feral-file/ff-collection-launch/internal/api/shared/errors"
	"github.com/feral-file/ff-collection-launch/internal/logger"
	"github.com/feral-file/ff-collection-launch/internal/ratelimit"
)

// RateLimit returns a gin middleware limiting requests per caller wallet when Auth ran
// before it, per client ip otherwise
func RateLimit(limiter ratelimit.Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := "ip:" + c.ClientIP()
		if caller, ok := CallerFromContext(c); ok {
			key = "caller:" + caller.Hex()
		}

		decision := limiter.Allow(c.Request.Context(), key)
		if !decision.Allowed {
			logger.DebugCtx(c.Request.Context(), "Request rate limited",
				zap.String("key", key),
				zap.Duration("retry_after", decision.RetryAfter),
			)
			seconds := int(math.Ceil(decision.RetryAfter.Seconds()))
			c.Header("Retry-After", strconv.Itoa(max(seconds, 1)))
			apiErr := apierrors.NewRateLimitedError("Too many requests")
			c.AbortWithStatusJSON(apiErr.StatusCode(), apiErr)
			return
		}

		c.Next()
	}
}

package ratelimit

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-redis/redis_rate/v10"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/feral-file/ff-collection-launch/internal/adapter"
	"github.com/feral-file/ff-collection-launch/internal/config"
	"github.com/feral-file/ff-collection-launch/internal/logger"
)

const (
	// redisRetryAfter is how long Redis is bypassed after a failure
	redisRetryAfter = 10 * time.Second
	// maxLocalKeys bounds the number of local buckets kept in memory
	maxLocalKeys = 10000
)

// Decision is the outcome of a rate limit check
type Decision struct {
	Allowed    bool
	Remaining  int
	RetryAfter time.Duration
}

// Limiter limits requests per key (a caller wallet or a client ip)
//
//go:generate mockgen -source=limiter.go -destination=../mocks/ratelimit.go -package=mocks -mock_names=Limiter=MockRateLimiter
type Limiter interface {
	// Allow consumes one request of key
	Allow(ctx context.Context, key string) Decision
	// Close releases the Redis connection, if any
	Close() error
}

type limiter struct {
	config config.RateLimitConfig
	clock  adapter.Clock

	redis       adapter.RedisClient
	distributed adapter.RedisRateLimiter

	mu           sync.Mutex
	local        map[string]*rate.Limiter
	redisRetryAt time.Time
}

// NewLimiter creates a rate limiter. A nil Redis client limits each instance locally,
// otherwise the limit is shared through Redis and local limiting takes over while Redis fails.
func NewLimiter(cfg config.RateLimitConfig, rc adapter.RedisClient, clock adapter.Clock) (Limiter, error) {
	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	l := &limiter{
		config: cfg,
		clock:  clock,
		redis:  rc,
		local:  make(map[string]*rate.Limiter),
	}

	if rc != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := rc.Ping(ctx); err != nil {
			logger.Warn("Redis unavailable, will use local rate limiting", zap.Error(err))
			l.redisRetryAt = clock.Now().Add(redisRetryAfter)
		}
		l.distributed = rc.NewRateLimiter()
	}

	logger.Info("Rate limiter initialized",
		zap.Int("requests_per_second", cfg.RequestsPerSecond),
		zap.Int("burst", cfg.Burst),
		zap.Bool("distributed", rc != nil),
	)

	return l, nil
}

func (l *limiter) Allow(ctx context.Context, key string) Decision {
	if l.useRedis() {
		decision, err := l.allowDistributed(ctx, key)
		if err == nil {
			return decision
		}

		logger.WarnCtx(ctx, "Redis rate limiter error, falling back to local", zap.Error(err))
		l.mu.Lock()
		l.redisRetryAt = l.clock.Now().Add(redisRetryAfter)
		l.mu.Unlock()
	}

	return l.allowLocal(key)
}

func (l *limiter) useRedis() bool {
	if l.distributed == nil {
		return false
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	return !l.clock.Now().Before(l.redisRetryAt)
}

func (l *limiter) allowDistributed(ctx context.Context, key string) (Decision, error) {
	res, err := l.distributed.Allow(ctx, l.config.RedisKeyPrefix+key, redis_rate.Limit{
		Rate:   l.config.RequestsPerSecond,
		Burst:  l.config.Burst,
		Period: time.Second,
	})
	if err != nil {
		return Decision{}, err
	}

	return Decision{
		Allowed:    res.Allowed > 0,
		Remaining:  res.Remaining,
		RetryAfter: max(res.RetryAfter, 0),
	}, nil
}

func (l *limiter) allowLocal(key string) Decision {
	now := l.clock.Now()

	l.mu.Lock()
	lim, ok := l.local[key]
	if !ok {
		if len(l.local) >= maxLocalKeys {
			l.local = make(map[string]*rate.Limiter)
		}
		lim = rate.NewLimiter(rate.Limit(l.config.RequestsPerSecond), l.config.Burst)
		l.local[key] = lim
	}
	l.mu.Unlock()

	r := lim.ReserveN(now, 1)
	if delay := r.DelayFrom(now); delay > 0 {
		r.CancelAt(now)
		return Decision{Allowed: false, RetryAfter: delay}
	}
	return Decision{Allowed: true, Remaining: int(lim.TokensAt(now))}
}

func (l *limiter) Close() error {
	if l.redis == nil {
		return nil
	}
	if err := l.redis.Close(); err != nil {
		return fmt.Errorf("failed to close redis: %w", err)
	}
	return nil
}

// validateConfig validates and sets defaults for the configuration
func validateConfig(cfg *config.RateLimitConfig) error {
	if cfg.RequestsPerSecond <= 0 {
		return fmt.Errorf("requests_per_second must be positive")
	}
	if cfg.Burst <= 0 {
		cfg.Burst = cfg.RequestsPerSecond
	}
	if cfg.RedisKeyPrefix == "" {
		cfg.RedisKeyPrefix = "ff:collection:limiter:"
	}
	return nil
}

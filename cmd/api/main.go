package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/feral-file/ff-collection-launch/internal/adapter"
	"github.com/feral-file/ff-collection-launch/internal/api/middleware"
	"github.com/feral-file/ff-collection-launch/internal/api/server"
	"github.com/feral-file/ff-collection-launch/internal/api/shared/executor"
	"github.com/feral-file/ff-collection-launch/internal/config"
	"github.com/feral-file/ff-collection-launch/internal/logger"
	"github.com/feral-file/ff-collection-launch/internal/messaging"
	"github.com/feral-file/ff-collection-launch/internal/metrics"
	"github.com/feral-file/ff-collection-launch/internal/providers/jetstream"
	"github.com/feral-file/ff-collection-launch/internal/ratelimit"
	"github.com/feral-file/ff-collection-launch/internal/registry"
	"github.com/feral-file/ff-collection-launch/internal/store"
	"github.com/feral-file/ff-collection-launch/internal/webhook"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadAPIConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize logger with sentry integration
	err = logger.Initialize(logger.Config{
		Debug:           cfg.Debug,
		SentryDSN:       cfg.SentryDSN,
		BreadcrumbLevel: zapcore.InfoLevel,
		Service:         "collection-api",
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting Feral File Collection API")

	params, err := cfg.Collection.Params()
	if err != nil {
		logger.FatalCtx(ctx, "Invalid collection configuration", zap.Error(err))
	}

	// Connect to database
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{})
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to database", zap.Error(err), zap.String("host", cfg.Database.Host))
	}

	if err := store.ConfigureConnectionPool(db, cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns, cfg.Database.ConnMaxLifetime, cfg.Database.ConnMaxIdleTime); err != nil {
		logger.FatalCtx(ctx, "Failed to configure connection pool", zap.Error(err))
	}
	logger.InfoCtx(ctx, "Connected to database",
		zap.Int("max_open_conns", cfg.Database.MaxOpenConns),
		zap.Int("max_idle_conns", cfg.Database.MaxIdleConns),
	)

	dataStore := store.NewPGStore(db)

	// Initialize adapters
	fs := adapter.NewFileSystem()
	jsonAdapter := adapter.NewJSON()
	clock := adapter.NewMonotonicClock(adapter.NewClock())

	// Initialize publishers, events stay in the journal when none is configured
	var publishers []messaging.Publisher
	if cfg.NATS.URL != "" {
		natsPublisher, err := jetstream.NewPublisher(
			jetstream.Config{
				URL:                  cfg.NATS.URL,
				StreamName:           cfg.NATS.StreamName,
				MaxReconnects:        cfg.NATS.MaxReconnects,
				ReconnectWait:        cfg.NATS.ReconnectWait,
				ConnectionName:       cfg.NATS.ConnectionName,
				PublishRetries:       cfg.NATS.PublishRetries,
				PublishRetryInterval: cfg.NATS.PublishRetryInterval,
			},
			adapter.NewNatsJetStream(),
			jsonAdapter,
		)
		if err != nil {
			logger.FatalCtx(ctx, "Failed to create NATS publisher", zap.Error(err), zap.String("url", cfg.NATS.URL))
		}
		publishers = append(publishers, natsPublisher)
		logger.InfoCtx(ctx, "Connected to NATS JetStream", zap.String("stream", cfg.NATS.StreamName))
	} else {
		logger.WarnCtx(ctx, "NATS URL not configured, events will not be published to NATS")
	}

	if len(cfg.Webhook.Clients) > 0 {
		notifier, err := webhook.NewNotifier(cfg.Webhook, adapter.NewHTTPClient(cfg.Webhook.Timeout), jsonAdapter, clock)
		if err != nil {
			logger.FatalCtx(ctx, "Failed to create webhook notifier", zap.Error(err))
		}
		publishers = append(publishers, notifier)
		logger.InfoCtx(ctx, "Webhook delivery enabled", zap.Int("clients", len(cfg.Webhook.Clients)))
	}

	var publisher messaging.Publisher = messaging.NewNopPublisher()
	if len(publishers) > 0 {
		publisher = messaging.NewMultiPublisher(publishers...)
	}
	defer publisher.Close()

	recorder := metrics.NewPrometheus()

	// Load or create the collection
	coll, version, err := executor.Open(ctx, dataStore, jsonAdapter, clock, params)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to open collection", zap.Error(err))
	}
	logger.InfoCtx(ctx, "Opened collection",
		zap.String("address", params.Address.Hex()),
		zap.Int64("version", version),
	)

	exec := executor.NewExecutor(coll, version, dataStore, publisher, jsonAdapter, clock, recorder)

	// Apply the blacklist seed
	if cfg.BlacklistPath != "" {
		blacklistLoader := registry.NewBlacklistRegistryLoader(fs, jsonAdapter)
		blacklistRegistry, err := blacklistLoader.Load(cfg.BlacklistPath)
		if err != nil {
			logger.FatalCtx(ctx, "Failed to load blacklist registry",
				zap.Error(err),
				zap.String("path", cfg.BlacklistPath))
		}
		added, err := exec.ApplyBlacklistSeed(ctx, blacklistRegistry)
		if err != nil {
			logger.FatalCtx(ctx, "Failed to apply blacklist registry", zap.Error(err))
		}
		logger.InfoCtx(ctx, "Applied blacklist registry",
			zap.String("path", cfg.BlacklistPath),
			zap.Int("added", added),
		)
	}

	// Catch up on events committed but not published before the last shutdown
	if err := exec.PublishPending(ctx); err != nil {
		logger.WarnCtx(ctx, "Failed to publish pending events", zap.Error(err))
	}
	go exec.Run(ctx)

	serverConfig := server.Config{
		Debug:        cfg.Debug,
		Host:         cfg.Server.Host,
		Port:         cfg.Server.Port,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
		CORSOrigins:  cfg.Server.CORSOrigins,
		Auth: middleware.AuthConfig{
			JWTPublicKey: cfg.Auth.JWTPublicKey,
		},
	}

	var limiter ratelimit.Limiter
	if cfg.RateLimit.Enabled {
		var redisClient adapter.RedisClient
		if cfg.RateLimit.RedisAddr != "" {
			redisClient = adapter.NewRedisClient(cfg.RateLimit.RedisAddr, cfg.RateLimit.RedisPassword, cfg.RateLimit.RedisDB)
		}
		limiter, err = ratelimit.NewLimiter(cfg.RateLimit, redisClient, clock)
		if err != nil {
			logger.FatalCtx(ctx, "Failed to create rate limiter", zap.Error(err))
		}
		defer func() {
			if err := limiter.Close(); err != nil {
				logger.WarnCtx(context.Background(), "Failed to close rate limiter", zap.Error(err))
			}
		}()
	}

	srv := server.New(serverConfig, exec, recorder.Handler(), limiter)

	// Start server in a goroutine
	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil {
			errCh <- err
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-sigCh:
		logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))
		cancel()
	case err := <-errCh:
		logger.ErrorCtx(ctx, err, zap.String("component", "server"))
		cancel()
	}

	// Create shutdown context with timeout (don't use canceled ctx)
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	logger.InfoCtx(shutdownCtx, "Shutting down server...")

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.FatalCtx(shutdownCtx, "Server forced to shutdown", zap.Error(err))
	}

	logger.Info("API server stopped")
}

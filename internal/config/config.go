package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/feral-file/ff-collection-launch/internal/collection"
	"github.com/feral-file/ff-collection-launch/internal/domain"
)

// BaseConfig holds base configuration
type BaseConfig struct {
	Debug     bool   `mapstructure:"debug"`
	SentryDSN string `mapstructure:"sentry_dsn"`
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`     // Maximum number of open connections to the database
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`     // Maximum number of idle connections in the pool
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`  // Maximum amount of time a connection may be reused (e.g., "5m", "1h")
	ConnMaxIdleTime time.Duration `mapstructure:"conn_max_idle_time"` // Maximum amount of time a connection may be idle (e.g., "10m", "30m")
}

// NATSConfig holds NATS JetStream configuration
type NATSConfig struct {
	// URL is optional; events are not published when it is empty
	URL                  string        `mapstructure:"url"`
	StreamName           string        `mapstructure:"stream_name"`
	MaxReconnects        int           `mapstructure:"max_reconnects"`
	ReconnectWait        time.Duration `mapstructure:"reconnect_wait"`
	ConnectionName       string        `mapstructure:"connection_name"`
	PublishRetries       uint64        `mapstructure:"publish_retries"`
	PublishRetryInterval time.Duration `mapstructure:"publish_retry_interval"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host         string   `mapstructure:"host"`
	Port         int      `mapstructure:"port"`
	ReadTimeout  int      `mapstructure:"read_timeout"`  // in seconds
	WriteTimeout int      `mapstructure:"write_timeout"` // in seconds
	IdleTimeout  int      `mapstructure:"idle_timeout"`  // in seconds
	CORSOrigins  []string `mapstructure:"cors_origins"`  // empty allows every origin
}

// AuthConfig holds authentication configuration
type AuthConfig struct {
	// JWTPublicKey is the PEM encoded RSA public key verifying caller tokens
	JWTPublicKey string `mapstructure:"jwt_public_key"`
}

// RateLimitConfig holds configuration of the API rate limiter
type RateLimitConfig struct {
	Enabled           bool `mapstructure:"enabled"`
	RequestsPerSecond int  `mapstructure:"requests_per_second"`
	Burst             int  `mapstructure:"burst"`
	// RedisAddr enables a limit shared by every API instance; local limiting is used without it
	// or while Redis is unreachable
	RedisAddr      string `mapstructure:"redis_addr"`
	RedisPassword  string `mapstructure:"redis_password"`
	RedisDB        int    `mapstructure:"redis_db"`
	RedisKeyPrefix string `mapstructure:"redis_key_prefix"`
}

// WebhookClientConfig holds a webhook endpoint receiving collection events
type WebhookClientConfig struct {
	ID     string `mapstructure:"id"`
	URL    string `mapstructure:"url"`
	Secret string `mapstructure:"secret"`
	// EventTypes filters the delivered events, "*" matches every type
	EventTypes []string `mapstructure:"event_types"`
}

// WebhookConfig holds webhook delivery configuration
type WebhookConfig struct {
	Clients       []WebhookClientConfig `mapstructure:"clients"`
	Timeout       time.Duration         `mapstructure:"timeout"`
	MaxRetries    uint64                `mapstructure:"max_retries"`
	RetryInterval time.Duration         `mapstructure:"retry_interval"`
}

// StakeOptionConfig holds the initial configuration of a stake option
type StakeOptionConfig struct {
	Interval          time.Duration `mapstructure:"interval"`
	RewardPerInterval string        `mapstructure:"reward_per_interval"` // decimal amount
	ExtensionLimit    uint64        `mapstructure:"extension_limit"`
	Enabled           bool          `mapstructure:"enabled"`
}

// CollectionConfig holds the parameters a collection is created with.
// Amounts are decimal strings since they may exceed 64 bits.
type CollectionConfig struct {
	Name                  string              `mapstructure:"name"`
	Symbol                string              `mapstructure:"symbol"`
	Address               string              `mapstructure:"address"`
	Owner                 string              `mapstructure:"owner"`
	AuthorizedSigner      string              `mapstructure:"authorized_signer"`
	TotalSupplyLimit      uint64              `mapstructure:"total_supply_limit"`
	CurrentPhase          int                 `mapstructure:"current_phase"`
	PhaseCost             []string            `mapstructure:"phase_cost"`
	PhaseWalletLimit      []uint64            `mapstructure:"phase_wallet_limit"`
	PublicSaleCost        string              `mapstructure:"public_sale_cost"`
	PublicSaleWalletLimit uint64              `mapstructure:"public_sale_wallet_limit"`
	PublicSaleEnabled     bool                `mapstructure:"public_sale_enabled"`
	StakeLimitPerToken    uint64              `mapstructure:"stake_limit_per_token"`
	StakeOptions          []StakeOptionConfig `mapstructure:"stake_options"`
	BaseURI               string              `mapstructure:"base_uri"`
	Network               string              `mapstructure:"network"`
}

// APIConfig holds configuration for API server
type APIConfig struct {
	BaseConfig    `mapstructure:",squash"`
	Server        ServerConfig     `mapstructure:"server"`
	Database      DatabaseConfig   `mapstructure:"database"`
	NATS          NATSConfig       `mapstructure:"nats"`
	Auth          AuthConfig       `mapstructure:"auth"`
	RateLimit     RateLimitConfig  `mapstructure:"rate_limit"`
	Webhook       WebhookConfig    `mapstructure:"webhook"`
	Collection    CollectionConfig `mapstructure:"collection"`
	BlacklistPath string           `mapstructure:"blacklist_path"`
}

// SignerConfig holds configuration for the whitelist-signer CLI
type SignerConfig struct {
	BaseConfig `mapstructure:",squash"`
	// CollectionAddress is the collection the signatures are bound to
	CollectionAddress string `mapstructure:"collection_address"`
	// PrivateKey is the hex encoded key of the authorized signer
	PrivateKey string `mapstructure:"private_key"`
	Workers    int    `mapstructure:"workers"`
}

// LoadAPIConfig loads configuration for API server
func LoadAPIConfig(configFile string, envPath string) (*APIConfig, error) {
	v := configureViper("api", configFile, envPath)

	// Set defaults
	v.SetDefault("debug", false)
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", 10)
	v.SetDefault("server.write_timeout", 10)
	v.SetDefault("server.idle_timeout", 120)
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("nats.max_reconnects", 10)
	v.SetDefault("nats.reconnect_wait", "2s")
	v.SetDefault("nats.stream_name", "COLLECTION_EVENTS")
	v.SetDefault("nats.connection_name", "ff-collection-api")
	v.SetDefault("nats.publish_retries", 5)
	v.SetDefault("nats.publish_retry_interval", "200ms")
	v.SetDefault("rate_limit.enabled", false)
	v.SetDefault("rate_limit.requests_per_second", 10)
	v.SetDefault("rate_limit.burst", 20)
	v.SetDefault("rate_limit.redis_key_prefix", "ff:collection:limiter:")
	v.SetDefault("webhook.timeout", "10s")
	v.SetDefault("webhook.max_retries", 4)
	v.SetDefault("webhook.retry_interval", "5s")
	v.SetDefault("collection.base_uri", "https://feralfile.com/api")
	v.SetDefault("collection.network", string(domain.NetworkEthereum))

	if err := v.ReadInConfig(); err != nil {
		var error viper.ConfigFileNotFoundError
		if errors.As(err, &error) {
			// Config file not found, use environment variables
		} else {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var config APIConfig
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &config, nil
}

// LoadSignerConfig loads configuration for the whitelist-signer CLI
func LoadSignerConfig(configFile string, envPath string) (*SignerConfig, error) {
	v := configureViper("whitelist-signer", configFile, envPath)

	v.SetDefault("workers", 8)

	if err := v.ReadInConfig(); err != nil {
		var error viper.ConfigFileNotFoundError
		if errors.As(err, &error) {
			// Config file not found, use environment variables
		} else {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg SignerConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// configureViper returns a viper instance with the config file and environment variables set
func configureViper(service string, configFile string, envPath string) *viper.Viper {
	v := viper.New()

	// Load environment variables
	loadEnv(envPath, service)

	// Set config file
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		// Search for config.yaml in multiple locations:
		// 1. Current directory
		v.AddConfigPath(".")
		// 2. Service-specific directory (e.g., cmd/api/)
		v.AddConfigPath(fmt.Sprintf("cmd/%s/", service))
		// 3. Config directory
		v.AddConfigPath("config/")
	}

	// Set environment variables
	v.SetEnvPrefix("FF_COLLECTION")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Explicitly bind all environment variables
	bindAllEnvVars(v)
	return v
}

// bindAllEnvVars explicitly binds all possible environment variables
// This is required for viper to map env vars to config struct fields when no config file exists
func bindAllEnvVars(v *viper.Viper) {
	keys := []string{
		"debug",
		"sentry_dsn",
		// Database
		"database.host",
		"database.port",
		"database.user",
		"database.password",
		"database.dbname",
		"database.sslmode",
		"database.max_open_conns",
		"database.max_idle_conns",
		"database.conn_max_lifetime",
		"database.conn_max_idle_time",
		// NATS
		"nats.url",
		"nats.stream_name",
		"nats.max_reconnects",
		"nats.reconnect_wait",
		"nats.connection_name",
		"nats.publish_retries",
		"nats.publish_retry_interval",
		// Server
		"server.host",
		"server.port",
		"server.read_timeout",
		"server.write_timeout",
		"server.idle_timeout",
		"server.cors_origins",
		// Auth
		"auth.jwt_public_key",
		// Rate limit
		"rate_limit.enabled",
		"rate_limit.requests_per_second",
		"rate_limit.burst",
		"rate_limit.redis_addr",
		"rate_limit.redis_password",
		"rate_limit.redis_db",
		"rate_limit.redis_key_prefix",
		// Webhook
		"webhook.timeout",
		"webhook.max_retries",
		"webhook.retry_interval",
		// Collection
		"collection.name",
		"collection.symbol",
		"collection.address",
		"collection.owner",
		"collection.authorized_signer",
		"collection.total_supply_limit",
		"collection.current_phase",
		"collection.public_sale_cost",
		"collection.public_sale_wallet_limit",
		"collection.public_sale_enabled",
		"collection.stake_limit_per_token",
		"collection.base_uri",
		"collection.network",
		"blacklist_path",
		// Signer
		"collection_address",
		"private_key",
		"workers",
	}

	for _, key := range keys {
		_ = v.BindEnv(key)
	}
}

// loadEnv loads environment variables from the config directory
func loadEnv(envPath string, service string) {
	// Always try shared base first, then local, then optional per-service local.
	envFiles := []string{".env", ".env.local"}
	if service != "" {
		envFiles = append(envFiles, ".env."+service+".local")
	}

	// Default to config directory
	if envPath == "" {
		envPath = "config/"
	}

	for _, envFile := range envFiles {
		candidate := filepath.Join(envPath, envFile)
		_ = godotenv.Overload(candidate) // Overload lets later files override earlier ones
	}
}

// ChdirRepoRoot changes the current working directory to the repository root
func ChdirRepoRoot() {
	cwd, _ := os.Getwd()
	for range 5 {
		if _, err := os.Stat(filepath.Join(cwd, "config")); err == nil {
			_ = os.Chdir(cwd)
			return
		}
		cwd = filepath.Dir(cwd)
	}
}

// DSN returns the database connection string
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// Validate checks the collection section before a collection is created from it
func (c *CollectionConfig) Validate() error {
	addresses := []struct{ key, value string }{
		{"collection.address", c.Address},
		{"collection.owner", c.Owner},
		{"collection.authorized_signer", c.AuthorizedSigner},
	}
	for _, a := range addresses {
		if !common.IsHexAddress(a.value) {
			return fmt.Errorf("%s is not a valid address: %q", a.key, a.value)
		}
	}
	if c.TotalSupplyLimit == 0 {
		return errors.New("collection.total_supply_limit is required")
	}
	if len(c.PhaseCost) == 0 {
		return errors.New("collection.phase_cost requires at least one phase")
	}
	if len(c.PhaseCost) != len(c.PhaseWalletLimit) {
		return fmt.Errorf("collection.phase_cost and collection.phase_wallet_limit differ in length: %d != %d",
			len(c.PhaseCost), len(c.PhaseWalletLimit))
	}
	for i, option := range c.StakeOptions {
		if option.Interval <= 0 {
			return fmt.Errorf("collection.stake_options[%d].interval must be positive", i)
		}
	}
	return nil
}

// Params converts the collection section into collection parameters
func (c *CollectionConfig) Params() (collection.Params, error) {
	if err := c.Validate(); err != nil {
		return collection.Params{}, err
	}

	phaseCost := make([]*uint256.Int, len(c.PhaseCost))
	for i, cost := range c.PhaseCost {
		amount, err := domain.ParseAmount(cost)
		if err != nil {
			return collection.Params{}, fmt.Errorf("collection.phase_cost[%d]: %w", i, err)
		}
		phaseCost[i] = amount
	}

	publicSaleCost, err := domain.ParseAmount(c.PublicSaleCost)
	if err != nil {
		return collection.Params{}, fmt.Errorf("collection.public_sale_cost: %w", err)
	}

	options := make([]domain.StakeOption, len(c.StakeOptions))
	for i, o := range c.StakeOptions {
		reward, err := domain.ParseAmount(o.RewardPerInterval)
		if err != nil {
			return collection.Params{}, fmt.Errorf("collection.stake_options[%d].reward_per_interval: %w", i, err)
		}
		options[i] = domain.StakeOption{
			Interval:          o.Interval,
			RewardPerInterval: reward,
			ExtensionLimit:    o.ExtensionLimit,
			Enabled:           o.Enabled,
		}
	}

	return collection.Params{
		Name:                  c.Name,
		Symbol:                c.Symbol,
		Address:               common.HexToAddress(c.Address),
		Owner:                 common.HexToAddress(c.Owner),
		AuthorizedSigner:      common.HexToAddress(c.AuthorizedSigner),
		TotalSupplyLimit:      c.TotalSupplyLimit,
		CurrentPhase:          c.CurrentPhase,
		PhaseCost:             phaseCost,
		PhaseWalletLimit:      append([]uint64(nil), c.PhaseWalletLimit...),
		PublicSaleCost:        publicSaleCost,
		PublicSaleWalletLimit: c.PublicSaleWalletLimit,
		PublicSaleEnabled:     c.PublicSaleEnabled,
		StakeLimitPerToken:    c.StakeLimitPerToken,
		StakeOptions:          options,
		BaseURI:               c.BaseURI,
		Network:               domain.Network(c.Network),
	}, nil
}

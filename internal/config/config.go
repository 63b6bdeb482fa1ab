package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Storage backends
const (
	StorageMemory   = "memory"
	StorageRedis    = "redis"
	StoragePostgres = "postgres"
)

// DevJWTSecret is the signing secret used when none is configured
const DevJWTSecret = "dev-secret-change-me"

type Config struct {
	Server  ServerConfig
	Log     LogConfig
	Storage StorageConfig
	Auth    AuthConfig
	Auction AuctionConfig
	Seed    SeedConfig
}

type ServerConfig struct {
	Address         string
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

type LogConfig struct {
	Level string
}

type StorageConfig struct {
	Type     string
	Redis    RedisConfig
	Postgres PostgresConfig
}

type RedisConfig struct {
	URL      string
	PoolSize int `mapstructure:"pool_size"`
}

type PostgresConfig struct {
	DSN string
}

type AuthConfig struct {
	JWTSecret  string        `mapstructure:"jwt_secret"`
	TokenTTL   time.Duration `mapstructure:"token_ttl"`
	BcryptCost int           `mapstructure:"bcrypt_cost"`
}

type AuctionConfig struct {
	AllowUnbidSale bool  `mapstructure:"allow_unbid_sale"`
	MinBasePrice   int64 `mapstructure:"min_base_price"`
	MaxBasePrice   int64 `mapstructure:"max_base_price"`
}

type SeedConfig struct {
	AccountsFile string `mapstructure:"accounts_file"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.address", ":8080")
	v.SetDefault("server.shutdown_timeout", 10*time.Second)
	v.SetDefault("log.level", "info")
	v.SetDefault("storage.type", StorageMemory)
	v.SetDefault("storage.redis.url", "redis://localhost:6379/0")
	v.SetDefault("storage.redis.pool_size", 10)
	v.SetDefault("storage.postgres.dsn", "")
	v.SetDefault("auth.jwt_secret", DevJWTSecret)
	v.SetDefault("auth.token_ttl", time.Hour)
	v.SetDefault("auth.bcrypt_cost", 10)
	v.SetDefault("auction.allow_unbid_sale", false)
	v.SetDefault("auction.min_base_price", 2_000_000)
	v.SetDefault("auction.max_base_price", 20_000_000)
	v.SetDefault("seed.accounts_file", "")
}

// Load reads configuration from an optional YAML file and AUCTION_* environment
// variables. An empty path searches for config.yaml in . and ./config.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	v.SetEnvPrefix("AUCTION")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config: read: %w", err)
		}
	}

	// PORT is honoured when no explicit address was configured
	if port := os.Getenv("PORT"); port != "" {
		if _, set := os.LookupEnv("AUCTION_SERVER_ADDRESS"); !set && !v.InConfig("server.address") {
			v.Set("server.address", ":"+port)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks values that would otherwise fail later at wiring time
func (c *Config) Validate() error {
	switch c.Storage.Type {
	case StorageMemory, StorageRedis:
	case StoragePostgres:
		if c.Storage.Postgres.DSN == "" {
			return errors.New("config: storage.postgres.dsn is required for postgres storage")
		}
	default:
		return fmt.Errorf("config: unknown storage.type %q", c.Storage.Type)
	}
	if c.Auth.JWTSecret == "" {
		return errors.New("config: auth.jwt_secret must not be empty")
	}
	if c.Auction.MinBasePrice <= 0 || c.Auction.MaxBasePrice < c.Auction.MinBasePrice {
		return fmt.Errorf("config: invalid base price range [%d, %d]", c.Auction.MinBasePrice, c.Auction.MaxBasePrice)
	}
	return nil
}

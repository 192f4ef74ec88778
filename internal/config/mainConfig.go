// Package config main config
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v7"
)

// MainConfig with init data
type MainConfig struct {
	PostgresPort     string `env:"POSTGRES_PORT,notEmpty" envDefault:"5432"`
	PostgresHost     string `env:"POSTGRES_HOST,notEmpty" envDefault:"localhost"`
	PostgresPassword string `env:"POSTGRES_PASSWORD,notEmpty" envDefault:"postgres"`
	PostgresUser     string `env:"POSTGRES_USER,notEmpty" envDefault:"postgres"`
	PostgresDB       string `env:"POSTGRES_DB,notEmpty" envDefault:"postgres"`
	Port             string `env:"PORT,notEmpty" envDefault:"5000"`
	Host             string `env:"HOST,notEmpty" envDefault:"localhost"`
	MetricsPort      string `env:"METRICS_PORT" envDefault:"9090"`

	// Storage postgres or memory, memory also switches the ledger to paper balances
	Storage string `env:"STORAGE,notEmpty" envDefault:"postgres"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`

	AssetID           string        `env:"ASSET_ID,notEmpty" envDefault:"aurumtrust"`
	MaintenanceMargin float64       `env:"MAINTENANCE_MARGIN" envDefault:"0.05"`
	MaxLeverage       float64       `env:"MAX_LEVERAGE" envDefault:"100"`
	PollInterval      time.Duration `env:"POLL_INTERVAL" envDefault:"30s"`
	FundingRate       float64       `env:"FUNDING_RATE" envDefault:"0.01"`
	FundingInterval   time.Duration `env:"FUNDING_INTERVAL" envDefault:"8h"`
	StartBalance      float64       `env:"START_BALANCE" envDefault:"100"`

	CoinGeckoURL string  `env:"COINGECKO_URL" envDefault:"https://api.coingecko.com/api/v3"`
	CoinGeckoID  string  `env:"COINGECKO_ID" envDefault:"aurumtrust"`
	CoinGeckoRPS float64 `env:"COINGECKO_RPS" envDefault:"0.5"`

	RPCURL        string        `env:"RPC_URL"`
	OracleAddress string        `env:"ORACLE_ADDRESS"`
	TokenAddress  string        `env:"TOKEN_ADDRESS"`
	OracleDelay   time.Duration `env:"ORACLE_RETRY_DELAY" envDefault:"1s"`

	RedisAddr     string        `env:"REDIS_ADDR"`
	RedisPassword string        `env:"REDIS_PASSWORD"`
	RedisDB       int           `env:"REDIS_DB" envDefault:"0"`
	PriceCacheTTL time.Duration `env:"PRICE_CACHE_TTL" envDefault:"10m"`

	MockSeed      int64   `env:"MOCK_SEED" envDefault:"0"`
	MockBasePrice float64 `env:"MOCK_BASE_PRICE" envDefault:"0.3"`
}

// NewMainConfig parsing config from environment
func NewMainConfig() (*MainConfig, error) {
	mainConfig := &MainConfig{}

	err := env.Parse(mainConfig)
	if err != nil {
		return nil, fmt.Errorf("config - NewMainConfig - Parse:%w", err)
	}
	if err = mainConfig.validate(); err != nil {
		return nil, fmt.Errorf("config - NewMainConfig - validate:%w", err)
	}

	return mainConfig, nil
}

func (c *MainConfig) validate() error {
	if c.MaintenanceMargin < 0 || c.MaintenanceMargin >= 1 {
		return fmt.Errorf("MAINTENANCE_MARGIN must be in [0, 1), got %v", c.MaintenanceMargin)
	}
	if c.MaxLeverage < 1 {
		return fmt.Errorf("MAX_LEVERAGE must be >= 1, got %v", c.MaxLeverage)
	}
	if c.PollInterval <= 0 {
		return fmt.Errorf("POLL_INTERVAL must be positive, got %v", c.PollInterval)
	}
	if c.FundingInterval <= 0 {
		return fmt.Errorf("FUNDING_INTERVAL must be positive, got %v", c.FundingInterval)
	}
	if c.MockBasePrice <= 0 {
		return fmt.Errorf("MOCK_BASE_PRICE must be positive, got %v", c.MockBasePrice)
	}
	if c.CoinGeckoRPS <= 0 {
		return fmt.Errorf("COINGECKO_RPS must be positive, got %v", c.CoinGeckoRPS)
	}
	if c.Storage != StoragePostgres && c.Storage != StorageMemory {
		return fmt.Errorf("STORAGE must be %q or %q, got %q", StoragePostgres, StorageMemory, c.Storage)
	}
	return nil
}

const (
	// StoragePostgres positions and balances in postgres
	StoragePostgres = "postgres"
	// StorageMemory positions and paper balances in process memory
	StorageMemory = "memory"
)

// PostgresURL connection string
func (c *MainConfig) PostgresURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", c.PostgresUser, c.PostgresPassword,
		c.PostgresHost, c.PostgresPort, c.PostgresDB)
}

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"

	"github.com/Russell0014/MCBA-Internet-Banking/internal/bank"
)

// Config holds application configuration.
type Config struct {
	Database   DatabaseConfig
	Scheduler  SchedulerConfig
	Fees       FeesConfig
	Statements StatementsConfig
}

// DatabaseConfig holds sqlite settings.
type DatabaseConfig struct {
	Path string
}

// SchedulerConfig holds the bill-pay polling cadence.
type SchedulerConfig struct {
	PollInterval time.Duration `mapstructure:"poll_interval"`
}

// FeesConfig carries the service-charge tiering. The free-operation
// count and the fee amounts are defaults of the reference system, not
// hard business requirements, so they stay configurable.
type FeesConfig struct {
	FreeOperations int    `mapstructure:"free_operations"`
	WithdrawFee    string `mapstructure:"withdraw_fee"`
	TransferFee    string `mapstructure:"transfer_fee"`
}

// StatementsConfig holds presentation settings for statement paging.
type StatementsConfig struct {
	PageSize int `mapstructure:"page_size"`
}

// Policy converts the configured fee strings into a FeePolicy.
func (f FeesConfig) Policy() (bank.FeePolicy, error) {
	withdraw, err := decimal.NewFromString(f.WithdrawFee)
	if err != nil {
		return bank.FeePolicy{}, fmt.Errorf("fees.withdraw_fee: %w", err)
	}
	transfer, err := decimal.NewFromString(f.TransferFee)
	if err != nil {
		return bank.FeePolicy{}, fmt.Errorf("fees.transfer_fee: %w", err)
	}
	return bank.FeePolicy{
		FreeOperations: f.FreeOperations,
		WithdrawFee:    withdraw,
		TransferFee:    transfer,
	}, nil
}

// Load reads configuration from file and env. Env var overrides use prefix MCBA_.
func Load() (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("database.path", filepath.Join(os.Getenv("HOME"), ".local", "share", "mcba", "mcba.db"))
	v.SetDefault("scheduler.poll_interval", "1m")
	v.SetDefault("fees.free_operations", 2)
	v.SetDefault("fees.withdraw_fee", "0.01")
	v.SetDefault("fees.transfer_fee", "0.05")
	v.SetDefault("statements.page_size", 4)

	v.SetConfigType("toml")

	cfgPath := os.Getenv("MCBA_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "mcba"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("MCBA")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

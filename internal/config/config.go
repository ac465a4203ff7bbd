// Package config loads runtime configuration for the ledger from
// environment variables, with an optional .env file for local runs.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds the tunables of the banking ledger. Interest rates and
// the recency window default to the published product values; the
// account number range defaults to the historical 6-digit space.
type Config struct {
	AccountNumberMin           int     `mapstructure:"ACCOUNT_NUMBER_MIN"`
	AccountNumberMax           int     `mapstructure:"ACCOUNT_NUMBER_MAX"`
	RecentWithdrawalWindowDays int     `mapstructure:"RECENT_WITHDRAWAL_WINDOW_DAYS"`
	CheckingRate               float64 `mapstructure:"CHECKING_RATE"`
	SavingsBaseRate            float64 `mapstructure:"SAVINGS_BASE_RATE"`
	SavingsTierThreshold       float64 `mapstructure:"SAVINGS_TIER_THRESHOLD"`
	SavingsTierBase            float64 `mapstructure:"SAVINGS_TIER_BASE"`
	SavingsExcessRate          float64 `mapstructure:"SAVINGS_EXCESS_RATE"`
	MaxiSavingsRate            float64 `mapstructure:"MAXI_SAVINGS_RATE"`
	MaxiSavingsDegradedRate    float64 `mapstructure:"MAXI_SAVINGS_DEGRADED_RATE"`
}

// Load reads configuration from the environment, consulting an optional
// .env file in path. Missing keys fall back to defaults.
func Load(path string) (Config, error) {
	viper.AddConfigPath(path)
	viper.SetConfigName(".env")
	viper.SetConfigType("env")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	viper.SetDefault("ACCOUNT_NUMBER_MIN", 100000)
	viper.SetDefault("ACCOUNT_NUMBER_MAX", 999999)
	viper.SetDefault("RECENT_WITHDRAWAL_WINDOW_DAYS", 10)
	viper.SetDefault("CHECKING_RATE", 0.001)
	viper.SetDefault("SAVINGS_BASE_RATE", 0.001)
	viper.SetDefault("SAVINGS_TIER_THRESHOLD", 1000)
	viper.SetDefault("SAVINGS_TIER_BASE", 1)
	viper.SetDefault("SAVINGS_EXCESS_RATE", 0.002)
	viper.SetDefault("MAXI_SAVINGS_RATE", 0.05)
	viper.SetDefault("MAXI_SAVINGS_DEGRADED_RATE", 0.001)

	for _, key := range []string{
		"ACCOUNT_NUMBER_MIN",
		"ACCOUNT_NUMBER_MAX",
		"RECENT_WITHDRAWAL_WINDOW_DAYS",
		"CHECKING_RATE",
		"SAVINGS_BASE_RATE",
		"SAVINGS_TIER_THRESHOLD",
		"SAVINGS_TIER_BASE",
		"SAVINGS_EXCESS_RATE",
		"MAXI_SAVINGS_RATE",
		"MAXI_SAVINGS_DEGRADED_RATE",
	} {
		_ = viper.BindEnv(key)
	}

	// The .env file is optional; only a malformed file is an error.
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c Config) validate() error {
	if c.AccountNumberMin <= 0 || c.AccountNumberMax < c.AccountNumberMin {
		return fmt.Errorf("invalid account number range %d-%d", c.AccountNumberMin, c.AccountNumberMax)
	}
	if c.RecentWithdrawalWindowDays < 0 {
		return fmt.Errorf("recent withdrawal window cannot be negative: %d", c.RecentWithdrawalWindowDays)
	}
	return nil
}

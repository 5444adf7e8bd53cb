package config

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/spendable-dev/spendable/internal/calc"
	"github.com/spendable-dev/spendable/internal/status"
)

// Config represents the top-level spendable.yaml configuration.
type Config struct {
	Options    OptionsConfig    `yaml:"options"`
	Thresholds ThresholdsConfig `yaml:"thresholds"`
	Currency   string           `yaml:"currency"`
}

// OptionsConfig carries the calculation defaults applied when the matching
// command flags are not given.
type OptionsConfig struct {
	IncludeExpectedIncome bool    `yaml:"include_expected_income"`
	Buffer                float64 `yaml:"buffer"`
	// SelectedAccounts limits the cash bucket to the listed account IDs.
	// Absent means every enabled cash account.
	SelectedAccounts []string `yaml:"selected_accounts,omitempty"`
}

// ThresholdsConfig sets where the available figure stops reading as healthy.
type ThresholdsConfig struct {
	Low int64 `yaml:"low"`
}

// CalcOptions converts the configured defaults into engine options.
func (o OptionsConfig) CalcOptions() calc.Options {
	return calc.Options{
		IncludeExpectedIncome:  o.IncludeExpectedIncome,
		SelectedCashAccountIDs: o.SelectedAccounts,
		Buffer:                 decimal.NewFromFloat(o.Buffer),
	}
}

// Load reads a spendable.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns the configuration written by init.
func Default() *Config {
	return &Config{
		Thresholds: ThresholdsConfig{Low: status.DefaultLowThreshold},
		Currency:   "USD",
	}
}

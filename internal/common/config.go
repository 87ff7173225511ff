package common

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/pelletier/go-toml/v2"
)

// Config represents the application configuration
type Config struct {
	Environment string         `toml:"environment"` // "development" or "production"
	Storage     StorageConfig  `toml:"storage"`
	Logging     LoggingConfig  `toml:"logging"`
	EODHD       EODHDConfig    `toml:"eodhd"`
	Markets     MarketsConfig  `toml:"markets"`
	Analysis    AnalysisConfig `toml:"analysis"`
}

// StorageConfig contains storage backend configuration
type StorageConfig struct {
	Badger BadgerConfig `toml:"badger"`
}

// BadgerConfig represents BadgerDB-specific configuration
type BadgerConfig struct {
	Path           string `toml:"path" validate:"required"` // Database directory path
	ResetOnStartup bool   `toml:"reset_on_startup"`         // Delete database on startup for clean test runs
}

type LoggingConfig struct {
	Level  string   `toml:"level" validate:"oneof=trace debug info warn error"` // "debug", "info", "warn", "error"
	Output []string `toml:"output"`                                            // "stdout", "file"
}

// EODHDConfig contains EODHD API client configuration
type EODHDConfig struct {
	APIKey    string `toml:"api_key"`
	BaseURL   string `toml:"base_url"`
	RateLimit int    `toml:"rate_limit" validate:"gte=1"` // Requests per second
}

// MarketsConfig contains market data behavior configuration
type MarketsConfig struct {
	DefaultExchange string `toml:"default_exchange"` // Exchange assumed for bare ticker codes
	CacheTTL        string `toml:"cache_ttl"`        // e.g. "24h" - freshness window for cached market data
}

// AnalysisConfig contains scorecard engine configuration
type AnalysisConfig struct {
	FilingType string `toml:"filing_type"` // Primary filing type to analyze (default "10-K")
}

// NewDefaultConfig returns the default configuration
func NewDefaultConfig() *Config {
	return &Config{
		Environment: "development",
		Storage: StorageConfig{
			Badger: BadgerConfig{
				Path:           "./data/strata.db",
				ResetOnStartup: false,
			},
		},
		Logging: LoggingConfig{
			Level:  "info",
			Output: []string{"stdout"},
		},
		EODHD: EODHDConfig{
			BaseURL:   "https://eodhd.com/api",
			RateLimit: 10,
		},
		Markets: MarketsConfig{
			DefaultExchange: "NYSE",
			CacheTTL:        "24h",
		},
		Analysis: AnalysisConfig{
			FilingType: "10-K",
		},
	}
}

// LoadFromFiles loads configuration from multiple files with priority:
// defaults -> file1 -> file2 -> ... -> env. Later files override earlier files.
func LoadFromFiles(paths ...string) (*Config, error) {
	config := NewDefaultConfig()

	for i, path := range paths {
		if path == "" {
			continue
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}

		if err := toml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s (file %d of %d): %w", path, i+1, len(paths), err)
		}
	}

	applyEnvOverrides(config)

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate checks the configuration against its struct tags.
func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if _, err := c.MarketCacheTTL(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// MarketCacheTTL parses the configured market cache TTL.
func (c *Config) MarketCacheTTL() (time.Duration, error) {
	if c.Markets.CacheTTL == "" {
		return 24 * time.Hour, nil
	}
	ttl, err := time.ParseDuration(c.Markets.CacheTTL)
	if err != nil {
		return 0, fmt.Errorf("markets.cache_ttl: %w", err)
	}
	return ttl, nil
}

// applyEnvOverrides applies environment variable overrides to config
func applyEnvOverrides(config *Config) {
	if env := os.Getenv("STRATA_ENV"); env != "" {
		config.Environment = env
	} else if env := os.Getenv("GO_ENV"); env != "" {
		config.Environment = env
	}

	if badgerPath := os.Getenv("STRATA_BADGER_PATH"); badgerPath != "" {
		config.Storage.Badger.Path = badgerPath
	}
	if reset := os.Getenv("STRATA_BADGER_RESET"); reset != "" {
		if b, err := strconv.ParseBool(reset); err == nil {
			config.Storage.Badger.ResetOnStartup = b
		}
	}

	if level := os.Getenv("STRATA_LOG_LEVEL"); level != "" {
		config.Logging.Level = level
	}
	if output := os.Getenv("STRATA_LOG_OUTPUT"); output != "" {
		config.Logging.Output = strings.Split(output, ",")
	}

	if apiKey := os.Getenv("STRATA_EODHD_API_KEY"); apiKey != "" {
		config.EODHD.APIKey = apiKey
	}
	if baseURL := os.Getenv("STRATA_EODHD_BASE_URL"); baseURL != "" {
		config.EODHD.BaseURL = baseURL
	}
	if rateLimit := os.Getenv("STRATA_EODHD_RATE_LIMIT"); rateLimit != "" {
		if n, err := strconv.Atoi(rateLimit); err == nil && n > 0 {
			config.EODHD.RateLimit = n
		}
	}

	if exchange := os.Getenv("STRATA_DEFAULT_EXCHANGE"); exchange != "" {
		config.Markets.DefaultExchange = exchange
	}
	if ttl := os.Getenv("STRATA_MARKET_CACHE_TTL"); ttl != "" {
		config.Markets.CacheTTL = ttl
	}

	if filingType := os.Getenv("STRATA_FILING_TYPE"); filingType != "" {
		config.Analysis.FilingType = filingType
	}
}

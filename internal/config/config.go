// Package config provides configuration loading and validation for the
// server and CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// Defaults applied by MergeWithDefaults when neither the file nor the
// environment sets a value.
const (
	DefaultPort           = 8080
	DefaultFuzzyThreshold = 0.84
	DefaultMaxTextLen     = 10000
)

// Config is the application configuration, loadable from a JSON file with
// environment-variable overrides. All fields are optional; missing values
// fall back to defaults.
type Config struct {
	// Server
	Port       int    `json:"port,omitempty"`         // HTTP listen port
	RateLimit  int    `json:"rate_limit,omitempty"`   // Requests per minute per client; overrides the per-endpoint limits when > 0
	MaxTextLen int    `json:"max_text_len,omitempty"` // Input text cap in characters, -1 disables the cap

	// Matching
	FuzzyThreshold       float64 `json:"fuzzy_threshold,omitempty"`        // Similarity-ratio threshold for fuzzy skill matching
	WordBoundaryTriggers bool    `json:"word_boundary_triggers,omitempty"` // Match trigger phrases on word boundaries only
	UseModelExtractor    bool    `json:"use_model_extractor,omitempty"`    // Extract skills via the generative client when available

	// External services
	APIKey      string `json:"api_key,omitempty"`      // Gemini API key
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL
}

// LoadConfig loads configuration from a JSON file.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// FromEnv reads configuration from environment variables. Used when no
// config file is given, and layered over file values by ApplyEnv.
func FromEnv() Config {
	var cfg Config
	cfg.ApplyEnv()
	return cfg
}

// ApplyEnv overrides set fields from the environment. Environment values
// win over file values.
func (c *Config) ApplyEnv() {
	if v := os.Getenv("PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			c.Port = port
		}
	}
	if v := os.Getenv("GEMINI_API_KEY"); v != "" {
		c.APIKey = v
	}
	if v := os.Getenv("DATABASE_URL"); v != "" {
		c.DatabaseURL = v
	}
	if v := os.Getenv("FUZZY_THRESHOLD"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			c.FuzzyThreshold = f
		}
	}
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be in [0, 65535]")
	}
	if c.RateLimit < 0 {
		return fmt.Errorf("config error: 'rate_limit' must be non-negative")
	}
	if c.MaxTextLen < -1 {
		return fmt.Errorf("config error: 'max_text_len' must be -1 (uncapped) or non-negative")
	}
	if c.FuzzyThreshold < 0 || c.FuzzyThreshold > 1 {
		return fmt.Errorf("config error: 'fuzzy_threshold' must be in [0, 1]")
	}
	return nil
}

// MergeWithDefaults returns a new Config with unset fields filled from
// defaults, and hard defaults applied last.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.RateLimit == 0 {
		result.RateLimit = defaults.RateLimit
	}
	// MaxTextLen uses -1 as the explicit "uncapped" value so that a zero
	// from file or env still means unset.
	if result.MaxTextLen == 0 {
		result.MaxTextLen = defaults.MaxTextLen
	}
	if result.FuzzyThreshold == 0 {
		result.FuzzyThreshold = defaults.FuzzyThreshold
	}

	if result.Port == 0 {
		result.Port = DefaultPort
	}
	if result.MaxTextLen == 0 {
		result.MaxTextLen = DefaultMaxTextLen
	}
	if result.FuzzyThreshold == 0 {
		result.FuzzyThreshold = DefaultFuzzyThreshold
	}

	// Bool fields cannot distinguish unset from false, so they are not
	// merged; CLI flags always win for bools.

	return result
}

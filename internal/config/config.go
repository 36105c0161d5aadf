// Package config handles application configuration management.
package config

import (
	"os"
	"strconv"
)

// Config holds all application configuration.
type Config struct {
	// Base directory for all DeenLife data (~/.deenlife)
	BaseDir string

	// Quran content API settings
	Quran QuranConfig

	// LLM settings for the assistant and translator
	LLM LLMConfig

	// Manually configured location, overriding any stored one.
	Location LocationConfig

	// TUI color theme name ("midnight" or "dawn").
	Theme string

	// Debug enables verbose storage logging.
	Debug bool
}

// QuranConfig holds Quran content API settings.
type QuranConfig struct {
	// BaseURL of the alquran.cloud-compatible API.
	BaseURL string
	// MaxRetries for content fetches before surfacing the failure.
	MaxRetries int
}

// DefaultQuranConfig returns sensible defaults.
func DefaultQuranConfig() QuranConfig {
	return QuranConfig{
		BaseURL:    "https://api.alquran.cloud/v1",
		MaxRetries: 3,
	}
}

// LLMConfig holds LLM provider configuration.
type LLMConfig struct {
	AnthropicAPIKey string
	OpenAIAPIKey    string

	// Default provider: "anthropic" or "openai" (auto-detected if empty)
	DefaultProvider string
	// Default model (provider-specific default if empty)
	DefaultModel string
}

// LocationConfig carries an optional fixed coordinate pair from the
// environment. Set reports whether both values were provided.
type LocationConfig struct {
	Latitude  float64
	Longitude float64
	Set       bool
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		BaseDir: DefaultBaseDir(),
		Quran:   DefaultQuranConfig(),
	}
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	cfg := DefaultConfig()

	if dir := os.Getenv("DEENLIFE_HOME"); dir != "" {
		cfg.BaseDir = dir
	}
	if url := os.Getenv("DEENLIFE_QURAN_API"); url != "" {
		cfg.Quran.BaseURL = url
	}

	if apiKey := os.Getenv("ANTHROPIC_API_KEY"); apiKey != "" {
		cfg.LLM.AnthropicAPIKey = apiKey
	}
	if apiKey := os.Getenv("OPENAI_API_KEY"); apiKey != "" {
		cfg.LLM.OpenAIAPIKey = apiKey
	}
	if provider := os.Getenv("DEENLIFE_LLM_PROVIDER"); provider != "" {
		cfg.LLM.DefaultProvider = provider
	}
	if model := os.Getenv("DEENLIFE_LLM_MODEL"); model != "" {
		cfg.LLM.DefaultModel = model
	}
	if theme := os.Getenv("DEENLIFE_THEME"); theme != "" {
		cfg.Theme = theme
	}
	if debug, err := strconv.ParseBool(os.Getenv("DEENLIFE_DEBUG")); err == nil {
		cfg.Debug = debug
	}

	lat, latErr := strconv.ParseFloat(os.Getenv("DEENLIFE_LATITUDE"), 64)
	lon, lonErr := strconv.ParseFloat(os.Getenv("DEENLIFE_LONGITUDE"), 64)
	if latErr == nil && lonErr == nil {
		cfg.Location = LocationConfig{Latitude: lat, Longitude: lon, Set: true}
	}

	return cfg, nil
}

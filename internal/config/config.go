// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the application configuration that can be loaded from a
// JSON file. All fields are optional; missing values use defaults, env
// variables, or CLI flags.
type Config struct {
	// Credentials
	GeminiAPIKey  string `json:"gemini_api_key,omitempty"`  // Gemini API key
	WeatherAPIKey string `json:"weather_api_key,omitempty"` // OpenWeather API key (optional; city table fallback without it)
	ApifyToken    string `json:"apify_token,omitempty"`     // Apify actor token for profile scraping (optional)

	// Storage
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL

	// Server
	Port int `json:"port,omitempty"` // HTTP listen port

	// Behavior
	UseBrowser bool `json:"use_browser,omitempty"` // Use headless browser for script-rendered profile pages
	Verbose    bool `json:"verbose,omitempty"`     // Print detailed debug information
}

// Env variable names checked by FromEnv.
const (
	envGeminiAPIKey  = "GEMINI_API_KEY"
	envWeatherAPIKey = "WEATHER_API_KEY"
	envApifyToken    = "APIFY_TOKEN"
	envDatabaseURL   = "DATABASE_URL"
)

// defaultPort is used when neither config file nor flags set one.
const defaultPort = 8080

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
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

// FromEnv fills empty credential and storage fields from environment
// variables. File and flag values win over env.
func (c *Config) FromEnv() {
	if c.GeminiAPIKey == "" {
		c.GeminiAPIKey = os.Getenv(envGeminiAPIKey)
	}
	if c.WeatherAPIKey == "" {
		c.WeatherAPIKey = os.Getenv(envWeatherAPIKey)
	}
	if c.ApifyToken == "" {
		c.ApifyToken = os.Getenv(envApifyToken)
	}
	if c.DatabaseURL == "" {
		c.DatabaseURL = os.Getenv(envDatabaseURL)
	}
}

// Validate checks that the configuration has valid values. Required fields
// depend on the command (serve needs a database, analyze can run without
// one), so this only rejects values that are wrong in every mode.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be in [0, 65535]")
	}
	return nil
}

// MergeWithDefaults returns a new Config with zero-valued fields filled from
// defaults. This is used to apply config file values as defaults for CLI
// flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.GeminiAPIKey == "" {
		result.GeminiAPIKey = defaults.GeminiAPIKey
	}
	if result.WeatherAPIKey == "" {
		result.WeatherAPIKey = defaults.WeatherAPIKey
	}
	if result.ApifyToken == "" {
		result.ApifyToken = defaults.ApifyToken
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.Port == 0 {
		result.Port = defaultPort
	}
	if !result.UseBrowser {
		result.UseBrowser = defaults.UseBrowser
	}
	if !result.Verbose {
		result.Verbose = defaults.Verbose
	}

	return result
}

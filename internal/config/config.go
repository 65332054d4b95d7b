// Package config provides configuration loading and validation for the CLI and server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Default endpoints and client identity for the marketplace service.
const (
	DefaultAuthHost = "https://lmsdev.pulseid.com"
	DefaultAPIHost  = "https://lmsdev-marketplace-api.pulseid.com"
	DefaultClientID = "315"
)

// DefaultHTTPTimeout bounds every marketplace request. There is no other
// cancellation mechanism; a slow remote call blocks the active action until
// this fires.
const DefaultHTTPTimeout = 30 * time.Second

// DefaultLLMTimeout bounds every generation call, for the same reason.
const DefaultLLMTimeout = 120 * time.Second

// Config represents the application configuration that can be loaded from a
// JSON file. All fields are optional; missing values use defaults or come
// from the environment.
type Config struct {
	// Marketplace
	AuthHost string `json:"auth_host,omitempty"` // Marketplace auth host
	APIHost  string `json:"api_host,omitempty"`  // Marketplace listing API host
	ClientID string `json:"client_id,omitempty"` // Fixed x-pulse-current-client value
	Email    string `json:"email,omitempty"`     // Marketplace login email
	Password string `json:"password,omitempty"`  // Marketplace login password
	App      string `json:"app,omitempty"`       // Marketplace app identifier

	// LLM
	APIKey string `json:"api_key,omitempty"` // Gemini API key

	// Behavior
	HTTPTimeoutSeconds int  `json:"http_timeout_seconds,omitempty"` // Marketplace request timeout
	LLMTimeoutSeconds  int  `json:"llm_timeout_seconds,omitempty"`  // Generation call timeout
	Verbose            bool `json:"verbose,omitempty"`              // Print detailed debug information
}

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

// FromEnv builds a Config from environment variables. godotenv loads .env at
// startup, so secrets live there in development.
func FromEnv() *Config {
	return &Config{
		AuthHost: os.Getenv("LMS_AUTH_HOST"),
		APIHost:  os.Getenv("LMS_API_HOST"),
		ClientID: os.Getenv("LMS_CLIENT_ID"),
		Email:    os.Getenv("LMS_EMAIL"),
		Password: os.Getenv("LMS_PASSWORD"),
		App:      os.Getenv("LMS_APP"),
		APIKey:   os.Getenv("GEMINI_API_KEY"),
	}
}

// Validate checks that the configuration has valid values.
// Note: missing credentials are not an error here; an unconfigured login
// degrades the fetch path to a reported failure at action time.
func (c *Config) Validate() error {
	if c.HTTPTimeoutSeconds < 0 {
		return fmt.Errorf("config error: 'http_timeout_seconds' must be non-negative")
	}
	if c.LLMTimeoutSeconds < 0 {
		return fmt.Errorf("config error: 'llm_timeout_seconds' must be non-negative")
	}
	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to layer config file values over environment values.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.AuthHost == "" {
		result.AuthHost = defaults.AuthHost
	}
	if result.APIHost == "" {
		result.APIHost = defaults.APIHost
	}
	if result.ClientID == "" {
		result.ClientID = defaults.ClientID
	}
	if result.Email == "" {
		result.Email = defaults.Email
	}
	if result.Password == "" {
		result.Password = defaults.Password
	}
	if result.App == "" {
		result.App = defaults.App
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}

	// Int fields: use default if zero
	if result.HTTPTimeoutSeconds == 0 {
		result.HTTPTimeoutSeconds = defaults.HTTPTimeoutSeconds
	}
	if result.LLMTimeoutSeconds == 0 {
		result.LLMTimeoutSeconds = defaults.LLMTimeoutSeconds
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

// HTTPTimeout returns the configured marketplace request timeout.
func (c *Config) HTTPTimeout() time.Duration {
	if c.HTTPTimeoutSeconds > 0 {
		return time.Duration(c.HTTPTimeoutSeconds) * time.Second
	}
	return DefaultHTTPTimeout
}

// LLMTimeout returns the configured generation call timeout.
func (c *Config) LLMTimeout() time.Duration {
	if c.LLMTimeoutSeconds > 0 {
		return time.Duration(c.LLMTimeoutSeconds) * time.Second
	}
	return DefaultLLMTimeout
}

// AuthHostOrDefault returns the configured auth host or the built-in default.
func (c *Config) AuthHostOrDefault() string {
	if c.AuthHost != "" {
		return c.AuthHost
	}
	return DefaultAuthHost
}

// APIHostOrDefault returns the configured API host or the built-in default.
func (c *Config) APIHostOrDefault() string {
	if c.APIHost != "" {
		return c.APIHost
	}
	return DefaultAPIHost
}

// ClientIDOrDefault returns the configured client identifier or the built-in default.
func (c *Config) ClientIDOrDefault() string {
	if c.ClientID != "" {
		return c.ClientID
	}
	return DefaultClientID
}

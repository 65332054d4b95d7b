package main

import (
	"fmt"

	"github.com/jonathan/offer-dashboard/internal/config"
	"github.com/jonathan/offer-dashboard/internal/llm"
	"github.com/jonathan/offer-dashboard/internal/marketplace"
	"github.com/jonathan/offer-dashboard/internal/types"
)

// loadAppConfig layers an optional JSON config file over environment
// variables and validates the result.
func loadAppConfig(configPath string) (*config.Config, error) {
	cfg := config.FromEnv()

	if configPath != "" {
		fileCfg, err := config.LoadConfig(configPath)
		if err != nil {
			return nil, err
		}
		merged := fileCfg.MergeWithDefaults(*cfg)
		cfg = &merged
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// requireAPIKey returns the Gemini API key or a descriptive error.
func requireAPIKey(cfg *config.Config, flagValue string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	if cfg.APIKey != "" {
		return cfg.APIKey, nil
	}
	return "", fmt.Errorf("API key is required (set GEMINI_API_KEY environment variable or use --api-key flag)")
}

// llmConfig builds the LLM configuration, applying the configured
// generation timeout.
func llmConfig(cfg *config.Config) *llm.Config {
	return llm.DefaultConfig().WithTimeout(cfg.LLMTimeout())
}

// marketplaceClient builds the marketplace client from configuration.
func marketplaceClient(cfg *config.Config) *marketplace.Client {
	return marketplace.NewClient(&marketplace.Options{
		AuthHost: cfg.AuthHostOrDefault(),
		APIHost:  cfg.APIHostOrDefault(),
		ClientID: cfg.ClientIDOrDefault(),
		Timeout:  cfg.HTTPTimeout(),
	})
}

// credentials builds the marketplace credentials from configuration.
func credentials(cfg *config.Config) types.Credentials {
	return types.Credentials{
		Email:    cfg.Email,
		Password: cfg.Password,
		App:      cfg.App,
	}
}

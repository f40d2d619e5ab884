package config

import (
	"errors"

	"github.com/spf13/viper"
)

// Default character limits applied when a request does not specify max_chars.
const (
	DefaultTitleChars   = 12000
	DefaultContentChars = 20000
)

// DefaultFetchTimeoutSeconds bounds the PDF download step.
const DefaultFetchTimeoutSeconds = 30

// ProviderConfig holds connection details for the LLM provider.
type ProviderConfig struct {
	BaseURL string `mapstructure:"base_url"`
	APIKey  string `mapstructure:"api_key"`
	Model   string `mapstructure:"model"`
}

// RuntimeConfig holds environment-provided runtime configuration.
type RuntimeConfig struct {
	LLM                 ProviderConfig
	Port                int
	FetchTimeoutSeconds int
}

// LoadRuntime reads runtime settings from environment variables (via Viper).
func LoadRuntime() *RuntimeConfig {
	cfg := &RuntimeConfig{
		LLM: ProviderConfig{
			BaseURL: viper.GetString("LLM_BASE_URL"),
			APIKey:  viper.GetString("LLM_API_KEY"),
			Model:   viper.GetString("LLM_MODEL"),
		},
		Port:                viper.GetInt("PORT"),
		FetchTimeoutSeconds: viper.GetInt("FETCH_TIMEOUT_SECONDS"),
	}
	if cfg.FetchTimeoutSeconds <= 0 {
		cfg.FetchTimeoutSeconds = DefaultFetchTimeoutSeconds
	}
	return cfg
}

// ValidateRuntime checks that the required LLM settings are present.
func ValidateRuntime(cfg *RuntimeConfig) error {
	if cfg == nil {
		return errors.New("runtime config is nil")
	}
	if cfg.LLM.APIKey == "" {
		return errors.New("LLM_API_KEY environment variable is required")
	}
	if cfg.LLM.Model == "" {
		return errors.New("LLM_MODEL environment variable is required")
	}
	return nil
}

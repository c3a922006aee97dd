package config

import (
	"fmt"
	"time"

	"dario.cat/mergo"
)

// ClientConfig is the top-level configuration container for the logbuch TUI
// client. Populated from environment variables and command-line flags.
type ClientConfig struct {
	// Adapter holds the connection settings for the logbuch API server.
	Adapter ClientAdapter `envPrefix:"ADAPTER_"`

	// Lookup holds the connection settings for the external product
	// database used by nutrition categories.
	Lookup Lookup `envPrefix:"LOOKUP_"`
}

// ClientAdapter holds the client-side settings for reaching the API server.
type ClientAdapter struct {
	// HTTPAddress is the base address of the logbuch API server.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds every single API request (e.g. "15s").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Lookup holds the client-side settings for the external product database.
type Lookup struct {
	// BaseURL is the root of the product search API.
	// Env: LOOKUP_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// RequestTimeout bounds every lookup request (e.g. "10s").
	// Env: LOOKUP_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

const (
	defaultServerAddress = "http://localhost:8080"
	defaultLookupBaseURL = "https://world.openfoodfacts.org"
	defaultLookupTimeout = 10 * time.Second
	defaultClientTimeout = 15 * time.Second
)

// GetClientConfig builds the final client configuration from flags and
// environment variables (flags win), with defaults filled in last.
func GetClientConfig() (*ClientConfig, error) {
	envCfg := &ClientConfig{}
	if err := parseEnv(envCfg); err != nil {
		return nil, err
	}

	cfg := new(ClientConfig)
	for _, layer := range []*ClientConfig{ParseClientFlags(), envCfg} {
		if err := mergo.Merge(cfg, layer); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	if cfg.Adapter.HTTPAddress == "" {
		cfg.Adapter.HTTPAddress = defaultServerAddress
	}
	if cfg.Adapter.RequestTimeout == 0 {
		cfg.Adapter.RequestTimeout = defaultClientTimeout
	}
	if cfg.Lookup.BaseURL == "" {
		cfg.Lookup.BaseURL = defaultLookupBaseURL
	}
	if cfg.Lookup.RequestTimeout == 0 {
		cfg.Lookup.RequestTimeout = defaultLookupTimeout
	}

	return cfg, cfg.validate()
}

package config

import (
	"fmt"
	"time"
)

// MetaMCPConfig is the flattened configuration consumed by the metamcp
// command, assembled from [StructuredConfig].
type MetaMCPConfig struct {
	// BaseURL is the root URL of the MetaMCP application.
	BaseURL string
	// SessionToken authenticates API calls against MetaMCP.
	SessionToken string
	// CookieFile optionally holds the session token on disk.
	CookieFile string
	// RequestTimeout is the per-request timeout for API calls.
	RequestTimeout time.Duration
}

// GetMetaMCPConfig builds and validates the metamcp configuration view.
//
// Sources are merged in the following priority order (earlier sources win
// for fields they set):
//  1. Environment variables (METAMCP_*)
//  2. JSON settings file (path from METAMCP_CONFIG)
//  3. Built-in defaults
//
// Command-line flags are owned by the cobra layer in cmd/metamcp and are
// applied on top of the returned config.
func GetMetaMCPConfig() (*MetaMCPConfig, error) {
	cfg, err := newConfigBuilder().
		withEnv().
		withJSON().
		withDefaults().
		build()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	metaCfg := &MetaMCPConfig{
		BaseURL:        cfg.MetaMCP.BaseURL,
		SessionToken:   cfg.MetaMCP.SessionToken,
		CookieFile:     cfg.MetaMCP.CookieFile,
		RequestTimeout: cfg.MetaMCP.RequestTimeout,
	}

	return metaCfg, metaCfg.validate()
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// Default values applied by [configBuilder.withDefaults] for fields no other
// configuration source has set.
const (
	// DefaultConfigPath is the source configuration document read when
	// neither the -config-path flag nor BUILDMCP_CONFIG_PATH is set.
	// The `~` prefix is resolved right before the file is read.
	DefaultConfigPath = "~/.claude/mcp.json"

	// DefaultAlgorithm is the checksum algorithm recorded in the lock file
	// unless overridden.
	DefaultAlgorithm = "sha256"

	// DefaultMetaMCPBaseURL points at a locally running MetaMCP instance.
	DefaultMetaMCPBaseURL = "http://localhost:12008"

	// DefaultRequestTimeout bounds every MetaMCP API call.
	DefaultRequestTimeout = 30 * time.Second
)

// StructuredConfig is the top-level configuration container for the
// buildmcp tool set. It aggregates all sub-configurations and is populated
// by merging values from environment variables, command-line flags, an
// optional JSON settings file, and built-in defaults.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Build holds the settings that drive a configuration build run,
	// consumed by the buildmcp command.
	Build Build `envPrefix:"BUILDMCP_" json:"build,omitempty"`

	// MetaMCP holds connection settings for a MetaMCP backend, consumed by
	// the metamcp command.
	MetaMCP MetaMCP `envPrefix:"METAMCP_" json:"metamcp,omitempty"`

	// JSONFilePath is the optional path to a JSON settings file.
	// When non-empty, the file is parsed and merged below the values
	// already loaded from environment variables and flags.
	// Populated via the METAMCP_CONFIG environment variable.
	JSONFilePath string `env:"METAMCP_CONFIG" json:"-"`
}

// Build holds the settings for a single configuration build run.
type Build struct {
	// ConfigPath locates the source configuration document. May contain a
	// leading `~` or environment variable references; resolved to an
	// absolute path right before the file is read.
	// Env: BUILDMCP_CONFIG_PATH
	ConfigPath string `env:"CONFIG_PATH" json:"config_path"`

	// Algorithm selects the checksum algorithm used to detect profile
	// changes. Supported values are "sha256" and "md5".
	// Env: BUILDMCP_ALGORITHM
	Algorithm string `env:"ALGORITHM" json:"algorithm"`

	// Profile, when non-empty, prints the named composed profile to stdout
	// instead of running the full build.
	// Env: BUILDMCP_PROFILE
	Profile string `env:"PROFILE" json:"profile"`

	// DryRun computes every profile but skips target dispatch and the lock
	// file update.
	// Env: BUILDMCP_DRY_RUN
	DryRun bool `env:"DRY_RUN" json:"dry_run"`

	// Force dispatches every profile even when its checksum matches the
	// lock file.
	// Env: BUILDMCP_FORCE
	Force bool `env:"FORCE" json:"force"`

	// NoCheckEnv downgrades unresolved environment variable placeholders
	// from a build failure to a warning.
	// Env: BUILDMCP_NO_CHECK_ENV
	NoCheckEnv bool `env:"NO_CHECK_ENV" json:"no_check_env"`

	// Verbose enables debug-level logging.
	// Env: BUILDMCP_VERBOSE
	Verbose bool `env:"VERBOSE" json:"verbose"`
}

// MetaMCP holds connection settings for a MetaMCP backend.
type MetaMCP struct {
	// BaseURL is the root URL of the MetaMCP application
	// (e.g. "http://localhost:12008").
	// Env: METAMCP_BASE_URL
	BaseURL string `env:"BASE_URL" json:"base_url"`

	// SessionToken is the better-auth session token sent as a cookie with
	// every API call. Must be kept confidential.
	// Env: METAMCP_SESSION_TOKEN
	SessionToken string `env:"SESSION_TOKEN" json:"session_token"`

	// CookieFile is an optional path to a file holding the session token,
	// consulted only when SessionToken itself is empty.
	// Env: METAMCP_COOKIE_FILE
	CookieFile string `env:"COOKIE_FILE" json:"cookie_file"`

	// RequestTimeout is the maximum duration allowed for a single MetaMCP
	// API call (e.g. "30s", "1m").
	// Env: METAMCP_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" json:"request_timeout"`
}

// defaultStructuredConfig returns the built-in defaults. The builder appends
// it last, so it only fills fields no other source has set.
func defaultStructuredConfig() *StructuredConfig {
	return &StructuredConfig{
		Build: Build{
			ConfigPath: DefaultConfigPath,
			Algorithm:  DefaultAlgorithm,
		},
		MetaMCP: MetaMCP{
			BaseURL:        DefaultMetaMCPBaseURL,
			RequestTimeout: DefaultRequestTimeout,
		},
	}
}

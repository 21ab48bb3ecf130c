package config

import (
	"fmt"
)

// BuildConfig is the flattened configuration consumed by the buildmcp
// command, assembled from [StructuredConfig].
type BuildConfig struct {
	// ConfigPath locates the source configuration document.
	ConfigPath string
	// Algorithm selects the checksum algorithm for change detection.
	Algorithm string
	// Profile, when non-empty, selects single-profile print mode.
	Profile string
	// DryRun skips target dispatch and the lock file update.
	DryRun bool
	// Force dispatches profiles even when their checksums match.
	Force bool
	// NoCheckEnv downgrades unresolved placeholders to warnings.
	NoCheckEnv bool
	// Verbose enables debug logging.
	Verbose bool
}

// GetBuildConfig builds and validates the buildmcp configuration view.
//
// Sources are merged in the following priority order (earlier sources win
// for fields they set):
//  1. Environment variables (BUILDMCP_*)
//  2. Command-line flags
//  3. Built-in defaults
func GetBuildConfig() (*BuildConfig, error) {
	cfg, err := newConfigBuilder().
		withEnv().
		withFlags().
		withDefaults().
		build()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	buildCfg := &BuildConfig{
		ConfigPath: cfg.Build.ConfigPath,
		Algorithm:  cfg.Build.Algorithm,
		Profile:    cfg.Build.Profile,
		DryRun:     cfg.Build.DryRun,
		Force:      cfg.Build.Force,
		NoCheckEnv: cfg.Build.NoCheckEnv,
		Verbose:    cfg.Build.Verbose,
	}

	return buildCfg, buildCfg.validate()
}

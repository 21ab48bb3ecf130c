// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "strings"

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Cross-source invariants are checked on the flattened views instead; see
// [BuildConfig.validate] and [MetaMCPConfig.validate].
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	return nil
}

func (cfg *BuildConfig) validate() error {
	if cfg.ConfigPath == "" {
		return ErrInvalidBuildConfigs
	}

	switch cfg.Algorithm {
	case "sha256", "md5":
	default:
		return ErrInvalidAlgorithm
	}

	return nil
}

func (cfg *MetaMCPConfig) validate() error {
	if cfg.BaseURL == "" || !strings.HasPrefix(cfg.BaseURL, "http") {
		return ErrInvalidMetaMCPConfigs
	}

	if cfg.RequestTimeout == 0 {
		return ErrInvalidMetaMCPConfigs
	}

	return nil
}

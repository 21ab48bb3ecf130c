package config

import "errors"

// Validation errors returned by [BuildConfig.validate] and
// [MetaMCPConfig.validate] when required configuration groups are
// incomplete or invalid.
var (
	// ErrInvalidBuildConfigs indicates invalid build-run settings
	// (for example, an empty config document path).
	ErrInvalidBuildConfigs = errors.New("invalid build configuration")
	// ErrInvalidAlgorithm indicates a checksum algorithm outside the
	// supported set ("sha256", "md5").
	ErrInvalidAlgorithm = errors.New("invalid checksum algorithm")
	// ErrInvalidMetaMCPConfigs indicates invalid MetaMCP connection settings
	// (for example, a missing base URL or zero request timeout).
	ErrInvalidMetaMCPConfigs = errors.New("invalid metamcp configuration")
)

package config

import (
	"flag"
)

// ParseFlags parses all buildmcp configuration flags.
//
// Flags:
//
//	-config-path path to the source configuration document
//	-algorithm checksum algorithm ("sha256" or "md5")
//	-profile print a single composed profile and exit
//	-dry-run compute everything, write nothing
//	-force dispatch profiles even when checksums match
//	-no-check-env treat unresolved ${VAR} placeholders as warnings
//	-verbose enable debug logging
func ParseFlags() *StructuredConfig {
	var configPath string
	var algorithm string
	var profile string
	var dryRun bool
	var force bool
	var noCheckEnv bool
	var verbose bool

	flag.StringVar(&configPath, "config-path", "", "Path to the source configuration document")
	flag.StringVar(&algorithm, "algorithm", "", "Checksum algorithm: sha256 or md5")
	flag.StringVar(&profile, "profile", "", "Print the named composed profile and exit")
	flag.BoolVar(&dryRun, "dry-run", false, "Compute all profiles without writing anything")
	flag.BoolVar(&force, "force", false, "Dispatch profiles even when checksums match")
	flag.BoolVar(&noCheckEnv, "no-check-env", false, "Report unresolved ${VAR} placeholders as warnings only")
	flag.BoolVar(&verbose, "verbose", false, "Enable debug logging")

	flag.Parse()

	return &StructuredConfig{
		Build: Build{
			ConfigPath: configPath,
			Algorithm:  algorithm,
			Profile:    profile,
			DryRun:     dryRun,
			Force:      force,
			NoCheckEnv: noCheckEnv,
			Verbose:    verbose,
		},
	}
}

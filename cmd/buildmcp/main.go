package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/buildmcp/internal/builder"
	"github.com/MKhiriev/buildmcp/internal/config"
	"github.com/MKhiriev/buildmcp/internal/envsubst"
	"github.com/MKhiriev/buildmcp/internal/logger"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("buildmcp", false)
	cfg, err := config.GetBuildConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if cfg.Verbose {
		log = logger.NewLogger("buildmcp", true)
	}

	env := envsubst.EnvMap(os.Environ())
	b := builder.New(cfg, env, builder.NewTargetResolver(log), log)

	// Single-profile print mode: the composed document goes to stdout.
	if cfg.Profile != "" {
		if err = b.BuildProfile(cfg.Profile, os.Stdout); err != nil {
			log.Fatal().Err(err).Msg("build profile")
		}
		return
	}

	report, err := b.Run(context.Background())
	if err != nil {
		log.Fatal().Err(err).Msg("build aborted")
	}

	if failed := report.Failed(); len(failed) > 0 {
		log.Error().Int("failed", len(failed)).Msg("some profiles were not written")
	}
	if missing := report.MissingVars(); len(missing) > 0 && report.EnvCheck {
		log.Error().Strs("missing", missing).Msg("unresolved environment variables")
	}
	if !report.OK() {
		os.Exit(1)
	}
}

// printBuildInfo writes version details to stderr: stdout carries the
// composed documents in single-profile mode.
func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Fprintf(os.Stderr, "Build version: %s\n", buildVersion)
	fmt.Fprintf(os.Stderr, "Build date: %s\n", buildDate)
	fmt.Fprintf(os.Stderr, "Build commit: %s\n", buildCommit)
}

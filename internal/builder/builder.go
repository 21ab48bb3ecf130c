// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package builder

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/MKhiriev/buildmcp/internal/checksum"
	"github.com/MKhiriev/buildmcp/internal/config"
	"github.com/MKhiriev/buildmcp/internal/document"
	"github.com/MKhiriev/buildmcp/internal/envsubst"
	"github.com/MKhiriev/buildmcp/internal/logger"
	"github.com/MKhiriev/buildmcp/internal/utils"
)

// Builder owns one end-to-end build run over a configuration document.
type Builder struct {
	// cfg holds the run settings: config path, algorithm, and flags.
	cfg *config.BuildConfig

	// env is the environment consulted during substitution. Injected
	// explicitly so runs stay deterministic under test.
	env map[string]string

	// resolver turns target specifications into dispatchable targets.
	resolver TargetResolver

	// logs is the structured logger used for run diagnostics.
	logs *logger.Logger
}

// preparedProfile is a profile that passed composition, substitution, and
// hashing and awaits dispatch.
type preparedProfile struct {
	name  string
	built document.Mapping
	hash  string
}

// New constructs a Builder for one run.
//
// The environment mapping is consulted for every ${VAR} placeholder; the
// resolver turns declared targets into dispatchable ones. Both are injected
// so tests can supply synthetic environments and mock targets.
func New(cfg *config.BuildConfig, env map[string]string, resolver TargetResolver, logs *logger.Logger) *Builder {
	return &Builder{
		cfg:      cfg,
		env:      env,
		resolver: resolver,
		logs:     logs,
	}
}

// Run executes the full pipeline: load the configuration and lock file,
// compose and hash every profile, dispatch the changed ones, persist the
// updated lock mapping once at the end.
//
// Fatal conditions (unreadable or malformed configuration, corrupt lock
// file, composition lookup failure) return an error before any target is
// written. Per-profile dispatch failures are recorded in the report and do
// not stop the remaining profiles.
func (b *Builder) Run(ctx context.Context) (*Report, error) {
	src, configPath, err := b.load()
	if err != nil {
		return nil, err
	}

	lockPath := checksum.LockPath(configPath)
	lock, err := checksum.LoadLock(lockPath)
	if err != nil {
		return nil, err
	}
	b.logs.Debug().Str("path", lockPath).Int("entries", len(lock)).Msg("lock file loaded")

	report := &Report{DryRun: b.cfg.DryRun, EnvCheck: !b.cfg.NoCheckEnv}

	names := src.ProfileNames()
	if len(names) == 0 {
		b.logs.Warn().Msg("no profiles defined in configuration")
		return report, nil
	}

	// Compose and hash every profile before dispatching anything, so an
	// inconsistent configuration aborts the run with no targets touched.
	prepared := make([]preparedProfile, 0, len(names))
	for _, name := range names {
		built, err := Compose(src, name)
		if err != nil {
			return nil, err
		}

		if len(built) == 0 {
			b.logs.Warn().Str("profile", name).Msg("profile composed no servers")
			report.Profiles = append(report.Profiles, ProfileResult{
				Name:   name,
				Status: StatusSkipped,
				Reason: "no servers",
			})
			continue
		}

		substituted, missing := envsubst.Substitute(built, b.env)
		if len(missing) > 0 {
			report.addMissing(missing)
			b.logs.Debug().Str("profile", name).Strs("missing", dedupSorted(missing)).
				Msg("unresolved environment variables")
		}

		hash, err := checksum.Hash(substituted, b.cfg.Algorithm)
		if err != nil {
			return nil, fmt.Errorf("hash profile %q: %w", name, err)
		}
		b.logs.Debug().Str("profile", name).Str("hash", hash).Msg("profile hashed")

		prepared = append(prepared, preparedProfile{
			name:  name,
			built: substituted.(document.Mapping),
			hash:  hash,
		})
	}

	for _, p := range prepared {
		result := b.dispatch(ctx, src, lock, p)
		report.Profiles = append(report.Profiles, result)
		if result.Status == StatusWritten {
			lock[p.name] = p.hash
		}
	}

	if !b.cfg.DryRun && len(prepared) > 0 {
		if err := checksum.SaveLock(lockPath, lock); err != nil {
			b.logs.Warn().Str("path", lockPath).Err(err).Msg("could not write lock file")
		} else {
			b.logs.Debug().Str("path", lockPath).Msg("lock file updated")
		}
	}

	for _, name := range report.MissingVars() {
		b.logs.Warn().Str("name", name).Msg("environment variable not set")
	}

	return report, nil
}

// BuildProfile composes and substitutes a single profile and writes its
// document to out. No target is dispatched and the lock file is not touched.
func (b *Builder) BuildProfile(name string, out io.Writer) error {
	src, _, err := b.load()
	if err != nil {
		return err
	}

	built, err := Compose(src, name)
	if err != nil {
		return err
	}

	substituted, missing := envsubst.Substitute(built, b.env)

	data, err := document.SerializeIndent(substituted)
	if err != nil {
		return fmt.Errorf("serialize profile %q: %w", name, err)
	}
	if _, err := out.Write(data); err != nil {
		return fmt.Errorf("print profile %q: %w", name, err)
	}

	if len(missing) > 0 {
		names := dedupSorted(missing)
		for _, n := range names {
			b.logs.Warn().Str("name", n).Msg("environment variable not set")
		}
		if !b.cfg.NoCheckEnv {
			return fmt.Errorf("%w: %s", ErrMissingVariables, strings.Join(names, ", "))
		}
	}

	return nil
}

// load resolves the configured path and parses the source document.
func (b *Builder) load() (*Source, string, error) {
	path, err := utils.ResolvePath(b.cfg.ConfigPath)
	if err != nil {
		return nil, "", fmt.Errorf("resolve config path %q: %w", b.cfg.ConfigPath, err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("read config: %w", err)
	}

	src, err := ParseSource(data)
	if err != nil {
		return nil, "", fmt.Errorf("parse %s: %w", path, err)
	}

	b.logs.Debug().Str("path", path).
		Int("servers", len(src.Servers)).
		Int("templates", len(src.Templates)).
		Int("profiles", len(src.Profiles)).
		Int("targets", len(src.Targets)).
		Msg("configuration loaded")

	return src, path, nil
}

// dispatch decides the fate of one prepared profile: skip on an unchanged
// checksum, report in dry-run mode, otherwise write to the resolved target.
func (b *Builder) dispatch(ctx context.Context, src *Source, lock map[string]string, p preparedProfile) ProfileResult {
	spec, ok := src.TargetFor(p.name)
	if !ok {
		b.logs.Error().Str("profile", p.name).Msg("no target declared for profile")
		return ProfileResult{Name: p.name, Status: StatusFailed, Hash: p.hash, Err: ErrNoTarget}
	}

	target, err := b.resolver.Resolve(spec)
	if err != nil {
		b.logs.Error().Str("profile", p.name).Err(err).Msg("could not resolve target")
		return ProfileResult{Name: p.name, Status: StatusFailed, Hash: p.hash, Err: err}
	}

	if !b.cfg.Force && checksum.Compare(p.hash, lock[p.name]) {
		b.logs.Info().Str("profile", p.name).Msg("unchanged, skipping")
		return ProfileResult{
			Name:   p.name,
			Status: StatusSkipped,
			Hash:   p.hash,
			Target: target.Describe(),
			Reason: "unchanged",
		}
	}

	if b.cfg.DryRun {
		data, err := document.SerializeStrict(document.Mapping{"mcpServers": p.built})
		if err != nil {
			return ProfileResult{Name: p.name, Status: StatusFailed, Hash: p.hash, Target: target.Describe(), Err: err}
		}
		b.logs.Info().Str("profile", p.name).Str("target", target.Describe()).
			RawJSON("document", data).Msg("dry run, would write")
		return ProfileResult{Name: p.name, Status: StatusPlanned, Hash: p.hash, Target: target.Describe()}
	}

	if b.cfg.Verbose {
		if prior, err := target.Read(ctx); err != nil {
			b.logs.Warn().Str("profile", p.name).Err(err).Msg("could not read prior target state")
		} else if prior != nil {
			b.logs.Debug().Str("profile", p.name).Int("bytes", len(prior)).Msg("prior target state fetched")
		}
	}

	if err := target.Write(ctx, p.built); err != nil {
		b.logs.Error().Str("profile", p.name).Err(err).Msg("target write failed")
		return ProfileResult{Name: p.name, Status: StatusFailed, Hash: p.hash, Target: target.Describe(), Err: err}
	}

	b.logs.Info().Str("profile", p.name).Str("target", target.Describe()).Msg("profile written")
	return ProfileResult{Name: p.name, Status: StatusWritten, Hash: p.hash, Target: target.Describe()}
}

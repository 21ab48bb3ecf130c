// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package builder_test

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/buildmcp/internal/builder"
	"github.com/MKhiriev/buildmcp/internal/checksum"
	"github.com/MKhiriev/buildmcp/internal/config"
	"github.com/MKhiriev/buildmcp/internal/document"
	"github.com/MKhiriev/buildmcp/internal/logger"
	"github.com/MKhiriev/buildmcp/internal/mock"
)

// devConfig — конфигурация с базовым сервером, одним шаблоном и профилем dev.
// Использует расслабленный диалект: комментарии, ключи без кавычек, висячие
// запятые.
const devConfig = `// Catalog for tests.
{
  mcpServers: {
    base: {
      command: "npx",
      args: ["-y", "@mcp/base"],
      env: { API_KEY: "${BUILD_API_KEY}" },
    },
  },
  templates: {
    search: { command: "uvx", args: ["mcp-search"] },
  },
  profiles: {
    dev: ["search"],
  },
  targets: {
    dev: %q,
  },
}
`

// writeBuildConfig записывает документ конфигурации во временный каталог и
// возвращает путь к нему.
func writeBuildConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "mcp.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// newTestBuilder — хелпер для создания Builder с реальным резолвером и
// Nop-логгером.
func newTestBuilder(t *testing.T, cfg *config.BuildConfig, env map[string]string) *builder.Builder {
	t.Helper()
	return builder.New(cfg, env, builder.NewTargetResolver(logger.Nop()), logger.Nop())
}

func expectedDevServers() document.Mapping {
	return document.Mapping{
		"base": document.Mapping{
			"command": document.String("npx"),
			"args":    document.Sequence{document.String("-y"), document.String("@mcp/base")},
			"env":     document.Mapping{"API_KEY": document.String("tok-123")},
		},
		"search": document.Mapping{
			"command": document.String("uvx"),
			"args":    document.Sequence{document.String("mcp-search")},
		},
	}
}

// ── Run: happy path ──────────────────────────────────────────────────────────

func TestRun_EndToEnd(t *testing.T) {
	targetPath := filepath.Join(t.TempDir(), "claude", "mcp.json")
	cfgPath := writeBuildConfig(t, fmt.Sprintf(devConfig, targetPath))

	cfg := &config.BuildConfig{ConfigPath: cfgPath, Algorithm: checksum.AlgorithmSHA256}
	b := newTestBuilder(t, cfg, map[string]string{"BUILD_API_KEY": "tok-123"})

	report, err := b.Run(context.Background())
	require.NoError(t, err)
	require.Len(t, report.Profiles, 1)

	result := report.Profiles[0]
	assert.Equal(t, "dev", result.Name)
	assert.Equal(t, builder.StatusWritten, result.Status)
	assert.Equal(t, targetPath, result.Target)
	assert.Regexp(t, "^[0-9a-f]{64}$", result.Hash)
	assert.True(t, report.OK())

	// Переменные подставлены, профиль лежит под ключом mcpServers.
	data, err := os.ReadFile(targetPath)
	require.NoError(t, err)
	root, err := document.ParseStrict(data)
	require.NoError(t, err)
	assert.Equal(t, document.Mapping{"mcpServers": expectedDevServers()}, root)

	// Лок-файл создаётся рядом с конфигом и содержит хеш профиля.
	lock, err := checksum.LoadLock(checksum.LockPath(cfgPath))
	require.NoError(t, err)
	assert.Equal(t, result.Hash, lock["dev"])
}

func TestRun_SecondRunSkipsUnchanged(t *testing.T) {
	targetPath := filepath.Join(t.TempDir(), "out.json")
	cfgPath := writeBuildConfig(t, fmt.Sprintf(devConfig, targetPath))

	cfg := &config.BuildConfig{ConfigPath: cfgPath, Algorithm: checksum.AlgorithmSHA256}
	b := newTestBuilder(t, cfg, map[string]string{"BUILD_API_KEY": "tok-123"})

	_, err := b.Run(context.Background())
	require.NoError(t, err)

	report, err := b.Run(context.Background())
	require.NoError(t, err)
	require.Len(t, report.Profiles, 1)
	assert.Equal(t, builder.StatusSkipped, report.Profiles[0].Status)
	assert.Equal(t, "unchanged", report.Profiles[0].Reason)
	assert.True(t, report.OK())
}

func TestRun_MD5Algorithm(t *testing.T) {
	targetPath := filepath.Join(t.TempDir(), "out.json")
	cfgPath := writeBuildConfig(t, fmt.Sprintf(devConfig, targetPath))

	cfg := &config.BuildConfig{ConfigPath: cfgPath, Algorithm: checksum.AlgorithmMD5}
	b := newTestBuilder(t, cfg, map[string]string{"BUILD_API_KEY": "tok-123"})

	report, err := b.Run(context.Background())
	require.NoError(t, err)
	require.Len(t, report.Profiles, 1)
	assert.Regexp(t, "^[0-9a-f]{32}$", report.Profiles[0].Hash)
}

// ── Run: skip and force via mocks ────────────────────────────────────────────

const lockedConfig = `{
  mcpServers: { base: { command: "echo" } },
  profiles: { svc: [] },
  targets: { svc: "/ignored" },
}`

func lockedProfileHash(t *testing.T) string {
	t.Helper()
	built := document.Mapping{"base": document.Mapping{"command": document.String("echo")}}
	hash, err := checksum.Hash(built, checksum.AlgorithmSHA256)
	require.NoError(t, err)
	return hash
}

func TestRun_UnchangedNeverInvokesWrite(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfgPath := writeBuildConfig(t, lockedConfig)
	hash := lockedProfileHash(t)
	require.NoError(t, checksum.SaveLock(checksum.LockPath(cfgPath), map[string]string{"svc": hash}))

	mockTarget := mock.NewMockTarget(ctrl)
	mockTarget.EXPECT().Describe().Return("mock target").AnyTimes()

	mockResolver := mock.NewMockTargetResolver(ctrl)
	mockResolver.EXPECT().Resolve(gomock.Any()).Return(mockTarget, nil)

	cfg := &config.BuildConfig{ConfigPath: cfgPath, Algorithm: checksum.AlgorithmSHA256}
	b := builder.New(cfg, nil, mockResolver, logger.Nop())

	// Write не ожидается: совпадение хеша должно пропустить запись.
	report, err := b.Run(context.Background())
	require.NoError(t, err)
	require.Len(t, report.Profiles, 1)
	assert.Equal(t, builder.StatusSkipped, report.Profiles[0].Status)
	assert.Equal(t, "unchanged", report.Profiles[0].Reason)
	assert.Equal(t, hash, report.Profiles[0].Hash)
}

func TestRun_ForceRewritesUnchanged(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfgPath := writeBuildConfig(t, lockedConfig)
	hash := lockedProfileHash(t)
	require.NoError(t, checksum.SaveLock(checksum.LockPath(cfgPath), map[string]string{"svc": hash}))

	built := document.Mapping{"base": document.Mapping{"command": document.String("echo")}}

	mockTarget := mock.NewMockTarget(ctrl)
	mockTarget.EXPECT().Describe().Return("mock target").AnyTimes()
	mockTarget.EXPECT().Write(gomock.Any(), built).Return(nil).Times(1)

	mockResolver := mock.NewMockTargetResolver(ctrl)
	mockResolver.EXPECT().Resolve(gomock.Any()).Return(mockTarget, nil)

	cfg := &config.BuildConfig{ConfigPath: cfgPath, Algorithm: checksum.AlgorithmSHA256, Force: true}
	b := builder.New(cfg, nil, mockResolver, logger.Nop())

	report, err := b.Run(context.Background())
	require.NoError(t, err)
	require.Len(t, report.Profiles, 1)
	assert.Equal(t, builder.StatusWritten, report.Profiles[0].Status)
}

// ── Run: fatal conditions ────────────────────────────────────────────────────

func TestRun_GhostTemplateAbortsRun(t *testing.T) {
	dir := t.TempDir()
	alphaTarget := filepath.Join(dir, "alpha.json")
	cfgPath := writeBuildConfig(t, fmt.Sprintf(`{
  mcpServers: { base: { command: "echo" } },
  profiles: {
    alpha: [],
    zeta: ["ghost"],
  },
  targets: { alpha: %q, zeta: %q },
}`, alphaTarget, filepath.Join(dir, "zeta.json")))

	cfg := &config.BuildConfig{ConfigPath: cfgPath, Algorithm: checksum.AlgorithmSHA256}
	b := newTestBuilder(t, cfg, nil)

	report, err := b.Run(context.Background())
	assert.Nil(t, report)

	var compErr *builder.CompositionError
	require.ErrorAs(t, err, &compErr)
	assert.Equal(t, "zeta", compErr.Profile)
	assert.Equal(t, "ghost", compErr.Key)

	// Профиль alpha валиден, но записи нет: прогон прерывается до
	// диспетчеризации первой же цели.
	_, statErr := os.Stat(alphaTarget)
	assert.True(t, os.IsNotExist(statErr))
	_, statErr = os.Stat(checksum.LockPath(cfgPath))
	assert.True(t, os.IsNotExist(statErr))
}

func TestRun_MalformedConfig(t *testing.T) {
	cfgPath := writeBuildConfig(t, `{ servers: }`)

	cfg := &config.BuildConfig{ConfigPath: cfgPath, Algorithm: checksum.AlgorithmSHA256}
	b := newTestBuilder(t, cfg, nil)

	report, err := b.Run(context.Background())
	assert.Nil(t, report)

	var parseErr *document.ParseError
	require.ErrorAs(t, err, &parseErr)
}

func TestRun_CorruptLock(t *testing.T) {
	targetPath := filepath.Join(t.TempDir(), "out.json")
	cfgPath := writeBuildConfig(t, fmt.Sprintf(devConfig, targetPath))
	require.NoError(t, os.WriteFile(checksum.LockPath(cfgPath), []byte("not a lock"), 0o644))

	cfg := &config.BuildConfig{ConfigPath: cfgPath, Algorithm: checksum.AlgorithmSHA256}
	b := newTestBuilder(t, cfg, map[string]string{"BUILD_API_KEY": "tok-123"})

	report, err := b.Run(context.Background())
	assert.Nil(t, report)

	var lockErr *checksum.LockError
	require.ErrorAs(t, err, &lockErr)

	_, statErr := os.Stat(targetPath)
	assert.True(t, os.IsNotExist(statErr))
}

func TestRun_UnknownAlgorithm(t *testing.T) {
	targetPath := filepath.Join(t.TempDir(), "out.json")
	cfgPath := writeBuildConfig(t, fmt.Sprintf(devConfig, targetPath))

	cfg := &config.BuildConfig{ConfigPath: cfgPath, Algorithm: "whirlpool"}
	b := newTestBuilder(t, cfg, map[string]string{"BUILD_API_KEY": "tok-123"})

	report, err := b.Run(context.Background())
	assert.Nil(t, report)
	assert.ErrorIs(t, err, checksum.ErrUnknownAlgorithm)
}

// ── Run: per-profile failures ────────────────────────────────────────────────

func TestRun_PartialFailureContinues(t *testing.T) {
	goodTarget := filepath.Join(t.TempDir(), "good.json")
	cfgPath := writeBuildConfig(t, fmt.Sprintf(`{
  mcpServers: { base: { command: "echo" } },
  profiles: {
    bad: [],
    good: [],
  },
  targets: {
    bad: { write: "exit 1" },
    good: %q,
  },
}`, goodTarget))

	cfg := &config.BuildConfig{ConfigPath: cfgPath, Algorithm: checksum.AlgorithmSHA256}
	b := newTestBuilder(t, cfg, nil)

	report, err := b.Run(context.Background())
	require.NoError(t, err)
	require.Len(t, report.Profiles, 2)

	var writeErr *builder.TargetWriteError
	assert.Equal(t, builder.StatusFailed, report.Profiles[0].Status)
	require.ErrorAs(t, report.Profiles[0].Err, &writeErr)

	assert.Equal(t, builder.StatusWritten, report.Profiles[1].Status)
	assert.FileExists(t, goodTarget)
	assert.False(t, report.OK())

	// В лок попадает только успешный профиль.
	lock, lockLoadErr := checksum.LoadLock(checksum.LockPath(cfgPath))
	require.NoError(t, lockLoadErr)
	assert.Contains(t, lock, "good")
	assert.NotContains(t, lock, "bad")
}

func TestRun_FailedProfileKeepsLockedHash(t *testing.T) {
	cfgPath := writeBuildConfig(t, `{
  mcpServers: { base: { command: "echo" } },
  profiles: { svc: [] },
  targets: { svc: { write: "exit 1" } },
}`)
	require.NoError(t, checksum.SaveLock(checksum.LockPath(cfgPath), map[string]string{"svc": "feedface"}))

	cfg := &config.BuildConfig{ConfigPath: cfgPath, Algorithm: checksum.AlgorithmSHA256}
	b := newTestBuilder(t, cfg, nil)

	report, err := b.Run(context.Background())
	require.NoError(t, err)
	require.Len(t, report.Profiles, 1)
	assert.Equal(t, builder.StatusFailed, report.Profiles[0].Status)

	// Последний успешный хеш переживает неудачную запись.
	lock, err := checksum.LoadLock(checksum.LockPath(cfgPath))
	require.NoError(t, err)
	assert.Equal(t, "feedface", lock["svc"])
}

func TestRun_ProfileWithoutTarget(t *testing.T) {
	goodTarget := filepath.Join(t.TempDir(), "good.json")
	cfgPath := writeBuildConfig(t, fmt.Sprintf(`{
  mcpServers: { base: { command: "echo" } },
  profiles: {
    good: [],
    orphan: [],
  },
  targets: { good: %q },
}`, goodTarget))

	cfg := &config.BuildConfig{ConfigPath: cfgPath, Algorithm: checksum.AlgorithmSHA256}
	b := newTestBuilder(t, cfg, nil)

	report, err := b.Run(context.Background())
	require.NoError(t, err)
	require.Len(t, report.Profiles, 2)

	assert.Equal(t, builder.StatusWritten, report.Profiles[0].Status)

	assert.Equal(t, builder.StatusFailed, report.Profiles[1].Status)
	assert.ErrorIs(t, report.Profiles[1].Err, builder.ErrNoTarget)
	assert.False(t, report.OK())

	lock, err := checksum.LoadLock(checksum.LockPath(cfgPath))
	require.NoError(t, err)
	assert.NotContains(t, lock, "orphan")
}

// ── Run: dry run and edge cases ──────────────────────────────────────────────

func TestRun_DryRunWritesNothing(t *testing.T) {
	targetPath := filepath.Join(t.TempDir(), "out.json")
	cfgPath := writeBuildConfig(t, fmt.Sprintf(devConfig, targetPath))

	cfg := &config.BuildConfig{ConfigPath: cfgPath, Algorithm: checksum.AlgorithmSHA256, DryRun: true}
	b := newTestBuilder(t, cfg, map[string]string{"BUILD_API_KEY": "tok-123"})

	report, err := b.Run(context.Background())
	require.NoError(t, err)
	require.Len(t, report.Profiles, 1)
	assert.Equal(t, builder.StatusPlanned, report.Profiles[0].Status)
	assert.True(t, report.OK())

	// Ни цель, ни лок-файл не создаются.
	_, statErr := os.Stat(targetPath)
	assert.True(t, os.IsNotExist(statErr))
	_, statErr = os.Stat(checksum.LockPath(cfgPath))
	assert.True(t, os.IsNotExist(statErr))
}

func TestRun_NoProfiles(t *testing.T) {
	cfgPath := writeBuildConfig(t, `{ mcpServers: { base: { command: "echo" } } }`)

	cfg := &config.BuildConfig{ConfigPath: cfgPath, Algorithm: checksum.AlgorithmSHA256}
	b := newTestBuilder(t, cfg, nil)

	report, err := b.Run(context.Background())
	require.NoError(t, err)
	assert.Empty(t, report.Profiles)
	assert.True(t, report.OK())
}

func TestRun_EmptyProfileComposesNoServers(t *testing.T) {
	cfgPath := writeBuildConfig(t, `{
  profiles: { empty: [] },
  targets: { empty: "/never" },
}`)

	cfg := &config.BuildConfig{ConfigPath: cfgPath, Algorithm: checksum.AlgorithmSHA256}
	b := newTestBuilder(t, cfg, nil)

	report, err := b.Run(context.Background())
	require.NoError(t, err)
	require.Len(t, report.Profiles, 1)
	assert.Equal(t, builder.StatusSkipped, report.Profiles[0].Status)
	assert.Equal(t, "no servers", report.Profiles[0].Reason)
	assert.Empty(t, report.Profiles[0].Hash)
	assert.True(t, report.OK())

	// Пустой профиль не порождает лок-файл.
	_, statErr := os.Stat(checksum.LockPath(cfgPath))
	assert.True(t, os.IsNotExist(statErr))
}

// ── Run: missing variables ───────────────────────────────────────────────────

const missingVarsConfig = `{
  mcpServers: {
    base: {
      command: "echo",
      env: { A: "${MISSING_B}", B: "${MISSING_A}", C: "${MISSING_B}" },
    },
  },
  profiles: { dev: [] },
  targets: { dev: %q },
}`

func TestRun_CollectsMissingVariables(t *testing.T) {
	targetPath := filepath.Join(t.TempDir(), "out.json")
	cfgPath := writeBuildConfig(t, fmt.Sprintf(missingVarsConfig, targetPath))

	cfg := &config.BuildConfig{ConfigPath: cfgPath, Algorithm: checksum.AlgorithmSHA256}
	b := newTestBuilder(t, cfg, map[string]string{})

	report, err := b.Run(context.Background())
	require.NoError(t, err)

	// Имена дедуплицированы и отсортированы.
	assert.Equal(t, []string{"MISSING_A", "MISSING_B"}, report.MissingVars())

	// Профиль всё равно записан, плейсхолдеры остаются как есть.
	require.Len(t, report.Profiles, 1)
	assert.Equal(t, builder.StatusWritten, report.Profiles[0].Status)
	data, err := os.ReadFile(targetPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "${MISSING_A}")

	// Проверка окружения включена: прогон считается неуспешным.
	assert.False(t, report.OK())
}

func TestRun_NoCheckEnvAllowsMissing(t *testing.T) {
	targetPath := filepath.Join(t.TempDir(), "out.json")
	cfgPath := writeBuildConfig(t, fmt.Sprintf(missingVarsConfig, targetPath))

	cfg := &config.BuildConfig{ConfigPath: cfgPath, Algorithm: checksum.AlgorithmSHA256, NoCheckEnv: true}
	b := newTestBuilder(t, cfg, map[string]string{})

	report, err := b.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"MISSING_A", "MISSING_B"}, report.MissingVars())
	assert.True(t, report.OK())
}

// ── BuildProfile ─────────────────────────────────────────────────────────────

func TestBuildProfile_PrintsDocument(t *testing.T) {
	targetPath := filepath.Join(t.TempDir(), "out.json")
	cfgPath := writeBuildConfig(t, fmt.Sprintf(devConfig, targetPath))

	cfg := &config.BuildConfig{ConfigPath: cfgPath, Algorithm: checksum.AlgorithmSHA256}
	b := newTestBuilder(t, cfg, map[string]string{"BUILD_API_KEY": "tok-123"})

	var buf bytes.Buffer
	require.NoError(t, b.BuildProfile("dev", &buf))

	root, err := document.ParseStrict(buf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, expectedDevServers(), root)

	// Цель и лок-файл не трогаются.
	_, statErr := os.Stat(targetPath)
	assert.True(t, os.IsNotExist(statErr))
	_, statErr = os.Stat(checksum.LockPath(cfgPath))
	assert.True(t, os.IsNotExist(statErr))
}

func TestBuildProfile_UnknownProfile(t *testing.T) {
	cfgPath := writeBuildConfig(t, `{ profiles: { dev: [] } }`)

	cfg := &config.BuildConfig{ConfigPath: cfgPath, Algorithm: checksum.AlgorithmSHA256}
	b := newTestBuilder(t, cfg, nil)

	var buf bytes.Buffer
	err := b.BuildProfile("nope", &buf)

	var compErr *builder.CompositionError
	require.ErrorAs(t, err, &compErr)
	assert.Equal(t, "nope", compErr.Key)
	assert.Zero(t, buf.Len())
}

func TestBuildProfile_MissingVariables(t *testing.T) {
	targetPath := filepath.Join(t.TempDir(), "out.json")
	cfgPath := writeBuildConfig(t, fmt.Sprintf(devConfig, targetPath))

	cfg := &config.BuildConfig{ConfigPath: cfgPath, Algorithm: checksum.AlgorithmSHA256}
	b := newTestBuilder(t, cfg, map[string]string{})

	var buf bytes.Buffer
	err := b.BuildProfile("dev", &buf)
	require.ErrorIs(t, err, builder.ErrMissingVariables)
	assert.Contains(t, err.Error(), "BUILD_API_KEY")

	// Документ печатается до проверки окружения.
	assert.Positive(t, buf.Len())
}

func TestBuildProfile_NoCheckEnvAllowsMissing(t *testing.T) {
	targetPath := filepath.Join(t.TempDir(), "out.json")
	cfgPath := writeBuildConfig(t, fmt.Sprintf(devConfig, targetPath))

	cfg := &config.BuildConfig{ConfigPath: cfgPath, Algorithm: checksum.AlgorithmSHA256, NoCheckEnv: true}
	b := newTestBuilder(t, cfg, map[string]string{})

	var buf bytes.Buffer
	require.NoError(t, b.BuildProfile("dev", &buf))
	assert.Contains(t, buf.String(), "${BUILD_API_KEY}")
}

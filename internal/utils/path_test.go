package utils

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolvePath_ExpandsHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := ResolvePath("~/.claude/mcp.json")

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".claude", "mcp.json"), got)
}

func TestResolvePath_BareTilde(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := ResolvePath("~")

	require.NoError(t, err)
	assert.Equal(t, home, got)
}

func TestResolvePath_ExpandsEnvVars(t *testing.T) {
	t.Setenv("CONFIG_DIR", "/etc/buildmcp")

	got, err := ResolvePath("$CONFIG_DIR/mcp.json")

	require.NoError(t, err)
	assert.Equal(t, "/etc/buildmcp/mcp.json", got)
}

func TestResolvePath_AbsolutePassesThrough(t *testing.T) {
	got, err := ResolvePath("/tmp/out.json")

	require.NoError(t, err)
	assert.Equal(t, "/tmp/out.json", got)
}

func TestResolvePath_RelativeBecomesAbsolute(t *testing.T) {
	got, err := ResolvePath("configs/mcp.json")

	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(got))
}

func TestResolvePath_EmptyFails(t *testing.T) {
	_, err := ResolvePath("")
	assert.Error(t, err)
}

// TestResolvePath_TildeInMiddleUntouched verifies only a leading tilde is
// treated as the home directory.
func TestResolvePath_TildeInMiddleUntouched(t *testing.T) {
	got, err := ResolvePath("/data/~backup/file")

	require.NoError(t, err)
	assert.Equal(t, "/data/~backup/file", got)
}

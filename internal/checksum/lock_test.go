package checksum

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadLock_AbsentFileIsEmpty(t *testing.T) {
	lock, err := LoadLock(filepath.Join(t.TempDir(), "mcp.lock"))

	require.NoError(t, err)
	assert.Empty(t, lock)
	assert.NotNil(t, lock)
}

func TestLoadLock_ReadsExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mcp.lock")
	require.NoError(t, os.WriteFile(path, []byte(`{"default":"aa11","minimal":"bb22"}`), 0o644))

	lock, err := LoadLock(path)

	require.NoError(t, err)
	assert.Equal(t, map[string]string{"default": "aa11", "minimal": "bb22"}, lock)
}

// TestLoadLock_CorruptionSurfaces verifies that malformed lock content is a
// LockError, never silently treated as empty.
func TestLoadLock_CorruptionSurfaces(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "invalid syntax", content: `{"default": `},
		{name: "wrong value type", content: `{"default": 42}`},
		{name: "top level not a mapping", content: `["default"]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "mcp.lock")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o644))

			lock, err := LoadLock(path)

			assert.Nil(t, lock)
			var lockErr *LockError
			require.ErrorAs(t, err, &lockErr)
			assert.Equal(t, path, lockErr.Path)
		})
	}
}

func TestSaveLock_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mcp.lock")
	lock := map[string]string{"default": "aa11", "minimal": "bb22"}

	require.NoError(t, SaveLock(path, lock))

	loaded, err := LoadLock(path)
	require.NoError(t, err)
	assert.Equal(t, lock, loaded)
}

func TestSaveLock_SortedKeysAndTrailingNewline(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mcp.lock")

	require.NoError(t, SaveLock(path, map[string]string{"zeta": "2", "alpha": "1"}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"alpha\": \"1\",\n  \"zeta\": \"2\"\n}\n", string(data))
}

func TestSaveLock_LeavesNoTempFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "mcp.lock")

	require.NoError(t, SaveLock(path, map[string]string{"p": "h"}))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "mcp.lock", entries[0].Name())
}

func TestSaveLock_OverwritesAtomically(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mcp.lock")
	require.NoError(t, SaveLock(path, map[string]string{"p": "old"}))

	require.NoError(t, SaveLock(path, map[string]string{"p": "new"}))

	lock, err := LoadLock(path)
	require.NoError(t, err)
	assert.Equal(t, "new", lock["p"])
}

func TestLockPath_SwapsExtension(t *testing.T) {
	assert.Equal(t, "/home/u/.claude/mcp.lock", LockPath("/home/u/.claude/mcp.json"))
	assert.Equal(t, "/etc/custom.lock", LockPath("/etc/custom.json"))
	assert.Equal(t, "/etc/bare.lock", LockPath("/etc/bare"))
}

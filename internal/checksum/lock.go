package checksum

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// LockPath returns the lock document path for a configuration path: the
// same location with the extension swapped for ".lock" (mcp.json sits next
// to mcp.lock).
func LockPath(configPath string) string {
	ext := filepath.Ext(configPath)
	return strings.TrimSuffix(configPath, ext) + ".lock"
}

// LoadLock reads the lock document at path. An absent file yields an empty
// mapping; content that exists but does not parse as a flat string-to-string
// mapping in the strict dialect yields a *LockError.
func LoadLock(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return map[string]string{}, nil
		}
		return nil, &LockError{Path: path, Err: err}
	}

	lock := map[string]string{}
	if err := json.Unmarshal(data, &lock); err != nil {
		return nil, &LockError{Path: path, Err: err}
	}
	return lock, nil
}

// SaveLock writes the lock mapping to path in the strict dialect with sorted
// keys. The write goes to a temporary file first and is renamed into place so
// an interrupted run never leaves a truncated lock document behind.
func SaveLock(path string, lock map[string]string) error {
	data, err := json.MarshalIndent(lock, "", "  ")
	if err != nil {
		return fmt.Errorf("encode lock: %w", err)
	}
	data = append(data, '\n')

	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return fmt.Errorf("write lock: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("replace lock: %w", err)
	}
	return nil
}

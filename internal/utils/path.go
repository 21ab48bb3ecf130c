// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for resolving shell-style filesystem paths and for
// masking sensitive values before they reach logs or screens.
package utils

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ResolvePath expands a shell-style path expression into an absolute path.
//
// Behavior:
//   - A leading "~" or "~/" is replaced with the current user's home
//     directory
//   - $VAR and ${VAR} references are expanded from the process environment
//     (unset variables expand to the empty string, as in a shell)
//   - The result is converted to an absolute path
//
// Parameters:
//
//	path - shell-style path expression, e.g. "~/.claude/mcp.json"
//
// Returns:
//
//	string - absolute file path
//	error  - when the expression is empty or the home directory is unknown
func ResolvePath(path string) (string, error) {
	if path == "" {
		return "", errors.New("empty path")
	}

	expanded := path
	if expanded == "~" || strings.HasPrefix(expanded, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if expanded == "~" {
			expanded = home
		} else {
			expanded = filepath.Join(home, expanded[2:])
		}
	}

	expanded = os.ExpandEnv(expanded)

	abs, err := filepath.Abs(expanded)
	if err != nil {
		return "", fmt.Errorf("absolute path: %w", err)
	}
	return abs, nil
}

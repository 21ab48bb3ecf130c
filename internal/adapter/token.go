// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"os"
	"strings"

	"github.com/MKhiriev/buildmcp/internal/utils"
)

// ResolveSessionToken picks the better-auth session token to authenticate
// with. An explicitly configured token wins; otherwise the cookie file is
// read and its trimmed contents used. A missing or unreadable cookie file is
// not an error on its own, only the absence of any token source is.
func ResolveSessionToken(token, cookieFile string) (string, error) {
	if token != "" {
		return token, nil
	}

	if cookieFile != "" {
		path, err := utils.ResolvePath(cookieFile)
		if err == nil {
			if raw, readErr := os.ReadFile(path); readErr == nil {
				if cookie := strings.TrimSpace(string(raw)); cookie != "" {
					return cookie, nil
				}
			}
		}
	}

	return "", ErrNoSessionToken
}

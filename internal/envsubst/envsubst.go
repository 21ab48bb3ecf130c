// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package envsubst rewrites ${NAME} placeholders in the string leaves of a
// value tree using an injected environment mapping. The process environment
// is never read here; callers collect it once (see [EnvMap]) so substitution
// stays deterministic under test.
package envsubst

import (
	"regexp"
	"strings"

	"github.com/MKhiriev/buildmcp/internal/document"
)

// placeholderRe matches ${IDENTIFIER} where IDENTIFIER is letters, digits
// and underscores, not starting with a digit.
var placeholderRe = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)\}`)

// Substitute returns a copy of v with every resolvable ${NAME} placeholder
// in its string leaves replaced by the environment's value for NAME.
//
// A placeholder whose name is absent from env stays in the output verbatim
// and its name is appended to the returned missing list; the same name can
// appear once per unresolved occurrence, so callers deduplicate for
// reporting. Mapping keys are never substituted and non-string leaves pass
// through unchanged. Substitution itself never fails.
func Substitute(v document.Value, env map[string]string) (document.Value, []string) {
	var missing []string
	out := walk(v, env, &missing)
	return out, missing
}

func walk(v document.Value, env map[string]string, missing *[]string) document.Value {
	switch t := v.(type) {
	case document.String:
		return document.String(substituteString(string(t), env, missing))
	case document.Sequence:
		out := make(document.Sequence, len(t))
		for i, el := range t {
			out[i] = walk(el, env, missing)
		}
		return out
	case document.Mapping:
		out := make(document.Mapping, len(t))
		for k, el := range t {
			out[k] = walk(el, env, missing)
		}
		return out
	default:
		return v
	}
}

func substituteString(s string, env map[string]string, missing *[]string) string {
	return placeholderRe.ReplaceAllStringFunc(s, func(match string) string {
		name := match[2 : len(match)-1]
		if value, ok := env[name]; ok {
			return value
		}
		*missing = append(*missing, name)
		return match
	})
}

// EnvMap converts an os.Environ-style KEY=VALUE slice into a mapping
// suitable for [Substitute].
func EnvMap(environ []string) map[string]string {
	env := make(map[string]string, len(environ))
	for _, entry := range environ {
		if k, v, ok := strings.Cut(entry, "="); ok {
			env[k] = v
		}
	}
	return env
}

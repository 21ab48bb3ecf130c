// Package checksum canonicalizes value trees into stable content hashes and
// maintains the lock document that maps profile names to the hash of their
// last dispatched build.
package checksum

import (
	"crypto/md5"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/MKhiriev/buildmcp/internal/document"
)

// Supported digest algorithms. AlgorithmSHA256 is the default everywhere;
// AlgorithmMD5 exists as an explicit short legacy digest and is never used
// for lock comparisons unless a caller asks for it.
const (
	AlgorithmSHA256 = "sha256"
	AlgorithmMD5    = "md5"
)

// Canonicalize returns the deterministic byte encoding of v used for
// hashing: mapping keys sorted lexicographically, fixed "," and ":"
// separators, no whitespace. Two semantically equal values canonicalize
// identically regardless of key insertion order.
func Canonicalize(v document.Value) ([]byte, error) {
	data, err := document.SerializeStrict(v)
	if err != nil {
		return nil, fmt.Errorf("canonicalize: %w", err)
	}
	return data, nil
}

// Hash canonicalizes v and digests it with the named algorithm, returning
// the lowercase hexadecimal digest.
func Hash(v document.Value, algorithm string) (string, error) {
	data, err := Canonicalize(v)
	if err != nil {
		return "", err
	}
	switch algorithm {
	case AlgorithmSHA256:
		sum := sha256.Sum256(data)
		return hex.EncodeToString(sum[:]), nil
	case AlgorithmMD5:
		sum := md5.Sum(data)
		return hex.EncodeToString(sum[:]), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownAlgorithm, algorithm)
	}
}

// HashPaths resolves each dot-separated path against doc, collects the
// resolved values into a sequence preserving the caller's path order, and
// hashes that sequence as one unit. A missing path is a lookup failure, not
// a skipped element.
func HashPaths(doc document.Value, paths []string, algorithm string) (string, error) {
	collected := make(document.Sequence, 0, len(paths))
	for _, path := range paths {
		v, err := Lookup(doc, path)
		if err != nil {
			return "", err
		}
		collected = append(collected, v)
	}
	return Hash(collected, algorithm)
}

// Lookup traverses doc along a dot-separated key path. Traversal follows
// mapping keys only; there are no wildcards or sequence indexes.
func Lookup(doc document.Value, path string) (document.Value, error) {
	current := doc
	for _, key := range strings.Split(path, ".") {
		m, ok := current.(document.Mapping)
		if !ok {
			return nil, fmt.Errorf("%w: %q traverses a %s", ErrPathNotFound, path, document.TypeName(current))
		}
		next, ok := m[key]
		if !ok {
			return nil, fmt.Errorf("%w: %q (missing key %q)", ErrPathNotFound, path, key)
		}
		current = next
	}
	return current, nil
}

// Compare reports whether a freshly computed profile hash equals the locked
// one. Callers pass the zero value for locked when the lock document has no
// entry; absence always compares as changed.
func Compare(built, locked string) bool {
	return locked != "" && built == locked
}

package checksum

import (
	"strings"
	"testing"

	"github.com/MKhiriev/buildmcp/internal/document"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCanonicalize_OrderInvariant verifies that two mappings with the same
// pairs canonicalize identically regardless of construction order.
func TestCanonicalize_OrderInvariant(t *testing.T) {
	first := document.Mapping{}
	first["alpha"] = document.String("1")
	first["beta"] = document.Number("2")
	first["gamma"] = document.Sequence{document.Bool(true)}

	second := document.Mapping{}
	second["gamma"] = document.Sequence{document.Bool(true)}
	second["beta"] = document.Number("2")
	second["alpha"] = document.String("1")

	a, err := Canonicalize(first)
	require.NoError(t, err)
	b, err := Canonicalize(second)
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestCanonicalize_NoWhitespace(t *testing.T) {
	out, err := Canonicalize(document.Mapping{"a": document.Sequence{document.Number("1"), document.Number("2")}})
	require.NoError(t, err)
	assert.Equal(t, `{"a":[1,2]}`, string(out))
}

// TestHash_Deterministic verifies repeatability and sensitivity: the same
// value hashes identically twice, and changing any leaf changes the digest.
func TestHash_Deterministic(t *testing.T) {
	v := document.Mapping{
		"server": document.Mapping{"command": document.String("npx"), "port": document.Number("8080")},
	}

	h1, err := Hash(v, AlgorithmSHA256)
	require.NoError(t, err)
	h2, err := Hash(v, AlgorithmSHA256)
	require.NoError(t, err)
	assert.Equal(t, h1, h2)
	assert.Len(t, h1, 64)
	assert.Equal(t, strings.ToLower(h1), h1)

	changed := document.Mapping{
		"server": document.Mapping{"command": document.String("uvx"), "port": document.Number("8080")},
	}
	h3, err := Hash(changed, AlgorithmSHA256)
	require.NoError(t, err)
	assert.NotEqual(t, h1, h3)
}

func TestHash_MD5IsExplicitAlternative(t *testing.T) {
	v := document.Mapping{"a": document.String("b")}

	h, err := Hash(v, AlgorithmMD5)
	require.NoError(t, err)
	assert.Len(t, h, 32)
}

func TestHash_UnknownAlgorithm(t *testing.T) {
	_, err := Hash(document.Null{}, "crc32")
	assert.ErrorIs(t, err, ErrUnknownAlgorithm)
}

// ── path hashing ─────────────────────────────────────────────────────────────

func TestHashPaths_OrderMatters(t *testing.T) {
	doc := document.Mapping{
		"mcpServers": document.Mapping{"github": document.Mapping{"command": document.String("npx")}},
		"templates":  document.Mapping{"jira": document.Mapping{"command": document.String("uvx")}},
	}

	forward, err := HashPaths(doc, []string{"mcpServers", "templates"}, AlgorithmSHA256)
	require.NoError(t, err)
	reversed, err := HashPaths(doc, []string{"templates", "mcpServers"}, AlgorithmSHA256)
	require.NoError(t, err)

	assert.NotEqual(t, forward, reversed)
}

func TestHashPaths_DotTraversal(t *testing.T) {
	doc := document.Mapping{
		"a": document.Mapping{"b": document.Mapping{"c": document.String("leaf")}},
	}

	h, err := HashPaths(doc, []string{"a.b.c"}, AlgorithmSHA256)
	require.NoError(t, err)

	direct, err := Hash(document.Sequence{document.String("leaf")}, AlgorithmSHA256)
	require.NoError(t, err)
	assert.Equal(t, direct, h)
}

func TestHashPaths_MissingPathFails(t *testing.T) {
	doc := document.Mapping{"a": document.Mapping{"b": document.String("x")}}

	_, err := HashPaths(doc, []string{"a.b", "a.ghost"}, AlgorithmSHA256)

	require.ErrorIs(t, err, ErrPathNotFound)
	assert.Contains(t, err.Error(), "a.ghost")
}

func TestLookup_TraversingLeafFails(t *testing.T) {
	doc := document.Mapping{"a": document.String("leaf")}

	_, err := Lookup(doc, "a.deeper")

	require.ErrorIs(t, err, ErrPathNotFound)
	assert.Contains(t, err.Error(), "string")
}

// ── comparison ───────────────────────────────────────────────────────────────

func TestCompare(t *testing.T) {
	tests := []struct {
		name     string
		built    string
		locked   string
		expected bool
	}{
		{name: "equal hashes match", built: "abc123", locked: "abc123", expected: true},
		{name: "different hashes differ", built: "abc123", locked: "def456", expected: false},
		{name: "absent lock entry is changed", built: "abc123", locked: "", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Compare(tt.built, tt.locked))
		})
	}
}

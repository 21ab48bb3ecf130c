package document

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParseStrict_Scalars verifies that every scalar kind decodes to its
// variant type.
func TestParseStrict_Scalars(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Value
	}{
		{name: "string", input: `"hello"`, expected: String("hello")},
		{name: "integer", input: `42`, expected: Number("42")},
		{name: "float keeps literal", input: `1.50`, expected: Number("1.50")},
		{name: "negative exponent", input: `-2e10`, expected: Number("-2e10")},
		{name: "true", input: `true`, expected: Bool(true)},
		{name: "false", input: `false`, expected: Bool(false)},
		{name: "null", input: `null`, expected: Null{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := ParseStrict([]byte(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, v)
		})
	}
}

func TestParseStrict_Nested(t *testing.T) {
	input := `{"command":"npx","args":["-y","server"],"env":{"DEBUG":null},"port":8080,"on":true}`

	v, err := ParseStrict([]byte(input))
	require.NoError(t, err)

	expected := Mapping{
		"command": String("npx"),
		"args":    Sequence{String("-y"), String("server")},
		"env":     Mapping{"DEBUG": Null{}},
		"port":    Number("8080"),
		"on":      Bool(true),
	}
	assert.Equal(t, expected, v)
}

func TestParseStrict_EmptyContainers(t *testing.T) {
	v, err := ParseStrict([]byte(`{"a":[],"b":{}}`))
	require.NoError(t, err)
	assert.Equal(t, Mapping{"a": Sequence{}, "b": Mapping{}}, v)
}

// TestParseStrict_Malformed verifies that broken input fails with a
// *ParseError carrying a position hint and never returns a partial tree.
func TestParseStrict_Malformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "empty input", input: ``},
		{name: "truncated mapping", input: `{"a": 1`},
		{name: "missing colon", input: `{"a" 1}`},
		{name: "single quotes rejected", input: `{'a': 1}`},
		{name: "comment rejected", input: "{\n// nope\n\"a\": 1}"},
		{name: "trailing comma rejected", input: `{"a": 1,}`},
		{name: "trailing data", input: `{"a": 1} {"b": 2}`},
		{name: "bare word", input: `nope`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := ParseStrict([]byte(tt.input))

			assert.Nil(t, v)
			var parseErr *ParseError
			require.ErrorAs(t, err, &parseErr)
			assert.Greater(t, parseErr.Line, 0)
			assert.Greater(t, parseErr.Col, 0)
			assert.Contains(t, err.Error(), "parse error at line")
		})
	}
}

func TestParseStrict_ErrorPosition(t *testing.T) {
	_, err := ParseStrict([]byte("{\n  \"a\": !\n}"))

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, 2, parseErr.Line)
}

// ── serialization ────────────────────────────────────────────────────────────

func TestSerializeStrict_SortsKeysAndCompacts(t *testing.T) {
	v := Mapping{
		"zeta":  Number("1"),
		"alpha": String("x"),
		"mid":   Sequence{Bool(true), Null{}},
	}

	out, err := SerializeStrict(v)
	require.NoError(t, err)
	assert.Equal(t, `{"alpha":"x","mid":[true,null],"zeta":1}`, string(out))
}

func TestSerializeStrict_EscapesStrings(t *testing.T) {
	out, err := SerializeStrict(Mapping{"k": String("a\"b\\c\nd\te")})
	require.NoError(t, err)
	assert.Equal(t, `{"k":"a\"b\\c\nd\te"}`, string(out))
}

func TestSerializeStrict_RejectsBadNumberLiteral(t *testing.T) {
	_, err := SerializeStrict(Mapping{"n": Number("01.x")})
	assert.Error(t, err)
}

// TestSerializeStrict_RoundTrip checks that parse(serialize(V)) == V for a
// representative value tree.
func TestSerializeStrict_RoundTrip(t *testing.T) {
	v := Mapping{
		"mcpServers": Mapping{
			"github": Mapping{
				"command": String("npx"),
				"args":    Sequence{String("-y"), String("@modelcontextprotocol/server-github")},
				"env":     Mapping{"GITHUB_TOKEN": String("${GITHUB_TOKEN}")},
			},
		},
		"count":   Number("3"),
		"enabled": Bool(true),
		"extra":   Null{},
		"empty":   Sequence{},
		"unicode": String("héllo ∀x"),
	}

	out, err := SerializeStrict(v)
	require.NoError(t, err)

	back, err := ParseStrict(out)
	require.NoError(t, err)
	assert.Equal(t, v, back)
}

func TestSerializeIndent_Shape(t *testing.T) {
	v := Mapping{"b": Sequence{Number("1")}, "a": String("x")}

	out, err := SerializeIndent(v)
	require.NoError(t, err)

	expected := "{\n  \"a\": \"x\",\n  \"b\": [\n    1\n  ]\n}\n"
	assert.Equal(t, expected, string(out))
}

func TestSerializeIndent_RoundTrip(t *testing.T) {
	v := Mapping{"servers": Mapping{"a": Mapping{"command": String("uvx")}}}

	out, err := SerializeIndent(v)
	require.NoError(t, err)

	back, err := ParseStrict(out)
	require.NoError(t, err)
	assert.Equal(t, v, back)
}

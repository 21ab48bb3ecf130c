package document

import (
	"bytes"
	"fmt"
	"regexp"
	"sort"
)

// numberRe matches the JSON number grammar. Serialization validates Number
// literals against it so a hand-built tree cannot smuggle garbage into
// output or hashes.
var numberRe = regexp.MustCompile(`^-?(0|[1-9][0-9]*)(\.[0-9]+)?([eE][+-]?[0-9]+)?$`)

// SerializeStrict encodes v as compact strict-dialect text: mapping keys
// sorted lexicographically, "," and ":" separators, no whitespace. The
// encoding is deterministic and round-trips through [ParseStrict].
func SerializeStrict(v Value) ([]byte, error) {
	var buf bytes.Buffer
	if err := writeValue(&buf, v, "", ""); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// SerializeIndent encodes v as strict-dialect text indented with two spaces
// and terminated by a newline, for human-facing files. Mapping keys are
// sorted the same way as in [SerializeStrict].
func SerializeIndent(v Value) ([]byte, error) {
	var buf bytes.Buffer
	if err := writeValue(&buf, v, "", "  "); err != nil {
		return nil, err
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

func writeValue(buf *bytes.Buffer, v Value, prefix, indent string) error {
	switch t := v.(type) {
	case String:
		writeQuoted(buf, string(t))
	case Number:
		if !numberRe.MatchString(string(t)) {
			return fmt.Errorf("invalid number literal %q", string(t))
		}
		buf.WriteString(string(t))
	case Bool:
		if t {
			buf.WriteString("true")
		} else {
			buf.WriteString("false")
		}
	case Null:
		buf.WriteString("null")
	case Sequence:
		if len(t) == 0 {
			buf.WriteString("[]")
			return nil
		}
		inner := prefix + indent
		buf.WriteByte('[')
		for i, el := range t {
			if i > 0 {
				buf.WriteByte(',')
			}
			if indent != "" {
				buf.WriteByte('\n')
				buf.WriteString(inner)
			}
			if err := writeValue(buf, el, inner, indent); err != nil {
				return err
			}
		}
		if indent != "" {
			buf.WriteByte('\n')
			buf.WriteString(prefix)
		}
		buf.WriteByte(']')
	case Mapping:
		if len(t) == 0 {
			buf.WriteString("{}")
			return nil
		}
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		inner := prefix + indent
		buf.WriteByte('{')
		for i, k := range keys {
			if i > 0 {
				buf.WriteByte(',')
			}
			if indent != "" {
				buf.WriteByte('\n')
				buf.WriteString(inner)
			}
			writeQuoted(buf, k)
			buf.WriteByte(':')
			if indent != "" {
				buf.WriteByte(' ')
			}
			if err := writeValue(buf, t[k], inner, indent); err != nil {
				return err
			}
		}
		if indent != "" {
			buf.WriteByte('\n')
			buf.WriteString(prefix)
		}
		buf.WriteByte('}')
	default:
		return fmt.Errorf("cannot serialize value of type %T", v)
	}
	return nil
}

const hexDigits = "0123456789abcdef"

// writeQuoted writes s as a JSON string literal. UTF-8 passes through
// unescaped; control characters use \uXXXX or the short escapes.
func writeQuoted(buf *bytes.Buffer, s string) {
	buf.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			buf.WriteString(`\"`)
		case '\\':
			buf.WriteString(`\\`)
		case '\n':
			buf.WriteString(`\n`)
		case '\r':
			buf.WriteString(`\r`)
		case '\t':
			buf.WriteString(`\t`)
		default:
			if r < 0x20 {
				buf.WriteString(`\u00`)
				buf.WriteByte(hexDigits[r>>4])
				buf.WriteByte(hexDigits[r&0xf])
			} else {
				buf.WriteRune(r)
			}
		}
	}
	buf.WriteByte('"')
}

package document

import (
	"fmt"
	"strings"
	"unicode/utf16"
	"unicode/utf8"
)

// ParseRelaxed parses data as the relaxed configuration dialect: strict JSON
// extended with // line comments, /* block */ comments, trailing commas in
// mappings and sequences, unquoted identifier keys and single-quoted
// strings. The relaxed dialect is input-only; serialization always emits the
// strict dialect. Malformed input yields a *ParseError with a position hint.
func ParseRelaxed(data []byte) (Value, error) {
	p := &relaxedParser{data: data, line: 1, col: 1}
	if err := p.skipTrivia(); err != nil {
		return nil, err
	}
	v, err := p.parseValue()
	if err != nil {
		return nil, err
	}
	if err := p.skipTrivia(); err != nil {
		return nil, err
	}
	if p.pos < len(p.data) {
		return nil, p.errorf("unexpected data after top-level value")
	}
	return v, nil
}

type relaxedParser struct {
	data []byte
	pos  int
	line int
	col  int
}

func (p *relaxedParser) errorf(format string, args ...any) error {
	return &ParseError{Line: p.line, Col: p.col, Msg: fmt.Sprintf(format, args...)}
}

func (p *relaxedParser) errorfAt(line, col int, format string, args ...any) error {
	return &ParseError{Line: line, Col: col, Msg: fmt.Sprintf(format, args...)}
}

// peek returns the next byte without consuming it.
func (p *relaxedParser) peek() (byte, bool) {
	if p.pos >= len(p.data) {
		return 0, false
	}
	return p.data[p.pos], true
}

// next consumes one byte and keeps line/column bookkeeping current.
func (p *relaxedParser) next() byte {
	b := p.data[p.pos]
	p.pos++
	if b == '\n' {
		p.line++
		p.col = 1
	} else {
		p.col++
	}
	return b
}

// skipTrivia consumes whitespace and comments. Comments never reach the
// value tree. An unterminated block comment is a parse error.
func (p *relaxedParser) skipTrivia() error {
	for {
		b, ok := p.peek()
		if !ok {
			return nil
		}
		switch {
		case b == ' ' || b == '\t' || b == '\r' || b == '\n':
			p.next()
		case b == '/':
			startLine, startCol := p.line, p.col
			if p.pos+1 >= len(p.data) {
				return p.errorf("unexpected character '/'")
			}
			switch p.data[p.pos+1] {
			case '/':
				for {
					b, ok := p.peek()
					if !ok || b == '\n' {
						break
					}
					p.next()
				}
			case '*':
				p.next() // '/'
				p.next() // '*'
				closed := false
				for p.pos < len(p.data) {
					if p.data[p.pos] == '*' && p.pos+1 < len(p.data) && p.data[p.pos+1] == '/' {
						p.next()
						p.next()
						closed = true
						break
					}
					p.next()
				}
				if !closed {
					return p.errorfAt(startLine, startCol, "unterminated block comment")
				}
			default:
				return p.errorf("unexpected character '/'")
			}
		default:
			return nil
		}
	}
}

func (p *relaxedParser) parseValue() (Value, error) {
	b, ok := p.peek()
	if !ok {
		return nil, p.errorf("unexpected end of input")
	}
	switch {
	case b == '{':
		return p.parseMapping()
	case b == '[':
		return p.parseSequence()
	case b == '"' || b == '\'':
		return p.parseString(b)
	case b == '-' || (b >= '0' && b <= '9'):
		return p.parseNumber()
	case isIdentStart(b):
		return p.parseWord()
	default:
		return nil, p.errorf("unexpected character %q", rune(b))
	}
}

func (p *relaxedParser) parseMapping() (Value, error) {
	p.next() // '{'
	m := Mapping{}
	for {
		if err := p.skipTrivia(); err != nil {
			return nil, err
		}
		b, ok := p.peek()
		if !ok {
			return nil, p.errorf("unterminated mapping")
		}
		if b == '}' {
			p.next()
			return m, nil
		}

		var key string
		switch {
		case b == '"' || b == '\'':
			s, err := p.parseString(b)
			if err != nil {
				return nil, err
			}
			key = string(s.(String))
		case isIdentStart(b):
			key = p.parseIdent()
		default:
			return nil, p.errorf("expected mapping key, found %q", rune(b))
		}

		if err := p.skipTrivia(); err != nil {
			return nil, err
		}
		b, ok = p.peek()
		if !ok || b != ':' {
			return nil, p.errorf("expected ':' after mapping key %q", key)
		}
		p.next()

		if err := p.skipTrivia(); err != nil {
			return nil, err
		}
		val, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		m[key] = val

		if err := p.skipTrivia(); err != nil {
			return nil, err
		}
		b, ok = p.peek()
		switch {
		case !ok:
			return nil, p.errorf("unterminated mapping")
		case b == ',':
			p.next() // trailing comma before '}' is handled by the loop head
		case b == '}':
			// closing brace handled by the loop head
		default:
			return nil, p.errorf("expected ',' or '}' in mapping, found %q", rune(b))
		}
	}
}

func (p *relaxedParser) parseSequence() (Value, error) {
	p.next() // '['
	seq := Sequence{}
	for {
		if err := p.skipTrivia(); err != nil {
			return nil, err
		}
		b, ok := p.peek()
		if !ok {
			return nil, p.errorf("unterminated sequence")
		}
		if b == ']' {
			p.next()
			return seq, nil
		}

		el, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		seq = append(seq, el)

		if err := p.skipTrivia(); err != nil {
			return nil, err
		}
		b, ok = p.peek()
		switch {
		case !ok:
			return nil, p.errorf("unterminated sequence")
		case b == ',':
			p.next() // trailing comma before ']' is handled by the loop head
		case b == ']':
			// closing bracket handled by the loop head
		default:
			return nil, p.errorf("expected ',' or ']' in sequence, found %q", rune(b))
		}
	}
}

// parseString consumes a string literal delimited by quote, which is either
// '"' or '\''. Escape sequences match strict JSON, plus \' so single-quoted
// strings can contain their own delimiter.
func (p *relaxedParser) parseString(quote byte) (Value, error) {
	startLine, startCol := p.line, p.col
	p.next() // opening quote
	var sb strings.Builder
	for {
		b, ok := p.peek()
		if !ok {
			return nil, p.errorfAt(startLine, startCol, "unterminated string")
		}
		switch {
		case b == quote:
			p.next()
			return String(sb.String()), nil
		case b == '\\':
			p.next()
			if err := p.parseEscape(&sb); err != nil {
				return nil, err
			}
		case b < 0x20:
			return nil, p.errorf("control character in string")
		default:
			sb.WriteByte(p.next())
		}
	}
}

func (p *relaxedParser) parseEscape(sb *strings.Builder) error {
	b, ok := p.peek()
	if !ok {
		return p.errorf("unterminated escape sequence")
	}
	switch b {
	case '"', '\'', '\\', '/':
		sb.WriteByte(p.next())
	case 'b':
		p.next()
		sb.WriteByte('\b')
	case 'f':
		p.next()
		sb.WriteByte('\f')
	case 'n':
		p.next()
		sb.WriteByte('\n')
	case 'r':
		p.next()
		sb.WriteByte('\r')
	case 't':
		p.next()
		sb.WriteByte('\t')
	case 'u':
		p.next()
		r1, err := p.parseHex4()
		if err != nil {
			return err
		}
		if utf16.IsSurrogate(r1) {
			// A high surrogate may pair with a following \uXXXX low
			// surrogate; anything else decodes to U+FFFD like encoding/json.
			if p.pos+1 < len(p.data) && p.data[p.pos] == '\\' && p.data[p.pos+1] == 'u' {
				save := *p
				p.next()
				p.next()
				r2, err := p.parseHex4()
				if err != nil {
					return err
				}
				if dec := utf16.DecodeRune(r1, r2); dec != utf8.RuneError {
					sb.WriteRune(dec)
					return nil
				}
				*p = save
			}
			sb.WriteRune(utf8.RuneError)
			return nil
		}
		sb.WriteRune(r1)
	default:
		return p.errorf("invalid escape character %q", rune(b))
	}
	return nil
}

func (p *relaxedParser) parseHex4() (rune, error) {
	var r rune
	for i := 0; i < 4; i++ {
		b, ok := p.peek()
		if !ok {
			return 0, p.errorf("unterminated \\u escape")
		}
		var d rune
		switch {
		case b >= '0' && b <= '9':
			d = rune(b - '0')
		case b >= 'a' && b <= 'f':
			d = rune(b-'a') + 10
		case b >= 'A' && b <= 'F':
			d = rune(b-'A') + 10
		default:
			return 0, p.errorf("invalid hex digit %q in \\u escape", rune(b))
		}
		p.next()
		r = r<<4 | d
	}
	return r, nil
}

func (p *relaxedParser) parseNumber() (Value, error) {
	startLine, startCol := p.line, p.col
	start := p.pos

	if b, ok := p.peek(); ok && b == '-' {
		p.next()
	}

	b, ok := p.peek()
	switch {
	case !ok:
		return nil, p.errorfAt(startLine, startCol, "invalid number")
	case b == '0':
		p.next()
	case b >= '1' && b <= '9':
		for {
			b, ok := p.peek()
			if !ok || b < '0' || b > '9' {
				break
			}
			p.next()
		}
	default:
		return nil, p.errorfAt(startLine, startCol, "invalid number")
	}

	if b, ok := p.peek(); ok && b == '.' {
		p.next()
		if !p.digits() {
			return nil, p.errorfAt(startLine, startCol, "invalid number")
		}
	}
	if b, ok := p.peek(); ok && (b == 'e' || b == 'E') {
		p.next()
		if b, ok := p.peek(); ok && (b == '+' || b == '-') {
			p.next()
		}
		if !p.digits() {
			return nil, p.errorfAt(startLine, startCol, "invalid number")
		}
	}

	return Number(p.data[start:p.pos]), nil
}

// digits consumes a run of ASCII digits and reports whether at least one
// was present.
func (p *relaxedParser) digits() bool {
	n := 0
	for {
		b, ok := p.peek()
		if !ok || b < '0' || b > '9' {
			break
		}
		p.next()
		n++
	}
	return n > 0
}

// parseWord handles the bare literals true, false and null. Any other bare
// identifier is only legal as a mapping key, so it is an error here.
func (p *relaxedParser) parseWord() (Value, error) {
	startLine, startCol := p.line, p.col
	word := p.parseIdent()
	switch word {
	case "true":
		return Bool(true), nil
	case "false":
		return Bool(false), nil
	case "null":
		return Null{}, nil
	default:
		return nil, p.errorfAt(startLine, startCol, "unexpected identifier %q", word)
	}
}

func (p *relaxedParser) parseIdent() string {
	start := p.pos
	for {
		b, ok := p.peek()
		if !ok || !isIdentPart(b) {
			break
		}
		p.next()
	}
	return string(p.data[start:p.pos])
}

func isIdentStart(b byte) bool {
	return b == '_' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isIdentPart(b byte) bool {
	return isIdentStart(b) || (b >= '0' && b <= '9')
}

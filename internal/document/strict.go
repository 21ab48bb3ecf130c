package document

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// ParseStrict parses data as the strict dialect (standard JSON) and returns
// the value tree. Malformed input yields a *ParseError with a position hint.
func ParseStrict(data []byte) (Value, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	v, err := decodeValue(dec, data)
	if err != nil {
		return nil, err
	}

	// The top-level value must be the whole input.
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		line, col := lineCol(data, dec.InputOffset())
		return nil, &ParseError{Line: line, Col: col, Msg: "unexpected data after top-level value"}
	}

	return v, nil
}

// decodeValue reads one complete value from the token stream.
func decodeValue(dec *json.Decoder, data []byte) (Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, tokenError(dec, data, err)
	}

	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			m := Mapping{}
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return nil, tokenError(dec, data, err)
				}
				key, ok := keyTok.(string)
				if !ok {
					line, col := lineCol(data, dec.InputOffset())
					return nil, &ParseError{Line: line, Col: col, Msg: "mapping key is not a string"}
				}
				val, err := decodeValue(dec, data)
				if err != nil {
					return nil, err
				}
				m[key] = val
			}
			if _, err := dec.Token(); err != nil { // closing '}'
				return nil, tokenError(dec, data, err)
			}
			return m, nil
		case '[':
			seq := Sequence{}
			for dec.More() {
				el, err := decodeValue(dec, data)
				if err != nil {
					return nil, err
				}
				seq = append(seq, el)
			}
			if _, err := dec.Token(); err != nil { // closing ']'
				return nil, tokenError(dec, data, err)
			}
			return seq, nil
		default:
			line, col := lineCol(data, dec.InputOffset())
			return nil, &ParseError{Line: line, Col: col, Msg: fmt.Sprintf("unexpected delimiter %q", t.String())}
		}
	case string:
		return String(t), nil
	case json.Number:
		return Number(t.String()), nil
	case bool:
		return Bool(t), nil
	case nil:
		return Null{}, nil
	default:
		line, col := lineCol(data, dec.InputOffset())
		return nil, &ParseError{Line: line, Col: col, Msg: fmt.Sprintf("unsupported token %v", tok)}
	}
}

// tokenError converts decoder failures into *ParseError with line/column
// context derived from the decoder offset.
func tokenError(dec *json.Decoder, data []byte, err error) error {
	var syn *json.SyntaxError
	if errors.As(err, &syn) {
		line, col := lineCol(data, syn.Offset)
		return &ParseError{Line: line, Col: col, Msg: syn.Error()}
	}
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		line, col := lineCol(data, int64(len(data)))
		return &ParseError{Line: line, Col: col, Msg: "unexpected end of input"}
	}
	line, col := lineCol(data, dec.InputOffset())
	return &ParseError{Line: line, Col: col, Msg: err.Error()}
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package document

// Value is a parsed configuration value: one of [String], [Number], [Bool],
// [Null], [Sequence] or [Mapping]. Code that walks a tree type-switches over
// these six kinds; there are no others.
type Value interface {
	isValue()
}

// String is a textual leaf.
type String string

// Number is a numeric leaf. The source literal is preserved as written so
// that serialization and hashing never reformat numbers (1 stays 1, 1.50
// stays 1.50).
type Number string

// Bool is a boolean leaf.
type Bool bool

// Null is the null leaf.
type Null struct{}

// Sequence is an ordered list of values.
type Sequence []Value

// Mapping is an unordered set of key/value pairs. Key order from the source
// text is not retained; every serialization sorts keys lexicographically.
type Mapping map[string]Value

func (String) isValue()   {}
func (Number) isValue()   {}
func (Bool) isValue()     {}
func (Null) isValue()     {}
func (Sequence) isValue() {}
func (Mapping) isValue()  {}

// Clone returns a deep copy of v. Mutating the copy never affects the
// original tree.
func Clone(v Value) Value {
	switch t := v.(type) {
	case Sequence:
		out := make(Sequence, len(t))
		for i, el := range t {
			out[i] = Clone(el)
		}
		return out
	case Mapping:
		out := make(Mapping, len(t))
		for k, el := range t {
			out[k] = Clone(el)
		}
		return out
	default:
		// Scalar kinds are immutable.
		return v
	}
}

// TypeName returns a short human-readable name for the kind of v, for use
// in error messages.
func TypeName(v Value) string {
	switch v.(type) {
	case String:
		return "string"
	case Number:
		return "number"
	case Bool:
		return "bool"
	case Null:
		return "null"
	case Sequence:
		return "sequence"
	case Mapping:
		return "mapping"
	default:
		return "unknown"
	}
}

package canonjson

import (
	"fmt"
	"math"
	"slices"
	"unicode/utf8"
)

// Kind identifies the JSON type held by a [Value].
type Kind int

const (
	// KindInvalid is the kind of a zero-value [Value], which holds no JSON
	// value at all and cannot be canonicalized.
	KindInvalid Kind = iota
	// KindNull identifies the JSON null value.
	KindNull
	// KindBool identifies a JSON true or false.
	KindBool
	// KindInt identifies a JSON number carried as a signed 64-bit integer.
	KindInt
	// KindFloat identifies a JSON number carried as an IEEE 754 binary64.
	KindFloat
	// KindString identifies a JSON string.
	KindString
	// KindArray identifies a JSON array.
	KindArray
	// KindObject identifies a JSON object.
	KindObject
)

// Value is an immutable JSON value: exactly one of null, boolean, number,
// string, array, or object.
//
// Build values with the constructor functions ([Null], [Bool], [Int],
// [Float], [String], [Array], [Object]); the zero value is not a usable
// JSON value and is rejected by [Canonicalize].
//
// The integer/float distinction is preserved so that numbers which are
// mathematically integral and within the signed 64-bit range bypass
// floating-point formatting entirely. [CanonicalizeText] relies on this to
// render a source token such as 42 without a round trip through binary64,
// while still rendering 1e2 as 100 per the ECMAScript number rules.
type Value struct {
	str     string
	elems   []Value
	members []Member
	f       float64
	i       int64
	kind    Kind
	b       bool
}

// Member is a single (key, value) pair of a JSON object. Key order carries
// no meaning; the encoder imposes UTF-16 code-unit order on output.
type Member struct {
	Key   string
	Value Value
}

// Null returns the JSON null value.
func Null() Value {
	return Value{kind: KindNull}
}

// Bool returns a JSON boolean value.
func Bool(b bool) Value {
	return Value{kind: KindBool, b: b}
}

// Int returns a JSON number value carried as a signed 64-bit integer.
func Int(i int64) Value {
	return Value{kind: KindInt, i: i}
}

// Float returns a JSON number value carried as an IEEE 754 binary64.
//
// NaN and the infinities have no JSON representation and are rejected with
// [ErrUnrepresentableNumber]. Negative zero is accepted and canonicalizes
// as 0.
func Float(f float64) (Value, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Value{}, fmt.Errorf("%w: %v", ErrUnrepresentableNumber, f)
	}

	return Value{kind: KindFloat, f: f}, nil
}

// String returns a JSON string value.
//
// The string must be a valid sequence of Unicode scalar values encoded as
// UTF-8. Invalid UTF-8, including WTF-8 style surrogate encodings, is
// rejected with [ErrInvalidString].
func String(s string) (Value, error) {
	if !utf8.ValidString(s) {
		return Value{}, fmt.Errorf("%w: %q", ErrInvalidString, s)
	}

	return Value{kind: KindString, str: s}, nil
}

// Array returns a JSON array of the given elements. Element order is
// preserved through canonicalization. The elements are copied; later
// changes to the argument slice do not affect the returned value.
func Array(elems ...Value) Value {
	return Value{kind: KindArray, elems: slices.Clone(elems)}
}

// Object returns a JSON object with the given members.
//
// Keys must be unique and must be valid Unicode; a repeated key is rejected
// with a [*DuplicateKeyError] and an invalid key with [ErrInvalidString].
// Member order carries no meaning. The members are copied; later changes to
// the argument slice do not affect the returned value.
func Object(members ...Member) (Value, error) {
	seen := make(map[string]struct{}, len(members))

	for _, m := range members {
		if !utf8.ValidString(m.Key) {
			return Value{}, fmt.Errorf("%w: key %q", ErrInvalidString, m.Key)
		}

		if _, dup := seen[m.Key]; dup {
			return Value{}, &DuplicateKeyError{Key: m.Key, Offset: -1}
		}

		seen[m.Key] = struct{}{}
	}

	return Value{kind: KindObject, members: slices.Clone(members)}, nil
}

// Kind reports which JSON type the value holds. A zero-value [Value]
// reports [KindInvalid].
func (v Value) Kind() Kind {
	return v.kind
}

// IsZero returns true if the value is the zero value, holding no JSON
// value at all.
func (v Value) IsZero() bool {
	return v.kind == KindInvalid
}

// BoolValue returns the boolean and true when the value is a [KindBool].
func (v Value) BoolValue() (bool, bool) {
	return v.b, v.kind == KindBool
}

// IntValue returns the integer and true when the value is a [KindInt].
func (v Value) IntValue() (int64, bool) {
	return v.i, v.kind == KindInt
}

// FloatValue returns the binary64 and true when the value is a [KindFloat].
// It does not convert a [KindInt]; use [Value.IntValue] for those.
func (v Value) FloatValue() (float64, bool) {
	return v.f, v.kind == KindFloat
}

// StringValue returns the string and true when the value is a [KindString].
func (v Value) StringValue() (string, bool) {
	return v.str, v.kind == KindString
}

// Elems returns a copy of the array elements, or nil when the value is not
// a [KindArray]. An empty array returns a non-nil empty slice.
func (v Value) Elems() []Value {
	if v.kind != KindArray {
		return nil
	}

	if v.elems == nil {
		return []Value{}
	}

	return slices.Clone(v.elems)
}

// Members returns a copy of the object members in construction order, or
// nil when the value is not a [KindObject]. An empty object returns a
// non-nil empty slice.
func (v Value) Members() []Member {
	if v.kind != KindObject {
		return nil
	}

	if v.members == nil {
		return []Member{}
	}

	return slices.Clone(v.members)
}

package canonjson

import (
	"errors"
	"fmt"
)

var (
	// ErrParse indicates the input text is not valid JSON under RFC 8259.
	// All [*ParseError] values unwrap to this sentinel.
	ErrParse = errors.New("canonjson: parse error")

	// ErrUnrepresentableNumber indicates a number that cannot be carried by
	// an IEEE 754 binary64: NaN, an infinity, or a numeric token whose
	// magnitude overflows the finite binary64 range.
	ErrUnrepresentableNumber = errors.New("canonjson: number not representable in IEEE 754 binary64")

	// ErrInvalidString indicates a string that is not a valid sequence of
	// Unicode scalar values. This is only reachable when a caller builds a
	// [Value] directly; the text parser rejects such input with [ErrParse].
	ErrInvalidString = errors.New("canonjson: string is not valid Unicode")

	// ErrDuplicateKey indicates a repeated key within a single object. It is
	// returned by [Object] and, when [RejectDuplicates] is in effect, by the
	// text parser. All [*DuplicateKeyError] values unwrap to this sentinel.
	ErrDuplicateKey = errors.New("canonjson: duplicate object key")

	// ErrInvalidValue indicates an attempt to canonicalize a zero-value
	// [Value], which represents no JSON value at all.
	ErrInvalidValue = errors.New("canonjson: zero Value cannot be canonicalized")
)

// ParseError describes a violation of the JSON grammar in the input to
// [CanonicalizeText]. It unwraps to [ErrParse], so
// errors.Is(err, ErrParse) matches any parse failure.
type ParseError struct {
	// Reason is a short human-readable description of the violation.
	Reason string
	// Offset is the byte offset into the input at which the violation was
	// detected.
	Offset int
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("canonjson: parse error at byte %d: %s", e.Offset, e.Reason)
}

// Unwrap returns [ErrParse] so that errors.Is can match the sentinel.
func (e *ParseError) Unwrap() error {
	return ErrParse
}

// DuplicateKeyError describes a repeated key within a single JSON object.
// It unwraps to [ErrDuplicateKey].
type DuplicateKeyError struct {
	// Key is the offending key.
	Key string
	// Offset is the byte offset of the second occurrence in the input text,
	// or -1 when the error was raised by the [Object] constructor.
	Offset int
}

// Error implements the error interface.
func (e *DuplicateKeyError) Error() string {
	if e.Offset < 0 {
		return fmt.Sprintf("canonjson: duplicate object key %q", e.Key)
	}

	return fmt.Sprintf("canonjson: duplicate object key %q at byte %d", e.Key, e.Offset)
}

// Unwrap returns [ErrDuplicateKey] so that errors.Is can match the sentinel.
func (e *DuplicateKeyError) Unwrap() error {
	return ErrDuplicateKey
}

package canonjson

import (
	"bytes"
	"fmt"
	"math"
	"strconv"
)

// FormatNumber converts a finite binary64 into the canonical decimal form
// required by RFC 8785: the output of ECMAScript ToString(Number) with a
// lowercase exponent character and an explicit '+' on non-negative
// exponents.
//
// The digit sequence is the shortest decimal that parses back to exactly f
// under round-to-nearest-even; the choice between plain and scientific
// notation follows the ECMA-262 rule, so for example 1e20 renders as
// 100000000000000000000 while 1e21 renders as 1e+21.
//
// NaN and the infinities are rejected with [ErrUnrepresentableNumber].
// Both zeros render as 0.
func FormatNumber(f float64) (string, error) {
	buf, err := appendNumber(make([]byte, 0, 32), f)
	if err != nil {
		return "", err
	}

	return string(buf), nil
}

func appendNumber(dst []byte, f float64) ([]byte, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, fmt.Errorf("%w: %v", ErrUnrepresentableNumber, f)
	}

	// Both +0 and -0 render as a bare 0.
	if f == 0 {
		return append(dst, '0'), nil
	}

	if math.Signbit(f) {
		dst = append(dst, '-')
		f = -f
	}

	digits, pointPos := shortestDigits(f)

	return appendDigits(dst, digits, pointPos), nil
}

// shortestDigits returns the shortest round-tripping decimal digit sequence
// for a positive finite f, with no decimal point and no trailing zeros, and
// the position k of the decimal point counted from the left of the digits:
// f == digits * 10^(k-len(digits)).
func shortestDigits(f float64) (digits []byte, k int) {
	// strconv's shortest 'e' form is d[.ddd]e±dd with the mantissa already
	// minimal, which pins down both the digit sequence and the decimal
	// exponent.
	buf := strconv.AppendFloat(make([]byte, 0, 32), f, 'e', -1, 64)

	mark := bytes.IndexByte(buf, 'e')
	exp, err := strconv.Atoi(string(buf[mark+1:]))

	if err != nil {
		// strconv always writes a parseable exponent for finite input.
		panic("canonjson: malformed strconv exponent: " + string(buf))
	}

	digits = buf[:mark]
	if len(digits) > 1 {
		// Drop the decimal point after the leading digit.
		copy(digits[1:], digits[2:])
		digits = digits[:len(digits)-1]
	}

	return digits, exp + 1
}

// appendDigits lays out the digit sequence per the ECMA-262 ToString(Number)
// notation rule. k is the decimal point position relative to the left edge
// of digits; the cutoffs 21 and -6 are fixed by ECMA-262 and inherited
// verbatim by RFC 8785.
func appendDigits(dst, digits []byte, k int) []byte {
	n := len(digits)

	switch {
	case k > 0 && k <= n:
		// Decimal point falls inside (or just after) the digits.
		dst = append(dst, digits[:k]...)
		if k < n {
			dst = append(dst, '.')
			dst = append(dst, digits[k:]...)
		}

		return dst
	case k > 0 && k <= 21:
		// Integral value with trailing zeros.
		dst = append(dst, digits...)
		for i := 0; i < k-n; i++ {
			dst = append(dst, '0')
		}

		return dst
	case k > -6 && k <= 0:
		// Leading "0." and padding zeros.
		dst = append(dst, '0', '.')
		for i := 0; i < -k; i++ {
			dst = append(dst, '0')
		}

		return append(dst, digits...)
	default:
		// Scientific notation: d[.ddd]e±x with no leading zeros in the
		// exponent.
		dst = append(dst, digits[0])
		if n > 1 {
			dst = append(dst, '.')
			dst = append(dst, digits[1:]...)
		}

		dst = append(dst, 'e')

		exp := k - 1
		if exp >= 0 {
			dst = append(dst, '+')
		} else {
			dst = append(dst, '-')
			exp = -exp
		}

		return strconv.AppendInt(dst, int64(exp), 10)
	}
}

package canonjson

import (
	"slices"
	"strconv"
)

// appendValue appends the canonical encoding of v to dst. The traversal is
// recursive; the value model is a tree by construction, so no cycle
// detection is performed.
func appendValue(dst []byte, v Value) ([]byte, error) {
	switch v.kind {
	case KindNull:
		return append(dst, "null"...), nil
	case KindBool:
		if v.b {
			return append(dst, "true"...), nil
		}

		return append(dst, "false"...), nil
	case KindInt:
		return strconv.AppendInt(dst, v.i, 10), nil
	case KindFloat:
		return appendNumber(dst, v.f)
	case KindString:
		return appendQuoted(dst, v.str), nil
	case KindArray:
		return appendArray(dst, v.elems)
	case KindObject:
		return appendObject(dst, v.members)
	default:
		return nil, ErrInvalidValue
	}
}

func appendArray(dst []byte, elems []Value) ([]byte, error) {
	dst = append(dst, '[')

	var err error

	for i, e := range elems {
		if i > 0 {
			dst = append(dst, ',')
		}

		if dst, err = appendValue(dst, e); err != nil {
			return nil, err
		}
	}

	return append(dst, ']'), nil
}

func appendObject(dst []byte, members []Member) ([]byte, error) {
	// Sort a copy; the Value itself stays untouched so repeated
	// canonicalization of the same value is race free.
	sorted := slices.Clone(members)
	slices.SortStableFunc(sorted, func(a, b Member) int {
		return compareUTF16(a.Key, b.Key)
	})

	dst = append(dst, '{')

	var err error

	for i, m := range sorted {
		if i > 0 {
			dst = append(dst, ',')
		}

		dst = appendQuoted(dst, m.Key)
		dst = append(dst, ':')

		if dst, err = appendValue(dst, m.Value); err != nil {
			return nil, err
		}
	}

	return append(dst, '}'), nil
}

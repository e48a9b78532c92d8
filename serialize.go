package strictjson

import "errors"

// ErrNilValue is returned by Marshal/MarshalIndent when asked to
// serialize a nil *Value.
var ErrNilValue = errors.New("strictjson: cannot marshal a nil Value")

// Marshal serializes v to compact JSON text (no inserted whitespace).
//
// Uses a trailing-comma backpatch trick: replace the last written ','
// with the closing bracket rather than tracking "is this the first
// element", applied as a recursive walk over an already-built Value
// tree.
func Marshal(v *Value) ([]byte, error) {
	if v == nil {
		return nil, ErrNilValue
	}
	buf := make([]byte, 0, 256)
	buf = appendValue(buf, v)
	return buf, nil
}

func appendValue(dst []byte, v *Value) []byte {
	switch v.kind {
	case KindNull:
		return append(dst, "null"...)
	case KindBool:
		if v.b {
			return append(dst, "true"...)
		}
		return append(dst, "false"...)
	case KindLong:
		return appendInt64(dst, v.i64)
	case KindFloat:
		return appendFloat64(dst, float64(v.f32))
	case KindDouble:
		return appendFloat64(dst, v.f64)
	case KindString:
		return appendEscapedString(dst, v.str)
	case KindArray:
		dst = append(dst, '[')
		for _, e := range v.arr {
			dst = appendValue(dst, e)
			dst = append(dst, ',')
		}
		return closeCollection(dst, '[', ']')
	case KindObject:
		dst = append(dst, '{')
		v.obj.Each(func(key string, val *Value) bool {
			dst = appendEscapedString(dst, key)
			dst = append(dst, ':')
			dst = appendValue(dst, val)
			dst = append(dst, ',')
			return true
		})
		return closeCollection(dst, '{', '}')
	default:
		return append(dst, "null"...)
	}
}

// closeCollection backpatches a trailing ',' into the matching closer,
// or appends the closer directly if the collection turned out empty
// (dst still ends in the opener just written).
func closeCollection(dst []byte, open, close byte) []byte {
	if len(dst) > 0 && dst[len(dst)-1] == ',' {
		dst[len(dst)-1] = close
		return dst
	}
	return append(dst, close)
}

func appendInt64(dst []byte, n int64) []byte {
	if n >= 0 && n < 100 {
		return appendSmallUint(dst, uint64(n))
	}
	return appendBigInt64(dst, n)
}

// appendSmallUint is the 0-99 fast path.
func appendSmallUint(dst []byte, n uint64) []byte {
	if n < 10 {
		return append(dst, byte('0'+n))
	}
	return append(dst, byte('0'+n/10), byte('0'+n%10))
}

func appendBigInt64(dst []byte, n int64) []byte {
	var scratch [20]byte
	neg := n < 0
	u := uint64(n)
	if neg {
		u = uint64(-n)
	}
	i := len(scratch)
	for u >= 10 {
		i--
		scratch[i] = byte('0' + u%10)
		u /= 10
	}
	i--
	scratch[i] = byte('0' + u)
	if neg {
		dst = append(dst, '-')
	}
	return append(dst, scratch[i:]...)
}

// MarshalIndent serializes v to pretty-printed JSON text, two-space
// indentation per level. An object with exactly one entry is kept on a
// single line rather than exploded across three, matching the pretty-
// printer convention this package follows for its Open Question on
// single-entry containers (see DESIGN.md).
func MarshalIndent(v *Value) ([]byte, error) {
	if v == nil {
		return nil, ErrNilValue
	}
	buf := make([]byte, 0, 256)
	buf = appendValuePretty(buf, v, 0)
	return buf, nil
}

func appendValuePretty(dst []byte, v *Value, level int) []byte {
	switch v.kind {
	case KindArray:
		// Arrays never break across lines in pretty mode, only objects do:
		// elements are joined by ", " on one line, matching the reference
		// marshaller's Array case (which never emits a newline or indent
		// regardless of the pretty flag).
		dst = append(dst, '[')
		for i, e := range v.arr {
			if i != 0 {
				dst = append(dst, ',', ' ')
			}
			dst = appendValuePretty(dst, e, level)
		}
		return append(dst, ']')

	case KindObject:
		n := v.obj.Len()
		if n == 0 {
			return append(dst, '{', '}')
		}
		if n == 1 {
			dst = append(dst, '{')
			v.obj.Each(func(key string, val *Value) bool {
				dst = appendEscapedString(dst, key)
				dst = append(dst, ':', ' ')
				dst = appendValuePretty(dst, val, level)
				return true
			})
			return append(dst, '}')
		}
		dst = append(dst, '{', '\n')
		i := 0
		v.obj.Each(func(key string, val *Value) bool {
			dst = appendIndent(dst, level+1)
			dst = appendEscapedString(dst, key)
			dst = append(dst, ':', ' ')
			dst = appendValuePretty(dst, val, level+1)
			if i != n-1 {
				dst = append(dst, ',')
			}
			dst = append(dst, '\n')
			i++
			return true
		})
		dst = appendIndent(dst, level)
		return append(dst, '}')

	default:
		return appendValue(dst, v)
	}
}

func appendIndent(dst []byte, level int) []byte {
	for i := 0; i < level; i++ {
		dst = append(dst, ' ', ' ')
	}
	return dst
}

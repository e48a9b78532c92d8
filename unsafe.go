package strictjson

import "unsafe"

// s2b and b2s are zero-copy string/[]byte conversions. Besides buffers
// this package itself owns (arena chunks, escape-decode scratch buffers),
// b2s is applied to the caller's input in Parse for the duration of the
// parse; decoded strings are copied out through Context.allocString, so a
// later mutation of the caller's buffer does not reach a returned Value.
func s2b(s string) []byte {
	return unsafe.Slice(unsafe.StringData(s), len(s))
}

func b2s(b []byte) string {
	return unsafe.String(unsafe.SliceData(b), len(b))
}

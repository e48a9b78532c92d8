package strictjson

// parseStringLiteral decodes a quoted JSON string starting at s[i] (which
// must hold '"') and returns the unescaped text, the index just past the
// closing quote, and a Status. The returned string is always copied
// through ctx.allocString: the raw span when no escape or CESU-8
// reassembly is needed, otherwise the freshly decoded buffer, so the Value
// does not alias the caller's input buffer.
//
// A fast scan runs over ordinary bytes, falling back to an escape-
// decoding slow path the moment a backslash or a byte requiring
// validation is seen. Unlike an encoding/json-compatible reader (which
// accepts any byte >= 0x20 verbatim), this tokenizer fully validates
// every non-ASCII byte through the UTF-8 classifier and rejects
// unescaped control codes outright.
func parseStringLiteral(ctx *Context, s string, i int) (val string, next int, status Status) {
	start := i + 1
	j := start
	for {
		if j >= len(s) {
			return "", j, StatusUnexpectedEndOfString
		}
		c := s[j]
		switch {
		case c == '"':
			return ctx.allocString(s[start:j]), j + 1, StatusSuccess
		case c == '\\':
			return parseStringSlow(ctx, s, start, j)
		case c < 0x20:
			return "", j, StatusNonDelC0ControlCodeInString
		case c < 0x80:
			j++
		default:
			class := classTable[c]
			switch class {
			case classC1:
				return "", j, StatusC1ControlCodeInString
			case classLead3ED:
				// A surrogate-range 3-byte sequence needs the slow path
				// either way, to attempt CESU-8 pairing or reject it.
				r, _, st := decodeUTF8(s, j, class)
				if st != StatusSuccess {
					return "", j, st
				}
				if isHighSurrogate(r) || isLowSurrogate(r) {
					return parseStringSlow(ctx, s, start, j)
				}
				j += 3
			case classLead2, classLead3, classLead3E0, classLead4, classLead4F0:
				_, next2, st := decodeUTF8(s, j, class)
				if st != StatusSuccess {
					return "", j, st
				}
				j = next2
			default:
				return "", j, StatusIllegalUTF8Character
			}
		}
	}
}

// parseStringSlow re-walks s[start:] from the point a backslash or a
// CESU-8 candidate was found, decoding into a freshly built buffer. The
// clean bytes already scanned are copied in verbatim before continuing
// byte-by-byte.
func parseStringSlow(ctx *Context, s string, start, from int) (val string, next int, status Status) {
	buf := make([]byte, 0, (from-start)+16)
	buf = append(buf, s[start:from]...)
	j := from
	for {
		if j >= len(s) {
			return "", j, StatusUnexpectedEndOfString
		}
		c := s[j]
		switch {
		case c == '"':
			return ctx.allocString(b2s(buf)), j + 1, StatusSuccess
		case c == '\\':
			nbuf, nj, st := decodeEscape(buf, s, j)
			if st != StatusSuccess {
				return "", j, st
			}
			buf = nbuf
			j = nj
		case c < 0x20:
			return "", j, StatusNonDelC0ControlCodeInString
		case c < 0x80:
			buf = append(buf, c)
			j++
		default:
			class := classTable[c]
			switch class {
			case classC1:
				return "", j, StatusC1ControlCodeInString
			case classLead3ED:
				r, nj, st := decodeUTF8(s, j, class)
				if st != StatusSuccess {
					return "", j, st
				}
				if isHighSurrogate(r) {
					if nj+2 < len(s) && classTable[s[nj]] == classLead3ED {
						r2, nj2, st2 := decodeUTF8(s, nj, classLead3ED)
						if st2 == StatusSuccess && isLowSurrogate(r2) {
							buf = encodeUTF8(buf, combineSurrogates(r, r2))
							j = nj2
							continue
						}
					}
					return "", j, StatusUTF16SurrogateInUTF8
				}
				if isLowSurrogate(r) {
					return "", j, StatusUTF16SurrogateInUTF8
				}
				buf = encodeUTF8(buf, r)
				j = nj
			case classLead2, classLead3, classLead3E0, classLead4, classLead4F0:
				r, nj, st := decodeUTF8(s, j, class)
				if st != StatusSuccess {
					return "", j, st
				}
				buf = encodeUTF8(buf, r)
				j = nj
			default:
				return "", j, StatusIllegalUTF8Character
			}
		}
	}
}

// decodeEscape decodes a single backslash escape at s[j] (s[j] == '\\'),
// appends its decoded representation to buf, and returns the grown
// buffer, the index just past the escape, and a Status.
//
// A \uXXXX escape forming a valid high/low surrogate pair is combined
// into one supplementary code point and appended as 4-byte UTF-8. A
// lone high or low surrogate \u escape is not corrected or rejected: it
// is echoed back as the literal source text "\u" plus its four hex
// digits, so a round-trip through this package never turns a lone
// escaped surrogate into either an error or a corrupted byte sequence.
//
// \xHH is a non-standard extension this package's grammar accepts as a
// first-class escape alongside the eight standard shortcuts.
func decodeEscape(buf []byte, s string, j int) (newBuf []byte, next int, status Status) {
	if j+1 >= len(s) {
		return buf, j + 1, StatusUnexpectedEndOfString
	}
	switch s[j+1] {
	case '"':
		return append(buf, '"'), j + 2, StatusSuccess
	case '\\':
		return append(buf, '\\'), j + 2, StatusSuccess
	case '/':
		return append(buf, '/'), j + 2, StatusSuccess
	case 'b':
		return append(buf, '\b'), j + 2, StatusSuccess
	case 'f':
		return append(buf, '\f'), j + 2, StatusSuccess
	case 'n':
		return append(buf, '\n'), j + 2, StatusSuccess
	case 'r':
		return append(buf, '\r'), j + 2, StatusSuccess
	case 't':
		return append(buf, '\t'), j + 2, StatusSuccess
	case 'x':
		v, ok := readHexN(s, j+2, 2)
		if !ok {
			return buf, j + 2, StatusInvalidHexEscape
		}
		if v < 0x20 || v > 0x7E {
			return buf, j + 2, StatusHexEscapeNotPrintable
		}
		return append(buf, byte(v)), j + 4, StatusSuccess
	case 'u':
		hi, ok := readHexN(s, j+2, 4)
		if !ok {
			return buf, j + 2, StatusInvalidUnicodeEscape
		}
		r := rune(hi)
		next = j + 6
		if isHighSurrogate(r) {
			if next+1 < len(s) && s[next] == '\\' && s[next+1] == 'u' {
				lo, ok := readHexN(s, next+2, 4)
				if ok && isLowSurrogate(rune(lo)) {
					return encodeUTF8(buf, combineSurrogates(r, rune(lo))), next + 6, StatusSuccess
				}
			}
			return append(buf, s[j:next]...), next, StatusSuccess // lone high surrogate: echoed literally
		}
		if isLowSurrogate(r) {
			return append(buf, s[j:next]...), next, StatusSuccess // lone low surrogate: echoed literally
		}
		return encodeUTF8(buf, r), next, StatusSuccess
	default:
		return buf, j + 1, StatusInvalidEscapeCharacter
	}
}

func readHexN(s string, i, n int) (uint32, bool) {
	if i+n > len(s) {
		return 0, false
	}
	var v uint32
	for k := 0; k < n; k++ {
		d, ok := hexVal(s[i+k])
		if !ok {
			return 0, false
		}
		v = v<<4 | uint32(d)
	}
	return v, true
}

func hexVal(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	default:
		return 0, false
	}
}

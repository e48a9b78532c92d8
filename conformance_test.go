package strictjson

import (
	"errors"
	"strings"
	"testing"
)

func mustParse(t *testing.T, input string) *Value {
	t.Helper()
	v, err := Parse(nil, []byte(input))
	if err != nil {
		t.Fatalf("Parse(%q) returned error: %v", input, err)
	}
	return v
}

func parseStatus(t *testing.T, input string) Status {
	t.Helper()
	_, err := Parse(nil, []byte(input))
	if err == nil {
		t.Fatalf("Parse(%q) succeeded, expected an error", input)
	}
	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("Parse(%q) returned non-ParseError: %v", input, err)
	}
	return pe.Status()
}

// Scenario 1.
func TestScenarioNestedArrayRoundTrip(t *testing.T) {
	v := mustParse(t, `{ "content":[[[0,10,20,3.14,40]]]}`)
	out, err := Marshal(v)
	if err != nil {
		t.Fatal(err)
	}
	want := `{"content":[[[0,10,20,3.14,40]]]}`
	if string(out) != want {
		t.Fatalf("got %q, want %q", out, want)
	}
}

// Scenario 2.
func TestScenarioWhitespaceRoundTrip(t *testing.T) {
	v := mustParse(t, `{ "a": 1, "b": [2,   3]}`)
	out, err := Marshal(v)
	if err != nil {
		t.Fatal(err)
	}
	want := `{"a":1,"b":[2,3]}`
	if string(out) != want {
		t.Fatalf("got %q, want %q", out, want)
	}
}

// Scenario 3: integer literal overflowing int64 promotes to Double.
func TestScenarioIntegerOverflowPromotesToDouble(t *testing.T) {
	v := mustParse(t, `[-123123123123123123123123123123]`)
	arr := v.MustArr()
	if len(arr) != 1 {
		t.Fatalf("want 1 element, got %d", len(arr))
	}
	d, ok := arr[0].Double()
	if !ok {
		t.Fatalf("want Double, got Kind %s", arr[0].Kind())
	}
	const want = -1.2312312312312312e+29
	if diff := (d - want) / want; diff > 1e-12 || diff < -1e-12 {
		t.Fatalf("got %v, want ~%v", d, want)
	}
}

// Scenario 4: extreme negative exponent underflows to zero.
func TestScenarioExponentUnderflow(t *testing.T) {
	v := mustParse(t, `[123.456e-789]`)
	arr := v.MustArr()
	d, ok := arr[0].Double()
	if !ok || d != 0.0 {
		t.Fatalf("got %v ok=%v, want 0.0", d, ok)
	}
}

// Scenario 5: a \u0020 escape decodes to a single literal space.
func TestScenarioUnicodeEscapeSpace(t *testing.T) {
	v := mustParse(t, "[\"\\u0020\"]")
	s := v.MustArr()[0].MustStr()
	if s != " " {
		t.Fatalf("got %q, want a single space", s)
	}
}

// Scenario 6: nesting 20 arrays deep exceeds the depth budget.
func TestScenarioDepthExceeded(t *testing.T) {
	input := strings.Repeat("[", 20) + `"Too deep"` + strings.Repeat("]", 20)
	got := parseStatus(t, input)
	if got != StatusDepthExceeded {
		t.Fatalf("got %s, want depth_exceeded", got)
	}
}

// Scenario 7: a trailing comma before a closing brace.
func TestScenarioTrailingCommaInObject(t *testing.T) {
	got := parseStatus(t, `{"Extra comma": true,}`)
	if got != StatusUnexpectedComma {
		t.Fatalf("got %s, want unexpected_comma", got)
	}
}

// Scenario 8: a valid UTF-16 surrogate pair decodes to one supplementary
// code point, encoded as 4-byte UTF-8.
func TestScenarioSurrogatePairDecodesToSupplementaryCodePoint(t *testing.T) {
	input := "[\"\\uD834\\uDD1E\"]"
	v := mustParse(t, input)
	s := v.MustArr()[0].MustStr()
	want := string([]byte{0xF0, 0x9D, 0x84, 0x9E})
	if s != want {
		t.Fatalf("got %x, want %x", []byte(s), []byte(want))
	}
}

// Scenario 9: a lone low surrogate escape is echoed literally, not
// corrected or rejected.
func TestScenarioLoneLowSurrogateEchoed(t *testing.T) {
	v := mustParse(t, `["\uDFAA"]`)
	s := v.MustArr()[0].MustStr()
	if s != `\uDFAA` {
		t.Fatalf("got %q, want literal %q", s, `\uDFAA`)
	}
}

func TestBoundaryBareZero(t *testing.T) {
	v := mustParse(t, `0`)
	if n, ok := v.Long(); !ok || n != 0 {
		t.Fatalf("got %v ok=%v, want Long 0", n, ok)
	}
}

func TestBoundaryLeadingZeroIsOctal(t *testing.T) {
	if got := parseStatus(t, `01`); got != StatusUnexpectedOctal {
		t.Fatalf("got %s, want unexpected_octal", got)
	}
}

func TestBoundaryLoneMinusIsBadNegative(t *testing.T) {
	if got := parseStatus(t, `-`); got != StatusBadNegative {
		t.Fatalf("got %s, want bad_negative", got)
	}
}

func TestBoundaryTrailingDotIsBadDouble(t *testing.T) {
	if got := parseStatus(t, `1.`); got != StatusBadDouble {
		t.Fatalf("got %s, want bad_double", got)
	}
}

func TestBoundaryDanglingExponent(t *testing.T) {
	got := parseStatus(t, `1e`)
	if got != StatusBadDouble && got != StatusBadExponent {
		t.Fatalf("got %s, want bad_double or bad_exponent", got)
	}
}

func TestBoundaryEmptyInputIsNullSuccess(t *testing.T) {
	v, err := Parse(nil, []byte(""))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !v.IsNull() {
		t.Fatalf("got Kind %s, want Null", v.Kind())
	}
}

func TestBoundaryTwoDocumentsIsTrailingContent(t *testing.T) {
	if got := parseStatus(t, `[] []`); got != StatusTrailingContent {
		t.Fatalf("got %s, want trailing_content", got)
	}
}

func TestInvariantRoundTripPreservesSemanticEquality(t *testing.T) {
	inputs := []string{
		`{"content":[[[0,10,20,3.14,40]]]}`,
		`{"a":1,"b":[2,3]}`,
		`[true,false,null,"hi"]`,
	}
	for _, in := range inputs {
		v1 := mustParse(t, in)
		out, err := Marshal(v1)
		if err != nil {
			t.Fatal(err)
		}
		v2 := mustParse(t, string(out))
		out2, err := Marshal(v2)
		if err != nil {
			t.Fatal(err)
		}
		if string(out) != string(out2) {
			t.Fatalf("not idempotent: %q vs %q", out, out2)
		}
	}
}

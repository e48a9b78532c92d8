package strictjson

import "testing"

func TestDecodeUTF8TwoByte(t *testing.T) {
	s := "\xC2\xA9" // (c), U+00A9
	r, next, status := decodeUTF8(s, 0, classLead2)
	if status != StatusSuccess || r != 0x00A9 || next != 2 {
		t.Fatalf("got r=%#x next=%d status=%s", r, next, status)
	}
}

func TestDecodeUTF8OverlongThreeByte(t *testing.T) {
	s := "\xE0\x80\x80" // overlong encoding of U+0000
	_, _, status := decodeUTF8(s, 0, classLead3E0)
	if status != StatusOverlongUTF8_0x7ff {
		t.Fatalf("got %s, want overlong_utf8_0x7ff", status)
	}
}

func TestDecodeUTF8OverlongFourByte(t *testing.T) {
	s := "\xF0\x80\x80\x80"
	_, _, status := decodeUTF8(s, 0, classLead4F0)
	if status != StatusOverlongUTF8_0xffff {
		t.Fatalf("got %s, want overlong_utf8_0xffff", status)
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	points := []rune{0x00A9, 0x20AC, 0x1D11E}
	for _, r := range points {
		buf := encodeUTF8(nil, r)
		s := string(buf)
		class := classTable[s[0]]
		got, next, status := decodeUTF8(s, 0, class)
		if status != StatusSuccess || got != r || next != len(s) {
			t.Fatalf("round trip failed for %#x: got=%#x next=%d status=%s", r, got, next, status)
		}
	}
}

func TestCombineSurrogatesMatchesKnownPair(t *testing.T) {
	got := combineSurrogates(0xD834, 0xDD1E)
	if got != 0x1D11E {
		t.Fatalf("got %#x, want %#x", got, 0x1D11E)
	}
}

func TestClassTableCoversKeyBytes(t *testing.T) {
	cases := map[byte]utf8Class{
		'a':  classAscii,
		0x1F: classC0,
		'"':  classQuote,
		'\\': classBackslash,
		0xC2: classLead2,
		0xE0: classLead3E0,
		0xED: classLead3ED,
		0xF0: classLead4F0,
		0x9F: classC1,
		0xC0: classEvil,
		0xFF: classEvil,
	}
	for b, want := range cases {
		if got := classTable[b]; got != want {
			t.Errorf("classTable[%#x] = %d, want %d", b, got, want)
		}
	}
}

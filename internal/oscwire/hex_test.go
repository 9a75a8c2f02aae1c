package oscwire

import "testing"

func TestEncodeHex32(t *testing.T) {
	if got := EncodeHex32(0x09904030); got != "09904030" {
		t.Fatalf("encode mismatch: %q", got)
	}
	if got := EncodeHex32(0); got != "00000000" {
		t.Fatalf("zero must still be 8 digits: %q", got)
	}
	if got := EncodeHex32(0xFFFFFFFF); got != "ffffffff" {
		t.Fatalf("digits must be lowercase: %q", got)
	}
}

func TestDecodeHex32(t *testing.T) {
	cases := []struct {
		in   string
		want uint32
		ok   bool
	}{
		{"09904030", 0x09904030, true},
		{"09G04030", 0, false},
		{"09g04030", 0, false},
		{"ffffFFFF", 0xFFFFFFFF, true},
		{"deadbeefcafe", 0xdeadbeef, true}, // scan stops after 8 digits
		{"ab\x00whatever", 0xab, true},     // NUL ends the scan early
		{"", 0, true},
		{"0990403/", 0, false},
	}
	for _, tc := range cases {
		got, ok := DecodeHex32([]byte(tc.in))
		if ok != tc.ok || got != tc.want {
			t.Fatalf("decode %q: got (%#x, %v) want (%#x, %v)", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}

func TestAppendHex32(t *testing.T) {
	b := AppendHex32([]byte("x:"), 0x0000001A)
	if string(b) != "x:0000001a" {
		t.Fatalf("append mismatch: %q", b)
	}
}

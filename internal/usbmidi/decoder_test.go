package usbmidi

import (
	"bytes"
	"testing"
)

func TestDecodeVoiceStatusReconstruction(t *testing.T) {
	// Channel bits live in data[0]; the status type comes from the CIN.
	ev := Event{Code: 0x09, Data: [3]byte{0x93, 0x40, 0x30}}
	if got := Decode(ev); !bytes.Equal(got, []byte{0x93, 0x40, 0x30}) {
		t.Fatalf("note-on decode mismatch: %x", got)
	}

	ev = Event{Code: 0x0C, Data: [3]byte{0xC7, 0x12, 0x00}}
	if got := Decode(ev); !bytes.Equal(got, []byte{0xC7, 0x12}) {
		t.Fatalf("program change decode mismatch: %x", got)
	}
}

func TestDecodeIgnoresCableNibble(t *testing.T) {
	a := Decode(Event{Code: 0x09, Data: [3]byte{0x90, 0x40, 0x30}})
	b := Decode(Event{Code: 0xF9, Data: [3]byte{0x90, 0x40, 0x30}})
	if !bytes.Equal(a, b) {
		t.Fatalf("cable nibble changed decode output: %x vs %x", a, b)
	}
}

func TestDecodeSysExCodes(t *testing.T) {
	cases := []struct {
		cin  byte
		want []byte
	}{
		{CINSysExContinue, []byte{0x01, 0x02, 0x03}},
		{CINSysExEnd0, nil},
		{CINSysExEnd1, []byte{0x01}},
		{CINSysExEnd2, []byte{0x01, 0x02}},
	}
	for _, tc := range cases {
		ev := Event{Code: tc.cin, Data: [3]byte{0x01, 0x02, 0x03}}
		if got := Decode(ev); !bytes.Equal(got, tc.want) {
			t.Fatalf("CIN %#x: got %x want %x", tc.cin, got, tc.want)
		}
	}
}

func TestDecodeUnknownCINYieldsNothing(t *testing.T) {
	for _, cin := range []byte{0x0, 0x1} {
		ev := Event{Code: cin, Data: [3]byte{0x01, 0x02, 0x03}}
		if got := Decode(ev); len(got) != 0 {
			t.Fatalf("reserved CIN %#x produced output %x", cin, got)
		}
	}
}

func TestEventUint32RoundTrip(t *testing.T) {
	ev := Event{Code: 0x09, Data: [3]byte{0x90, 0x40, 0x30}}
	v := ev.Uint32()
	if v != 0x09904030 {
		t.Fatalf("pack mismatch: %#x", v)
	}
	if EventFromUint32(v) != ev {
		t.Fatalf("unpack mismatch: %+v", EventFromUint32(v))
	}
}

package oscwire

import (
	"bytes"
	"encoding/binary"
	"errors"

	"github.com/danmuck/osc2midi/internal/usbmidi"
)

// OSC addresses of the three messages the bridge speaks.
const (
	AddrHello     = "/osc2midi/hello"
	AddrMidiEvent = "/osc2midi/event"
	AddrBye       = "/osc2midi/bye"
)

// Wire layout. Every block (address, type tags, string arguments) is
// NUL-terminated and padded with NULs to the next 4-byte boundary.
const (
	helloPrefixLen = 20 // address (16) + ",is" tags (4)
	eventPrefixLen = 20 // address (16) + ",s" tags (4)
	ByePacketLen   = 16 // address only

	// Hello argument offsets: int32 port, then the padded name string.
	HelloPortOffset = helloPrefixLen
	HelloNameOffset = HelloPortOffset + 4

	// Event argument offsets: 8 hex digits, NUL, then pad.
	EventHexOffset = eventPrefixLen
	EventHexLen    = 8

	// MidiEventPacketLen is the fixed total length of an event datagram.
	MidiEventPacketLen = eventPrefixLen + EventHexLen + 4

	// MaxPacketLen bounds every datagram the bridge sends or inspects.
	MaxPacketLen = 256
)

var (
	ErrNameTooLong = errors.New("oscwire: port name too long")
)

var (
	msgHello     = template(AddrHello, ",is", helloPrefixLen)
	msgMidiEvent = template(AddrMidiEvent, ",s", eventPrefixLen)
	msgBye       = template(AddrBye, "", ByePacketLen)
)

// template builds an address block plus optional type-tag block and
// asserts the documented prefix length holds.
func template(addr, tags string, wantLen int) []byte {
	b := appendPadded(make([]byte, 0, wantLen), addr)
	if tags != "" {
		b = appendPadded(b, tags)
	}
	if len(b) != wantLen {
		panic("oscwire: template length mismatch for " + addr)
	}
	return b
}

// appendPadded appends s, its NUL terminator and padding NULs up to the
// next 4-byte boundary.
func appendPadded(dst []byte, s string) []byte {
	dst = append(dst, s...)
	for n := 1 + padBytesNeeded(len(s)+1); n > 0; n-- {
		dst = append(dst, 0)
	}
	return dst
}

// padBytesNeeded determines how many bytes fill up to the next 4-byte
// length.
func padBytesNeeded(elementLen int) int {
	return (4 - elementLen%4) % 4
}

// EncodeHello builds the hello datagram announcing the locally bound UDP
// port and the virtual MIDI port's display name. A name that would push
// the datagram past MaxPacketLen is rejected, never truncated.
func EncodeHello(port uint16, name string) ([]byte, error) {
	nameLen := len(name) + 1
	total := HelloNameOffset + nameLen + padBytesNeeded(nameLen)
	if total > MaxPacketLen {
		return nil, ErrNameTooLong
	}
	b := make([]byte, 0, total)
	b = append(b, msgHello...)
	b = binary.BigEndian.AppendUint32(b, uint32(port))
	b = appendPadded(b, name)
	return b, nil
}

// EncodeMidiEvent builds the fixed 32-byte event datagram carrying one
// packed MIDI event as 8 lowercase hex digits.
func EncodeMidiEvent(ev usbmidi.Event) []byte {
	b := make([]byte, 0, MidiEventPacketLen)
	b = append(b, msgMidiEvent...)
	b = AppendHex32(b, ev.Uint32())
	return append(b, 0, 0, 0, 0)
}

// EncodeBye builds the bye datagram.
func EncodeBye() []byte {
	b := make([]byte, ByePacketLen)
	copy(b, msgBye)
	return b
}

// Kind identifies which of the fixed message shapes a datagram matches.
type Kind int

const (
	KindUnknown Kind = iota
	KindHello
	KindMidiEvent
	KindBye
)

// Classify matches the leading address and type-tag bytes of a received
// datagram against the three fixed templates. Anything else is unknown
// and must be ignored by the caller.
func Classify(p []byte) Kind {
	switch {
	case bytes.HasPrefix(p, msgMidiEvent):
		return KindMidiEvent
	case bytes.HasPrefix(p, msgBye):
		return KindBye
	case bytes.HasPrefix(p, msgHello):
		return KindHello
	default:
		return KindUnknown
	}
}

// ParseMidiEvent extracts the packed event from an event datagram. A
// short datagram or an invalid hex payload yields ok=false; such packets
// are dropped by the caller, never surfaced as errors.
func ParseMidiEvent(p []byte) (usbmidi.Event, bool) {
	if len(p) < MidiEventPacketLen || !bytes.HasPrefix(p, msgMidiEvent) {
		return usbmidi.Event{}, false
	}
	v, ok := DecodeHex32(p[EventHexOffset : EventHexOffset+EventHexLen])
	if !ok {
		return usbmidi.Event{}, false
	}
	return usbmidi.EventFromUint32(v), true
}

package usbmidi

// Code Index Number values. The CIN occupies the low nibble of an event's
// code byte and fully determines how many of the three data bytes are
// meaningful.
const (
	CINSystemCommon2 byte = 0x2 // two-byte system common (quarter frame, song select)
	CINSystemCommon3 byte = 0x3 // three-byte system common (song position)
	CINSysExContinue byte = 0x4 // SysEx starts or continues, 3 data bytes
	CINSysExEnd0     byte = 0x5 // SysEx ends, no buffered data bytes
	CINSysExEnd1     byte = 0x6 // SysEx ends, 1 buffered data byte
	CINSysExEnd2     byte = 0x7 // SysEx ends, 2 buffered data bytes
	CINNoteOff       byte = 0x8
	CINNoteOn        byte = 0x9
	CINPolyPressure  byte = 0xA
	CINControlChange byte = 0xB
	CINProgramChange byte = 0xC
	CINChanPressure  byte = 0xD
	CINPitchBend     byte = 0xE
	CINSingleByte    byte = 0xF // real-time bytes, tune request and friends
)

// Event is one packed MIDI event. Code's high nibble is the cable number,
// the low nibble is the CIN. Unused trailing data bytes are zero.
type Event struct {
	Code byte
	Data [3]byte
}

// Cable returns the cable number (0-15).
func (e Event) Cable() byte { return e.Code >> 4 }

// CIN returns the Code Index Number.
func (e Event) CIN() byte { return e.Code & 0x0f }

// Uint32 packs the event big-endian: (code<<24)|(data0<<16)|(data1<<8)|data2.
func (e Event) Uint32() uint32 {
	return uint32(e.Code)<<24 | uint32(e.Data[0])<<16 | uint32(e.Data[1])<<8 | uint32(e.Data[2])
}

// EventFromUint32 is the inverse of Uint32.
func EventFromUint32(v uint32) Event {
	return Event{
		Code: byte(v >> 24),
		Data: [3]byte{byte(v >> 16), byte(v >> 8), byte(v)},
	}
}

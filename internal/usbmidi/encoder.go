package usbmidi

const (
	statusSysExStart byte = 0xF0
	statusSysExEnd   byte = 0xF7
	statusRealTime   byte = 0xF8 // 0xF8-0xFF
)

// Encoder accumulates a raw serial MIDI byte stream into packed events.
// It owns the running-status and SysEx state for exactly one cable and
// must not be shared between callers.
type Encoder struct {
	cable   byte
	status  byte
	data    [3]byte
	counter byte
	sysex   bool
}

// NewEncoder returns an encoder for the given cable number. Only the low
// four bits of cable are used.
func NewEncoder(cable int) *Encoder {
	return &Encoder{cable: byte(cable) & 0x0f}
}

// Cable returns the cable number events are tagged with.
func (e *Encoder) Cable() byte { return e.cable }

// Reset drops any partially accumulated message and open SysEx.
func (e *Encoder) Reset() {
	e.status = 0
	e.counter = 0
	e.sysex = false
}

// Feed consumes one raw MIDI byte and reports whether it completed a
// packed event. Bytes must arrive in stream order. A data byte with no
// active status is dropped.
func (e *Encoder) Feed(b byte) (Event, bool) {
	if b >= statusRealTime {
		// Real-time bytes may interleave with anything; emit without
		// touching the accumulator.
		return e.event(CINSingleByte, b, 0, 0), true
	}
	if b&0x80 != 0 {
		return e.feedStatus(b)
	}
	return e.feedData(b)
}

func (e *Encoder) feedStatus(b byte) (Event, bool) {
	if b == statusSysExEnd {
		if !e.sysex {
			// Stray terminator with no open SysEx.
			return Event{}, false
		}
		n := e.counter
		e.sysex = false
		e.status = 0
		e.counter = 0
		var d [3]byte
		copy(d[:], e.data[:n])
		return Event{Code: e.cable<<4 | (CINSysExEnd0 + n), Data: d}, true
	}

	// Any other status byte aborts an open SysEx and resets the
	// accumulator.
	e.sysex = false
	e.counter = 0
	e.status = b

	if b == statusSysExStart {
		e.sysex = true
		return Event{}, false
	}
	if statusDataBytes(b) == 0 {
		// Tune request and the undefined system commons carry no data;
		// emit immediately as a single-byte event.
		e.status = 0
		return e.event(CINSingleByte, b, 0, 0), true
	}
	return Event{}, false
}

func (e *Encoder) feedData(b byte) (Event, bool) {
	if e.sysex {
		e.data[e.counter] = b
		e.counter++
		if e.counter < 3 {
			return Event{}, false
		}
		e.counter = 0
		return e.event(CINSysExContinue, e.data[0], e.data[1], e.data[2]), true
	}
	if e.status == 0 {
		return Event{}, false
	}

	e.data[e.counter] = b
	e.counter++
	if e.counter < statusDataBytes(e.status) {
		return Event{}, false
	}

	status, d0, d1 := e.status, e.data[0], e.data[1]
	e.counter = 0
	if status < 0xF0 {
		// Channel voice message; status is retained for running status.
		cin := status >> 4
		if statusDataBytes(status) == 1 {
			return e.event(cin, status, d0, 0), true
		}
		return e.event(cin, status, d0, d1), true
	}

	// System common messages end any running status.
	e.status = 0
	if status == 0xF2 {
		return e.event(CINSystemCommon3, status, d0, d1), true
	}
	return e.event(CINSystemCommon2, status, d0, 0), true
}

func (e *Encoder) event(cin, d0, d1, d2 byte) Event {
	return Event{Code: e.cable<<4 | cin, Data: [3]byte{d0, d1, d2}}
}

// statusDataBytes returns how many data bytes the given status byte
// requires before its message is complete.
func statusDataBytes(status byte) byte {
	switch status & 0xF0 {
	case 0xC0, 0xD0: // program change, channel pressure
		return 1
	case 0xF0:
		switch status {
		case 0xF1, 0xF3: // quarter frame, song select
			return 1
		case 0xF2: // song position
			return 2
		default: // 0xF4-0xF6
			return 0
		}
	default: // note on/off, poly pressure, control change, pitch bend
		return 2
	}
}

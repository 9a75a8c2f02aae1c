package usbmidi

// Decode expands one packed event into its raw MIDI bytes. The CIN alone
// determines the output length; an unrecognized CIN yields nil, which
// callers must treat as nothing to forward rather than an error. The
// 0xF0/0xF7 SysEx framing bytes are never synthesized: the end-of-SysEx
// codes reproduce only the data bytes they carry, mirroring the encoder.
func Decode(ev Event) []byte {
	switch ev.CIN() {
	case CINSysExContinue, CINSystemCommon3:
		return []byte{ev.Data[0], ev.Data[1], ev.Data[2]}
	case CINSysExEnd0:
		return nil
	case CINSysExEnd1, CINSingleByte:
		return []byte{ev.Data[0]}
	case CINSysExEnd2, CINSystemCommon2:
		return []byte{ev.Data[0], ev.Data[1]}
	case CINProgramChange, CINChanPressure:
		return []byte{voiceStatus(ev), ev.Data[1]}
	case CINNoteOff, CINNoteOn, CINPolyPressure, CINControlChange, CINPitchBend:
		return []byte{voiceStatus(ev), ev.Data[1], ev.Data[2]}
	default:
		return nil
	}
}

// voiceStatus rebuilds a channel voice status byte from the CIN and the
// channel bits stored in data[0].
func voiceStatus(ev Event) byte {
	return ev.CIN()<<4 | ev.Data[0]&0x0f
}

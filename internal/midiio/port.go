// Package midiio opens the virtual MIDI port the bridge exposes to the
// rest of the system. It is the only package touching the MIDI driver;
// the codecs stay constructible without it.
package midiio

import (
	"fmt"

	"gitlab.com/gomidi/midi/v2/drivers"
	"gitlab.com/gomidi/midi/v2/drivers/rtmididrv"
)

// Port is a duplex virtual MIDI port. Raw input bytes flow out through
// the Listen callback; Send writes raw bytes to the output side.
type Port struct {
	drv  *rtmididrv.Driver
	in   drivers.In
	out  drivers.Out
	stop func()
}

// Open creates the virtual input and output ports under the given
// display name. Failures here are startup-fatal for the caller.
func Open(name string) (*Port, error) {
	drv, err := rtmididrv.New()
	if err != nil {
		return nil, fmt.Errorf("midiio: driver init: %w", err)
	}
	in, err := drv.OpenVirtualIn(name)
	if err != nil {
		drv.Close()
		return nil, fmt.Errorf("midiio: virtual input %q: %w", name, err)
	}
	out, err := drv.OpenVirtualOut(name)
	if err != nil {
		in.Close()
		drv.Close()
		return nil, fmt.Errorf("midiio: virtual output %q: %w", name, err)
	}
	return &Port{drv: drv, in: in, out: out}, nil
}

// Listen starts delivering raw MIDI bytes to onBytes. The slice passed
// to onBytes is only valid for the duration of the call.
func (p *Port) Listen(onBytes func([]byte)) error {
	stop, err := p.in.Listen(func(msg []byte, _ int32) {
		onBytes(msg)
	}, drivers.ListenConfig{
		TimeCode:        true,
		ActiveSense:     true,
		SysEx:           true,
		SysExBufferSize: 4096,
	})
	if err != nil {
		return fmt.Errorf("midiio: listen: %w", err)
	}
	p.stop = stop
	return nil
}

// Send writes one raw MIDI byte sequence to the output port.
func (p *Port) Send(raw []byte) error {
	if len(raw) == 0 {
		return nil
	}
	return p.out.Send(raw)
}

// Close stops the listener and releases ports before the driver.
func (p *Port) Close() {
	if p.stop != nil {
		p.stop()
		p.stop = nil
	}
	_ = p.in.Close()
	_ = p.out.Close()
	_ = p.drv.Close()
}

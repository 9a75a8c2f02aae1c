// Package bridge owns the poll/dispatch loop shuttling bytes between the
// MIDI collaborator and the UDP peer. All encoder state and socket
// handles are owned by one Bridge instance; there are no package-level
// handles.
package bridge

import (
	"context"
	"net"
	"time"

	"github.com/rs/zerolog"

	"github.com/danmuck/osc2midi/internal/oscwire"
	"github.com/danmuck/osc2midi/internal/usbmidi"
)

// MidiOut accepts raw MIDI byte sequences for the output side of the
// virtual port.
type MidiOut interface {
	Send([]byte) error
}

// Config wires a Bridge. The caller keeps ownership of Conn and closes
// it after Run returns.
type Config struct {
	Conn    net.PacketConn
	Peer    net.Addr
	MidiIn  <-chan []byte
	MidiOut MidiOut
	Name    string
	Cable   int
	Log     zerolog.Logger
}

// Bridge multiplexes the two data directions over one logical loop.
type Bridge struct {
	conn    net.PacketConn
	peer    net.Addr
	midiIn  <-chan []byte
	midiOut MidiOut
	enc     *usbmidi.Encoder
	name    string
	log     zerolog.Logger
}

func New(cfg Config) *Bridge {
	return &Bridge{
		conn:    cfg.Conn,
		peer:    cfg.Peer,
		midiIn:  cfg.MidiIn,
		midiOut: cfg.MidiOut,
		enc:     usbmidi.NewEncoder(cfg.Cable),
		name:    cfg.Name,
		log:     cfg.Log,
	}
}

// Run announces the bridge to the peer, then serves both directions
// until the peer says bye, the context is canceled, or the socket fails.
// Context cancellation sends a bye so the peer can drop this endpoint.
func (b *Bridge) Run(ctx context.Context) error {
	if err := b.sendHello(); err != nil {
		return err
	}

	recv := make(chan []byte, 16)
	readErr := make(chan error, 1)
	go b.readLoop(ctx, recv, readErr)

	// Unblock the reader when the context goes away.
	stop := context.AfterFunc(ctx, func() {
		_ = b.conn.SetReadDeadline(time.Now())
	})
	defer stop()

	for {
		select {
		case <-ctx.Done():
			b.sendBye()
			return nil
		case chunk, ok := <-b.midiIn:
			if !ok {
				b.sendBye()
				return nil
			}
			b.forwardMidi(chunk)
		case pkt := <-recv:
			if done := b.handleDatagram(pkt); done {
				b.log.Info().Msg("bye received, shutting down")
				return nil
			}
		case err := <-readErr:
			return err
		}
	}
}

// forwardMidi drains one raw input chunk byte-by-byte through the
// encoder and sends every completed event to the peer.
func (b *Bridge) forwardMidi(chunk []byte) {
	for _, raw := range chunk {
		ev, ok := b.enc.Feed(raw)
		if !ok {
			continue
		}
		if _, err := b.conn.WriteTo(oscwire.EncodeMidiEvent(ev), b.peer); err != nil {
			b.log.Warn().Err(err).Msg("event send failed")
			return
		}
		b.log.Debug().Str("event", oscwire.EncodeHex32(ev.Uint32())).Msg("event sent")
	}
}

// handleDatagram reports true when the loop should terminate. Malformed
// packets are dropped, never fatal.
func (b *Bridge) handleDatagram(pkt []byte) bool {
	switch oscwire.Classify(pkt) {
	case oscwire.KindMidiEvent:
		ev, ok := oscwire.ParseMidiEvent(pkt)
		if !ok {
			b.log.Debug().Int("len", len(pkt)).Msg("malformed event datagram dropped")
			return false
		}
		raw := usbmidi.Decode(ev)
		if len(raw) == 0 {
			return false
		}
		if err := b.midiOut.Send(raw); err != nil {
			b.log.Warn().Err(err).Msg("midi output failed")
		}
	case oscwire.KindBye:
		return true
	case oscwire.KindHello:
		// Hello is only ever sent by this side.
	default:
		b.log.Debug().Int("len", len(pkt)).Msg("unknown datagram ignored")
	}
	return false
}

func (b *Bridge) readLoop(ctx context.Context, recv chan<- []byte, readErr chan<- error) {
	buf := make([]byte, oscwire.MaxPacketLen)
	for {
		n, _, err := b.conn.ReadFrom(buf)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			if ne, ok := err.(net.Error); ok && ne.Timeout() {
				continue
			}
			readErr <- err
			return
		}
		pkt := make([]byte, n)
		copy(pkt, buf[:n])
		select {
		case recv <- pkt:
		case <-ctx.Done():
			return
		}
	}
}

func (b *Bridge) sendHello() error {
	var port uint16
	if addr, ok := b.conn.LocalAddr().(*net.UDPAddr); ok {
		port = uint16(addr.Port)
	}
	hello, err := oscwire.EncodeHello(port, b.name)
	if err != nil {
		return err
	}
	if _, err := b.conn.WriteTo(hello, b.peer); err != nil {
		return err
	}
	b.log.Info().Uint16("local_port", port).Str("name", b.name).Msg("hello sent")
	return nil
}

func (b *Bridge) sendBye() {
	if _, err := b.conn.WriteTo(oscwire.EncodeBye(), b.peer); err != nil {
		b.log.Warn().Err(err).Msg("bye send failed")
		return
	}
	b.log.Info().Msg("bye sent")
}

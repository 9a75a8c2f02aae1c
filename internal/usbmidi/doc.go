// Package usbmidi converts between a raw serial MIDI byte stream and
// fixed-size 4-byte packed events (USB MIDI class event packets).
//
// Ownership boundary:
// - Encoder: stateful byte-stream accumulator, one instance per cable
// - Decode: stateless packed-event to raw-byte expansion
package usbmidi

// Package oscwire owns the peer-facing datagram contract: the three
// fixed-layout messages (hello, event, bye) in the minimal subset of the
// OSC binary format this bridge speaks, and the hex transform used for
// event payloads.
package oscwire

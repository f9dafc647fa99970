// Package io provides the byte input and rune output channels of the
// interpreter. Stream adapts an io.Reader and io.Writer pair, and Buffer is an
// in-memory FIFO suitable for tests and embedding.
package io

// Input is a one-byte-at-a-time readable source.
type Input interface {
	// Receive blocks until one byte is available. ok is false, with a nil
	// err, when the input is exhausted.
	Receive() (value byte, ok bool, err error)
}

// Output receives the runes emitted by a program.
type Output interface {
	// Send writes a single rune to the channel.
	Send(value rune) error
}

// Channel is both an Input and an Output.
type Channel interface {
	Input
	Output
	// Rewind resets the channel to its initial state, if possible.
	Rewind()
}

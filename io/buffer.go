package io

import (
	"slices"
	"unicode/utf8"
)

// Buffer implements an in-memory FIFO of bytes.
// Received bytes are not discarded, so Rewind replays the whole buffer.
type Buffer struct {
	Capacity int // Capacity in bytes, zero for unbounded.

	ReadIndex int
	Data      []byte
}

var _ Channel = (*Buffer)(nil)

// NewBuffer creates a buffer holding a copy of data.
func NewBuffer(data []byte) *Buffer {
	return &Buffer{
		Data: slices.Clone(data),
	}
}

// Rewind moves the read position back to the start of the buffer.
func (buf *Buffer) Rewind() {
	buf.ReadIndex = 0
}

// Clear discards the contents of the buffer.
func (buf *Buffer) Clear() {
	buf.ReadIndex = 0
	buf.Data = buf.Data[:0]
}

// Len returns the number of unread bytes.
func (buf *Buffer) Len() int {
	return len(buf.Data) - buf.ReadIndex
}

// Receive returns the next unread byte, if any.
func (buf *Buffer) Receive() (value byte, ok bool, err error) {
	if buf.ReadIndex >= len(buf.Data) {
		return
	}

	value = buf.Data[buf.ReadIndex]
	ok = true
	buf.ReadIndex++

	return
}

// Send appends a rune, UTF-8 encoded, to the buffer.
// Returns ErrChannelFull if the encoded rune does not fit in the capacity.
func (buf *Buffer) Send(value rune) (err error) {
	encoded := utf8.AppendRune(nil, value)
	if buf.Capacity > 0 && len(buf.Data)+len(encoded) > buf.Capacity {
		err = ErrChannelFull
		return
	}

	buf.Data = append(buf.Data, encoded...)

	return
}

// String returns the unread contents of the buffer.
func (buf *Buffer) String() string {
	return string(buf.Data[buf.ReadIndex:])
}

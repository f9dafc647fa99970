package io

import (
	"errors"
	"io"
	"unicode/utf8"
)

// Stream provides sequential I/O over byte streams.
// It wraps an io.Reader for input and io.Writer for output. Input is read
// one byte per Read call, so no bytes are consumed beyond those requested.
type Stream struct {
	Input  io.Reader
	Output io.Writer
	CRLF   bool // If set, '\n' is sent as "\r\n" (raw terminals).

	Received int // Count of bytes received.
	Sent     int // Count of runes sent.
}

var _ Channel = (*Stream)(nil)

// NewStream creates a stream over the reader and writer. Either may be nil.
func NewStream(input io.Reader, output io.Writer) *Stream {
	return &Stream{
		Input:  input,
		Output: output,
	}
}

// Rewind is not possible on a stream; only the counters are reset.
func (st *Stream) Rewind() {
	st.Received = 0
	st.Sent = 0
}

// Receive reads a single byte from the input stream.
// End of file, or a nil reader, is reported as an exhausted input.
func (st *Stream) Receive() (value byte, ok bool, err error) {
	if st.Input == nil {
		return
	}

	var one [1]byte
	for {
		var n int
		n, err = st.Input.Read(one[:])
		if n == 1 {
			// Any error will be reported again by the next Read.
			err = nil
			value = one[0]
			ok = true
			st.Received++
			return
		}
		if errors.Is(err, io.EOF) {
			err = nil
			return
		}
		if err != nil {
			return
		}
	}
}

// Send writes a rune, UTF-8 encoded, to the output stream.
func (st *Stream) Send(value rune) (err error) {
	if st.Output == nil {
		return
	}

	var buf []byte
	if st.CRLF && value == '\n' {
		buf = append(buf, '\r')
	}
	buf = utf8.AppendRune(buf, value)

	_, err = st.Output.Write(buf)
	if err != nil {
		return
	}

	st.Sent++

	return
}

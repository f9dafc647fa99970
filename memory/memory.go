// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package memory implements the fixed length cell tape of the interpreter.
package memory

import (
	"fmt"
	"iter"
	"log"
	"strings"
)

// Cell is a single tape cell.
//
// Cells are signed 32-bit values with Go's two's-complement arithmetic:
// incrementing math.MaxInt32 yields math.MinInt32, and decrementing a zero
// cell yields -1. No clamping or 8-bit wrapping is applied.
type Cell int32

// Tape is a fixed length sequence of cells.
type Tape struct {
	Cell    []Cell
	Verbose bool
	Writes  int // Count of cell modifications since reset.
}

// NewTape creates a new zeroed tape of count cells.
func NewTape(count int) (tape *Tape) {
	tape = &Tape{
		Cell: make([]Cell, count),
	}

	return
}

// Reset zeros all cells and statistics.
func (tape *Tape) Reset() {
	clear(tape.Cell)
	tape.Writes = 0
}

// Len returns the number of cells on the tape.
func (tape *Tape) Len() int {
	return len(tape.Cell)
}

// Get returns the value of cell n.
func (tape *Tape) Get(n int) Cell {
	return tape.Cell[n]
}

// Set replaces the value of cell n.
func (tape *Tape) Set(n int, value Cell) {
	if tape.Verbose {
		log.Printf("memory: [%d] %d -> %d", n, tape.Cell[n], value)
	}
	tape.Cell[n] = value
	tape.Writes++
}

// Add adds delta to cell n, wrapping at the int32 bounds.
func (tape *Tape) Add(n int, delta Cell) {
	tape.Set(n, tape.Cell[n]+delta)
}

// NonZero returns the iterator of all non-zero cells, in tape order.
func (tape *Tape) NonZero() iter.Seq2[int, Cell] {
	return func(yield func(n int, value Cell) bool) {
		for n, value := range tape.Cell {
			if value == 0 {
				continue
			}
			if !yield(n, value) {
				return
			}
		}
	}
}

// String returns the non-zero cells as `[index]=value` pairs.
func (tape *Tape) String() string {
	var cells []string
	for n, value := range tape.NonZero() {
		cells = append(cells, fmt.Sprintf("[%d]=%d", n, value))
	}

	return strings.Join(cells, " ")
}

package cpu

import (
	"iter"
	"strings"
)

// Location of an instruction in its source text.
type Location struct {
	LineNo int // Line number, starting at 1.
	Column int // Column in runes, starting at 1.
}

// Program is the ordered instruction sequence produced by the Lexer.
type Program struct {
	Codes     []Code
	Locations []Location // Source location of each code, if known.
}

// Debug information for an instruction.
type Debug struct {
	Location
	Code  Code
	Valid bool
}

// Len returns the number of instructions.
func (prog *Program) Len() int {
	return len(prog.Codes)
}

// Debug returns the code and source location at ip.
func (prog *Program) Debug(ip int) (dbg Debug) {
	if ip < 0 || ip >= len(prog.Codes) {
		return
	}

	dbg.Code = prog.Codes[ip]
	dbg.Valid = true
	if ip < len(prog.Locations) {
		dbg.Location = prog.Locations[ip]
	}

	return
}

// All returns an iterator over the instruction positions and codes.
func (prog *Program) All() iter.Seq2[int, Code] {
	return func(yield func(ip int, code Code) bool) {
		for ip, code := range prog.Codes {
			if !yield(ip, code) {
				return
			}
		}
	}
}

// String returns the program as source text, without commentary.
func (prog *Program) String() string {
	var sb strings.Builder
	sb.Grow(len(prog.Codes))
	for _, code := range prog.Codes {
		sb.WriteString(code.String())
	}
	return sb.String()
}

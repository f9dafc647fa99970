// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"bufio"
	"errors"
	"io"
	"log"
	"strings"
)

// Lexer reduces Brainfuck source text to a Program.
//
// Every rune other than the eight instruction symbols is commentary and is
// dropped silently; the lexer never rejects its input.
type Lexer struct {
	Verbose  bool // If set, verbosely logs each instruction lexed.
	Comments int  // Count of runes dropped by the last Parse.
}

// Parse reads all of the source text from the reader.
// The only possible error is one reported by the reader itself.
func (lex *Lexer) Parse(in io.Reader) (prog *Program, err error) {
	prog = &Program{}
	lex.Comments = 0

	reader := bufio.NewReader(in)

	lineno := 1
	column := 0
	for {
		var r rune
		r, _, err = reader.ReadRune()
		if errors.Is(err, io.EOF) {
			err = nil
			break
		}
		if err != nil {
			return
		}

		column++

		code, ok := CodeOf(r)
		if !ok {
			lex.Comments++
			if r == '\n' {
				lineno++
				column = 0
			}
			continue
		}

		if lex.Verbose {
			log.Printf("lex: %d:%d %v", lineno, column, code)
		}

		prog.Codes = append(prog.Codes, code)
		prog.Locations = append(prog.Locations, Location{LineNo: lineno, Column: column})
	}

	return
}

// Lex reduces a source string to a Program.
func Lex(source string) (prog *Program) {
	lex := &Lexer{}

	// A strings.Reader never fails.
	prog, _ = lex.Parse(strings.NewReader(source))

	return
}

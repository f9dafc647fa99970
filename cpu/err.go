package cpu

import (
	"errors"

	"github.com/ezrec/brainfuck/translate"
)

var f = translate.From

var (
	// Compile errors
	ErrBracketUnbalanced = errors.New(f("unbalanced brackets"))
	ErrBracketUnclosed   = errors.New(f("missing closed bracket"))
	ErrTapeSize          = errors.New(f("tape size must be positive"))

	// Runtime errors
	ErrIpEmpty         = errors.New(f("ip empty"))
	ErrMemoryOverflow  = errors.New(f("memory overflow"))
	ErrMemoryUnderflow = errors.New(f("memory underflow"))
	ErrIo              = errors.New(f("io"))

	// Internal consistency errors
	ErrInternal    = errors.New(f("internal error"))
	ErrJumpMissing = errors.New(f("jump table missing entry"))
)

// ErrSyntax locates a compile error in the source.
type ErrSyntax struct {
	Location
	Ip  int
	Err error
}

func (err *ErrSyntax) Error() string {
	if err.LineNo == 0 {
		return f("instruction %d %v", err.Ip, err.Err)
	}
	return f("line %d column %d %v", err.LineNo, err.Column, err.Err)
}

func (err *ErrSyntax) Unwrap() error {
	return err.Err
}

type ErrOpcode Code

func (eo ErrOpcode) Error() string {
	return f("bad opcode %v", Code(eo).String())
}

func (eo ErrOpcode) Is(err error) (ok bool) {
	_, ok = err.(ErrOpcode)
	return
}

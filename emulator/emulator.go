// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package emulator runs Brainfuck programs to completion.
package emulator

import (
	"errors"
	"strings"

	"github.com/ezrec/brainfuck/config"
	"github.com/ezrec/brainfuck/cpu"
	"github.com/ezrec/brainfuck/io"
)

// Emulator state. CPU + tape + IO channels.
type Emulator struct {
	Verbose  bool         // If set, enables the per-instruction trace.
	*cpu.Cpu              // Reference to the execution engine.
	Program  *cpu.Program // Reference to the program being run.
}

// NewEmulator creates an emulator for the program.
// Construction fails if the program's brackets are unbalanced.
func NewEmulator(prog *cpu.Program, cfg config.Config) (emu *Emulator, err error) {
	engine, err := cpu.NewCpu(prog, cfg.TapeSize)
	if err != nil {
		return
	}

	emu = &Emulator{
		Verbose: cfg.Verbose,
		Cpu:     engine,
		Program: prog,
	}

	return
}

// Compile lexes the source text and creates an emulator for it.
func Compile(source string, cfg config.Config) (emu *Emulator, err error) {
	return NewEmulator(cpu.Lex(source), cfg)
}

// Reset the emulator state.
// - A rewindable input is rewound, so it is replayed by the next run.
// - An io.Buffer output is cleared; other rewindable outputs are rewound.
func (emu *Emulator) Reset() {
	emu.Cpu.Verbose = emu.Verbose

	if rw, ok := emu.Cpu.Input.(io.Channel); ok {
		rw.Rewind()
	}

	switch out := emu.Cpu.Output.(type) {
	case *io.Buffer:
		if io.Input(out) != emu.Cpu.Input {
			out.Clear()
		}
	case io.Channel:
		out.Rewind()
	}

	emu.Cpu.Reset()
}

// LineNo returns the source line of the next instruction, or 0 if unknown.
func (emu *Emulator) LineNo() int {
	return emu.Program.Debug(emu.Cpu.Ip).LineNo
}

// Tick performs a single instruction of the emulator.
// done is set once the program has run to completion.
func (emu *Emulator) Tick() (done bool, err error) {
	emu.Cpu.Verbose = emu.Verbose

	ip := emu.Cpu.Ip
	defer func() {
		if err != nil {
			dbg := emu.Program.Debug(ip)
			err = &ErrRuntime{Ip: ip, LineNo: dbg.LineNo, Column: dbg.Column, Err: err}
		}
	}()

	err = emu.Cpu.Tick()
	if errors.Is(err, cpu.ErrIpEmpty) {
		err = nil
		done = true
		return
	}

	return
}

// Run the program from its current state to completion.
// The output emitted so far is returned, even on error.
func (emu *Emulator) Run() (output string, err error) {
	for done := false; !done && err == nil; {
		done, err = emu.Tick()
	}

	output = emu.Cpu.Text()

	return
}

// Run the source text with the default configuration, using input as the
// byte input channel.
func Run(source string, input string) (output string, err error) {
	emu, err := Compile(source, config.Default())
	if err != nil {
		return
	}

	emu.Cpu.Input = io.NewBuffer([]byte(input))
	emu.Reset()

	output, err = emu.Run()

	return
}

// Listing returns the program source without commentary, wrapped at width
// instructions per line. A width of zero disables wrapping.
func (emu *Emulator) Listing(width int) string {
	text := emu.Program.String()
	if width <= 0 || len(text) <= width {
		return text
	}

	var lines []string
	for len(text) > width {
		lines = append(lines, text[:width])
		text = text[width:]
	}
	if len(text) > 0 {
		lines = append(lines, text)
	}

	return strings.Join(lines, "\n")
}

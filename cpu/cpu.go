// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"unicode/utf8"

	"github.com/ezrec/brainfuck/io"
	"github.com/ezrec/brainfuck/memory"
)

// Cpu is the execution engine for a single program.
type Cpu struct {
	Verbose bool // Set to enable the per-instruction state trace.

	Memory  *memory.Tape // Data tape.
	Program *Program     // Instructions being executed.
	Jumps   JumpTable    // Resolved loop targets of Program.

	Ip int // Current instruction pointer.
	Dp int // Current data pointer.

	Input  io.Input  // Byte input channel. A nil Input is always exhausted.
	Output io.Output // Optional sink receiving output as it is emitted.

	Ticks int // Instructions executed since reset.

	output strings.Builder
}

// NewCpu creates an engine for the program with a tape of count cells.
// The program's brackets are resolved; a program with unbalanced
// brackets never yields a Cpu.
func NewCpu(prog *Program, count int) (cpu *Cpu, err error) {
	if count <= 0 {
		err = ErrTapeSize
		return
	}

	jumps, err := Resolve(prog)
	if err != nil {
		return
	}

	cpu = &Cpu{
		Memory:  memory.NewTape(count),
		Program: prog,
		Jumps:   jumps,
	}

	return
}

// Reset the CPU state.
// - Zeros the instruction and data pointers.
// - Clears the tape and the output.
// - Zeros the ticks counter.
func (cpu *Cpu) Reset() {
	if cpu.Verbose {
		log.Printf("cpu: reset")
	}

	cpu.Ip = 0
	cpu.Dp = 0
	cpu.Memory.Reset()
	cpu.Ticks = 0
	cpu.output.Reset()
}

// Done returns true once the instruction pointer has left the program.
func (cpu *Cpu) Done() bool {
	return cpu.Ip >= cpu.Program.Len()
}

// Text returns the output emitted since reset.
func (cpu *Cpu) Text() string {
	return cpu.output.String()
}

// String returns the current CPU state as a string.
func (cpu *Cpu) String() (text string) {
	regs := []string{
		"next",
		"ip",
		"dp",
		"cell",
		"ticks",
		"tape",
	}
	for _, reg := range regs {
		var strval string
		switch reg {
		case "next":
			dbg := cpu.Program.Debug(cpu.Ip)
			if dbg.Valid {
				strval = fmt.Sprintf("%v (%v)", dbg.Code, dbg.Code.Name())
			} else {
				strval = "-"
			}
		case "ip":
			strval = fmt.Sprintf("%d", cpu.Ip)
		case "dp":
			strval = fmt.Sprintf("%d", cpu.Dp)
		case "cell":
			strval = fmt.Sprintf("%d", cpu.Memory.Get(cpu.Dp))
		case "ticks":
			strval = fmt.Sprintf("%d", cpu.Ticks)
		case "tape":
			strval = cpu.Memory.String()
		}
		text += fmt.Sprintf("% 5s: %v\n", reg, strval)
	}

	return
}

// Trace returns a single line snapshot of the state, as logged before each
// instruction in verbose mode.
func (cpu *Cpu) Trace() string {
	next := "-"
	if dbg := cpu.Program.Debug(cpu.Ip); dbg.Valid {
		next = dbg.Code.String()
	}

	return fmt.Sprintf("%v ip:%d dp:%d tape:{%v}", next, cpu.Ip, cpu.Dp, cpu.Memory.String())
}

// FetchCode fetches the next instruction to execute.
func (cpu *Cpu) FetchCode() (code Code, err error) {
	if cpu.Ip < 0 || cpu.Done() {
		err = ErrIpEmpty
		return
	}

	code = cpu.Program.Codes[cpu.Ip]

	return
}

// Tick executes a single instruction.
// ErrIpEmpty is returned once the program has run to completion.
func (cpu *Cpu) Tick() (err error) {
	cpu.Memory.Verbose = cpu.Verbose

	code, err := cpu.FetchCode()
	if err != nil {
		return
	}

	if cpu.Verbose {
		log.Printf("%s", cpu.Trace())
	}

	err = cpu.Execute(code)

	return
}

// Execute executes a single decoded instruction at the current Ip.
// On error Ip is left at the failed instruction.
func (cpu *Cpu) Execute(code Code) (err error) {
	next_ip := cpu.Ip + 1

	switch code {
	case OP_RIGHT:
		if cpu.Dp+1 >= cpu.Memory.Len() {
			err = ErrMemoryOverflow
			return
		}
		cpu.Dp++
	case OP_LEFT:
		if cpu.Dp == 0 {
			err = ErrMemoryUnderflow
			return
		}
		cpu.Dp--
	case OP_INC:
		cpu.Memory.Add(cpu.Dp, 1)
	case OP_DEC:
		cpu.Memory.Add(cpu.Dp, -1)
	case OP_OUT:
		value := rune(cpu.Memory.Get(cpu.Dp))
		if !utf8.ValidRune(value) {
			// Not a code point, nothing to emit.
			break
		}
		cpu.output.WriteRune(value)
		if cpu.Output != nil {
			err = cpu.Output.Send(value)
			if err != nil {
				err = errors.Join(ErrIo, err)
				return
			}
		}
	case OP_IN:
		if cpu.Input == nil {
			break
		}
		var value byte
		var ok bool
		value, ok, err = cpu.Input.Receive()
		if err != nil {
			err = errors.Join(ErrIo, err)
			return
		}
		if ok {
			cpu.Memory.Set(cpu.Dp, memory.Cell(value))
		}
	case OP_LOOP:
		if cpu.Memory.Get(cpu.Dp) == 0 {
			target, ok := cpu.Jumps.Target(cpu.Ip)
			if !ok {
				err = errors.Join(ErrInternal, ErrJumpMissing)
				return
			}
			next_ip = target + 1
		}
	case OP_POOL:
		if cpu.Memory.Get(cpu.Dp) != 0 {
			target, ok := cpu.Jumps.Target(cpu.Ip)
			if !ok {
				err = errors.Join(ErrInternal, ErrJumpMissing)
				return
			}
			next_ip = target + 1
		}
	default:
		err = errors.Join(ErrInternal, ErrOpcode(code))
		return
	}

	cpu.Ip = next_ip
	cpu.Ticks++

	return
}

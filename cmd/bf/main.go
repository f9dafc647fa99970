// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/tebeka/atexit"
	"golang.org/x/term"

	"github.com/ezrec/brainfuck/config"
	"github.com/ezrec/brainfuck/cpu"
	"github.com/ezrec/brainfuck/emulator"
	bfio "github.com/ezrec/brainfuck/io"
)

var (
	ErrNoProgram = errors.New("no program given")
	ErrArguments = errors.New("unknown arguments")
)

// LISTING_WIDTH is the line width of the -s listing.
const LISTING_WIDTH = 72

type options struct {
	compile    string
	configFile string
	tapeSize   int
	input      string
	output     string
	verbose    bool
	strip      bool
	raw        bool
}

func (opts *options) flagSet() (flags *flag.FlagSet) {
	flags = flag.NewFlagSet("bf", flag.ContinueOnError)

	flags.StringVar(&opts.compile, "c", "", ".bf file to run")
	flags.StringVar(&opts.configFile, "f", "", "Starlark configuration file")
	flags.IntVar(&opts.tapeSize, "t", config.DEFAULT_TAPE_SIZE, "Tape size, in cells")
	flags.StringVar(&opts.input, "i", "-", "Program input")
	flags.StringVar(&opts.output, "o", "-", "Program output")
	flags.BoolVar(&opts.verbose, "v", false, "Verbose mode")
	flags.BoolVar(&opts.strip, "s", false, "Print the program without commentary, do not execute")
	flags.BoolVar(&opts.raw, "r", false, "Raw terminal input (Ctrl-D is read as byte 4, not end of input)")

	return
}

// run executes the command line in args. Terminal state changed by raw
// mode is restored by the atexit handlers.
func run(args []string, stdin io.Reader, stdout io.Writer) (err error) {
	opts := &options{}
	flags := opts.flagSet()

	err = flags.Parse(args)
	if err != nil {
		return
	}

	if len(opts.compile) == 0 && flags.NArg() == 1 {
		opts.compile = flags.Arg(0)
	} else if flags.NArg() != 0 {
		err = fmt.Errorf("%w: %v", ErrArguments, flags.Args())
		return
	}

	if len(opts.compile) == 0 {
		err = ErrNoProgram
		return
	}

	cfg := config.Default()
	if len(opts.configFile) != 0 {
		cfg, err = config.Load(opts.configFile, nil)
		if err != nil {
			err = fmt.Errorf("%v: %w", opts.configFile, err)
			return
		}
	}

	// Flags given on the command line override the configuration file.
	flags.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "t":
			cfg.TapeSize = opts.tapeSize
		case "v":
			cfg.Verbose = opts.verbose
		case "r":
			cfg.Raw = opts.raw
		}
	})

	inf, err := os.Open(opts.compile)
	if err != nil {
		return
	}
	lexer := &cpu.Lexer{Verbose: cfg.Verbose}
	prog, err := lexer.Parse(inf)
	inf.Close()
	if err != nil {
		err = fmt.Errorf("%v: %w", opts.compile, err)
		return
	}

	emu, err := emulator.NewEmulator(prog, cfg)
	if err != nil {
		err = fmt.Errorf("%v: %w", opts.compile, err)
		return
	}

	if opts.strip {
		_, err = fmt.Fprintln(stdout, emu.Listing(LISTING_WIDTH))
		return
	}

	stream := bfio.NewStream(nil, nil)

	if opts.input == "-" {
		stream.Input = stdin
		if file, ok := stdin.(*os.File); ok && cfg.Raw && term.IsTerminal(int(file.Fd())) {
			fd := int(file.Fd())
			var state *term.State
			state, err = term.MakeRaw(fd)
			if err != nil {
				err = fmt.Errorf("stdin: %w", err)
				return
			}
			atexit.Register(func() {
				_ = term.Restore(fd, state)
			})
			stream.CRLF = true
		}
	} else {
		var inf *os.File
		inf, err = os.Open(opts.input)
		if err != nil {
			return
		}
		defer inf.Close()
		stream.Input = inf
	}

	if opts.output == "-" {
		stream.Output = stdout
	} else {
		var ouf *os.File
		ouf, err = os.Create(opts.output)
		if err != nil {
			return
		}
		defer ouf.Close()
		stream.Output = ouf
	}

	emu.Cpu.Input = stream
	emu.Cpu.Output = stream

	emu.Reset()
	for done := false; !done; {
		done, err = emu.Tick()
		if err != nil {
			if cfg.Verbose {
				log.Printf("%v", emu.Cpu.String())
			}
			err = fmt.Errorf("%v: %w", opts.compile, err)
			return
		}
	}

	if cfg.Verbose {
		log.Printf("%v: %d instructions, %d bytes in, %d runes out", opts.compile, emu.Cpu.Ticks, stream.Received, stream.Sent)
	}

	return
}

func main() {
	err := run(os.Args[1:], os.Stdin, os.Stdout)
	if errors.Is(err, flag.ErrHelp) {
		atexit.Exit(2)
	}
	if err != nil {
		atexit.Fatalf("%v: %v", os.Args[0], err)
	}

	atexit.Exit(0)
}

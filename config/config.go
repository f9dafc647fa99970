// Package config loads interpreter settings from Starlark configuration files.
//
// A configuration file is a Starlark program whose global variables
// override the defaults:
//
//	tape_size = 30 * KiB  # int, number of cells
//	verbose = False        # bool, per-instruction state trace
//	raw = True             # bool, raw terminal input
//
// Unknown globals are ignored, so helper variables may be used freely.
package config

import (
	"errors"
	"log"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/brainfuck/translate"
)

var f = translate.From

const (
	DEFAULT_TAPE_SIZE = 1024 // Default number of tape cells.
)

var (
	ErrConfigType  = errors.New(f("wrong type"))
	ErrConfigValue = errors.New(f("invalid value"))
)

// ErrConfig locates a configuration error.
type ErrConfig struct {
	Name string
	Err  error
}

func (err *ErrConfig) Error() string {
	return f("%v: %v", err.Name, err.Err)
}

func (err *ErrConfig) Unwrap() error {
	return err.Err
}

// Config holds the interpreter settings.
type Config struct {
	TapeSize int  // Number of tape cells.
	Verbose  bool // Log interpreter state before each instruction.
	Raw      bool // Put a terminal stdin into raw mode.
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		TapeSize: DEFAULT_TAPE_SIZE,
	}
}

// predeclared names visible to configuration files.
var predeclared = starlark.StringDict{
	"DEFAULT_TAPE_SIZE": starlark.MakeInt(DEFAULT_TAPE_SIZE),
	"KiB":               starlark.MakeInt(1024),
}

// Load evaluates the configuration file over the defaults.
// If src is nil the file is read from filename; otherwise src may be a
// string, []byte or io.Reader holding the file contents.
func Load(filename string, src any) (cfg Config, err error) {
	cfg = Default()

	thread := &starlark.Thread{
		Name: filename,
		Print: func(thread *starlark.Thread, msg string) {
			log.Printf("%v: %v", thread.Name, msg)
		},
	}
	opts := syntax.FileOptions{
		TopLevelControl: true,
		GlobalReassign:  true,
	}
	globals, err := starlark.ExecFileOptions(&opts, thread, filename, src, predeclared)
	if err != nil {
		return
	}

	err = cfg.apply(globals)

	return
}

// apply copies the recognized globals into the configuration.
func (cfg *Config) apply(globals starlark.StringDict) (err error) {
	if value, ok := globals["tape_size"]; ok {
		st_int, ok := value.(starlark.Int)
		if !ok {
			return &ErrConfig{Name: "tape_size", Err: ErrConfigType}
		}
		size, ok := st_int.Int64()
		if !ok || size <= 0 || int64(int(size)) != size {
			return &ErrConfig{Name: "tape_size", Err: ErrConfigValue}
		}
		cfg.TapeSize = int(size)
	}

	flags := []struct {
		name  string
		field *bool
	}{
		{"verbose", &cfg.Verbose},
		{"raw", &cfg.Raw},
	}
	for _, flag := range flags {
		value, ok := globals[flag.name]
		if !ok {
			continue
		}
		st_bool, ok := value.(starlark.Bool)
		if !ok {
			return &ErrConfig{Name: flag.name, Err: ErrConfigType}
		}
		*flag.field = bool(st_bool)
	}

	return
}

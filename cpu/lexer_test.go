package cpu

import (
	"bytes"
	"errors"
	"log"
	"os"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
)

func TestLex(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name   string
		source string
		codes  []Code
	}){
		{"empty", "", nil},
		{"comment", "hello, world.", []Code{OP_IN, OP_OUT}},
		{"all", "><+-.,[]", []Code{OP_RIGHT, OP_LEFT, OP_INC, OP_DEC, OP_OUT, OP_IN, OP_LOOP, OP_POOL}},
		{"spaced", " + \t-\n> ", []Code{OP_INC, OP_DEC, OP_RIGHT}},
		{"unicode", "→+é[]✓", []Code{OP_INC, OP_LOOP, OP_POOL}},
	}

	for _, entry := range table {
		prog := Lex(entry.source)
		assert.Equal(entry.codes, prog.Codes, entry.name)
		assert.Equal(len(prog.Codes), len(prog.Locations), entry.name)
	}
}

func TestLexer_Parse(t *testing.T) {
	assert := assert.New(t)

	source := []string{
		"Cell 0 counts",
		"  +++[",
		"  >+<-]",
	}

	lex := &Lexer{}
	prog, err := lex.Parse(strings.NewReader(strings.Join(source, "\n")))
	assert.NoError(err)

	assert.Equal("+++[>+<-]", prog.String())
	assert.Equal([]Location{
		{2, 3}, {2, 4}, {2, 5}, {2, 6},
		{3, 3}, {3, 4}, {3, 5}, {3, 6}, {3, 7},
	}, prog.Locations)

	// Everything else, including the two newlines, is commentary.
	assert.Equal(len("Cell 0 counts")+2+2+2, lex.Comments)
}

func TestLexer_Parse_Error(t *testing.T) {
	assert := assert.New(t)

	failure := errors.New("read failed")

	lex := &Lexer{}
	_, err := lex.Parse(iotest.ErrReader(failure))
	assert.ErrorIs(err, failure)
}

func TestLexer_Verbose(t *testing.T) {
	assert := assert.New(t)

	logged := &bytes.Buffer{}
	log.SetOutput(logged)
	defer log.SetOutput(os.Stderr)

	lex := &Lexer{Verbose: true}
	_, err := lex.Parse(strings.NewReader("x+\n-"))
	assert.NoError(err)

	assert.Contains(logged.String(), "lex: 1:2 +")
	assert.Contains(logged.String(), "lex: 2:1 -")
}

func TestLex_Length(t *testing.T) {
	assert := assert.New(t)

	sources := []string{
		"",
		"no code here",
		"+[-->.<]",
		"Hello, World! [This is a comment.] -> <-",
		"\x00\xff+\xfe-",
	}

	for _, source := range sources {
		var expected strings.Builder
		for _, r := range source {
			if strings.ContainsRune("><+-.,[]", r) {
				expected.WriteRune(r)
			}
		}

		lex := &Lexer{}
		prog, err := lex.Parse(strings.NewReader(source))
		assert.NoError(err)
		assert.Equal(expected.Len(), prog.Len(), source)
		assert.Equal(expected.String(), prog.String(), source)
	}
}

package cpu

// Code is a single interpreter instruction.
type Code int

//go:generate go tool stringer -linecomment -type=Code
const (
	OP_RIGHT = Code(0) // >
	OP_LEFT  = Code(1) // <
	OP_INC   = Code(2) // +
	OP_DEC   = Code(3) // -
	OP_OUT   = Code(4) // .
	OP_IN    = Code(5) // ,
	OP_LOOP  = Code(6) // [
	OP_POOL  = Code(7) // ]
)

// codeMap is a map of source runes to codes.
var codeMap = map[rune]Code{
	'>': OP_RIGHT,
	'<': OP_LEFT,
	'+': OP_INC,
	'-': OP_DEC,
	'.': OP_OUT,
	',': OP_IN,
	'[': OP_LOOP,
	']': OP_POOL,
}

// codeName is the long form name of each code, for diagnostics.
var codeName = [...]string{
	OP_RIGHT: "right",
	OP_LEFT:  "left",
	OP_INC:   "inc",
	OP_DEC:   "dec",
	OP_OUT:   "out",
	OP_IN:    "in",
	OP_LOOP:  "loop",
	OP_POOL:  "pool",
}

// CodeOf returns the code for a source rune. ok is false for any rune that
// is not one of the eight instruction symbols.
func CodeOf(r rune) (code Code, ok bool) {
	code, ok = codeMap[r]
	return
}

// Valid returns true if the code is one of the eight instructions.
func (code Code) Valid() bool {
	return code >= OP_RIGHT && code <= OP_POOL
}

// Bracket returns true for the loop-start and loop-end codes.
func (code Code) Bracket() bool {
	return code == OP_LOOP || code == OP_POOL
}

// Name returns the long form name of the code.
func (code Code) Name() string {
	if !code.Valid() {
		return code.String()
	}
	return codeName[code]
}

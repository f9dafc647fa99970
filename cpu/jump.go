package cpu

// NO_JUMP marks a position in a JumpTable that is not a bracket.
const NO_JUMP = -1

// JumpTable maps the position of each loop bracket to the position of its
// partner. The mapping is symmetric: jumps[jumps[ip]] == ip for every
// bracket position ip. Every other position holds NO_JUMP.
type JumpTable []int

// Resolve pairs the loop brackets of the program in a single pass.
//
// A loop-end with no pending loop-start fails with ErrBracketUnbalanced, and
// loop-starts left open at the end of the program fail with
// ErrBracketUnclosed. Both are reported as an ErrSyntax at the offending
// bracket, and no table is returned.
func Resolve(prog *Program) (jumps JumpTable, err error) {
	var pending Stack

	table := make(JumpTable, prog.Len())
	for ip, code := range prog.All() {
		table[ip] = NO_JUMP
		switch code {
		case OP_LOOP:
			pending.Push(ip)
		case OP_POOL:
			start, ok := pending.Pop()
			if !ok {
				err = prog.syntaxError(ip, ErrBracketUnbalanced)
				return
			}
			table[start] = ip
			table[ip] = start
		}
	}

	if start, ok := pending.Bottom(); ok {
		err = prog.syntaxError(start, ErrBracketUnclosed)
		return
	}

	jumps = table
	return
}

// Target returns the partner of the bracket at ip.
func (jumps JumpTable) Target(ip int) (target int, ok bool) {
	if ip < 0 || ip >= len(jumps) {
		return
	}

	target = jumps[ip]
	ok = target != NO_JUMP

	return
}

// syntaxError annotates err with the location of ip.
func (prog *Program) syntaxError(ip int, err error) error {
	return &ErrSyntax{
		Ip:       ip,
		Location: prog.Debug(ip).Location,
		Err:      err,
	}
}

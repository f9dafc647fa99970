package cpu

// Stack holds the positions of loop-starts awaiting their loop-end.
// Nesting depth is unbounded.
type Stack struct {
	Data []int
}

// Push a position onto the stack.
func (s *Stack) Push(ip int) {
	s.Data = append(s.Data, ip)
}

// Pop the innermost pending position.
func (s *Stack) Pop() (ip int, ok bool) {
	depth := len(s.Data)
	if depth == 0 {
		return
	}

	ip, ok = s.Data[depth-1], true
	s.Data = s.Data[:depth-1]

	return
}

// Bottom returns the outermost pending position.
func (s *Stack) Bottom() (ip int, ok bool) {
	if len(s.Data) == 0 {
		return
	}

	return s.Data[0], true
}

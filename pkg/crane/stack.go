package crane

// Stack is a last-in first-out pile of crates, bottom first.
type Stack struct {
	crates []Crate
}

// Push puts crates on top, in order.
func (s *Stack) Push(crates ...Crate) {
	s.crates = append(s.crates, crates...)
}

// Pop removes the top crate.
func (s *Stack) Pop() (Crate, bool) {
	if len(s.crates) == 0 {
		return Crate{}, false
	}
	top := s.crates[len(s.crates)-1]
	s.crates = s.crates[:len(s.crates)-1]
	return top, true
}

// PopN removes up to n crates from the top and returns them bottom first.
func (s *Stack) PopN(n int) []Crate {
	i := max(len(s.crates)-n, 0)
	taken := append([]Crate(nil), s.crates[i:]...)
	s.crates = s.crates[:i]
	return taken
}

// Top returns the top crate without removing it.
func (s *Stack) Top() (Crate, bool) {
	if len(s.crates) == 0 {
		return Crate{}, false
	}
	return s.crates[len(s.crates)-1], true
}

// Len returns the number of crates.
func (s *Stack) Len() int {
	return len(s.crates)
}

// Crates returns a copy of the stack, bottom first.
func (s *Stack) Crates() []Crate {
	return append([]Crate(nil), s.crates...)
}

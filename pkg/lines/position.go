package lines

// Position counts the physical lines consumed from a Source. It is used for
// diagnostics only.
type Position struct {
	n int
}

// Curr returns the 1-based index of the last consumed line, 0 before any.
func (p Position) Curr() int {
	return p.n
}

// Advance moves past one line.
func (p *Position) Advance() {
	p.n++
}

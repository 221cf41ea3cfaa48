package lines

import (
	"bufio"
	"io"

	"github.com/arthur-debert/cranes/pkg/errors"
)

// maxLine bounds a single input line.
const maxLine = 1024 * 1024

// Source is a buffered line cursor over an io.Reader. Line terminators
// ("\n" and "\r\n") are stripped. Read failures are sticky.
type Source struct {
	sc  *bufio.Scanner
	pos Position

	line   string
	peeked bool
	eof    bool
	err    error
}

// NewSource returns a Source positioned before the first line of r.
func NewSource(r io.Reader) *Source {
	return NewSourceAt(r, 0)
}

// NewSourceAt returns a Source whose Position starts at pos, for readers
// that pick up in the middle of a larger input.
func NewSourceAt(r io.Reader, pos int) *Source {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), maxLine)
	return &Source{sc: sc, pos: Position{n: pos}}
}

// Pos returns the index of the last consumed line.
func (s *Source) Pos() int {
	return s.pos.Curr()
}

// Peek returns the next line without consuming it. ok is false at the end
// of input or after a read failure, which is returned as err.
func (s *Source) Peek() (line string, ok bool, err error) {
	if !s.fill() {
		return "", false, s.err
	}
	return s.line, true, nil
}

// Next consumes and returns the next line.
func (s *Source) Next() (line string, ok bool, err error) {
	line, ok, err = s.Peek()
	if ok {
		s.peeked = false
		s.pos.Advance()
	}
	return line, ok, err
}

// Err returns the read failure that stopped the Source, if any.
func (s *Source) Err() error {
	return s.err
}

// Annotate attaches code and the current line to a parse failure. Read
// failures already carry ErrIO and their line and are returned as is.
func (s *Source) Annotate(err error, code errors.ErrorCode) error {
	if err == nil {
		return nil
	}
	if errors.IsErrorCode(err, errors.ErrIO) {
		return err
	}
	return errors.Wrapf(err, code, "line %d", s.Pos()).At(s.Pos())
}

func (s *Source) fill() bool {
	if s.peeked {
		return true
	}
	if s.eof || s.err != nil {
		return false
	}
	if !s.sc.Scan() {
		if err := s.sc.Err(); err != nil {
			s.err = errors.Wrap(err, errors.ErrIO, "read line").At(s.Pos() + 1)
		} else {
			s.eof = true
		}
		return false
	}
	s.line = s.sc.Text()
	s.peeked = true
	return true
}

package crane

import (
	"strconv"
	"strings"

	"github.com/arthur-debert/cranes/pkg/errors"
	"github.com/arthur-debert/cranes/pkg/lines"
)

// Layout maps the stack ids printed under a picture to column indices.
type Layout struct {
	ids   []int
	index map[int]int
}

// ParseLayout assigns each whitespace separated id the next column, left
// to right. Ids must be unique.
func ParseLayout(s string) (Layout, error) {
	l := Layout{index: make(map[int]int)}
	for col, tok := range strings.Fields(s) {
		id, err := parseNumber(tok)
		if err != nil {
			return Layout{}, &LayoutParseError{Kind: LayoutBadID, Token: tok, Err: err}
		}
		if _, dup := l.index[id]; dup {
			return Layout{}, &LayoutParseError{Kind: LayoutDuplicate, ID: id, Token: tok}
		}
		l.index[id] = col
		l.ids = append(l.ids, id)
	}
	return l, nil
}

// ReadLayout decodes the next non-blank line of src as a Layout.
func ReadLayout(src *lines.Source) (Layout, error) {
	l, ok, err := lines.Next(src, lines.Trimmed(ParseLayout))
	if err != nil {
		return Layout{}, src.Annotate(err, errors.ErrLayoutDecode)
	}
	if !ok {
		return Layout{}, errors.Wrap(&LayoutParseError{Kind: LayoutMissing}, errors.ErrLayoutDecode, "end of input").At(src.Pos())
	}
	return l, nil
}

// Len returns the number of stacks.
func (l Layout) Len() int {
	return len(l.ids)
}

// IDs returns the stack ids, left to right.
func (l Layout) IDs() []int {
	return append([]int(nil), l.ids...)
}

// Index returns the column of stack id.
func (l Layout) Index(id int) (int, bool) {
	col, ok := l.index[id]
	return col, ok
}

// parseNumber accepts unsigned decimal integers that fit an int.
func parseNumber(s string) (int, error) {
	n, err := strconv.ParseUint(s, 10, strconv.IntSize-1)
	if err != nil {
		return 0, err
	}
	return int(n), nil
}

package crane

import (
	"fmt"
	"slices"
	"strings"

	"github.com/arthur-debert/cranes/pkg/errors"
	"github.com/arthur-debert/cranes/pkg/lines"
)

// CrateRow is one decoded picture line, left to right. A nil slot holds no
// crate.
type CrateRow struct {
	slots []*Crate
	// line is the source line the row was read from, 0 if unknown.
	line int
}

// NewCrateRow builds a row from labels, a space marking an empty slot.
func NewCrateRow(labels string) CrateRow {
	var row CrateRow
	for _, r := range labels {
		if r == ' ' {
			row.slots = append(row.slots, nil)
			continue
		}
		c := NewCrate(r)
		row.slots = append(row.slots, &c)
	}
	return row
}

// Len returns the number of slots in the row.
func (r CrateRow) Len() int {
	return len(r.slots)
}

// Line returns the source line the row was read from, 0 if it was not read
// from a Source.
func (r CrateRow) Line() int {
	return r.line
}

// At returns the crate in slot i, if any.
func (r CrateRow) At(i int) (Crate, bool) {
	if i < 0 || i >= len(r.slots) || r.slots[i] == nil {
		return Crate{}, false
	}
	return *r.slots[i], true
}

// ParseCrateRow splits a picture line into fixed width slots. Leading and
// trailing blank slots are kept, so the line must not be trimmed first.
func ParseCrateRow(s string) (CrateRow, error) {
	var row CrateRow
	runes := []rune(s)
	for start := 0; start < len(runes); start += slotWidth {
		slot := strings.TrimSpace(string(runes[start:min(start+slotWidth, len(runes))]))
		if slot == "" {
			row.slots = append(row.slots, nil)
			continue
		}
		c, err := ParseCrate(slot)
		if err != nil {
			return CrateRow{}, fmt.Errorf("slot %d: %w", len(row.slots)+1, err)
		}
		row.slots = append(row.slots, &c)
	}
	return row, nil
}

// rowParser skips blank lines but parses the others untrimmed.
var rowParser = lines.ParserFunc[CrateRow](func(line string) (CrateRow, lines.Step, error) {
	if strings.TrimSpace(line) == "" {
		return CrateRow{}, lines.Skip, nil
	}
	row, err := ParseCrateRow(line)
	return row, lines.Stop, err
})

// CrateRowReader reads picture rows from a Source.
type CrateRowReader struct {
	src *lines.Source
}

// NewCrateRowReader returns a reader over src.
func NewCrateRowReader(src *lines.Source) *CrateRowReader {
	return &CrateRowReader{src: src}
}

// Next returns the next row in file order. Every non-blank line must be a
// picture row.
func (r *CrateRowReader) Next() (CrateRow, bool, error) {
	row, ok, err := lines.Next[CrateRow](r.src, rowParser)
	if err != nil {
		return CrateRow{}, false, r.src.Annotate(err, errors.ErrRowDecode)
	}
	return row, ok, nil
}

// ReadRows reads every remaining row and returns them bottom row first.
func (r *CrateRowReader) ReadRows() ([]CrateRow, error) {
	var rows []CrateRow
	for {
		row, ok, err := r.Next()
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		row.line = r.src.Pos()
		rows = append(rows, row)
	}
	slices.Reverse(rows)
	return rows, nil
}

// Rows reads rows up to the first line that is not one, leaving that
// line in the Source. Rows are returned bottom row first.
func (r *CrateRowReader) Rows() []CrateRow {
	var rows []CrateRow
	for {
		row, ok := lines.NextIfOk[CrateRow](r.src, rowParser)
		if !ok {
			break
		}
		row.line = r.src.Pos()
		rows = append(rows, row)
	}
	slices.Reverse(rows)
	return rows
}

package crane

import (
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/cranes/pkg/errors"
	"github.com/arthur-debert/cranes/pkg/lines"
	"github.com/arthur-debert/cranes/pkg/logging"
)

// ReadDrawing decodes the picture and layout sections of r into a filled
// Platform. The returned LiftReader continues on the same input, so its
// line numbers count from the top of r.
func ReadDrawing(r io.Reader) (*Platform, *LiftReader, error) {
	logger := logging.GetLogger("crane.drawing")
	src := lines.NewSource(r)

	rows := NewCrateRowReader(src).Rows()
	if err := rejectedRow(src); err != nil {
		return nil, nil, err
	}
	layout, err := ReadLayout(src)
	if err != nil {
		return nil, nil, err
	}

	p := NewPlatform(layout)
	if err := p.Fill(rows); err != nil {
		return nil, nil, err
	}

	logger.Trace().
		Int("rows", len(rows)).
		Int("stacks", layout.Len()).
		Int("line", src.Pos()).
		Msg("Drawing read")
	return p, NewLiftReader(src), nil
}

// rejectedRow reports the line that stopped the picture as a row failure
// when it looks like a crate row. Anything else is left for ReadLayout.
func rejectedRow(src *lines.Source) error {
	line, ok, _ := src.Peek()
	if !ok || !strings.HasPrefix(strings.TrimSpace(line), "[") {
		return nil
	}
	if _, err := ParseCrateRow(line); err != nil {
		_, _, _ = src.Next()
		return src.Annotate(err, errors.ErrRowDecode)
	}
	return nil
}

// Draw renders the stacks as a picture followed by the layout line, in the
// format ReadDrawing accepts.
func (p *Platform) Draw() string {
	height := 0
	for i := range p.stacks {
		height = max(height, p.stacks[i].Len())
	}

	var b strings.Builder
	for level := height - 1; level >= 0; level-- {
		slots := make([]string, len(p.stacks))
		for i := range p.stacks {
			slots[i] = "   "
			if level < p.stacks[i].Len() {
				slots[i] = p.stacks[i].crates[level].String()
			}
		}
		b.WriteString(strings.TrimRight(strings.Join(slots, " "), " "))
		b.WriteByte('\n')
	}

	ids := make([]string, 0, p.layout.Len())
	for _, id := range p.layout.IDs() {
		ids = append(ids, fmt.Sprintf("%-3s", fmt.Sprintf(" %d", id)))
	}
	b.WriteString(strings.TrimRight(strings.Join(ids, " "), " "))
	b.WriteByte('\n')
	return b.String()
}

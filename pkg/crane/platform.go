package crane

import (
	stderrors "errors"
	"fmt"
	"iter"
	"strings"

	"github.com/arthur-debert/cranes/pkg/errors"
	"github.com/arthur-debert/cranes/pkg/logging"
)

// Stats counts what a Platform did during its run.
type Stats struct {
	// Lifts is the number of instructions applied.
	Lifts int `json:"lifts" yaml:"lifts" toml:"lifts"`
	// Moved is the number of crates moved.
	Moved int `json:"moved" yaml:"moved" toml:"moved"`
	// ShortLifts counts lifts that asked for more crates than the origin held.
	ShortLifts int `json:"short_lifts" yaml:"short_lifts" toml:"short_lifts"`
}

// Platform owns the stacks and the Layout addressing them.
type Platform struct {
	stacks []Stack
	layout Layout
	stats  Stats
}

// NewPlatform returns a Platform with one empty stack per layout id.
func NewPlatform(layout Layout) *Platform {
	return &Platform{
		stacks: make([]Stack, layout.Len()),
		layout: layout,
	}
}

// Layout returns the layout the Platform was built from.
func (p *Platform) Layout() Layout {
	return p.layout
}

// InsertRow pushes the row's crates onto the matching stacks.
func (p *Platform) InsertRow(row CrateRow) error {
	for col := 0; col < row.Len(); col++ {
		c, ok := row.At(col)
		if !ok {
			continue
		}
		if col >= len(p.stacks) {
			return errors.Newf(errors.ErrRowDecode, "crate %s in slot %d, layout has %d stacks", c, col+1, len(p.stacks)).
				WithDetail("slot", col+1)
		}
		p.stacks[col].Push(c)
	}
	return nil
}

// Fill inserts rows, bottom row first. Failures carry the row's source
// line when it is known.
func (p *Platform) Fill(rows []CrateRow) error {
	for i, row := range rows {
		err := p.InsertRow(row)
		if err == nil {
			continue
		}
		if line := row.Line(); line > 0 {
			return errors.Wrapf(err, errors.ErrRowDecode, "line %d", line).At(line)
		}
		return errors.Wrapf(err, errors.ErrRowDecode, "row %d from the bottom", i+1)
	}
	return nil
}

// Lift moves crates one at a time.
func (p *Platform) Lift(l UncheckedLift) error {
	return p.Apply(l, SingleCrate)
}

// LiftBlock moves crates as one block.
func (p *Platform) LiftBlock(l UncheckedLift) error {
	return p.Apply(l, Block)
}

// Apply checks l against the Layout and moves its crates using mode. An
// origin holding fewer crates than requested gives up all it has.
func (p *Platform) Apply(l UncheckedLift, mode Mode) error {
	checked, err := l.Check(p.layout)
	if err != nil {
		return errors.Wrapf(err, errors.ErrRouteInvalid, "%s", l)
	}
	p.apply(checked, mode)
	return nil
}

func (p *Platform) apply(l CheckedLift, mode Mode) {
	orig := &p.stacks[l.route.orig]
	dest := &p.stacks[l.route.dest]

	moved := 0
	switch mode {
	case Block:
		block := orig.PopN(l.count)
		dest.Push(block...)
		moved = len(block)
	default:
		for moved < l.count {
			c, ok := orig.Pop()
			if !ok {
				break
			}
			dest.Push(c)
			moved++
		}
	}

	p.stats.Lifts++
	p.stats.Moved += moved
	if moved < l.count {
		p.stats.ShortLifts++
	}
}

// TryLifts applies lifts in order, stopping at the first decode or route
// failure. Lifts already applied are kept.
func (p *Platform) TryLifts(lifts iter.Seq2[UncheckedLift, error], mode Mode) error {
	n := 0
	for l, err := range lifts {
		if err != nil {
			return err
		}
		n++
		if err := p.Apply(l, mode); err != nil {
			var coded *errors.Error
			if stderrors.As(err, &coded) {
				coded.WithDetail("lift", n)
			}
			return err
		}
	}
	return nil
}

// Run applies every instruction of r. Route failures are reported on the
// line of the offending instruction.
func (p *Platform) Run(r *LiftReader, mode Mode) error {
	logger := logging.GetLogger("crane.platform")
	logger.Trace().Str("mode", mode.String()).Int("stacks", len(p.stacks)).Msg("Run started")

	err := p.TryLifts(r.All(), mode)
	var coded *errors.Error
	if stderrors.As(err, &coded) && coded.Code == errors.ErrRouteInvalid {
		// Lifts are read lazily, so the reader still sits on the failed one.
		coded.Message = fmt.Sprintf("line %d: %s", r.Pos(), coded.Message)
		coded.At(r.Pos())
	}

	logger.Trace().
		Int("lifts", p.stats.Lifts).
		Int("moved", p.stats.Moved).
		Int("shortLifts", p.stats.ShortLifts).
		Msg("Run finished")
	return err
}

// TopRow returns the label on top of every stack, a space for an empty one.
func (p *Platform) TopRow() string {
	var b strings.Builder
	for i := range p.stacks {
		c, ok := p.stacks[i].Top()
		if !ok {
			b.WriteRune(' ')
			continue
		}
		b.WriteRune(c.Label())
	}
	return b.String()
}

// Stacks returns a copy of every stack, bottom first.
func (p *Platform) Stacks() [][]Crate {
	out := make([][]Crate, len(p.stacks))
	for i := range p.stacks {
		out[i] = p.stacks[i].Crates()
	}
	return out
}

// Stats returns the counters collected so far.
func (p *Platform) Stats() Stats {
	return p.stats
}

package crane

import (
	"fmt"
	"iter"
	"strings"

	"github.com/arthur-debert/cranes/pkg/errors"
	"github.com/arthur-debert/cranes/pkg/lines"
)

const (
	liftPrefix = "move "
	liftDelim  = ' '
)

// UncheckedLift is a decoded "move <n> from <id> to <id>" instruction.
type UncheckedLift struct {
	Count int
	Route UncheckedRoute
}

// CheckedLift is an UncheckedLift whose route passed Check.
type CheckedLift struct {
	count int
	route CheckedRoute
}

// ParseLift decodes one instruction line.
func ParseLift(s string) (UncheckedLift, error) {
	rest, ok := strings.CutPrefix(strings.TrimSpace(s), liftPrefix)
	if !ok {
		return UncheckedLift{}, &LiftParseError{Kind: LiftMissingPrefix}
	}
	count, route, ok := strings.Cut(rest, string(liftDelim))
	if !ok {
		return UncheckedLift{}, &LiftParseError{Kind: LiftMissingDelim}
	}
	n, err := parseNumber(strings.TrimSpace(count))
	if err != nil {
		return UncheckedLift{}, &LiftParseError{Kind: LiftBadCount, Err: err}
	}
	r, err := ParseRoute(route)
	if err != nil {
		return UncheckedLift{}, &LiftParseError{Kind: LiftBadRoute, Err: err}
	}
	return UncheckedLift{Count: n, Route: r}, nil
}

// Check validates the lift's route against l.
func (l UncheckedLift) Check(layout Layout) (CheckedLift, error) {
	route, err := l.Route.Check(layout)
	if err != nil {
		return CheckedLift{}, err
	}
	return CheckedLift{count: l.Count, route: route}, nil
}

func (l UncheckedLift) String() string {
	return fmt.Sprintf("%s%d%c%s", liftPrefix, l.Count, liftDelim, l.Route)
}

// Count returns the number of crates to move.
func (l CheckedLift) Count() int { return l.count }

// Route returns the checked route.
func (l CheckedLift) Route() CheckedRoute { return l.route }

// LiftReader lazily decodes instructions from a Source, skipping blank
// lines.
type LiftReader struct {
	src *lines.Source
}

var liftParser = lines.Trimmed(ParseLift)

// NewLiftReader returns a reader over src.
func NewLiftReader(src *lines.Source) *LiftReader {
	return &LiftReader{src: src}
}

// Next returns the next instruction, ok=false at the end of input.
func (r *LiftReader) Next() (UncheckedLift, bool, error) {
	l, ok, err := lines.Next(r.src, liftParser)
	if err != nil {
		return UncheckedLift{}, false, r.src.Annotate(err, errors.ErrLiftDecode)
	}
	return l, ok, nil
}

// Pos returns the line of the last instruction read.
func (r *LiftReader) Pos() int {
	return r.src.Pos()
}

// All yields the remaining instructions. It stops after the first error.
func (r *LiftReader) All() iter.Seq2[UncheckedLift, error] {
	return func(yield func(UncheckedLift, error) bool) {
		for {
			l, ok, err := r.Next()
			if err != nil {
				yield(UncheckedLift{}, err)
				return
			}
			if !ok || !yield(l, nil) {
				return
			}
		}
	}
}

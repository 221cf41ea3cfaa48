package lines

import "strings"

// Step tells a driver what to do with the line a Parser just saw.
type Step int

const (
	// Skip ignores the line and moves on to the next one.
	Skip Step = iota
	// Stop ends the scan with the item or the error returned alongside.
	Stop
)

// Parser turns one line into an item.
type Parser[T any] interface {
	ParseLine(line string) (T, Step, error)
}

// ParserFunc adapts a function to the Parser interface.
type ParserFunc[T any] func(line string) (T, Step, error)

// ParseLine calls f(line).
func (f ParserFunc[T]) ParseLine(line string) (T, Step, error) {
	return f(line)
}

// Trimmed is the default policy: blank lines are skipped, anything else is
// trimmed and handed to parse.
func Trimmed[T any](parse func(string) (T, error)) Parser[T] {
	return ParserFunc[T](func(line string) (T, Step, error) {
		line = strings.TrimSpace(line)
		if line == "" {
			var zero T
			return zero, Skip, nil
		}
		item, err := parse(line)
		return item, Stop, err
	})
}

// Next consumes lines from src until p stops. It returns ok=false with a
// nil error at the end of input. Read failures carry errors.ErrIO; parse
// failures are returned unchanged for the caller to annotate.
func Next[T any](src *Source, p Parser[T]) (item T, ok bool, err error) {
	var zero T
	for {
		line, more, err := src.Next()
		if err != nil {
			return zero, false, err
		}
		if !more {
			return zero, false, nil
		}
		item, step, err := p.ParseLine(line)
		if step == Skip {
			continue
		}
		if err != nil {
			return zero, false, err
		}
		return item, true, nil
	}
}

// NextIfOk peeks at lines from src and consumes them only while p accepts
// them. Skipped lines are consumed. The first line p rejects, or a read
// failure, ends the scan with ok=false and is left in src.
func NextIfOk[T any](src *Source, p Parser[T]) (item T, ok bool) {
	var zero T
	for {
		line, more, err := src.Peek()
		if err != nil || !more {
			return zero, false
		}
		item, step, err := p.ParseLine(line)
		if step == Stop && err != nil {
			return zero, false
		}
		_, _, _ = src.Next()
		if step == Stop {
			return item, true
		}
	}
}

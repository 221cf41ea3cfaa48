package crane

import "fmt"

// CrateErrorKind enumerates the ways a picture slot can be malformed.
type CrateErrorKind int

const (
	CrateMissingPrefix CrateErrorKind = iota
	CrateMissingSuffix
	CrateMissingLabel
	CrateLabelTooLong
)

// CrateParseError reports a malformed crate slot such as "[A" or "[AB]".
type CrateParseError struct {
	Kind CrateErrorKind
	Slot string
}

func (e *CrateParseError) Error() string {
	switch e.Kind {
	case CrateMissingPrefix:
		return fmt.Sprintf("missing left delimiter `%c` in %q", cratePrefix, e.Slot)
	case CrateMissingSuffix:
		return fmt.Sprintf("missing right delimiter `%c` in %q", crateSuffix, e.Slot)
	case CrateMissingLabel:
		return fmt.Sprintf("missing crate label in %q", e.Slot)
	default:
		return fmt.Sprintf("crate must be labeled with a single character, got %q", e.Slot)
	}
}

// LayoutErrorKind enumerates layout line failures.
type LayoutErrorKind int

const (
	LayoutDuplicate LayoutErrorKind = iota
	LayoutBadID
	LayoutMissing
)

// LayoutParseError reports a bad layout line.
type LayoutParseError struct {
	Kind  LayoutErrorKind
	ID    int
	Token string
	Err   error
}

func (e *LayoutParseError) Error() string {
	switch e.Kind {
	case LayoutDuplicate:
		return fmt.Sprintf("duplicate stack id: %d", e.ID)
	case LayoutBadID:
		return fmt.Sprintf("invalid stack id %q: %v", e.Token, e.Err)
	default:
		return "missing layout line"
	}
}

func (e *LayoutParseError) Unwrap() error { return e.Err }

// RouteErrorKind enumerates route decode failures.
type RouteErrorKind int

const (
	RouteMissingPrefix RouteErrorKind = iota
	RouteMissingDelim
	RouteBadOrigin
	RouteBadDestination
)

// RouteParseError reports a malformed "from <id> to <id>" clause.
type RouteParseError struct {
	Kind RouteErrorKind
	Err  error
}

func (e *RouteParseError) Error() string {
	switch e.Kind {
	case RouteMissingPrefix:
		return fmt.Sprintf("missing route prefix: `%s`", routePrefix)
	case RouteMissingDelim:
		return fmt.Sprintf("missing route delimiter: `%s`", routeDelim)
	case RouteBadOrigin:
		return fmt.Sprintf("could not parse route origin: %v", e.Err)
	default:
		return fmt.Sprintf("could not parse route destination: %v", e.Err)
	}
}

func (e *RouteParseError) Unwrap() error { return e.Err }

// LiftErrorKind enumerates instruction decode failures.
type LiftErrorKind int

const (
	LiftMissingPrefix LiftErrorKind = iota
	LiftMissingDelim
	LiftBadCount
	LiftBadRoute
)

// LiftParseError reports a malformed "move <n> from <id> to <id>" line.
type LiftParseError struct {
	Kind LiftErrorKind
	Err  error
}

func (e *LiftParseError) Error() string {
	switch e.Kind {
	case LiftMissingPrefix:
		return fmt.Sprintf("missing lift prefix: `%s`", liftPrefix)
	case LiftMissingDelim:
		return fmt.Sprintf("missing lift delimiter: `%c`", liftDelim)
	case LiftBadCount:
		return fmt.Sprintf("could not parse quantity: %v", e.Err)
	default:
		return e.Err.Error()
	}
}

func (e *LiftParseError) Unwrap() error { return e.Err }

// Side names the end of a route.
type Side int

const (
	Origin Side = iota
	Destination
)

func (s Side) String() string {
	if s == Origin {
		return "origin"
	}
	return "destination"
}

// RouteError reports a route naming a stack id missing from the Layout.
type RouteError struct {
	Side Side
	ID   int
}

func (e *RouteError) Error() string {
	return fmt.Sprintf("invalid stack %s: %d", e.Side, e.ID)
}

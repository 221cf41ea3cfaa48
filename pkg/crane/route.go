package crane

import (
	"fmt"
	"strings"
)

const (
	routePrefix = "from"
	routeDelim  = "to"
)

// UncheckedRoute holds stack ids as written in an instruction. They are not
// known to name existing stacks.
type UncheckedRoute struct {
	Orig int
	Dest int
}

// CheckedRoute holds column indices verified against a Layout. The only
// way to build one is UncheckedRoute.Check.
type CheckedRoute struct {
	orig int
	dest int
}

// ParseRoute decodes "from <id> to <id>".
func ParseRoute(s string) (UncheckedRoute, error) {
	rest, ok := strings.CutPrefix(strings.TrimSpace(s), routePrefix)
	if !ok {
		return UncheckedRoute{}, &RouteParseError{Kind: RouteMissingPrefix}
	}
	orig, dest, ok := strings.Cut(rest, routeDelim)
	if !ok {
		return UncheckedRoute{}, &RouteParseError{Kind: RouteMissingDelim}
	}
	o, err := parseNumber(strings.TrimSpace(orig))
	if err != nil {
		return UncheckedRoute{}, &RouteParseError{Kind: RouteBadOrigin, Err: err}
	}
	d, err := parseNumber(strings.TrimSpace(dest))
	if err != nil {
		return UncheckedRoute{}, &RouteParseError{Kind: RouteBadDestination, Err: err}
	}
	return UncheckedRoute{Orig: o, Dest: d}, nil
}

// Check resolves both ids through l.
func (r UncheckedRoute) Check(l Layout) (CheckedRoute, error) {
	orig, ok := l.Index(r.Orig)
	if !ok {
		return CheckedRoute{}, &RouteError{Side: Origin, ID: r.Orig}
	}
	dest, ok := l.Index(r.Dest)
	if !ok {
		return CheckedRoute{}, &RouteError{Side: Destination, ID: r.Dest}
	}
	return CheckedRoute{orig: orig, dest: dest}, nil
}

func (r UncheckedRoute) String() string {
	return fmt.Sprintf("%s %d %s %d", routePrefix, r.Orig, routeDelim, r.Dest)
}

// Orig returns the origin column.
func (r CheckedRoute) Orig() int { return r.orig }

// Dest returns the destination column.
func (r CheckedRoute) Dest() int { return r.dest }

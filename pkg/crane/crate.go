package crane

import (
	"strings"
	"unicode/utf8"
)

const (
	cratePrefix = '['
	crateSuffix = ']'

	// slotWidth is a drawn crate plus its separator.
	slotWidth = len("[X]") + 1
)

// Crate is a single labeled unit of cargo.
type Crate struct {
	label rune
}

// NewCrate returns a crate labeled r.
func NewCrate(label rune) Crate {
	return Crate{label: label}
}

// Label returns the crate's label.
func (c Crate) Label() rune {
	return c.label
}

// String draws the crate as it appears in a picture.
func (c Crate) String() string {
	return string([]rune{cratePrefix, c.label, crateSuffix})
}

// ParseCrate decodes a single "[X]" slot.
func ParseCrate(s string) (Crate, error) {
	rest, ok := strings.CutPrefix(strings.TrimSpace(s), string(cratePrefix))
	if !ok {
		return Crate{}, &CrateParseError{Kind: CrateMissingPrefix, Slot: s}
	}
	rest, ok = strings.CutSuffix(strings.TrimSpace(rest), string(crateSuffix))
	if !ok {
		return Crate{}, &CrateParseError{Kind: CrateMissingSuffix, Slot: s}
	}
	switch utf8.RuneCountInString(rest) {
	case 0:
		return Crate{}, &CrateParseError{Kind: CrateMissingLabel, Slot: s}
	case 1:
		label, _ := utf8.DecodeRuneInString(rest)
		return Crate{label: label}, nil
	default:
		return Crate{}, &CrateParseError{Kind: CrateLabelTooLong, Slot: s}
	}
}

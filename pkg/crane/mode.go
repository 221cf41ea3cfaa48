package crane

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/cranes/pkg/errors"
)

// Mode selects how a lift moves its crates.
type Mode int

const (
	// SingleCrate moves crates one at a time, reversing their order.
	SingleCrate Mode = iota
	// Block moves all crates at once, keeping their order.
	Block
)

func (m Mode) String() string {
	switch m {
	case SingleCrate:
		return "single"
	case Block:
		return "block"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode accepts "single" or "block" and a few aliases.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "single", "crate", "9000", "":
		return SingleCrate, nil
	case "block", "9001":
		return Block, nil
	default:
		return SingleCrate, errors.Newf(errors.ErrInvalidInput, "unknown mode: %s", s)
	}
}

// Package display holds the view types renderers know how to draw, beyond
// the simulation Result itself.
package display

import (
	"github.com/arthur-debert/cranes/pkg/simulate"
)

// Stage names when a Drawing was taken.
type Stage string

const (
	StageInitial Stage = "initial"
	StageFinal   Stage = "final"
)

// Drawing is a platform in the input picture format.
type Drawing struct {
	Input   string           `json:"input" yaml:"input" toml:"input"`
	Stage   Stage            `json:"stage" yaml:"stage" toml:"stage"`
	Mode    string           `json:"mode,omitempty" yaml:"mode,omitempty" toml:"mode,omitempty"`
	Picture string           `json:"picture" yaml:"picture" toml:"picture"`
	Stacks  []simulate.Stack `json:"stacks" yaml:"stacks" toml:"stacks"`
}

// NewDrawing builds a Drawing from a run. Initial drawings carry no mode.
func NewDrawing(res *simulate.Result, stage Stage) *Drawing {
	d := &Drawing{
		Input:   res.Input,
		Stage:   stage,
		Picture: res.Picture,
		Stacks:  res.Stacks,
	}
	if stage == StageFinal {
		d.Mode = res.Mode
	}
	return d
}

// Height returns the height of the tallest stack.
func (d *Drawing) Height() int {
	h := 0
	for _, s := range d.Stacks {
		h = max(h, len([]rune(s.Crates)))
	}
	return h
}

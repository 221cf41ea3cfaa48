// Package text provides plain text output without any styling
package text

import (
	"fmt"
	"io"

	"github.com/arthur-debert/cranes/pkg/config"
	"github.com/arthur-debert/cranes/pkg/simulate"
	"github.com/arthur-debert/cranes/pkg/ui/display"
)

// Renderer provides plain text output without colors or styling.
// A run prints the answer alone on its line, so it can be piped.
type Renderer struct {
	output io.Writer
}

// New creates a new text renderer
func New(output io.Writer) *Renderer {
	return &Renderer{output: output}
}

// RenderResult renders any result type as plain text
func (r *Renderer) RenderResult(result interface{}) error {
	switch v := result.(type) {
	case *simulate.Result:
		if _, err := fmt.Fprintln(r.output, v.Answer); err != nil {
			return err
		}
		if len(v.Metrics) == 0 {
			return nil
		}
		if _, err := fmt.Fprintln(r.output); err != nil {
			return err
		}
		for _, s := range v.Metrics {
			if _, err := fmt.Fprintln(r.output, s.String()); err != nil {
				return err
			}
		}
		return nil
	case *display.Drawing:
		_, err := fmt.Fprint(r.output, v.Picture)
		return err
	case *config.Config:
		out, err := config.Marshal(v)
		if err != nil {
			return err
		}
		_, err = fmt.Fprint(r.output, out)
		return err
	default:
		// For unknown types, just print them
		_, err := fmt.Fprintf(r.output, "%+v\n", result)
		return err
	}
}

// RenderError renders an error as plain text
func (r *Renderer) RenderError(err error) error {
	_, err2 := fmt.Fprintf(r.output, "Error: %v\n", err)
	return err2
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, msg)
	return err
}

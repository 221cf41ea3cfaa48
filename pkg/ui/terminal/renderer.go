// Package terminal provides rich terminal output with colors and styling
package terminal

import (
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/arthur-debert/cranes/pkg/config"
	"github.com/arthur-debert/cranes/pkg/errors"
	"github.com/arthur-debert/cranes/pkg/simulate"
	"github.com/arthur-debert/cranes/pkg/telemetry"
	"github.com/arthur-debert/cranes/pkg/ui/display"
	"github.com/arthur-debert/cranes/pkg/ui/styles"
	"github.com/pterm/pterm"
)

// Renderer provides rich terminal output using lipgloss styles and pterm
// tables
type Renderer struct {
	output io.Writer
}

// New creates a new terminal renderer
func New(w io.Writer) *Renderer {
	return &Renderer{output: w}
}

// RenderResult renders any result type with rich terminal formatting
func (r *Renderer) RenderResult(result interface{}) error {
	switch v := result.(type) {
	case *simulate.Result:
		return r.renderResult(v)
	case *display.Drawing:
		return r.renderDrawing(v)
	case *config.Config:
		out, err := config.Marshal(v)
		if err != nil {
			return err
		}
		return r.println(out)
	default:
		// For unknown types, just print them
		return r.println(fmt.Sprintf("%+v", result))
	}
}

func (r *Renderer) renderResult(res *simulate.Result) error {
	header := styles.GetStyle("Header").Render(fmt.Sprintf("Top row (%s mode)", res.Mode))
	answer := styles.GetStyle("Answer").Render(strconv.Quote(res.Answer))
	stats := styles.GetStyle("Muted").Render(fmt.Sprintf("%d lifts, %d crates moved, %d short lifts",
		res.Stats.Lifts, res.Stats.Moved, res.Stats.ShortLifts))

	if err := r.println(header); err != nil {
		return err
	}
	if err := r.println(answer); err != nil {
		return err
	}
	if err := r.println(stats); err != nil {
		return err
	}
	if len(res.Metrics) == 0 {
		return nil
	}
	return r.renderMetrics(res.Metrics)
}

func (r *Renderer) renderMetrics(samples []telemetry.Sample) error {
	data := pterm.TableData{{"Metric", "Labels", "Value"}}
	for _, s := range samples {
		labels := make([]string, 0, len(s.Labels))
		for k, v := range s.Labels {
			labels = append(labels, k+"="+v)
		}
		data = append(data, []string{s.Name, strings.Join(sorted(labels), " "), strconv.FormatFloat(s.Value, 'g', -1, 64)})
	}
	return r.table(data)
}

func (r *Renderer) renderDrawing(d *display.Drawing) error {
	title := fmt.Sprintf("%s stacks of %s", capitalize(string(d.Stage)), d.Input)
	if d.Mode != "" {
		title += fmt.Sprintf(" (%s mode)", d.Mode)
	}
	if err := r.println(styles.GetStyle("Header").Render(title)); err != nil {
		return err
	}
	if err := r.println(stylePicture(d.Picture)); err != nil {
		return err
	}

	data := pterm.TableData{{"Stack", "Height", "Top", "Crates"}}
	for _, s := range d.Stacks {
		top := styles.GetStyle("EmptyStack").Render("-")
		if s.Crates != "" {
			runes := []rune(s.Crates)
			top = styles.GetStyle("Crate").Render(string(runes[len(runes)-1]))
		}
		data = append(data, []string{
			styles.GetStyle("StackID").Render(strconv.Itoa(s.ID)),
			strconv.Itoa(len([]rune(s.Crates))),
			top,
			s.Crates,
		})
	}
	return r.table(data)
}

// stylePicture colors crates in a drawn picture. The last line is the
// layout.
func stylePicture(picture string) string {
	lines := strings.Split(strings.TrimRight(picture, "\n"), "\n")
	crate := styles.GetStyle("Crate")
	for i, line := range lines {
		if i == len(lines)-1 {
			lines[i] = styles.GetStyle("StackID").Render(line)
			continue
		}
		var b strings.Builder
		runes := []rune(line)
		for j := 0; j < len(runes); j++ {
			if runes[j] == '[' && j+2 < len(runes) && runes[j+2] == ']' {
				b.WriteString(crate.Render(string(runes[j : j+3])))
				j += 2
				continue
			}
			b.WriteRune(runes[j])
		}
		lines[i] = b.String()
	}
	return strings.Join(lines, "\n")
}

func (r *Renderer) table(data pterm.TableData) error {
	out, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return errors.Wrap(err, errors.ErrRender, "failed to render table")
	}
	return r.println(out)
}

// RenderError renders an error with its code and input line
func (r *Renderer) RenderError(err error) error {
	msg := styles.GetStyle("Error").Render("Error: " + err.Error())
	if line, ok := errors.LineOf(err); ok {
		msg += " " + styles.GetStyle("ErrorCode").Render(fmt.Sprintf("(line %d)", line))
	}
	return r.println(msg)
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	return r.println(styles.GetStyle("Info").Render(msg))
}

func (r *Renderer) println(s string) error {
	_, err := fmt.Fprintln(r.output, s)
	return err
}

func sorted(s []string) []string {
	slices.Sort(s)
	return s
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

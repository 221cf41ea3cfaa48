// Package simulate runs one crane simulation from an input to a Result.
package simulate

import (
	"io"
	"strings"
	"time"

	"github.com/arthur-debert/cranes/pkg/crane"
	"github.com/arthur-debert/cranes/pkg/logging"
	"github.com/arthur-debert/cranes/pkg/telemetry"
	"github.com/google/uuid"
)

// Options configure a run.
type Options struct {
	// Name identifies the input in logs and results.
	Name string
	// Mode selects how crates move.
	Mode crane.Mode
	// SkipLifts stops after the drawing is read.
	SkipLifts bool
	// Metrics, if set, records the run.
	Metrics *telemetry.Metrics
}

// Stack is one stack of the final platform.
type Stack struct {
	ID int `json:"id" yaml:"id" toml:"id"`
	// Crates are the labels bottom first.
	Crates string `json:"crates" yaml:"crates" toml:"crates"`
}

// Result is the outcome of a run.
type Result struct {
	RunID   string             `json:"run_id" yaml:"run_id" toml:"run_id"`
	Input   string             `json:"input" yaml:"input" toml:"input"`
	Mode    string             `json:"mode" yaml:"mode" toml:"mode"`
	Answer  string             `json:"answer" yaml:"answer" toml:"answer"`
	Stacks  []Stack            `json:"stacks" yaml:"stacks" toml:"stacks"`
	Stats   crane.Stats        `json:"stats" yaml:"stats" toml:"stats"`
	Metrics []telemetry.Sample `json:"metrics,omitempty" yaml:"metrics,omitempty" toml:"metrics,omitempty"`

	// Picture is the platform drawn in the input format.
	Picture string `json:"-" yaml:"-" toml:"-"`
}

// Run reads a drawing from r and applies its lifts.
func Run(r io.Reader, opts Options) (*Result, error) {
	runID := uuid.NewString()
	logger := logging.WithFields(map[string]interface{}{
		"component": "simulate",
		"run_id":    runID,
		"input":     opts.Name,
		"mode":      opts.Mode.String(),
	})
	done := logging.LogOperationStart(logger, "simulate")
	defer done()

	start := time.Now()
	p, err := run(r, opts)
	if opts.Metrics != nil {
		var stats crane.Stats
		stacks := 0
		if p != nil {
			stats, stacks = p.Stats(), p.Layout().Len()
		}
		opts.Metrics.RecordRun(opts.Mode, stats, stacks, time.Since(start), err)
	}
	if err != nil {
		logger.Debug().Err(err).Msg("Simulation failed")
		return nil, err
	}

	res := &Result{
		RunID:   runID,
		Input:   opts.Name,
		Mode:    opts.Mode.String(),
		Answer:  p.TopRow(),
		Stacks:  stacksOf(p),
		Stats:   p.Stats(),
		Picture: p.Draw(),
	}
	if opts.Metrics != nil {
		samples, err := opts.Metrics.Snapshot()
		if err != nil {
			logger.Warn().Err(err).Msg("Failed to gather metrics")
		}
		res.Metrics = samples
	}

	logger.Debug().
		Int("stacks", len(res.Stacks)).
		Int("lifts", res.Stats.Lifts).
		Int("moved", res.Stats.Moved).
		Int("shortLifts", res.Stats.ShortLifts).
		Str("answer", res.Answer).
		Msg("Simulation finished")
	return res, nil
}

// run returns the platform even when lifting fails. It is nil only when
// the drawing could not be read.
func run(r io.Reader, opts Options) (*crane.Platform, error) {
	p, lifts, err := crane.ReadDrawing(r)
	if err != nil {
		return nil, err
	}
	if opts.SkipLifts {
		return p, nil
	}
	return p, p.Run(lifts, opts.Mode)
}

func stacksOf(p *crane.Platform) []Stack {
	ids := p.Layout().IDs()
	out := make([]Stack, len(ids))
	for i, crates := range p.Stacks() {
		var b strings.Builder
		for _, c := range crates {
			b.WriteRune(c.Label())
		}
		out[i] = Stack{ID: ids[i], Crates: b.String()}
	}
	return out
}

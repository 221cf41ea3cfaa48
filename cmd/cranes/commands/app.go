package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/arthur-debert/cranes/pkg/config"
	"github.com/arthur-debert/cranes/pkg/crane"
	"github.com/arthur-debert/cranes/pkg/input"
	"github.com/arthur-debert/cranes/pkg/logging"
	"github.com/arthur-debert/cranes/pkg/paths"
	"github.com/arthur-debert/cranes/pkg/ui"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// app holds the global flags and the state every command shares once the
// configuration is loaded.
type app struct {
	verbosity int
	mode      string
	format    string
	metrics   bool
	cfgFile   string

	cfg    *config.Config
	paths  paths.Paths
	output ui.Format
	ready  bool
}

// setup loads the configuration, with changed flags as the last layer, and
// configures logging from it.
func (a *app) setup(cmd *cobra.Command) error {
	base, err := paths.New("")
	if err != nil {
		return err
	}
	file := a.cfgFile
	if file == "" {
		file = base.ConfigFile()
	}

	overrides, err := a.overrides(cmd)
	if err != nil {
		return err
	}

	cfg, err := config.Load(config.Options{File: file, Overrides: overrides})
	if err != nil {
		return err
	}

	logging.SetupLoggerWithOptions(logging.Options{
		Verbosity: a.verbosity,
		Console:   cmd.ErrOrStderr(),
		NoColor:   !isTerminal(cmd.ErrOrStderr()),
		LogFile:   cfg.Logging.File,
	})
	log.Debug().Str("command", cmd.Name()).Str("config", file).Msg("Command started")

	p, err := paths.New(cfg.Input.Dir)
	if err != nil {
		return err
	}

	// Validated on load.
	a.output, _ = ui.ParseFormat(cfg.Output.Format)
	a.cfg = cfg
	a.paths = p
	a.ready = true
	return nil
}

func (a *app) overrides(cmd *cobra.Command) (map[string]interface{}, error) {
	flags := cmd.Flags()
	overrides := make(map[string]interface{})

	if flags.Changed("mode") {
		m, err := crane.ParseMode(a.mode)
		if err != nil {
			return nil, err
		}
		overrides["simulation.mode"] = m.String()
	}
	if flags.Changed("format") {
		f, err := ui.ParseFormat(a.format)
		if err != nil {
			return nil, err
		}
		overrides["output.format"] = f.String()
	}
	if flags.Changed("metrics") {
		overrides["output.metrics"] = a.metrics
	}
	return overrides, nil
}

// renderer returns the renderer for the configured format on w.
func (a *app) renderer(w io.Writer) (ui.Renderer, error) {
	return ui.NewRenderer(a.output, w)
}

// resolved returns the configured format, with auto decided for w.
func (a *app) resolved(w io.Writer) ui.Format {
	if a.output != ui.FormatAuto {
		return a.output
	}
	if f, ok := w.(*os.File); ok {
		return ui.DetectFormat(f)
	}
	return ui.FormatText
}

// open opens the input named by args, or the configured one.
func (a *app) open(cmd *cobra.Command, args []string) (*input.Input, error) {
	opts := input.Options{
		Name:  a.cfg.Input.Name,
		Paths: a.paths,
		Stdin: cmd.InOrStdin(),
	}
	if len(args) > 0 {
		opts.Arg = args[0]
	}
	return input.Open(opts)
}

// reportError renders err on w. Before the configuration is loaded the
// --format flag is honoured if it parses.
func (a *app) reportError(w io.Writer, err error) {
	format := a.output
	if !a.ready {
		format, _ = ui.ParseFormat(a.format)
	}

	renderer, rerr := ui.NewRenderer(format, w)
	if rerr == nil {
		rerr = renderer.RenderError(err)
	}
	if rerr != nil {
		_, _ = fmt.Fprintf(w, "Error: %v\n", err)
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

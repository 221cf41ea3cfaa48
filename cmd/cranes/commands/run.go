package commands

import (
	"github.com/arthur-debert/cranes/pkg/simulate"
	"github.com/arthur-debert/cranes/pkg/telemetry"
	"github.com/spf13/cobra"
)

func newRunCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "run [input]",
		Short:   MsgRunShort,
		Long:    MsgRunLong,
		Example: MsgRunExample,
		GroupID: "core",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := simulate.Options{Mode: a.cfg.Mode()}
			if a.cfg.Output.Metrics {
				opts.Metrics = telemetry.NewMetrics()
			}

			res, err := a.simulate(cmd, args, opts)
			if err != nil {
				return err
			}

			renderer, err := a.renderer(cmd.OutOrStdout())
			if err != nil {
				return err
			}
			return renderer.RenderResult(res)
		},
	}
}

// simulate opens the input and runs it. Name is filled from the input.
func (a *app) simulate(cmd *cobra.Command, args []string, opts simulate.Options) (*simulate.Result, error) {
	in, err := a.open(cmd, args)
	if err != nil {
		return nil, err
	}
	defer func() { _ = in.Close() }()

	opts.Name = in.Name
	return simulate.Run(in, opts)
}

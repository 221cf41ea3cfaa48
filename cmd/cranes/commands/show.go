package commands

import (
	"github.com/arthur-debert/cranes/pkg/simulate"
	"github.com/arthur-debert/cranes/pkg/ui/display"
	"github.com/spf13/cobra"
)

func newShowCmd(a *app) *cobra.Command {
	var after bool

	cmd := &cobra.Command{
		Use:     "show [input]",
		Short:   MsgShowShort,
		Long:    MsgShowLong,
		Example: MsgShowExample,
		GroupID: "core",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.simulate(cmd, args, simulate.Options{
				Mode:      a.cfg.Mode(),
				SkipLifts: !after,
			})
			if err != nil {
				return err
			}

			stage := display.StageInitial
			if after {
				stage = display.StageFinal
			}

			renderer, err := a.renderer(cmd.OutOrStdout())
			if err != nil {
				return err
			}
			return renderer.RenderResult(display.NewDrawing(res, stage))
		},
	}

	cmd.Flags().BoolVarP(&after, "after", "a", false, MsgFlagAfter)
	return cmd
}

package commands

import (
	"fmt"

	"github.com/arthur-debert/cranes/pkg/config"
	"github.com/spf13/cobra"
)

func newConfigCmd(a *app) *cobra.Command {
	var sample bool

	cmd := &cobra.Command{
		Use:     "config",
		Short:   MsgConfigShort,
		Long:    MsgConfigLong,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if sample {
				_, err := fmt.Fprint(cmd.OutOrStdout(), config.GenerateConfigContent())
				return err
			}

			renderer, err := a.renderer(cmd.OutOrStdout())
			if err != nil {
				return err
			}
			return renderer.RenderResult(a.cfg)
		},
	}

	cmd.Flags().BoolVar(&sample, "sample", false, MsgFlagSample)
	return cmd
}

package commands

import (
	"fmt"

	"github.com/arthur-debert/cranes/internal/version"
	"github.com/spf13/cobra"
)

type versionInfo struct {
	Version string `json:"version" yaml:"version" toml:"version"`
	Commit  string `json:"commit" yaml:"commit" toml:"commit"`
	Date    string `json:"date" yaml:"date" toml:"date"`
}

func newVersionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			renderer, err := a.renderer(cmd.OutOrStdout())
			if err != nil {
				return err
			}
			if a.resolved(cmd.OutOrStdout()).Structured() {
				return renderer.RenderResult(versionInfo{
					Version: version.Version,
					Commit:  version.Commit,
					Date:    version.Date,
				})
			}
			return renderer.RenderMessage(fmt.Sprintf(MsgVersionFormat, version.Version, version.Commit, version.Date))
		},
	}
}

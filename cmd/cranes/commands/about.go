package commands

import (
	"io/fs"

	"github.com/arthur-debert/cranes/pkg/cobrax/topics"
	"github.com/arthur-debert/cranes/pkg/ui"
	"github.com/spf13/cobra"
)

func newAboutCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "about",
		Short:   MsgAboutShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := fs.ReadFile(Topics(), "about.md")
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			var r topics.Renderer = &topics.PlainRenderer{}
			switch format := a.resolved(out); {
			case format.Structured():
				renderer, err := a.renderer(out)
				if err != nil {
					return err
				}
				return renderer.RenderMessage(string(content))
			case format == ui.FormatTerminal:
				r = topics.NewGlamourRenderer()
			}

			_, err = out.Write([]byte(r.Render(string(content), ".md")))
			return err
		},
	}
}

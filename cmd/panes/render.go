package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/iw2rmb/panes/internal/log"
	"github.com/iw2rmb/panes/markdown"
)

func newRenderCmd(root *rootOptions) *cobra.Command {
	var (
		asHTML bool
		width  int
		style  string
	)

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render markdown through the preview sanitizer",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mc := root.cfg.Markdown
			if cmd.Flags().Changed("width") {
				mc.WordWrap = width
			}
			if cmd.Flags().Changed("style") {
				mc.Style = style
			}

			r, err := markdown.New(
				markdown.WithStyle(mc.Style),
				markdown.WithWordWrap(mc.WordWrap),
				markdown.WithLogger(log.Get()),
			)
			if err != nil {
				return err
			}

			text, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			res, err := r.Render(text)
			if err != nil {
				return err
			}
			if res.Sanitized {
				log.Get().Info("unsafe markup removed", zap.Int("bytes", len(text)))
			}

			out := res.Terminal
			if asHTML {
				out = res.HTML
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), out)
			return err
		},
	}

	cmd.Flags().BoolVar(&asHTML, "html", false, "print sanitized HTML instead of terminal output")
	cmd.Flags().IntVar(&width, "width", 0, "wrap width (default from config)")
	cmd.Flags().StringVar(&style, "style", "", "glamour style (default from config)")
	return cmd
}

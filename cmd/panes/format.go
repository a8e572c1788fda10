package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/iw2rmb/panes/format"
	"github.com/iw2rmb/panes/internal/log"
)

func newFormatCmd(root *rootOptions) *cobra.Command {
	var (
		grammar string
		tabs    bool
	)

	cmd := &cobra.Command{
		Use:   "format [file]",
		Short: "Format source the way the code panel's Format button does",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			code := root.cfg.Code
			if cmd.Flags().Changed("grammar") {
				code.Grammar = grammar
			}
			if cmd.Flags().Changed("tabs") {
				code.UseTabs = tabs
			}
			opts, err := code.FormatOptions()
			if err != nil {
				return err
			}

			text, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			out, err := format.Format(text, opts)
			if err != nil {
				return err
			}

			log.Get().Debug("formatted")
			_, err = fmt.Fprintln(cmd.OutOrStdout(), format.TrimTrailingNewline(out))
			return err
		},
	}

	cmd.Flags().StringVar(&grammar, "grammar", "", "source grammar: js or sh (default from config)")
	cmd.Flags().BoolVar(&tabs, "tabs", false, "indent with tabs")
	return cmd
}

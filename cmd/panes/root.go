package main

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/iw2rmb/panes"
	"github.com/iw2rmb/panes/internal/config"
	"github.com/iw2rmb/panes/internal/log"
)

type rootOptions struct {
	configPath string
	logFile    string
	debug      bool

	cfg config.Config
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "panes",
		Short:         "Code and markdown editor panels for the terminal",
		Version:       panes.Version(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.load(cmd)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&opts.configPath, "config", "", "path to a YAML config file")
	pf.StringVar(&opts.logFile, "log-file", "", "write logs to this file")
	pf.BoolVar(&opts.debug, "debug", false, "log at debug level")

	cmd.AddCommand(
		newFormatCmd(opts),
		newRenderCmd(opts),
		newCodeCmd(opts),
		newMarkdownCmd(opts),
		newVersionCmd(),
	)
	return cmd
}

func (o *rootOptions) load(cmd *cobra.Command) error {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("log-file") {
		cfg.Log.File = o.logFile
	}
	if cmd.Flags().Changed("debug") {
		cfg.Log.Debug = o.debug
	}
	o.cfg = cfg

	if cfg.Log.File != "" {
		if err := log.Set(cfg.Log.File, cfg.Log.Debug); err != nil {
			return err
		}
	}
	return nil
}

// readInput reads the file named by args, or stdin without one.
func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", errors.Wrap(err, "read stdin")
		}
		return string(data), nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", errors.Wrapf(err, "read %s", args[0])
	}
	return string(data), nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.Println(panes.Banner(cmd.Root().Name()))
			return nil
		},
	}
}

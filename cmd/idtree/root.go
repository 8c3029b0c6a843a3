package main

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/phroun/idtree"
)

// app is the state shared by every subcommand once flags and config have
// been resolved.
type app struct {
	opts     idtree.Options[string]
	logger   zerolog.Logger
	closeLog func() error
}

// newTree builds an empty (or configured-root) tree from the [tree] options.
func (a *app) newTree() *idtree.Tree[string] {
	return a.opts.Builder().WithLogger(a.logger).Build()
}

func newRootCmd() *cobra.Command {
	a := &app{logger: zerolog.Nop(), closeLog: func() error { return nil }}

	var (
		configPath string
		logLevel   string
	)

	root := &cobra.Command{
		Use:          "idtree",
		Short:        "Arena-backed ordered tree toolkit",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			if logLevel != "" {
				cfg.Log.Level = logLevel
			}

			opts, err := cfg.treeOptions()
			if err != nil {
				return err
			}

			logger, closeLog, err := newLogger(cfg.Log, cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			a.opts, a.logger, a.closeLog = opts, logger, closeLog
			a.logger.Debug().
				Str("command", cmd.Name()).
				Str("config", configPath).
				Msg("starting")
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return a.closeLog()
		},
	}

	root.PersistentFlags().StringVar(&configPath, "config", "", "path to a TOML config file")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (trace, debug, info, warn, error); overrides the config file")

	root.AddCommand(newReplCmd(a))
	root.AddCommand(newBenchCmd(a))
	root.AddCommand(newVersionCmd())
	return root
}

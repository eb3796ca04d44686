package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/mazesearch/internal/logging"
)

// app carries state shared by the subcommands of one invocation.
type app struct {
	logLevel string
	logger   *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{logger: logging.NewNop()}
	root := &cobra.Command{
		Use:   "mazesearch",
		Short: "Compare search algorithms on grid mazes",
		Long: `mazesearch runs breadth-first, depth-first, uniform-cost, greedy and A*
search on a text maze and reports cost, nodes expanded, peak memory and time.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := logging.ParseLevel(a.logLevel)
			if err != nil {
				return err
			}
			a.logger = logging.NewWithWriter(cmd.ErrOrStderr(), level)
			return nil
		},
	}
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "warn", "Log level: debug, info, warn or error")

	root.AddCommand(
		newRunCmd(a),
		newGenerateCmd(a),
		newServeCmd(a),
		newVersionCmd(),
	)

	return root
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

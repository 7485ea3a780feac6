package main

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

type app struct {
	verbosity int
	log       zerolog.Logger
}

// NewRootCmd creates the hbin command tree.
func NewRootCmd() *cobra.Command {
	a := &app{log: zerolog.Nop()}

	rootCmd := &cobra.Command{
		Use:   "hbin",
		Short: "Multi-dimensional histogram binning tool",
		Long: `hbin resolves histogram axes from a pattern table, fills histograms from
CSV event files and prints the snapshots it writes.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			a.log = newLogger(cmd.ErrOrStderr(), a.verbosity)
			a.log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return fmt.Errorf("no command specified")
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().CountVarP(&a.verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")

	rootCmd.AddCommand(newAxesCmd(a))
	rootCmd.AddCommand(newFillCmd(a))
	rootCmd.AddCommand(newDumpCmd(a))

	return rootCmd
}

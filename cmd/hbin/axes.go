package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hepkit/hbin/reaxes"
)

func newAxesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "axes <table> <name>...",
		Short: "Resolve histogram names through an axis table",
		Long: `Resolve each name through the axis table and print the matching axis.
Without names, list the table entries in order.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := reaxes.Load(args[0], reaxes.WithLogger(a.log))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(args) == 1 {
				for _, e := range table.Entries() {
					fmt.Fprintf(out, "%4d  %-24s %s\n", e.Line, e.Pattern, e.Axis)
				}

				return nil
			}

			var errs []error
			for _, name := range args[1:] {
				ax, err := table.Lookup(name)
				if err != nil {
					fmt.Fprintf(out, "%s: %v\n", name, err)
					errs = append(errs, err)

					continue
				}
				fmt.Fprintf(out, "%s: %s\n", name, ax)
			}

			return errors.Join(errs...)
		},
	}
}

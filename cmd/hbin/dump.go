package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hepkit/hbin"
	"github.com/hepkit/hbin/snapshot"
)

func newDumpCmd(a *app) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "dump <file>...",
		Short: "Print histogram snapshots",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, path := range args {
				data, err := os.ReadFile(path)
				if err != nil {
					return err
				}
				a.log.Debug().Str("path", path).Int("bytes", len(data)).Msg("Snapshot read")

				if err := dump(cmd.OutOrStdout(), path, data, all); err != nil {
					return fmt.Errorf("%s: %w", path, err)
				}
			}

			return nil
		},
	}
	cmd.Flags().BoolVarP(&all, "all", "a", false, "print empty bins too")

	return cmd
}

func dump(w io.Writer, path string, data []byte, all bool) error {
	h, err := snapshot.ParseHeader(data)
	if err != nil {
		return err
	}
	s, err := snapshot.Decode(data)
	if err != nil {
		return err
	}

	order := "little-endian"
	if h.BigEndian() {
		order = "big-endian"
	}
	fmt.Fprintf(w, "%s: %q id %016x v%d %s %s, %d bytes\n", path, s.Name, hbin.HistID(s.Name), h.Version, h.Compression, order, len(data))

	for k, ax := range s.Axes {
		var flow []string
		if ax.Spec.Underflow {
			flow = append(flow, "underflow")
		}
		if ax.Spec.Overflow {
			flow = append(flow, "overflow")
		}
		if ax.Spec.Strict {
			flow = append(flow, "strict")
		}
		fmt.Fprintf(w, "  axis %d: %s %d bins", k, ax.Kind, ax.NBins)
		if len(ax.Edges) > 0 {
			fmt.Fprintf(w, " %v", ax.Edges)
		}
		if len(flow) > 0 {
			fmt.Fprintf(w, " (%s)", strings.Join(flow, ", "))
		}
		fmt.Fprintln(w)
	}

	for i, v := range s.Values {
		if v == 0 && !all {
			continue
		}
		fmt.Fprintf(w, "  %v = %g\n", s.Locals(i), v)
	}
	fmt.Fprintf(w, "  sum = %g\n", s.Sum())

	return nil
}

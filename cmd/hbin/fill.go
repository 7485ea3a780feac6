package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hepkit/hbin"
	"github.com/hepkit/hbin/binner"
	"github.com/hepkit/hbin/event"
	"github.com/hepkit/hbin/format"
	"github.com/hepkit/hbin/reaxes"
	"github.com/hepkit/hbin/snapshot"
)

type fillOptions struct {
	table       string
	csv         string
	hists       []string
	weight      string
	out         string
	compression string
	strict      bool
	skip        bool
}

func newFillCmd(a *app) *cobra.Command {
	var opts fillOptions

	cmd := &cobra.Command{
		Use:   "fill",
		Short: "Fill histograms from a CSV file and write snapshots",
		Long: `Fill one histogram per --hist from the rows of a CSV file. Each
--hist is name=field[,field...]; the axis of every field is looked up in the
axis table by field name. One snapshot per histogram is written to --out as
<name>.hbin.`,
		Example: `  hbin fill --table binning.txt --csv events.csv \
      --hist pt=pT_yy --hist pt_eta=pT_yy,eta_yy --weight w`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFill(cmd, a, opts)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.table, "table", "", "axis table (text or .yaml)")
	f.StringVar(&opts.csv, "csv", "", "CSV event file with a header row")
	f.StringArrayVar(&opts.hists, "hist", nil, "histogram as name=field[,field...] (repeatable)")
	f.StringVar(&opts.weight, "weight", "", "field holding the event weight")
	f.StringVarP(&opts.out, "out", "o", ".", "output directory")
	f.StringVar(&opts.compression, "compression", "zstd", "snapshot compression: none, zstd, s2, lz4")
	f.BoolVar(&opts.strict, "strict", false, "treat out-of-range coordinates as errors instead of flow bins")
	f.BoolVar(&opts.skip, "skip-violations", false, "with --strict, skip out-of-range fills instead of stopping")
	_ = cmd.MarkFlagRequired("table")
	_ = cmd.MarkFlagRequired("csv")
	_ = cmd.MarkFlagRequired("hist")

	return cmd
}

// snapshotFile returns the file name a histogram is written to. Names that
// are not plain file names are sanitized and suffixed with the histogram ID,
// so "a/b" and "a_b" do not overwrite each other.
func snapshotFile(name string) string {
	safe := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_', r == '-', r == '.':
			return r
		default:
			return '_'
		}
	}, name)
	if safe == name && name != "" && name != "." && name != ".." {
		return name + ".hbin"
	}

	return fmt.Sprintf("%s-%016x.hbin", safe, hbin.HistID(name))
}

// parseHist splits name=field[,field...].
func parseHist(s string) (string, []string, error) {
	name, list, ok := strings.Cut(s, "=")
	name = strings.TrimSpace(name)
	if !ok || name == "" || strings.TrimSpace(list) == "" {
		return "", nil, fmt.Errorf("bad --hist %q, want name=field[,field...]", s)
	}

	fields := strings.Split(list, ",")
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
		if fields[i] == "" {
			return "", nil, fmt.Errorf("bad --hist %q: empty field", s)
		}
	}

	return name, fields, nil
}

func runFill(cmd *cobra.Command, a *app, opts fillOptions) error {
	compression, err := format.ParseCompression(opts.compression)
	if err != nil {
		return err
	}

	table, err := reaxes.Load(opts.table, reaxes.WithLogger(a.log))
	if err != nil {
		return err
	}

	f, err := os.Open(opts.csv)
	if err != nil {
		return err
	}
	rows, err := event.ReadCSV(f)
	f.Close()
	if err != nil {
		return fmt.Errorf("%s: %w", opts.csv, err)
	}

	spec := binner.DefaultSpec
	if opts.strict {
		spec = binner.StrictNoFlow
	}

	reg := binner.NewRegistry[float64]()
	var bindings []event.Binding
	for _, hs := range opts.hists {
		name, fields, err := parseHist(hs)
		if err != nil {
			return err
		}

		dims := make([]binner.Dim, len(fields))
		for i, field := range fields {
			ax, err := table.Lookup(field)
			if err != nil {
				return fmt.Errorf("histogram %s: %w", name, err)
			}
			dims[i] = binner.On[float64](ax, spec)
		}

		h, err := binner.New[float64](dims,
			binner.WithName[float64](name),
			binner.WithRegistry(reg),
			binner.WithLogger[float64](a.log),
		)
		if err != nil {
			return fmt.Errorf("histogram %s: %w", name, err)
		}

		b, err := event.Bind(h, fields...)
		if err != nil {
			return err
		}
		if opts.weight != "" {
			b = b.Weighted(opts.weight)
		}
		bindings = append(bindings, b)
	}

	runOpts := []event.RunOption{event.WithLogger(a.log)}
	if opts.skip {
		runOpts = append(runOpts, event.WithSkipViolations())
	}
	st, err := event.Run(context.Background(), rows, bindings, runOpts...)
	if err != nil {
		return err
	}

	snaps, err := snapshot.FromRegistry(reg, nil)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(opts.out, 0o755); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, s := range snaps {
		data, err := s.Encode(snapshot.WithCompression(compression))
		if err != nil {
			return fmt.Errorf("histogram %s: %w", s.Name, err)
		}

		path := filepath.Join(opts.out, snapshotFile(s.Name))
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return err
		}
		a.log.Info().Str("path", path).Int("bytes", len(data)).Msg("Snapshot written")
		fmt.Fprintf(out, "%s: %d bins, sum %g -> %s\n", s.Name, len(s.Values), s.Sum(), path)
	}
	fmt.Fprintf(out, "events %d, fills %d, dropped %d, violations %d\n", st.Events, st.Fills, st.Dropped, st.Violations)

	return nil
}

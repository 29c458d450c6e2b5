package main

import (
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cwbudde/algo-sweep/internal/rowfile"
	"github.com/cwbudde/algo-sweep/sweep"
)

// placeholder stands in for a derived value that could not be determined.
const placeholder = "-"

func loadRows(o *options) (rowfile.File, rowfile.Table, error) {
	f, err := rowfile.Load(o.file)
	if err != nil {
		return rowfile.File{}, rowfile.Table{}, err
	}
	t := f.SweepRows()
	for _, e := range t.Skipped {
		o.logger.Warn("row skipped", zap.Int("row", e.Index), zap.Error(e.Err))
	}
	o.logger.Debug("rows loaded",
		zap.String("file", o.file),
		zap.Int("rows", len(t.Rows)),
		zap.Int("skipped", len(t.Skipped)))
	return f, t, nil
}

func runBuild(cmd *cobra.Command, o *options) error {
	f, t, err := loadRows(o)
	if err != nil {
		return err
	}

	repeat := f.Repeat
	if cmd.Flags().Changed("repeat") {
		repeat = o.repeat
	}
	if repeat < 1 {
		return fmt.Errorf("repeat must be at least 1, got %d", repeat)
	}

	report := sweep.BuildReport(t.Rows, repeat, f.Options()...)
	for _, r := range report.Skipped() {
		o.logger.Warn("row skipped", zap.Int("row", t.Index[r.Index]), zap.Error(r.Err))
	}
	o.logger.Debug("sweep built",
		zap.Int("rows", len(t.Rows)),
		zap.Int("skipped", len(t.Skipped)+len(report.Skipped())),
		zap.Int("repeat", repeat),
		zap.Int("points", len(report.Points)))

	out := cmd.OutOrStdout()
	for _, p := range report.Points {
		fmt.Fprintln(out, formatPoint(p, o))
	}
	return nil
}

func runResolve(cmd *cobra.Command, o *options) error {
	f, t, err := loadRows(o)
	if err != nil {
		return err
	}

	opts := f.Options()
	if cmd.Flags().Changed("rtol") {
		opts = append(opts, sweep.WithRelTolerance(o.rtol))
	}
	if cmd.Flags().Changed("atol") {
		opts = append(opts, sweep.WithAbsTolerance(o.atol))
	}

	resolved := sweep.Resolve(t.Rows, opts...)

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ROW\tSTART\tEND\tSTEP\tSTEPS\tMODE\tSTATUS")
	for i, r := range resolved {
		row := t.Index[i]
		if r.Err != nil {
			o.logger.Warn("row unresolved",
				zap.Int("row", row),
				zap.Bool("ambiguous", r.Ambiguous),
				zap.Error(r.Err))
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
			row,
			formatFloat(r.Start),
			formatFloat(r.End),
			stepColumn(r),
			stepsColumn(r),
			r.Mode,
			status(r))
	}
	return w.Flush()
}

func stepColumn(r sweep.ResolvedRow) string {
	if r.Mode == sweep.ModeStepCount && r.Indeterminate {
		return placeholder
	}
	return formatFloat(r.StepSize)
}

func stepsColumn(r sweep.ResolvedRow) string {
	if r.Mode == sweep.ModeStepSize && r.Indeterminate {
		return placeholder
	}
	return strconv.Itoa(r.NumSteps)
}

func status(r sweep.ResolvedRow) string {
	switch {
	case r.Ambiguous:
		return "ambiguous"
	case r.Indeterminate:
		return "indeterminate"
	default:
		return "ok"
	}
}

func formatPoint(v float64, o *options) string {
	if o.si {
		return rowfile.FormatQuantity(v, o.digits, o.unit)
	}
	return formatFloat(v)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

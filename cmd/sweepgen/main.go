// Command sweepgen builds sweep lists from a table of range rows.
//
// Usage:
//
//	sweepgen build   [-f rows.yaml] [--repeat N] [--si] [--unit V]
//	sweepgen resolve [-f rows.yaml] [--rtol X] [--atol Y]
//
// Rows are read from a YAML or JSON document (see package rowfile); "-"
// reads standard input. build prints one setpoint per line. resolve prints
// every row with its derived step size or step count; a dash marks a value
// that could not be determined.
//
// Examples:
//
//	sweepgen build -f rows.yaml
//	sweepgen build -f rows.yaml --repeat 3 --si --unit V
//	echo '{rows: [{start: 0, end: 1, steps: 50}]}' | sweepgen resolve
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type options struct {
	file    string
	verbose bool

	repeat int
	si     bool
	unit   string
	digits int

	rtol float64
	atol float64

	logger *zap.Logger
}

func newRootCmd(o *options) *cobra.Command {
	root := &cobra.Command{
		Use:   "sweepgen",
		Short: "Build sweep lists from range rows",
		Long: `sweepgen merges range rows into one sorted sweep list without duplicates
and keeps the step size and step count of every row consistent.

Each row is a range with either a point count (steps) or an increment (step).`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if o.logger != nil {
				return nil
			}
			config := zap.NewProductionConfig()
			if o.verbose {
				config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			logger, err := config.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			o.logger = logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if o.logger != nil {
				_ = o.logger.Sync()
			}
		},
	}

	root.PersistentFlags().StringVarP(&o.file, "file", "f", "-", "row file (YAML or JSON), - for stdin")
	root.PersistentFlags().BoolVarP(&o.verbose, "verbose", "v", false, "enable debug logging")

	build := &cobra.Command{
		Use:   "build",
		Short: "Print the merged sweep list, one point per line",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(cmd, o)
		},
	}
	build.Flags().IntVar(&o.repeat, "repeat", 1, "emit every point this many times (overrides the file)")
	build.Flags().BoolVar(&o.si, "si", false, "print points with SI prefixes")
	build.Flags().StringVar(&o.unit, "unit", "", "unit appended to SI formatted points")
	build.Flags().IntVar(&o.digits, "digits", 6, "decimals kept in SI formatted points")

	resolve := &cobra.Command{
		Use:   "resolve",
		Short: "Print every row with its derived step size or step count",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runResolve(cmd, o)
		},
	}
	resolve.Flags().Float64Var(&o.rtol, "rtol", 0, "relative tolerance for step equivalence (overrides the file)")
	resolve.Flags().Float64Var(&o.atol, "atol", 0, "absolute tolerance for step equivalence (overrides the file)")

	root.AddCommand(build, resolve)
	return root
}

func main() {
	if err := newRootCmd(&options{}).Execute(); err != nil {
		os.Exit(1)
	}
}

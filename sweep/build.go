package sweep

import (
	"fmt"

	"github.com/cwbudde/algo-sweep/core"
)

// RowResult is the outcome of generating a single row.
type RowResult struct {
	Index  int       // position of the row in the input
	Points []float64 // generated points, nil when skipped
	Err    error     // reason the row was skipped, nil otherwise
}

// Skipped reports whether the row contributed nothing because it failed.
func (r RowResult) Skipped() bool {
	return r.Err != nil
}

// Report is the result of BuildReport.
type Report struct {
	Points []float64
	Rows   []RowResult
}

// Skipped returns the results of all rows that failed to generate.
func (r Report) Skipped() []RowResult {
	var out []RowResult
	for _, row := range r.Rows {
		if row.Skipped() {
			out = append(out, row)
		}
	}
	return out
}

// Build merges rows into one sweep list.
//
// The points of all rows are combined, sorted ascending and stripped of
// exact duplicates. Each remaining point is then emitted repeat times
// consecutively, so repeat == 2 turns [a b] into [a a b b]. A repeat
// below 1 yields an empty list.
//
// Rows that fail to generate are left out; Build never fails.
func Build(rows []Row, repeat int, opts ...Option) []float64 {
	return BuildReport(rows, repeat, opts...).Points
}

// BuildReport is Build with a per-row account of what each row generated.
func BuildReport(rows []Row, repeat int, opts ...Option) Report {
	cfg := ApplyOptions(opts...)

	results := make([]RowResult, len(rows))
	parts := make([][]float64, 0, len(rows))

	for i, row := range rows {
		points, err := row.points(cfg)
		if err != nil {
			results[i] = RowResult{Index: i, Err: fmt.Errorf("sweep: %s row %d: %w", row.Mode, i, err)}
			continue
		}
		results[i] = RowResult{Index: i, Points: points}
		parts = append(parts, points)
	}

	merged := core.Unique(core.Concat(nil, parts...))

	return Report{
		Points: core.Repeat(merged, repeat),
		Rows:   results,
	}
}

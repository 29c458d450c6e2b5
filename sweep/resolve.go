package sweep

import (
	"fmt"

	"github.com/cwbudde/algo-sweep/core"
)

// ResolvedRow is a Row whose non-authoritative field has been derived.
//
// For a ModeStepCount row StepSize holds the derived increment; for a
// ModeStepSize row NumSteps holds the derived point count. When the value
// cannot be determined the derived field is zero, Indeterminate is set and
// Err carries the reason.
type ResolvedRow struct {
	Row

	// Indeterminate reports that the derived field has no value.
	Indeterminate bool

	// Ambiguous reports that the step-count and step-size descriptions of a
	// ModeStepCount row do not yield the same points. It is never set for
	// ModeStepSize rows.
	Ambiguous bool

	Err error
}

// Resolve derives the complementary field of every row. The result has one
// entry per row, in input order. A failing row never affects the others.
func Resolve(rows []Row, opts ...Option) []ResolvedRow {
	cfg := ApplyOptions(opts...)

	out := make([]ResolvedRow, len(rows))
	for i, row := range rows {
		out[i] = resolveRow(row, cfg)
	}
	return out
}

func resolveRow(row Row, cfg Config) ResolvedRow {
	switch row.Mode {
	case ModeStepCount:
		step, err := impliedStep(row, cfg)
		if err != nil {
			row.StepSize = 0
			return ResolvedRow{Row: row, Indeterminate: true, Ambiguous: true, Err: wrapRowErr(row, err)}
		}
		row.StepSize = step
		return ResolvedRow{Row: row}

	case ModeStepSize:
		points, err := row.sizePoints(cfg)
		if err != nil {
			row.NumSteps = 0
			return ResolvedRow{Row: row, Indeterminate: true, Err: wrapRowErr(row, err)}
		}
		row.NumSteps = len(core.Unique(points))
		return ResolvedRow{Row: row}

	default:
		return ResolvedRow{Row: row, Indeterminate: true, Err: wrapRowErr(row, ErrUnknownMode)}
	}
}

// impliedStep returns the spacing of the step-count sequence of row, provided
// that stepping from Start by that spacing up to End, with End appended,
// gives the same points within tolerance.
func impliedStep(row Row, cfg Config) (float64, error) {
	if row.NumSteps > cfg.MaxPoints {
		return 0, ErrTooManyPoints
	}

	byCount, step, err := core.LinspaceStep(row.Start, row.End, row.NumSteps)
	if err != nil {
		return 0, err
	}
	byCount = core.Unique(byCount)

	bySize, err := core.Arange(row.Start, row.End, step)
	if err != nil {
		return 0, err
	}
	bySize = core.Unique(append(bySize, row.End))

	if !core.AllClose(byCount, bySize, cfg.RelTol, cfg.AbsTol) {
		return 0, fmt.Errorf("%w: %d points by count, %d by size", ErrNotEquivalent, len(byCount), len(bySize))
	}

	return step, nil
}

func wrapRowErr(row Row, err error) error {
	return fmt.Errorf("sweep: %s row: %w", row.Mode, err)
}

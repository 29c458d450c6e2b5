package sweep

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-sweep/core"
)

// Errors reported for rows that contribute no points or cannot be resolved.
var (
	ErrZeroStep      = core.ErrZeroStep
	ErrNonFinite     = core.ErrNonFinite
	ErrNegativeCount = core.ErrNegativeCount
	ErrTooManyPoints = core.ErrTooManyPoints
	ErrUnknownMode   = errors.New("sweep: unknown row mode")
	ErrNotEquivalent = errors.New("sweep: step count and step size describe different points")
)

// Mode names the authoritative field of a Row.
type Mode int

const (
	// ModeStepCount rows are defined by NumSteps; StepSize is derived.
	ModeStepCount Mode = iota
	// ModeStepSize rows are defined by StepSize; NumSteps is derived.
	ModeStepSize
)

func (m Mode) String() string {
	switch m {
	case ModeStepCount:
		return "step-count"
	case ModeStepSize:
		return "step-size"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Row is one range of a sweep.
//
// NumSteps counts points inclusive of both ends. A zero NumSteps or a zero
// StepSize stands for a value that was never entered.
type Row struct {
	Start    float64
	End      float64
	StepSize float64
	NumSteps int
	Mode     Mode
}

// Points returns the points the row contributes to a sweep list, in
// generation order and before any de-duplication.
func (r Row) Points(opts ...Option) ([]float64, error) {
	return r.points(ApplyOptions(opts...))
}

func (r Row) points(cfg Config) ([]float64, error) {
	switch r.Mode {
	case ModeStepCount:
		return r.countPoints(cfg)
	case ModeStepSize:
		return r.sizePoints(cfg)
	default:
		return nil, ErrUnknownMode
	}
}

// countPoints spaces NumSteps points evenly from Start to End.
func (r Row) countPoints(cfg Config) ([]float64, error) {
	if r.NumSteps > cfg.MaxPoints {
		return nil, ErrTooManyPoints
	}
	return core.Linspace(r.Start, r.End, r.NumSteps)
}

// sizePoints steps from Start by StepSize as far as End allows. The number
// of whole steps is truncated toward zero, so a trailing partial step is
// dropped and the last point may fall short of End.
func (r Row) sizePoints(cfg Config) ([]float64, error) {
	if !core.IsFinite(r.Start) || !core.IsFinite(r.End) || !core.IsFinite(r.StepSize) {
		return nil, ErrNonFinite
	}
	if r.StepSize == 0 {
		return nil, ErrZeroStep
	}

	steps := math.Trunc((r.End - r.Start) / r.StepSize)
	if !core.IsFinite(steps) {
		return nil, ErrNonFinite
	}
	if steps+1 > float64(cfg.MaxPoints) {
		return nil, ErrTooManyPoints
	}
	if steps+1 < 0 {
		return nil, ErrNegativeCount
	}

	numPoints := int(steps)
	endPoint := r.Start + float64(numPoints)*r.StepSize

	// Rounding in the product may overshoot End by an ulp.
	if (r.StepSize > 0 && endPoint > r.End) || (r.StepSize < 0 && endPoint < r.End) {
		endPoint = r.End
	}

	return core.Linspace(r.Start, endPoint, numPoints+1)
}

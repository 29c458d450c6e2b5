package core

import (
	"errors"
	"math"
	"slices"

	"github.com/cwbudde/algo-vecmath"
)

// Default tolerances for IsClose and AllClose.
const (
	DefaultRelTol = 1e-5
	DefaultAbsTol = 1e-8
)

// Errors returned by the sequence generators.
var (
	ErrNegativeCount = errors.New("core: number of points must be non-negative")
	ErrNonFinite     = errors.New("core: non-finite sequence parameter")
	ErrZeroStep      = errors.New("core: step must be non-zero")
	ErrTooManyPoints = errors.New("core: sequence length out of range")
)

// ramp returns [0, 1, ..., n-1].
func ramp(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = float64(i)
	}
	return out
}

// offset adds value to every element of buf in place.
func offset(buf []float64, value float64) {
	if value == 0 {
		return
	}
	for i := range buf {
		buf[i] += value
	}
}

// Linspace returns n evenly spaced points from start to stop inclusive.
// See LinspaceStep.
func Linspace(start, stop float64, n int) ([]float64, error) {
	out, _, err := LinspaceStep(start, stop, n)
	return out, err
}

// LinspaceStep returns n evenly spaced points from start to stop inclusive
// together with the spacing between them.
//
// The arithmetic follows the usual linspace convention: point i is
// start + i*step, and the last point is pinned to stop. For n == 1 the
// result is [start] and the step is NaN; for n == 0 the result is empty.
// Bounds whose difference overflows give ErrNonFinite.
func LinspaceStep(start, stop float64, n int) ([]float64, float64, error) {
	if n < 0 {
		return nil, math.NaN(), ErrNegativeCount
	}
	if !IsFinite(start) || !IsFinite(stop) {
		return nil, math.NaN(), ErrNonFinite
	}

	step := math.NaN()
	if n == 0 {
		return ramp(0), step, nil
	}

	div := n - 1
	delta := stop - start
	if !IsFinite(delta) {
		return nil, step, ErrNonFinite
	}

	out := ramp(n)
	if div > 0 {
		step = delta / float64(div)
		if step == 0 {
			Zero(out)
		} else {
			vecmath.ScaleBlockInPlace(out, step)
		}
	} else {
		vecmath.ScaleBlockInPlace(out, delta)
	}

	offset(out, start)

	if div > 0 {
		out[n-1] = stop
	}

	return out, step, nil
}

// Arange returns the half-open sequence start, start+step, ... that stops
// before stop. The length is ceil((stop-start)/step); a non-positive
// length gives an empty sequence.
func Arange(start, stop, step float64) ([]float64, error) {
	if !IsFinite(start) || !IsFinite(stop) || !IsFinite(step) {
		return nil, ErrNonFinite
	}
	if step == 0 {
		return nil, ErrZeroStep
	}

	length := math.Ceil((stop - start) / step)
	if !IsFinite(length) {
		return nil, ErrNonFinite
	}
	if length <= 0 {
		return nil, nil
	}
	if length > math.MaxInt32 {
		return nil, ErrTooManyPoints
	}

	n := int(length)
	out := ramp(n)
	if n > 1 {
		// The stride is measured from the first two points, not taken from step.
		vecmath.ScaleBlockInPlace(out, (start+step)-start)
	}
	offset(out, start)

	return out, nil
}

// Unique returns the sorted distinct values of x. Values are compared with
// ExactlyEqual; values that differ in their last bit are kept apart.
// x is not modified.
func Unique(x []float64) []float64 {
	out := slices.Clone(x)
	slices.Sort(out)
	return slices.CompactFunc(out, ExactlyEqual)
}

// Repeat emits each element of x k times consecutively.
// k <= 0 yields an empty slice.
func Repeat(x []float64, k int) []float64 {
	if k <= 0 {
		return nil
	}
	if k == 1 {
		return slices.Clone(x)
	}
	out := EnsureLen(nil, len(x)*k)
	for i, v := range x {
		for j := 0; j < k; j++ {
			out[i*k+j] = v
		}
	}
	return out
}

// ExactlyEqual reports whether a and b hold the same value. No tolerance.
func ExactlyEqual(a, b float64) bool {
	return a == b
}

// IsClose reports whether |a-b| <= atol + rtol*|b|.
// NaN is never close to anything.
func IsClose(a, b, rtol, atol float64) bool {
	if math.IsNaN(a) || math.IsNaN(b) {
		return false
	}
	if a == b {
		return true
	}
	return math.Abs(a-b) <= atol+rtol*math.Abs(b)
}

// AllClose reports whether a and b have the same length and every element
// pair satisfies IsClose.
func AllClose(a, b []float64, rtol, atol float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !IsClose(a[i], b[i], rtol, atol) {
			return false
		}
	}
	return true
}

// IsFinite reports whether x is neither NaN nor an infinity.
func IsFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

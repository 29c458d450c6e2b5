// Package core provides the sequence primitives behind sweep lists:
// linspace and arange style generators, exact de-duplication, consecutive
// repetition and tolerance comparison.
//
// Exact and tolerance comparison are deliberately separate routines.
// Unique merges only values that are ExactlyEqual, while AllClose accepts
// values within a relative and absolute tolerance:
//
//	a := []float64{0, 0.1 + 0.2}
//	b := []float64{0, 0.3}
//	core.AllClose(a, b, core.DefaultRelTol, core.DefaultAbsTol) // true
//	len(core.Unique(append(a, b...)))                             // 3
package core

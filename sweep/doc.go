// Package sweep builds sweep lists: the ordered setpoints applied one at a
// time to a parameter under test.
//
// A sweep is described by rows. Each row is a range from Start to End and
// one of two equivalent descriptions of the spacing: a point count
// (ModeStepCount) or an increment (ModeStepSize). Whichever the user edited
// last is authoritative; the other is derived.
//
// # Building a list
//
// Build merges all rows into one ascending list without exact duplicates,
// then emits every point repeat times in a row:
//
//	rows := []sweep.Row{
//	    {Start: 0, End: 10, NumSteps: 3, Mode: sweep.ModeStepCount},
//	    {Start: 10, End: 20, NumSteps: 3, Mode: sweep.ModeStepCount},
//	}
//	points := sweep.Build(rows, 1) // [0 5 10 15 20]
//
// Rows that cannot produce points (zero step, non-finite bounds, negative
// counts) are skipped. They never abort the build; BuildReport tells the
// caller which rows were skipped and why.
//
// # Resolving the derived field
//
// Resolve fills in the non-authoritative field of every row. For a
// step-count row the implied step is only reported when stepping from
// Start by that increment reproduces the same points within tolerance;
// otherwise the row is marked ambiguous and the step size indeterminate.
package sweep

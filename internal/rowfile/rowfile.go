// Package rowfile decodes sweep tables from YAML (or JSON) documents into
// sweep rows.
//
// A document lists rows with their bounds and one or both spacings:
//
//	repeat: 2
//	tolerance:
//	  rtol: 1e-5
//	rows:
//	  - {start: 0, end: 1k, steps: 11}
//	  - {start: 1k, end: 2k, step: 250}
//	  - {start: 0, end: 10, step: 3, steps: 4, mode: size}
//
// mode may be left out when only one of step and steps is given.
package rowfile

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/cwbudde/algo-sweep/sweep"
)

// Errors returned while decoding a row file.
var (
	ErrNotNumber    = errors.New("rowfile: not a number")
	ErrUnit         = errors.New("rowfile: unexpected unit")
	ErrNonFinite    = errors.New("rowfile: number must be finite")
	ErrNotInteger   = errors.New("rowfile: steps must be a whole number")
	ErrMissingBound = errors.New("rowfile: start and end are required")
	ErrNoSpacing    = errors.New("rowfile: one of step or steps is required")
	ErrModeRequired = errors.New("rowfile: mode is required when both step and steps are given")
	ErrUnknownMode  = errors.New("rowfile: unknown mode")
	ErrRepeat       = errors.New("rowfile: repeat must be at least 1")
	ErrEmpty        = errors.New("rowfile: empty document")
)

// File is a decoded sweep table.
type File struct {
	Repeat    int       `yaml:"repeat"`
	Tolerance Tolerance `yaml:"tolerance"`
	Rows      []RowSpec `yaml:"rows"`
}

// Tolerance overrides the equivalence tolerances used when resolving.
type Tolerance struct {
	Rel *float64 `yaml:"rtol"`
	Abs *float64 `yaml:"atol"`
}

// RowSpec is one row as written in the file.
type RowSpec struct {
	Start *Quantity `yaml:"start"`
	End   *Quantity `yaml:"end"`
	Step  *Quantity `yaml:"step"`
	Steps *Quantity `yaml:"steps"`
	Mode  string    `yaml:"mode"`
}

// Decode reads one document from r. Unknown keys are rejected.
func Decode(r io.Reader) (File, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f File
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return File{}, ErrEmpty
		}
		return File{}, fmt.Errorf("rowfile: decode: %w", err)
	}

	if f.Repeat == 0 {
		f.Repeat = 1
	}
	if f.Repeat < 0 {
		return File{}, fmt.Errorf("%w: got %d", ErrRepeat, f.Repeat)
	}

	return f, nil
}

// Load decodes the file at path. A path of "-" reads standard input.
func Load(path string) (File, error) {
	if path == "-" {
		return Decode(os.Stdin)
	}

	fh, err := os.Open(path)
	if err != nil {
		return File{}, fmt.Errorf("rowfile: %w", err)
	}
	defer fh.Close()

	return Decode(fh)
}

// RowError reports a file row that could not be converted.
type RowError struct {
	Index int
	Err   error
}

func (e RowError) Error() string {
	return fmt.Sprintf("row %d: %v", e.Index, e.Err)
}

func (e RowError) Unwrap() error {
	return e.Err
}

// Table holds the rows of a file that converted cleanly.
type Table struct {
	Rows []sweep.Row
	// Index[i] is the position of Rows[i] in the file.
	Index   []int
	Skipped []RowError
}

// SweepRows converts the file rows to sweep rows, in order. A row that
// cannot be converted is left out and reported in Skipped; the rest are
// still returned.
func (f File) SweepRows() Table {
	t := Table{
		Rows:  make([]sweep.Row, 0, len(f.Rows)),
		Index: make([]int, 0, len(f.Rows)),
	}
	for i, spec := range f.Rows {
		row, err := spec.SweepRow()
		if err != nil {
			t.Skipped = append(t.Skipped, RowError{Index: i, Err: err})
			continue
		}
		t.Rows = append(t.Rows, row)
		t.Index = append(t.Index, i)
	}
	return t
}

// Options returns the sweep options requested by the file.
func (f File) Options() []sweep.Option {
	var opts []sweep.Option
	if f.Tolerance.Rel != nil {
		opts = append(opts, sweep.WithRelTolerance(*f.Tolerance.Rel))
	}
	if f.Tolerance.Abs != nil {
		opts = append(opts, sweep.WithAbsTolerance(*f.Tolerance.Abs))
	}
	return opts
}

// SweepRow converts a single row.
func (s RowSpec) SweepRow() (sweep.Row, error) {
	if s.Start == nil || s.End == nil {
		return sweep.Row{}, ErrMissingBound
	}

	mode, err := s.mode()
	if err != nil {
		return sweep.Row{}, err
	}

	row := sweep.Row{
		Start: float64(*s.Start),
		End:   float64(*s.End),
		Mode:  mode,
	}
	if s.Step != nil {
		row.StepSize = float64(*s.Step)
	}
	if s.Steps != nil {
		n := float64(*s.Steps)
		if n != math.Trunc(n) || math.Abs(n) > math.MaxInt32 {
			return sweep.Row{}, fmt.Errorf("%w: %v", ErrNotInteger, n)
		}
		row.NumSteps = int(n)
	}

	return row, nil
}

func (s RowSpec) mode() (sweep.Mode, error) {
	if s.Mode != "" {
		return ParseMode(s.Mode)
	}
	switch {
	case s.Steps != nil && s.Step == nil:
		return sweep.ModeStepCount, nil
	case s.Step != nil && s.Steps == nil:
		return sweep.ModeStepSize, nil
	case s.Step == nil:
		return 0, ErrNoSpacing
	default:
		return 0, ErrModeRequired
	}
}

// ParseMode accepts "count", "steps" or "step-count" for ModeStepCount and
// "size", "step" or "step-size" for ModeStepSize, in any case.
func ParseMode(s string) (sweep.Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "count", "steps", "step-count", "num_steps":
		return sweep.ModeStepCount, nil
	case "size", "step", "step-size", "step_size":
		return sweep.ModeStepSize, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
}

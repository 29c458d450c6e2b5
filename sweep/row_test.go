package sweep

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/cwbudde/algo-sweep/internal/testutil"
)

func TestModeString(t *testing.T) {
	tests := []struct {
		mode Mode
		want string
	}{
		{ModeStepCount, "step-count"},
		{ModeStepSize, "step-size"},
		{Mode(7), "Mode(7)"},
	}
	for _, tt := range tests {
		if got := tt.mode.String(); got != tt.want {
			t.Fatalf("Mode(%d).String() = %q, want %q", int(tt.mode), got, tt.want)
		}
	}
}

func TestRowPointsKeepsGenerationOrder(t *testing.T) {
	row := Row{Start: 10, End: 0, StepSize: -5, Mode: ModeStepSize}
	got, err := row.Points()
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]float64{10, 5, 0}, got); diff != "" {
		t.Fatalf("Points() mismatch (-want +got):\n%s", diff)
	}
}

func TestRowPointsMaxPoints(t *testing.T) {
	row := Row{Start: 0, End: 1, NumSteps: 3, Mode: ModeStepCount}
	if _, err := row.Points(WithMaxPoints(2)); !errors.Is(err, ErrTooManyPoints) {
		t.Fatalf("err = %v, want %v", err, ErrTooManyPoints)
	}
	if _, err := row.Points(WithMaxPoints(3)); err != nil {
		t.Fatalf("err = %v, want nil at the cap", err)
	}
}

// In these rows Start + trunc((End-Start)/StepSize)*StepSize rounds one ulp
// past End.
func TestRowPointsStepSizeStopsAtEnd(t *testing.T) {
	tests := []struct {
		name  string
		row   Row
		count int
	}{
		{"0..1.7 by 0.1", Row{Start: 0, End: 1.7, StepSize: 0.1, Mode: ModeStepSize}, 18},
		{"0..0.35 by 0.01", Row{Start: 0, End: 0.35, StepSize: 0.01, Mode: ModeStepSize}, 36},
		{"0..6.8 by 0.2", Row{Start: 0, End: 6.8, StepSize: 0.2, Mode: ModeStepSize}, 35},
		{"1.7..0 by -0.1", Row{Start: 1.7, End: 0, StepSize: -0.1, Mode: ModeStepSize}, 18},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.row.Points()
			if err != nil {
				t.Fatal(err)
			}
			if len(got) != tt.count {
				t.Fatalf("len = %d, want %d", len(got), tt.count)
			}
			if last := got[len(got)-1]; last != tt.row.End {
				t.Fatalf("last point = %v, want %v", last, tt.row.End)
			}
			lo, hi := min(tt.row.Start, tt.row.End), max(tt.row.Start, tt.row.End)
			testutil.RequireWithin(t, got, lo, hi)
		})
	}
}

func TestRowPointsStepSizeNeverPassesEnd(t *testing.T) {
	for _, step := range []float64{0.1, 0.05, 0.01} {
		for k := 1; k < 200; k++ {
			row := Row{Start: 0, End: float64(k) / 10, StepSize: step, Mode: ModeStepSize}
			got, err := row.Points()
			if err != nil {
				t.Fatalf("%+v: %v", row, err)
			}
			if last := got[len(got)-1]; last > row.End {
				t.Fatalf("%+v: last point %v passes End", row, last)
			}
		}
	}
}

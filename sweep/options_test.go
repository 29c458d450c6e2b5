package sweep

import (
	"math"
	"testing"
)

func TestApplyOptions(t *testing.T) {
	cfg := ApplyOptions(WithRelTolerance(1e-3), WithAbsTolerance(0), WithMaxPoints(512))
	if cfg.RelTol != 1e-3 {
		t.Fatalf("rel tol = %v, want 1e-3", cfg.RelTol)
	}
	if cfg.AbsTol != 0 {
		t.Fatalf("abs tol = %v, want 0", cfg.AbsTol)
	}
	if cfg.MaxPoints != 512 {
		t.Fatalf("max points = %d, want 512", cfg.MaxPoints)
	}
}

func TestInvalidOptionsIgnored(t *testing.T) {
	cfg := ApplyOptions(
		WithRelTolerance(-1),
		WithAbsTolerance(math.NaN()),
		WithAbsTolerance(math.Inf(1)),
		WithMaxPoints(0),
		nil,
	)
	def := DefaultConfig()
	if cfg != def {
		t.Fatalf("cfg = %#v, want %#v", cfg, def)
	}
}

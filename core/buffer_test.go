package core

import "testing"

func TestEnsureLen(t *testing.T) {
	buf := make([]float64, 2, 8)
	got := EnsureLen(buf, 6)
	if len(got) != 6 || cap(got) != 8 {
		t.Fatalf("EnsureLen reused = len %d cap %d, want len 6 cap 8", len(got), cap(got))
	}

	got = EnsureLen(buf, 16)
	if len(got) != 16 {
		t.Fatalf("EnsureLen grown = len %d, want 16", len(got))
	}

	if got := EnsureLen(buf, 0); len(got) != 0 {
		t.Fatalf("EnsureLen(0) = len %d, want 0", len(got))
	}
}

func TestZero(t *testing.T) {
	buf := []float64{1, -2, 3}
	Zero(buf)
	for i, v := range buf {
		if v != 0 {
			t.Fatalf("buf[%d] = %v, want 0", i, v)
		}
	}
}

func TestConcat(t *testing.T) {
	got := Concat(nil, []float64{1, 2}, nil, []float64{3})
	want := []float64{1, 2, 3}
	if len(got) != len(want) {
		t.Fatalf("Concat len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Concat[%d] = %v, want %v", i, got[i], want[i])
		}
	}

	dst := make([]float64, 1, 1)
	dst[0] = 9
	got = Concat(dst, []float64{1})
	if got[0] != 9 || got[1] != 1 {
		t.Fatalf("Concat with prefix = %v, want [9 1]", got)
	}
}

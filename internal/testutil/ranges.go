package testutil

import "math/rand"

// Range is a raw sweep range with both step representations filled in.
type Range struct {
	Start float64
	End   float64
	Step  float64
	Steps int
}

// DeterministicRanges generates count ascending ranges inside [-span, span]
// with a fixed seed for reproducibility. Steps is in [1, 64] and Step is a
// positive fraction of the range width.
func DeterministicRanges(seed int64, count int, span float64) []Range {
	rng := rand.New(rand.NewSource(seed))
	out := make([]Range, count)
	for i := range out {
		a := (rng.Float64()*2 - 1) * span
		b := (rng.Float64()*2 - 1) * span
		if a > b {
			a, b = b, a
		}
		if a == b {
			b = a + 1
		}
		out[i] = Range{
			Start: a,
			End:   b,
			Step:  (b - a) / (1 + rng.Float64()*31),
			Steps: 1 + rng.Intn(64),
		}
	}
	return out
}

// DivisibleRange returns a range whose width is an exact multiple of the
// step implied by steps points, using small integers only.
func DivisibleRange(start int, stride int, steps int) Range {
	width := stride * (steps - 1)
	return Range{
		Start: float64(start),
		End:   float64(start + width),
		Step:  float64(stride),
		Steps: steps,
	}
}

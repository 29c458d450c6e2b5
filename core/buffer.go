package core

// EnsureLen returns a slice with the requested length, reusing buf capacity if possible.
func EnsureLen(buf []float64, n int) []float64 {
	if n <= 0 {
		return buf[:0]
	}
	if cap(buf) >= n {
		return buf[:n]
	}
	return make([]float64, n)
}

// Zero sets all values in buf to 0.
func Zero(buf []float64) {
	for i := range buf {
		buf[i] = 0
	}
}

// Concat appends every part to dst in order and returns the extended slice.
func Concat(dst []float64, parts ...[]float64) []float64 {
	total := len(dst)
	for _, p := range parts {
		total += len(p)
	}
	if cap(dst) < total {
		grown := make([]float64, len(dst), total)
		copy(grown, dst)
		dst = grown
	}
	for _, p := range parts {
		dst = append(dst, p...)
	}
	return dst
}

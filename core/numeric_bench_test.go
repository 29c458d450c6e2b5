package core

import (
	"fmt"
	"testing"
)

func BenchmarkLinspace(b *testing.B) {
	for _, n := range []int{16, 1024, 65536} {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			b.ReportAllocs()

			for b.Loop() {
				if _, err := Linspace(-1, 1, n); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkUnique(b *testing.B) {
	x, _ := Linspace(0, 1, 4096)
	x = Concat(x, x)

	b.ReportAllocs()
	b.ResetTimer()

	for b.Loop() {
		_ = Unique(x)
	}
}

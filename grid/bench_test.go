package grid_test

import (
	"testing"

	"github.com/katalvlaran/gridkit/grid"
)

// BenchmarkNewFilled measures allocation and fill of a 2048×2048 grid.
func BenchmarkNewFilled(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = grid.NewFilled(grid.S(2048, 2048), uint32(42))
	}
}

// BenchmarkAtSet measures checked access on a large grid.
func BenchmarkAtSet(b *testing.B) {
	g, err := grid.NewFilled(grid.S(2048, 2048), uint32(42))
	if err != nil {
		b.Fatalf("setup failed: %v", err)
	}
	p := grid.P(50, 50)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		v, _ := g.At(p)
		_ = g.Set(p, v+1)
	}
}

// BenchmarkAll measures a full positional scan.
func BenchmarkAll(b *testing.B) {
	g, _ := grid.NewFilled(grid.S(512, 512), uint32(1))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		var sum uint32
		for _, v := range g.All() {
			sum += v
		}
		_ = sum
	}
}

package gridgraph_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/jumpgrid/gridgraph"
)

// randomGrid builds an n×n grid with roughly density of its cells blocked.
func randomGrid(b *testing.B, n int, density float64, seed int64) *gridgraph.Grid {
	r := rand.New(rand.NewSource(seed))
	weights := make([]float64, n*n)
	for i := range weights {
		if r.Float64() >= density {
			weights[i] = 1
		}
	}
	g, err := gridgraph.NewGrid(n, n, weights)
	if err != nil {
		b.Fatalf("setup NewGrid failed: %v", err)
	}

	return g
}

// BenchmarkConnectedComponents measures ConnectedComponents on a 1000×1000 grid
// with 30% walls.
// Complexity: O(W×H×8)
func BenchmarkConnectedComponents(b *testing.B) {
	g := randomGrid(b, 1000, 0.3, 42)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.ConnectedComponents()
	}
}

// BenchmarkCanStep measures the diagonal corner check.
func BenchmarkCanStep(b *testing.B) {
	g := randomGrid(b, 256, 0.2, 7)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c := gridgraph.Coord{X: i & 255, Y: (i >> 8) & 255}
		_ = g.CanStep(c, gridgraph.Directions[i&7])
	}
}

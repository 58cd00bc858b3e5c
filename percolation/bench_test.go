package percolation_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/percolation/percolation"
)

// BenchmarkPercolationFraction measures one reset sweep on a 100×100 lattice
// at p=0.7.
// Complexity: O(L²·α(L²))
func BenchmarkPercolationFraction(b *testing.B) {
	s, err := percolation.New(100, 0.7, percolation.WithSeed(1))
	if err != nil {
		b.Fatalf("setup New failed: %v", err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = s.PercolationFraction(true)
	}
}

// BenchmarkMonteCarloParallel measures 64 trials per iteration on the
// default worker pool.
func BenchmarkMonteCarloParallel(b *testing.B) {
	s, err := percolation.New(100, 0.7, percolation.WithSeed(1))
	if err != nil {
		b.Fatalf("setup New failed: %v", err)
	}
	ctx := context.Background()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := s.MonteCarloParallel(ctx, 64); err != nil {
			b.Fatal(err)
		}
	}
}

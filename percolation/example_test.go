// File: percolation/example_test.go
package percolation_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/percolation/gridgraph"
	"github.com/katalvlaran/percolation/percolation"
)

////////////////////////////////////////////////////////////////////////////////
// Example: PercolationFraction
////////////////////////////////////////////////////////////////////////////////

// ExampleSampler_PercolationFraction shows the two deterministic corners:
// with p=1 every bond opens and the 2×2 lattice is one cluster; with p=0
// nothing opens and the largest cluster is a single site of a 3×3 lattice.
func ExampleSampler_PercolationFraction() {
	full, _ := percolation.New(2, 1)
	empty, _ := percolation.New(3, 0)

	fmt.Printf("L=2 p=1: %.4f\n", full.PercolationFraction(true))
	fmt.Printf("L=3 p=0: %.4f\n", empty.PercolationFraction(true))
	fmt.Println("clusters:", full.Clusters())

	// Output:
	// L=2 p=1: 1.0000
	// L=3 p=0: 0.1111
	// clusters: [4]
}

////////////////////////////////////////////////////////////////////////////////
// Example: MonteCarloParallel
////////////////////////////////////////////////////////////////////////////////

// ExampleSampler_MonteCarloParallel runs trials on a periodic lattice well
// above the threshold and summarizes them.
func ExampleSampler_MonteCarloParallel() {
	s, _ := percolation.New(32, 0.9,
		percolation.WithSeed(42),
		percolation.WithBoundary(gridgraph.Periodic),
		percolation.WithWorkers(4))

	vals, _ := s.MonteCarloParallel(context.Background(), 100)
	sum, _ := percolation.Summarize(vals)
	fmt.Println("trials:", sum.N)
	fmt.Println("mean above 0.9:", sum.Mean > 0.9)

	// Output:
	// trials: 100
	// mean above 0.9: true
}

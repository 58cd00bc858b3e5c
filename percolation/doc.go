// Package percolation estimates the percolation probability of a square
// lattice by Monte Carlo sampling of random bond activation.
//
// 🚀 What is bond percolation?
//
//	Every bond between neighbouring sites is opened independently with
//	probability p. The fraction of sites belonging to the largest cluster
//	of open bonds is one observation of the percolation probability. As p
//	crosses the critical value (½ on the infinite square lattice) the
//	largest cluster jumps from a vanishing to a finite fraction of sites.
//
// ✨ Key features:
//   - Sampler: one L×L lattice, one activation probability, one union-find
//     store tracking cluster sizes in near-linear time per sweep
//   - deterministic randomness: WithSeed / WithRand, seed 0 maps to a fixed seed
//   - MonteCarlo: sequential trials on the sampler's own stream
//   - MonteCarloParallel: independent per-trial streams on a worker pool;
//     results do not depend on the number of workers
//   - Summarize and Curve: mean/std-dev of trials, and a sweep over p
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/percolation/percolation"
//
//	s, err := percolation.New(100, 0.7, percolation.WithSeed(42))
//	if err != nil {
//	  // handle ErrInvalidSide / ErrInvalidProbability
//	}
//	vals := s.MonteCarlo(1000)
//	sum, _ := percolation.Summarize(vals)
//	fmt.Printf("mean=%.5f std=%.5f\n", sum.Mean, sum.StdDev)
//
// Boundary:
//
//	The default sweep (gridgraph.Open) activates the bonds of the L×L square
//	without crossing its edges. WithBoundary(gridgraph.Periodic) adds the
//	wraparound bonds of the torus.
//
// Performance:
//
//   - Sweep:       O(L²·α(L²)) time, one random draw per candidate bond
//   - Measurement: O(L²) scan of the union-find store
//   - Memory:      O(L²) per concurrently running trial
package percolation

package percolation

import (
	"context"
	"time"

	"github.com/cockroachdb/errors"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/percolation/unionfind"
)

// MonteCarloParallel runs trials independent sweeps on up to WithWorkers
// goroutines and returns the percolation fractions indexed by trial number.
//
// Each trial owns a fresh union-find store and a random stream derived from
// one draw of the sampler's stream and the trial number. The result is
// therefore a function of the seed and the trial count only: it does not
// depend on the worker count or on scheduling. The sampler's own store is
// not modified.
//
// Error Conditions:
//   - ErrInvalidTrials: trials < 0.
//   - ctx.Err():        the context was cancelled before all trials finished.
//
// Complexity: O(trials·L²·α(L²)) total work, O(workers·L²) memory.
func (s *Sampler) MonteCarloParallel(ctx context.Context, trials int) ([]float64, error) {
	if trials < 0 {
		return nil, errors.Wrapf(ErrInvalidTrials, "MonteCarloParallel(trials=%d)", trials)
	}
	vals := make([]float64, trials)
	if trials == 0 {
		return vals, nil
	}

	start := time.Now()
	parent := s.rng.Int63()
	workers := min(s.workers, trials)
	s.logger.Debug("monte carlo started",
		"side", s.lattice.Side,
		"p", s.p,
		"trials", trials,
		"workers", workers,
		"boundary", s.lattice.Boundary.String())

	// Trials are handed out through a channel so that each worker reuses one
	// store for all of its trials.
	next := make(chan int)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer close(next)
		for t := 0; t < trials; t++ {
			if err := gctx.Err(); err != nil {
				return err
			}
			select {
			case next <- t:
			case <-gctx.Done():
				return gctx.Err()
			}
		}
		return nil
	})
	for w := 0; w < workers; w++ {
		g.Go(func() error {
			store, err := unionfind.New(s.sites, unionfind.WithMergePolicy(s.policy))
			if err != nil {
				return err
			}
			for t := range next {
				store.Reset()
				sweep(s.lattice, store, streamRNG(parent, uint64(t)), s.p)
				vals[t] = fraction(store, s.sites)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, errors.Wrap(err, "MonteCarloParallel")
	}

	s.logger.Debug("monte carlo finished",
		"trials", trials,
		"elapsed", time.Since(start))
	return vals, nil
}

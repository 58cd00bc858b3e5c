package percolation

import (
	"context"
	"math"

	"github.com/cockroachdb/errors"
)

// ProbabilityRange returns lo, lo+step, lo+2·step, … for every value below hi,
// like a half-open arange. lo and hi must lie in [0,1] with lo ≤ hi, and
// step must be positive.
func ProbabilityRange(lo, hi, step float64) ([]float64, error) {
	if !(step > 0) || !(lo >= 0) || !(hi <= 1) || lo > hi {
		return nil, errors.Wrapf(ErrInvalidRange, "ProbabilityRange(%v, %v, %v)", lo, hi, step)
	}
	// The epsilon keeps (0.9-0.1)/0.01 = 80.00000000000001 from producing 81 points.
	n := int(math.Ceil((hi-lo)/step - 1e-9))
	ps := make([]float64, n)
	for k := range ps {
		ps[k] = lo + float64(k)*step
	}
	return ps, nil
}

// Curve estimates the percolation probability at every p in ps on an L×L
// lattice, running trials parallel trials per point (see MonteCarloParallel).
// Each point gets its own sampler and a random stream derived from the
// configured seed and the point's position in ps.
//
// Error Conditions:
//   - ErrNoSamples: trials < 1.
//   - any error from New or MonteCarloParallel, wrapped with the failing p.
//
// Complexity: O(len(ps)·trials·L²·α(L²)).
func Curve(ctx context.Context, side int, ps []float64, trials int, opts ...Option) ([]Point, error) {
	if trials < 1 {
		return nil, errors.Wrapf(ErrNoSamples, "Curve(trials=%d)", trials)
	}
	cfg := newConfig(opts...)
	points := make([]Point, 0, len(ps))
	for k, p := range ps {
		pointOpts := append(append([]Option(nil), opts...), WithRand(deriveRNG(cfg.rng, uint64(k))))
		s, err := New(side, p, pointOpts...)
		if err != nil {
			return nil, errors.Wrapf(err, "Curve(p=%v)", p)
		}
		vals, err := s.MonteCarloParallel(ctx, trials)
		if err != nil {
			return nil, errors.Wrapf(err, "Curve(p=%v)", p)
		}
		sum, err := Summarize(vals)
		if err != nil {
			return nil, errors.Wrapf(err, "Curve(p=%v)", p)
		}
		cfg.logger.Debug("curve point", "side", side, "p", p, "mean", sum.Mean, "std", sum.StdDev)
		points = append(points, Point{P: p, Summary: sum})
	}
	return points, nil
}

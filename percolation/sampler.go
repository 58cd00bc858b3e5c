package percolation

import (
	"log/slog"
	"math"
	"math/rand"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/percolation/gridgraph"
	"github.com/katalvlaran/percolation/unionfind"
)

// Sampler owns an L×L lattice, a bond activation probability p and the
// union-find store of the current trial.
//
// A Sampler is not safe for concurrent use. MonteCarloParallel runs its
// trials on private stores and leaves the Sampler's own store untouched.
type Sampler struct {
	lattice *gridgraph.Lattice
	sites   int
	p       float64
	store   *unionfind.Store
	rng     *rand.Rand
	policy  unionfind.MergePolicy
	workers int
	logger  *slog.Logger
}

// New constructs a Sampler for an L×L lattice with activation probability p.
// The initial store holds L² singleton clusters; no sweep is run.
//
// Error Conditions:
//   - ErrInvalidSide:               side < 1.
//   - ErrInvalidProbability:        p is NaN or outside [0,1].
//   - gridgraph.ErrLatticeTooLarge: L² does not fit a union-find index.
//
// Complexity: O(L²) time and memory.
func New(side int, p float64, opts ...Option) (*Sampler, error) {
	if side < 1 {
		return nil, errors.Wrapf(ErrInvalidSide, "New(side=%d)", side)
	}
	if math.IsNaN(p) || p < 0 || p > 1 {
		return nil, errors.Wrapf(ErrInvalidProbability, "New(p=%v)", p)
	}
	cfg := newConfig(opts...)
	lattice, err := gridgraph.NewLattice(side, cfg.boundary)
	if err != nil {
		return nil, errors.Wrap(err, "New")
	}
	store, err := unionfind.New(lattice.Sites(), unionfind.WithMergePolicy(cfg.policy))
	if err != nil {
		return nil, errors.Wrap(err, "New")
	}

	return &Sampler{
		lattice: lattice,
		sites:   lattice.Sites(),
		p:       p,
		store:   store,
		rng:     cfg.rng,
		policy:  cfg.policy,
		workers: cfg.workers,
		logger:  cfg.logger,
	}, nil
}

// Side returns the lattice edge length L.
func (s *Sampler) Side() int { return s.lattice.Side }

// Sites returns L².
func (s *Sampler) Sites() int { return s.sites }

// Probability returns the bond activation probability p.
func (s *Sampler) Probability() float64 { return s.p }

// Lattice returns the lattice geometry.
func (s *Sampler) Lattice() *gridgraph.Lattice { return s.lattice }

// IndexOf wraps (x,y) into [0,L)² and returns x + y·L.
func (s *Sampler) IndexOf(x, y int) int {
	return s.lattice.Index(x, y)
}

// ActivateBond draws one uniform value r in [0,1) and unions sites i and j in
// the current store when r < p. Exactly one draw is consumed either way.
// Panics if i or j is not a site index.
func (s *Sampler) ActivateBond(i, j int) {
	activate(s.store, s.rng, s.p, i, j)
}

// Sweep runs one pass of bond activation over every candidate bond of the
// lattice in gridgraph sweep order, accumulating into the current store.
// Complexity: O(L²·α(L²)).
func (s *Sampler) Sweep() {
	sweep(s.lattice, s.store, s.rng, s.p)
}

// PercolationFraction returns the size of the largest cluster divided by L².
// With reset=true the store is first returned to L² singletons and one Sweep
// is run; with reset=false the current store is measured as it stands.
// The result lies in [1/L², 1].
func (s *Sampler) PercolationFraction(reset bool) float64 {
	if reset {
		s.store.Reset()
		s.Sweep()
	}
	return fraction(s.store, s.sites)
}

// MonteCarlo runs PercolationFraction(true) trials times and returns the
// results in trial order. Trials share nothing but the sampler's random
// stream, which advances from one trial to the next. A non-positive trial
// count yields an empty slice.
// Complexity: O(trials·L²·α(L²)).
func (s *Sampler) MonteCarlo(trials int) []float64 {
	vals := make([]float64, 0, max(trials, 0))
	for t := 0; t < trials; t++ {
		vals = append(vals, s.PercolationFraction(true))
	}
	return vals
}

// Clusters returns the cluster sizes of the current store, largest first.
func (s *Sampler) Clusters() []int {
	return s.store.Sizes()
}

// activate is the single point where randomness enters a sweep.
func activate(store *unionfind.Store, rng *rand.Rand, p float64, i, j int) {
	if rng.Float64() < p {
		store.Union(i, j)
	}
}

func sweep(l *gridgraph.Lattice, store *unionfind.Store, rng *rand.Rand, p float64) {
	l.Bonds(func(u, v int) {
		activate(store, rng, p, u, v)
	})
}

func fraction(store *unionfind.Store, sites int) float64 {
	return float64(store.MaxSize()) / float64(sites)
}

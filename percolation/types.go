// Package percolation defines options, result types and sentinel errors
// for lattice sampling.
package percolation

import (
	"io"
	"log/slog"
	"math/rand"
	"runtime"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/percolation/gridgraph"
	"github.com/katalvlaran/percolation/unionfind"
)

// Sentinel errors for sampler construction and Monte Carlo runs.
var (
	// ErrInvalidSide indicates a lattice side smaller than 1.
	ErrInvalidSide = errors.New("percolation: lattice side must be at least 1")
	// ErrInvalidProbability indicates an activation probability outside [0,1].
	ErrInvalidProbability = errors.New("percolation: activation probability must be in [0,1]")
	// ErrInvalidTrials indicates a negative trial count.
	ErrInvalidTrials = errors.New("percolation: trial count must be non-negative")
	// ErrNoSamples indicates that statistics were requested for an empty sample.
	ErrNoSamples = errors.New("percolation: no samples")
	// ErrInvalidRange indicates a malformed probability range.
	ErrInvalidRange = errors.New("percolation: invalid probability range")
)

// Option configures a Sampler. Option constructors panic on meaningless
// input; Sampler methods never panic on valid lattices.
type Option func(*config)

type config struct {
	seed     int64
	rng      *rand.Rand
	boundary gridgraph.Boundary
	policy   unionfind.MergePolicy
	workers  int
	logger   *slog.Logger
}

// WithSeed seeds the sampler's random stream. Seed 0 selects a fixed default
// seed, so a sampler is reproducible unless WithRand supplies another source.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.seed = seed
		c.rng = nil
	}
}

// WithRand supplies the random stream directly. The sampler takes ownership:
// *rand.Rand is not safe for concurrent use, so the caller must not draw from
// r while the sampler is running. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("percolation: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// WithBoundary selects the bond set swept per trial (default gridgraph.Open).
func WithBoundary(b gridgraph.Boundary) Option {
	return func(c *config) {
		c.boundary = b
	}
}

// WithMergePolicy selects the union-find merge policy (default
// unionfind.MergeByIndex). The policy never changes cluster sizes.
// Panics on an unknown policy.
func WithMergePolicy(p unionfind.MergePolicy) Option {
	if p != unionfind.MergeByIndex && p != unionfind.MergeBySize {
		panic("percolation: WithMergePolicy(unknown)")
	}
	return func(c *config) {
		c.policy = p
	}
}

// WithWorkers caps the number of trials MonteCarloParallel runs at once.
// Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic("percolation: WithWorkers(n<1)")
	}
	return func(c *config) {
		c.workers = n
	}
}

// WithLogger sets the logger used for run-level debug records. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("percolation: WithLogger(nil)")
	}
	return func(c *config) {
		c.logger = l
	}
}

// newConfig applies opts over the defaults: seed 0, open boundary,
// merge by index, GOMAXPROCS workers and a discarding logger.
func newConfig(opts ...Option) config {
	cfg := config{
		boundary: gridgraph.Open,
		policy:   unionfind.MergeByIndex,
		workers:  runtime.GOMAXPROCS(0),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rngFromSeed(cfg.seed)
	}
	if cfg.logger == nil {
		cfg.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return cfg
}

// Summary describes a sample of percolation fractions.
// StdDev is the population standard deviation.
type Summary struct {
	N      int
	Mean   float64
	StdDev float64
	Min    float64
	Max    float64
}

// Point is one entry of a percolation curve: the activation probability and
// the summary of the trials run at it.
type Point struct {
	P float64
	Summary
}

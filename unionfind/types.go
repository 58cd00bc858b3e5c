package unionfind

import (
	"math"

	"github.com/cockroachdb/errors"
)

// MaxCount is the largest number of elements a Store can hold.
// Links are stored as int32, so every index must fit in 31 bits.
const MaxCount = math.MaxInt32

// Sentinel errors for Store construction.
var (
	// ErrNegativeCount indicates New was called with a negative element count.
	ErrNegativeCount = errors.New("unionfind: element count must be non-negative")
	// ErrTooLarge indicates the element count exceeds MaxCount.
	ErrTooLarge = errors.New("unionfind: element count exceeds index width")
)

// MergePolicy selects which root survives a Union.
type MergePolicy int

const (
	// MergeByIndex keeps the root with the numerically smaller index.
	MergeByIndex MergePolicy = iota
	// MergeBySize keeps the root of the larger component; ties keep the smaller index.
	MergeBySize
)

// String returns a short name for the policy.
func (p MergePolicy) String() string {
	switch p {
	case MergeByIndex:
		return "by-index"
	case MergeBySize:
		return "by-size"
	default:
		return "unknown"
	}
}

// Option configures a Store at construction time.
type Option func(*config)

type config struct {
	policy MergePolicy
}

// WithMergePolicy selects the root-selection rule used by Union.
// Panics on an unknown policy value.
func WithMergePolicy(p MergePolicy) Option {
	if p != MergeByIndex && p != MergeBySize {
		panic("unionfind: WithMergePolicy(unknown)")
	}
	return func(c *config) {
		c.policy = p
	}
}

func newConfig(opts ...Option) config {
	cfg := config{policy: MergeByIndex}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

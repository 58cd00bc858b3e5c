// Package gridgraph defines core types and sentinel errors
// for the lattice geometry used by the percolation sampler.
package gridgraph

import (
	"github.com/cockroachdb/errors"
)

// Sentinel errors for gridgraph operations.
var (
	// ErrEmptyLattice indicates a lattice side smaller than one site.
	ErrEmptyLattice = errors.New("gridgraph: lattice side must be at least 1")
	// ErrLatticeTooLarge indicates L² exceeds the union-find index width.
	ErrLatticeTooLarge = errors.New("gridgraph: lattice has too many sites")
)

// Boundary selects which bonds a sweep enumerates at the lattice edge.
type Boundary int

const (
	// Open enumerates only bonds between sites inside the L×L square.
	Open Boundary = iota
	// Periodic additionally enumerates the wraparound bonds of the torus.
	Periodic
)

// String returns a short name for the boundary.
func (b Boundary) String() string {
	switch b {
	case Open:
		return "open"
	case Periodic:
		return "periodic"
	default:
		return "unknown"
	}
}

// Lattice is an immutable L×L square lattice.
// Side is the edge length L; Boundary selects the bond set.
type Lattice struct {
	Side     int
	Boundary Boundary
}

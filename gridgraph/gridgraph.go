// Package gridgraph provides the square-lattice geometry used by bond
// percolation. It supports:
//
//   - Wrapped coordinate ↔ index mapping
//   - Open or periodic bond enumeration in a fixed sweep order
//   - Identification of clusters induced by a set of open bonds
package gridgraph

import (
	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/percolation/unionfind"
)

// NewLattice constructs an L×L lattice with the given boundary.
// Returns ErrEmptyLattice if side < 1 and ErrLatticeTooLarge if side² exceeds
// unionfind.MaxCount.
// Complexity: O(1).
func NewLattice(side int, boundary Boundary) (*Lattice, error) {
	if side < 1 {
		return nil, errors.Wrapf(ErrEmptyLattice, "NewLattice(side=%d)", side)
	}
	if side > unionfind.MaxCount/side {
		return nil, errors.Wrapf(ErrLatticeTooLarge, "NewLattice(side=%d)", side)
	}
	if boundary != Open && boundary != Periodic {
		return nil, errors.Newf("gridgraph: unknown boundary %d", boundary)
	}

	return &Lattice{Side: side, Boundary: boundary}, nil
}

// Sites returns the number of lattice sites, L².
func (l *Lattice) Sites() int {
	return l.Side * l.Side
}

// InBounds reports whether (x,y) lies within [0,L)×[0,L) without wrapping.
// Complexity: O(1).
func (l *Lattice) InBounds(x, y int) bool {
	return x >= 0 && x < l.Side && y >= 0 && y < l.Side
}

// wrap folds v into [0, L) using mathematical modulo, so negative values
// count back from the far edge.
func (l *Lattice) wrap(v int) int {
	return (v%l.Side + l.Side) % l.Side
}

// Index maps (x,y) to the row-major index x + y·L after wrapping both
// coordinates into [0, L).
// Complexity: O(1).
func (l *Lattice) Index(x, y int) int {
	return l.wrap(x) + l.wrap(y)*l.Side
}

// Coordinate converts a row-major index back to (x,y).
// Complexity: O(1).
func (l *Lattice) Coordinate(idx int) (x, y int) {
	return idx % l.Side, idx / l.Side
}

// Bonds calls fn(u, v) once for every candidate bond of a sweep, in sweep
// order:
//
//  1. for x, y in [0, L-1): the bond to (x+1, y), then the bond to (x, y+1);
//  2. for k in [0, L-1): (L-1, k)–(L-1, k+1), then (k, L-1)–(k+1, L-1);
//  3. Periodic only, for k in [0, L): (L-1, k)–(0, k), then (k, L-1)–(k, 0).
//
// A 1×1 lattice has no bonds under either boundary.
// Complexity: O(L²).
func (l *Lattice) Bonds(fn func(u, v int)) {
	last := l.Side - 1
	for x := 0; x < last; x++ {
		for y := 0; y < last; y++ {
			u := l.Index(x, y)
			fn(u, l.Index(x+1, y))
			fn(u, l.Index(x, y+1))
		}
	}
	for k := 0; k < last; k++ {
		fn(l.Index(last, k), l.Index(last, k+1))
		fn(l.Index(k, last), l.Index(k+1, last))
	}
	if l.Boundary != Periodic || l.Side < 2 {
		return
	}
	for k := 0; k < l.Side; k++ {
		fn(l.Index(last, k), l.Index(last+1, k))
		fn(l.Index(k, last), l.Index(k, last+1))
	}
}

// BondCount returns how many times Bonds invokes its callback.
// Complexity: O(1).
func (l *Lattice) BondCount() int {
	n := 2 * l.Side * (l.Side - 1)
	if l.Boundary == Periodic && l.Side >= 2 {
		n += 2 * l.Side
	}
	return n
}

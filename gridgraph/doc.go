// Package gridgraph describes the geometry of an L×L square lattice used for
// bond percolation: site indexing, coordinate wraparound and the order in
// which candidate bonds are enumerated during a sweep.
//
// What:
//
//   - Lattice maps a site (x, y) to the linear index x + y·L after wrapping
//     both coordinates into [0, L) with mathematical modulo, so (-1, 0) is
//     the same site as (L-1, 0).
//   - Bonds enumerates every candidate bond exactly once per sweep, in a
//     fixed order that stochastic samplers rely on for reproducibility.
//   - Components finds the connected clusters induced by a set of open bonds
//     using plain BFS; it is an independent oracle for union-find results.
//
// Boundary:
//
//   - Open: the sweep covers the right and down bonds of every interior site,
//     then the vertical bonds of the last column and the horizontal bonds of
//     the last row. No bond crosses the lattice edge. 2·L·(L-1) bonds.
//   - Periodic: the Open sequence followed by the 2·L wraparound bonds
//     (L-1, y)–(0, y) and (x, L-1)–(x, 0), closing the torus.
//
// Complexity:
//
//   - Index, Coordinate: O(1).
//   - Bonds:             O(L²).
//   - Components:        O(L²) time and memory.
//
// Errors:
//
//   - ErrEmptyLattice:    side < 1.
//   - ErrLatticeTooLarge: L² sites do not fit a union-find index.
package gridgraph

// Package percolation is the root of a small toolkit for estimating bond
// percolation probabilities on square lattices by Monte Carlo sampling.
//
// Under the hood, everything is organized under three subpackages:
//
//	unionfind/   — flat disjoint-set forest: path compression, size-tracking unions
//	gridgraph/   — lattice geometry: wrapped indexing, sweep-ordered bonds, BFS clusters
//	percolation/ — Sampler, sequential and parallel Monte Carlo, summaries, p-curves
//
// and one command:
//
//	cmd/percolation — run / sweep / bench from the command line
//
// Quick ASCII example (3×3, open boundary, p=1):
//
//	o───o───o
//	│   │   │
//	o───o───o      every bond open ⇒ one cluster of 9 sites
//	│   │   │      percolation fraction = 9/9 = 1
//	o───o───o
//
//	go get github.com/katalvlaran/percolation
package percolation

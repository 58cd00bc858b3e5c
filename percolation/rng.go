// Package percolation - RNG utilities shared by sequential and parallel trials.
//
// Goals:
//   - Determinism: same seed ⇒ identical fractions across runs and platforms.
//   - Independence: every parallel trial draws from its own stream, derived
//     from the sampler's stream and the trial number, so the worker count and
//     scheduling order never change a trial's outcome.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Streams are derived up front and
//     each one is owned by exactly one trial.
package percolation

import "math/rand"

// defaultRNGSeed is the fixed seed used when callers pass seed==0.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ use defaultRNGSeed; otherwise use the provided seed verbatim.
//
// Complexity: O(1).
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultRNGSeed
	}
	return rand.New(rand.NewSource(seed))
}

// deriveSeed mixes a parent seed and a stream identifier into a new 64-bit
// seed with a SplitMix64 finalizer, so neighbouring stream ids produce
// unrelated seeds.
//
// Complexity: O(1).
func deriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}

// streamRNG returns the stream with the given id under parent.
func streamRNG(parent int64, stream uint64) *rand.Rand {
	return rand.New(rand.NewSource(deriveSeed(parent, stream)))
}

// deriveRNG creates an independent stream from base and a stream id.
// base.Int63() is consumed once, so deriving the same id twice still yields
// different streams. A nil base uses defaultRNGSeed as the parent.
//
// Complexity: O(1).
func deriveRNG(base *rand.Rand, stream uint64) *rand.Rand {
	parent := defaultRNGSeed
	if base != nil {
		parent = base.Int63()
	}
	return streamRNG(parent, stream)
}

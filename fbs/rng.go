// SPDX-License-Identifier: MIT

// Package fbs - RNG utilities for stepsize probing.
//
// This file centralizes deterministic random generation for the solver.
//
// Goals:
//   - Determinism: same seed ⇒ identical results across platforms.
//   - Encapsulation: a single source factory; no time-based sources hidden anywhere.
//   - Independence: derived streams (one per variant) stay uncorrelated.
//
// Concurrency:
//   - rand.Source is NOT goroutine-safe. Each RunVariants worker receives
//     its own derived source via deriveSeed.
package fbs

import (
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

// defaultRNGSeed is the fixed “zero” seed used when callers pass seed==0.
// The value is arbitrary but stable to keep reproducible defaults.
const defaultRNGSeed uint64 = 1

// rngSource returns a deterministic random source.
// Policy: seed==0 ⇒ use defaultRNGSeed; otherwise use the provided seed verbatim.
//
// Complexity: O(1).
func rngSource(seed uint64) rand.Source {
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}

	return rand.NewSource(s)
}

// deriveSeed mixes a parent seed and a stream identifier into a new 64-bit seed.
//
// Rationale:
//   - RunVariants needs independent substreams from one base seed without
//     sharing a source across goroutines.
//   - A SplitMix64-style avalanche mix eliminates correlations between
//     neighboring stream ids.
//
// Notes:
//   - Constants are the canonical SplitMix64 multipliers/finalizer; see
//     Vigna 2014 for the constants and rationale.
//
// Complexity: O(1).
func deriveSeed(parent, stream uint64) uint64 {
	x := parent ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	if x == 0 {
		x = defaultRNGSeed
	}

	return x
}

// normalDense returns an r×c matrix of independent N(0,1) draws from src.
// Intended for the two Lipschitz probe points; not a hot path.
//
// Complexity: O(r·c).
func normalDense(r, c int, src rand.Source) *mat.Dense {
	normal := distuv.Normal{Mu: 0, Sigma: 1, Src: src}
	data := make([]float64, r*c)
	for i := range data {
		data[i] = normal.Rand()
	}

	return mat.NewDense(r, c, data)
}

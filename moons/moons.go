// SPDX-License-Identifier: MIT

package moons

import (
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

// defaultRNGSeed is the fixed “zero” seed used when callers pass seed==0.
const defaultRNGSeed uint64 = 1

// Dataset is a sampled two-moons instance.
type Dataset struct {
	// Points holds one observation per row (Count×Dim).
	Points *mat.Dense

	// Truth records the generating moon of each point: +1 for the first
	// (shifted) moon, −1 for the second. Use it to score a clustering,
	// remembering that cluster signs are arbitrary up to a global flip.
	Truth []int
}

// Generate samples a two-moons dataset.
//
// Steps:
//  1. Place Count points on the unit circle: θᵢ = i/Count·2π, with cos θ
//     in coordinate 0 and sin θ in coordinate 1; coordinates past the
//     second start at zero.
//  2. Shift the first ⌊Count/2⌋ points (the top moon) by −(ShiftX, ShiftY)
//     in the first two coordinates.
//  3. Add N(0, Noise²) jitter to every coordinate.
//  4. Record the generating moon of each point in Truth.
//
// Complexity: O(Count·Dim) time and space.
func Generate(opts ...Option) (*Dataset, error) {
	o := DefaultOptions()
	for _, set := range opts {
		set(&o)
	}
	if err := o.validate(); err != nil {
		return nil, err
	}

	n, d := o.Count, o.Dim
	points := mat.NewDense(n, d, nil)

	// 1) Points on a circle, embedded in d dimensions.
	for i := 0; i < n; i++ {
		theta := float64(i) / float64(n) * 2 * math.Pi
		points.Set(i, 0, math.Cos(theta))
		points.Set(i, 1, math.Sin(theta))
	}

	// 2) Separate out the top moon.
	half := n / 2
	for i := 0; i < half; i++ {
		points.Set(i, 0, points.At(i, 0)-o.ShiftX)
		points.Set(i, 1, points.At(i, 1)-o.ShiftY)
	}

	// 3) Gaussian jitter on every coordinate.
	if o.Noise > 0 {
		seed := o.Seed
		if seed == 0 {
			seed = defaultRNGSeed
		}
		normal := distuv.Normal{Mu: 0, Sigma: 1, Src: rand.NewSource(seed)}
		for i := 0; i < n; i++ {
			row := points.RawRowView(i)
			for j := range row {
				row[j] += o.Noise * normal.Rand()
			}
		}
	}

	// 4) Ground truth by generating moon.
	truth := make([]int, n)
	for i := range truth {
		if i < half {
			truth[i] = 1
		} else {
			truth[i] = -1
		}
	}

	return &Dataset{Points: points, Truth: truth}, nil
}

// isNonFinite reports whether v is NaN or ±Inf.
func isNonFinite(v float64) bool {
	return math.IsNaN(v) || math.IsInf(v, 0)
}

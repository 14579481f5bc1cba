// SPDX-License-Identifier: MIT

package maxnorm

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Similarity builds the weighted adjacency matrix
//
//	S_ij = δ − exp(−‖p_i − p_j‖² / (2σ²))
//
// over all pairs of rows of points. Diagonal entries carry distance zero
// and therefore equal δ−1. The result is symmetric, so it is returned as
// a *mat.SymDense; the caller owns it.
//
// Steps:
//  1. Validate: non-nil points, n ≥ 2, σ > 0, finite δ.
//  2. For every pair i ≤ j compute the squared Euclidean distance.
//  3. Map it through the kernel and store both triangles at once.
func Similarity(points mat.Matrix, sigma, delta float64) (*mat.SymDense, error) {
	// 1) Validation.
	if points == nil {
		return nil, ErrNilPoints
	}
	n, _ := points.Dims()
	if n < 2 {
		return nil, ErrFewPoints
	}
	if isNonFinite(sigma) || sigma <= 0 {
		return nil, ErrBadSigma
	}
	if isNonFinite(delta) {
		return nil, ErrBadDelta
	}

	pts := asDense(points)
	s := mat.NewSymDense(n, nil)
	inv := 1 / (2 * sigma * sigma)

	// 2-3) Kernelized pairwise distances, upper triangle plus diagonal.
	for i := 0; i < n; i++ {
		s.SetSym(i, i, delta-1)
		ri := pts.RawRowView(i)
		for j := i + 1; j < n; j++ {
			d := floats.Distance(ri, pts.RawRowView(j), 2)
			s.SetSym(i, j, delta-math.Exp(-d*d*inv))
		}
	}
	return s, nil
}

// asDense reuses the backing of an existing *mat.Dense and copies
// anything else, so RawRowView is always available.
func asDense(m mat.Matrix) *mat.Dense {
	if d, ok := m.(*mat.Dense); ok {
		return d
	}
	return mat.DenseCopyOf(m)
}

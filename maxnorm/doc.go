// SPDX-License-Identifier: MIT

// Package maxnorm implements the max-norm relaxation of max-cut for
// binary clustering:
//
//	minimize  ⟨S, XXᵀ⟩   subject to   ‖X‖_{2,∞} ≤ μ
//
// over low-rank factors X ∈ ℝ^{n×k}. The NP-complete max-cut problem can
// be relaxed into this form; the inequality constrains the largest
// Euclidean norm of any row of X.
//
// # Construction
//
// S is a similarity-weighted adjacency matrix built from pairwise
// distances between the n observations:
//
//	S = δ − exp(−d² / (2σ²))
//
// where σ controls the width of the similarity kernel and δ balances the
// segmentation (a small positive δ penalizes putting everything in one
// cluster). Nearby points get strongly negative entries, so the minimizer
// aligns their rows; distant points get the positive δ, pushing their
// rows apart.
//
// # Solving
//
// The objective is smooth with gradient (S+Sᵀ)X = 2SX, and the constraint
// enters through its projection: each row is shrunk onto the ball of
// radius μ. Both plug directly into the fbs solver as F/GradF and ProxG;
// the non-smooth term itself is identically zero. Because every solver
// solution is a proximal output, the row-norm constraint holds at the
// returned factor exactly.
//
// # Clustering
//
// A binary segmentation is read off the factor by random projection:
// labels = sign(X·w) for a Gaussian w ∈ ℝ^k. Aligned rows land on the
// same side of the hyperplane, so the two moons separate into the two
// signs.
//
// Typical round trip:
//
//	ds, _ := moons.Generate()
//	p, _ := maxnorm.New(ds.Points)
//	x0 := maxnorm.InitialGuess(ds.Points.RawMatrix().Rows, p.Rank(), 0)
//	sol, conv, err := p.Solve(ctx, x0, nil)
//	labels := maxnorm.Labels(sol, 0)
//
// # Errors
//
//	ErrNilPoints / ErrFewPoints — missing or degenerate observations.
//	ErrBadMu, ErrBadSigma, ErrBadDelta, ErrBadRank — invalid parameters.
//	ErrBadGuess — initial factor shape does not match the observations.
//
// See: examples/maxnorm for the end-to-end two-moons demo.
package maxnorm

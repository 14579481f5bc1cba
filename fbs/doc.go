// SPDX-License-Identifier: MIT

// Package fbs implements forward-backward splitting (FBS) for composite
// problems of the form
//
//	minimize  F(x) = f(Ax) + g(x)
//
// where f is smooth and convex (value and gradient supplied), g is convex
// but possibly non-smooth (value and proximal operator supplied), and A is
// an optional linear operator. Iterates are dense matrices, so vector
// problems (n×1) and factorization problems (n×k) run through the same
// solver unchanged.
//
// The solver performs, per iteration,
//
//	x̂   = x − τ·Aᵀ∇f(Ax)        (forward / gradient step)
//	x⁺  = prox_{τg}(x̂)           (backward / proximal step)
//
// where prox_{τg}(v) = argmin_u τ·g(u) + ½‖u−v‖². Three execution modes
// are provided, selectable per run:
//
//   - Adaptive (default) — spectral (Barzilai–Borwein) stepsize selection
//     with a non-monotone backtracking line search. Usually the fastest
//     in practice.
//   - Accelerated — FISTA-style momentum with optional restart whenever
//     the momentum points uphill.
//   - Plain — fixed stepsize, shrunk only by backtracking.
//
// # Stopping
//
// Each iteration records the residual ‖x⁺−x‖/τ and its normalized form
// (scaled by the larger of the gradient norm and the implicit subgradient
// norm). Three stop rules are available: StopHybrid (default) halts when
// either the residual has shrunk below Tolerance relative to the largest
// residual seen, or the normalized residual falls below Tolerance;
// StopRatioResidual and StopNormalizedResidual apply each test alone.
//
// # Determinism
//
// All randomness (the Lipschitz probe points used to auto-tune the initial
// stepsize) is seeded: Seed==0 selects a fixed default stream, so repeated
// runs with identical inputs produce identical trajectories.
//
// # API
//
// A Problem bundles the callbacks:
//
//	p := fbs.Problem{
//	    F:     func(z *mat.Dense) float64 { ... },      // f(z), z = Ax
//	    GradF: func(z *mat.Dense) *mat.Dense { ... },   // ∇f(z)
//	    G:     func(x *mat.Dense) float64 { ... },      // optional; nil ⇒ g ≡ 0
//	    ProxG: func(x *mat.Dense, tau float64) *mat.Dense { ... }, // optional
//	    A:     linop.FromMatrix(a),                     // optional; nil ⇒ identity
//	}
//
//	res, err := fbs.Solve(ctx, p, x0, fbs.DefaultOptions())
//
// Solve never mutates x0. The returned Result carries the final iterate
// (always a proximal output, never an extrapolated point) together with
// the full per-iteration Convergence history.
//
// RunVariants runs the adaptive, accelerated and plain modes concurrently
// on independent copies of x0 and returns their results in that fixed
// order, for convergence comparisons.
//
// # Errors
//
//	ErrNilObjective / ErrNilGradient — Problem is missing f or ∇f.
//	ErrNilIterate                    — x0 is nil or empty.
//	ErrBadMaxIters, ErrBadTolerance, ErrBadWindow, ErrBadShrink,
//	ErrBadBacktracks, ErrBadStepsize  — invalid Options fields.
//	context.Canceled / context.DeadlineExceeded — ctx canceled mid-run;
//	the partial Result is still returned.
//
// See: examples/ for end-to-end demos (max-norm clustering, sparse
// least squares).
package fbs

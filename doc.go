// Package fasta is a forward-backward splitting toolkit: a FASTA-style
// solver for composite problems min f(Ax) + g(x), plus worked examples
// built on top of it.
//
// 🚀 What is fasta?
//
//	A small, deterministic optimization library that brings together:
//		• Solver core: forward-backward splitting with spectral (adaptive)
//		  step sizes, FISTA-style acceleration, and non-monotone line search
//		• Linear operators: identity, dense-matrix and closure-backed A/Aᵀ
//		• Datasets: the two-moons synthetic segmentation set
//		• Worked problems: the max-norm (max-cut) clustering relaxation and
//		  sparse least squares (LASSO)
//		• Plots: convergence comparison and cluster scatter charts
//
// ✨ Why choose fasta?
//
//   - Bring-your-own problem – supply f, ∇f and prox g; the solver does the rest
//   - Reproducible – fixed-seed randomness everywhere; no time-based sources
//   - gonum underneath – iterates are *mat.Dense, vectors and matrices alike
//   - Three solver variants – adaptive, accelerated, plain – with a
//     side-by-side comparison harness
//
// Everything is organized under focused subpackages:
//
//	fbs/     — the solver: Problem, Options, Solve, RunVariants
//	linop/   — linear operator abstractions used by fbs
//	moons/   — two-moons dataset generation
//	maxnorm/ — max-norm relaxation of max-cut over a similarity graph
//	lasso/   — ℓ¹-regularized least squares
//	plots/   — convergence and cluster plots (gonum/plot)
//	cmd/     — the fasta CLI driving the examples end to end
//
// Quick sketch of the max-norm pipeline:
//
//	points ──► similarity S ──► min ⟨S, XXᵀ⟩ s.t. ‖X‖₂,∞ ≤ μ ──► sign(X·w)
//
//	two moons       graph            FBS solver                 two clusters
//
// Dive into examples/ for runnable end-to-end demos.
//
//	go get github.com/katalvlaran/fasta
package fasta

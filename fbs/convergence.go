// SPDX-License-Identifier: MIT

package fbs

import (
	"time"

	"gonum.org/v1/gonum/mat"
)

// Convergence records the per-iteration history of one Solve run.
// All slices have length Iterations.
type Convergence struct {
	// Residuals[i] is ‖x⁺−x‖/τ at iteration i.
	Residuals []float64

	// NormResiduals[i] is the scale-invariant residual at iteration i:
	// Residuals[i] divided by max(‖∇f̂(x)‖, ‖x⁺−x̂‖/τ) + ε.
	NormResiduals []float64

	// Stepsizes[i] is the τ actually used at iteration i (after backtracking).
	Stepsizes []float64

	// Objectives[i] is f(Ax⁺)+g(x⁺) at iteration i.
	// Populated only when Options.RecordObjective is set.
	Objectives []float64

	// Iterations is the number of iterations performed.
	Iterations int

	// TotalBacktracks counts line-search shrinks across the whole run.
	TotalBacktracks int

	// Runtime is the wall-clock duration of the run.
	Runtime time.Duration

	// BestObjective is the smallest recorded objective value.
	// Valid only when Options.RecordObjective is set.
	BestObjective float64

	// BestIterate is the iterate achieving BestObjective.
	// Valid only when Options.RecordObjective is set.
	BestIterate *mat.Dense
}

// Result is the outcome of one Solve run.
type Result struct {
	// Solution is the final iterate. It is always a proximal output, so
	// any constraint enforced by ProxG holds at the solution exactly;
	// in accelerated mode it is never the extrapolated point.
	Solution *mat.Dense

	Convergence
}

// VariantRun pairs a solver variant with its Result, as produced by
// RunVariants.
type VariantRun struct {
	Variant Variant
	Result  *Result
}

// SPDX-License-Identifier: MIT

package fbs

import (
	"context"
	"fmt"
	"math"
	"time"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/fasta/linop"
)

const (
	// backtrackEpsilon absorbs floating-point noise in the line-search test.
	backtrackEpsilon = 1e-12

	// residualEpsilon guards denominators in the residual computations.
	residualEpsilon = 1e-8

	// minLipschitz floors the probed Lipschitz estimate so the initial
	// stepsize stays finite even for flat objectives.
	minLipschitz = 1e-6
)

// Solve minimizes f(Ax) + g(x) by forward-backward splitting, starting
// from x0. The initial iterate is never mutated; the solver works on a
// copy.
//
// It returns:
//   - res : the final iterate (always a proximal output) plus the full
//     per-iteration Convergence history
//   - err : a validation sentinel, or the ctx error on cancellation
//     (the partial res is still returned in that case)
//
// Steps:
//  1. Validate the problem callbacks, the options and the iterate.
//  2. Choose the initial stepsize: Tau0 if set; else 1/L if L is known;
//     else probe two random points shaped like x0 to estimate the
//     Lipschitz constant of ∇f̂ = Aᵀ∇f(A·) and take τ₀ = 2/(10·L).
//  3. Evaluate f and ∇f̂ at the start point; seed the line-search window
//     with f(Ax₀).
//  4. Iterate until convergence or MaxIters:
//     a. Check ctx for cancellation.
//     b. Forward step x̂ = x − τ∇f̂(x), backward step x⁺ = prox_{τg}(x̂).
//     c. Backtrack: with M the largest of the last Window smooth values,
//     shrink τ and redo (b) while f(Ax⁺) > M + ⟨Δx,∇f̂(x)⟩ + ‖Δx‖²/(2τ),
//     at most MaxBacktracks times.
//     d. Record stepsize, residual ‖Δx‖/τ and its normalized form.
//     e. Stop if the StopRule test passes.
//     f. Prepare the next iterate: FISTA extrapolation (accelerated,
//     rebasing the line-search window on the extrapolated point),
//     spectral stepsize update (adaptive), or plain hand-off.
//
// Complexity per iteration: one gradient, one prox, one forward/adjoint
// operator pair, plus one objective evaluation per backtracking step.
func Solve(ctx context.Context, p Problem, x0 *mat.Dense, opts Options) (*Result, error) {
	// 1) Validation.
	if err := p.validate(); err != nil {
		return nil, err
	}
	if err := opts.validate(); err != nil {
		return nil, err
	}
	if x0 == nil || x0.IsEmpty() {
		return nil, ErrNilIterate
	}

	// Acceleration and adaptive stepsizes are mutually exclusive;
	// acceleration wins when both are requested.
	if opts.Accelerate {
		opts.Adaptive = false
	}

	op := p.op()
	rows, cols := x0.Dims()
	start := time.Now()

	// 2) Initial stepsize.
	tau := opts.Tau0
	if tau <= 0 {
		if opts.L > 0 {
			tau = 1 / opts.L
		} else {
			tau = probeStepsize(&p, op, rows, cols, opts.Seed)
		}
	}

	// 3) Start point: x, ∇f̂(x), and the line-search reference window.
	x := mat.DenseCopyOf(x0)
	z0 := op.Apply(x)
	grad := op.Adjoint(p.GradF(z0))

	recentF := make([]float64, 1, opts.Window+1)
	recentF[0] = p.F(z0)

	// Histories.
	residuals := make([]float64, 0, opts.MaxIters)
	normResiduals := make([]float64, 0, opts.MaxIters)
	stepsizes := make([]float64, 0, opts.MaxIters)
	var objectives []float64
	if opts.RecordObjective {
		objectives = make([]float64, 0, opts.MaxIters)
	}

	// Acceleration state: the last proximal pair and the momentum weight.
	alpha := 1.0
	var xAccel, zAccel *mat.Dense
	if opts.Accelerate {
		xAccel = mat.DenseCopyOf(x)
		zAccel = mat.DenseCopyOf(z0)
	}

	solution := x
	maxResidual := math.Inf(-1)
	bestObjective := math.Inf(1)
	var bestIterate *mat.Dense
	totalBacktracks := 0
	var runErr error

	// 4) Main loop.
	for i := 0; i < opts.MaxIters; i++ {
		// 4a) Cancellation check once per iteration.
		if err := ctx.Err(); err != nil {
			runErr = err
			break
		}

		// 4b) Forward-backward step.
		xhat := addScaled(x, -tau, grad)
		x1 := p.prox(xhat, tau)
		z1 := op.Apply(x1)
		f1 := p.F(z1)
		dx := subNew(x1, x)

		// 4c) Non-monotone backtracking line search.
		backtracks := 0
		if opts.Backtrack {
			m := floats.Max(recentF)
			for f1-(m+frobInner(dx, grad)+frobSq(dx)/(2*tau)) > backtrackEpsilon &&
				backtracks < opts.MaxBacktracks {
				tau *= opts.StepsizeShrink

				xhat = addScaled(x, -tau, grad)
				x1 = p.prox(xhat, tau)
				z1 = op.Apply(x1)
				f1 = p.F(z1)
				dx.Sub(x1, x)

				backtracks++
			}
			totalBacktracks += backtracks
		}

		// 4d) Record this iteration.
		stepsizes = append(stepsizes, tau)

		residual := mat.Norm(dx, 2) / tau
		residuals = append(residuals, residual)
		if residual > maxResidual {
			maxResidual = residual
		}

		// ‖x⁺−x̂‖/τ approximates the subgradient norm of g at x⁺.
		normalizer := math.Max(mat.Norm(grad, 2), mat.Norm(subNew(x1, xhat), 2)/tau) + residualEpsilon
		normResidual := residual / normalizer
		normResiduals = append(normResiduals, normResidual)

		if opts.RecordObjective {
			obj := f1 + p.g(x1)
			objectives = append(objectives, obj)
			if obj < bestObjective {
				bestObjective = obj
				bestIterate = mat.DenseCopyOf(x1)
			}
		}

		recentF = append(recentF, f1)
		if len(recentF) > opts.Window {
			recentF = recentF[len(recentF)-opts.Window:]
		}

		solution = x1

		if opts.Verbose {
			fmt.Printf("fbs: iteration %d: stepsize %.4g, residual %.4g, normalized %.4g, backtracks %d\n",
				i, tau, residual, normResidual, backtracks)
		}

		// 4e) Convergence test.
		if converged(opts.StopRule, residual, normResidual, maxResidual, opts.Tolerance) {
			break
		}

		// 4f) Prepare the next iterate.
		switch {
		case opts.Accelerate:
			// FISTA momentum: extrapolate along the last proximal step.
			alpha1 := (1 + math.Sqrt(1+4*alpha*alpha)) / 2
			momentum := subNew(x1, xAccel)
			if opts.Restart && frobInner(dx, momentum) < 0 {
				// The momentum opposes the step just taken; reset it.
				alpha1 = 1
			}
			s := (alpha - 1) / alpha1

			x = addScaled(x1, s, momentum)
			// Az at the extrapolated point follows by linearity; no
			// extra operator application is needed.
			zext := addScaled(z1, s, subNew(z1, zAccel))

			xAccel, zAccel = x1, z1
			alpha = alpha1
			grad = op.Adjoint(p.GradF(zext))
			// The next step descends from the extrapolated point; the
			// line-search window must reference f there, not at z1.
			// Otherwise an overshoot that lifts f above every windowed
			// value leaves the backtracking test unsatisfiable at any τ.
			recentF[len(recentF)-1] = p.F(zext)

		case opts.Adaptive:
			// Spectral (Barzilai–Borwein) stepsize from the gradient change.
			grad1 := op.Adjoint(p.GradF(z1))
			dg := subNew(grad1, grad)

			dot := frobInner(dx, dg)
			tauS := frobSq(dx) / dot            // steepest descent
			tauM := math.Max(dot/frobSq(dg), 0) // minimum residual

			var tau1 float64
			if 2*tauM > tauS {
				tau1 = tauM
			} else {
				tau1 = tauS - 0.5*tauM
			}
			if tau1 <= 0 || isNonFinite(tau1) {
				// Degenerate curvature estimate; grow the stepsize and
				// let backtracking correct it.
				tau1 = 1.5 * tau
			}

			tau = tau1
			x = x1
			grad = grad1

		default:
			// Plain mode: τ changes only through backtracking.
			x = x1
			grad = op.Adjoint(p.GradF(z1))
		}
	}

	res := &Result{
		Solution: solution,
		Convergence: Convergence{
			Residuals:       residuals,
			NormResiduals:   normResiduals,
			Stepsizes:       stepsizes,
			Objectives:      objectives,
			Iterations:      len(residuals),
			TotalBacktracks: totalBacktracks,
			Runtime:         time.Since(start),
			BestObjective:   bestObjective,
			BestIterate:     bestIterate,
		},
	}

	return res, runErr
}

// probeStepsize estimates the Lipschitz constant of ∇f̂ from two random
// points shaped like the iterate and returns the conservative initial
// stepsize τ₀ = 2/(10·L).
func probeStepsize(p *Problem, op linop.Operator, rows, cols int, seed uint64) float64 {
	src := rngSource(seed)
	p1 := normalDense(rows, cols, src)
	p2 := normalDense(rows, cols, src)

	g1 := op.Adjoint(p.GradF(op.Apply(p1)))
	g2 := op.Adjoint(p.GradF(op.Apply(p2)))

	l := mat.Norm(subNew(g1, g2), 2) / mat.Norm(subNew(p1, p2), 2)
	if isNonFinite(l) || l < minLipschitz {
		l = minLipschitz
	}

	return 2 / l / 10
}

// converged applies the configured stop rule to the current residuals.
func converged(rule StopRule, residual, normResidual, maxResidual, tol float64) bool {
	ratio := residual/(maxResidual+residualEpsilon) < tol
	normed := normResidual < tol

	switch rule {
	case StopRatioResidual:
		return ratio
	case StopNormalizedResidual:
		return normed
	default:
		return ratio || normed
	}
}

// addScaled returns base + s·dir as a fresh matrix.
func addScaled(base *mat.Dense, s float64, dir *mat.Dense) *mat.Dense {
	var out mat.Dense
	out.Scale(s, dir)
	out.Add(base, &out)

	return &out
}

// subNew returns a − b as a fresh matrix.
func subNew(a, b *mat.Dense) *mat.Dense {
	var out mat.Dense
	out.Sub(a, b)

	return &out
}

// frobInner returns the Frobenius inner product ⟨a, b⟩ = Σᵢⱼ aᵢⱼ·bᵢⱼ.
func frobInner(a, b *mat.Dense) float64 {
	r, _ := a.Dims()
	var sum float64
	for i := 0; i < r; i++ {
		sum += floats.Dot(a.RawRowView(i), b.RawRowView(i))
	}

	return sum
}

// frobSq returns the squared Frobenius norm ‖a‖².
func frobSq(a *mat.Dense) float64 {
	n := mat.Norm(a, 2)

	return n * n
}

// isNonFinite reports whether v is NaN or ±Inf.
func isNonFinite(v float64) bool {
	return math.IsNaN(v) || math.IsInf(v, 0)
}

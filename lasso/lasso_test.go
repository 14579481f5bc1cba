// SPDX-License-Identifier: MIT

package lasso_test

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/fasta/fbs"
	"github.com/katalvlaran/fasta/lasso"
)

// TestNew_Validation walks the constructor sentinels.
func TestNew_Validation(t *testing.T) {
	a := mat.NewDense(2, 2, []float64{1, 0, 0, 1})
	b := mat.NewVecDense(2, []float64{3, 0.5})

	_, err := lasso.New(nil, b, 1)
	require.ErrorIs(t, err, lasso.ErrNilMatrix)

	_, err = lasso.New(&mat.Dense{}, b, 1)
	require.ErrorIs(t, err, lasso.ErrNilMatrix)

	_, err = lasso.New(a, nil, 1)
	require.ErrorIs(t, err, lasso.ErrNilObservations)

	_, err = lasso.New(a, mat.NewVecDense(3, nil), 1)
	require.ErrorIs(t, err, lasso.ErrDimMismatch)

	_, err = lasso.New(a, b, 0)
	require.ErrorIs(t, err, lasso.ErrBadMu)

	_, err = lasso.New(a, b, math.NaN())
	require.ErrorIs(t, err, lasso.ErrBadMu)
}

// TestProblem_ClosedFormPieces pins every callback on an identity design,
// where all values are computable by hand.
func TestProblem_ClosedFormPieces(t *testing.T) {
	a := mat.NewDense(2, 2, []float64{1, 0, 0, 1})
	b := mat.NewVecDense(2, []float64{3, 0.5})
	p, err := lasso.New(a, b, 1)
	require.NoError(t, err)

	zero := mat.NewDense(2, 1, nil)
	atB := mat.NewDense(2, 1, []float64{3, 0.5})

	// f(b) = 0 and f(0) = ½‖b‖² = ½(9 + 0.25).
	assert.InDelta(t, 0, p.F(atB), 1e-12)
	assert.InDelta(t, 4.625, p.F(zero), 1e-12)

	// ∇f(0) = −b.
	grad := p.GradF(zero)
	assert.InDelta(t, -3, grad.At(0, 0), 1e-12)
	assert.InDelta(t, -0.5, grad.At(1, 0), 1e-12)

	// g((1,−2)) = μ·3.
	assert.InDelta(t, 3, p.G(mat.NewDense(2, 1, []float64{1, -2})), 1e-12)

	// Soft threshold at μτ = 1: 3 → 2, −0.5 → 0.
	shrunk := p.Prox(atB, 1)
	assert.InDelta(t, 2, shrunk.At(0, 0), 1e-12)
	assert.InDelta(t, 0, shrunk.At(1, 0), 1e-12)

	// Composite at 0 is just f(0); at (1,1) it is ½(4+0.25) + 2.
	assert.InDelta(t, 4.625, p.Objective(zero), 1e-12)
	assert.InDelta(t, 4.125, p.Objective(mat.NewDense(2, 1, []float64{1, 1})), 1e-12)
}

// TestConstruct_Properties checks the synthetic benchmark contract:
// shapes, unit-norm columns (probed through the operator), exactly nnz
// unit spikes, small measurement noise, and seed determinism.
func TestConstruct_Properties(t *testing.T) {
	const (
		m, n, nnz = 20, 40, 5
		mu        = 0.1
	)
	p, x0, xtrue, err := lasso.Construct(m, n, nnz, mu, 7)
	require.NoError(t, err)

	gotM, gotN := p.Dims()
	require.Equal(t, m, gotM)
	require.Equal(t, n, gotN)
	require.Equal(t, mu, p.Mu())

	r, c := x0.Dims()
	require.Equal(t, n, r)
	require.Equal(t, 1, c)
	assert.Zero(t, mat.Norm(x0, 2))

	// Exactly nnz spikes, all of unit magnitude.
	spikes := 0
	for i := 0; i < n; i++ {
		if v := xtrue.AtVec(i); v != 0 {
			spikes++
			assert.Equal(t, 1.0, math.Abs(v))
		}
	}
	assert.Equal(t, nnz, spikes)

	// Columns reached through the operator have unit norm.
	op := p.FBS().A
	require.NotNil(t, op)
	for _, j := range []int{0, n / 2, n - 1} {
		ej := mat.NewDense(n, 1, nil)
		ej.Set(j, 0, 1)
		assert.InDelta(t, 1, mat.Norm(op.Apply(ej), 2), 1e-12)
	}

	// b sits within the noise budget of A·x*: ½‖Ax*−b‖² is tiny but nonzero.
	xt := mat.NewDense(n, 1, nil)
	for i := 0; i < n; i++ {
		xt.Set(i, 0, xtrue.AtVec(i))
	}
	misfit := p.F(op.Apply(xt))
	assert.Greater(t, misfit, 0.0)
	assert.Less(t, misfit, 0.01)

	// Same seed, same instance; another seed draws another design.
	p2, _, xtrue2, err := lasso.Construct(m, n, nnz, mu, 7)
	require.NoError(t, err)
	ones := mat.NewDense(n, 1, nil)
	for i := 0; i < n; i++ {
		ones.Set(i, 0, 1)
	}
	assert.True(t, mat.Equal(xtrue, xtrue2))
	assert.True(t, mat.Equal(op.Apply(ones), p2.FBS().A.Apply(ones)))

	p3, _, _, err := lasso.Construct(m, n, nnz, mu, 8)
	require.NoError(t, err)
	assert.False(t, mat.Equal(op.Apply(ones), p3.FBS().A.Apply(ones)))
}

// TestConstruct_Validation covers the size and weight sentinels.
func TestConstruct_Validation(t *testing.T) {
	_, _, _, err := lasso.Construct(0, 10, 1, 0.1, 1)
	require.ErrorIs(t, err, lasso.ErrBadSize)

	_, _, _, err = lasso.Construct(10, 10, 11, 0.1, 1)
	require.ErrorIs(t, err, lasso.ErrBadSize)

	_, _, _, err = lasso.Construct(10, 10, 0, 0.1, 1)
	require.ErrorIs(t, err, lasso.ErrBadSize)

	_, _, _, err = lasso.Construct(10, 10, 1, 0, 1)
	require.ErrorIs(t, err, lasso.ErrBadMu)
}

// TestSolve_RecoversSparseSpikes runs the full pipeline on a classic
// compressed-sensing instance: 40 measurements, 80 unknowns, 4 spikes.
// The ℓ₁ solution must land near the ground truth and improve on the
// zero start.
func TestSolve_RecoversSparseSpikes(t *testing.T) {
	p, x0, xtrue, err := lasso.Construct(40, 80, 4, 0.1, 3)
	require.NoError(t, err)

	opts := fbs.DefaultOptions(fbs.WithRecordObjective())
	sol, conv, err := p.Solve(context.Background(), x0, &opts)
	require.NoError(t, err)
	require.NotNil(t, sol)
	require.Greater(t, conv.Iterations, 5)

	assert.Less(t, lasso.RecoveryError(sol, xtrue), 0.5)
	assert.Less(t, p.Objective(sol), p.Objective(x0))
	assert.Len(t, conv.Residuals, conv.Iterations)
	assert.Len(t, conv.Objectives, conv.Iterations)
}

// TestSolve_RejectsBadGuess covers shape and nil errors on the solver
// entry point.
func TestSolve_RejectsBadGuess(t *testing.T) {
	p, _, _, err := lasso.Construct(10, 20, 2, 0.1, 1)
	require.NoError(t, err)

	_, _, err = p.Solve(context.Background(), mat.NewDense(5, 1, nil), nil)
	require.ErrorIs(t, err, lasso.ErrBadGuess)

	_, _, err = p.Solve(context.Background(), nil, nil)
	require.ErrorIs(t, err, fbs.ErrNilIterate)
}

// TestRecoveryError pins the metric on hand cases, including the
// zero-truth fallback to absolute distance.
func TestRecoveryError(t *testing.T) {
	exact := mat.NewDense(2, 1, []float64{1, 0})
	truth := mat.NewVecDense(2, []float64{1, 0})
	assert.Zero(t, lasso.RecoveryError(exact, truth))

	zero := mat.NewDense(2, 1, nil)
	assert.InDelta(t, 1, lasso.RecoveryError(zero, truth), 1e-12)

	off := mat.NewDense(2, 1, []float64{3, 4})
	assert.InDelta(t, 5, lasso.RecoveryError(off, mat.NewVecDense(2, nil)), 1e-12)
}

// TestFBS_Wiring checks that the adapter fills every callback: unlike the
// smooth clustering objective, the ℓ₁ problem carries G, ProxG and A.
func TestFBS_Wiring(t *testing.T) {
	p, _, _, err := lasso.Construct(6, 9, 2, 0.5, 1)
	require.NoError(t, err)

	pr := p.FBS()
	assert.NotNil(t, pr.F)
	assert.NotNil(t, pr.GradF)
	assert.NotNil(t, pr.G)
	assert.NotNil(t, pr.ProxG)
	assert.NotNil(t, pr.A)
}

// benchmarkSolve measures a full solve of an m×n instance with k spikes.
func benchmarkSolve(b *testing.B, m, n, k int) {
	p, x0, _, err := lasso.Construct(m, n, k, 0.1, 1)
	if err != nil {
		b.Fatalf("Construct failed: %v", err)
	}
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := p.Solve(ctx, x0, nil); err != nil {
			b.Fatalf("Solve failed: %v", err)
		}
	}
}

// BenchmarkSolve_Small benchmarks recovery on a 50×100 design.
func BenchmarkSolve_Small(b *testing.B) { benchmarkSolve(b, 50, 100, 5) }

// BenchmarkSolve_Medium benchmarks recovery on a 200×500 design.
func BenchmarkSolve_Medium(b *testing.B) { benchmarkSolve(b, 200, 500, 10) }

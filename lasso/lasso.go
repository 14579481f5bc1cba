// SPDX-License-Identifier: MIT

package lasso

import (
	"context"
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/katalvlaran/fasta/fbs"
	"github.com/katalvlaran/fasta/linop"
)

// Problem is one sparse least-squares instance. Build it with New or
// Construct; the zero value is not usable.
type Problem struct {
	a    *mat.Dense
	b    *mat.Dense // observations as an m×1 column
	mu   float64
	m, n int
}

// New wraps user data as a Problem. The design matrix is retained by
// reference and must not be mutated while the problem is in use; the
// observations are copied.
func New(a *mat.Dense, b *mat.VecDense, mu float64) (*Problem, error) {
	if a == nil || a.IsEmpty() {
		return nil, ErrNilMatrix
	}
	if b == nil || b.Len() == 0 {
		return nil, ErrNilObservations
	}
	m, n := a.Dims()
	if b.Len() != m {
		return nil, ErrDimMismatch
	}
	if isNonFinite(mu) || mu <= 0 {
		return nil, ErrBadMu
	}

	obs := mat.NewDense(m, 1, nil)
	for i := 0; i < m; i++ {
		obs.Set(i, 0, b.AtVec(i))
	}
	return &Problem{a: a, b: obs, mu: mu, m: m, n: n}, nil
}

// Construct builds the canonical synthetic benchmark:
//
//	A  — m×n standard normal entries, every column scaled to unit norm,
//	x* — nnz entries set to ±1 at random positions, the rest zero,
//	b  — A·x* plus N(0, constructNoise²) measurement noise.
//
// It returns the wrapped Problem, the zero initial guess, and the ground
// truth x* for recovery-error reporting. A zero seed selects the fixed
// default stream, so the default benchmark is reproducible.
func Construct(m, n, nnz int, mu float64, seed uint64) (*Problem, *mat.Dense, *mat.VecDense, error) {
	if m < 1 || n < 1 || nnz < 1 || nnz > n {
		return nil, nil, nil, ErrBadSize
	}
	if isNonFinite(mu) || mu <= 0 {
		return nil, nil, nil, ErrBadMu
	}
	if seed == 0 {
		seed = defaultRNGSeed
	}
	src := rand.NewSource(seed)
	normal := distuv.Normal{Mu: 0, Sigma: 1, Src: src}
	rng := rand.New(src)

	// Gaussian design with unit-norm columns.
	a := mat.NewDense(m, n, nil)
	for i := 0; i < m; i++ {
		row := a.RawRowView(i)
		for j := range row {
			row[j] = normal.Rand()
		}
	}
	col := make([]float64, m)
	for j := 0; j < n; j++ {
		mat.Col(col, j, a)
		norm := floats.Norm(col, 2)
		if norm == 0 {
			continue
		}
		for i := 0; i < m; i++ {
			a.Set(i, j, col[i]/norm)
		}
	}

	// nnz spikes of unit magnitude at random positions.
	xtrue := mat.NewVecDense(n, nil)
	for _, j := range rng.Perm(n)[:nnz] {
		if rng.Intn(2) == 0 {
			xtrue.SetVec(j, 1)
		} else {
			xtrue.SetVec(j, -1)
		}
	}

	// Noisy observations.
	obs := mat.NewVecDense(m, nil)
	obs.MulVec(a, xtrue)
	for i := 0; i < m; i++ {
		obs.SetVec(i, obs.AtVec(i)+constructNoise*normal.Rand())
	}

	p, err := New(a, obs, mu)
	if err != nil {
		return nil, nil, nil, err
	}
	return p, mat.NewDense(n, 1, nil), xtrue, nil
}

// Dims returns the design shape: m observations over n unknowns.
func (p *Problem) Dims() (m, n int) { return p.m, p.n }

// Mu returns the ℓ₁ regularization weight.
func (p *Problem) Mu() float64 { return p.mu }

// Objective evaluates the full composite ½‖Ax−b‖² + μ‖x‖₁.
func (p *Problem) Objective(x *mat.Dense) float64 {
	var z mat.Dense
	z.Mul(p.a, x)
	z.Sub(&z, p.b)
	norm := mat.Norm(&z, 2)
	return 0.5*norm*norm + p.G(x)
}

// F is the smooth half seen through the operator: f(z) = ½‖z−b‖².
func (p *Problem) F(z *mat.Dense) float64 {
	var d mat.Dense
	d.Sub(z, p.b)
	norm := mat.Norm(&d, 2)
	return 0.5 * norm * norm
}

// GradF is the gradient of the smooth half: ∇f(z) = z − b.
func (p *Problem) GradF(z *mat.Dense) *mat.Dense {
	var d mat.Dense
	d.Sub(z, p.b)
	return &d
}

// G is the non-smooth half μ‖x‖₁.
func (p *Problem) G(x *mat.Dense) float64 {
	var sum float64
	for i := 0; i < p.n; i++ {
		sum += math.Abs(x.At(i, 0))
	}
	return p.mu * sum
}

// Prox soft-thresholds coordinate-wise at level μτ:
//
//	prox_i = sign(v_i) · max(|v_i| − μτ, 0)
//
// the exact proximal operator of τ·μ‖·‖₁.
func (p *Problem) Prox(v *mat.Dense, tau float64) *mat.Dense {
	out := mat.DenseCopyOf(v)
	level := p.mu * tau
	for i := 0; i < p.n; i++ {
		val := out.At(i, 0)
		out.Set(i, 0, math.Copysign(math.Max(math.Abs(val)-level, 0), val))
	}
	return out
}

// FBS adapts the problem to the solver's callback form with A plugged in
// as the linear operator, so every gradient is pulled back through Aᵀ.
func (p *Problem) FBS() fbs.Problem {
	return fbs.Problem{
		F:     p.F,
		GradF: p.GradF,
		G:     p.G,
		ProxG: p.Prox,
		A:     linop.FromMatrix(p.a),
	}
}

// Solve runs forward-backward splitting from x0 (an n×1 column) and
// returns the recovered coefficients with their convergence record. A nil
// opts selects fbs.DefaultOptions. On context cancellation the partial
// solution and history are returned together with the context error.
func (p *Problem) Solve(ctx context.Context, x0 *mat.Dense, opts *fbs.Options) (*mat.Dense, *fbs.Convergence, error) {
	if x0 != nil && !x0.IsEmpty() {
		if r, _ := x0.Dims(); r != p.n {
			return nil, nil, ErrBadGuess
		}
	}
	o := fbs.DefaultOptions()
	if opts != nil {
		o = *opts
	}
	res, err := fbs.Solve(ctx, p.FBS(), x0, o)
	if res == nil {
		return nil, nil, err
	}
	return res.Solution, &res.Convergence, err
}

// RecoveryError reports ‖x − x*‖ / ‖x*‖, the relative distance between a
// recovered column and the ground truth. A zero ground truth falls back
// to the absolute distance.
func RecoveryError(x *mat.Dense, xtrue *mat.VecDense) float64 {
	var num float64
	for i := 0; i < xtrue.Len(); i++ {
		d := x.At(i, 0) - xtrue.AtVec(i)
		num += d * d
	}
	num = math.Sqrt(num)

	denom := mat.Norm(xtrue, 2)
	if denom == 0 {
		return num
	}
	return num / denom
}

func isNonFinite(v float64) bool {
	return math.IsNaN(v) || math.IsInf(v, 0)
}

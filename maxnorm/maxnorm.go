// SPDX-License-Identifier: MIT

package maxnorm

import (
	"context"
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/katalvlaran/fasta/fbs"
)

// defaultRNGSeed replaces a zero seed so randomized pieces stay
// reproducible by default.
const defaultRNGSeed uint64 = 1

// Problem holds the similarity matrix and parameters of one max-norm
// clustering instance. Build it with New; the zero value is not usable.
type Problem struct {
	s    *mat.SymDense
	n    int
	opts Options
}

// New builds a max-norm clustering problem over the given observations,
// one observation per row. Options default to DefaultOptions; the
// similarity matrix is formed eagerly so repeated Objective and Gradient
// calls share it.
func New(points mat.Matrix, opts ...Option) (*Problem, error) {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if err := o.validate(); err != nil {
		return nil, err
	}
	s, err := Similarity(points, o.Sigma, o.Delta)
	if err != nil {
		return nil, err
	}
	n, _ := points.Dims()
	return &Problem{s: s, n: n, opts: o}, nil
}

// Size returns the number of observations n.
func (p *Problem) Size() int { return p.n }

// Rank returns the number of factor columns k.
func (p *Problem) Rank() int { return p.opts.Rank }

// Mu returns the row-norm bound μ.
func (p *Problem) Mu() float64 { return p.opts.Mu }

// Objective evaluates ⟨X, SX⟩, the similarity-weighted sum of row inner
// products. One n×k product is formed; no n×n temporary.
func (p *Problem) Objective(x *mat.Dense) float64 {
	var sx mat.Dense
	sx.Mul(p.s, x)
	return frobInner(x, &sx)
}

// Gradient returns 2SX, freshly allocated on every call. S is symmetric,
// so this is the full derivative (S+Sᵀ)X of the objective.
func (p *Problem) Gradient(x *mat.Dense) *mat.Dense {
	out := &mat.Dense{}
	out.Mul(p.s, x)
	out.Scale(2, out)
	return out
}

// Prox projects onto the constraint set {‖X‖_{2,∞} ≤ μ}: any row longer
// than μ is rescaled to length exactly μ, shorter rows (zero rows
// included) pass through untouched. The projection does not depend on
// the stepsize, so tau is ignored.
func (p *Problem) Prox(x *mat.Dense, _ float64) *mat.Dense {
	out := mat.DenseCopyOf(x)
	r, _ := out.Dims()
	for i := 0; i < r; i++ {
		row := out.RawRowView(i)
		if norm := floats.Norm(row, 2); norm > p.opts.Mu {
			floats.Scale(p.opts.Mu/norm, row)
		}
	}
	return out
}

// FBS adapts the problem to the solver's callback form. The smooth part
// carries the whole objective; the non-smooth term is identically zero
// and the constraint enters through ProxG alone. No linear operator is
// set, so the solver runs with the identity.
func (p *Problem) FBS() fbs.Problem {
	return fbs.Problem{
		F:     p.Objective,
		GradF: p.Gradient,
		ProxG: p.Prox,
	}
}

// Solve runs forward-backward splitting from the factor x0 and returns
// the final iterate with its convergence record. A nil opts selects
// fbs.DefaultOptions. Because every iterate leaves Prox, the returned
// factor satisfies the row-norm bound exactly.
//
// On context cancellation the partial solution and history are returned
// together with the context error.
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

// Guess is the convenience form of InitialGuess bound to this problem's
// dimensions and seed.
func (p *Problem) Guess() *mat.Dense {
	return InitialGuess(p.n, p.opts.Rank, p.opts.Seed)
}

// InitialGuess draws the canonical n×k starting factor: standard normal
// entries scaled by 1/(10√k), well inside the feasible region for μ near
// one. A zero seed selects the fixed default stream.
func InitialGuess(n, k int, seed uint64) *mat.Dense {
	normal := newNormal(seed)
	scale := 1 / (10 * math.Sqrt(float64(k)))
	data := make([]float64, n*k)
	for i := range data {
		data[i] = scale * normal.Rand()
	}
	return mat.NewDense(n, k, data)
}

// Labels projects the factor onto a random Gaussian direction and takes
// signs: label_i = sign(⟨x_i, w⟩), with sign(0) mapped to +1 so the
// partition is total. The direction depends only on seed, which makes a
// fixed seed reproduce the same segmentation of the same factor.
func Labels(x *mat.Dense, seed uint64) []int {
	n, k := x.Dims()
	normal := newNormal(seed)
	w := make([]float64, k)
	for j := range w {
		w[j] = normal.Rand()
	}
	labels := make([]int, n)
	for i := range labels {
		if floats.Dot(x.RawRowView(i), w) < 0 {
			labels[i] = -1
		} else {
			labels[i] = 1
		}
	}
	return labels
}

// newNormal returns a standard normal stream over the package RNG policy:
// zero seeds fall back to defaultRNGSeed.
func newNormal(seed uint64) distuv.Normal {
	if seed == 0 {
		seed = defaultRNGSeed
	}
	return distuv.Normal{Mu: 0, Sigma: 1, Src: rand.NewSource(seed)}
}

// frobInner is the Frobenius inner product ⟨a, b⟩, accumulated row by
// row so padded strides never leak in.
func frobInner(a, b *mat.Dense) float64 {
	r, _ := a.Dims()
	var sum float64
	for i := 0; i < r; i++ {
		sum += floats.Dot(a.RawRowView(i), b.RawRowView(i))
	}
	return sum
}

func isNonFinite(v float64) bool {
	return math.IsNaN(v) || math.IsInf(v, 0)
}

// SPDX-License-Identifier: MIT

package fbs

import (
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/fasta/linop"
)

// Problem bundles the callbacks describing minimize f(Ax) + g(x).
//
// F and GradF are required and act on the transformed point z = Ax.
// G and ProxG are optional: leaving both nil solves the smooth problem
// min f(Ax), with the proximal step degenerating to the identity.
// A is optional: nil means the identity operator, so F and GradF act
// directly on the iterate.
//
// Callbacks must not retain or mutate their arguments; the solver reuses
// buffers between calls.
type Problem struct {
	// F evaluates the smooth term f at z = Ax.
	F func(z *mat.Dense) float64

	// GradF evaluates ∇f at z = Ax. The solver applies Aᵀ itself.
	GradF func(z *mat.Dense) *mat.Dense

	// G evaluates the non-smooth term g at x. nil ⇒ g ≡ 0.
	G func(x *mat.Dense) float64

	// ProxG computes prox_{τg}(v) = argmin_u τ·g(u) + ½‖u−v‖².
	// nil ⇒ identity (no backward step).
	ProxG func(v *mat.Dense, tau float64) *mat.Dense

	// A is the linear operator inside f. nil ⇒ identity.
	A linop.Operator
}

// validate checks that the required callbacks are present.
func (p *Problem) validate() error {
	if p.F == nil {
		return ErrNilObjective
	}
	if p.GradF == nil {
		return ErrNilGradient
	}

	return nil
}

// op returns the effective linear operator, defaulting to the identity.
func (p *Problem) op() linop.Operator {
	if p.A == nil {
		return linop.Identity()
	}

	return p.A
}

// g evaluates the non-smooth term, treating nil as g ≡ 0.
func (p *Problem) g(x *mat.Dense) float64 {
	if p.G == nil {
		return 0
	}

	return p.G(x)
}

// prox applies the backward step, treating nil as the identity.
// The result is always a fresh matrix the solver may own.
func (p *Problem) prox(v *mat.Dense, tau float64) *mat.Dense {
	if p.ProxG == nil {
		return mat.DenseCopyOf(v)
	}

	return p.ProxG(v, tau)
}

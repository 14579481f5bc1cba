// SPDX-License-Identifier: MIT

package linop

import "gonum.org/v1/gonum/mat"

// Internal panic messages (no magic strings).
const (
	panicNilMatrix = "linop: FromMatrix: matrix must be non-nil"
	panicNilFuncs  = "linop: FromFuncs: apply and adjoint must be non-nil"
)

// Operator is a linear map together with its adjoint.
//
// Apply returns y = A·x and Adjoint returns x = Aᵀ·y. Implementations
// allocate the result; the one documented exception is Identity, which
// returns its argument unchanged when it is already a *mat.Dense.
type Operator interface {
	// Apply computes the forward product A·x.
	Apply(x mat.Matrix) *mat.Dense

	// Adjoint computes the adjoint product Aᵀ·y.
	Adjoint(y mat.Matrix) *mat.Dense
}

// identity implements Operator as a no-op map.
type identity struct{}

// Identity returns the identity operator.
//
// Both Apply and Adjoint return the argument itself when it is a
// *mat.Dense (no copy; caller-visible aliasing is intentional since the
// solver treats operator outputs as read-only), and a dense copy
// otherwise.
//
// Complexity: O(1) for *mat.Dense inputs, O(r·c) otherwise.
func Identity() Operator { return identity{} }

func (identity) Apply(x mat.Matrix) *mat.Dense   { return asDense(x) }
func (identity) Adjoint(y mat.Matrix) *mat.Dense { return asDense(y) }

// matrixOp implements Operator for an explicit dense matrix.
type matrixOp struct {
	a mat.Matrix
}

// FromMatrix wraps an explicit matrix as an Operator.
//
// Apply multiplies by a, Adjoint by aᵀ. The matrix is retained by
// reference and must not be mutated while the operator is in use.
// Panics with a stable message when a is nil (programmer error).
//
// Complexity: O(r·c·k) per product (gonum dense multiply).
func FromMatrix(a mat.Matrix) Operator {
	if a == nil {
		panic(panicNilMatrix)
	}

	return matrixOp{a: a}
}

func (m matrixOp) Apply(x mat.Matrix) *mat.Dense {
	var out mat.Dense
	out.Mul(m.a, x)

	return &out
}

func (m matrixOp) Adjoint(y mat.Matrix) *mat.Dense {
	var out mat.Dense
	out.Mul(m.a.T(), y)

	return &out
}

// funcOp implements Operator via user closures.
type funcOp struct {
	apply   func(x mat.Matrix) *mat.Dense
	adjoint func(y mat.Matrix) *mat.Dense
}

// FromFuncs builds a matrix-free Operator from a forward and an adjoint
// closure. Panics with a stable message when either closure is nil
// (programmer error); correctness of the adjoint pairing is the caller's
// responsibility.
func FromFuncs(apply, adjoint func(x mat.Matrix) *mat.Dense) Operator {
	if apply == nil || adjoint == nil {
		panic(panicNilFuncs)
	}

	return funcOp{apply: apply, adjoint: adjoint}
}

func (f funcOp) Apply(x mat.Matrix) *mat.Dense   { return f.apply(x) }
func (f funcOp) Adjoint(y mat.Matrix) *mat.Dense { return f.adjoint(y) }

// asDense returns x itself when it already is a *mat.Dense, and a dense
// copy otherwise.
func asDense(x mat.Matrix) *mat.Dense {
	if d, ok := x.(*mat.Dense); ok {
		return d
	}

	return mat.DenseCopyOf(x)
}

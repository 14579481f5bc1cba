// SPDX-License-Identifier: MIT

// Package lasso solves the sparse least-squares problem
//
//	minimize  ½‖Ax − b‖² + μ‖x‖₁
//
// by forward-backward splitting. The smooth part is evaluated through the
// linear operator A, so the solver sees f(z) = ½‖z−b‖² with z = Ax; the
// ℓ₁ term enters through its proximal operator, coordinate-wise soft
// thresholding at level μτ.
//
// Construct builds the classic synthetic benchmark: a Gaussian design
// with unit-norm columns, a handful of ±1 spikes, and lightly noisy
// observations. New wraps user-supplied data instead. Either way, Solve
// returns the recovered coefficient vector as an n×1 dense column.
package lasso

import "errors"

var (
	// ErrNilMatrix is returned when the design matrix is nil or empty.
	ErrNilMatrix = errors.New("lasso: design matrix must not be nil")

	// ErrNilObservations is returned when the observation vector is nil
	// or empty.
	ErrNilObservations = errors.New("lasso: observations must not be nil")

	// ErrDimMismatch is returned when the observation length does not
	// match the number of rows of the design matrix.
	ErrDimMismatch = errors.New("lasso: rows of A must match length of b")

	// ErrBadMu is returned when the regularization weight is not a
	// positive finite number.
	ErrBadMu = errors.New("lasso: mu must be positive and finite")

	// ErrBadSize is returned by Construct when m, n or nnz is not
	// positive, or nnz exceeds n.
	ErrBadSize = errors.New("lasso: m, n and nnz must be positive with nnz <= n")

	// ErrBadGuess is returned by Solve when the initial vector does not
	// have one row per unknown.
	ErrBadGuess = errors.New("lasso: initial guess must have one row per unknown")
)

// constructNoise is the standard deviation of the measurement noise added
// by Construct. Small enough that the spikes stay recoverable, large
// enough that b never sits exactly in the range of the spikes.
const constructNoise = 0.01

// defaultRNGSeed replaces a zero seed in Construct so the benchmark stays
// reproducible by default.
const defaultRNGSeed uint64 = 1

// SPDX-License-Identifier: MIT

package maxnorm

import "errors"

var (
	// ErrNilPoints is returned when the observation matrix is nil.
	ErrNilPoints = errors.New("maxnorm: points must not be nil")

	// ErrFewPoints is returned when fewer than two observations are given;
	// a similarity matrix needs at least one pair.
	ErrFewPoints = errors.New("maxnorm: need at least two points")

	// ErrBadMu is returned when the row-norm bound μ is not a positive
	// finite number.
	ErrBadMu = errors.New("maxnorm: mu must be positive and finite")

	// ErrBadSigma is returned when the kernel width σ is not a positive
	// finite number.
	ErrBadSigma = errors.New("maxnorm: sigma must be positive and finite")

	// ErrBadDelta is returned when the balance term δ is NaN or infinite.
	ErrBadDelta = errors.New("maxnorm: delta must be finite")

	// ErrBadRank is returned when the factor rank k is less than one.
	ErrBadRank = errors.New("maxnorm: rank must be at least 1")

	// ErrBadGuess is returned by Solve when the initial factor does not
	// have one row per observation.
	ErrBadGuess = errors.New("maxnorm: initial guess must have one row per point")
)

// Default parameters; DefaultOptions starts from these.
const (
	// DefaultMu bounds the Euclidean norm of every factor row.
	DefaultMu = 1.0

	// DefaultSigma is the width of the Gaussian similarity kernel.
	DefaultSigma = 0.1

	// DefaultDelta is the balance term added to every similarity entry.
	DefaultDelta = 0.01

	// DefaultRank is the number of columns in the low-rank factor.
	DefaultRank = 10
)

// Options bundles the tunable parameters of a max-norm problem.
// Construct it via DefaultOptions and the With* setters; New validates
// the final combination.
type Options struct {
	// Mu bounds the Euclidean norm of each row of the factor X.
	Mu float64

	// Sigma is the width of the similarity kernel exp(−d²/(2σ²)).
	Sigma float64

	// Delta is added to every similarity entry to balance the cut.
	Delta float64

	// Rank is the number of columns k of the factor X.
	Rank int

	// Seed feeds the deterministic RNG behind InitialGuess and Labels
	// when those are driven through the problem. Zero selects a fixed
	// default so runs stay reproducible.
	Seed uint64
}

// Option mutates Options inside New.
type Option func(*Options)

// WithMu sets the row-norm bound μ. Panics unless mu is positive and finite.
func WithMu(mu float64) Option {
	return func(o *Options) {
		if isNonFinite(mu) || mu <= 0 {
			panic(ErrBadMu.Error())
		}
		o.Mu = mu
	}
}

// WithSigma sets the kernel width σ. Panics unless sigma is positive and
// finite.
func WithSigma(sigma float64) Option {
	return func(o *Options) {
		if isNonFinite(sigma) || sigma <= 0 {
			panic(ErrBadSigma.Error())
		}
		o.Sigma = sigma
	}
}

// WithDelta sets the balance term δ. Panics when delta is NaN or infinite.
func WithDelta(delta float64) Option {
	return func(o *Options) {
		if isNonFinite(delta) {
			panic(ErrBadDelta.Error())
		}
		o.Delta = delta
	}
}

// WithRank sets the factor rank k. Panics when k < 1.
func WithRank(k int) Option {
	return func(o *Options) {
		if k < 1 {
			panic(ErrBadRank.Error())
		}
		o.Rank = k
	}
}

// WithSeed fixes the RNG seed used by the problem's randomized pieces.
func WithSeed(seed uint64) Option {
	return func(o *Options) { o.Seed = seed }
}

// DefaultOptions returns the canonical parameter set for the two-moons
// demo: μ=1, σ=0.1, δ=0.01, rank 10.
func DefaultOptions() Options {
	return Options{
		Mu:    DefaultMu,
		Sigma: DefaultSigma,
		Delta: DefaultDelta,
		Rank:  DefaultRank,
	}
}

// validate re-checks the combined options; New reports the first violation.
func (o *Options) validate() error {
	if isNonFinite(o.Mu) || o.Mu <= 0 {
		return ErrBadMu
	}
	if isNonFinite(o.Sigma) || o.Sigma <= 0 {
		return ErrBadSigma
	}
	if isNonFinite(o.Delta) {
		return ErrBadDelta
	}
	if o.Rank < 1 {
		return ErrBadRank
	}
	return nil
}

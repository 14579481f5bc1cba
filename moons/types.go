// Package moons generates the two-moons synthetic clustering dataset.
//
// The generator places Count points on a full circle embedded in Dim
// dimensions (cos θ and sin θ in the first two coordinates, zeros beyond),
// shifts the first half of the points by −(ShiftX, ShiftY) to peel off the
// top moon, and jitters every coordinate with N(0, Noise²) noise. The
// result is the classic pair of interleaved crescents used to exercise
// non-linear clustering methods, together with the ground-truth moon
// membership for evaluation.
//
// Determinism: Seed==0 selects a fixed default stream, so repeated calls
// with identical options return identical datasets.
package moons

import "errors"

// Sentinel errors returned by Generate.
var (
	// ErrBadCount indicates Count < 4; two moons need at least two points each.
	ErrBadCount = errors.New("moons: Count must be at least 4")

	// ErrBadDim indicates Dim < 2; the circle needs two coordinates.
	ErrBadDim = errors.New("moons: Dim must be at least 2")

	// ErrBadNoise indicates a negative or non-finite noise level.
	ErrBadNoise = errors.New("moons: Noise must be finite and non-negative")

	// ErrBadShift indicates a non-finite moon separation.
	ErrBadShift = errors.New("moons: ShiftX and ShiftY must be finite")
)

// DEFAULTS - single source of truth for DefaultOptions.
const (
	// DefaultCount is the number of observations.
	DefaultCount = 2000

	// DefaultDim is the embedding dimensionality.
	DefaultDim = 2

	// DefaultNoise is the standard deviation of the coordinate jitter.
	DefaultNoise = 0.15

	// DefaultShiftX separates the moons horizontally.
	DefaultShiftX = 1.0

	// DefaultShiftY separates the moons vertically.
	DefaultShiftY = 0.5
)

// Options configures dataset generation.
//
// Count  – number of observations (≥ 4).
// Dim    – embedding dimensionality (≥ 2); coordinates past the second
// carry pure noise.
// Noise  – standard deviation of the additive Gaussian jitter (≥ 0).
// ShiftX – horizontal separation subtracted from the first moon.
// ShiftY – vertical separation subtracted from the first moon.
// Seed   – RNG seed; 0 selects the fixed default stream.
type Options struct {
	Count  int
	Dim    int
	Noise  float64
	ShiftX float64
	ShiftY float64
	Seed   uint64
}

// Option represents a functional option for configuring Generate.
type Option func(*Options)

// WithCount sets the number of observations.
// Must pass at least 4; smaller values cause ErrBadCount.
func WithCount(n int) Option {
	return func(o *Options) {
		if n < 4 {
			panic(ErrBadCount.Error())
		}
		o.Count = n
	}
}

// WithDim sets the embedding dimensionality.
// Must pass at least 2; smaller values cause ErrBadDim.
func WithDim(d int) Option {
	return func(o *Options) {
		if d < 2 {
			panic(ErrBadDim.Error())
		}
		o.Dim = d
	}
}

// WithNoise sets the standard deviation of the coordinate jitter.
// Must pass a finite, non-negative value; otherwise ErrBadNoise.
func WithNoise(sigma float64) Option {
	return func(o *Options) {
		if isNonFinite(sigma) || sigma < 0 {
			panic(ErrBadNoise.Error())
		}
		o.Noise = sigma
	}
}

// WithShift sets the separation subtracted from the first moon.
// Both components must be finite; otherwise ErrBadShift.
func WithShift(dx, dy float64) Option {
	return func(o *Options) {
		if isNonFinite(dx) || isNonFinite(dy) {
			panic(ErrBadShift.Error())
		}
		o.ShiftX = dx
		o.ShiftY = dy
	}
}

// WithSeed sets the RNG seed. Seed 0 selects the fixed default stream,
// so the zero value is still deterministic.
func WithSeed(seed uint64) Option {
	return func(o *Options) { o.Seed = seed }
}

// DefaultOptions returns an Options struct initialized with the Default*
// constants. Use this as a starting point for functional-option overrides.
func DefaultOptions() Options {
	return Options{
		Count:  DefaultCount,
		Dim:    DefaultDim,
		Noise:  DefaultNoise,
		ShiftX: DefaultShiftX,
		ShiftY: DefaultShiftY,
	}
}

// validate rejects Options states that setters cannot reach, for callers
// that build the struct directly.
func (o *Options) validate() error {
	if o.Count < 4 {
		return ErrBadCount
	}
	if o.Dim < 2 {
		return ErrBadDim
	}
	if isNonFinite(o.Noise) || o.Noise < 0 {
		return ErrBadNoise
	}
	if isNonFinite(o.ShiftX) || isNonFinite(o.ShiftY) {
		return ErrBadShift
	}

	return nil
}

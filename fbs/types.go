// SPDX-License-Identifier: MIT

// Package fbs: configuration and sentinel errors for the solver.
// This file defines:
//   - sentinel errors shared by Solve and RunVariants,
//   - the StopRule and Variant enums,
//   - documented defaults (constants),
//   - Options with functional With* setters (panic on nonsensical values),
//   - DefaultOptions, the single source of effective defaults.
package fbs

import "errors"

// Sentinel errors returned by Solve and RunVariants.
var (
	// ErrNilObjective indicates that Problem.F was not provided.
	ErrNilObjective = errors.New("fbs: objective F is nil")

	// ErrNilGradient indicates that Problem.GradF was not provided.
	ErrNilGradient = errors.New("fbs: gradient GradF is nil")

	// ErrNilIterate indicates that the initial iterate x0 is nil or empty.
	ErrNilIterate = errors.New("fbs: initial iterate is nil or empty")

	// ErrBadMaxIters indicates MaxIters < 1.
	ErrBadMaxIters = errors.New("fbs: MaxIters must be at least 1")

	// ErrBadTolerance indicates a non-finite or negative Tolerance.
	ErrBadTolerance = errors.New("fbs: Tolerance must be finite and non-negative")

	// ErrBadWindow indicates Window < 1; the line search needs at least
	// one reference objective value.
	ErrBadWindow = errors.New("fbs: Window must be at least 1")

	// ErrBadShrink indicates StepsizeShrink outside (0, 1).
	ErrBadShrink = errors.New("fbs: StepsizeShrink must lie in (0, 1)")

	// ErrBadBacktracks indicates MaxBacktracks < 1.
	ErrBadBacktracks = errors.New("fbs: MaxBacktracks must be at least 1")

	// ErrBadStepsize indicates a negative or non-finite Tau0 or L.
	ErrBadStepsize = errors.New("fbs: Tau0 and L must be finite and non-negative")
)

// StopRule selects the convergence test applied after every iteration.
//
//   - StopHybrid             — stop when EITHER the ratio test or the
//     normalized test passes. Robust default: the ratio test handles
//     well-scaled problems, the normalized test badly-scaled ones.
//   - StopRatioResidual      — stop when residual / (max residual seen)
//     falls below Tolerance.
//   - StopNormalizedResidual — stop when the normalized residual falls
//     below Tolerance.
type StopRule int

const (
	// StopHybrid passes when either the ratio or the normalized test passes.
	StopHybrid StopRule = iota

	// StopRatioResidual compares the residual against the largest residual seen.
	StopRatioResidual

	// StopNormalizedResidual compares the scale-invariant residual against Tolerance.
	StopNormalizedResidual
)

// Variant names one of the three solver execution modes.
type Variant int

const (
	// VariantAdaptive runs spectral (Barzilai–Borwein) stepsize selection.
	VariantAdaptive Variant = iota

	// VariantAccelerated runs FISTA-style momentum with restart.
	VariantAccelerated

	// VariantPlain runs fixed-stepsize FBS (backtracking only).
	VariantPlain
)

// String returns the display name of the variant, suitable for legends
// and reports.
func (v Variant) String() string {
	switch v {
	case VariantAdaptive:
		return "Adaptive"
	case VariantAccelerated:
		return "Accelerated"
	case VariantPlain:
		return "Plain"
	default:
		return "Unknown"
	}
}

// apply overwrites the mode flags of o so that they match the variant.
// All other fields of o are left untouched.
func (v Variant) apply(o *Options) {
	switch v {
	case VariantAccelerated:
		o.Adaptive = false
		o.Accelerate = true
	case VariantPlain:
		o.Adaptive = false
		o.Accelerate = false
	default:
		o.Adaptive = true
		o.Accelerate = false
	}
}

// DEFAULTS - single source of truth for DefaultOptions.
const (
	// DefaultMaxIters bounds the number of iterations.
	DefaultMaxIters = 1000

	// DefaultTolerance is the stopping tolerance for the residual tests.
	DefaultTolerance = 1e-5

	// DefaultWindow is the look-back length of the non-monotone line search.
	DefaultWindow = 10

	// DefaultStepsizeShrink is the multiplicative backtracking factor.
	DefaultStepsizeShrink = 0.5

	// DefaultMaxBacktracks bounds line-search steps within one iteration.
	DefaultMaxBacktracks = 20
)

// Options configures a single Solve run.
//
// MaxIters        – iteration cap (≥ 1).
// Tolerance       – residual tolerance for the stop rule (≥ 0, finite).
// Tau0            – initial stepsize; 0 means auto (from L, or probed).
// L               – Lipschitz constant of ∇f̂; 0 means estimate by probing.
// Adaptive        – spectral stepsize selection (ignored when Accelerate).
// Accelerate      – FISTA momentum.
// Backtrack       – non-monotone backtracking line search.
// Restart         – momentum restart (accelerated mode only).
// Window          – line-search look-back length (≥ 1).
// StepsizeShrink  – backtracking shrink factor, in (0, 1).
// MaxBacktracks   – per-iteration line-search cap (≥ 1).
// RecordObjective – evaluate and record f+g each iteration; tracks the
// best-seen objective and iterate (extra objective evaluations).
// StopRule        – which convergence test ends the run.
// Verbose         – print one line per iteration.
// Seed            – probe RNG seed; 0 selects the fixed default stream.
type Options struct {
	MaxIters        int
	Tolerance       float64
	Tau0            float64
	L               float64
	Adaptive        bool
	Accelerate      bool
	Backtrack       bool
	Restart         bool
	Window          int
	StepsizeShrink  float64
	MaxBacktracks   int
	RecordObjective bool
	StopRule        StopRule
	Verbose         bool
	Seed            uint64
}

// Option represents a functional option for configuring Solve.
type Option func(*Options)

// WithMaxIters caps the number of iterations.
// Must pass a positive value; non-positive values cause ErrBadMaxIters.
func WithMaxIters(n int) Option {
	return func(o *Options) {
		if n < 1 {
			// Panic to signal invalid configuration early (programmer error).
			panic(ErrBadMaxIters.Error())
		}
		o.MaxIters = n
	}
}

// WithTolerance sets the stopping tolerance used by the stop rule.
// Must pass a finite, non-negative value; otherwise ErrBadTolerance.
func WithTolerance(tol float64) Option {
	return func(o *Options) {
		if isNonFinite(tol) || tol < 0 {
			panic(ErrBadTolerance.Error())
		}
		o.Tolerance = tol
	}
}

// WithStepsize fixes the initial stepsize τ₀, bypassing auto-tuning.
// Must pass a finite, positive value; otherwise ErrBadStepsize.
func WithStepsize(tau0 float64) Option {
	return func(o *Options) {
		if isNonFinite(tau0) || tau0 <= 0 {
			panic(ErrBadStepsize.Error())
		}
		o.Tau0 = tau0
	}
}

// WithLipschitz supplies a known Lipschitz constant for ∇f̂, from which
// the initial stepsize is derived as 1/L. Ignored when WithStepsize is
// also given. Must pass a finite, positive value; otherwise ErrBadStepsize.
func WithLipschitz(l float64) Option {
	return func(o *Options) {
		if isNonFinite(l) || l <= 0 {
			panic(ErrBadStepsize.Error())
		}
		o.L = l
	}
}

// WithAdaptive toggles spectral (Barzilai–Borwein) stepsize selection.
// Enabled by default; has no effect while Accelerate is set.
func WithAdaptive(on bool) Option {
	return func(o *Options) { o.Adaptive = on }
}

// WithAcceleration toggles FISTA momentum. Acceleration and adaptive
// stepsizes are mutually exclusive; when both are set, acceleration wins.
func WithAcceleration(on bool) Option {
	return func(o *Options) { o.Accelerate = on }
}

// WithBacktracking toggles the non-monotone backtracking line search.
// Enabled by default; disable only when a safe stepsize is known.
func WithBacktracking(on bool) Option {
	return func(o *Options) { o.Backtrack = on }
}

// WithRestart toggles momentum restart in accelerated mode.
// Enabled by default.
func WithRestart(on bool) Option {
	return func(o *Options) { o.Restart = on }
}

// WithWindow sets the look-back length of the non-monotone line search.
// Must pass a positive value; otherwise ErrBadWindow.
func WithWindow(n int) Option {
	return func(o *Options) {
		if n < 1 {
			panic(ErrBadWindow.Error())
		}
		o.Window = n
	}
}

// WithStepsizeShrink sets the multiplicative backtracking factor.
// Must lie strictly between 0 and 1; otherwise ErrBadShrink.
func WithStepsizeShrink(s float64) Option {
	return func(o *Options) {
		if isNonFinite(s) || s <= 0 || s >= 1 {
			panic(ErrBadShrink.Error())
		}
		o.StepsizeShrink = s
	}
}

// WithMaxBacktracks caps line-search steps within a single iteration.
// Must pass a positive value; otherwise ErrBadBacktracks.
func WithMaxBacktracks(n int) Option {
	return func(o *Options) {
		if n < 1 {
			panic(ErrBadBacktracks.Error())
		}
		o.MaxBacktracks = n
	}
}

// WithRecordObjective enables per-iteration objective recording and
// best-iterate tracking. Costs one extra f and g evaluation per iteration.
func WithRecordObjective() Option {
	return func(o *Options) { o.RecordObjective = true }
}

// WithStopRule selects the convergence test.
func WithStopRule(rule StopRule) Option {
	return func(o *Options) { o.StopRule = rule }
}

// WithVerbose enables one progress line per iteration via fmt.Printf.
func WithVerbose() Option {
	return func(o *Options) { o.Verbose = true }
}

// WithSeed sets the probe RNG seed. Seed 0 selects the fixed default
// stream, so the zero value is still deterministic.
func WithSeed(seed uint64) Option {
	return func(o *Options) { o.Seed = seed }
}

// DefaultOptions returns an Options struct initialized with the Default*
// constants, then overridden by the given setters in order. Use this as
// the starting point for every run.
//
// Defaults:
//   - MaxIters:       DefaultMaxIters (1000).
//   - Tolerance:      DefaultTolerance (1e-5).
//   - Tau0, L:        0 (auto: probe two random points for L, τ₀ = 2/(10·L)).
//   - Adaptive:       true (spectral stepsizes).
//   - Accelerate:     false.
//   - Backtrack:      true.
//   - Restart:        true.
//   - Window:         DefaultWindow (10).
//   - StepsizeShrink: DefaultStepsizeShrink (0.5).
//   - MaxBacktracks:  DefaultMaxBacktracks (20).
//   - StopRule:       StopHybrid.
//   - Seed:           0 (fixed default stream).
func DefaultOptions(opts ...Option) Options {
	o := Options{
		MaxIters:       DefaultMaxIters,
		Tolerance:      DefaultTolerance,
		Adaptive:       true,
		Accelerate:     false,
		Backtrack:      true,
		Restart:        true,
		Window:         DefaultWindow,
		StepsizeShrink: DefaultStepsizeShrink,
		MaxBacktracks:  DefaultMaxBacktracks,
		StopRule:       StopHybrid,
	}
	for _, set := range opts {
		set(&o) // apply in order; last-writer-wins semantics
	}

	return o
}

// validate rejects Options states that setters cannot reach, for callers
// that build the struct directly.
func (o *Options) validate() error {
	if o.MaxIters < 1 {
		return ErrBadMaxIters
	}
	if isNonFinite(o.Tolerance) || o.Tolerance < 0 {
		return ErrBadTolerance
	}
	if o.Window < 1 {
		return ErrBadWindow
	}
	if isNonFinite(o.StepsizeShrink) || o.StepsizeShrink <= 0 || o.StepsizeShrink >= 1 {
		return ErrBadShrink
	}
	if o.MaxBacktracks < 1 {
		return ErrBadBacktracks
	}
	if isNonFinite(o.Tau0) || o.Tau0 < 0 || isNonFinite(o.L) || o.L < 0 {
		return ErrBadStepsize
	}

	return nil
}

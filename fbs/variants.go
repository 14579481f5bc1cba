// SPDX-License-Identifier: MIT

package fbs

import (
	"context"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/mat"
)

// variantOrder fixes the execution and reporting order of RunVariants.
var variantOrder = [...]Variant{VariantAdaptive, VariantAccelerated, VariantPlain}

// RunVariants solves the same problem with the adaptive, accelerated and
// plain modes concurrently and returns their results in that fixed order,
// for side-by-side convergence comparisons.
//
// Each variant runs on its own copy of x0 with the mode flags of base
// overwritten; all other fields of base (tolerances, windows, seeds)
// apply to every run. Probe RNG streams are derived per variant from
// base.Seed, so the three runs stay deterministic and uncorrelated.
//
// The Problem callbacks are invoked from three goroutines at once and
// must be safe for concurrent use; callbacks that only read shared state
// (a fixed matrix, a captured vector) qualify.
//
// The first variant to fail cancels the remaining runs and its error is
// returned. A canceled ctx therefore surfaces as that ctx's error.
func RunVariants(ctx context.Context, p Problem, x0 *mat.Dense, base Options) ([]VariantRun, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}
	if err := base.validate(); err != nil {
		return nil, err
	}
	if x0 == nil || x0.IsEmpty() {
		return nil, ErrNilIterate
	}

	runs := make([]VariantRun, len(variantOrder))

	eg, egCtx := errgroup.WithContext(ctx)
	for i, v := range variantOrder {
		opts := base
		v.apply(&opts)
		// Independent probe stream per variant; seed 0 still maps to
		// distinct derived streams.
		opts.Seed = deriveSeed(base.Seed, uint64(i))

		start := mat.DenseCopyOf(x0)
		slot := &runs[i]
		variant := v

		eg.Go(func() error {
			res, err := Solve(egCtx, p, start, opts)
			if err != nil {
				return err
			}
			slot.Variant = variant
			slot.Result = res

			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return runs, nil
}

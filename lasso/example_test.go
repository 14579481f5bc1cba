package lasso_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/fasta/lasso"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleProblem_Solve
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Recover 3 unit spikes hidden in 80 unknowns from 40 noisy linear
//	measurements: the classic compressed-sensing square one. All seeds
//	are fixed, so the run is reproducible.
//
// Options:
//   - Construct(40, 80, 3, μ=0.1, seed=2)
//   - solver: fbs defaults (adaptive stepsizes, backtracking)
//
// Use case:
//
//	Sparse regression and feature selection; any ℓ₁-regularized least
//	squares where the design fits in memory.
//
// ExampleProblem_Solve demonstrates sparse recovery end to end.
func ExampleProblem_Solve() {
	p, x0, xtrue, err := lasso.Construct(40, 80, 3, 0.1, 2)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	sol, _, err := p.Solve(context.Background(), x0, nil)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	fmt.Printf("recovery error below 0.5: %t\n", lasso.RecoveryError(sol, xtrue) < 0.5)
	fmt.Printf("objective decreased: %t\n", p.Objective(sol) < p.Objective(x0))
	// Output:
	// recovery error below 0.5: true
	// objective decreased: true
}

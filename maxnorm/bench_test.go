package maxnorm_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/fasta/fbs"
	"github.com/katalvlaran/fasta/maxnorm"
	"github.com/katalvlaran/fasta/moons"
)

// benchmarkSolve clusters an n-point two-moons set at the given rank.
func benchmarkSolve(b *testing.B, n, rank int) {
	ds, err := moons.Generate(moons.WithCount(n), moons.WithSeed(1))
	if err != nil {
		b.Fatalf("Generate failed: %v", err)
	}
	p, err := maxnorm.New(ds.Points, maxnorm.WithSigma(0.3), maxnorm.WithRank(rank))
	if err != nil {
		b.Fatalf("New failed: %v", err)
	}
	x0 := p.Guess()
	opts := fbs.DefaultOptions(fbs.WithMaxIters(200))
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := p.Solve(ctx, x0, &opts); err != nil {
			b.Fatalf("Solve failed: %v", err)
		}
	}
}

// BenchmarkSolve_Small benchmarks clustering of 100 points at rank 4.
func BenchmarkSolve_Small(b *testing.B) { benchmarkSolve(b, 100, 4) }

// BenchmarkSolve_Medium benchmarks clustering of 400 points at rank 10.
func BenchmarkSolve_Medium(b *testing.B) { benchmarkSolve(b, 400, 10) }

// BenchmarkSimilarity measures the O(n²) kernel on 1000 points.
func BenchmarkSimilarity(b *testing.B) {
	ds, err := moons.Generate(moons.WithCount(1000), moons.WithSeed(1))
	if err != nil {
		b.Fatalf("Generate failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := maxnorm.Similarity(ds.Points, 0.1, 0.01); err != nil {
			b.Fatalf("Similarity failed: %v", err)
		}
	}
}

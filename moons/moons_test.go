package moons_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/fasta/moons"
)

// TestGenerate_Defaults verifies shapes and the ground-truth split for
// the default configuration.
func TestGenerate_Defaults(t *testing.T) {
	ds, err := moons.Generate()
	require.NoError(t, err)

	r, c := ds.Points.Dims()
	assert.Equal(t, moons.DefaultCount, r, "row per observation")
	assert.Equal(t, moons.DefaultDim, c, "column per coordinate")
	require.Len(t, ds.Truth, moons.DefaultCount)

	plus, minus := 0, 0
	for _, label := range ds.Truth {
		switch label {
		case 1:
			plus++
		case -1:
			minus++
		default:
			t.Fatalf("unexpected truth label %d", label)
		}
	}
	assert.Equal(t, moons.DefaultCount/2, plus, "first moon size")
	assert.Equal(t, moons.DefaultCount-moons.DefaultCount/2, minus, "second moon size")
}

// TestGenerate_NoiseZeroIsExactGeometry checks that without jitter the
// second moon lies exactly on the unit circle and the first moon on the
// circle shifted by −(ShiftX, ShiftY).
func TestGenerate_NoiseZeroIsExactGeometry(t *testing.T) {
	ds, err := moons.Generate(moons.WithCount(100), moons.WithNoise(0))
	require.NoError(t, err)

	for i := 50; i < 100; i++ {
		x, y := ds.Points.At(i, 0), ds.Points.At(i, 1)
		assert.InDelta(t, 1.0, x*x+y*y, 1e-12, "second moon stays on the unit circle")
	}
	for i := 0; i < 50; i++ {
		x := ds.Points.At(i, 0) + moons.DefaultShiftX
		y := ds.Points.At(i, 1) + moons.DefaultShiftY
		assert.InDelta(t, 1.0, x*x+y*y, 1e-12, "first moon is the shifted circle")
	}
}

// TestGenerate_Deterministic verifies the seed==0 policy: identical
// options produce identical datasets.
func TestGenerate_Deterministic(t *testing.T) {
	first, err := moons.Generate(moons.WithCount(64))
	require.NoError(t, err)
	second, err := moons.Generate(moons.WithCount(64))
	require.NoError(t, err)

	assert.True(t, mat.Equal(first.Points, second.Points), "same seed must reproduce points exactly")
	assert.Equal(t, first.Truth, second.Truth)
}

// TestGenerate_SeedChangesJitter verifies that distinct seeds move the
// noisy coordinates.
func TestGenerate_SeedChangesJitter(t *testing.T) {
	first, err := moons.Generate(moons.WithCount(64), moons.WithSeed(7))
	require.NoError(t, err)
	second, err := moons.Generate(moons.WithCount(64), moons.WithSeed(8))
	require.NoError(t, err)

	assert.False(t, mat.Equal(first.Points, second.Points), "different seeds must differ")
}

// TestGenerate_HigherDim verifies that extra coordinates carry noise only.
func TestGenerate_HigherDim(t *testing.T) {
	ds, err := moons.Generate(moons.WithCount(32), moons.WithDim(5), moons.WithNoise(0))
	require.NoError(t, err)

	_, c := ds.Points.Dims()
	require.Equal(t, 5, c)
	for i := 0; i < 32; i++ {
		for j := 2; j < 5; j++ {
			assert.Zero(t, ds.Points.At(i, j), "noiseless extra coordinates stay zero")
		}
	}
}

// TestGenerate_ShiftOverride verifies that WithShift moves the first
// moon by exactly the requested offset.
func TestGenerate_ShiftOverride(t *testing.T) {
	ds, err := moons.Generate(moons.WithCount(8), moons.WithNoise(0), moons.WithShift(3, -2))
	require.NoError(t, err)

	// θ=0 for the first point: (cos 0, sin 0) − (3, −2) = (−2, 2).
	assert.InDelta(t, -2.0, ds.Points.At(0, 0), 1e-15)
	assert.InDelta(t, 2.0, ds.Points.At(0, 1), 1e-15)
}

// TestOptionSetters_PanicOnInvalid covers the configuration guard rails.
func TestOptionSetters_PanicOnInvalid(t *testing.T) {
	assert.Panics(t, func() { _, _ = moons.Generate(moons.WithCount(3)) })
	assert.Panics(t, func() { _, _ = moons.Generate(moons.WithDim(1)) })
	assert.Panics(t, func() { _, _ = moons.Generate(moons.WithNoise(-0.1)) })
	assert.Panics(t, func() { _, _ = moons.Generate(moons.WithNoise(math.NaN())) })
	assert.Panics(t, func() { _, _ = moons.Generate(moons.WithShift(math.Inf(1), 0)) })
}

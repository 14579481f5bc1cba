// SPDX-License-Identifier: MIT

// Package plots renders the two figures of the clustering demo: the
// per-variant convergence comparison (normalized residual on a log axis
// against iteration) and the labeled scatter of the recovered clusters.
//
// Output format follows the file extension (.png, .svg, .pdf, ...; see
// gonum plot.Save). Residuals are floored at 1e-16 so a fully converged
// run still draws on the log scale.
package plots

import (
	"errors"

	"gonum.org/v1/plot/vg"

	"github.com/katalvlaran/fasta/fbs"
)

var (
	// ErrNoRuns is returned when there is no non-empty convergence
	// history to draw.
	ErrNoRuns = errors.New("plots: no convergence histories to draw")

	// ErrNoPoints is returned when the scatter input is nil or empty.
	ErrNoPoints = errors.New("plots: no points to draw")

	// ErrDimMismatch is returned when labels do not pair up with points,
	// or points carry fewer than two coordinates.
	ErrDimMismatch = errors.New("plots: labels and coordinates do not line up")
)

// residualFloor clips residuals from below before the log axis; a solved
// run can legitimately reach zero.
const residualFloor = 1e-16

// Canvas sizes of the two figures.
const (
	convWidth    = 8 * vg.Inch
	convHeight   = 5 * vg.Inch
	scatterWidth = 6 * vg.Inch
)

// Series is one labeled convergence history, usually one solver variant.
type Series struct {
	// Name appears in the legend.
	Name string

	// Conv is the history to draw; NormResiduals supplies the Y values.
	Conv *fbs.Convergence
}

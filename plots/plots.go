// SPDX-License-Identifier: MIT

package plots

import (
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
)

// Convergence draws one line per run, Y = normalized residual on a log
// scale, X = iteration number, and saves the figure to path. Runs with an
// empty history are rejected, zero residuals are floored at residualFloor
// so the log axis stays defined.
func Convergence(title string, runs []Series, path string) error {
	if len(runs) == 0 {
		return ErrNoRuns
	}
	for _, run := range runs {
		if run.Conv == nil || len(run.Conv.NormResiduals) == 0 {
			return ErrNoRuns
		}
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "iteration"
	p.Y.Label.Text = "normalized residual"
	p.Y.Scale = plot.LogScale{}
	p.Y.Tick.Marker = plot.LogTicks{Prec: -1}
	p.Legend.Top = true

	for i, run := range runs {
		res := run.Conv.NormResiduals
		xys := make(plotter.XYs, len(res))
		for j, r := range res {
			xys[j] = plotter.XY{X: float64(j + 1), Y: math.Max(r, residualFloor)}
		}
		line, err := plotter.NewLine(xys)
		if err != nil {
			return errors.Wrapf(err, "plots: line %q", run.Name)
		}
		line.Color = plotutil.Color(i)
		line.Dashes = plotutil.Dashes(i)
		p.Add(line)
		p.Legend.Add(run.Name, line)
	}

	return errors.Wrapf(p.Save(convWidth, convHeight, path), "plots: save %q", path)
}

// Clusters draws the first two coordinates of points as a scatter, one
// glyph style per label sign, and saves the figure to path. labels must
// carry one entry per point; negative labels form one class, the rest the
// other.
func Clusters(title string, points *mat.Dense, labels []int, path string) error {
	if points == nil || points.IsEmpty() {
		return ErrNoPoints
	}
	n, c := points.Dims()
	if c < 2 || len(labels) != n {
		return ErrDimMismatch
	}

	var pos, neg plotter.XYs
	for i := 0; i < n; i++ {
		xy := plotter.XY{X: points.At(i, 0), Y: points.At(i, 1)}
		if labels[i] < 0 {
			neg = append(neg, xy)
		} else {
			pos = append(pos, xy)
		}
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"

	// A class can be empty when the labeling collapses; skip it rather
	// than feed the axis an empty range.
	for i, class := range []struct {
		name string
		xys  plotter.XYs
	}{
		{name: "cluster +1", xys: pos},
		{name: "cluster -1", xys: neg},
	} {
		if len(class.xys) == 0 {
			continue
		}
		sc, err := plotter.NewScatter(class.xys)
		if err != nil {
			return errors.Wrapf(err, "plots: scatter %q", class.name)
		}
		sc.GlyphStyle.Color = plotutil.Color(i)
		sc.GlyphStyle.Shape = plotutil.Shape(i)
		p.Add(sc)
		p.Legend.Add(class.name, sc)
	}

	return errors.Wrapf(p.Save(scatterWidth, scatterWidth, path), "plots: save %q", path)
}

package main

import (
	"math"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/fasta/fbs"
	"github.com/katalvlaran/fasta/lasso"
	"github.com/katalvlaran/fasta/maxnorm"
	"github.com/katalvlaran/fasta/moons"
)

// Config bundles everything the demos read from YAML. LoadConfig fills
// it from the defaults first, so a partial file only overrides the keys
// it names.
type Config struct {
	Dataset DatasetConfig `yaml:"dataset"`
	Problem ProblemConfig `yaml:"problem"`
	Solver  SolverConfig  `yaml:"solver"`
	Lasso   LassoConfig   `yaml:"lasso"`
}

// DatasetConfig shapes the two-moons dataset.
type DatasetConfig struct {
	Count  int     `yaml:"count"`
	Dim    int     `yaml:"dim"`
	Noise  float64 `yaml:"noise"`
	ShiftX float64 `yaml:"shift_x"`
	ShiftY float64 `yaml:"shift_y"`
}

// ProblemConfig shapes the max-norm relaxation.
type ProblemConfig struct {
	Mu    float64 `yaml:"mu"`
	Sigma float64 `yaml:"sigma"`
	Delta float64 `yaml:"delta"`
	Rank  int     `yaml:"rank"`
}

// SolverConfig shapes the fbs options shared by both demos.
type SolverConfig struct {
	MaxIters       int     `yaml:"max_iters"`
	Tolerance      float64 `yaml:"tolerance"`
	Window         int     `yaml:"window"`
	StepsizeShrink float64 `yaml:"stepsize_shrink"`
	MaxBacktracks  int     `yaml:"max_backtracks"`
	Backtrack      bool    `yaml:"backtrack"`
	Restart        bool    `yaml:"restart"`
}

// LassoConfig shapes the sparse recovery instance.
type LassoConfig struct {
	M   int     `yaml:"m"`
	N   int     `yaml:"n"`
	Nnz int     `yaml:"nnz"`
	Mu  float64 `yaml:"mu"`
}

// DefaultConfig mirrors the package defaults, plus the canonical
// 200×1000 sparse recovery instance.
func DefaultConfig() *Config {
	return &Config{
		Dataset: DatasetConfig{
			Count:  moons.DefaultCount,
			Dim:    moons.DefaultDim,
			Noise:  moons.DefaultNoise,
			ShiftX: moons.DefaultShiftX,
			ShiftY: moons.DefaultShiftY,
		},
		Problem: ProblemConfig{
			Mu:    maxnorm.DefaultMu,
			Sigma: maxnorm.DefaultSigma,
			Delta: maxnorm.DefaultDelta,
			Rank:  maxnorm.DefaultRank,
		},
		Solver: SolverConfig{
			MaxIters:       fbs.DefaultMaxIters,
			Tolerance:      fbs.DefaultTolerance,
			Window:         fbs.DefaultWindow,
			StepsizeShrink: fbs.DefaultStepsizeShrink,
			MaxBacktracks:  fbs.DefaultMaxBacktracks,
			Backtrack:      true,
			Restart:        true,
		},
		Lasso: LassoConfig{M: 200, N: 1000, Nnz: 10, Mu: 0.1},
	}
}

// LoadConfig reads path over the defaults. An empty path or a missing
// file keeps the defaults; a present file only overrides the keys it
// names. Validation runs on the merged result.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, errors.Wrap(err, "config: read")
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrap(err, "config: parse")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects values the demos cannot run with. The numeric
// packages re-validate at construction; this pass fails fast with the
// config key attached to the package sentinel.
func (c *Config) Validate() error {
	switch {
	case c.Dataset.Count < 4:
		return errors.Wrap(moons.ErrBadCount, "config: dataset.count")
	case c.Dataset.Dim < 2:
		return errors.Wrap(moons.ErrBadDim, "config: dataset.dim")
	case c.Dataset.Noise < 0 || isNonFinite(c.Dataset.Noise):
		return errors.Wrap(moons.ErrBadNoise, "config: dataset.noise")
	case isNonFinite(c.Dataset.ShiftX) || isNonFinite(c.Dataset.ShiftY):
		return errors.Wrap(moons.ErrBadShift, "config: dataset.shift")
	case c.Problem.Mu <= 0 || isNonFinite(c.Problem.Mu):
		return errors.Wrap(maxnorm.ErrBadMu, "config: problem.mu")
	case c.Problem.Sigma <= 0 || isNonFinite(c.Problem.Sigma):
		return errors.Wrap(maxnorm.ErrBadSigma, "config: problem.sigma")
	case isNonFinite(c.Problem.Delta):
		return errors.Wrap(maxnorm.ErrBadDelta, "config: problem.delta")
	case c.Problem.Rank < 1:
		return errors.Wrap(maxnorm.ErrBadRank, "config: problem.rank")
	case c.Solver.MaxIters < 1:
		return errors.Wrap(fbs.ErrBadMaxIters, "config: solver.max_iters")
	case c.Solver.Tolerance <= 0 || isNonFinite(c.Solver.Tolerance):
		return errors.Wrap(fbs.ErrBadTolerance, "config: solver.tolerance")
	case c.Solver.Window < 1:
		return errors.Wrap(fbs.ErrBadWindow, "config: solver.window")
	case c.Solver.StepsizeShrink <= 0 || c.Solver.StepsizeShrink >= 1:
		return errors.Wrap(fbs.ErrBadShrink, "config: solver.stepsize_shrink")
	case c.Solver.MaxBacktracks < 1:
		return errors.Wrap(fbs.ErrBadBacktracks, "config: solver.max_backtracks")
	case c.Lasso.M < 1 || c.Lasso.N < 1 || c.Lasso.Nnz < 1 || c.Lasso.Nnz > c.Lasso.N:
		return errors.Wrap(lasso.ErrBadSize, "config: lasso")
	case c.Lasso.Mu <= 0 || isNonFinite(c.Lasso.Mu):
		return errors.Wrap(lasso.ErrBadMu, "config: lasso.mu")
	}
	return nil
}

// SolverOptions assembles the fbs options for one CLI run. Objectives
// are always recorded since the reports quote them.
func (c *Config) SolverOptions(seed uint64, verbose bool) fbs.Options {
	o := fbs.DefaultOptions()
	o.MaxIters = c.Solver.MaxIters
	o.Tolerance = c.Solver.Tolerance
	o.Window = c.Solver.Window
	o.StepsizeShrink = c.Solver.StepsizeShrink
	o.MaxBacktracks = c.Solver.MaxBacktracks
	o.Backtrack = c.Solver.Backtrack
	o.Restart = c.Solver.Restart
	o.RecordObjective = true
	o.Verbose = verbose
	o.Seed = seed
	return o
}

func isNonFinite(v float64) bool {
	return math.IsNaN(v) || math.IsInf(v, 0)
}

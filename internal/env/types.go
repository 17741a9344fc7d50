package env

import (
	"context"
	"errors"
	"fmt"

	"github.com/sliaskonis/finn-rl/internal/catalog"
	"github.com/sliaskonis/finn-rl/internal/pipeline"
)

// #region errors

// ErrEpisodeDone is returned by Step after the terminal decision; call
// Reset to start a new episode.
var ErrEpisodeDone = errors.New("episode finished, call Reset")

// #endregion errors

// #region pipeline

// Pipeline is the narrow contract the environment needs from the external
// quantization and hardware-compilation service. *pipeline.Client
// satisfies it; tests inject fakes.
type Pipeline interface {
	Describe(ctx context.Context) ([]catalog.NodeDesc, error)
	Restore(ctx context.Context) error
	Quantize(ctx context.Context, strategy []int, positions []int64, splitIndex int) error
	Calibrate(ctx context.Context) error
	Finetune(ctx context.Context) error
	Validate(ctx context.Context) (float64, error)
	CostEvaluate(ctx context.Context, strategy []int, positions []int64, splitIndex int, spec pipeline.EvalSpec) (pipeline.CostReport, error)
}

// #endregion pipeline

// #region config

// Config is the explicit environment configuration. There is no ambient
// state: seed, board, and target selection all live here.
type Config struct {
	MinBit      int
	MaxBit      int
	ClockMHz    float64
	MaxClockMHz float64
	TargetFPS   float64
	Board       string
	OutputDir   string
	Seed        int64
	// EvalMode skips the baseline feasibility probe at construction.
	EvalMode bool
}

// DefaultConfig mirrors the search driver's defaults.
func DefaultConfig() Config {
	return Config{
		MinBit:      1,
		MaxBit:      8,
		ClockMHz:    300,
		MaxClockMHz: 300,
		TargetFPS:   6000,
		Board:       "U250",
		OutputDir:   "build",
	}
}

func (c Config) validate() error {
	if c.MinBit < 1 || c.MaxBit < c.MinBit {
		return fmt.Errorf("invalid bit interval [%d, %d]", c.MinBit, c.MaxBit)
	}
	if c.ClockMHz <= 0 {
		return fmt.Errorf("clock must be positive, got %v MHz", c.ClockMHz)
	}
	if c.TargetFPS <= 0 {
		return fmt.Errorf("target fps must be positive, got %v", c.TargetFPS)
	}
	return nil
}

// #endregion config

// #region info

// Info reports the terminal episode outcome. Strategy is an owned copy.
type Info struct {
	Accuracy         float64
	FPS              float64
	AvgUtil          float64
	MaxUtil          float64
	Reward           float64
	Strategy         []int
	Met              bool
	RepairIterations int
}

// #endregion info

package pipeline

import "github.com/sliaskonis/finn-rl/internal/reward"

// #region types

// EvalSpec fixes the hardware target for a cost evaluation. OutputDir is
// where the pipeline writes its per-layer hardware-configuration record;
// parallel environment instances must each use an isolated directory.
type EvalSpec struct {
	Part      string
	Board     string
	ClockMHz  float64
	OutputDir string
}

// CostReport is the raw outcome of one cost evaluation. Totals are device
// counts, not budgets; safety margins are applied by the caller.
type CostReport struct {
	Cycles     int64
	AvgUtil    float64
	MaxUtil    float64
	Bottleneck int64
	Used       reward.Snapshot
	Totals     reward.Snapshot
}

// #endregion types

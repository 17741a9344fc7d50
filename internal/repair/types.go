package repair

import (
	"context"
	"errors"

	"github.com/sliaskonis/finn-rl/internal/reward"
)

// #region errors

// ErrInfeasibleBaseline is returned when the cost evaluator reports a
// non-positive cycle count: the compiler pipeline itself failed, and no
// strategy can recover from that.
var ErrInfeasibleBaseline = errors.New("cost evaluation returned non-positive cycle count")

// #endregion errors

// #region evaluator

// Report is the outcome of one cost evaluation of a fully specified
// strategy. Available is the budgeted (margin-scaled) resource snapshot,
// Used the measured one; both are fresh per evaluation.
type Report struct {
	Cycles     int64
	AvgUtil    float64
	MaxUtil    float64
	Bottleneck int64 // graph position of the slowest layer, -1 if unknown
	Available  reward.Snapshot
	Used       reward.Snapshot
}

// Evaluator produces a hardware cost report for a candidate strategy.
// Implementations quantize a scratch copy of the model, export it through
// the hardware-description pipeline, and fold it; all of that is blocking
// and side-effecting, so calls must stay strictly sequential.
type Evaluator interface {
	Evaluate(ctx context.Context, strategy []int) (Report, error)
}

// #endregion evaluator

// #region config

// Config carries the throughput constraint for the repair loop.
type Config struct {
	MinBit    int
	ClockMHz  float64
	TargetFPS float64
}

// #endregion config

// #region result

// Result is the final verdict of the repair loop. Strategy is an owned
// copy reflecting any decrements applied; the caller adopts it, the loop
// never hands back an alias of its input. When Met is false the metrics
// are those of the last evaluation performed, not the best ever seen.
type Result struct {
	Strategy   []int
	FPS        float64
	AvgUtil    float64
	MaxUtil    float64
	Available  reward.Snapshot
	Used       reward.Snapshot
	Met        bool
	Iterations int // number of decrements applied
}

// #endregion result

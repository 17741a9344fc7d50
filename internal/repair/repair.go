package repair

import (
	"context"
	"fmt"
	"log"

	"github.com/sliaskonis/finn-rl/internal/catalog"
)

// #region wall

// Wall enforces the throughput floor on a candidate strategy. It evaluates
// the strategy and, while the target fps is unmet, decrements the bit-width
// of the currently widest layer (ties broken toward the highest index) and
// re-evaluates. Each decrement strictly reduces the strategy sum, which is
// bounded below by the per-layer minimums, so the loop is finite.
//
// Wall operates on an owned scratch copy of strategy; the input is never
// mutated. On exhaustion it gives up and returns the last evaluated
// metrics with Met=false; the caller still scores the best-effort result.
func Wall(ctx context.Context, ev Evaluator, strategy []int, bounds []catalog.Bounds, cfg Config) (Result, error) {
	if len(strategy) != len(bounds) {
		return Result{}, fmt.Errorf("strategy has %d entries, bounds %d", len(strategy), len(bounds))
	}

	scratch := make([]int, len(strategy))
	copy(scratch, strategy)

	iterations := 0
	for {
		rep, err := ev.Evaluate(ctx, scratch)
		if err != nil {
			return Result{}, fmt.Errorf("evaluate strategy: %w", err)
		}
		if rep.Cycles <= 0 {
			return Result{}, fmt.Errorf("strategy %v: %w", scratch, ErrInfeasibleBaseline)
		}

		fps := cfg.ClockMHz * 1e6 / float64(rep.Cycles)
		res := Result{
			Strategy:   scratch,
			FPS:        fps,
			AvgUtil:    rep.AvgUtil,
			MaxUtil:    rep.MaxUtil,
			Available:  rep.Available,
			Used:       rep.Used,
			Iterations: iterations,
		}

		if fps >= cfg.TargetFPS {
			res.Met = true
			return res, nil
		}

		idx := widestIndex(scratch)
		if scratch[idx] <= cfg.MinBit || scratch[idx] <= bounds[idx].Lo {
			// The widest layer cannot shrink further: give up with the
			// metrics of this last evaluation.
			log.Printf("[REPAIR] target %.1f fps unreachable, best effort %.1f fps after %d decrements",
				cfg.TargetFPS, fps, iterations)
			return res, nil
		}

		scratch[idx]--
		iterations++
	}
}

// widestIndex returns the index of the highest bit-width, ties broken
// toward the last such layer in strategy order.
func widestIndex(strategy []int) int {
	idx := 0
	for i, b := range strategy {
		if b >= strategy[idx] {
			idx = i
		}
	}
	return idx
}

// #endregion wall

// #region max-throughput

// MaxThroughput probes the best achievable fps by evaluating once with
// every layer at its minimum legal bit-width. No repair runs; a
// non-positive cycle count is fatal. Callers clamp an unreachable target
// down to the returned value.
func MaxThroughput(ctx context.Context, ev Evaluator, cat catalog.Catalog, cfg Config) (float64, error) {
	rep, err := ev.Evaluate(ctx, cat.MinWidths())
	if err != nil {
		return 0, fmt.Errorf("baseline evaluation: %w", err)
	}
	if rep.Cycles <= 0 {
		return 0, fmt.Errorf("baseline cycles = %d: %w", rep.Cycles, ErrInfeasibleBaseline)
	}
	return cfg.ClockMHz * 1e6 / float64(rep.Cycles), nil
}

// #endregion max-throughput

package replay

import (
	"context"
	"fmt"

	"github.com/sliaskonis/finn-rl/internal/repair"
	"github.com/sliaskonis/finn-rl/internal/reward"
)

// #region result
// Result captures the outcome of replaying one recorded episode through
// the repair loop and the reward function.
type Result struct {
	EpisodeID  string
	Strategy   []int // final, post-repair
	FPS        float64
	Met        bool
	Iterations int
	Reward     float64
}

// #endregion result

// #region replay
// Replay re-runs each recorded interaction through the full scoring
// pipeline (repair against the scripted evaluations, then reward)
// entirely offline, without the live pipeline service.
func Replay(ctx context.Context, file FixtureFile) ([]Result, error) {
	cfg := repair.Config{
		MinBit:    file.MinBit,
		ClockMHz:  file.ClockMHz,
		TargetFPS: file.TargetFPS,
	}

	results := make([]Result, 0, len(file.Interactions))
	for _, inter := range file.Interactions {
		fixture := &Fixture{Available: file.Available, Steps: inter.Steps}

		res, err := repair.Wall(ctx, fixture, inter.Strategy, file.Bounds, cfg)
		if err != nil {
			return nil, fmt.Errorf("replay episode %s: %w", inter.EpisodeID, err)
		}

		results = append(results, Result{
			EpisodeID:  inter.EpisodeID,
			Strategy:   res.Strategy,
			FPS:        res.FPS,
			Met:        res.Met,
			Iterations: res.Iterations,
			Reward:     reward.Compute(inter.Accuracy, res.Available, res.Used),
		})
	}
	return results, nil
}

// #endregion replay

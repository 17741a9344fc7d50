package replay

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/sliaskonis/finn-rl/internal/catalog"
	"github.com/sliaskonis/finn-rl/internal/repair"
	"github.com/sliaskonis/finn-rl/internal/reward"
)

// #region types
// FixtureStep is one scripted cost evaluation outcome.
type FixtureStep struct {
	Cycles  int64           `json:"cycles"`
	AvgUtil float64         `json:"avg_util"`
	MaxUtil float64         `json:"max_util"`
	Used    reward.Snapshot `json:"used"`
}

// Interaction is one recorded episode: the proposed strategy, the
// accuracy measured at the time, and the scripted evaluation outcomes
// the repair loop will consume in order.
type Interaction struct {
	EpisodeID string        `json:"episode_id"`
	Strategy  []int         `json:"strategy"`
	Accuracy  float64       `json:"accuracy"`
	Steps     []FixtureStep `json:"steps"`
}

// FixtureFile bundles the recorded interactions with the constraint
// configuration they were captured under.
type FixtureFile struct {
	Available    reward.Snapshot  `json:"available"`
	MinBit       int              `json:"min_bit"`
	ClockMHz     float64          `json:"clock_mhz"`
	TargetFPS    float64          `json:"target_fps"`
	Bounds       []catalog.Bounds `json:"bounds"`
	Interactions []Interaction    `json:"interactions"`
}

// #endregion types

// #region fixture
// Fixture is a scripted cost evaluator: each Evaluate call consumes the
// next step; once the script is exhausted the last step repeats.
type Fixture struct {
	Available reward.Snapshot
	Steps     []FixtureStep
	next      int
}

// Evaluate implements repair.Evaluator from the script.
func (f *Fixture) Evaluate(_ context.Context, _ []int) (repair.Report, error) {
	if len(f.Steps) == 0 {
		return repair.Report{}, errors.New("fixture has no steps")
	}
	step := f.Steps[len(f.Steps)-1]
	if f.next < len(f.Steps) {
		step = f.Steps[f.next]
		f.next++
	}
	return repair.Report{
		Cycles:     step.Cycles,
		AvgUtil:    step.AvgUtil,
		MaxUtil:    step.MaxUtil,
		Bottleneck: -1,
		Available:  f.Available,
		Used:       step.Used,
	}, nil
}

// #endregion fixture

// #region io
// Load reads a fixture file from disk.
func Load(path string) (FixtureFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return FixtureFile{}, fmt.Errorf("read fixture: %w", err)
	}
	var f FixtureFile
	if err := json.Unmarshal(data, &f); err != nil {
		return FixtureFile{}, fmt.Errorf("parse fixture: %w", err)
	}
	return f, nil
}

// Save writes a fixture file to disk.
func Save(path string, f FixtureFile) error {
	data, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal fixture: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write fixture: %w", err)
	}
	return nil
}

// #endregion io

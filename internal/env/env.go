package env

import (
	"context"
	"fmt"
	"log"
	"math"

	"github.com/sliaskonis/finn-rl/internal/catalog"
	"github.com/sliaskonis/finn-rl/internal/fpga"
	"github.com/sliaskonis/finn-rl/internal/pipeline"
	"github.com/sliaskonis/finn-rl/internal/repair"
	"github.com/sliaskonis/finn-rl/internal/reward"
)

// #region env-struct

// Env is the episodic bit-width allocation environment: one decision per
// catalog entry, a feasibility-repaired evaluation on the terminal
// decision, one reward per episode. Strictly sequential; a stalled
// external evaluation stalls the whole controller.
type Env struct {
	pipe  Pipeline
	cfg   Config
	board fpga.Board
	spec  pipeline.EvalSpec

	cat      catalog.Catalog
	features [][]float32

	cursor     int
	strategy   []int
	lastAction int
	done       bool

	targetFPS  float64
	maxFPS     float64
	bestReward float64
}

// #endregion env-struct

// #region constructor

// New builds the environment: board lookup, catalog construction, and,
// outside eval mode, the baseline feasibility probe. An unreachable
// target fps is clamped down to the probed maximum for all episodes.
func New(ctx context.Context, pipe Pipeline, cfg Config) (*Env, error) {
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("env config: %w", err)
	}
	board, err := fpga.Lookup(cfg.Board)
	if err != nil {
		return nil, err
	}

	e := &Env{
		pipe:  pipe,
		cfg:   cfg,
		board: board,
		spec: pipeline.EvalSpec{
			Part:      board.Part,
			Board:     board.Name,
			ClockMHz:  cfg.ClockMHz,
			OutputDir: cfg.OutputDir,
		},
		lastAction: cfg.MaxBit,
		targetFPS:  cfg.TargetFPS,
		bestReward: math.Inf(-1),
	}

	if err := e.rebuild(ctx); err != nil {
		return nil, err
	}

	if !cfg.EvalMode {
		maxFPS, err := repair.MaxThroughput(ctx, e.evaluator(), e.cat, e.repairConfig())
		if err != nil {
			return nil, fmt.Errorf("baseline feasibility probe: %w", err)
		}
		e.maxFPS = maxFPS
		if maxFPS < e.targetFPS {
			log.Printf("[ENV] target %.1f fps unreachable, clamping to probed maximum %.1f fps", e.targetFPS, maxFPS)
			e.targetFPS = maxFPS
		}
	}

	return e, nil
}

// #endregion constructor

// #region rebuild

// rebuild refetches the model description and reconstructs catalog and
// feature matrix. Quantization transforms may restructure the graph, so
// this runs on every reset.
func (e *Env) rebuild(ctx context.Context) error {
	nodes, err := e.pipe.Describe(ctx)
	if err != nil {
		return fmt.Errorf("describe model: %w", err)
	}
	cat, feats, err := catalog.Build(nodes, e.cfg.MinBit, e.cfg.MaxBit)
	if err != nil {
		return err
	}
	e.cat = cat
	e.features = feats
	return nil
}

// #endregion rebuild

// #region reset

// Reset restores the working model and quantizer defaults, rebuilds the
// catalog, and returns the first observation.
func (e *Env) Reset(ctx context.Context) ([]float32, error) {
	if err := e.pipe.Restore(ctx); err != nil {
		return nil, fmt.Errorf("restore model: %w", err)
	}
	if err := e.rebuild(ctx); err != nil {
		return nil, err
	}

	e.cursor = 0
	e.strategy = nil
	e.lastAction = e.cfg.MaxBit
	e.done = false
	return e.observation(), nil
}

// #endregion reset

// #region step

// Step maps the raw action to a bit-width for the current layer and
// advances the cursor. On the terminal layer it runs the feasibility
// repair loop, quantizes, calibrates, fine-tunes and validates the model,
// and scores the episode.
func (e *Env) Step(ctx context.Context, raw float32) ([]float32, float64, bool, Info, error) {
	if e.done {
		return nil, 0, true, Info{}, ErrEpisodeDone
	}

	bit := MapAction(raw, e.cat.Entries[e.cursor].Bounds)
	e.lastAction = bit
	e.strategy = append(e.strategy, bit)

	if e.cursor < e.cat.Len()-1 {
		e.cursor++
		e.features[e.cursor][catalog.FeatPrevAction] = float32(e.lastAction) / float32(e.cfg.MaxBit)
		return e.observation(), 0, false, Info{}, nil
	}

	info, err := e.finish(ctx)
	if err != nil {
		return nil, 0, false, Info{}, err
	}
	e.done = true
	return e.observation(), info.Reward, true, info, nil
}

// finish runs repair, the final quantization pass, and the reward.
func (e *Env) finish(ctx context.Context) (Info, error) {
	log.Printf("[ENV] strategy %v", e.strategy)

	res, err := repair.Wall(ctx, e.evaluator(), e.strategy, e.cat.Bounds(), e.repairConfig())
	if err != nil {
		return Info{}, err
	}
	// Adopt the repaired copy; Wall owns its scratch, no alias comes back.
	e.strategy = res.Strategy
	if res.FPS > e.maxFPS {
		e.maxFPS = res.FPS
	}
	if !res.Met {
		log.Printf("[ENV] infeasible strategy accepted best-effort at %.1f fps (target %.1f)", res.FPS, e.targetFPS)
	}

	if err := e.pipe.Quantize(ctx, e.strategy, e.cat.Positions(), e.cat.NumActs); err != nil {
		return Info{}, err
	}
	if err := e.pipe.Calibrate(ctx); err != nil {
		return Info{}, err
	}
	if err := e.pipe.Finetune(ctx); err != nil {
		return Info{}, err
	}
	acc, err := e.pipe.Validate(ctx)
	if err != nil {
		return Info{}, err
	}

	rew := reward.Compute(acc, res.Available, res.Used)
	if rew > e.bestReward {
		e.bestReward = rew
	}

	strategy := make([]int, len(e.strategy))
	copy(strategy, e.strategy)

	return Info{
		Accuracy:         acc,
		FPS:              res.FPS,
		AvgUtil:          res.AvgUtil,
		MaxUtil:          res.MaxUtil,
		Reward:           rew,
		Strategy:         strategy,
		Met:              res.Met,
		RepairIterations: res.Iterations,
	}, nil
}

// #endregion step

// #region evaluator

// costEvaluator binds the pipeline's cost evaluation to the fixed
// hardware target and applies the safety margins to the reported device
// totals.
type costEvaluator struct {
	pipe      Pipeline
	positions []int64
	split     int
	spec      pipeline.EvalSpec
	board     fpga.Board
}

func (c costEvaluator) Evaluate(ctx context.Context, strategy []int) (repair.Report, error) {
	rep, err := c.pipe.CostEvaluate(ctx, strategy, c.positions, c.split, c.spec)
	if err != nil {
		return repair.Report{}, err
	}
	totals := rep.Totals
	if totals == (reward.Snapshot{}) {
		totals = c.board.Totals
	}
	return repair.Report{
		Cycles:     rep.Cycles,
		AvgUtil:    rep.AvgUtil,
		MaxUtil:    rep.MaxUtil,
		Bottleneck: rep.Bottleneck,
		Available:  c.board.Margins.Apply(totals),
		Used:       rep.Used,
	}, nil
}

func (e *Env) evaluator() repair.Evaluator {
	return costEvaluator{
		pipe:      e.pipe,
		positions: e.cat.Positions(),
		split:     e.cat.NumActs,
		spec:      e.spec,
		board:     e.board,
	}
}

func (e *Env) repairConfig() repair.Config {
	return repair.Config{
		MinBit:    e.cfg.MinBit,
		ClockMHz:  e.cfg.ClockMHz,
		TargetFPS: e.targetFPS,
	}
}

// #endregion evaluator

// #region accessors

// observation returns a copy of the current feature row.
func (e *Env) observation() []float32 {
	obs := make([]float32, catalog.NumFeatures)
	copy(obs, e.features[e.cursor])
	return obs
}

// Catalog returns the current episode's catalog.
func (e *Env) Catalog() catalog.Catalog { return e.cat }

// Strategy returns a copy of the strategy prefix built so far.
func (e *Env) Strategy() []int {
	out := make([]int, len(e.strategy))
	copy(out, e.strategy)
	return out
}

// TargetFPS returns the effective throughput target (possibly clamped by
// the baseline probe).
func (e *Env) TargetFPS() float64 { return e.targetFPS }

// MaxFPS returns the best throughput observed so far.
func (e *Env) MaxFPS() float64 { return e.maxFPS }

// BestReward returns the best episode reward observed so far.
func (e *Env) BestReward() float64 { return e.bestReward }

// #endregion accessors

package env

import (
	"context"
	"errors"
	"math"
	"reflect"
	"testing"

	"github.com/sliaskonis/finn-rl/internal/catalog"
	"github.com/sliaskonis/finn-rl/internal/pipeline"
	"github.com/sliaskonis/finn-rl/internal/repair"
	"github.com/sliaskonis/finn-rl/internal/reward"
)

// fakePipe scripts the external pipeline service.
type fakePipe struct {
	nodes    []catalog.NodeDesc
	cycles   func(strategy []int) int64
	used     reward.Snapshot
	totals   reward.Snapshot
	accuracy float64

	costCalls     [][]int
	restoreCalls  int
	quantized     []int
	quantizeSplit int
	calibrated    int
	finetuned     int
	validated     int
}

func (f *fakePipe) Describe(ctx context.Context) ([]catalog.NodeDesc, error) {
	return f.nodes, nil
}

func (f *fakePipe) Restore(ctx context.Context) error {
	f.restoreCalls++
	return nil
}

func (f *fakePipe) Quantize(ctx context.Context, strategy []int, positions []int64, splitIndex int) error {
	f.quantized = append([]int(nil), strategy...)
	f.quantizeSplit = splitIndex
	return nil
}

func (f *fakePipe) Calibrate(ctx context.Context) error { f.calibrated++; return nil }
func (f *fakePipe) Finetune(ctx context.Context) error  { f.finetuned++; return nil }

func (f *fakePipe) Validate(ctx context.Context) (float64, error) {
	f.validated++
	return f.accuracy, nil
}

func (f *fakePipe) CostEvaluate(ctx context.Context, strategy []int, positions []int64, splitIndex int, spec pipeline.EvalSpec) (pipeline.CostReport, error) {
	f.costCalls = append(f.costCalls, append([]int(nil), strategy...))
	return pipeline.CostReport{
		Cycles:     f.cycles(strategy),
		AvgUtil:    0.5,
		MaxUtil:    0.9,
		Bottleneck: -1,
		Used:       f.used,
		Totals:     f.totals,
	}, nil
}

func testNodes() []catalog.NodeDesc {
	return []catalog.NodeDesc{
		{Position: 1, IsActivation: true, Kind: "relu", Workload: 100},
		{Position: 2, IsActivation: true, Kind: "relu", Workload: 200},
		{Position: 3, IsActivation: false, Kind: "conv2d", Workload: 4000, Params: 450},
	}
}

func testConfig() Config {
	cfg := DefaultConfig()
	cfg.ClockMHz = 100
	cfg.MaxClockMHz = 100
	cfg.TargetFPS = 1000
	cfg.OutputDir = "build-test"
	return cfg
}

func newFakePipe() *fakePipe {
	return &fakePipe{
		nodes:    testNodes(),
		cycles:   func([]int) int64 { return 25000 }, // 4000 fps at 100 MHz
		used:     reward.Snapshot{BRAM: 40, LUT: 35, DSP: 40},
		totals:   reward.Snapshot{BRAM: 100, LUT: 100, DSP: 100},
		accuracy: 100,
	}
}

func TestEpisode_FullPass(t *testing.T) {
	// Two activations with bounds [2,8] and one compute layer [1,8];
	// raw actions [1,1,1] must yield strategy [8,8,8] and terminate on
	// the third decision.
	pipe := newFakePipe()
	e, err := New(context.Background(), pipe, testConfig())
	if err != nil {
		t.Fatalf("new env: %v", err)
	}

	obs, err := e.Reset(context.Background())
	if err != nil {
		t.Fatalf("reset: %v", err)
	}
	if len(obs) != catalog.NumFeatures {
		t.Fatalf("observation width = %d, want %d", len(obs), catalog.NumFeatures)
	}

	for i := 0; i < 2; i++ {
		_, rew, done, _, err := e.Step(context.Background(), 1.0)
		if err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
		if done {
			t.Fatalf("step %d: premature done", i)
		}
		if rew != 0 {
			t.Errorf("step %d: intermediate reward = %v, want 0", i, rew)
		}
	}

	_, rew, done, info, err := e.Step(context.Background(), 1.0)
	if err != nil {
		t.Fatalf("terminal step: %v", err)
	}
	if !done {
		t.Fatal("expected done on third decision")
	}
	if !reflect.DeepEqual(info.Strategy, []int{8, 8, 8}) {
		t.Errorf("strategy = %v, want [8 8 8]", info.Strategy)
	}
	if !info.Met {
		t.Error("expected feasible episode")
	}
	if info.Accuracy != 100 {
		t.Errorf("accuracy = %v, want 100", info.Accuracy)
	}

	// Available = margins applied to reported totals: {80, 70, 80};
	// used {40, 35, 40} puts every term at 0, accuracy contributes 0.25.
	if math.Abs(rew-0.25) > 1e-9 {
		t.Errorf("reward = %v, want 0.25", rew)
	}
	if info.Reward != rew {
		t.Errorf("info reward %v != returned reward %v", info.Reward, rew)
	}

	// Final quantization used the full strategy with the activation split.
	if !reflect.DeepEqual(pipe.quantized, []int{8, 8, 8}) {
		t.Errorf("quantized strategy = %v", pipe.quantized)
	}
	if pipe.quantizeSplit != 2 {
		t.Errorf("quantize split = %d, want 2", pipe.quantizeSplit)
	}
	if pipe.calibrated != 1 || pipe.finetuned != 1 || pipe.validated != 1 {
		t.Errorf("calibrate/finetune/validate = %d/%d/%d, want 1/1/1",
			pipe.calibrated, pipe.finetuned, pipe.validated)
	}
}

func TestStep_AfterDone(t *testing.T) {
	pipe := newFakePipe()
	e, err := New(context.Background(), pipe, testConfig())
	if err != nil {
		t.Fatalf("new env: %v", err)
	}
	if _, err := e.Reset(context.Background()); err != nil {
		t.Fatalf("reset: %v", err)
	}
	for i := 0; i < 3; i++ {
		if _, _, _, _, err := e.Step(context.Background(), 0); err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
	}
	_, _, _, _, err = e.Step(context.Background(), 0)
	if !errors.Is(err, ErrEpisodeDone) {
		t.Errorf("got %v, want ErrEpisodeDone", err)
	}
}

func TestStep_PrevActionFeature(t *testing.T) {
	pipe := newFakePipe()
	e, err := New(context.Background(), pipe, testConfig())
	if err != nil {
		t.Fatalf("new env: %v", err)
	}
	if _, err := e.Reset(context.Background()); err != nil {
		t.Fatalf("reset: %v", err)
	}

	// raw -1 on bounds [2,8] chooses 2; the next observation's last slot
	// must carry 2/8.
	obs, _, _, _, err := e.Step(context.Background(), -1)
	if err != nil {
		t.Fatalf("step: %v", err)
	}
	if got := obs[catalog.FeatPrevAction]; got != 0.25 {
		t.Errorf("prev action feature = %v, want 0.25", got)
	}
}

func TestReset_RestoresPipelineAndState(t *testing.T) {
	pipe := newFakePipe()
	e, err := New(context.Background(), pipe, testConfig())
	if err != nil {
		t.Fatalf("new env: %v", err)
	}

	if _, err := e.Reset(context.Background()); err != nil {
		t.Fatalf("reset: %v", err)
	}
	for i := 0; i < 3; i++ {
		if _, _, _, _, err := e.Step(context.Background(), 1); err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
	}

	if _, err := e.Reset(context.Background()); err != nil {
		t.Fatalf("second reset: %v", err)
	}
	if pipe.restoreCalls != 2 {
		t.Errorf("restore calls = %d, want 2", pipe.restoreCalls)
	}
	if len(e.Strategy()) != 0 {
		t.Errorf("strategy after reset = %v, want empty", e.Strategy())
	}
	if _, _, done, _, err := e.Step(context.Background(), 0); err != nil || done {
		t.Errorf("step after reset: done=%v err=%v", done, err)
	}
}

func TestNew_ClampsUnreachableTarget(t *testing.T) {
	pipe := newFakePipe() // probe yields 4000 fps
	cfg := testConfig()
	cfg.TargetFPS = 6000

	e, err := New(context.Background(), pipe, cfg)
	if err != nil {
		t.Fatalf("new env: %v", err)
	}
	if e.TargetFPS() != 4000 {
		t.Errorf("target fps = %v, want clamped 4000", e.TargetFPS())
	}
	// Probe evaluated the all-minimum strategy [2,2,1].
	if !reflect.DeepEqual(pipe.costCalls[0], []int{2, 2, 1}) {
		t.Errorf("probe strategy = %v, want [2 2 1]", pipe.costCalls[0])
	}
}

func TestNew_BaselineFailureFatal(t *testing.T) {
	pipe := newFakePipe()
	pipe.cycles = func([]int) int64 { return -1 }

	_, err := New(context.Background(), pipe, testConfig())
	if !errors.Is(err, repair.ErrInfeasibleBaseline) {
		t.Errorf("got %v, want ErrInfeasibleBaseline", err)
	}
}

func TestNew_EvalModeSkipsProbe(t *testing.T) {
	pipe := newFakePipe()
	cfg := testConfig()
	cfg.EvalMode = true

	e, err := New(context.Background(), pipe, cfg)
	if err != nil {
		t.Fatalf("new env: %v", err)
	}
	if len(pipe.costCalls) != 0 {
		t.Errorf("probe ran in eval mode: %d cost calls", len(pipe.costCalls))
	}
	if e.TargetFPS() != cfg.TargetFPS {
		t.Errorf("target fps = %v, want unclamped %v", e.TargetFPS(), cfg.TargetFPS)
	}
}

func TestEpisode_RepairAdoptsLoweredStrategy(t *testing.T) {
	pipe := newFakePipe()
	// Infeasible until the strategy sum drops to 12: [8,8,8] needs 12
	// decrements down to [4,4,4].
	pipe.cycles = func(s []int) int64 {
		sum := 0
		for _, b := range s {
			sum += b
		}
		if sum > 12 {
			return 200000 // 500 fps
		}
		return 50000 // 2000 fps
	}

	e, err := New(context.Background(), pipe, testConfig())
	if err != nil {
		t.Fatalf("new env: %v", err)
	}
	if _, err := e.Reset(context.Background()); err != nil {
		t.Fatalf("reset: %v", err)
	}

	var info Info
	var done bool
	for i := 0; i < 3; i++ {
		_, _, done, info, err = e.Step(context.Background(), 1)
		if err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
	}
	if !done {
		t.Fatal("expected terminal episode")
	}
	if !reflect.DeepEqual(info.Strategy, []int{4, 4, 4}) {
		t.Errorf("repaired strategy = %v, want [4 4 4]", info.Strategy)
	}
	if info.RepairIterations != 12 {
		t.Errorf("repair iterations = %d, want 12", info.RepairIterations)
	}
	if !info.Met {
		t.Error("expected repaired strategy to meet target")
	}
	// The final quantization pass used the repaired strategy.
	if !reflect.DeepEqual(pipe.quantized, []int{4, 4, 4}) {
		t.Errorf("quantized strategy = %v, want [4 4 4]", pipe.quantized)
	}
	if !reflect.DeepEqual(e.Strategy(), []int{4, 4, 4}) {
		t.Errorf("env strategy = %v, want [4 4 4]", e.Strategy())
	}
	// Probe at minimum widths and the repaired strategy both hit 2000.
	if e.MaxFPS() != 2000 {
		t.Errorf("max fps = %v, want 2000", e.MaxFPS())
	}
}

func TestBestReward_Tracks(t *testing.T) {
	pipe := newFakePipe()
	e, err := New(context.Background(), pipe, testConfig())
	if err != nil {
		t.Fatalf("new env: %v", err)
	}
	if !math.IsInf(e.BestReward(), -1) {
		t.Errorf("initial best reward = %v, want -inf", e.BestReward())
	}

	if _, err := e.Reset(context.Background()); err != nil {
		t.Fatalf("reset: %v", err)
	}
	for i := 0; i < 3; i++ {
		if _, _, _, _, err := e.Step(context.Background(), 1); err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
	}
	if math.Abs(e.BestReward()-0.25) > 1e-9 {
		t.Errorf("best reward = %v, want 0.25", e.BestReward())
	}
}

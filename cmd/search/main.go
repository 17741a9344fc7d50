package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/sliaskonis/finn-rl/internal/agent"
	"github.com/sliaskonis/finn-rl/internal/env"
	"github.com/sliaskonis/finn-rl/internal/journal"
	"github.com/sliaskonis/finn-rl/internal/logging"
	"github.com/sliaskonis/finn-rl/internal/pipeline"
)

// #region main
func main() {
	defaults := env.DefaultConfig()

	dbPath := flag.String("db", envOr("FINNRL_DB", "finn_rl.db"), "path to the search journal database")
	addr := flag.String("addr", envOr("PIPELINE_ADDR", "localhost:50051"), "pipeline service address")
	episodes := flag.Int("episodes", 100, "number of search episodes to run")
	seed := flag.Int64("seed", 0, "random seed (0 = time-based)")
	agentName := flag.String("agent", "random", "search agent: random, widest, narrowest, jitter")
	board := flag.String("board", defaults.Board, "target board name")
	targetFPS := flag.Float64("target-fps", defaults.TargetFPS, "throughput target in frames per second")
	clockMHz := flag.Float64("clock-mhz", defaults.ClockMHz, "synthesis clock in MHz")
	minBit := flag.Int("min-bit", defaults.MinBit, "minimum bit-width")
	maxBit := flag.Int("max-bit", defaults.MaxBit, "maximum bit-width")
	outputDir := flag.String("output-dir", defaults.OutputDir, "pipeline build output directory")
	evalMode := flag.Bool("eval", false, "skip the baseline feasibility probe")
	flag.Parse()

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	store, err := journal.NewStore(*dbPath)
	if err != nil {
		log.Fatalf("failed to open journal: %v", err)
	}
	defer store.Close()

	client, err := pipeline.NewClient(*addr)
	if err != nil {
		log.Fatalf("failed to connect to pipeline service at %s: %v", *addr, err)
	}
	defer client.Close()

	cfg := env.Config{
		MinBit:      *minBit,
		MaxBit:      *maxBit,
		ClockMHz:    *clockMHz,
		MaxClockMHz: defaults.MaxClockMHz,
		TargetFPS:   *targetFPS,
		Board:       *board,
		OutputDir:   *outputDir,
		Seed:        *seed,
		EvalMode:    *evalMode,
	}

	ctx := context.Background()
	e, err := env.New(ctx, client, cfg)
	if err != nil {
		log.Fatalf("failed to build environment: %v", err)
	}

	actor, err := buildAgent(*agentName, *seed)
	if err != nil {
		log.Fatalf("%v", err)
	}

	fmt.Println("Bit-width search ready.")
	fmt.Printf("  DB: %s | Pipeline: %s | Board: %s\n", *dbPath, *addr, *board)
	fmt.Printf("  Layers: %d | Target: %.1f fps | Agent: %s | Seed: %d\n",
		e.Catalog().Len(), e.TargetFPS(), *agentName, *seed)

	if err := run(ctx, e, actor, store, *episodes); err != nil {
		log.Fatalf("search failed: %v", err)
	}

	best, err := store.Best()
	if err != nil {
		log.Fatalf("failed to read best episode: %v", err)
	}
	fmt.Printf("\nBest episode %s: reward=%.4f accuracy=%.2f fps=%.1f strategy=%v\n",
		best.EpisodeID, best.Reward, best.Accuracy, best.FPS, best.Strategy)
}

// #endregion main

// #region search-loop

// run drives the episode loop: reset, step to the terminal decision,
// journal the outcome, and log the accept or best-effort decision.
func run(ctx context.Context, e *env.Env, actor agent.Agent, store *journal.Store, episodes int) error {
	for ep := 0; ep < episodes; ep++ {
		obs, err := e.Reset(ctx)
		if err != nil {
			return fmt.Errorf("episode %d reset: %w", ep, err)
		}

		var info env.Info
		for done := false; !done; {
			obs, _, done, info, err = e.Step(ctx, actor.Act(obs))
			if err != nil {
				return fmt.Errorf("episode %d step: %w", ep, err)
			}
		}

		rec, err := store.Record(journal.EpisodeRecord{
			Strategy: info.Strategy,
			Accuracy: info.Accuracy,
			FPS:      info.FPS,
			AvgUtil:  info.AvgUtil,
			MaxUtil:  info.MaxUtil,
			Reward:   info.Reward,
			Met:      info.Met,
		})
		if err != nil {
			return fmt.Errorf("episode %d journal: %w", ep, err)
		}

		decision := "accept"
		reason := ""
		if !info.Met {
			decision = "best_effort"
			reason = fmt.Sprintf("target %.1f fps not met at %.1f fps", e.TargetFPS(), info.FPS)
		}
		strategyJSON, _ := json.Marshal(info.Strategy)
		err = logging.LogDecision(store.DB(), logging.DecisionEntry{
			EpisodeID:    rec.EpisodeID,
			Decision:     decision,
			StrategyJSON: string(strategyJSON),
			Reason:       reason,
		})
		if err != nil {
			log.Printf("logging error: %v", err)
		}

		fmt.Printf("[%3d/%d] reward=%.4f accuracy=%.2f fps=%.1f met=%v repairs=%d strategy=%v\n",
			ep+1, episodes, info.Reward, info.Accuracy, info.FPS, info.Met,
			info.RepairIterations, info.Strategy)
	}
	return nil
}

// #endregion search-loop

// #region helpers

func buildAgent(name string, seed int64) (agent.Agent, error) {
	switch name {
	case "random":
		return agent.NewRandom(seed), nil
	case "widest":
		return agent.Constant(1), nil
	case "narrowest":
		return agent.Constant(-1), nil
	case "jitter":
		return agent.NewJitter(0.5, 0.5, seed), nil
	default:
		return nil, fmt.Errorf("unknown agent %q", name)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// #endregion helpers

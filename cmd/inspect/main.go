package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/sliaskonis/finn-rl/internal/journal"
	"github.com/sliaskonis/finn-rl/internal/logging"
	_ "modernc.org/sqlite"
)

// #region main

func main() {
	dbPath := flag.String("db", "", "path to finn_rl.db")
	last := flag.Int("last", 20, "show N most recent episodes")
	episode := flag.String("episode", "", "show single episode detail")
	best := flag.Bool("best", false, "show the best episode detail")
	jsonOut := flag.Bool("json", false, "output as JSON instead of table")
	flag.Parse()

	if *dbPath == "" {
		fmt.Fprintln(os.Stderr, "usage: inspect --db path/to/finn_rl.db [--last N] [--episode id] [--best] [--json]")
		os.Exit(2)
	}

	store, err := journal.NewStore(*dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open db: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	switch {
	case *episode != "":
		err = runDetailMode(store, *episode, *jsonOut)
	case *best:
		err = runBestMode(store, *jsonOut)
	default:
		err = runListMode(store, *last, *jsonOut)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// #endregion main

// #region list-mode

type listRow struct {
	EpisodeID string  `json:"episode_id"`
	Reward    float64 `json:"reward"`
	Accuracy  float64 `json:"accuracy"`
	FPS       float64 `json:"fps"`
	MaxUtil   float64 `json:"max_util"`
	Met       bool    `json:"met"`
	Strategy  []int   `json:"strategy"`
	CreatedAt string  `json:"created_at"`
}

func runListMode(store *journal.Store, last int, jsonOut bool) error {
	records, err := store.List(last)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		fmt.Fprintln(os.Stderr, "no episodes found")
		return nil
	}

	// Store returns DESC, reverse for chronological order
	rows := make([]listRow, len(records))
	for i, rec := range records {
		rows[len(records)-1-i] = listRow{
			EpisodeID: rec.EpisodeID,
			Reward:    rec.Reward,
			Accuracy:  rec.Accuracy,
			FPS:       rec.FPS,
			MaxUtil:   rec.MaxUtil,
			Met:       rec.Met,
			Strategy:  rec.Strategy,
			CreatedAt: rec.CreatedAt.Format("2006-01-02T15:04:05Z"),
		}
	}

	if jsonOut {
		return printJSON(rows)
	}
	return printListTable(rows)
}

func printListTable(rows []listRow) error {
	fmt.Printf("%-10s  %8s  %8s  %10s  %8s  %-5s  %s\n",
		"Episode", "Reward", "Acc", "FPS", "MaxUtil", "Met", "Time")
	fmt.Printf("%-10s+-%8s+-%8s+-%10s+-%8s+-%-5s+-%s\n",
		"----------", "--------", "--------", "----------", "--------", "-----", "--------------------")

	for _, r := range rows {
		fmt.Printf("%-10s  %8.4f  %8.2f  %10.1f  %8.3f  %-5v  %s\n",
			shortID(r.EpisodeID), r.Reward, r.Accuracy, r.FPS, r.MaxUtil, r.Met, r.CreatedAt)
	}

	latest := rows[len(rows)-1]
	fmt.Printf("\nLatest strategy: %v\n", latest.Strategy)
	return nil
}

// #endregion list-mode

// #region detail-mode

type detailOutput struct {
	EpisodeID string           `json:"episode_id"`
	CreatedAt string           `json:"created_at"`
	Reward    float64          `json:"reward"`
	Accuracy  float64          `json:"accuracy"`
	FPS       float64          `json:"fps"`
	AvgUtil   float64          `json:"avg_util"`
	MaxUtil   float64          `json:"max_util"`
	Met       bool             `json:"met"`
	Strategy  []int            `json:"strategy"`
	Decisions []decisionDetail `json:"decisions,omitempty"`
}

type decisionDetail struct {
	Decision string `json:"decision"`
	Strategy string `json:"strategy,omitempty"`
	Reason   string `json:"reason,omitempty"`
}

func runBestMode(store *journal.Store, jsonOut bool) error {
	rec, err := store.Best()
	if err != nil {
		return err
	}
	return printDetail(store, rec, jsonOut)
}

func runDetailMode(store *journal.Store, episodeID string, jsonOut bool) error {
	rec, err := store.Get(episodeID)
	if err != nil {
		return err
	}
	return printDetail(store, rec, jsonOut)
}

func printDetail(store *journal.Store, rec journal.EpisodeRecord, jsonOut bool) error {
	decisions, err := logging.ListDecisions(store.DB(), rec.EpisodeID)
	if err != nil {
		return err
	}

	out := detailOutput{
		EpisodeID: rec.EpisodeID,
		CreatedAt: rec.CreatedAt.Format("2006-01-02T15:04:05Z"),
		Reward:    rec.Reward,
		Accuracy:  rec.Accuracy,
		FPS:       rec.FPS,
		AvgUtil:   rec.AvgUtil,
		MaxUtil:   rec.MaxUtil,
		Met:       rec.Met,
		Strategy:  rec.Strategy,
	}
	for _, d := range decisions {
		out.Decisions = append(out.Decisions, decisionDetail{
			Decision: d.Decision,
			Strategy: d.StrategyJSON,
			Reason:   d.Reason,
		})
	}

	if jsonOut {
		return printJSON(out)
	}

	fmt.Printf("Episode:   %s\n", out.EpisodeID)
	fmt.Printf("Created:   %s\n", out.CreatedAt)
	fmt.Printf("Reward:    %.4f\n", out.Reward)
	fmt.Printf("Accuracy:  %.2f\n", out.Accuracy)
	fmt.Printf("FPS:       %.1f\n", out.FPS)
	fmt.Printf("Avg Util:  %.3f\n", out.AvgUtil)
	fmt.Printf("Max Util:  %.3f\n", out.MaxUtil)
	fmt.Printf("Met:       %v\n", out.Met)
	fmt.Printf("Strategy:  %v\n", out.Strategy)

	if len(out.Decisions) > 0 {
		fmt.Printf("\nDecisions:\n")
		for _, d := range out.Decisions {
			line := fmt.Sprintf("  %-12s %s", d.Decision, d.Strategy)
			if d.Reason != "" {
				line += fmt.Sprintf("  (%s)", d.Reason)
			}
			fmt.Println(line)
		}
	}
	return nil
}

// #endregion detail-mode

// #region output

func printJSON(v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// #endregion output

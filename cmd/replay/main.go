package main

import (
	"context"
	"flag"
	"fmt"
	"math"
	"os"

	"github.com/sliaskonis/finn-rl/internal/journal"
	"github.com/sliaskonis/finn-rl/internal/replay"
	_ "modernc.org/sqlite"
)

// #region main

func main() {
	fixturePath := flag.String("fixture", "", "path to fixture JSON")
	dbPath := flag.String("db", "", "optional journal to compare replayed episodes against")
	flag.Parse()

	if *fixturePath == "" {
		fmt.Fprintln(os.Stderr, "usage: replay --fixture path/to/fixture.json [--db path/to/finn_rl.db]")
		os.Exit(2)
	}

	file, err := replay.Load(*fixturePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load fixture: %v\n", err)
		os.Exit(2)
	}

	results, err := replay.Replay(context.Background(), file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "replay: %v\n", err)
		os.Exit(2)
	}

	if *dbPath == "" {
		printResults(results)
		return
	}
	os.Exit(compareAgainstJournal(*dbPath, results))
}

// #endregion main

// #region output

func printResults(results []replay.Result) {
	fmt.Printf("%-12s| %8s | %10s | %-5s | %5s | %s\n",
		"Episode", "Reward", "FPS", "Met", "Iters", "Strategy")
	fmt.Printf("%-12s+%10s+%12s+%7s+%7s+%s\n",
		"------------", "----------", "------------", "-------", "-------", "------------")
	for _, r := range results {
		fmt.Printf("%-12s| %8.4f | %10.1f | %-5v | %5d | %v\n",
			shortID(r.EpisodeID), r.Reward, r.FPS, r.Met, r.Iterations, r.Strategy)
	}
}

// #endregion output

// #region compare

// compareAgainstJournal checks each replayed episode against the journal
// record with the same ID and returns the process exit code. A replay
// that reproduces every journaled reward and final strategy exits 0.
func compareAgainstJournal(dbPath string, results []replay.Result) int {
	store, err := journal.NewStore(dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open db: %v\n", err)
		return 2
	}
	defer store.Close()

	fmt.Printf("%-12s| %-10s | %-10s | %s\n", "Episode", "Journaled", "Replayed", "Match")
	fmt.Printf("%-12s+%12s+%12s+%s\n", "------------", "------------", "------------", "------")

	matches := 0
	for _, r := range results {
		rec, err := store.Get(r.EpisodeID)
		if err != nil {
			fmt.Printf("%-12s| %-10s | %10.4f | MISSING\n", shortID(r.EpisodeID), "?", r.Reward)
			continue
		}

		match := "DIFF"
		if episodesMatch(rec, r) {
			match = "OK"
			matches++
		}
		fmt.Printf("%-12s| %10.4f | %10.4f | %s\n", shortID(r.EpisodeID), rec.Reward, r.Reward, match)
	}

	diverge := len(results) - matches
	fmt.Printf("\nSummary: %d total, %d match, %d diverge\n", len(results), matches, diverge)
	if diverge > 0 {
		return 1
	}
	return 0
}

func episodesMatch(rec journal.EpisodeRecord, r replay.Result) bool {
	if rec.Met != r.Met || math.Abs(rec.Reward-r.Reward) > 1e-6 {
		return false
	}
	if len(rec.Strategy) != len(r.Strategy) {
		return false
	}
	for i := range rec.Strategy {
		if rec.Strategy[i] != r.Strategy[i] {
			return false
		}
	}
	return true
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// #endregion compare

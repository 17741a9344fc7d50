package logging

import "time"

// #region decision-entry
// DecisionEntry is a single row in the decision_log table: one search
// decision tied to an episode, with the strategy it applied to.
type DecisionEntry struct {
	EpisodeID    string
	Decision     string // "accept" | "best_effort"
	StrategyJSON string
	Reason       string
	CreatedAt    time.Time
}

// #endregion decision-entry

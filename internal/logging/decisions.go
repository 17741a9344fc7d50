package logging

import (
	"database/sql"
	"fmt"
	"time"
)

// #region log-decision
// LogDecision writes a search decision to the decision_log table.
func LogDecision(db *sql.DB, entry DecisionEntry) error {
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}

	_, err := db.Exec(
		`INSERT INTO decision_log (episode_id, decision, strategy, reason, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		entry.EpisodeID,
		entry.Decision,
		nullIfEmpty(entry.StrategyJSON),
		nullIfEmpty(entry.Reason),
		entry.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("log decision: %w", err)
	}
	return nil
}

// #endregion log-decision

// #region list-decisions
// ListDecisions returns the decisions recorded for one episode, oldest first.
func ListDecisions(db *sql.DB, episodeID string) ([]DecisionEntry, error) {
	rows, err := db.Query(
		`SELECT episode_id, decision, strategy, reason, created_at
		 FROM decision_log WHERE episode_id = ? ORDER BY id ASC`, episodeID,
	)
	if err != nil {
		return nil, fmt.Errorf("list decisions: %w", err)
	}
	defer rows.Close()

	var entries []DecisionEntry
	for rows.Next() {
		var e DecisionEntry
		var strategy, reason sql.NullString
		var createdStr string
		if err := rows.Scan(&e.EpisodeID, &e.Decision, &strategy, &reason, &createdStr); err != nil {
			return nil, fmt.Errorf("scan decision: %w", err)
		}
		e.StrategyJSON = strategy.String
		e.Reason = reason.String
		e.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdStr)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// #endregion list-decisions

// #region helpers
func nullIfEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

// #endregion helpers

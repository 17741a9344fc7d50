package journal

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// #region schema
const schema = `
CREATE TABLE IF NOT EXISTS episodes (
	episode_id  TEXT PRIMARY KEY,
	strategy    TEXT NOT NULL,
	accuracy    REAL NOT NULL,
	fps         REAL NOT NULL,
	avg_util    REAL NOT NULL,
	max_util    REAL NOT NULL,
	reward      REAL NOT NULL,
	met         INTEGER NOT NULL,
	created_at  TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS best_episode (
	id          INTEGER PRIMARY KEY CHECK (id = 1),
	episode_id  TEXT NOT NULL,
	FOREIGN KEY (episode_id) REFERENCES episodes(episode_id)
);

CREATE TABLE IF NOT EXISTS decision_log (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	episode_id  TEXT NOT NULL,
	decision    TEXT NOT NULL,
	strategy    TEXT,
	reason      TEXT,
	created_at  TEXT NOT NULL,
	FOREIGN KEY (episode_id) REFERENCES episodes(episode_id)
);
`

// #endregion schema

// #region store-struct
// Store persists the search journal in SQLite.
type Store struct {
	db *sql.DB
}

// #endregion store-struct

// #region constructor
// NewStore opens a SQLite database and runs migrations.
func NewStore(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return nil, fmt.Errorf("pragma: %w", err)
	}
	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		return nil, fmt.Errorf("pragma fk: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &Store{db: db}, nil
}

// #endregion constructor

// #region close
// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// #endregion close

// #region db-accessor
// DB returns the underlying *sql.DB for use by other packages (e.g. logging).
func (s *Store) DB() *sql.DB {
	return s.db
}

// #endregion db-accessor

// #region record
// Record inserts a completed episode and advances the best-episode pointer
// when the reward improves on the current best. An empty EpisodeID gets a
// fresh UUID; the stored record is returned.
func (s *Store) Record(rec EpisodeRecord) (EpisodeRecord, error) {
	if rec.EpisodeID == "" {
		rec.EpisodeID = uuid.New().String()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}

	strategyJSON, err := json.Marshal(rec.Strategy)
	if err != nil {
		return EpisodeRecord{}, fmt.Errorf("marshal strategy: %w", err)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return EpisodeRecord{}, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		`INSERT INTO episodes (episode_id, strategy, accuracy, fps, avg_util, max_util, reward, met, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.EpisodeID, string(strategyJSON), rec.Accuracy, rec.FPS, rec.AvgUtil, rec.MaxUtil,
		rec.Reward, boolToInt(rec.Met), rec.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return EpisodeRecord{}, fmt.Errorf("insert episode: %w", err)
	}

	var bestReward float64
	err = tx.QueryRow(
		`SELECT e.reward FROM best_episode b JOIN episodes e ON e.episode_id = b.episode_id WHERE b.id = 1`,
	).Scan(&bestReward)
	switch {
	case err == sql.ErrNoRows:
		bestReward = rec.Reward - 1 // no best yet, always advance
	case err != nil:
		return EpisodeRecord{}, fmt.Errorf("query best: %w", err)
	}

	if rec.Reward > bestReward {
		_, err = tx.Exec(
			`INSERT INTO best_episode (id, episode_id) VALUES (1, ?)
			 ON CONFLICT(id) DO UPDATE SET episode_id = excluded.episode_id`,
			rec.EpisodeID,
		)
		if err != nil {
			return EpisodeRecord{}, fmt.Errorf("advance best: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return EpisodeRecord{}, fmt.Errorf("commit: %w", err)
	}
	return rec, nil
}

// #endregion record

// #region best
// Best returns the episode with the highest recorded reward.
func (s *Store) Best() (EpisodeRecord, error) {
	var id string
	err := s.db.QueryRow(`SELECT episode_id FROM best_episode WHERE id = 1`).Scan(&id)
	if err != nil {
		return EpisodeRecord{}, fmt.Errorf("get best: %w", err)
	}
	return s.Get(id)
}

// #endregion best

// #region get
// Get retrieves a single episode by ID.
func (s *Store) Get(id string) (EpisodeRecord, error) {
	row := s.db.QueryRow(
		`SELECT episode_id, strategy, accuracy, fps, avg_util, max_util, reward, met, created_at
		 FROM episodes WHERE episode_id = ?`, id,
	)
	rec, err := scanEpisode(row)
	if err != nil {
		return EpisodeRecord{}, fmt.Errorf("get episode %s: %w", id, err)
	}
	return rec, nil
}

// #endregion get

// #region list
// List returns the most recent episodes.
func (s *Store) List(limit int) ([]EpisodeRecord, error) {
	rows, err := s.db.Query(
		`SELECT episode_id, strategy, accuracy, fps, avg_util, max_util, reward, met, created_at
		 FROM episodes ORDER BY created_at DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list episodes: %w", err)
	}
	defer rows.Close()

	var records []EpisodeRecord
	for rows.Next() {
		rec, err := scanEpisode(rows)
		if err != nil {
			return nil, fmt.Errorf("scan episode: %w", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// #endregion list

// #region helpers
type rowScanner interface {
	Scan(dest ...any) error
}

func scanEpisode(row rowScanner) (EpisodeRecord, error) {
	var rec EpisodeRecord
	var strategyJSON string
	var met int
	var createdStr string

	err := row.Scan(&rec.EpisodeID, &strategyJSON, &rec.Accuracy, &rec.FPS,
		&rec.AvgUtil, &rec.MaxUtil, &rec.Reward, &met, &createdStr)
	if err != nil {
		return EpisodeRecord{}, err
	}
	if err := json.Unmarshal([]byte(strategyJSON), &rec.Strategy); err != nil {
		return EpisodeRecord{}, fmt.Errorf("unmarshal strategy: %w", err)
	}
	rec.Met = met != 0
	rec.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdStr)
	return rec, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// #endregion helpers

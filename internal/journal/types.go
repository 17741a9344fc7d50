package journal

import "time"

// #region episode-record

// EpisodeRecord is one completed search episode: the final strategy and
// the metrics the reward was computed from.
type EpisodeRecord struct {
	EpisodeID string
	Strategy  []int
	Accuracy  float64
	FPS       float64
	AvgUtil   float64
	MaxUtil   float64
	Reward    float64
	Met       bool
	CreatedAt time.Time
}

// #endregion episode-record

package database

import "time"

// MatchInfo describes where the stored deliveries came from
type MatchInfo struct {
	Title      string    `json:"title"`
	Source     string    `json:"source"` // imported file path
	ImportedAt time.Time `json:"imported_at"`
	Balls      int       `json:"balls"`
}

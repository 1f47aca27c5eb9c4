package api

import "errors"

// ReplayAPI defines commands from the presentation layer to the replay engine.
//
// Implementations are not safe for concurrent use. Callers serialize access,
// the TUI by running every call on the tview event goroutine.
type ReplayAPI interface {
	// Navigation
	Advance() (Delivery, StateSnapshot, error)
	Seek(ballIndex int) (StateSnapshot, error)
	Reset() StateSnapshot
	Snapshot() StateSnapshot

	// Queries
	CurrentEventDescription() (string, bool)
	Commentary(ballIndex int) (string, error)
	TotalBalls() int
	Deliveries() []Delivery
	RunsPerOver(rng *OverRange) []OverTotal
	RunRate() (float64, error)
	Matchups() []Matchup
}

// Errors surfaced through ReplayAPI. Engine errors match these with errors.Is.
var (
	ErrMatchFinished     = errors.New("match finished")
	ErrOutOfRange        = errors.New("ball index out of range")
	ErrDivisionUndefined = errors.New("run rate undefined: no overs recorded")
)

// Delivery is the presentation view of one recorded ball
type Delivery struct {
	Index    int     `json:"index"` // 0-based position in the match
	Over     float64 `json:"over"`
	Ball     int     `json:"ball"`
	Label    string  `json:"label"` // "over.ball"
	Batsman  string  `json:"batsman"`
	Bowler   string  `json:"bowler"`
	Runs     int     `json:"runs"`
	IsWicket bool    `json:"is_wicket"`
}

// StateSnapshot is handed to the presentation layer after every navigation call
type StateSnapshot struct {
	BallIndex   int         `json:"ball_index"`  // balls consumed so far
	TotalBalls  int         `json:"total_balls"` // balls in the match
	TotalRuns   int         `json:"total_runs"`
	Wickets     int         `json:"wickets"`
	LastEvent   string      `json:"last_event"` // empty when HasEvent is false
	HasEvent    bool        `json:"has_event"`
	OverLabel   string      `json:"over_label"` // "0.0" before the first ball
	LastRuns    int         `json:"last_runs"`  // runs off the just-consumed ball, keys the shot render
	Finished    bool        `json:"finished"`
	RunsPerOver []OverTotal `json:"runs_per_over"` // restricted to consumed balls
}

// OverTotal is the run sum for one over
type OverTotal struct {
	Over  float64 `json:"over"`
	Label string  `json:"label"`
	Runs  int     `json:"runs"`
}

// OverRange selects overs From..To inclusive
type OverRange struct {
	From float64 `json:"from"`
	To   float64 `json:"to"`
}

// Contains reports whether over lies within the range
func (r OverRange) Contains(over float64) bool {
	return over >= r.From && over <= r.To
}

// Matchup aggregates every ball a bowler sent down to one batsman
type Matchup struct {
	Bowler  string `json:"bowler"`
	Batsman string `json:"batsman"`
	Balls   int    `json:"balls"`
	Runs    int    `json:"runs"`
	Wickets int    `json:"wickets"`
}

package replay

import (
	"fmt"

	"crease/internal/log"
	"crease/internal/match"
)

// State is the aggregate view of the match after BallIndex deliveries.
// It is always produced by folding the prefix [0, BallIndex), never patched
// incrementally, so it is the same whichever way the cursor got there.
type State struct {
	BallIndex   int
	TotalBalls  int
	TotalRuns   int
	Wickets     int
	RunsPerOver OverRuns
}

// Finished reports whether every delivery has been consumed
func (s State) Finished() bool {
	return s.BallIndex >= s.TotalBalls
}

// Engine replays an ordered, immutable sequence of deliveries.
// It is not safe for concurrent use.
type Engine struct {
	records []match.BallRecord
	current int
}

// NewEngine copies records so later changes by the caller cannot leak in
func NewEngine(records []match.BallRecord) *Engine {
	owned := make([]match.BallRecord, len(records))
	copy(owned, records)

	log.Debug("replay engine created", "balls", len(owned))
	return &Engine{records: owned}
}

// Len returns the number of deliveries N
func (e *Engine) Len() int {
	return len(e.records)
}

// Index returns the replay cursor, in [0, N]
func (e *Engine) Index() int {
	return e.current
}

// Record returns the delivery at 0-based position i
func (e *Engine) Record(i int) (match.BallRecord, error) {
	if i < 0 || i >= len(e.records) {
		return match.BallRecord{}, fmt.Errorf("record %d: %w", i, ErrOutOfRange)
	}
	return e.records[i], nil
}

// Records returns a copy of every delivery in order
func (e *Engine) Records() []match.BallRecord {
	out := make([]match.BallRecord, len(e.records))
	copy(out, e.records)
	return out
}

// State folds the prefix up to the cursor
func (e *Engine) State() State {
	return e.fold(e.current)
}

// Advance consumes the delivery at the cursor. At the end of the match it
// returns ErrMatchFinished and leaves the cursor where it is.
func (e *Engine) Advance() (match.BallRecord, State, error) {
	if e.current >= len(e.records) {
		return match.BallRecord{}, e.fold(e.current), ErrMatchFinished
	}

	record := e.records[e.current]
	e.current++
	state := e.fold(e.current)

	log.Debug("advanced", "ball", e.current, "label", record.Label(), "runs", state.TotalRuns, "wickets", state.Wickets)
	return record, state, nil
}

// Seek moves the cursor to target and recomputes the state from scratch.
// Targets outside [0, N] are rejected without touching the cursor.
func (e *Engine) Seek(target int) (State, error) {
	if target < 0 || target > len(e.records) {
		return State{}, &OutOfRangeError{Target: target, Total: len(e.records)}
	}

	e.current = target
	state := e.fold(target)

	log.Debug("seek", "ball", target, "runs", state.TotalRuns, "wickets", state.Wickets)
	return state, nil
}

// Reset is Seek(0), which cannot fail
func (e *Engine) Reset() State {
	e.current = 0
	return e.fold(0)
}

// CurrentEventDescription describes the most recently consumed delivery.
// The boolean is false before the first ball.
func (e *Engine) CurrentEventDescription() (string, bool) {
	if e.current == 0 {
		return "", false
	}
	return e.records[e.current-1].Describe(), true
}

// Commentary describes delivery i together with the score once it was bowled
func (e *Engine) Commentary(i int) (string, error) {
	record, err := e.Record(i)
	if err != nil {
		return "", err
	}
	state := e.fold(i + 1)
	return fmt.Sprintf("%s | Score: %d/%d", record.Describe(), state.TotalRuns, state.Wickets), nil
}

// RunsPerOver aggregates the whole match, independent of the cursor.
// A nil range selects every over.
func (e *Engine) RunsPerOver(rng *OverRange) OverRuns {
	totals := newOverRuns()
	for _, record := range e.records {
		if rng != nil && !rng.contains(record.Over) {
			continue
		}
		totals.add(record.Over, record.Runs)
	}
	return totals
}

// RunRate is total match runs divided by the number of distinct overs
func (e *Engine) RunRate() (float64, error) {
	totals := e.RunsPerOver(nil)
	if totals.Len() == 0 {
		return 0, ErrDivisionUndefined
	}
	return float64(totals.Total()) / float64(totals.Len()), nil
}

// Matchups groups the whole match by bowler and batsman, in order of first meeting
func (e *Engine) Matchups() []Matchup {
	type key struct{ bowler, batsman string }

	var out []Matchup
	index := make(map[key]int)
	for _, record := range e.records {
		k := key{record.Bowler, record.Batsman}
		i, ok := index[k]
		if !ok {
			i = len(out)
			index[k] = i
			out = append(out, Matchup{Bowler: record.Bowler, Batsman: record.Batsman})
		}
		out[i].Balls++
		out[i].Runs += record.Runs
		if record.IsWicket {
			out[i].Wickets++
		}
	}
	return out
}

func (e *Engine) fold(prefix int) State {
	state := State{
		BallIndex:   prefix,
		TotalBalls:  len(e.records),
		RunsPerOver: newOverRuns(),
	}
	for _, record := range e.records[:prefix] {
		state.TotalRuns += record.Runs
		if record.IsWicket {
			state.Wickets++
		}
		state.RunsPerOver.add(record.Over, record.Runs)
	}
	return state
}

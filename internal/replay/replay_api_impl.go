package replay

import (
	"crease/internal/api"
	"crease/internal/match"
)

var _ api.ReplayAPI = (*ReplayApiImpl)(nil)

// ReplayApiImpl exposes an Engine through api.ReplayAPI
type ReplayApiImpl struct {
	engine *Engine
}

// NewReplayAPI wraps engine for the presentation layer
func NewReplayAPI(engine *Engine) *ReplayApiImpl {
	return &ReplayApiImpl{engine: engine}
}

func (r *ReplayApiImpl) Advance() (api.Delivery, api.StateSnapshot, error) {
	record, _, err := r.engine.Advance()
	if err != nil {
		return api.Delivery{}, r.Snapshot(), err
	}
	return toDelivery(r.engine.Index()-1, record), r.Snapshot(), nil
}

func (r *ReplayApiImpl) Seek(ballIndex int) (api.StateSnapshot, error) {
	if _, err := r.engine.Seek(ballIndex); err != nil {
		return api.StateSnapshot{}, err
	}
	return r.Snapshot(), nil
}

func (r *ReplayApiImpl) Reset() api.StateSnapshot {
	r.engine.Reset()
	return r.Snapshot()
}

// Snapshot builds the consumption contract from the current engine state
func (r *ReplayApiImpl) Snapshot() api.StateSnapshot {
	state := r.engine.State()
	snapshot := api.StateSnapshot{
		BallIndex:   state.BallIndex,
		TotalBalls:  state.TotalBalls,
		TotalRuns:   state.TotalRuns,
		Wickets:     state.Wickets,
		OverLabel:   "0.0",
		Finished:    state.Finished(),
		RunsPerOver: toOverTotals(state.RunsPerOver),
	}
	if description, ok := r.engine.CurrentEventDescription(); ok {
		last := r.engine.records[state.BallIndex-1]
		snapshot.LastEvent = description
		snapshot.HasEvent = true
		snapshot.OverLabel = last.Label()
		snapshot.LastRuns = last.Runs
	}
	return snapshot
}

func (r *ReplayApiImpl) CurrentEventDescription() (string, bool) {
	return r.engine.CurrentEventDescription()
}

func (r *ReplayApiImpl) Commentary(ballIndex int) (string, error) {
	return r.engine.Commentary(ballIndex)
}

func (r *ReplayApiImpl) TotalBalls() int {
	return r.engine.Len()
}

func (r *ReplayApiImpl) Deliveries() []api.Delivery {
	records := r.engine.Records()
	out := make([]api.Delivery, len(records))
	for i, record := range records {
		out[i] = toDelivery(i, record)
	}
	return out
}

func (r *ReplayApiImpl) RunsPerOver(rng *api.OverRange) []api.OverTotal {
	var filter *OverRange
	if rng != nil {
		filter = &OverRange{From: match.Over(rng.From), To: match.Over(rng.To)}
	}
	return toOverTotals(r.engine.RunsPerOver(filter))
}

func (r *ReplayApiImpl) RunRate() (float64, error) {
	return r.engine.RunRate()
}

func (r *ReplayApiImpl) Matchups() []api.Matchup {
	matchups := r.engine.Matchups()
	out := make([]api.Matchup, len(matchups))
	for i, m := range matchups {
		out[i] = api.Matchup{
			Bowler:  m.Bowler,
			Batsman: m.Batsman,
			Balls:   m.Balls,
			Runs:    m.Runs,
			Wickets: m.Wickets,
		}
	}
	return out
}

func toDelivery(index int, record match.BallRecord) api.Delivery {
	return api.Delivery{
		Index:    index,
		Over:     float64(record.Over),
		Ball:     record.Ball,
		Label:    record.Label(),
		Batsman:  record.Batsman,
		Bowler:   record.Bowler,
		Runs:     record.Runs,
		IsWicket: record.IsWicket,
	}
}

func toOverTotals(totals OverRuns) []api.OverTotal {
	out := make([]api.OverTotal, 0, totals.Len())
	for _, over := range totals.overs {
		out = append(out, api.OverTotal{
			Over:  float64(over),
			Label: over.String(),
			Runs:  totals.runs[over],
		})
	}
	return out
}

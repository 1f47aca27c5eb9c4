package replay

import (
	"testing"

	"crease/internal/api"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReplayAPISnapshotContract(t *testing.T) {
	replayAPI := NewReplayAPI(NewEngine(threeBalls()))

	start := replayAPI.Snapshot()
	assert.Equal(t, api.StateSnapshot{
		BallIndex:   0,
		TotalBalls:  3,
		OverLabel:   "0.0",
		RunsPerOver: []api.OverTotal{},
	}, start)

	delivery, snapshot, err := replayAPI.Advance()
	require.NoError(t, err)
	assert.Equal(t, api.Delivery{
		Index: 0, Over: 0, Ball: 1, Label: "0.1", Batsman: "Rohit", Bowler: "Starc", Runs: 4,
	}, delivery)
	assert.Equal(t, 1, snapshot.BallIndex)
	assert.Equal(t, 4, snapshot.TotalRuns)
	assert.Equal(t, 4, snapshot.LastRuns)
	assert.Equal(t, "0.1", snapshot.OverLabel)
	assert.True(t, snapshot.HasEvent)
	assert.Equal(t, "0.1 → Rohit vs Starc : 4 run(s)", snapshot.LastEvent)
	assert.False(t, snapshot.Finished)

	snapshot, err = replayAPI.Seek(3)
	require.NoError(t, err)
	assert.True(t, snapshot.Finished)
	assert.Equal(t, 6, snapshot.LastRuns)
	assert.Equal(t, []api.OverTotal{{Over: 0, Label: "0", Runs: 10}}, snapshot.RunsPerOver)

	_, finished, err := replayAPI.Advance()
	assert.ErrorIs(t, err, api.ErrMatchFinished)
	assert.Equal(t, snapshot, finished)

	reset := replayAPI.Reset()
	assert.Equal(t, start, reset)
}

func TestReplayAPISeekRejected(t *testing.T) {
	replayAPI := NewReplayAPI(NewEngine(threeBalls()))
	_, err := replayAPI.Seek(1)
	require.NoError(t, err)

	_, err = replayAPI.Seek(-1)
	assert.ErrorIs(t, err, api.ErrOutOfRange)
	assert.Equal(t, 1, replayAPI.Snapshot().BallIndex)
}

func TestReplayAPIQueries(t *testing.T) {
	replayAPI := NewReplayAPI(NewEngine(twoOvers()))

	assert.Equal(t, 7, replayAPI.TotalBalls())
	assert.Len(t, replayAPI.Deliveries(), 7)
	assert.Equal(t, 6, replayAPI.Deliveries()[6].Index)

	totals := replayAPI.RunsPerOver(&api.OverRange{From: 0, To: 1})
	assert.Equal(t, []api.OverTotal{
		{Over: 0, Label: "0", Runs: 7},
		{Over: 1, Label: "1", Runs: 6},
	}, totals)

	rate, err := replayAPI.RunRate()
	require.NoError(t, err)
	assert.InDelta(t, 5.333, rate, 0.001)

	matchups := replayAPI.Matchups()
	require.Len(t, matchups, 5)
	assert.Equal(t, api.Matchup{Bowler: "Starc", Batsman: "Gill", Balls: 2, Runs: 6, Wickets: 1}, matchups[1])

	_, ok := replayAPI.CurrentEventDescription()
	assert.False(t, ok)
}

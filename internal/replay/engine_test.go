package replay

import (
	"errors"
	"math/rand"
	"testing"

	"crease/internal/match"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func threeBalls() []match.BallRecord {
	return []match.BallRecord{
		{Over: 0, Ball: 1, Batsman: "Rohit", Bowler: "Starc", Runs: 4},
		{Over: 0, Ball: 2, Batsman: "Rohit", Bowler: "Starc", Runs: 0, IsWicket: true},
		{Over: 0, Ball: 3, Batsman: "Kohli", Bowler: "Starc", Runs: 6},
	}
}

func twoOvers() []match.BallRecord {
	return []match.BallRecord{
		{Over: 0, Ball: 1, Batsman: "Rohit", Bowler: "Starc", Runs: 1},
		{Over: 0, Ball: 2, Batsman: "Gill", Bowler: "Starc", Runs: 4},
		{Over: 0, Ball: 3, Batsman: "Gill", Bowler: "Starc", Runs: 2, IsWicket: true},
		{Over: 1, Ball: 1, Batsman: "Kohli", Bowler: "Cummins", Runs: 0},
		{Over: 1, Ball: 2, Batsman: "Kohli", Bowler: "Cummins", Runs: 6},
		{Over: 1, Ball: 3, Batsman: "Rohit", Bowler: "Cummins", Runs: 0, IsWicket: true},
		{Over: 2, Ball: 1, Batsman: "Pant", Bowler: "Starc", Runs: 3},
	}
}

// prefixFold is the reference the engine must agree with
func prefixFold(records []match.BallRecord, i int) (runs, wickets int) {
	for _, r := range records[:i] {
		runs += r.Runs
		if r.IsWicket {
			wickets++
		}
	}
	return runs, wickets
}

func TestSeekWorkedExample(t *testing.T) {
	engine := NewEngine(threeBalls())

	state, err := engine.Seek(2)
	require.NoError(t, err)
	assert.Equal(t, 4, state.TotalRuns)
	assert.Equal(t, 1, state.Wickets)

	state, err = engine.Seek(3)
	require.NoError(t, err)
	assert.Equal(t, 10, state.TotalRuns)
	assert.Equal(t, 1, state.Wickets)
}

func TestAdvanceWorkedExample(t *testing.T) {
	engine := NewEngine(threeBalls())
	_, err := engine.Seek(2)
	require.NoError(t, err)

	record, state, err := engine.Advance()
	require.NoError(t, err)
	assert.Equal(t, 3, record.Ball)
	assert.Equal(t, 10, state.TotalRuns)
	assert.Equal(t, 1, state.Wickets)
	assert.Equal(t, 3, engine.Index())

	description, ok := engine.CurrentEventDescription()
	require.True(t, ok)
	assert.Contains(t, description, "6 run(s)")
	assert.Equal(t, "0.3 → Kohli vs Starc : 6 run(s)", description)
}

func TestSeekMatchesPrefixFoldForEveryIndex(t *testing.T) {
	records := twoOvers()
	engine := NewEngine(records)

	for i := 0; i <= len(records); i++ {
		state, err := engine.Seek(i)
		require.NoError(t, err)

		runs, wickets := prefixFold(records, i)
		assert.Equal(t, runs, state.TotalRuns, "runs at %d", i)
		assert.Equal(t, wickets, state.Wickets, "wickets at %d", i)
		assert.Equal(t, i, state.BallIndex)
		assert.Equal(t, runs, state.RunsPerOver.Total())
	}
}

func TestSeekIsOrderIndependent(t *testing.T) {
	records := twoOvers()
	fresh := NewEngine(records)
	want, err := fresh.Seek(4)
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(7))
	engine := NewEngine(records)
	for step := 0; step < 50; step++ {
		switch rng.Intn(3) {
		case 0:
			_, _ = engine.Seek(rng.Intn(len(records) + 1))
		case 1:
			_, _, _ = engine.Advance()
		case 2:
			engine.Reset()
		}
	}

	got, err := engine.Seek(4)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	_, _ = engine.Seek(1)
	_, _ = engine.Seek(7)
	again, err := engine.Seek(4)
	require.NoError(t, err)
	assert.Equal(t, want, again)
}

func TestResetEqualsSeekZero(t *testing.T) {
	engine := NewEngine(twoOvers())
	_, err := engine.Seek(5)
	require.NoError(t, err)

	reset := engine.Reset()
	seek, err := engine.Seek(0)
	require.NoError(t, err)

	assert.Equal(t, seek, reset)
	assert.Equal(t, 0, reset.BallIndex)
	assert.Equal(t, 0, reset.TotalRuns)
	assert.Equal(t, 0, reset.Wickets)
	assert.Equal(t, 0, reset.RunsPerOver.Len())

	_, ok := engine.CurrentEventDescription()
	assert.False(t, ok)
}

func TestAdvanceToEndMatchesSeekEnd(t *testing.T) {
	records := twoOvers()
	engine := NewEngine(records)

	var last State
	for i := 0; i < len(records); i++ {
		record, state, err := engine.Advance()
		require.NoError(t, err)
		assert.Equal(t, records[i], record)
		last = state
	}
	assert.Equal(t, len(records), engine.Index())
	assert.True(t, last.Finished())

	other := NewEngine(records)
	seek, err := other.Seek(len(records))
	require.NoError(t, err)
	assert.Equal(t, seek, last)
}

func TestAdvanceAtEndIsIdempotent(t *testing.T) {
	engine := NewEngine(threeBalls())
	_, err := engine.Seek(3)
	require.NoError(t, err)
	before := engine.State()

	for i := 0; i < 3; i++ {
		_, state, err := engine.Advance()
		assert.ErrorIs(t, err, ErrMatchFinished)
		assert.Equal(t, before, state)
		assert.Equal(t, 3, engine.Index())
	}
}

func TestSeekOutOfRangeLeavesStateUnchanged(t *testing.T) {
	engine := NewEngine(threeBalls())
	_, err := engine.Seek(2)
	require.NoError(t, err)
	before := engine.State()

	for _, target := range []int{-1, 4, 100} {
		_, err := engine.Seek(target)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrOutOfRange))

		var rangeErr *OutOfRangeError
		require.True(t, errors.As(err, &rangeErr))
		assert.Equal(t, target, rangeErr.Target)
		assert.Equal(t, 3, rangeErr.Total)

		assert.Equal(t, before, engine.State())
		assert.Equal(t, 2, engine.Index())
	}
}

func TestWicketDescriptionStillCountsRuns(t *testing.T) {
	engine := NewEngine([]match.BallRecord{
		{Over: 3, Ball: 4, Batsman: "Rohit", Bowler: "Cummins", Runs: 2, IsWicket: true},
	})

	_, state, err := engine.Advance()
	require.NoError(t, err)
	assert.Equal(t, 2, state.TotalRuns)
	assert.Equal(t, 1, state.Wickets)

	description, ok := engine.CurrentEventDescription()
	require.True(t, ok)
	assert.Equal(t, "3.4 → Rohit vs Cummins : WICKET!", description)
}

func TestRunsPerOverAndRunRate(t *testing.T) {
	engine := NewEngine(threeBalls())

	totals := engine.RunsPerOver(nil)
	assert.Equal(t, []match.Over{0}, totals.Overs())
	runs, ok := totals.Runs(0)
	require.True(t, ok)
	assert.Equal(t, 10, runs)
	assert.Equal(t, "{0: 10}", totals.String())

	rate, err := engine.RunRate()
	require.NoError(t, err)
	assert.Equal(t, 10.0, rate)
}

func TestRunsPerOverIgnoresCursor(t *testing.T) {
	engine := NewEngine(twoOvers())
	full := engine.RunsPerOver(nil)

	_, err := engine.Seek(2)
	require.NoError(t, err)
	assert.Equal(t, full, engine.RunsPerOver(nil))
	assert.Equal(t, "{0: 7, 1: 6, 2: 3}", full.String())

	// the snapshot view only covers consumed balls
	assert.Equal(t, "{0: 5}", engine.State().RunsPerOver.String())

	rate, err := engine.RunRate()
	require.NoError(t, err)
	assert.InDelta(t, 16.0/3.0, rate, 1e-9)
}

func TestRunsPerOverRange(t *testing.T) {
	engine := NewEngine(twoOvers())

	totals := engine.RunsPerOver(&OverRange{From: 1, To: 2})
	assert.Equal(t, []match.Over{1, 2}, totals.Overs())
	assert.Equal(t, 9, totals.Total())

	_, ok := totals.Runs(0)
	assert.False(t, ok)

	empty := engine.RunsPerOver(&OverRange{From: 5, To: 9})
	assert.Equal(t, 0, empty.Len())
	assert.Equal(t, "{}", empty.String())
}

func TestRunsPerOverKeepsFirstAppearanceOrder(t *testing.T) {
	engine := NewEngine([]match.BallRecord{
		{Over: 5, Ball: 1, Batsman: "A", Bowler: "X", Runs: 1},
		{Over: 2, Ball: 1, Batsman: "A", Bowler: "Y", Runs: 2},
		{Over: 5, Ball: 2, Batsman: "A", Bowler: "X", Runs: 3},
		{Over: 1.5, Ball: 1, Batsman: "B", Bowler: "Y", Runs: 4},
	})

	totals := engine.RunsPerOver(nil)
	assert.Equal(t, []match.Over{5, 2, 1.5}, totals.Overs())
	assert.Equal(t, "{5: 4, 2: 2, 1.5: 4}", totals.String())
}

func TestEmptyMatch(t *testing.T) {
	engine := NewEngine(nil)

	_, state, err := engine.Advance()
	assert.ErrorIs(t, err, ErrMatchFinished)
	assert.Equal(t, 0, state.BallIndex)
	assert.True(t, state.Finished())

	state, err = engine.Seek(0)
	require.NoError(t, err)
	assert.Equal(t, 0, state.TotalRuns)

	_, err = engine.Seek(1)
	assert.ErrorIs(t, err, ErrOutOfRange)

	_, err = engine.RunRate()
	assert.ErrorIs(t, err, ErrDivisionUndefined)

	assert.Empty(t, engine.Matchups())
	_, ok := engine.CurrentEventDescription()
	assert.False(t, ok)
}

func TestMatchups(t *testing.T) {
	engine := NewEngine(twoOvers())

	assert.Equal(t, []Matchup{
		{Bowler: "Starc", Batsman: "Rohit", Balls: 1, Runs: 1},
		{Bowler: "Starc", Batsman: "Gill", Balls: 2, Runs: 6, Wickets: 1},
		{Bowler: "Cummins", Batsman: "Kohli", Balls: 2, Runs: 6},
		{Bowler: "Cummins", Batsman: "Rohit", Balls: 1, Runs: 0, Wickets: 1},
		{Bowler: "Starc", Batsman: "Pant", Balls: 1, Runs: 3},
	}, engine.Matchups())
}

func TestEngineCopiesRecords(t *testing.T) {
	records := threeBalls()
	engine := NewEngine(records)
	records[0].Runs = 100

	state, err := engine.Seek(1)
	require.NoError(t, err)
	assert.Equal(t, 4, state.TotalRuns)

	copied := engine.Records()
	copied[1].IsWicket = false
	state, err = engine.Seek(2)
	require.NoError(t, err)
	assert.Equal(t, 1, state.Wickets)
}

func TestRecord(t *testing.T) {
	engine := NewEngine(threeBalls())

	record, err := engine.Record(2)
	require.NoError(t, err)
	assert.Equal(t, "Kohli", record.Batsman)

	_, err = engine.Record(3)
	assert.ErrorIs(t, err, ErrOutOfRange)
	_, err = engine.Record(-1)
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestCommentaryIncludesRunningScore(t *testing.T) {
	engine := NewEngine(threeBalls())

	line, err := engine.Commentary(1)
	require.NoError(t, err)
	assert.Equal(t, "0.2 → Rohit vs Starc : WICKET! | Score: 4/1", line)

	line, err = engine.Commentary(2)
	require.NoError(t, err)
	assert.Equal(t, "0.3 → Kohli vs Starc : 6 run(s) | Score: 10/1", line)

	assert.Equal(t, 0, engine.Index())
	_, err = engine.Commentary(3)
	assert.ErrorIs(t, err, ErrOutOfRange)
}

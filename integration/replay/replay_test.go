//go:build integration

package replay

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"testing"

	"crease/integration/setup"
	"crease/internal/api/factory"
	"crease/internal/console"
	"crease/internal/match"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArchivedMatchReplaysLikeTheCSV(t *testing.T) {
	archive := setup.SetupArchive(t)
	records, err := match.LoadFile(archive.DataPath)
	require.NoError(t, err)
	require.Equal(t, len(records), archive.Imported)

	runs, wickets := 0, 0
	for _, r := range records {
		runs += r.Runs
		if r.IsWicket {
			wickets++
		}
	}

	ctx := context.Background()
	fromCSV, err := factory.Open(ctx, factory.Source{DataPath: archive.DataPath})
	require.NoError(t, err)
	fromDB, err := factory.Open(ctx, factory.Source{DatabasePath: archive.TempDBPath})
	require.NoError(t, err)

	assert.Equal(t, fromCSV.Deliveries(), fromDB.Deliveries())
	assert.Equal(t, fromCSV.RunsPerOver(nil), fromDB.RunsPerOver(nil))

	end, err := fromDB.Seek(fromDB.TotalBalls())
	require.NoError(t, err)
	assert.Equal(t, runs, end.TotalRuns)
	assert.Equal(t, wickets, end.Wickets)
	assert.True(t, end.Finished)

	// walking forward must land on the same state as the seek
	fromCSV.Reset()
	for {
		if _, _, err := fromCSV.Advance(); err != nil {
			break
		}
	}
	assert.Equal(t, end, fromCSV.Snapshot())
}

func TestConsoleReplayOfSampleMatch(t *testing.T) {
	archive := setup.SetupArchive(t)
	replay, err := factory.Open(context.Background(), factory.Source{DatabasePath: archive.TempDBPath})
	require.NoError(t, err)

	in := strings.Repeat("\n", replay.TotalBalls())
	var out bytes.Buffer
	require.NoError(t, console.Run(context.Background(), strings.NewReader(in), &out, replay, console.DefaultOptions))

	transcript := out.String()
	assert.Contains(t, transcript, "📊 Match Analytics")
	assert.Contains(t, transcript, "🎮 Manual Replay Mode")
	assert.True(t, strings.HasSuffix(strings.TrimSpace(transcript), "🏁 Match Replay Finished"))

	last := replay.Deliveries()[replay.TotalBalls()-1]
	assert.Contains(t, transcript, fmt.Sprintf("%s → %s vs %s", last.Label, last.Batsman, last.Bowler))
}

package persistence

import (
	"bufio"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/0xT4nj1r0/crowdplex/entities"
)

func TestFilePersistenceAppendsJSONLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rankings.log")
	p := NewFilePersistence(path)
	ctx := context.Background()

	avg := 75
	entries := []entities.RankingLogEntry{
		{RunId: "run-1", MovieId: "m-1", MovieName: "Heat", AverageOccupancy: &avg, SessionCount: 3},
		{RunId: "run-1", MovieId: "m-2", MovieName: "Ronin", SessionCount: 1},
	}
	for _, entry := range entries {
		require.NoError(t, p.WriteRanking(ctx, entry))
	}

	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()

	var read []entities.RankingLogEntry
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		var entry entities.RankingLogEntry
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &entry))
		read = append(read, entry)
	}
	require.Len(t, read, 2)
	assert.Equal(t, 75, *read[0].AverageOccupancy)
	assert.Nil(t, read[1].AverageOccupancy)
}

func TestEntriesFromRankings(t *testing.T) {
	avg := 40
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	rankings := []entities.MovieRanking{
		{
			MovieId:          "m-1",
			Name:             "Heat",
			AverageOccupancy: &avg,
			AvailableCount:   2,
			Sessions:         make([]entities.Session, 4),
		},
	}

	entries := EntriesFromRankings("run-9", now, rankings)

	require.Len(t, entries, 1)
	assert.Equal(t, "run-9", entries[0].RunId)
	assert.Equal(t, 4, entries[0].SessionCount)
	assert.Equal(t, 2, entries[0].AvailableCount)
	assert.Equal(t, now, entries[0].GeneratedAt)
}

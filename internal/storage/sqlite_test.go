package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/light-arcade/internal/core"
)

func openMemory(t *testing.T) *Store {
	t.Helper()
	store, err := Open(MemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenFile(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	require.NoError(t, err, "Open() with nested path")
	defer store.Close()

	_, err = os.Stat(dbPath)
	assert.NoError(t, err, "database file should be created in nested directory")
}

func TestStoreOpenMemory(t *testing.T) {
	for _, path := range []string{"", MemoryPath} {
		store, err := Open(path)
		require.NoError(t, err, "Open(%q)", path)

		// The schema must survive across queries on the single connection
		_, err = store.SaveScore("catch", 1)
		require.NoError(t, err)
		high, err := store.HighScore("catch")
		require.NoError(t, err)
		assert.Equal(t, 1, high)
		require.NoError(t, store.Close())
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openMemory(t)

	for _, score := range []int{100, 50, 200} {
		_, err := store.SaveScore("catch", score)
		require.NoError(t, err)
	}
	_, err := store.SaveScore("gallery", 500)
	require.NoError(t, err)

	scores, err := store.TopScores("catch", 10)
	require.NoError(t, err)
	require.Len(t, scores, 3)
	assert.Equal(t, []int{200, 100, 50}, []int{scores[0].Score, scores[1].Score, scores[2].Score})
	assert.False(t, scores[0].CreatedAt.IsZero(), "created_at should be parsed")

	gallery, err := store.TopScores("gallery", 10)
	require.NoError(t, err)
	assert.Len(t, gallery, 1)
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openMemory(t)
	for i := range 5 {
		store.SaveScore("test", (i+1)*100)
	}

	scores, err := store.TopScores("test", 3)
	require.NoError(t, err)
	require.Len(t, scores, 3)
	assert.Equal(t, 500, scores[0].Score)
	assert.Equal(t, 300, scores[2].Score)

	all, err := store.AllScores("test")
	require.NoError(t, err)
	assert.Len(t, all, 5)
}

func TestStoreHighScore(t *testing.T) {
	store := openMemory(t)

	high, err := store.HighScore("catch")
	require.NoError(t, err)
	assert.Zero(t, high, "empty game")

	store.SaveScore("catch", 100)
	store.SaveScore("catch", 300)
	store.SaveScore("catch", 200)

	high, err = store.HighScore("catch")
	require.NoError(t, err)
	assert.Equal(t, 300, high)
}

func TestStoreClearScores(t *testing.T) {
	store := openMemory(t)

	store.SaveScore("mirror", 100)
	store.SaveScore("gallery", 300)
	_, err := store.RecordLevel(core.LevelResult{GameID: "mirror", LevelID: "01", Mirrors: 1, Bounces: 1})
	require.NoError(t, err)

	require.NoError(t, store.ClearScores("mirror"))

	scores, _ := store.TopScores("mirror", 10)
	assert.Empty(t, scores)
	levels, _ := store.BestLevels("mirror")
	assert.Empty(t, levels, "level results should be cleared too")

	gallery, _ := store.TopScores("gallery", 10)
	assert.Len(t, gallery, 1, "other games should not be affected")
}

func TestStoreBestLevels(t *testing.T) {
	store := openMemory(t)

	results := []core.LevelResult{
		{GameID: "mirror", LevelID: "02", Mirrors: 3, Bounces: 3, Ticks: 900, Points: 700},
		{GameID: "mirror", LevelID: "02", Mirrors: 2, Bounces: 2, Ticks: 1500, Points: 760},
		{GameID: "mirror", LevelID: "02", Mirrors: 2, Bounces: 2, Ticks: 800, Points: 760},
		{GameID: "mirror", LevelID: "01", Mirrors: 1, Bounces: 1, Ticks: 144, Points: 890},
		{GameID: "mirror_random", LevelID: "random", Mirrors: 1, Bounces: 1},
	}
	for _, r := range results {
		_, err := store.RecordLevel(r)
		require.NoError(t, err)
	}

	best, err := store.BestLevels("mirror")
	require.NoError(t, err)
	require.Len(t, best, 2)

	assert.Equal(t, "01", best[0].LevelID)
	assert.Equal(t, 890, best[0].Points)

	assert.Equal(t, "02", best[1].LevelID)
	assert.Equal(t, 2, best[1].Mirrors, "fewest mirrors wins")
	assert.Equal(t, 800, best[1].Ticks, "ties are broken by time")

	solved, err := store.SolvedLevels("mirror")
	require.NoError(t, err)
	assert.Equal(t, map[string]bool{"01": true, "02": true}, solved)
}

func TestStoreGameStats(t *testing.T) {
	store := openMemory(t)

	stats, err := store.GetGameStats("catch")
	require.NoError(t, err)
	assert.Zero(t, stats.GamesCount)
	assert.True(t, stats.LastPlayed.IsZero())

	store.SaveScore("catch", 100)
	store.SaveScore("catch", 300)
	store.SaveScore("gallery", 50)

	stats, err = store.GetGameStats("catch")
	require.NoError(t, err)
	assert.Equal(t, 2, stats.GamesCount)
	assert.Equal(t, 300, stats.HighScore)
	assert.InDelta(t, 200.0, stats.AvgScore, 1e-9)
	assert.EqualValues(t, 400, stats.TotalScore)

	all, err := store.GetAllGamesStats()
	require.NoError(t, err)
	require.Contains(t, all, "gallery")
	assert.Equal(t, 1, all["gallery"].GamesCount)
}

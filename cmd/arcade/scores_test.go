package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/light-arcade/internal/core"
	"github.com/vovakirdan/light-arcade/internal/registry"
	"github.com/vovakirdan/light-arcade/internal/storage"
)

func fileStore(t *testing.T) (*storage.Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scores.db")
	store, err := storage.Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store, path
}

func TestPrintOverview(t *testing.T) {
	store, _ := fileStore(t)

	var buf bytes.Buffer
	require.NoError(t, printOverview(&buf, store))
	assert.Contains(t, buf.String(), "No games played yet.")

	for _, s := range []int{400, 600} {
		_, err := store.SaveScore("catch", s)
		require.NoError(t, err)
	}

	buf.Reset()
	require.NoError(t, printOverview(&buf, store))
	info, ok := registry.Info("catch")
	require.True(t, ok)
	assert.Contains(t, buf.String(), info.Title)
	assert.Regexp(t, `2\s+600\s+500`, buf.String())
	assert.NotContains(t, buf.String(), "Shooting Gallery")
}

func TestPrintGameScores(t *testing.T) {
	store, _ := fileStore(t)
	for i := range 12 {
		_, err := store.SaveScore("mirror", 100*(i+1))
		require.NoError(t, err)
	}
	_, err := store.RecordLevel(core.LevelResult{GameID: "mirror", LevelID: "01", Mirrors: 1, Bounces: 1, Ticks: 120, Points: 890})
	require.NoError(t, err)

	info, ok := registry.Info("mirror")
	require.True(t, ok)

	var buf bytes.Buffer
	top, err := printGameScores(&buf, store, info, false)
	require.NoError(t, err)
	assert.Len(t, top, topScoresLimit)
	assert.Contains(t, buf.String(), "Played 12 times, best 1200, average 650")
	assert.Contains(t, buf.String(), "Best solutions:")
	assert.Contains(t, buf.String(), "2.0s")

	buf.Reset()
	all, err := printGameScores(&buf, store, info, true)
	require.NoError(t, err)
	assert.Len(t, all, 12)
	assert.Equal(t, 100, all[11].Score)
}

func TestScoresClear(t *testing.T) {
	store, path := fileStore(t)
	_, err := store.SaveScore("gallery", 50)
	require.NoError(t, err)
	_, err = store.SaveScore("catch", 300)
	require.NoError(t, err)

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetArgs([]string{"scores", "gallery", "--clear", "--db", path})
	t.Cleanup(func() {
		flagClear = false
		flagDBPath = storage.MemoryPath
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
	})
	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, buf.String(), "Cleared scores for Shooting Gallery")

	high, err := store.HighScore("gallery")
	require.NoError(t, err)
	assert.Equal(t, 0, high)
	high, err = store.HighScore("catch")
	require.NoError(t, err)
	assert.Equal(t, 300, high, "other games keep their scores")
}

func TestScoresUnknownGame(t *testing.T) {
	rootCmd.SetArgs([]string{"scores", "pong"})
	rootCmd.SetErr(&bytes.Buffer{})
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetErr(nil)
	})
	assert.ErrorContains(t, rootCmd.Execute(), `unknown game "pong"`)
}

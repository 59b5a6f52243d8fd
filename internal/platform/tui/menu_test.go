package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/light-arcade/internal/core"
	_ "github.com/vovakirdan/light-arcade/internal/games/catch"
	_ "github.com/vovakirdan/light-arcade/internal/games/gallery"
)

func TestMenuHidesRandomMirror(t *testing.T) {
	store := testStore(t)
	_, err := store.SaveScore("mirror", 890)
	require.NoError(t, err)

	m := NewMenuModel(store, testRuntime())

	var found bool
	for _, item := range m.items {
		assert.NotEqual(t, "mirror_random", item.GameID)
		if item.GameID == "mirror" {
			found = true
			assert.Equal(t, 890, item.HighScore)
		}
	}
	assert.True(t, found, "mirror should be listed")
	assert.Contains(t, m.View(), "(best 890)")
}

func TestMenuSelect(t *testing.T) {
	m := NewMenuModel(nil, testRuntime())
	require.NotEmpty(t, m.items)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	next, cmd := next.(MenuModel).Update(tea.KeyMsg{Type: tea.KeyEnter})
	menu := next.(MenuModel)

	assert.NotNil(t, cmd)
	require.NotNil(t, menu.Selected())
	assert.Equal(t, m.items[1].GameID, menu.Selected().GameID)
}

func TestMirrorMenuModes(t *testing.T) {
	m := NewMirrorModeModel(nil, 80, 24)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	next, _ = next.(MirrorModeModel).Update(tea.KeyMsg{Type: tea.KeyEnter})
	sel := next.(MirrorModeModel).Selected()
	require.NotNil(t, sel)
	assert.True(t, sel.Random)
	assert.Equal(t, "mirror_random", sel.GameID())
}

func TestMirrorMenuLevelSelect(t *testing.T) {
	store := testStore(t)
	_, err := store.RecordLevel(core.LevelResult{GameID: "mirror", LevelID: "02", Mirrors: 2, Bounces: 2})
	require.NoError(t, err)

	var model tea.Model = NewMirrorModeModel(store, 80, 24)
	for _, msg := range []tea.KeyMsg{{Type: tea.KeyDown}, {Type: tea.KeyDown}, {Type: tea.KeyEnter}} {
		model, _ = model.Update(msg)
	}

	view := model.View()
	assert.Contains(t, view, "SELECT LEVEL")
	assert.Contains(t, view, "First Light")
	for _, line := range strings.Split(view, "\n") {
		if strings.Contains(line, " 2. ") {
			assert.True(t, strings.HasSuffix(strings.TrimRight(line, " "), "*"), "solved level marked: %q", line)
		}
	}

	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyDown})
	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyEnter})
	sel := model.(MirrorModeModel).Selected()
	require.NotNil(t, sel)
	assert.False(t, sel.Random)
	assert.Equal(t, 2, sel.Level)
	assert.Equal(t, "mirror", sel.GameID())
}

package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/light-arcade/internal/core"
	"github.com/vovakirdan/light-arcade/internal/games/mirror"
	"github.com/vovakirdan/light-arcade/internal/storage"
)

// MirrorSelection holds the user's choice from the Mirror Maze menu.
type MirrorSelection struct {
	Random bool
	Level  int // 0 = start from the first level, otherwise 1-based
}

// GameID returns the registry ID for the selection.
func (s MirrorSelection) GameID() string {
	if s.Random {
		return "mirror_random"
	}
	return "mirror"
}

var mirrorModes = []string{
	"Campaign",
	"Random Layouts",
	"Select Level...",
}

// MirrorModeModel lets users choose a mode and starting level for Mirror Maze.
type MirrorModeModel struct {
	cursor        int
	levelCursor   int
	inLevelSelect bool
	levels        []string
	solved        map[string]bool
	width         int
	height        int
	keyMapper     *KeyMapper
	selection     MirrorSelection
	choosing      bool
	quitting      bool
	back          bool
}

// NewMirrorModeModel creates a new mode selection model. Levels already
// solved according to store are marked.
func NewMirrorModeModel(store *storage.Store, width, height int) MirrorModeModel {
	m := MirrorModeModel{
		levels:    mirror.LevelNames(),
		solved:    map[string]bool{},
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
		choosing:  true,
	}
	if store != nil {
		if solved, err := store.SolvedLevels("mirror"); err == nil {
			m.solved = solved
		}
	}
	return m
}

// Init initializes the model.
func (m MirrorModeModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m MirrorModeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		action := m.keyMapper.MapKeyToMenuAction(msg)
		if m.inLevelSelect {
			return m.handleLevelSelect(action)
		}
		return m.handleModeSelect(action)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

func (m MirrorModeModel) handleModeSelect(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < len(mirrorModes)-1 {
			m.cursor++
		}
	case MenuActionSelect:
		switch m.cursor {
		case 0:
			m.choosing = false
			m.selection = MirrorSelection{}
			return m, tea.Quit
		case 1:
			m.choosing = false
			m.selection = MirrorSelection{Random: true}
			return m, tea.Quit
		case 2:
			m.inLevelSelect = true
			m.levelCursor = 0
		}
	case MenuActionBack:
		m.back = true
		return m, tea.Quit
	}
	return m, nil
}

func (m MirrorModeModel) handleLevelSelect(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.levelCursor > 0 {
			m.levelCursor--
		}
	case MenuActionDown:
		if m.levelCursor < len(m.levels)-1 {
			m.levelCursor++
		}
	case MenuActionSelect:
		if len(m.levels) == 0 {
			return m, nil
		}
		m.choosing = false
		m.selection = MirrorSelection{Level: m.levelCursor + 1}
		return m, tea.Quit
	case MenuActionBack:
		m.inLevelSelect = false
	}
	return m, nil
}

// View renders the mode or level list.
func (m MirrorModeModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")

	if m.inLevelSelect {
		b.WriteString(centerText("SELECT LEVEL", m.width))
		b.WriteString("\n\n")
		for i, name := range m.levels {
			cursor := "  "
			if i == m.levelCursor {
				cursor = "> "
			}
			mark := " "
			if m.solved[fmt.Sprintf("%02d", i+1)] {
				mark = "*"
			}
			b.WriteString(centerText(fmt.Sprintf("%s%2d. %s %s", cursor, i+1, name, mark), m.width))
			b.WriteString("\n")
		}
	} else {
		b.WriteString(centerText("M I R R O R   M A Z E", m.width))
		b.WriteString("\n\n")
		for i, mode := range mirrorModes {
			cursor := "  "
			if i == m.cursor {
				cursor = "> "
			}
			if i == 0 {
				mode = fmt.Sprintf("%s (%d levels)", mode, len(m.levels))
			}
			b.WriteString(centerText(cursor+mode, m.width))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Select  |  Esc: Back  |  Q: Quit", m.width))
	return b.String()
}

// Selected returns the selection, or nil if still choosing.
func (m MirrorModeModel) Selected() *MirrorSelection {
	if m.choosing {
		return nil
	}
	return &m.selection
}

// IsQuitting returns true if user wants to quit.
func (m MirrorModeModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back.
func (m MirrorModeModel) WantsBack() bool {
	return m.back
}

// RunMirrorModeSelector runs the Mirror Maze menu. A nil selection means
// the user backed out or quit.
func RunMirrorModeSelector(store *storage.Store, cfg core.RuntimeConfig) (*MirrorSelection, error) {
	p := tea.NewProgram(NewMirrorModeModel(store, cfg.ScreenW, cfg.ScreenH), tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return nil, err
	}

	m, ok := finalModel.(MirrorModeModel)
	if !ok || m.IsQuitting() || m.WantsBack() {
		return nil, nil
	}
	return m.Selected(), nil
}

package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/light-arcade/internal/registry"
	"github.com/vovakirdan/light-arcade/internal/storage"
)

// Scoreboard layout constants
const (
	minWidthForSidebar = 80
	sidebarWidth       = 26
	maxScores          = 100
	scoreboardChrome   = 10 // Rows taken by title, stats, borders and help
)

// scoreboardPane selects what the table lists.
type scoreboardPane int

const (
	paneScores scoreboardPane = iota
	paneLevels                // Best solution per puzzle level
)

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	NextGame key.Binding
	PrevGame key.Binding
	Pane     key.Binding
	Back     key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextGame, k.PrevGame, k.Pane, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextGame, k.PrevGame},
		{k.Pane, k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		NextGame: key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab/→", "next game")),
		PrevGame: key.NewBinding(key.WithKeys("shift+tab", "left", "h"), key.WithHelp("S-tab/←", "prev game")),
		Pane:     key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "scores/solutions")),
		Back:     key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc/b", "back")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ScoreboardModel shows the scores and solved puzzle levels of each game.
type ScoreboardModel struct {
	games  []registry.GameInfo
	cursor int
	store  *storage.Store

	played map[string]*storage.GameStats // Every game with at least one score
	stats  *storage.GameStats            // Selected game
	scores []storage.ScoreEntry
	levels []storage.LevelRecord
	pane   scoreboardPane

	table     table.Model
	help      help.Model
	keys      ScoreboardKeyMap
	width     int
	height    int
	quitting  bool
	goingBack bool
}

// NewScoreboardModel creates a scoreboard over every registered game.
// A nil store shows empty tables.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		games:  registry.List(),
		store:  store,
		played: map[string]*storage.GameStats{},
		help:   help.New(),
		keys:   DefaultScoreboardKeyMap(),
		width:  width,
		height: height,
	}

	if store != nil {
		if played, err := store.GetAllGamesStats(); err == nil {
			m.played = played
		} else {
			log.Debug("cannot load game stats", "error", err)
		}
	}

	m.selectGame(0)
	return m
}

// selectGame switches to the game at index i and reloads its records.
func (m *ScoreboardModel) selectGame(i int) {
	m.cursor = i
	m.stats, m.scores, m.levels = nil, nil, nil

	if m.store != nil && len(m.games) > 0 {
		id := m.games[i].ID
		var err error
		if m.stats, err = m.store.GetGameStats(id); err != nil {
			log.Debug("cannot load game stats", "game", id, "error", err)
		}
		if m.scores, err = m.store.TopScores(id, maxScores); err != nil {
			log.Debug("cannot load scores", "game", id, "error", err)
		}
		if m.levels, err = m.store.BestLevels(id); err != nil {
			log.Debug("cannot load level results", "game", id, "error", err)
		}
	}

	if len(m.levels) == 0 {
		m.pane = paneScores
	}
	m.table = m.buildTable()
}

// buildTable builds the table for the current pane. Columns and rows are
// set together since the two panes differ in width.
func (m ScoreboardModel) buildTable() table.Model {
	var columns []table.Column
	var rows []table.Row

	switch m.pane {
	case paneLevels:
		columns = []table.Column{
			{Title: "Level", Width: 8},
			{Title: "Mirrors", Width: 8},
			{Title: "Bounces", Width: 8},
			{Title: "Points", Width: 8},
			{Title: "Solved", Width: 14},
		}
		for _, l := range m.levels {
			rows = append(rows, table.Row{
				l.LevelID,
				strconv.Itoa(l.Mirrors),
				strconv.Itoa(l.Bounces),
				strconv.Itoa(l.Points),
				l.CreatedAt.Format("Jan 02 15:04"),
			})
		}
	default:
		columns = []table.Column{
			{Title: "Rank", Width: 6},
			{Title: "Score", Width: 12},
			{Title: "Date", Width: 14},
		}
		for i, s := range m.scores {
			rows = append(rows, table.Row{
				fmt.Sprintf("#%d", i+1),
				strconv.Itoa(s.Score),
				s.CreatedAt.Format("Jan 02 15:04"),
			})
		}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(max(3, m.height-scoreboardChrome)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextGame):
			if n := len(m.games); n > 0 {
				m.selectGame((m.cursor + 1) % n)
			}
			return m, nil

		case key.Matches(msg, m.keys.PrevGame):
			if n := len(m.games); n > 0 {
				m.selectGame((m.cursor + n - 1) % n)
			}
			return m, nil

		case key.Matches(msg, m.keys.Pane):
			if len(m.levels) > 0 {
				if m.pane == paneScores {
					m.pane = paneLevels
				} else {
					m.pane = paneScores
				}
				m.table = m.buildTable()
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.table = m.buildTable()
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	heading := "HIGH SCORES"
	if m.pane == paneLevels {
		heading = "BEST SOLUTIONS"
	}
	if len(m.games) > 0 {
		heading += " - " + m.games[m.cursor].Title
	}
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	b.WriteString(titleStyle.Render(centerText(heading, m.width)))
	b.WriteString("\n")

	statsStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	b.WriteString(statsStyle.Render(centerText(m.statsLine(), m.width)))
	b.WriteString("\n\n")

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	content := boxStyle.Render(m.renderContent())

	if m.width >= minWidthForSidebar {
		sidebar := boxStyle.Width(sidebarWidth).Render(m.renderSidebar())
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, sidebar, "  ", content))
	} else {
		if len(m.games) > 0 {
			b.WriteString(centerText(fmt.Sprintf("< %s >", m.games[m.cursor].Title), m.width))
			b.WriteString("\n")
		}
		b.WriteString(content)
	}

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// statsLine summarizes the selected game's history.
func (m ScoreboardModel) statsLine() string {
	if m.stats == nil || m.stats.GamesCount == 0 {
		return "No games played yet"
	}

	line := fmt.Sprintf("Played: %d  Best: %d  Average: %.0f  Last: %s",
		m.stats.GamesCount, m.stats.HighScore, m.stats.AvgScore, m.stats.LastPlayed.Format("Jan 02 15:04"))
	if len(m.levels) > 0 {
		line += fmt.Sprintf("  Levels solved: %d", len(m.levels))
	}
	return line
}

// renderSidebar lists the games with how often each was played.
func (m ScoreboardModel) renderSidebar() string {
	var sb strings.Builder
	sb.WriteString("Games\n")
	sb.WriteString(strings.Repeat("─", sidebarWidth-4))

	for i, g := range m.games {
		prefix, style := "  ", lipgloss.NewStyle()
		if i == m.cursor {
			prefix, style = "> ", style.Bold(true).Foreground(lipgloss.Color("229"))
		}

		name := g.Title
		if limit := sidebarWidth - 11; len([]rune(name)) > limit {
			name = string([]rune(name)[:limit-1]) + "."
		}
		if s, ok := m.played[g.ID]; ok {
			name += fmt.Sprintf(" (%d)", s.GamesCount)
		}
		sb.WriteString("\n")
		sb.WriteString(style.Render(prefix + name))
	}
	return sb.String()
}

// renderContent renders the table or an empty message.
func (m ScoreboardModel) renderContent() string {
	if m.pane == paneScores && len(m.scores) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		return emptyStyle.Render("No scores recorded yet.\nPlay a game to set a high score!")
	}
	return m.table.View()
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the scoreboard screen.
// Returns true if user wants to go back to menu, false if quitting.
func RunScoreboard(store *storage.Store, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(NewScoreboardModel(store, width, height), tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(ScoreboardModel)
	if !ok {
		return false, nil
	}
	return m.IsGoingBack(), nil
}

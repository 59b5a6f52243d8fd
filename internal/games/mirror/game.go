// Package mirror implements Mirror Maze: place mirrors so the light beam
// reaches the target. Levels come from an embedded campaign or a seeded
// random generator; the ray itself is traced by the optics package.
package mirror

import (
	"fmt"
	"image"
	"math/rand"

	"github.com/vovakirdan/light-arcade/internal/config"
	"github.com/vovakirdan/light-arcade/internal/core"
	"github.com/vovakirdan/light-arcade/internal/optics"
	"github.com/vovakirdan/light-arcade/internal/registry"
	"github.com/vovakirdan/light-arcade/internal/render"
)

// DefaultMirrorLength is the mirror length used when no config is loaded.
const DefaultMirrorLength = 50.0

// Game states
const (
	StatePlacing = "placing" // Light off, arranging mirrors
	StateLit     = "lit"     // Light on, tracing every tick
	StateCleared = "cleared" // Target gone, waiting for the next level
	StateWin     = "win"     // Campaign finished
	StatePaused  = "paused"
)

// GameMode selects where levels come from.
type GameMode int

const (
	ModeCampaign GameMode = iota // Embedded levels in order
	ModeRandom                   // Endless generated layouts
)

const (
	minScreenW = 40
	minScreenH = 14
)

var (
	configPath         string
	difficultyPreset   config.DifficultyPreset
	selectedStartLevel int
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names are ignored.
func SetDifficultyPreset(preset string) {
	if p, ok := config.ParsePreset(preset); ok && preset != "" {
		difficultyPreset = p
		return
	}
	difficultyPreset = ""
}

// SetStartLevel sets the starting campaign level (1-indexed). 0 means start
// from the beginning.
func SetStartLevel(level int) {
	selectedStartLevel = level
}

// Game implements the Mirror Maze logic.
type Game struct {
	mode GameMode

	// Level
	levels     []Level // Campaign, empty in random mode
	levelIndex int
	stage      int // Levels solved this run
	level      Level
	budget     int // Mirrors allowed on this level
	view       view

	// Pieces and input
	mirrors  []optics.Mirror
	selected int // Index into mirrors, -1 for none
	cursor   optics.Point
	drag     dragMode
	held     bool // Keyboard grab: selected mirror follows the cursor

	// Light
	target targetAnim
	trace  optics.Result
	opts   optics.Options

	// Game state
	state      string
	pausedFrom string
	score      int
	tickCount  int
	levelTicks int
	lastPoints int
	result     *core.LevelResult

	// Configuration
	runtime    core.RuntimeConfig
	cfg        config.MirrorConfig
	difficulty *config.DifficultyManager
	rng        *rand.Rand
	tooSmall   bool
	loadErr    error
}

// New creates a campaign Mirror Maze.
func New() *Game {
	return &Game{mode: ModeCampaign}
}

// NewRandom creates an endless Mirror Maze on generated layouts.
func NewRandom() *Game {
	return &Game{mode: ModeRandom}
}

func init() {
	registry.Register("mirror", func() registry.Game { return New() })
	registry.Register("mirror_random", func() registry.Game { return NewRandom() })
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.mode == ModeRandom {
		return "mirror_random"
	}
	return "mirror"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.mode == ModeRandom {
		return "Mirror Maze (Random)"
	}
	return "Mirror Maze"
}

// Description returns a one-line summary for listings.
func (g *Game) Description() string {
	if g.mode == ModeRandom {
		return "Bend the light around a fresh set of walls every round"
	}
	return "Place mirrors to guide the light beam onto the target"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadMirror(configPath)
	if err != nil {
		cfg = config.DefaultMirrorConfig()
	}
	if difficultyPreset != "" {
		config.ApplyPreset(&cfg.Difficulty, difficultyPreset)
	}
	g.cfg = cfg
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)
	g.rng = rand.New(rand.NewSource(runtime.Seed)) //#nosec G404 -- gameplay randomness

	g.score = 0
	g.stage = 0
	g.tickCount = 0
	g.levelIndex = 0
	g.loadErr = nil

	if g.mode == ModeCampaign {
		g.levels, g.loadErr = Campaign(g.mirrorLength())
		if selectedStartLevel > 0 && selectedStartLevel <= len(g.levels) {
			g.levelIndex = selectedStartLevel - 1
		}
	}

	g.loadLevel()
}

// mirrorLength returns the configured mirror length.
func (g *Game) mirrorLength() float64 {
	if g.cfg.Mirrors.Length > 0 {
		return g.cfg.Mirrors.Length
	}
	return DefaultMirrorLength
}

// loadLevel prepares the current campaign level or generates a random one.
func (g *Game) loadLevel() {
	switch {
	case g.mode == ModeRandom:
		g.level = g.generateLevel()
		g.budget = g.difficulty.MirrorBudget(g.cfg.Mirrors.Budget, g.difficulty.LevelForStage(g.stage))
	case g.loadErr == nil && len(g.levels) > 0:
		g.level = g.levels[g.levelIndex]
		g.budget = g.level.Budget
		if g.budget == 0 {
			g.budget = g.cfg.Mirrors.Budget
		}
	default:
		// No campaign available; fall back to an open field.
		g.level = g.generateLevel()
		g.level.Obstacles = nil
		g.budget = g.cfg.Mirrors.Budget
	}

	g.view = newView(g.level, g.runtime.ScreenW, g.runtime.ScreenH)
	g.tooSmall = g.runtime.ScreenW < max(minScreenW, g.view.cols) ||
		g.runtime.ScreenH < max(minScreenH, g.view.rows+hudRows)
	g.opts = g.level.TraceOptions(g.cfg.Tracer.MaxBounces, g.cfg.Tracer.RayLength)

	g.mirrors = nil
	g.selected = -1
	g.drag = dragNone
	g.held = false
	g.cursor = optics.Pt(g.level.Width/2, g.level.Height/2)
	g.target = newTargetAnim(g.cfg.Target.Frames, g.cfg.Target.FrameTicks)
	g.trace = optics.Result{}
	g.levelTicks = 0
	g.lastPoints = 0
	g.state = StatePlacing
}

// generateLevel builds a random layout sized to the screen.
func (g *Game) generateLevel() Level {
	w, h := fieldSize(g.runtime.ScreenW, g.runtime.ScreenH)
	if w <= 0 || h <= 0 {
		w, h = 800, 440
	}
	level := g.difficulty.LevelForStage(g.stage)
	count := g.difficulty.ObstacleCount(RandomObstacleCount(g.rng, g.cfg.Random, w, h), level)
	lvl := RandomLevel(g.rng, w, h, g.cfg.Random, count, g.cfg.Target.Radius)
	lvl.Name = fmt.Sprintf("Random %d", g.stage+1)
	return lvl
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.result = nil

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionRestart) {
		switch {
		case g.state == StateWin:
			g.Reset(g.runtime)
		case g.state == StatePlacing || g.state == StateLit:
			g.restartLevel()
		}
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		switch g.state {
		case StatePaused:
			g.state = g.pausedFrom
		case StatePlacing, StateLit:
			g.pausedFrom = g.state
			g.state = StatePaused
		}
	}

	switch g.state {
	case StatePaused, StateWin:
		return core.StepResult{State: g.State()}
	case StateCleared:
		if in.Has(core.ActionConfirm) || in.Has(core.ActionFire) {
			g.nextLevel()
		}
		return core.StepResult{State: g.State()}
	}

	g.tickCount++
	g.levelTicks++

	g.handleInput(in)

	if in.Has(core.ActionConfirm) && g.state == StatePlacing {
		g.state = StateLit
		g.target.start()
	}

	if g.state == StateLit {
		g.updateLight()
	}

	return core.StepResult{State: g.State(), Cleared: g.result}
}

// updateLight animates the target and retraces the beam.
func (g *Game) updateLight() {
	g.target.advance()

	if g.target.phase == TargetGone {
		g.finishLevel()
		return
	}

	g.trace = optics.Trace(g.level.Scene(g.mirrors, g.target.traceable()), g.opts)
	if g.trace.Outcome == optics.HitTarget && g.target.hit() {
		g.scoreHit()
	}
}

// scoreHit awards points for the winning arrangement.
func (g *Game) scoreHit() {
	s := g.cfg.Scoring
	points := s.LevelPoints - s.MirrorPenalty*len(g.mirrors) - s.BouncePenalty*g.trace.Bounces
	points = max(points, s.MinPoints)

	g.score += points
	g.lastPoints = points
	g.result = &core.LevelResult{
		GameID:  g.ID(),
		LevelID: g.level.ID,
		Mirrors: len(g.mirrors),
		Bounces: g.trace.Bounces,
		Ticks:   g.levelTicks,
		Points:  points,
	}
}

// finishLevel runs once the target has faded out.
func (g *Game) finishLevel() {
	g.stage++
	g.drag = dragNone
	g.held = false

	if g.mode == ModeCampaign && g.levelIndex >= len(g.levels)-1 {
		g.state = StateWin
		return
	}
	g.state = StateCleared
}

// nextLevel moves on after a cleared level.
func (g *Game) nextLevel() {
	if g.mode == ModeCampaign {
		g.levelIndex++
	}
	g.loadLevel()
}

// restartLevel clears every placed mirror; random mode rolls a new layout.
func (g *Game) restartLevel() {
	if g.mode == ModeRandom {
		g.loadLevel()
		return
	}
	g.mirrors = nil
	g.selected = -1
	g.drag = dragNone
	g.held = false
	g.target = newTargetAnim(g.cfg.Target.Frames, g.cfg.Target.FrameTicks)
	g.trace = optics.Result{}
	g.levelTicks = 0
	g.state = StatePlacing
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.state == StateWin,
		Paused:   g.state == StatePaused,
	}
}

// Level returns the level being played.
func (g *Game) Level() Level {
	return g.level
}

// Mirrors returns a copy of the placed mirrors.
func (g *Game) Mirrors() []optics.Mirror {
	return append([]optics.Mirror(nil), g.mirrors...)
}

// ExportImage draws the current level, mirrors and beam at world scale.
func (g *Game) ExportImage() image.Image {
	scene := g.level.Scene(g.mirrors, g.target.shown())
	v := render.View{Width: g.level.Width, Height: g.level.Height}
	return v.Scene(scene, g.trace)
}

// Package catch implements Red Packet Catch: move the plate to catch
// falling red packets and dodge the homework, which freezes the plate.
package catch

import (
	"fmt"

	"github.com/vovakirdan/light-arcade/internal/config"
	"github.com/vovakirdan/light-arcade/internal/core"
	"github.com/vovakirdan/light-arcade/internal/registry"
)

// Visual characters for rendering
const (
	PlateChar    = '▀'
	FrozenChar   = '▒'
	PacketChar   = '$'
	HomeworkChar = '▤'
)

// Game states
const (
	StateReady    = "ready"
	StatePlaying  = "playing"
	StatePaused   = "paused"
	StateGameOver = "gameover"
)

const (
	hudRows    = 2
	minScreenW = 30
	minScreenH = 12
)

var (
	configPath       string
	difficultyPreset config.DifficultyPreset
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

// Game implements the catch game logic.
type Game struct {
	plateX      float64 // Left edge of the plate
	plateY      int
	plateWidth  int
	items       *ItemManager
	frozenTicks int
	caught      int
	score       int
	state       string
	tickCount   int
	tooSmall    bool

	runtime    core.RuntimeConfig
	cfg        config.CatchConfig
	difficulty *config.DifficultyManager
}

// New creates a new catch game instance.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("catch", func() registry.Game { return New() })
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "catch"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Red Packet Catch"
}

// Description returns a one-line summary for listings.
func (g *Game) Description() string {
	return "Catch red packets for 60 seconds, dodge the homework"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadCatch(configPath)
	if err != nil {
		cfg = config.DefaultCatchConfig()
	}
	if difficultyPreset != "" {
		config.ApplyPreset(&cfg.Difficulty, difficultyPreset)
	}
	g.cfg = cfg
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)

	g.tooSmall = runtime.ScreenW < minScreenW || runtime.ScreenH < minScreenH

	g.plateWidth = min(cfg.Plate.Width, max(1, runtime.ScreenW-2))
	g.plateX = float64(runtime.ScreenW-g.plateWidth) / 2
	g.plateY = runtime.ScreenH - 1 - cfg.Plate.BottomInset
	g.frozenTicks = 0
	g.caught = 0
	g.score = 0
	g.tickCount = 0
	g.state = StateReady

	if g.items == nil {
		g.items = NewItemManager(runtime.Seed, runtime.ScreenW, runtime.ScreenH, hudRows, &g.cfg, g.difficulty)
	} else {
		g.items.screenW, g.items.screenH = runtime.ScreenW, runtime.ScreenH
		g.items.cfg, g.items.difficulty = &g.cfg, g.difficulty
		g.items.Reset(runtime.Seed)
	}
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionRestart) && g.state == StateGameOver {
		g.Reset(g.runtime)
		return core.StepResult{State: g.State()}
	}

	switch g.state {
	case StateReady:
		if in.Has(core.ActionFire) || in.Has(core.ActionConfirm) {
			g.state = StatePlaying
		}
		return core.StepResult{State: g.State()}
	case StateGameOver:
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		if g.state == StatePaused {
			g.state = StatePlaying
		} else {
			g.state = StatePaused
		}
	}
	if g.state == StatePaused {
		return core.StepResult{State: g.State()}
	}

	g.tickCount++
	if g.tickCount >= g.cfg.Gameplay.DurationTicks {
		g.state = StateGameOver
		return core.StepResult{State: g.State()}
	}

	if g.frozenTicks > 0 {
		g.frozenTicks--
	} else {
		g.movePlate(in)
	}

	g.items.Update(g.difficulty.Level(g.score, g.tickCount))

	if g.frozenTicks == 0 {
		g.collect()
	}

	return core.StepResult{State: g.State()}
}

// movePlate applies keyboard and pointer movement.
func (g *Game) movePlate(in core.InputFrame) {
	if in.Has(core.ActionLeft) {
		g.plateX -= g.cfg.Plate.Speed
	}
	if in.Has(core.ActionRight) {
		g.plateX += g.cfg.Plate.Speed
	}
	if ev, ok := in.LastPointer(); ok && ev.Kind != core.PointerWheelUp && ev.Kind != core.PointerWheelDown {
		g.plateX = float64(ev.X) - float64(g.plateWidth)/2
	}

	maxX := float64(g.runtime.ScreenW - g.plateWidth)
	g.plateX = max(0, min(maxX, g.plateX))
}

// collect scores every item touching the plate.
func (g *Game) collect() {
	for _, it := range g.items.Collect(g.plateRect()) {
		switch it.Kind {
		case KindPacket:
			g.score += g.cfg.Gameplay.PacketPoints
			g.caught++
		case KindHomework:
			g.frozenTicks = g.cfg.Gameplay.FreezeTicks
		}
	}
}

func (g *Game) plateRect() core.Rect {
	return core.NewRect(int(g.plateX), g.plateY, g.plateWidth, 1)
}

// TimeLeft returns the remaining round time in ticks.
func (g *Game) TimeLeft() int {
	return max(0, g.cfg.Gameplay.DurationTicks-g.tickCount)
}

// Frozen reports whether the plate is frozen.
func (g *Game) Frozen() bool {
	return g.frozenTicks > 0
}

// Render draws the current game state.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	tickRate := max(1, g.runtime.TickRate)
	hud := fmt.Sprintf(" Red Packet Catch  Score: %d  Caught: %d  Time: %ds", g.score, g.caught, (g.TimeLeft()+tickRate-1)/tickRate)
	dst.DrawText(0, 0, hud)
	dst.DrawHLine(0, 1, dst.Width(), '─')

	if g.tooSmall {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	for _, it := range g.items.Items() {
		glyph, color := PacketChar, core.ColorBrightRed
		if it.Kind == KindHomework {
			glyph, color = HomeworkChar, core.ColorBlue
		}
		r := it.Rect()
		for dx := range ItemWidth {
			dst.SetColored(r.X+dx, r.Y, glyph, color)
		}
	}

	glyph, color := PlateChar, core.ColorYellow
	if g.Frozen() {
		glyph, color = FrozenChar, core.ColorBrightCyan
	}
	pr := g.plateRect()
	dst.DrawRectColored(pr, glyph, color)

	switch g.state {
	case StateReady:
		g.renderOverlay(dst, "Red Packet Catch", "Press Space to start")
	case StatePaused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	case StateGameOver:
		g.renderOverlay(dst, "Time's up!", fmt.Sprintf("Score: %d  |  Press R to restart", g.score))
	}
}

// renderOverlay draws a centered message box.
func (g *Game) renderOverlay(dst *core.Screen, title, subtitle string) {
	boxW := max(len(title), len(subtitle)) + 4
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-5)/2, boxW, 5)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	dst.DrawTextCentered(box.Y+1, title)
	dst.DrawTextCentered(box.Y+3, subtitle)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.state == StateGameOver,
		Paused:   g.state == StatePaused,
	}
}

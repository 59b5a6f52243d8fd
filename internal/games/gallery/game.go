// Package gallery implements a shooting gallery: aim the cannon and knock
// the flying saucers out of the sky before the shells run out.
package gallery

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/vovakirdan/light-arcade/internal/config"
	"github.com/vovakirdan/light-arcade/internal/core"
	"github.com/vovakirdan/light-arcade/internal/registry"
)

// Visual characters for rendering
const (
	ShellChar     = '•'
	ExplosionChar = '✶'
	BaseText      = "▄███▄"
)

// Game states
const (
	StatePlaying  = "playing"
	StatePaused   = "paused"
	StateGameOver = "gameover"
	StateWin      = "win"
)

const (
	hudRows         = 2
	minScreenW      = 40
	minScreenH      = 16
	messageTicks    = 120
	explosionTicks  = 16
	defaultShells   = 10
	targetGlyphs    = "<O>"
	fallingGlyphs   = "<x>"
	cannonBaseInset = 2
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

// Game implements the shooting gallery logic.
type Game struct {
	cannon     Cannon
	shell      *Shell // At most one shell in flight
	targets    []Target
	explosions []Explosion

	level     int // 1-based
	shells    int
	score     int
	state     string
	message   string
	msgTicks  int
	tickCount int
	top, mid  int // Playfield top row and the lowest row targets fly in
	tooSmall  bool

	runtime    core.RuntimeConfig
	cfg        config.GalleryConfig
	difficulty *config.DifficultyManager
	rng        *rand.Rand
}

// New creates a new shooting gallery instance.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("gallery", func() registry.Game { return New() })
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "gallery"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Shooting Gallery"
}

// Description returns a one-line summary for listings.
func (g *Game) Description() string {
	return "Shoot down the saucers across five levels with limited shells"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadGallery(configPath)
	if err != nil {
		cfg = config.DefaultGalleryConfig()
	}
	if difficultyPreset != "" {
		config.ApplyPreset(&cfg.Difficulty, difficultyPreset)
	}
	g.cfg = cfg
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)
	g.rng = rand.New(rand.NewSource(runtime.Seed)) //#nosec G404 -- gameplay randomness

	g.tooSmall = runtime.ScreenW < minScreenW || runtime.ScreenH < minScreenH
	g.top = hudRows
	g.mid = hudRows + (runtime.ScreenH-hudRows)/2

	g.cannon = Cannon{
		X: float64(runtime.ScreenW) / 2,
		Y: float64(runtime.ScreenH - cannonBaseInset),
	}
	g.shell = nil
	g.explosions = nil
	g.score = 0
	g.tickCount = 0
	g.level = 1
	g.shells = g.shellsFor(1)
	g.message = ""
	g.msgTicks = 0
	g.state = StatePlaying
	g.spawnLevel()
}

// shellsFor returns the shells granted at the start of a level.
func (g *Game) shellsFor(level int) int {
	shells := g.cfg.Gameplay.Shells
	switch {
	case len(shells) == 0:
		return defaultShells
	case level-1 < len(shells):
		return shells[level-1]
	default:
		return shells[len(shells)-1]
	}
}

// spawnLevel fills the sky with a fresh set of targets.
func (g *Game) spawnLevel() {
	dl := g.difficulty.LevelForStage(g.level - 1)
	speed := g.difficulty.Speed(g.cfg.Targets.Speed, dl)
	boost := float64(g.level) * g.cfg.Targets.LevelBoost
	g.targets = spawnTargets(g.rng, g.cfg.Targets.PerLevel, g.runtime.ScreenW, g.top, g.mid, speed, boost)
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionRestart) && (g.state == StateGameOver || g.state == StateWin) {
		g.Reset(g.runtime)
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		if g.state == StatePaused {
			g.state = StatePlaying
		} else if g.state == StatePlaying {
			g.state = StatePaused
		}
	}

	if g.state != StatePlaying {
		return core.StepResult{State: g.State()}
	}

	g.tickCount++

	g.aim(in)
	if in.Has(core.ActionFire) || firePressed(in) {
		g.fire()
	}

	g.updateShell()
	g.updateTargets()
	g.updateEffects()
	g.checkProgress()

	return core.StepResult{State: g.State()}
}

// aim rotates the cannon from keys or points it at the mouse.
func (g *Game) aim(in core.InputFrame) {
	step := g.cfg.Cannon.RotateStep
	if in.Has(core.ActionLeft) {
		g.cannon.Angle -= step
	}
	if in.Has(core.ActionRight) {
		g.cannon.Angle += step
	}

	if ev, ok := in.LastPointer(); ok && (ev.Kind == core.PointerMove || ev.Kind == core.PointerPress || ev.Kind == core.PointerDrag) {
		dx := float64(ev.X) - g.cannon.X
		dy := (g.cannon.Y - float64(ev.Y)) * cellAspect
		if dy > 0 {
			g.cannon.Angle = math.Atan2(dx, dy) * 180 / math.Pi
		}
	}

	limit := g.cfg.Cannon.MaxAngle
	g.cannon.Angle = math.Max(-limit, math.Min(limit, g.cannon.Angle))
}

func firePressed(in core.InputFrame) bool {
	for _, ev := range in.Pointer {
		if ev.Kind == core.PointerPress {
			return true
		}
	}
	return false
}

// fire launches a shell if none is in flight and any are left.
func (g *Game) fire() {
	if g.shell != nil || g.shells <= 0 {
		return
	}
	x, y := g.cannon.Muzzle(g.cfg.Cannon.Length)
	dx, dy := g.cannon.Direction()
	speed := g.cfg.Cannon.BulletSpeed
	g.shell = &Shell{X: x, Y: y, VX: dx * speed, VY: dy * speed}
	g.shells--
}

// updateShell moves the shell and resolves hits.
func (g *Game) updateShell() {
	s := g.shell
	if s == nil {
		return
	}

	s.X += s.VX
	s.Y += s.VY
	if s.X < 0 || s.X >= float64(g.runtime.ScreenW) || s.Y < float64(g.top) || s.Y >= float64(g.runtime.ScreenH) {
		g.shell = nil
		return
	}

	for i := range g.targets {
		t := &g.targets[i]
		if t.Falling || !t.Contains(s.X, s.Y) {
			continue
		}

		t.Falling = true
		t.Fade = g.cfg.Targets.FadeTicks
		t.VX = t.VX*0.5 + s.VX*0.3
		t.VY = t.VY*0.5 + s.VY*0.3 + g.cfg.Targets.Gravity*5
		g.explosions = append(g.explosions, Explosion{X: int(t.X), Y: int(t.Y), Ticks: explosionTicks})
		g.score += g.cfg.Gameplay.HitPoints
		g.shell = nil
		return
	}
}

// updateTargets moves flying targets, bouncing off the field edges and
// the mid-line, and drops falling ones.
func (g *Game) updateTargets() {
	half := TargetWidth / 2.0
	right := float64(g.runtime.ScreenW) - half
	bottom := float64(g.runtime.ScreenH)

	kept := g.targets[:0]
	for _, t := range g.targets {
		t.X += t.VX
		t.Y += t.VY

		if t.Falling {
			t.VY += g.cfg.Targets.Gravity
			t.Fade--
			if t.Fade <= 0 || t.Y >= bottom {
				continue
			}
			kept = append(kept, t)
			continue
		}

		if t.X < half {
			t.VX = math.Abs(t.VX)
		} else if t.X > right {
			t.VX = -math.Abs(t.VX)
		}
		if t.Y < float64(g.top)+0.5 {
			t.VY = math.Abs(t.VY)
		} else if t.Y > float64(g.mid) {
			t.VY = -math.Abs(t.VY)
		}
		kept = append(kept, t)
	}
	g.targets = kept
}

func (g *Game) updateEffects() {
	kept := g.explosions[:0]
	for _, e := range g.explosions {
		e.Ticks--
		if e.Ticks > 0 {
			kept = append(kept, e)
		}
	}
	g.explosions = kept

	if g.msgTicks > 0 {
		g.msgTicks--
		if g.msgTicks == 0 {
			g.message = ""
		}
	}
}

// checkProgress handles level clears and running out of shells.
func (g *Game) checkProgress() {
	flying := g.Flying()

	if flying == 0 {
		if g.level >= g.cfg.Gameplay.Levels {
			g.state = StateWin
			return
		}
		g.message = fmt.Sprintf("Level %d cleared!", g.level)
		g.msgTicks = messageTicks
		g.level++
		g.shells += g.shellsFor(g.level)
		g.spawnLevel()
		return
	}

	if g.shells <= 0 && g.shell == nil {
		g.state = StateGameOver
	}
}

// Flying returns how many targets are still airborne.
func (g *Game) Flying() int {
	n := 0
	for _, t := range g.targets {
		if !t.Falling {
			n++
		}
	}
	return n
}

// Render draws the current game state.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	hud := fmt.Sprintf(" Shooting Gallery  Level: %d/%d  Shells: %d  UFOs: %d  Score: %d",
		g.level, g.cfg.Gameplay.Levels, g.shells, g.Flying(), g.score)
	dst.DrawText(0, 0, hud)
	dst.DrawHLine(0, 1, dst.Width(), '─')

	if g.tooSmall {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	for _, t := range g.targets {
		text, color := targetGlyphs, core.ColorBrightGreen
		if t.Falling {
			text, color = fallingGlyphs, core.ColorGray
		}
		dst.DrawTextColored(int(math.Round(t.X))-1, int(t.Y), text, color)
	}

	for _, e := range g.explosions {
		dst.SetColored(e.X, e.Y, ExplosionChar, core.ColorOrange)
	}

	if s := g.shell; s != nil {
		dst.SetColored(int(s.X), int(s.Y), ShellChar, core.ColorBrightYellow)
	}

	g.renderCannon(dst)

	if g.message != "" {
		dst.DrawTextCenteredColored(g.mid+1, g.message, core.ColorBrightYellow)
	}

	switch g.state {
	case StatePaused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	case StateGameOver:
		g.renderOverlay(dst, "Out of shells!", fmt.Sprintf("Score: %d  |  Press R to restart", g.score))
	case StateWin:
		g.renderOverlay(dst, "All saucers down!", fmt.Sprintf("Final Score: %d  |  Press R to restart", g.score))
	}
}

// renderCannon draws the barrel from the base toward the muzzle.
func (g *Game) renderCannon(dst *core.Screen) {
	bx, by := int(g.cannon.X), int(g.cannon.Y)
	mx, my := g.cannon.Muzzle(g.cfg.Cannon.Length)

	glyph := '│'
	switch {
	case g.cannon.Angle < -15:
		glyph = '╲'
	case g.cannon.Angle > 15:
		glyph = '╱'
	}
	dst.DrawLine(bx, by, int(math.Round(mx)), int(math.Round(my)), glyph, core.ColorWhite)
	dst.DrawTextColored(bx-len([]rune(BaseText))/2, by+1, BaseText, core.ColorGray)
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
		GameOver: g.state == StateGameOver || g.state == StateWin,
		Paused:   g.state == StatePaused,
	}
}

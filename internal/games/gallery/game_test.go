package gallery

import (
	"math"
	"strings"
	"testing"

	"github.com/vovakirdan/light-arcade/internal/core"
)

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     12345,
	}
}

func frame(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func newGame() *Game {
	g := New()
	g.Reset(testConfig())
	return g
}

// parked replaces the sky with a single motionless target.
func parked(g *Game, x, y float64) {
	g.targets = []Target{{X: x, Y: y}}
}

// flyShell steps until the shell in flight is gone.
func flyShell(t *testing.T, g *Game) {
	t.Helper()
	for range 500 {
		if g.shell == nil {
			return
		}
		g.Step(core.NewInputFrame())
	}
	t.Fatal("shell never left the field")
}

func TestGameDeterminism(t *testing.T) {
	inputs := make([]core.InputFrame, 900)
	for i := range inputs {
		inputs[i] = core.NewInputFrame()
		if i%60 < 30 {
			inputs[i].Set(core.ActionLeft)
		} else {
			inputs[i].Set(core.ActionRight)
		}
		if i%25 == 0 {
			inputs[i].Set(core.ActionFire)
		}
	}

	run := func() Snapshot {
		g := newGame()
		for _, in := range inputs {
			g.Step(in)
		}
		return g.Snapshot()
	}

	snap1 := run()
	snap2 := run()
	if snap1.Hash() != snap2.Hash() {
		t.Errorf("Determinism failed: hashes differ. Run1=%d, Run2=%d", snap1.Hash(), snap2.Hash())
	}
}

func TestReset(t *testing.T) {
	g := newGame()

	if g.level != 1 || g.shells != 25 || g.score != 0 {
		t.Errorf("level %d shells %d score %d, expected 1, 25, 0", g.level, g.shells, g.score)
	}
	if len(g.targets) != 10 || g.Flying() != 10 {
		t.Errorf("expected 10 flying targets, got %d", g.Flying())
	}
	if g.cannon.X != 40 || g.cannon.Y != 22 {
		t.Errorf("cannon at (%f, %f), expected (40, 22)", g.cannon.X, g.cannon.Y)
	}
}

func TestCannonAimClamps(t *testing.T) {
	g := newGame()

	for range 200 {
		g.Step(frame(core.ActionLeft))
	}
	if g.cannon.Angle != -40 {
		t.Errorf("angle = %f, expected -40", g.cannon.Angle)
	}
	for range 400 {
		g.Step(frame(core.ActionRight))
	}
	if g.cannon.Angle != 40 {
		t.Errorf("angle = %f, expected 40", g.cannon.Angle)
	}
}

func TestPointerAims(t *testing.T) {
	g := newGame()

	in := core.NewInputFrame()
	in.AddPointer(core.PointerEvent{Kind: core.PointerMove, X: 50, Y: 12})
	g.Step(in)

	want := math.Atan(0.5) * 180 / math.Pi
	if math.Abs(g.cannon.Angle-want) > 1e-9 {
		t.Errorf("angle = %f, expected %f", g.cannon.Angle, want)
	}
	if g.shell != nil {
		t.Error("moving the pointer should not fire")
	}

	in = core.NewInputFrame()
	in.AddPointer(core.PointerEvent{Kind: core.PointerPress, X: 40, Y: 5})
	g.Step(in)
	if g.cannon.Angle != 0 {
		t.Errorf("angle = %f, expected 0", g.cannon.Angle)
	}
	if g.shell == nil || g.shells != 24 {
		t.Error("pressing should fire a shell")
	}
}

func TestOneShellAtATime(t *testing.T) {
	g := newGame()
	parked(g, 5, 5)

	g.Step(frame(core.ActionFire))
	if g.shell == nil || g.shells != 24 {
		t.Fatalf("expected a shell in flight and 24 left, got %d", g.shells)
	}
	g.Step(frame(core.ActionFire))
	if g.shells != 24 {
		t.Errorf("second shot fired while one was in flight, %d left", g.shells)
	}

	flyShell(t, g)
	g.Step(frame(core.ActionFire))
	if g.shells != 23 {
		t.Errorf("expected 23 shells after reloading, got %d", g.shells)
	}
}

func TestHitAdvancesLevel(t *testing.T) {
	g := newGame()
	parked(g, 40, 10)

	g.Step(frame(core.ActionFire))
	flyShell(t, g)

	if g.score != 10 {
		t.Errorf("score = %d, expected 10", g.score)
	}
	if g.level != 2 {
		t.Fatalf("level = %d, expected 2", g.level)
	}
	if g.shells != 24+20 {
		t.Errorf("shells = %d, expected leftovers plus 20", g.shells)
	}
	if g.Flying() != 10 {
		t.Errorf("expected a fresh set of targets, got %d", g.Flying())
	}
	if g.message == "" {
		t.Error("expected a level cleared message")
	}
}

func TestHitTargetFalls(t *testing.T) {
	g := newGame()
	g.targets = []Target{{X: 40, Y: 10}, {X: 5, Y: 5}}

	g.Step(frame(core.ActionFire))
	flyShell(t, g)

	if !g.targets[0].Falling || len(g.explosions) == 0 {
		t.Fatal("hit target should fall and explode")
	}
	if g.Flying() != 1 {
		t.Errorf("Flying() = %d, expected 1", g.Flying())
	}

	for range g.cfg.Targets.FadeTicks {
		g.Step(core.NewInputFrame())
	}
	if len(g.targets) != 1 || g.targets[0].Falling {
		t.Errorf("falling target should fade out, %d left", len(g.targets))
	}
}

func TestOutOfShells(t *testing.T) {
	g := newGame()
	parked(g, 5, 5)
	g.shells = 1

	g.Step(frame(core.ActionFire))
	if g.State().GameOver {
		t.Fatal("game should continue while the last shell flies")
	}
	flyShell(t, g)
	g.Step(core.NewInputFrame())

	if !g.State().GameOver || g.state != StateGameOver {
		t.Fatalf("expected game over, state %s", g.state)
	}

	g.Step(frame(core.ActionRestart))
	if g.state != StatePlaying || g.shells != 25 {
		t.Errorf("restart: state %s shells %d", g.state, g.shells)
	}
}

func TestWinAfterLastLevel(t *testing.T) {
	g := newGame()
	g.level = g.cfg.Gameplay.Levels
	parked(g, 40, 10)

	g.Step(frame(core.ActionFire))
	flyShell(t, g)

	if g.state != StateWin || !g.State().GameOver {
		t.Errorf("expected win, state %s", g.state)
	}
}

func TestTargetsStayInSky(t *testing.T) {
	g := newGame()

	for range 3000 {
		g.Step(core.NewInputFrame())
		for _, tg := range g.targets {
			if tg.X < 0 || tg.X >= 80 {
				t.Fatalf("target left the field: %+v", tg)
			}
			if tg.Y < float64(g.top) || tg.Y > float64(g.mid)+1 {
				t.Fatalf("target left the sky: %+v", tg)
			}
		}
	}
}

func TestPause(t *testing.T) {
	g := newGame()

	g.Step(frame(core.ActionPause))
	if !g.State().Paused {
		t.Fatal("expected paused")
	}
	ticks := g.tickCount
	g.Step(frame(core.ActionFire))
	if g.tickCount != ticks || g.shell != nil {
		t.Error("paused game should not advance")
	}
	g.Step(frame(core.ActionPause))
	if g.State().Paused {
		t.Error("expected unpaused")
	}
}

func TestScreenTooSmall(t *testing.T) {
	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 30, ScreenH: 10, Seed: 1})

	g.Step(frame(core.ActionFire))
	if g.shell != nil {
		t.Error("game should not run on a small screen")
	}

	screen := core.NewScreen(30, 10)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Window too small") {
		t.Error("expected too small overlay")
	}
}

func TestRender(t *testing.T) {
	g := newGame()
	parked(g, 20, 6)

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	out := screen.String()

	if !strings.Contains(out, "Shells: 25") {
		t.Error("HUD should show the shell count")
	}
	if !strings.Contains(out, BaseText) {
		t.Error("expected the cannon base")
	}
	if screen.Get(20, 6) != 'O' {
		t.Errorf("target center = %q, expected 'O'", screen.Get(20, 6))
	}
	if screen.Get(40, 22) != '│' {
		t.Errorf("barrel = %q, expected '│'", screen.Get(40, 22))
	}
}

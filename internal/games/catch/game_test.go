package catch

import (
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

func started(t *testing.T) *Game {
	t.Helper()
	g := New()
	g.Reset(testConfig())
	g.Step(frame(core.ActionFire))
	if g.state != StatePlaying {
		t.Fatalf("state after Fire = %s, expected %s", g.state, StatePlaying)
	}
	return g
}

func TestGameDeterminism(t *testing.T) {
	inputs := make([]core.InputFrame, 600)
	for i := range inputs {
		inputs[i] = core.NewInputFrame()
		switch {
		case i == 0:
			inputs[i].Set(core.ActionFire)
		case i%40 < 20:
			inputs[i].Set(core.ActionLeft)
		default:
			inputs[i].Set(core.ActionRight)
		}
	}

	run := func() Snapshot {
		g := New()
		g.Reset(testConfig())
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
	if len(snap1.ItemData) == 0 {
		t.Error("expected items to have spawned")
	}
}

func TestWaitsForStart(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	for range 100 {
		g.Step(frame(core.ActionLeft))
	}
	if g.tickCount != 0 || len(g.items.Items()) != 0 {
		t.Error("game should not run before it is started")
	}

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Press Space to start") {
		t.Error("expected a start prompt")
	}
}

func TestCatchPacket(t *testing.T) {
	g := started(t)

	g.items.items = append(g.items.items[:0], Item{
		X:     g.plateX + 2,
		Y:     float64(g.plateY) - 0.05,
		Speed: 0.1,
		Kind:  KindPacket,
	})
	g.Step(core.NewInputFrame())

	if g.score != 100 || g.caught != 1 {
		t.Errorf("score %d caught %d, expected 100 and 1", g.score, g.caught)
	}
	for _, it := range g.items.Items() {
		if it.Kind == KindPacket && int(it.Y) == g.plateY {
			t.Error("caught packet should be removed")
		}
	}
}

func TestHomeworkFreezesPlate(t *testing.T) {
	g := started(t)
	g.cfg.Items.HomeworkChance = 0
	g.items.items = append(g.items.items[:0], Item{
		X:     g.plateX,
		Y:     float64(g.plateY) - 0.05,
		Speed: 0.1,
		Kind:  KindHomework,
	})
	g.Step(core.NewInputFrame())

	if !g.Frozen() || g.frozenTicks != g.cfg.Gameplay.FreezeTicks {
		t.Fatalf("frozen ticks = %d, expected %d", g.frozenTicks, g.cfg.Gameplay.FreezeTicks)
	}

	x := g.plateX
	g.Step(frame(core.ActionRight))
	if g.plateX != x {
		t.Error("frozen plate should not move")
	}

	g.items.items = append(g.items.items[:0], Item{
		X:     g.plateX + 2,
		Y:     float64(g.plateY),
		Speed: 0.01,
		Kind:  KindPacket,
	})
	g.Step(core.NewInputFrame())
	if g.score != 0 {
		t.Errorf("frozen plate caught a packet, score %d", g.score)
	}

	for range g.cfg.Gameplay.FreezeTicks {
		g.Step(core.NewInputFrame())
	}
	if g.Frozen() {
		t.Error("freeze should wear off")
	}
}

func TestPlateMovement(t *testing.T) {
	g := started(t)

	for range 200 {
		g.Step(frame(core.ActionLeft))
	}
	if g.plateX != 0 {
		t.Errorf("plate should clamp at the left edge, got %f", g.plateX)
	}

	in := core.NewInputFrame()
	in.AddPointer(core.PointerEvent{Kind: core.PointerMove, X: 40, Y: 10})
	g.Step(in)
	want := 40 - float64(g.plateWidth)/2
	if g.plateX != want {
		t.Errorf("pointer plate x = %f, expected %f", g.plateX, want)
	}

	in = core.NewInputFrame()
	in.AddPointer(core.PointerEvent{Kind: core.PointerMove, X: 200, Y: 10})
	g.Step(in)
	if g.plateX != float64(80-g.plateWidth) {
		t.Errorf("plate should clamp at the right edge, got %f", g.plateX)
	}
}

func TestRoundEnds(t *testing.T) {
	g := started(t)
	g.cfg.Gameplay.DurationTicks = 10

	for range 20 {
		g.Step(core.NewInputFrame())
	}
	if !g.State().GameOver {
		t.Fatal("round should end after its duration")
	}
	if g.TimeLeft() != 0 {
		t.Errorf("TimeLeft() = %d, expected 0", g.TimeLeft())
	}

	g.Step(frame(core.ActionRestart))
	if g.state != StateReady || g.score != 0 {
		t.Errorf("restart: state %s score %d", g.state, g.score)
	}
}

func TestPause(t *testing.T) {
	g := started(t)

	g.Step(frame(core.ActionPause))
	if !g.State().Paused {
		t.Fatal("expected paused")
	}
	ticks := g.tickCount
	g.Step(core.NewInputFrame())
	if g.tickCount != ticks {
		t.Error("paused game should not advance")
	}
	g.Step(frame(core.ActionPause))
	if g.State().Paused {
		t.Error("expected unpaused")
	}
}

func TestItemsSpawnAndFall(t *testing.T) {
	g := started(t)
	homework := 0

	for range 3000 {
		g.Step(core.NewInputFrame())
		for _, it := range g.items.Items() {
			if it.Y < hudRows || int(it.Y) >= 24 {
				t.Fatalf("item outside the playfield: %+v", it)
			}
			if it.X < 0 || it.X > float64(80-ItemWidth) {
				t.Fatalf("item column out of range: %+v", it)
			}
			if it.Kind == KindHomework {
				homework++
			}
		}
	}
	if homework == 0 {
		t.Error("expected some homework to fall")
	}
}

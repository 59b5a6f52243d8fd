package mirror

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/vovakirdan/light-arcade/internal/core"
	"github.com/vovakirdan/light-arcade/internal/optics"
)

// dragMode is what a held pointer button does to the selected mirror.
type dragMode int

const (
	dragNone   dragMode = iota
	dragMove            // Mirror center follows the pointer
	dragRotate          // Mirror turns to face the pointer
)

// newMirrorAngle is the orientation of a freshly placed mirror.
const newMirrorAngle = 45.0

// handleInput applies keyboard actions and pointer events for this tick.
// Mirrors stay editable while the light is on.
func (g *Game) handleInput(in core.InputFrame) {
	for _, ev := range in.Pointer {
		g.handlePointer(ev)
	}

	g.handleKeys(in)
}

func (g *Game) handleKeys(in core.InputFrame) {
	dx, dy := 0.0, 0.0
	if in.Has(core.ActionLeft) {
		dx -= UnitsPerCol
	}
	if in.Has(core.ActionRight) {
		dx += UnitsPerCol
	}
	if in.Has(core.ActionUp) {
		dy -= UnitsPerRow
	}
	if in.Has(core.ActionDown) {
		dy += UnitsPerRow
	}
	if dx != 0 || dy != 0 {
		g.moveCursor(optics.Pt(g.cursor.X+dx, g.cursor.Y+dy))
		if g.held {
			g.moveSelected(g.cursor)
		}
	}

	if in.Has(core.ActionFire) {
		switch {
		case g.held:
			g.held = false
		case g.grabAt(g.cursor) != dragNone:
			g.held = g.drag == dragMove
			g.drag = dragNone
		default:
			g.placeMirror(g.cursor)
		}
	}

	step := g.cfg.Mirrors.RotateStep
	if in.Has(core.ActionRotateCCW) {
		g.rotateSelected(-step)
	}
	if in.Has(core.ActionRotateCW) {
		g.rotateSelected(step)
	}

	if in.Has(core.ActionDelete) {
		g.deleteSelected()
	}

	if in.Has(core.ActionNext) {
		g.selectNext()
	}
}

func (g *Game) handlePointer(ev core.PointerEvent) {
	pos := g.view.toWorld(ev.X, ev.Y)

	switch ev.Kind {
	case core.PointerMove:
		g.moveCursor(pos)

	case core.PointerPress:
		g.moveCursor(pos)
		g.held = false
		if g.grabAt(pos) != dragNone {
			return
		}
		if g.placeMirror(pos) {
			g.drag = dragMove
		}

	case core.PointerDrag:
		g.moveCursor(pos)
		switch g.drag {
		case dragMove:
			g.moveSelected(pos)
		case dragRotate:
			g.rotateSelectedTowards(pos)
		}

	case core.PointerRelease:
		g.moveCursor(pos)
		g.drag = dragNone

	case core.PointerWheelUp:
		g.rotateSelected(-g.cfg.Mirrors.RotateStep)

	case core.PointerWheelDown:
		g.rotateSelected(g.cfg.Mirrors.RotateStep)
	}
}

// grabAt selects the first mirror whose center is within the grab radius
// of p, or whose rotation handle is within the handle radius. It sets and
// returns the resulting drag mode.
func (g *Game) grabAt(p optics.Point) dragMode {
	grab := g.cfg.Mirrors.GrabRadius
	handle := g.cfg.Mirrors.HandleRadius

	for i, m := range g.mirrors {
		if r2.Norm(r2.Sub(p, m.Position)) < grab {
			g.selected = i
			g.drag = dragMove
			return g.drag
		}
		_, end := m.Endpoints()
		if r2.Norm(r2.Sub(p, end)) < handle {
			g.selected = i
			g.drag = dragRotate
			return g.drag
		}
	}
	return dragNone
}

// placeMirror adds a mirror at p if the budget allows and selects it.
func (g *Game) placeMirror(p optics.Point) bool {
	if g.Remaining() <= 0 {
		return false
	}
	g.mirrors = append(g.mirrors, optics.Mirror{
		Position: g.clampToField(p),
		Angle:    newMirrorAngle,
		Length:   g.mirrorLength(),
	})
	g.selected = len(g.mirrors) - 1
	return true
}

func (g *Game) moveCursor(p optics.Point) {
	g.cursor = g.clampToField(p)
}

func (g *Game) moveSelected(p optics.Point) {
	if g.selected < 0 {
		return
	}
	g.mirrors[g.selected].Position = g.clampToField(p)
}

func (g *Game) rotateSelected(delta float64) {
	if g.selected < 0 {
		return
	}
	m := &g.mirrors[g.selected]
	m.Angle = normalizeAngle(m.Angle + delta)
}

// rotateSelectedTowards points the handle end of the selected mirror at p.
func (g *Game) rotateSelectedTowards(p optics.Point) {
	if g.selected < 0 {
		return
	}
	m := &g.mirrors[g.selected]
	d := r2.Sub(p, m.Position)
	if d.X == 0 && d.Y == 0 {
		return
	}
	m.Angle = normalizeAngle(math.Atan2(d.Y, d.X) * 180 / math.Pi)
}

// deleteSelected removes the selected mirror, returning it to the budget.
func (g *Game) deleteSelected() {
	if g.selected < 0 {
		return
	}
	g.mirrors = append(g.mirrors[:g.selected], g.mirrors[g.selected+1:]...)
	g.selected = -1
	g.drag = dragNone
	g.held = false
}

// selectNext cycles the selection and moves the cursor onto it.
func (g *Game) selectNext() {
	if len(g.mirrors) == 0 {
		return
	}
	g.held = false
	g.selected = (g.selected + 1) % len(g.mirrors)
	g.cursor = g.mirrors[g.selected].Position
}

func (g *Game) clampToField(p optics.Point) optics.Point {
	return optics.Pt(core.Clamp(p.X, 0, g.level.Width), core.Clamp(p.Y, 0, g.level.Height))
}

// Remaining returns how many more mirrors can be placed.
func (g *Game) Remaining() int {
	return max(0, g.budget-len(g.mirrors))
}

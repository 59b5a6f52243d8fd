package mirror

import (
	"fmt"
	"math"

	"github.com/vovakirdan/light-arcade/internal/core"
	"github.com/vovakirdan/light-arcade/internal/optics"
)

// Visual characters for rendering
const (
	ObstacleChar = '█'
	SourceChar   = '◉'
	HandleChar   = 'o'
	CursorChar   = '+'
	HitChar      = '*'
)

// TargetGlyphs are the target animation frames, smallest first.
var TargetGlyphs = []rune{'·', '·', '∙', '∙', '∘', '∘', 'o', 'o', 'O', 'O', '◎', '●'}

// Render draws the current game state.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.renderHUD(dst)

	if g.tooSmall {
		g.renderOverlay(dst, "Window too small", fmt.Sprintf("Need at least %dx%d", max(minScreenW, g.view.cols), max(minScreenH, g.view.rows+hudRows)))
		return
	}

	g.renderObstacles(dst)
	g.renderTarget(dst)
	if g.state != StatePlacing {
		g.renderBeam(dst)
	}
	g.renderMirrors(dst)
	g.renderSource(dst)
	g.renderCursor(dst)

	switch g.state {
	case StateCleared:
		g.renderOverlay(dst, fmt.Sprintf("%s solved! +%d", g.level.Name, g.lastPoints), "Press Enter for the next level")
	case StateWin:
		g.renderOverlay(dst, "All levels solved!", fmt.Sprintf("Final Score: %d  (R to restart)", g.score))
	case StatePaused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD draws the status line, a hint line and the field frame.
func (g *Game) renderHUD(dst *core.Screen) {
	var title string
	if g.mode == ModeRandom {
		title = fmt.Sprintf(" %s", g.level.Name)
	} else {
		title = fmt.Sprintf(" Level %d/%d: %s", g.levelIndex+1, max(1, len(g.levels)), g.level.Name)
	}
	hud := fmt.Sprintf("%s  Mirrors: %d/%d  Score: %d", title, len(g.mirrors), g.budget, g.score)
	dst.DrawText(0, 0, hud)

	var hint string
	switch g.state {
	case StatePlacing:
		hint = " Space place/grab  [ ] rotate  Tab next  Del remove  Enter light"
	case StateLit:
		hint = fmt.Sprintf(" Light: %s  Bounces: %d  Target: %s", g.trace.Outcome, g.trace.Bounces, g.target.phase)
	default:
		hint = ""
	}
	dst.DrawTextColored(0, 1, hint, core.ColorGray)
}

func (g *Game) renderObstacles(dst *core.Screen) {
	v := g.view
	for _, o := range g.level.Obstacles {
		x0 := int(math.Floor(o.X / UnitsPerCol))
		y0 := int(math.Floor(o.Y / UnitsPerRow))
		x1 := int(math.Ceil((o.X+o.W)/UnitsPerCol)) - 1
		y1 := int(math.Ceil((o.Y+o.H)/UnitsPerRow)) - 1
		for y := max(0, y0); y <= min(v.rows-1, y1); y++ {
			for x := max(0, x0); x <= min(v.cols-1, x1); x++ {
				dst.SetColored(v.offX+x, v.offY+y, ObstacleChar, core.ColorGray)
			}
		}
	}
}

func (g *Game) renderTarget(dst *core.Screen) {
	if !g.target.shown() {
		if g.state == StatePlacing {
			// Show where the target will appear
			x, y := g.view.toScreen(g.level.Target.Position)
			dst.SetColored(x, y, '×', core.ColorRed)
		}
		return
	}

	frame := core.Clamp(g.target.frame*len(TargetGlyphs)/g.target.frames, 0, len(TargetGlyphs)-1)
	x, y := g.view.toScreen(g.level.Target.Position)
	dst.SetColored(x, y, TargetGlyphs[frame], core.ColorBrightRed)
	if g.target.phase == TargetVisible {
		dst.SetColored(x-1, y, '(', core.ColorRed)
		dst.SetColored(x+1, y, ')', core.ColorRed)
	}
}

// renderBeam rasterizes the traced path segment by segment.
func (g *Game) renderBeam(dst *core.Screen) {
	path := g.trace.Path
	for i := 1; i < len(path); i++ {
		a, b := path[i-1], path[i]
		glyph := lineGlyph((b.X-a.X)/UnitsPerCol, (b.Y-a.Y)/UnitsPerRow)
		x0, y0 := g.view.toScreen(a)
		x1, y1 := g.view.toScreen(b)
		dst.DrawLine(x0, y0, x1, y1, glyph, core.ColorBrightYellow)
	}

	if len(path) > 1 && g.trace.Outcome == optics.BlockedByObstacle {
		x, y := g.view.toScreen(path[len(path)-1])
		dst.SetColored(x, y, HitChar, core.ColorOrange)
	}
}

func (g *Game) renderMirrors(dst *core.Screen) {
	for i, m := range g.mirrors {
		color := core.ColorCyan
		if i == g.selected {
			color = core.ColorBrightCyan
		}

		a, b := m.Endpoints()
		glyph := lineGlyph((b.X-a.X)/UnitsPerCol, (b.Y-a.Y)/UnitsPerRow)
		x0, y0 := g.view.toScreen(a)
		x1, y1 := g.view.toScreen(b)
		dst.DrawLine(x0, y0, x1, y1, glyph, color)
		dst.SetColored(x1, y1, HandleChar, core.ColorOrange)
	}
}

func (g *Game) renderSource(dst *core.Screen) {
	x, y := g.view.toScreen(g.level.Source.Origin)
	dst.SetColored(x, y, SourceChar, core.ColorYellow)
}

// renderCursor marks the cursor cell without hiding what is under it.
func (g *Game) renderCursor(dst *core.Screen) {
	if g.state != StatePlacing && g.state != StateLit {
		return
	}
	x, y := g.view.toScreen(g.cursor)
	if dst.Get(x, y) == ' ' {
		dst.SetColored(x, y, CursorChar, core.ColorWhite)
		return
	}
	dst.SetColor(x, y, core.ColorBrightWhite)
}

// renderOverlay draws a centered message box.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	w := dst.Width()
	h := dst.Height()

	maxLen := max(len([]rune(line1)), len([]rune(line2)))
	boxW := maxLen + 4
	boxH := 5
	box := core.NewRect((w-boxW)/2, (h-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	dst.DrawTextCentered(box.Y+1, line1)
	dst.DrawTextCenteredColored(box.Y+3, line2, core.ColorGray)
}

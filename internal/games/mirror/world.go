package mirror

import (
	"math"

	"github.com/vovakirdan/light-arcade/internal/core"
	"github.com/vovakirdan/light-arcade/internal/optics"
)

// Terminal cells are roughly twice as tall as they are wide, so one row
// covers twice the world distance of one column.
const (
	UnitsPerCol = 10.0
	UnitsPerRow = 20.0

	hudRows = 2
)

// view maps world coordinates onto the playfield below the HUD.
// The field is centered when the screen is larger than the level.
type view struct {
	cols, rows int // Playfield size in cells
	offX, offY int // Screen position of cell (0, 0)
}

func newView(lvl Level, screenW, screenH int) view {
	cols := int(math.Ceil(lvl.Width / UnitsPerCol))
	rows := int(math.Ceil(lvl.Height / UnitsPerRow))
	return view{
		cols: cols,
		rows: rows,
		offX: max(0, (screenW-cols)/2),
		offY: hudRows + max(0, (screenH-hudRows-rows)/2),
	}
}

// fieldSize returns the world size that exactly fills the screen below the HUD.
func fieldSize(screenW, screenH int) (float64, float64) {
	return float64(screenW) * UnitsPerCol, float64(screenH-hudRows) * UnitsPerRow
}

// toScreen returns the cell containing p, clamped to the playfield.
func (v view) toScreen(p optics.Point) (int, int) {
	cx := core.Clamp(int(math.Floor(p.X/UnitsPerCol)), 0, v.cols-1)
	cy := core.Clamp(int(math.Floor(p.Y/UnitsPerRow)), 0, v.rows-1)
	return v.offX + cx, v.offY + cy
}

// toWorld returns the world position of the center of screen cell (x, y).
func (v view) toWorld(x, y int) optics.Point {
	cx := core.Clamp(x-v.offX, 0, v.cols-1)
	cy := core.Clamp(y-v.offY, 0, v.rows-1)
	return optics.Pt((float64(cx)+0.5)*UnitsPerCol, (float64(cy)+0.5)*UnitsPerRow)
}

// lineGlyph picks a box-drawing rune for a segment with the given
// on-screen direction (in cells).
func lineGlyph(dx, dy float64) rune {
	deg := math.Atan2(dy, dx) * 180 / math.Pi
	if deg < 0 {
		deg += 180
	}
	switch {
	case deg < 22.5 || deg >= 157.5:
		return '─'
	case deg < 67.5:
		return '╲' // y grows downward
	case deg < 112.5:
		return '│'
	default:
		return '╱'
	}
}

// normalizeAngle maps degrees into (-180, 180].
func normalizeAngle(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg > 180 {
		deg -= 360
	} else if deg <= -180 {
		deg += 360
	}
	return deg
}

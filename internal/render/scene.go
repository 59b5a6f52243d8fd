// Package render draws traced optics scenes and score charts to images.
package render

import (
	"image"
	"image/color"

	"github.com/fogleman/gg"

	"github.com/vovakirdan/light-arcade/internal/optics"
)

// Palette for scene images
var (
	BackgroundColor = color.RGBA{R: 18, G: 18, B: 24, A: 255}
	ObstacleColor   = color.RGBA{R: 110, G: 110, B: 120, A: 255}
	MirrorColor     = color.RGBA{R: 80, G: 220, B: 240, A: 255}
	BeamColor       = color.RGBA{R: 255, G: 230, B: 60, A: 255}
	TargetColor     = color.RGBA{R: 90, G: 230, B: 110, A: 255}
	SourceColor     = color.RGBA{R: 255, G: 140, B: 0, A: 255}
)

// View maps a world rectangle onto an image.
type View struct {
	Width, Height float64 // World size
	Scale         float64 // Pixels per world unit, 1 if unset
	BeamWidth     float64 // In pixels, 2 if unset
}

func (v View) scale() float64 {
	if v.Scale <= 0 {
		return 1
	}
	return v.Scale
}

// Size returns the image size in pixels.
func (v View) Size() (int, int) {
	s := v.scale()
	return int(v.Width * s), int(v.Height * s)
}

// Scene draws the obstacles, mirrors, target, source and the traced path.
func (v View) Scene(scene optics.Scene, res optics.Result) image.Image {
	w, h := v.Size()
	c := gg.NewContext(w, h)
	s := v.scale()

	c.SetColor(BackgroundColor)
	c.Clear()

	c.SetColor(ObstacleColor)
	for _, o := range scene.Obstacles {
		c.DrawRectangle(o.X*s, o.Y*s, o.W*s, o.H*s)
		c.Fill()
	}

	t := scene.Target
	c.SetColor(TargetColor)
	c.DrawCircle(t.Position.X*s, t.Position.Y*s, t.Radius*s)
	if t.Active {
		c.Fill()
	} else {
		c.SetLineWidth(1)
		c.Stroke()
	}

	c.SetColor(MirrorColor)
	c.SetLineWidth(3)
	for _, m := range scene.Mirrors {
		a, b := m.Endpoints()
		c.DrawLine(a.X*s, a.Y*s, b.X*s, b.Y*s)
		c.Stroke()
	}

	if len(res.Path) > 1 {
		bw := v.BeamWidth
		if bw <= 0 {
			bw = 2
		}
		c.SetColor(BeamColor)
		c.SetLineWidth(bw)
		c.MoveTo(res.Path[0].X*s, res.Path[0].Y*s)
		for _, p := range res.Path[1:] {
			c.LineTo(p.X*s, p.Y*s)
		}
		c.Stroke()
	}

	src := scene.Source.Origin
	c.SetColor(SourceColor)
	c.DrawCircle(src.X*s, src.Y*s, 5)
	c.Fill()

	return c.Image()
}

// SavePNG writes img to path.
func SavePNG(path string, img image.Image) error {
	return gg.SavePNG(path, img)
}

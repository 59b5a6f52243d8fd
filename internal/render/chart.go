package render

import (
	"errors"
	"image"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// ErrNoData is returned when there is nothing to chart.
var ErrNoData = errors.New("render: no data")

// ScoreChart draws scores as a bar chart, one bar per entry in order.
func ScoreChart(title string, scores []int, width, height int) (image.Image, error) {
	if len(scores) == 0 {
		return nil, ErrNoData
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Rank"
	p.Y.Label.Text = "Score"

	values := make(plotter.Values, len(scores))
	for i, s := range scores {
		values[i] = float64(s)
	}

	barWidth := vg.Points(float64(width) / float64(2*len(scores)+2))
	bars, err := plotter.NewBarChart(values, barWidth)
	if err != nil {
		return nil, err
	}
	bars.Color = BeamColor
	p.Add(bars)

	canvas := vgimg.NewWith(vgimg.UseWH(vg.Points(float64(width)), vg.Points(float64(height))), vgimg.UseDPI(72))
	p.Draw(draw.New(canvas))
	return canvas.Image(), nil
}

package viz

import (
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/KhliustovDmitrii/Physical-Simulations/internal/dynamo"
)

// SavePNG writes a single line chart with every consumer column of the
// trajectory against time.
func SavePNG(path string, tr dynamo.Trajectory, times []float64, joints int) error {
	p := plot.New()
	p.Title.Text = "pendulum chain trajectory"
	p.X.Label.Text = "time (s)"
	p.Y.Label.Text = "value"
	p.Add(plotter.NewGrid())

	for i, col := range consumerColumns(joints) {
		data := tr.Column(col.index)
		pts := make(plotter.XYs, len(data))
		for k := range data {
			if k < len(times) {
				pts[k].X = times[k]
			}
			pts[k].Y = data[k]
		}

		line, err := plotter.NewLine(pts)
		if err != nil {
			return err
		}
		line.LineStyle.Width = vg.Points(1.5)
		line.Color = plotutil.Color(i)
		p.Add(line)
		p.Legend.Add(col.caption, line)
	}

	return p.Save(8*vg.Inch, 6*vg.Inch, path)
}

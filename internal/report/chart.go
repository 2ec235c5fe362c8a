package report

import (
	"fmt"
	"log/slog"
	"os"

	"tcx-compare/internal/reconcile"
	"tcx-compare/internal/series"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// WriteChart renders the comparison as a 16x9 PNG with two stacked panels:
// both devices' heart-rate traces on top, the signed per-timestamp
// difference with a dashed zero reference below. When neither device has
// data there is nothing to draw and no file is written.
func WriteChart(path string, dev1, dev2 Device, res reconcile.Result) error {
	if dev1.Series.Empty() && dev2.Series.Empty() {
		slog.Info("skipping chart, no data to plot", "path", path)
		return nil
	}

	top := plot.New()
	top.Title.Text = "Heart Rate Comparison"
	top.Y.Label.Text = "Heart Rate (bpm)"
	top.X.Tick.Marker = plot.TimeTicks{Format: "15:04:05"}

	for i, dev := range []Device{dev1, dev2} {
		if dev.Series.Empty() {
			continue
		}
		line, err := plotter.NewLine(seriesXYs(dev.Series))
		if err != nil {
			return fmt.Errorf("chart %s: %w", dev.Name, err)
		}
		line.Color = plotutil.Color(i)
		top.Add(line)
		top.Legend.Add(dev.Name, line)
	}

	bottom := plot.New()
	bottom.Title.Text = fmt.Sprintf("Heart Rate Difference (%s - %s)", dev1.Name, dev2.Name)
	bottom.Y.Label.Text = "Difference (bpm)"
	bottom.X.Label.Text = "Time"
	bottom.X.Tick.Marker = plot.TimeTicks{Format: "15:04:05"}

	if len(res.Differences) > 0 {
		if err := addDifferencePanel(bottom, res.Differences); err != nil {
			return err
		}
	}

	img := vgimg.New(16*vg.Inch, 9*vg.Inch)
	canvases := plot.Align(
		[][]*plot.Plot{{top}, {bottom}},
		draw.Tiles{Rows: 2, Cols: 1, PadY: vg.Millimeter * 5},
		draw.New(img),
	)
	top.Draw(canvases[0][0])
	bottom.Draw(canvases[1][0])

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create chart %s: %w", path, err)
	}
	png := vgimg.PngCanvas{Canvas: img}
	if _, err := png.WriteTo(f); err != nil {
		f.Close()
		return fmt.Errorf("write chart %s: %w", path, err)
	}
	return f.Close()
}

func addDifferencePanel(p *plot.Plot, diffs []reconcile.Difference) error {
	xys := make(plotter.XYs, len(diffs))
	for i, d := range diffs {
		xys[i].X = float64(d.Time.Unix())
		xys[i].Y = d.Diff
	}
	line, err := plotter.NewLine(xys)
	if err != nil {
		return fmt.Errorf("chart difference: %w", err)
	}
	line.Color = plotutil.Color(2)
	p.Add(line)

	zero, err := plotter.NewLine(plotter.XYs{
		{X: xys[0].X, Y: 0},
		{X: xys[len(xys)-1].X, Y: 0},
	})
	if err != nil {
		return fmt.Errorf("chart zero line: %w", err)
	}
	zero.Dashes = []vg.Length{vg.Points(4), vg.Points(4)}
	p.Add(zero)
	return nil
}

func seriesXYs(s series.Series) plotter.XYs {
	xys := make(plotter.XYs, len(s))
	for i, sample := range s {
		xys[i].X = float64(sample.Time.Unix())
		xys[i].Y = sample.HeartRate
	}
	return xys
}

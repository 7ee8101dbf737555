package report

import (
	"errors"
	"fmt"

	humanizer "github.com/tphakala/go-cursor-humanizer"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// Plot dimensions
const (
	pathPlotSize     = 8 * vg.Inch
	timingPlotWidth  = 14 * vg.Inch
	timingPlotHeight = 6 * vg.Inch
	lineWidthPt      = 1
	glyphRadiusPt    = 1.5
	legendOffset     = -10
)

// ErrNoSeries is returned when a plot is requested without data.
var ErrNoSeries = errors.New("no series to plot")

// Series is a named trajectory drawn in a plot.
type Series struct {
	Name     string
	Sequence humanizer.Sequence

	// Points draws sample markers in addition to the connecting line.
	Points bool
}

// SavePathPlot draws the series in screen coordinates (y pointing down) and
// writes the image to file. The format follows the file extension.
func SavePathPlot(file, title string, series ...Series) error {
	if len(series) == 0 {
		return ErrNoSeries
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "X (px)"
	p.Y.Label.Text = "Y (px)"
	p.Y.Scale = plot.InvertedScale{Normalizer: plot.LinearScale{}}

	for i, s := range series {
		pts := make(plotter.XYs, len(s.Sequence))
		for j, sample := range s.Sequence {
			pts[j] = plotter.XY{X: sample.X, Y: sample.Y}
		}
		if err := addSeries(p, i, s, pts); err != nil {
			return err
		}
	}

	styleLegend(p)
	if err := p.Save(pathPlotSize, pathPlotSize, file); err != nil {
		return fmt.Errorf("failed to save path plot: %w", err)
	}
	return nil
}

// SaveTimingPlot draws timestamp against sample index for each series.
// Uniform re-timing shows up as a straight line, easing as curved ends.
func SaveTimingPlot(file, title string, series ...Series) error {
	if len(series) == 0 {
		return ErrNoSeries
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Sample index"
	p.Y.Label.Text = "Time (ms)"

	for i, s := range series {
		pts := make(plotter.XYs, len(s.Sequence))
		for j, sample := range s.Sequence {
			pts[j] = plotter.XY{X: float64(j), Y: sample.Time}
		}
		if err := addSeries(p, i, s, pts); err != nil {
			return err
		}
	}

	styleLegend(p)
	if err := p.Save(timingPlotWidth, timingPlotHeight, file); err != nil {
		return fmt.Errorf("failed to save timing plot: %w", err)
	}
	return nil
}

func addSeries(p *plot.Plot, i int, s Series, pts plotter.XYs) error {
	if len(pts) == 0 {
		return nil
	}

	line, err := plotter.NewLine(pts)
	if err != nil {
		return fmt.Errorf("series %q: %w", s.Name, err)
	}
	line.Color = plotutil.Color(i)
	line.Width = vg.Points(lineWidthPt)
	p.Add(line)
	p.Legend.Add(s.Name, line)

	if s.Points {
		scatter, err := plotter.NewScatter(pts)
		if err != nil {
			return fmt.Errorf("series %q: %w", s.Name, err)
		}
		scatter.Color = plotutil.Color(i)
		scatter.Radius = vg.Points(glyphRadiusPt)
		p.Add(scatter)
	}

	return nil
}

func styleLegend(p *plot.Plot) {
	p.Legend.Top = true
	p.Legend.Left = false
	p.Legend.XOffs = legendOffset
	p.Legend.YOffs = legendOffset
}

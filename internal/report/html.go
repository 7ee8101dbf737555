package report

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// Chart layout
const (
	chartWidth     = "1000px"
	pathHeight     = "800px"
	timingHeight   = "480px"
	axisNameGapX   = 25
	axisNameGapY   = 40
	htmlSymbolSize = 4
)

// WriteHTML renders an interactive page with a path chart and a timing
// chart of the series.
func WriteHTML(w io.Writer, title string, series ...Series) error {
	if len(series) == 0 {
		return ErrNoSeries
	}

	path := charts.NewLine()
	path.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: title, Width: chartWidth, Height: pathHeight}),
		charts.WithTitleOpts(opts.Title{Title: title, Subtitle: "cursor path"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Type: "value", Name: "X (px)", NameLocation: "middle", NameGap: axisNameGapX, Scale: opts.Bool(true)}),
		charts.WithYAxisOpts(opts.YAxis{Type: "value", Name: "Y (px)", NameLocation: "middle", NameGap: axisNameGapY, Scale: opts.Bool(true), Inverse: opts.Bool(true)}),
	)

	timing := charts.NewLine()
	timing.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: chartWidth, Height: timingHeight}),
		charts.WithTitleOpts(opts.Title{Title: "Timing", Subtitle: "timestamp by sample index"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Type: "value", Name: "Sample index", NameLocation: "middle", NameGap: axisNameGapX}),
		charts.WithYAxisOpts(opts.YAxis{Type: "value", Name: "Time (ms)", NameLocation: "middle", NameGap: axisNameGapY, Scale: opts.Bool(true)}),
	)

	for _, s := range series {
		pathData := make([]opts.LineData, len(s.Sequence))
		timingData := make([]opts.LineData, len(s.Sequence))
		for i, sample := range s.Sequence {
			pathData[i] = opts.LineData{Value: []interface{}{sample.X, sample.Y}}
			timingData[i] = opts.LineData{Value: []interface{}{i, sample.Time}}
		}

		lineOpts := charts.WithLineChartOpts(opts.LineChart{
			ShowSymbol: opts.Bool(s.Points),
			SymbolSize: htmlSymbolSize,
		})
		path.AddSeries(s.Name, pathData, lineOpts)
		timing.AddSeries(s.Name, timingData, lineOpts)
	}

	page := components.NewPage()
	page.SetPageTitle(title)
	page.AddCharts(path, timing)

	if err := page.Render(w); err != nil {
		return fmt.Errorf("render error: %w", err)
	}
	return nil
}

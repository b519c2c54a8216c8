package dashboard

import (
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/render"

	"github.com/i474232898/weather-dashboard/internal/common"
	"github.com/i474232898/weather-dashboard/internal/weather"
)

// ChartPoint is one day of the temperature trend.
type ChartPoint struct {
	Label string // weekday abbreviation, e.g. "Mon"
	Date  string
	Max   float64
	Min   float64
}

// ChartSeries projects forecast days 1:1, in order, into chart points.
func ChartSeries(days []weather.ForecastDay) []ChartPoint {
	points := make([]ChartPoint, 0, len(days))
	for _, d := range days {
		points = append(points, ChartPoint{
			Label: common.FirstRunes(d.Day, 3),
			Date:  d.Date,
			Max:   d.MaxTemp,
			Min:   d.MinTemp,
		})
	}
	return points
}

const (
	// TrendChartID is the DOM id of the chart container. It is also used in
	// script identifiers, so it must be a valid JS name.
	TrendChartID = "temperatureTrend"
	// ChartAssetsHost serves echarts.min.js for the rendered snippet.
	ChartAssetsHost = "https://go-echarts.github.io/go-echarts-assets/assets/"

	highColor = "#006492"
	lowColor  = "#72777f"
)

// TrendChart builds the temperature trend: a solid high line and a dashed
// low line over the weekday labels, with an axis tooltip.
func TrendChart(days []weather.ForecastDay) *charts.Line {
	series := ChartSeries(days)

	labels := make([]string, 0, len(series))
	highs := make([]opts.LineData, 0, len(series))
	lows := make([]opts.LineData, 0, len(series))
	for _, p := range series {
		labels = append(labels, p.Label)
		highs = append(highs, opts.LineData{Name: p.Date, Value: p.Max})
		lows = append(lows, opts.LineData{Name: p.Date, Value: p.Min})
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			ChartID:    TrendChartID,
			Width:      "100%",
			Height:     "240px",
			AssetsHost: ChartAssetsHost,
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithYAxisOpts(opts.YAxis{Min: "dataMin", Max: "dataMax"}),
	)
	line.SetXAxis(labels).
		AddSeries("High", highs, charts.WithLineStyleOpts(opts.LineStyle{Color: highColor, Width: 3})).
		AddSeries("Low", lows, charts.WithLineStyleOpts(opts.LineStyle{Color: lowColor, Width: 2, Type: "dashed"}))
	return line
}

// RenderTrendChart renders the trend chart of f as an embeddable snippet.
func RenderTrendChart(f weather.Forecast) render.ChartSnippet {
	return TrendChart(f.Days).RenderSnippet()
}

package httpapi

import (
	"embed"
	"html/template"
	"net/http"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/template/html/v2"

	"github.com/i474232898/weather-dashboard/internal/common"
	"github.com/i474232898/weather-dashboard/internal/dashboard"
	"github.com/i474232898/weather-dashboard/internal/weather"
)

//go:embed templates/*.html
var templateFS embed.FS

const (
	dashboardView = "templates/dashboard"
	// wetThreshold marks days whose icon is drawn in the rain colour.
	wetThreshold = 30
)

// NewViews returns the fiber view engine for the embedded templates. Pass it
// as fiber.Config.Views to the app the routes are registered on.
func NewViews() *html.Engine {
	engine := html.NewFileSystem(http.FS(templateFS), ".html")
	engine.AddFunc("temp", formatTemp)
	return engine
}

// page is everything the dashboard template renders.
type page struct {
	dashboard.View

	DateLabel string
	HeroGlyph string
	Summary   weather.Summary
	Days      []dayRow
	Sources   []weather.Source

	// Rendered trend chart: container markup, its setup script and the
	// host serving echarts.min.js.
	ChartElement template.HTML
	ChartScript  template.HTML
	ChartAssets  string
}

type dayRow struct {
	Label     string
	Glyph     string
	Wet       bool
	Precip    int
	Condition string
	Max       float64
	Min       float64
}

func newPage(v dashboard.View, now time.Time) page {
	p := page{View: v, DateLabel: now.Format("Mon, Jan 2")}
	if v.Forecast == nil {
		return p
	}

	f := *v.Forecast
	p.HeroGlyph = weather.IconFor(f.CurrentCondition).Glyph()
	p.Summary = weather.Summarize(f)
	p.Sources = f.Sources

	chart := dashboard.RenderTrendChart(f)
	p.ChartElement = template.HTML(chart.Element)
	p.ChartScript = template.HTML(chart.Script)
	p.ChartAssets = dashboard.ChartAssetsHost

	for i, d := range f.Days {
		label := common.FirstRunes(d.Day, 3)
		if i == 0 {
			label = "Today"
		}
		p.Days = append(p.Days, dayRow{
			Label:     label,
			Glyph:     weather.IconFor(d.Icon).Glyph(),
			Wet:       d.PrecipitationChance > wetThreshold,
			Precip:    d.PrecipitationChance,
			Condition: d.Condition,
			Max:       d.MaxTemp,
			Min:       d.MinTemp,
		})
	}
	return p
}

func renderDashboard(c *fiber.Ctx, v dashboard.View) error {
	return c.Render(dashboardView, newPage(v, time.Now()))
}

func formatTemp(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "°"
}

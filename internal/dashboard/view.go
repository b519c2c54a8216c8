package dashboard

import "github.com/i474232898/weather-dashboard/internal/weather"

// View is a read-only snapshot of a dashboard, ready for rendering.
type View struct {
	Query    string
	Phase    Phase
	Forecast *weather.Forecast
	Error    string

	// Loading shows the spinner in the search field.
	Loading bool
	// FullScreenSpinner replaces the content while nothing is held yet.
	FullScreenSpinner bool
	// ShowContent is true whenever a forecast is held. While Loading that
	// forecast is the previous result and stays visible until replaced.
	ShowContent bool
	// NeedsLocation asks the page to run the geolocation bootstrap.
	NeedsLocation bool
}

// View snapshots the dashboard.
func (d *Dashboard) View() View {
	d.mu.Lock()
	defer d.mu.Unlock()

	f, held := d.state.Forecast()
	loading := d.state.Phase() == PhaseLoading

	return View{
		Query:             d.query,
		Phase:             d.state.Phase(),
		Forecast:          f,
		Error:             d.state.Message(),
		Loading:           loading,
		FullScreenSpinner: loading && !held,
		ShowContent:       held,
		NeedsLocation:     d.state.Phase() == PhaseIdle,
	}
}

package dashboard

import "github.com/i474232898/weather-dashboard/internal/weather"

// Phase names the display state of a dashboard.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseLoading
	PhaseReady
	PhaseFailed
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseLoading:
		return "loading"
	case PhaseReady:
		return "ready"
	case PhaseFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// State is one of Idle, Loading, Ready or Failed. Loading and Failed may
// carry the previously displayed forecast; Ready always carries one.
// Build it with the constructors below.
type State struct {
	phase    Phase
	forecast *weather.Forecast
	message  string
}

func Idle() State { return State{phase: PhaseIdle} }

// Loading keeps stale (may be nil) on screen while a search is in flight.
func Loading(stale *weather.Forecast) State {
	return State{phase: PhaseLoading, forecast: stale}
}

func Ready(f weather.Forecast) State {
	return State{phase: PhaseReady, forecast: &f}
}

// Failed shows message; stale (may be nil) stays displayed under the banner.
func Failed(message string, stale *weather.Forecast) State {
	return State{phase: PhaseFailed, forecast: stale, message: message}
}

func (s State) Phase() Phase { return s.phase }

// Forecast returns the forecast held by the state, current or stale.
func (s State) Forecast() (*weather.Forecast, bool) {
	return s.forecast, s.forecast != nil
}

func (s State) Message() string { return s.message }

package dashboard

import (
	"context"
	"strconv"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/i474232898/weather-dashboard/internal/weather"
)

const (
	// FailureMessage is shown for every failed search, whatever the cause.
	FailureMessage = "Connection failed. Please check your API key."
	// DefaultFallbackLocation is searched when geolocation is unavailable.
	DefaultFallbackLocation = "London, UK"
)

// Forecaster fetches a forecast for a free-text location.
type Forecaster interface {
	FetchForecast(ctx context.Context, locationQuery string) (weather.Forecast, error)
}

// Coords is a geolocation fix reported by the browser.
type Coords struct {
	Lat float64
	Lon float64
}

// Query formats the coordinates as "<lat>, <lon>".
func (c Coords) Query() string {
	return strconv.FormatFloat(c.Lat, 'f', -1, 64) + ", " + strconv.FormatFloat(c.Lon, 'f', -1, 64)
}

// Options configures a Dashboard.
type Options struct {
	// Timeout bounds each search (0 = no bound).
	Timeout time.Duration
	// Fallback is searched by Locate when no coordinates are available.
	Fallback string
	Logger   *zap.Logger
}

// Dashboard is the state of one dashboard view: the query text and a single
// tagged State. Every search bumps a generation counter; a result is applied
// only if no newer search has started since, so a slow response cannot
// overwrite a newer one.
type Dashboard struct {
	forecaster Forecaster
	timeout    time.Duration
	fallback   string
	log        *zap.Logger

	mu    sync.Mutex
	query string
	state State
	gen   uint64

	inflight sync.WaitGroup
}

// New creates an idle Dashboard.
func New(f Forecaster, opts Options) *Dashboard {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	fallback := strings.TrimSpace(opts.Fallback)
	if fallback == "" {
		fallback = DefaultFallbackLocation
	}
	return &Dashboard{
		forecaster: f,
		timeout:    opts.Timeout,
		fallback:   fallback,
		log:        log.Named("dashboard"),
		state:      Idle(),
	}
}

// SetQuery edits the query text without searching.
func (d *Dashboard) SetQuery(text string) {
	d.mu.Lock()
	d.query = text
	d.mu.Unlock()
}

// Submit searches for query and blocks until the search settles. A query
// that is empty after trimming is ignored and Submit returns false.
func (d *Dashboard) Submit(ctx context.Context, query string) bool {
	gen, q, ok := d.begin(query)
	if !ok {
		return false
	}
	d.run(ctx, gen, q)
	return true
}

// Dispatch is Submit without waiting: the dashboard is Loading when
// Dispatch returns and the fetch continues in the background under ctx.
func (d *Dashboard) Dispatch(ctx context.Context, query string) bool {
	gen, q, ok := d.begin(query)
	if !ok {
		return false
	}
	d.inflight.Add(1)
	go func() {
		defer d.inflight.Done()
		d.run(ctx, gen, q)
	}()
	return true
}

// Locate runs the start-up search: coordinates when the browser provided
// them, the fallback location otherwise.
func (d *Dashboard) Locate(ctx context.Context, at *Coords) bool {
	return d.Submit(ctx, d.locateQuery(at))
}

// DispatchLocate is the non-blocking form of Locate.
func (d *Dashboard) DispatchLocate(ctx context.Context, at *Coords) bool {
	return d.Dispatch(ctx, d.locateQuery(at))
}

// Refresh re-dispatches the current query of a dashboard showing a settled
// forecast. It reports whether a search was started.
func (d *Dashboard) Refresh(ctx context.Context) bool {
	d.mu.Lock()
	_, held := d.state.Forecast()
	settled := d.state.Phase() != PhaseLoading
	query := d.query
	d.mu.Unlock()

	if !held || !settled {
		return false
	}
	return d.Dispatch(ctx, query)
}

// Wait blocks until every dispatched search has returned.
func (d *Dashboard) Wait() {
	d.inflight.Wait()
}

// State returns the current state.
func (d *Dashboard) State() State {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.state
}

func (d *Dashboard) locateQuery(at *Coords) string {
	if at == nil {
		return d.fallback
	}
	return at.Query()
}

func (d *Dashboard) begin(query string) (uint64, string, bool) {
	q := strings.TrimSpace(query)
	if q == "" {
		return 0, "", false
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	d.gen++
	d.query = q
	stale, _ := d.state.Forecast()
	d.state = Loading(stale)

	d.log.Debug("search started", zap.String("query", q), zap.Uint64("generation", d.gen))
	return d.gen, q, true
}

func (d *Dashboard) run(ctx context.Context, gen uint64, query string) {
	if d.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d.timeout)
		defer cancel()
	}

	f, err := d.forecaster.FetchForecast(ctx, query)
	d.settle(gen, query, f, err)
}

func (d *Dashboard) settle(gen uint64, query string, f weather.Forecast, err error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	log := d.log.With(zap.String("query", query), zap.Uint64("generation", gen))

	if gen != d.gen {
		log.Info("discarding superseded search result", zap.Uint64("latest", d.gen))
		return
	}

	if err != nil {
		stale, _ := d.state.Forecast()
		d.state = Failed(FailureMessage, stale)
		log.Warn("search failed", zap.String("kind", weather.ErrorKind(err)), zap.Error(err))
		return
	}

	d.state = Ready(f)
	d.query = f.Location
	log.Info("search settled", zap.String("location", f.Location))
}

package scheduler

import (
	"context"
	"time"

	"github.com/go-co-op/gocron"
	"go.uber.org/zap"

	"github.com/i474232898/weather-dashboard/internal/dashboard"
	"github.com/i474232898/weather-dashboard/internal/store"
)

const pruneInterval = 10 * time.Minute

// Scheduler periodically refreshes live dashboards and prunes idle sessions.
type Scheduler struct {
	scheduler *gocron.Scheduler
	sessions  *store.SessionStore
	interval  time.Duration
	ctx       context.Context
	log       *zap.Logger
}

// New creates a new Scheduler. Refreshes run under ctx; an interval <= 0
// disables them.
func New(ctx context.Context, sessions *store.SessionStore, interval time.Duration, log *zap.Logger) *Scheduler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Scheduler{
		scheduler: gocron.NewScheduler(time.UTC),
		sessions:  sessions,
		interval:  interval,
		ctx:       ctx,
		log:       log.Named("scheduler"),
	}
}

// Start schedules the jobs and starts the underlying scheduler.
func (s *Scheduler) Start() error {
	if _, err := s.scheduler.Every(pruneInterval).Do(s.prune); err != nil {
		return err
	}

	if s.interval > 0 {
		if _, err := s.scheduler.Every(s.interval).Do(func() {
			s.log.Debug("running dashboard refresh job")
			n := s.RefreshAll()
			s.log.Debug("completed dashboard refresh job", zap.Int("refreshed", n))
		}); err != nil {
			return err
		}
	} else {
		s.log.Info("refresh interval not set; dashboards refresh only on demand")
	}

	s.scheduler.StartAsync()
	return nil
}

// RefreshAll re-dispatches the current query of every dashboard holding a
// settled forecast and returns how many searches were started.
func (s *Scheduler) RefreshAll() int {
	var started int
	s.sessions.Each(func(_ string, d *dashboard.Dashboard) {
		if d.Refresh(s.ctx) {
			started++
		}
	})
	return started
}

func (s *Scheduler) prune() {
	if n := s.sessions.Prune(); n > 0 {
		s.log.Info("pruned idle sessions", zap.Int("removed", n), zap.Int("live", s.sessions.Len()))
	}
}

// Stop stops the scheduler and cancels any future jobs.
func (s *Scheduler) Stop() {
	if s.scheduler != nil {
		s.scheduler.Stop()
	}
}

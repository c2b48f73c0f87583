package store

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/frotaops/frotactl/internal/api"
	"github.com/frotaops/frotactl/internal/events"
	"github.com/frotaops/frotactl/internal/model"
	"github.com/frotaops/frotactl/internal/notify"
)

// Demo caches the demo plan's usage counters. The stats barely move,
// so repeated Fetch calls are served from cache unless force is set;
// the refresh coordinator forces after any count-affecting mutation in
// a demo session.
type Demo struct {
	mu       sync.Mutex
	api      *api.Client
	notifier notify.Notifier
	bus      *events.Bus
	log      *logrus.Entry

	stats   *model.DemoStats
	loading bool
}

// NewDemo builds the demo stats container.
func NewDemo(d Deps) *Demo {
	return &Demo{api: d.API, notifier: d.Notifier, bus: d.Bus, log: d.logger("demo")}
}

// Fetch loads the counters, skipping the request when a cached value
// exists and force is false. Failures are logged only; the quota
// banner just keeps its last value.
func (s *Demo) Fetch(ctx context.Context, force bool) {
	s.mu.Lock()
	if s.stats != nil && !force {
		s.mu.Unlock()
		return
	}
	s.loading = true
	s.mu.Unlock()
	defer s.setLoading(false)

	var stats model.DemoStats
	if err := s.api.Get(ctx, "/dashboard/demo-stats", nil, &stats); err != nil {
		s.log.WithError(err).Debug("fetch demo stats")
		return
	}

	s.mu.Lock()
	s.stats = &stats
	s.mu.Unlock()
}

// Clear drops the cached counters; called on logout.
func (s *Demo) Clear() {
	s.mu.Lock()
	s.stats = nil
	s.mu.Unlock()
}

// Stats returns a copy of the cached counters, or nil.
func (s *Demo) Stats() *model.DemoStats {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stats == nil {
		return nil
	}
	stats := *s.stats
	return &stats
}

// IsLoading reports whether a fetch is in flight.
func (s *Demo) IsLoading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

func (s *Demo) setLoading(loading bool) {
	s.mu.Lock()
	s.loading = loading
	s.mu.Unlock()
}

package store

import (
	"context"
	"net/url"
	"sync"
	"sync/atomic"

	"github.com/sirupsen/logrus"

	"github.com/frotaops/frotactl/internal/api"
	"github.com/frotaops/frotactl/internal/events"
	"github.com/frotaops/frotactl/internal/model"
	"github.com/frotaops/frotactl/internal/notify"
)

// Dashboard caches the role-specific dashboard payloads and the live
// vehicle positions the map polls for. Position fetches overlap when a
// poll tick fires while the previous request is still in flight, so a
// monotonic sequence discards responses that arrive out of order.
type Dashboard struct {
	mu       sync.Mutex
	api      *api.Client
	notifier notify.Notifier
	bus      *events.Bus
	log      *logrus.Entry

	manager    *model.ManagerDashboard
	driver     *model.DriverDashboard
	positions  []model.VehiclePosition
	seq        atomic.Uint64
	appliedSeq uint64
	loading    bool
}

// NewDashboard builds the dashboard container.
func NewDashboard(d Deps) *Dashboard {
	return &Dashboard{api: d.API, notifier: d.Notifier, bus: d.Bus, log: d.logger("dashboard")}
}

// FetchManager loads the manager dashboard for the given period, e.g.
// "30d". Empty means the server default.
func (s *Dashboard) FetchManager(ctx context.Context, period string) {
	s.setLoading(true)
	defer s.setLoading(false)

	params := url.Values{}
	if period != "" {
		params.Set("period", period)
	}

	var dashboard model.ManagerDashboard
	if err := s.api.Get(ctx, "/dashboard/manager", params, &dashboard); err != nil {
		s.log.WithError(err).Error("fetch manager dashboard")
		s.notifier.Negative("Falha ao carregar o dashboard.")
		return
	}

	s.mu.Lock()
	s.manager = &dashboard
	s.mu.Unlock()
}

// FetchDriver loads the driver dashboard.
func (s *Dashboard) FetchDriver(ctx context.Context) {
	s.setLoading(true)
	defer s.setLoading(false)

	var dashboard model.DriverDashboard
	if err := s.api.Get(ctx, "/dashboard/driver", nil, &dashboard); err != nil {
		s.log.WithError(err).Error("fetch driver dashboard")
		s.notifier.Negative("Falha ao carregar o dashboard.")
		return
	}

	s.mu.Lock()
	s.driver = &dashboard
	s.mu.Unlock()
}

// FetchPositions refreshes the live map. It runs on a poll loop, so
// errors are logged only, and a response belonging to an older request
// than the newest already applied is dropped.
func (s *Dashboard) FetchPositions(ctx context.Context) {
	seq := s.seq.Add(1)

	var positions []model.VehiclePosition
	if err := s.api.Get(ctx, "/dashboard/vehicle-positions", nil, &positions); err != nil {
		s.log.WithError(err).Debug("fetch vehicle positions")
		return
	}

	s.mu.Lock()
	if seq >= s.appliedSeq {
		s.positions = positions
		s.appliedSeq = seq
	}
	s.mu.Unlock()
}

// Clear drops all cached dashboard state; called on logout.
func (s *Dashboard) Clear() {
	s.mu.Lock()
	s.manager = nil
	s.driver = nil
	s.positions = nil
	s.appliedSeq = 0
	s.mu.Unlock()
}

// Manager returns a copy of the manager dashboard, or nil.
func (s *Dashboard) Manager() *model.ManagerDashboard {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.manager == nil {
		return nil
	}
	dashboard := *s.manager
	return &dashboard
}

// Driver returns a copy of the driver dashboard, or nil.
func (s *Dashboard) Driver() *model.DriverDashboard {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.driver == nil {
		return nil
	}
	dashboard := *s.driver
	return &dashboard
}

// Positions returns a copy of the live map fixes.
func (s *Dashboard) Positions() []model.VehiclePosition {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.VehiclePosition(nil), s.positions...)
}

// IsLoading reports whether a dashboard fetch is in flight.
func (s *Dashboard) IsLoading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

func (s *Dashboard) setLoading(loading bool) {
	s.mu.Lock()
	s.loading = loading
	s.mu.Unlock()
}

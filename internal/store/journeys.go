package store

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/frotaops/frotactl/internal/api"
	"github.com/frotaops/frotactl/internal/events"
	"github.com/frotaops/frotactl/internal/model"
	"github.com/frotaops/frotactl/internal/notify"
)

// JourneyQuery narrows the journey list fetch.
type JourneyQuery struct {
	VehicleID int64
	DriverID  int64
	Active    *bool
	StartDate string
	EndDate   string
}

// Journeys caches journey records. Starting a journey prepends the new
// record; ending one patches it in place alongside the vehicle the
// server returns with its updated odometer.
type Journeys struct {
	mu       sync.Mutex
	api      *api.Client
	notifier notify.Notifier
	bus      *events.Bus
	log      *logrus.Entry

	journeys []model.Journey
	loading  bool
}

// NewJourneys builds the journey container.
func NewJourneys(d Deps) *Journeys {
	return &Journeys{api: d.API, notifier: d.Notifier, bus: d.Bus, log: d.logger("journeys")}
}

// FetchAll replaces the cached list.
func (s *Journeys) FetchAll(ctx context.Context, query JourneyQuery) {
	s.setLoading(true)
	defer s.setLoading(false)

	params := url.Values{}
	if query.VehicleID > 0 {
		params.Set("vehicle_id", strconv.FormatInt(query.VehicleID, 10))
	}
	if query.DriverID > 0 {
		params.Set("driver_id", strconv.FormatInt(query.DriverID, 10))
	}
	if query.Active != nil {
		params.Set("is_active", strconv.FormatBool(*query.Active))
	}
	if query.StartDate != "" {
		params.Set("start_date", query.StartDate)
	}
	if query.EndDate != "" {
		params.Set("end_date", query.EndDate)
	}

	var journeys []model.Journey
	if err := s.api.Get(ctx, "/journeys/", params, &journeys); err != nil {
		s.log.WithError(err).Error("fetch journeys")
		s.notifier.Negative("Falha ao buscar jornadas.")
		return
	}

	s.mu.Lock()
	s.journeys = journeys
	s.mu.Unlock()
}

// Start opens a journey and prepends it to the cache, mirroring the
// server's newest-first ordering.
func (s *Journeys) Start(ctx context.Context, payload model.JourneyCreate) (*model.Journey, error) {
	var journey model.Journey
	if err := s.api.Post(ctx, "/journeys/start", payload, &journey); err != nil {
		s.notifier.Negative(api.Detail(err, "Erro ao iniciar a operação."))
		return nil, err
	}

	s.mu.Lock()
	s.journeys = append([]model.Journey{journey}, s.journeys...)
	s.mu.Unlock()

	s.notifier.Positive("Operação iniciada com sucesso!")
	s.bus.Publish(events.Change{Resource: events.ResourceJourney, Action: events.ActionStarted})
	return &journey, nil
}

// End closes the journey and patches the cached record in place. The
// vehicle the server returns carries the updated odometer and status;
// callers hand it to the vehicle container or discard it.
func (s *Journeys) End(ctx context.Context, journeyID int64, payload model.JourneyUpdate) (*model.Vehicle, error) {
	var resp model.JourneyEndResponse
	if err := s.api.Put(ctx, fmt.Sprintf("/journeys/%d/end", journeyID), payload, &resp); err != nil {
		s.notifier.Negative(api.Detail(err, "Erro ao finalizar a operação."))
		return nil, err
	}

	s.mu.Lock()
	for i := range s.journeys {
		if s.journeys[i].ID == journeyID {
			s.journeys[i] = resp.Journey
			break
		}
	}
	s.mu.Unlock()

	s.notifier.Positive("Operação finalizada com sucesso!")
	s.bus.Publish(events.Change{Resource: events.ResourceJourney, Action: events.ActionEnded})
	return &resp.Vehicle, nil
}

// Delete removes the journey remotely and drops it from the cache
// without a refetch.
func (s *Journeys) Delete(ctx context.Context, journeyID int64) error {
	if err := s.api.Delete(ctx, fmt.Sprintf("/journeys/%d", journeyID)); err != nil {
		s.notifier.Negative(api.Detail(err, "Erro ao excluir a jornada."))
		return err
	}

	s.mu.Lock()
	kept := s.journeys[:0]
	for _, journey := range s.journeys {
		if journey.ID != journeyID {
			kept = append(kept, journey)
		}
	}
	s.journeys = kept
	s.mu.Unlock()

	s.notifier.Positive("Jornada excluída com sucesso.")
	s.bus.Publish(events.Change{Resource: events.ResourceJourney, Action: events.ActionDeleted})
	return nil
}

// List returns a copy of the cached journeys.
func (s *Journeys) List() []model.Journey {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.Journey(nil), s.journeys...)
}

// Active returns the cached journeys still open.
func (s *Journeys) Active() []model.Journey {
	s.mu.Lock()
	defer s.mu.Unlock()
	var active []model.Journey
	for _, journey := range s.journeys {
		if journey.IsActive {
			active = append(active, journey)
		}
	}
	return active
}

// ActiveForDriver returns the driver's open journey, or nil. Drivers
// hold at most one at a time.
func (s *Journeys) ActiveForDriver(driverID int64) *model.Journey {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.journeys {
		if s.journeys[i].IsActive && s.journeys[i].Driver.ID == driverID {
			journey := s.journeys[i]
			return &journey
		}
	}
	return nil
}

// IsLoading reports whether a fetch is in flight.
func (s *Journeys) IsLoading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

func (s *Journeys) setLoading(loading bool) {
	s.mu.Lock()
	s.loading = loading
	s.mu.Unlock()
}

// Clear drops the cached journeys; called on logout.
func (s *Journeys) Clear() {
	s.mu.Lock()
	s.journeys = nil
	s.mu.Unlock()
}

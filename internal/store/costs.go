package store

import (
	"context"
	"fmt"
	"net/url"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/frotaops/frotactl/internal/api"
	"github.com/frotaops/frotactl/internal/events"
	"github.com/frotaops/frotactl/internal/model"
	"github.com/frotaops/frotactl/internal/notify"
)

// CostQuery bounds the cost list fetch. Dates are YYYY-MM-DD; empty
// means unbounded.
type CostQuery struct {
	StartDate string
	EndDate   string
}

// Costs caches vehicle cost entries for the reporting screens.
type Costs struct {
	mu       sync.Mutex
	api      *api.Client
	notifier notify.Notifier
	bus      *events.Bus
	log      *logrus.Entry

	costs   []model.VehicleCost
	query   CostQuery
	loading bool
}

// NewCosts builds the cost container.
func NewCosts(d Deps) *Costs {
	return &Costs{api: d.API, notifier: d.Notifier, bus: d.Bus, log: d.logger("costs")}
}

// FetchAll replaces the cached entries for the whole fleet.
func (s *Costs) FetchAll(ctx context.Context, query CostQuery) {
	s.setLoading(true)
	defer s.setLoading(false)

	s.mu.Lock()
	s.query = query
	s.mu.Unlock()

	params := url.Values{}
	if query.StartDate != "" {
		params.Set("start_date", query.StartDate)
	}
	if query.EndDate != "" {
		params.Set("end_date", query.EndDate)
	}

	var costs []model.VehicleCost
	if err := s.api.Get(ctx, "/vehicles/costs/", params, &costs); err != nil {
		s.log.WithError(err).Error("fetch costs")
		s.notifier.Negative("Falha ao buscar custos.")
		return
	}

	s.mu.Lock()
	s.costs = costs
	s.mu.Unlock()
}

// FetchByVehicle replaces the cached entries with one vehicle's costs.
func (s *Costs) FetchByVehicle(ctx context.Context, vehicleID int64) {
	s.setLoading(true)
	defer s.setLoading(false)

	path := fmt.Sprintf("/vehicles/%d/costs/", vehicleID)
	var costs []model.VehicleCost
	if err := s.api.Get(ctx, path, nil, &costs); err != nil {
		s.log.WithError(err).WithField("vehicle_id", vehicleID).Error("fetch vehicle costs")
		s.notifier.Negative("Falha ao buscar custos do veículo.")
		return
	}

	s.mu.Lock()
	s.costs = costs
	s.mu.Unlock()
}

// Add posts a cost entry against the vehicle, then refetches the
// current fleet-wide view.
func (s *Costs) Add(ctx context.Context, vehicleID int64, payload model.VehicleCostCreate) error {
	path := fmt.Sprintf("/vehicles/%d/costs/", vehicleID)
	if err := s.api.Post(ctx, path, payload, nil); err != nil {
		s.notifier.Negative(api.Detail(err, "Erro ao registrar custo."))
		return err
	}
	s.notifier.Positive("Custo registrado com sucesso!")

	s.mu.Lock()
	query := s.query
	s.mu.Unlock()
	s.FetchAll(ctx, query)
	return nil
}

// List returns a copy of the cached cost entries.
func (s *Costs) List() []model.VehicleCost {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.VehicleCost(nil), s.costs...)
}

// Total sums the cached entries.
func (s *Costs) Total() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	var total float64
	for _, cost := range s.costs {
		total += cost.Amount
	}
	return total
}

// IsLoading reports whether a fetch is in flight.
func (s *Costs) IsLoading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

func (s *Costs) setLoading(loading bool) {
	s.mu.Lock()
	s.loading = loading
	s.mu.Unlock()
}

// Clear drops the cached costs; called on logout.
func (s *Costs) Clear() {
	s.mu.Lock()
	s.costs = nil
	s.query = CostQuery{}
	s.mu.Unlock()
}

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

// VehicleQuery filters the paginated vehicle list.
type VehicleQuery struct {
	Page        int
	RowsPerPage int
	Search      string
}

const defaultVehicleRows = 8

// Vehicles caches the organization's vehicle list plus a selected
// detail record. The list is paginated server-side; every fetch
// replaces the cached page wholesale.
type Vehicles struct {
	mu       sync.Mutex
	api      *api.Client
	notifier notify.Notifier
	bus      *events.Bus
	log      *logrus.Entry

	vehicles []model.Vehicle
	selected *model.Vehicle
	total    int
	loading  bool
}

// NewVehicles builds the vehicle container.
func NewVehicles(d Deps) *Vehicles {
	return &Vehicles{api: d.API, notifier: d.Notifier, bus: d.Bus, log: d.logger("vehicles")}
}

// FetchAll replaces the cached page. Failures keep the previous cache
// and emit one negative toast.
func (s *Vehicles) FetchAll(ctx context.Context, query VehicleQuery) {
	s.setLoading(true)
	defer s.setLoading(false)

	if query.Page <= 0 {
		query.Page = 1
	}
	if query.RowsPerPage <= 0 {
		query.RowsPerPage = defaultVehicleRows
	}
	params := url.Values{}
	params.Set("page", strconv.Itoa(query.Page))
	params.Set("rowsPerPage", strconv.Itoa(query.RowsPerPage))
	params.Set("search", query.Search)

	var page model.PaginatedVehicles
	if err := s.api.Get(ctx, "/vehicles/", params, &page); err != nil {
		s.log.WithError(err).Error("fetch vehicles")
		s.notifier.Negative("Falha ao buscar veículos.")
		return
	}

	s.mu.Lock()
	s.vehicles = page.Vehicles
	s.total = page.TotalItems
	s.mu.Unlock()
}

// FetchByID loads one vehicle into the selected slot.
func (s *Vehicles) FetchByID(ctx context.Context, vehicleID int64) {
	s.setLoading(true)
	defer s.setLoading(false)

	var vehicle model.Vehicle
	if err := s.api.Get(ctx, fmt.Sprintf("/vehicles/%d", vehicleID), nil, &vehicle); err != nil {
		s.log.WithError(err).WithField("id", vehicleID).Error("fetch vehicle")
		s.notifier.Negative("Falha ao carregar dados do veículo.")
		return
	}

	s.mu.Lock()
	s.selected = &vehicle
	s.mu.Unlock()
}

// Create posts a new vehicle and refetches the first page so the server
// decides ordering. Publishes a vehicle-created change.
func (s *Vehicles) Create(ctx context.Context, payload model.VehicleCreate, query VehicleQuery) error {
	if err := s.api.Post(ctx, "/vehicles/", payload, nil); err != nil {
		s.notifier.Negative(api.Detail(err, "Erro ao adicionar item."))
		return err
	}
	s.notifier.Positive("Item adicionado com sucesso!")
	query.Page = 1
	s.FetchAll(ctx, query)
	s.bus.Publish(events.Change{Resource: events.ResourceVehicle, Action: events.ActionCreated})
	return nil
}

// Update puts the vehicle and refetches the current page.
func (s *Vehicles) Update(ctx context.Context, vehicleID int64, payload model.VehicleUpdate, query VehicleQuery) error {
	if err := s.api.Put(ctx, fmt.Sprintf("/vehicles/%d", vehicleID), payload, nil); err != nil {
		s.notifier.Negative(api.Detail(err, "Erro ao atualizar item."))
		return err
	}
	s.notifier.Positive("Item atualizado com sucesso!")
	s.FetchAll(ctx, query)
	s.bus.Publish(events.Change{Resource: events.ResourceVehicle, Action: events.ActionUpdated})
	return nil
}

// UpdateAxleConfig patches the axle layout and refreshes the selected
// vehicle in place when it is the one being edited.
func (s *Vehicles) UpdateAxleConfig(ctx context.Context, vehicleID int64, axleConfig string) error {
	var updated model.Vehicle
	payload := model.AxleConfigUpdate{AxleConfiguration: axleConfig}
	if err := s.api.Patch(ctx, fmt.Sprintf("/vehicles/%d/axle-config", vehicleID), payload, &updated); err != nil {
		s.notifier.Negative("Erro ao atualizar configuração.")
		return err
	}

	s.mu.Lock()
	if s.selected != nil && s.selected.ID == vehicleID {
		s.selected = &updated
	}
	s.mu.Unlock()

	s.notifier.Positive("Configuração de eixos atualizada!")
	return nil
}

// Delete removes the vehicle remotely and refetches the current page.
func (s *Vehicles) Delete(ctx context.Context, vehicleID int64, query VehicleQuery) error {
	if err := s.api.Delete(ctx, fmt.Sprintf("/vehicles/%d", vehicleID)); err != nil {
		s.notifier.Negative(api.Detail(err, "Erro ao excluir o item."))
		return err
	}
	s.notifier.Positive("Item excluído com sucesso.")
	s.FetchAll(ctx, query)
	s.bus.Publish(events.Change{Resource: events.ResourceVehicle, Action: events.ActionDeleted})
	return nil
}

// List returns a copy of the cached page.
func (s *Vehicles) List() []model.Vehicle {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.Vehicle(nil), s.vehicles...)
}

// Available returns the cached vehicles whose status is "Disponível",
// recomputed on every read so the view never goes stale.
func (s *Vehicles) Available() []model.Vehicle {
	s.mu.Lock()
	defer s.mu.Unlock()
	var available []model.Vehicle
	for _, vehicle := range s.vehicles {
		if vehicle.Status == model.VehicleAvailable {
			available = append(available, vehicle)
		}
	}
	return available
}

// Selected returns a copy of the selected vehicle, or nil.
func (s *Vehicles) Selected() *model.Vehicle {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.selected == nil {
		return nil
	}
	vehicle := *s.selected
	return &vehicle
}

// TotalItems returns the server-reported total for the current filter.
func (s *Vehicles) TotalItems() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.total
}

// IsLoading reports whether a fetch is in flight.
func (s *Vehicles) IsLoading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

func (s *Vehicles) setLoading(loading bool) {
	s.mu.Lock()
	s.loading = loading
	s.mu.Unlock()
}

// Clear drops the cached fleet; called on logout.
func (s *Vehicles) Clear() {
	s.mu.Lock()
	s.vehicles = nil
	s.selected = nil
	s.total = 0
	s.mu.Unlock()
}

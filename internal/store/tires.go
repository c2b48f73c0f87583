package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/frotaops/frotactl/internal/api"
	"github.com/frotaops/frotactl/internal/events"
	"github.com/frotaops/frotactl/internal/model"
	"github.com/frotaops/frotactl/internal/notify"
)

// Tires caches one vehicle's tire layout and its removed-tire history.
// Install and remove refetch the layout so position state always comes
// from the server.
type Tires struct {
	mu       sync.Mutex
	api      *api.Client
	notifier notify.Notifier
	bus      *events.Bus
	log      *logrus.Entry

	layout  *model.TireLayout
	history []model.VehicleTireHistory
	loading bool
}

// NewTires builds the tire container.
func NewTires(d Deps) *Tires {
	return &Tires{api: d.API, notifier: d.Notifier, bus: d.Bus, log: d.logger("tires")}
}

// FetchLayout loads the vehicle's axle layout with mounted tires.
func (s *Tires) FetchLayout(ctx context.Context, vehicleID int64) {
	s.setLoading(true)
	defer s.setLoading(false)

	path := fmt.Sprintf("/tires/vehicles/%d/tires", vehicleID)
	var layout model.TireLayout
	if err := s.api.Get(ctx, path, nil, &layout); err != nil {
		s.log.WithError(err).WithField("vehicle_id", vehicleID).Error("fetch tire layout")
		s.notifier.Negative("Falha ao buscar pneus do veículo.")
		return
	}

	s.mu.Lock()
	s.layout = &layout
	s.mu.Unlock()
}

// FetchHistory loads the vehicle's removed-tire history.
func (s *Tires) FetchHistory(ctx context.Context, vehicleID int64) {
	path := fmt.Sprintf("/tires/vehicles/%d/tires/history", vehicleID)
	var history []model.VehicleTireHistory
	if err := s.api.Get(ctx, path, nil, &history); err != nil {
		s.log.WithError(err).WithField("vehicle_id", vehicleID).Error("fetch tire history")
		s.notifier.Negative("Falha ao buscar histórico de pneus.")
		return
	}

	s.mu.Lock()
	s.history = history
	s.mu.Unlock()
}

// Install mounts a tire at a position and refetches the layout.
func (s *Tires) Install(ctx context.Context, vehicleID int64, payload model.TireInstall) error {
	path := fmt.Sprintf("/tires/vehicles/%d/tires", vehicleID)
	if err := s.api.Post(ctx, path, payload, nil); err != nil {
		s.notifier.Negative(api.Detail(err, "Erro ao instalar pneu."))
		return err
	}
	s.notifier.Positive("Pneu instalado com sucesso!")
	s.FetchLayout(ctx, vehicleID)
	return nil
}

// Remove dismounts a tire and refetches both layout and history.
func (s *Tires) Remove(ctx context.Context, vehicleID, tireID int64, payload model.TireRemoval) error {
	path := fmt.Sprintf("/tires/tires/%d/remove", tireID)
	if err := s.api.Put(ctx, path, payload, nil); err != nil {
		s.notifier.Negative(api.Detail(err, "Erro ao remover pneu."))
		return err
	}
	s.notifier.Positive("Pneu removido com sucesso!")
	s.FetchLayout(ctx, vehicleID)
	s.FetchHistory(ctx, vehicleID)
	return nil
}

// Layout returns a copy of the fetched layout, or nil.
func (s *Tires) Layout() *model.TireLayout {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.layout == nil {
		return nil
	}
	layout := *s.layout
	layout.Tires = append([]model.VehicleTire(nil), s.layout.Tires...)
	return &layout
}

// History returns a copy of the removed-tire history.
func (s *Tires) History() []model.VehicleTireHistory {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.VehicleTireHistory(nil), s.history...)
}

// IsLoading reports whether a layout fetch is in flight.
func (s *Tires) IsLoading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

func (s *Tires) setLoading(loading bool) {
	s.mu.Lock()
	s.loading = loading
	s.mu.Unlock()
}

// Clear drops the cached layout and history; called on logout.
func (s *Tires) Clear() {
	s.mu.Lock()
	s.layout = nil
	s.history = nil
	s.mu.Unlock()
}

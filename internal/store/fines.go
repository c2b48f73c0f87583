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

// Fines caches traffic fine records. Create and update refetch because
// the list embeds vehicle and driver records the mutation payload does
// not carry; delete splices locally.
type Fines struct {
	mu       sync.Mutex
	api      *api.Client
	notifier notify.Notifier
	bus      *events.Bus
	log      *logrus.Entry

	fines     []model.Fine
	vehicleID int64
	loading   bool
}

// NewFines builds the fines container.
func NewFines(d Deps) *Fines {
	return &Fines{api: d.API, notifier: d.Notifier, bus: d.Bus, log: d.logger("fines")}
}

// FetchAll replaces the cached list, optionally scoped to one vehicle.
func (s *Fines) FetchAll(ctx context.Context, vehicleID int64) {
	s.setLoading(true)
	defer s.setLoading(false)

	s.mu.Lock()
	s.vehicleID = vehicleID
	s.mu.Unlock()

	params := url.Values{}
	if vehicleID > 0 {
		params.Set("vehicle_id", strconv.FormatInt(vehicleID, 10))
	}

	var fines []model.Fine
	if err := s.api.Get(ctx, "/fines/", params, &fines); err != nil {
		s.log.WithError(err).Error("fetch fines")
		s.notifier.Negative("Falha ao buscar multas.")
		return
	}

	s.mu.Lock()
	s.fines = fines
	s.mu.Unlock()
}

func (s *Fines) refetch(ctx context.Context) {
	s.mu.Lock()
	vehicleID := s.vehicleID
	s.mu.Unlock()
	s.FetchAll(ctx, vehicleID)
}

// Create posts a fine and refetches.
func (s *Fines) Create(ctx context.Context, payload model.FineCreate) error {
	if err := s.api.Post(ctx, "/fines/", payload, nil); err != nil {
		s.notifier.Negative(api.Detail(err, "Erro ao registrar multa."))
		return err
	}
	s.notifier.Positive("Multa registrada com sucesso!")
	s.refetch(ctx)
	return nil
}

// Update puts the fine and refetches.
func (s *Fines) Update(ctx context.Context, fineID int64, payload model.FineUpdate) error {
	if err := s.api.Put(ctx, fmt.Sprintf("/fines/%d", fineID), payload, nil); err != nil {
		s.notifier.Negative(api.Detail(err, "Erro ao atualizar multa."))
		return err
	}
	s.notifier.Positive("Multa atualizada com sucesso!")
	s.refetch(ctx)
	return nil
}

// Delete removes the fine remotely and drops it from the cache.
func (s *Fines) Delete(ctx context.Context, fineID int64) error {
	if err := s.api.Delete(ctx, fmt.Sprintf("/fines/%d", fineID)); err != nil {
		s.notifier.Negative(api.Detail(err, "Erro ao excluir multa."))
		return err
	}

	s.mu.Lock()
	kept := s.fines[:0]
	for _, fine := range s.fines {
		if fine.ID != fineID {
			kept = append(kept, fine)
		}
	}
	s.fines = kept
	s.mu.Unlock()

	s.notifier.Positive("Multa excluída com sucesso.")
	return nil
}

// List returns a copy of the cached fines.
func (s *Fines) List() []model.Fine {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.Fine(nil), s.fines...)
}

// Pending returns the cached fines still unpaid.
func (s *Fines) Pending() []model.Fine {
	s.mu.Lock()
	defer s.mu.Unlock()
	var pending []model.Fine
	for _, fine := range s.fines {
		if fine.Status == model.FinePending {
			pending = append(pending, fine)
		}
	}
	return pending
}

// IsLoading reports whether a fetch is in flight.
func (s *Fines) IsLoading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

func (s *Fines) setLoading(loading bool) {
	s.mu.Lock()
	s.loading = loading
	s.mu.Unlock()
}

// Clear drops the cached fines; called on logout.
func (s *Fines) Clear() {
	s.mu.Lock()
	s.fines = nil
	s.vehicleID = 0
	s.mu.Unlock()
}

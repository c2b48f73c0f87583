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

// Implements caches attachable equipment. Two lists live side by side:
// the management view of everything the organization owns, and the
// availability view drivers pick from when starting a journey.
type Implements struct {
	mu       sync.Mutex
	api      *api.Client
	notifier notify.Notifier
	bus      *events.Bus
	log      *logrus.Entry

	all       []model.Implement
	available []model.Implement
	loading   bool
}

// NewImplements builds the implement container.
func NewImplements(d Deps) *Implements {
	return &Implements{api: d.API, notifier: d.Notifier, bus: d.Bus, log: d.logger("implements")}
}

// FetchAll replaces the management list.
func (s *Implements) FetchAll(ctx context.Context) {
	s.setLoading(true)
	defer s.setLoading(false)

	var implements []model.Implement
	if err := s.api.Get(ctx, "/implements/", nil, &implements); err != nil {
		s.log.WithError(err).Error("fetch implements")
		s.notifier.Negative("Falha ao buscar implementos.")
		return
	}

	s.mu.Lock()
	s.all = implements
	s.mu.Unlock()
}

// FetchAvailable replaces the availability list drivers choose from.
func (s *Implements) FetchAvailable(ctx context.Context) {
	var implements []model.Implement
	if err := s.api.Get(ctx, "/implements/available", nil, &implements); err != nil {
		s.log.WithError(err).Error("fetch available implements")
		s.notifier.Negative("Falha ao buscar implementos disponíveis.")
		return
	}

	s.mu.Lock()
	s.available = implements
	s.mu.Unlock()
}

// Create posts a new implement and refetches the management list.
func (s *Implements) Create(ctx context.Context, payload model.ImplementCreate) error {
	if err := s.api.Post(ctx, "/implements/", payload, nil); err != nil {
		s.notifier.Negative(api.Detail(err, "Erro ao adicionar implemento."))
		return err
	}
	s.notifier.Positive("Implemento adicionado com sucesso!")
	s.FetchAll(ctx)
	return nil
}

// Update puts the implement and refetches the management list.
func (s *Implements) Update(ctx context.Context, implementID int64, payload model.ImplementUpdate) error {
	if err := s.api.Put(ctx, fmt.Sprintf("/implements/%d", implementID), payload, nil); err != nil {
		s.notifier.Negative(api.Detail(err, "Erro ao atualizar implemento."))
		return err
	}
	s.notifier.Positive("Implemento atualizado com sucesso!")
	s.FetchAll(ctx)
	return nil
}

// Delete removes the implement remotely and refetches.
func (s *Implements) Delete(ctx context.Context, implementID int64) error {
	if err := s.api.Delete(ctx, fmt.Sprintf("/implements/%d", implementID)); err != nil {
		s.notifier.Negative(api.Detail(err, "Erro ao excluir implemento."))
		return err
	}
	s.notifier.Positive("Implemento excluído com sucesso.")
	s.FetchAll(ctx)
	return nil
}

// List returns a copy of the management list.
func (s *Implements) List() []model.Implement {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.Implement(nil), s.all...)
}

// AvailableImplements returns a copy of the availability list.
func (s *Implements) AvailableImplements() []model.Implement {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.Implement(nil), s.available...)
}

// IsLoading reports whether a management fetch is in flight.
func (s *Implements) IsLoading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

func (s *Implements) setLoading(loading bool) {
	s.mu.Lock()
	s.loading = loading
	s.mu.Unlock()
}

// Clear drops both cached lists; called on logout.
func (s *Implements) Clear() {
	s.mu.Lock()
	s.all = nil
	s.available = nil
	s.mu.Unlock()
}

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

// Clients caches the organization's freight customers.
type Clients struct {
	mu       sync.Mutex
	api      *api.Client
	notifier notify.Notifier
	bus      *events.Bus
	log      *logrus.Entry

	clients []model.Client
	loading bool
}

// NewClients builds the client container.
func NewClients(d Deps) *Clients {
	return &Clients{api: d.API, notifier: d.Notifier, bus: d.Bus, log: d.logger("clients")}
}

// FetchAll replaces the cached list.
func (s *Clients) FetchAll(ctx context.Context) {
	s.setLoading(true)
	defer s.setLoading(false)

	var clients []model.Client
	if err := s.api.Get(ctx, "/clients/", nil, &clients); err != nil {
		s.log.WithError(err).Error("fetch clients")
		s.notifier.Negative("Falha ao buscar clientes.")
		return
	}

	s.mu.Lock()
	s.clients = clients
	s.mu.Unlock()
}

// Create registers a customer and prepends the returned record.
func (s *Clients) Create(ctx context.Context, payload model.ClientCreate) (*model.Client, error) {
	var client model.Client
	if err := s.api.Post(ctx, "/clients/", payload, &client); err != nil {
		s.notifier.Negative(api.Detail(err, "Erro ao cadastrar cliente."))
		return nil, err
	}

	s.mu.Lock()
	s.clients = append([]model.Client{client}, s.clients...)
	s.mu.Unlock()

	s.notifier.Positive("Cliente cadastrado com sucesso!")
	return &client, nil
}

// List returns a copy of the cached customers.
func (s *Clients) List() []model.Client {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.Client(nil), s.clients...)
}

// IsLoading reports whether a fetch is in flight.
func (s *Clients) IsLoading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

func (s *Clients) setLoading(loading bool) {
	s.mu.Lock()
	s.loading = loading
	s.mu.Unlock()
}

// Clear drops the cached clients; called on logout.
func (s *Clients) Clear() {
	s.mu.Lock()
	s.clients = nil
	s.mu.Unlock()
}

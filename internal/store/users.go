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

// Users caches the organization's members. Mutations touch the cached
// list directly rather than refetching: the endpoints return the
// affected record, so a prepend or in-place patch is enough.
type Users struct {
	mu       sync.Mutex
	api      *api.Client
	notifier notify.Notifier
	bus      *events.Bus
	log      *logrus.Entry

	users    []model.User
	selected *model.User
	stats    *model.UserStats
	loading  bool
}

// NewUsers builds the user container.
func NewUsers(d Deps) *Users {
	return &Users{api: d.API, notifier: d.Notifier, bus: d.Bus, log: d.logger("users")}
}

// FetchAll replaces the cached member list.
func (s *Users) FetchAll(ctx context.Context) {
	s.setLoading(true)
	defer s.setLoading(false)

	var users []model.User
	if err := s.api.Get(ctx, "/users/", nil, &users); err != nil {
		s.log.WithError(err).Error("fetch users")
		s.notifier.Negative("Falha ao buscar usuários.")
		return
	}

	s.mu.Lock()
	s.users = users
	s.mu.Unlock()
}

// FetchByID loads one member into the selected slot.
func (s *Users) FetchByID(ctx context.Context, userID int64) {
	s.setLoading(true)
	defer s.setLoading(false)

	var user model.User
	if err := s.api.Get(ctx, fmt.Sprintf("/users/%d", userID), nil, &user); err != nil {
		s.log.WithError(err).WithField("id", userID).Error("fetch user")
		s.notifier.Negative("Falha ao carregar dados do usuário.")
		return
	}

	s.mu.Lock()
	s.selected = &user
	s.mu.Unlock()
}

// FetchStats loads a member's usage statistics.
func (s *Users) FetchStats(ctx context.Context, userID int64) {
	var stats model.UserStats
	if err := s.api.Get(ctx, fmt.Sprintf("/users/%d/stats", userID), nil, &stats); err != nil {
		s.log.WithError(err).WithField("id", userID).Error("fetch user stats")
		s.notifier.Negative("Falha ao carregar estatísticas do usuário.")
		return
	}

	s.mu.Lock()
	s.stats = &stats
	s.mu.Unlock()
}

// Create registers a member and prepends the returned record.
func (s *Users) Create(ctx context.Context, payload model.UserCreate) error {
	var user model.User
	if err := s.api.Post(ctx, "/users/", payload, &user); err != nil {
		s.notifier.Negative(api.Detail(err, "Erro ao criar usuário."))
		return err
	}

	s.mu.Lock()
	s.users = append([]model.User{user}, s.users...)
	s.mu.Unlock()

	s.notifier.Positive("Usuário criado com sucesso!")
	s.bus.Publish(events.Change{Resource: events.ResourceUser, Action: events.ActionCreated})
	return nil
}

// Update patches the returned record into the cached list.
func (s *Users) Update(ctx context.Context, userID int64, payload model.UserUpdate) error {
	var user model.User
	if err := s.api.Put(ctx, fmt.Sprintf("/users/%d", userID), payload, &user); err != nil {
		s.notifier.Negative(api.Detail(err, "Erro ao atualizar usuário."))
		return err
	}

	s.mu.Lock()
	for i := range s.users {
		if s.users[i].ID == userID {
			s.users[i] = user
			break
		}
	}
	if s.selected != nil && s.selected.ID == userID {
		s.selected = &user
	}
	s.mu.Unlock()

	s.notifier.Positive("Usuário atualizado com sucesso!")
	s.bus.Publish(events.Change{Resource: events.ResourceUser, Action: events.ActionUpdated})
	return nil
}

// Delete removes the member remotely and drops it from the cache.
func (s *Users) Delete(ctx context.Context, userID int64) error {
	if err := s.api.Delete(ctx, fmt.Sprintf("/users/%d", userID)); err != nil {
		s.notifier.Negative(api.Detail(err, "Erro ao excluir usuário."))
		return err
	}

	s.mu.Lock()
	kept := s.users[:0]
	for _, user := range s.users {
		if user.ID != userID {
			kept = append(kept, user)
		}
	}
	s.users = kept
	s.mu.Unlock()

	s.notifier.Positive("Usuário excluído com sucesso.")
	s.bus.Publish(events.Change{Resource: events.ResourceUser, Action: events.ActionDeleted})
	return nil
}

// List returns a copy of the cached members.
func (s *Users) List() []model.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.User(nil), s.users...)
}

// Drivers returns cached members with the driver role.
func (s *Users) Drivers() []model.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	var drivers []model.User
	for _, user := range s.users {
		if user.Role == model.RoleDriver {
			drivers = append(drivers, user)
		}
	}
	return drivers
}

// Selected returns a copy of the selected member, or nil.
func (s *Users) Selected() *model.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.selected == nil {
		return nil
	}
	user := *s.selected
	return &user
}

// Stats returns the last fetched member statistics, or nil.
func (s *Users) Stats() *model.UserStats {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stats == nil {
		return nil
	}
	stats := *s.stats
	return &stats
}

// IsLoading reports whether a fetch is in flight.
func (s *Users) IsLoading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

func (s *Users) setLoading(loading bool) {
	s.mu.Lock()
	s.loading = loading
	s.mu.Unlock()
}

// Clear drops the cached roster; called on logout.
func (s *Users) Clear() {
	s.mu.Lock()
	s.users = nil
	s.selected = nil
	s.stats = nil
	s.mu.Unlock()
}

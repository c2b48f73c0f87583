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

// Impersonator swaps the current session for another user's token while
// remembering the admin's own. The session manager implements it.
type Impersonator interface {
	StartImpersonation(token string, target model.User)
}

// Admin caches the platform-operator views: demo signups awaiting
// activation, the full user roster, and organizations. Superuser only;
// the server enforces that, the client just surfaces its 403s.
type Admin struct {
	mu       sync.Mutex
	api      *api.Client
	notifier notify.Notifier
	bus      *events.Bus
	log      *logrus.Entry
	session  Impersonator

	demoUsers     []model.User
	allUsers      []model.User
	organizations []model.Organization
	loading       bool
}

// NewAdmin builds the admin container. session receives the
// impersonation token when an operator steps into a user's account.
func NewAdmin(d Deps, session Impersonator) *Admin {
	return &Admin{api: d.API, notifier: d.Notifier, bus: d.Bus, log: d.logger("admin"), session: session}
}

// FetchDemoUsers replaces the demo signup list.
func (s *Admin) FetchDemoUsers(ctx context.Context) {
	s.setLoading(true)
	defer s.setLoading(false)

	var users []model.User
	if err := s.api.Get(ctx, "/admin/users/demo", nil, &users); err != nil {
		s.log.WithError(err).Error("fetch demo users")
		s.notifier.Negative("Falha ao buscar contas demo.")
		return
	}

	s.mu.Lock()
	s.demoUsers = users
	s.mu.Unlock()
}

// FetchAllUsers replaces the platform-wide roster.
func (s *Admin) FetchAllUsers(ctx context.Context) {
	s.setLoading(true)
	defer s.setLoading(false)

	var users []model.User
	if err := s.api.Get(ctx, "/admin/users", nil, &users); err != nil {
		s.log.WithError(err).Error("fetch all users")
		s.notifier.Negative("Falha ao buscar usuários.")
		return
	}

	s.mu.Lock()
	s.allUsers = users
	s.mu.Unlock()
}

// FetchOrganizations replaces the organization list, optionally
// filtered by account status.
func (s *Admin) FetchOrganizations(ctx context.Context, status string) {
	s.setLoading(true)
	defer s.setLoading(false)

	params := url.Values{}
	if status != "" {
		params.Set("status", status)
	}

	var organizations []model.Organization
	if err := s.api.Get(ctx, "/admin/organizations", params, &organizations); err != nil {
		s.log.WithError(err).Error("fetch organizations")
		s.notifier.Negative("Falha ao buscar organizações.")
		return
	}

	s.mu.Lock()
	s.organizations = organizations
	s.mu.Unlock()
}

// ActivateUser upgrades a demo account to an active plan, then
// refreshes both rosters.
func (s *Admin) ActivateUser(ctx context.Context, userID int64) error {
	path := fmt.Sprintf("/admin/users/%d/activate", userID)
	if err := s.api.Post(ctx, path, nil, nil); err != nil {
		s.notifier.Negative(api.Detail(err, "Erro ao ativar a conta."))
		return err
	}
	s.notifier.Positive("Conta ativada com sucesso!")
	s.FetchDemoUsers(ctx)
	s.FetchAllUsers(ctx)
	return nil
}

// Impersonate fetches an impersonation token for the target user and
// hands it to the session manager together with the target's profile.
func (s *Admin) Impersonate(ctx context.Context, target model.User) error {
	path := fmt.Sprintf("/admin/users/%d/impersonate", target.ID)
	var token model.TokenData
	if err := s.api.Post(ctx, path, nil, &token); err != nil {
		s.notifier.Negative(api.Detail(err, "Erro ao assumir a conta."))
		return err
	}

	user := token.User
	if user.ID == 0 {
		user = target
	}
	s.session.StartImpersonation(token.AccessToken, user)
	s.notifier.Info(fmt.Sprintf("Você está operando como %s.", user.FullName))
	return nil
}

// UpdateOrganization renames or re-sectors an organization and
// refetches the list.
func (s *Admin) UpdateOrganization(ctx context.Context, orgID int64, payload model.OrganizationUpdate) error {
	path := fmt.Sprintf("/admin/organizations/%d", orgID)
	if err := s.api.Put(ctx, path, payload, nil); err != nil {
		s.notifier.Negative(api.Detail(err, "Erro ao atualizar organização."))
		return err
	}
	s.notifier.Positive("Organização atualizada com sucesso!")
	s.FetchOrganizations(ctx, "")
	return nil
}

// DemoUsers returns a copy of the demo signup list.
func (s *Admin) DemoUsers() []model.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.User(nil), s.demoUsers...)
}

// AllUsers returns a copy of the platform-wide roster.
func (s *Admin) AllUsers() []model.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.User(nil), s.allUsers...)
}

// Organizations returns a copy of the organization list.
func (s *Admin) Organizations() []model.Organization {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.Organization(nil), s.organizations...)
}

// IsLoading reports whether a fetch is in flight.
func (s *Admin) IsLoading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

func (s *Admin) setLoading(loading bool) {
	s.mu.Lock()
	s.loading = loading
	s.mu.Unlock()
}

// Clear drops the cached rosters and organizations; called on logout.
func (s *Admin) Clear() {
	s.mu.Lock()
	s.demoUsers = nil
	s.allUsers = nil
	s.organizations = nil
	s.mu.Unlock()
}

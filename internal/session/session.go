// Package session holds the client's authenticated identity: the
// bearer token, the cached user profile, and the saved origin session
// while an impersonation is active. Exactly one session is active at a
// time; swap and restore happen atomically under the manager's lock so
// no request is signed with a half-swapped identity.
package session

import (
	"context"
	"net/url"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"

	"github.com/frotaops/frotactl/internal/api"
	"github.com/frotaops/frotactl/internal/credstore"
	"github.com/frotaops/frotactl/internal/model"
	"github.com/frotaops/frotactl/internal/notify"
	"github.com/frotaops/frotactl/internal/terminology"
)

// Response to a password-reset request never reveals whether the email
// exists; success and failure show the same text.
const passwordResetRequestedMessage = "Se um usuário com este e-mail existir, um link para redefinição de senha será enviado."

// Navigator forces a view change after a session swap. The browser
// client reloads into /dashboard or /auth/login; the CLI can pass nil.
type Navigator func(view string)

// Manager is the session state container. It implements api.TokenSource
// so the HTTP adapter picks up the active token transparently.
type Manager struct {
	mu       sync.RWMutex
	api      *api.Client
	creds    *credstore.Store
	notifier notify.Notifier
	terms    *terminology.Resolver
	navigate Navigator
	log      *logrus.Entry

	token         string
	user          *model.User
	originalUser  *model.User
	originalToken string
}

// NewManager wires the session against its collaborators. Call Init
// before any container issues an authenticated request.
func NewManager(client *api.Client, creds *credstore.Store, notifier notify.Notifier, terms *terminology.Resolver, navigate Navigator, logger *logrus.Logger) *Manager {
	return &Manager{
		api:      client,
		creds:    creds,
		notifier: notifier,
		terms:    terms,
		navigate: navigate,
		log:      logger.WithField("component", "session"),
	}
}

// Init restores a persisted session, discarding a token that is already
// expired, and re-derives the terminology sector from the cached user.
func (m *Manager) Init() {
	m.mu.Lock()
	defer m.mu.Unlock()

	token, ok := m.creds.GetString(credstore.KeyAccessToken)
	if ok && tokenExpired(token) {
		m.log.Info("persisted token expired, discarding session")
		m.creds.Delete(credstore.KeyAccessToken, credstore.KeyUser,
			credstore.KeyOriginalToken, credstore.KeyOriginalUser)
		token = ""
		ok = false
	}
	if ok {
		var user model.User
		if m.creds.Get(credstore.KeyUser, &user) {
			m.token = token
			m.user = &user
		} else {
			// A token without its user would sign requests for an
			// identity nobody can inspect; drop the whole session.
			m.log.Warn("persisted user unreadable, discarding session")
			m.creds.Delete(credstore.KeyAccessToken, credstore.KeyUser,
				credstore.KeyOriginalToken, credstore.KeyOriginalUser)
		}
	}

	var original model.User
	if m.creds.Get(credstore.KeyOriginalUser, &original) {
		m.originalUser = &original
		if originalToken, ok := m.creds.GetString(credstore.KeyOriginalToken); ok {
			m.originalToken = originalToken
		}
	}

	m.applySectorLocked()
}

// Token returns the active bearer token, implementing api.TokenSource.
func (m *Manager) Token() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.token
}

// User returns a copy of the cached user profile, or nil when logged
// out.
func (m *Manager) User() *model.User {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.user == nil {
		return nil
	}
	user := *m.user
	return &user
}

// Login posts form-encoded credentials to /login/token. On success the
// token and profile are stored and the sector context updated; on
// failure any partial session is cleared and false returned.
func (m *Manager) Login(ctx context.Context, email, password string) bool {
	params := url.Values{}
	params.Set("username", email)
	params.Set("password", password)

	var data model.TokenData
	if err := m.api.PostForm(ctx, "/login/token", params, &data); err != nil {
		m.log.WithError(err).Error("login failed")
		m.Logout()
		return false
	}
	m.setSession(data.AccessToken, data.User)
	return true
}

// Logout clears the active session, the saved impersonation origin, and
// the persisted entries. Idempotent.
func (m *Manager) Logout() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.token = ""
	m.user = nil
	m.originalUser = nil
	m.originalToken = ""
	m.creds.Delete(credstore.KeyAccessToken, credstore.KeyUser,
		credstore.KeyOriginalToken, credstore.KeyOriginalUser)
	m.terms.SetSector("")
}

// StartImpersonation swaps the active session to the target identity,
// preserving the admin's own token and user for later restore. A no-op
// with a logged warning when no authenticated session exists.
func (m *Manager) StartImpersonation(newToken string, target model.User) {
	m.mu.Lock()
	if m.user == nil || m.token == "" {
		m.mu.Unlock()
		m.log.Warn("cannot start impersonation without an authenticated session")
		return
	}
	if err := m.creds.Set(credstore.KeyOriginalToken, m.token); err != nil {
		m.log.WithError(err).Warn("persist original token")
	}
	if err := m.creds.Set(credstore.KeyOriginalUser, m.user); err != nil {
		m.log.WithError(err).Warn("persist original user")
	}
	m.originalToken = m.token
	m.originalUser = m.user
	m.setSessionLocked(newToken, target)
	m.mu.Unlock()

	m.goTo("/dashboard")
}

// StopImpersonation restores the saved origin session. Without a saved
// origin it falls back to a full logout, the safety net against
// inconsistent persisted state.
func (m *Manager) StopImpersonation() {
	m.mu.Lock()
	originalToken, tokenOK := m.creds.GetString(credstore.KeyOriginalToken)
	var originalUser model.User
	userOK := m.creds.Get(credstore.KeyOriginalUser, &originalUser)

	if !tokenOK || !userOK {
		m.mu.Unlock()
		m.log.Error("no original session to restore, logging out")
		m.Logout()
		m.goTo("/auth/login")
		return
	}

	m.setSessionLocked(originalToken, originalUser)
	m.creds.Delete(credstore.KeyOriginalToken, credstore.KeyOriginalUser)
	m.originalUser = nil
	m.originalToken = ""
	m.mu.Unlock()

	m.goTo("/admin")
}

// RequestPasswordReset asks the server to mail a reset link. Success and
// failure produce the identical positive message so the endpoint cannot
// be used to enumerate accounts.
func (m *Manager) RequestPasswordReset(ctx context.Context, email string) {
	payload := struct {
		Email string `json:"email"`
	}{Email: email}
	if err := m.api.Post(ctx, "/login/password-recovery", payload, nil); err != nil {
		m.log.WithError(err).Error("password reset request failed")
	}
	m.notifier.Positive(passwordResetRequestedMessage)
}

// ResetPassword redeems a reset token for a new password.
func (m *Manager) ResetPassword(ctx context.Context, token, newPassword string) bool {
	payload := struct {
		Token       string `json:"token"`
		NewPassword string `json:"new_password"`
	}{Token: token, NewPassword: newPassword}
	if err := m.api.Post(ctx, "/login/reset-password", payload, nil); err != nil {
		m.log.WithError(err).Error("password reset failed")
		m.notifier.Negative(api.Detail(err, "Ocorreu um erro. O token pode ser inválido ou ter expirado."))
		return false
	}
	m.notifier.Positive("Senha redefinida com sucesso! Você já pode fazer o login.")
	return true
}

// UpdateMyPreferences saves notification preferences and refreshes the
// cached profile with the server's response.
func (m *Manager) UpdateMyPreferences(ctx context.Context, prefs model.NotificationPrefsUpdate) error {
	var updated model.User
	if err := m.api.Put(ctx, "/users/me/preferences", prefs, &updated); err != nil {
		m.notifier.Negative("Erro ao salvar preferências.")
		return err
	}

	m.mu.Lock()
	m.user = &updated
	if err := m.creds.Set(credstore.KeyUser, updated); err != nil {
		m.log.WithError(err).Warn("persist user")
	}
	m.mu.Unlock()

	m.notifier.Positive("Preferências salvas.")
	return nil
}

// IsAuthenticated reports whether a token is present.
func (m *Manager) IsAuthenticated() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.token != ""
}

// IsManager reports whether the user is an active or demo client.
func (m *Manager) IsManager() bool {
	role := m.role()
	return role == model.RoleActiveClient || role == model.RoleDemoClient
}

// IsDriver reports whether the user is a driver.
func (m *Manager) IsDriver() bool {
	return m.role() == model.RoleDriver
}

// IsDemo reports whether the session belongs to a demo account.
func (m *Manager) IsDemo() bool {
	return m.role() == model.RoleDemoClient
}

// IsSuperuser reports whether the user is a platform superuser.
func (m *Manager) IsSuperuser() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.user != nil && m.user.IsSuperuser
}

// IsImpersonating reports whether an origin session is saved.
func (m *Manager) IsImpersonating() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.originalUser != nil
}

func (m *Manager) role() model.Role {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.user == nil {
		return ""
	}
	return m.user.Role
}

func (m *Manager) setSession(token string, user model.User) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.setSessionLocked(token, user)
}

func (m *Manager) setSessionLocked(token string, user model.User) {
	m.token = token
	m.user = &user
	if err := m.creds.Set(credstore.KeyAccessToken, token); err != nil {
		m.log.WithError(err).Warn("persist token")
	}
	if err := m.creds.Set(credstore.KeyUser, user); err != nil {
		m.log.WithError(err).Warn("persist user")
	}
	m.applySectorLocked()
}

func (m *Manager) applySectorLocked() {
	if m.user == nil {
		m.terms.SetSector("")
		return
	}
	m.terms.SetSector(terminology.Sector(m.user.Sector()))
}

func (m *Manager) goTo(view string) {
	if m.navigate != nil {
		m.navigate(view)
	}
}

// tokenExpired parses the token without verifying its signature — the
// client holds no key — purely to skip re-attaching a token whose exp
// claim is already in the past. Tokens that do not parse are kept; the
// server remains the authority and will reject them.
func tokenExpired(token string) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}
	expiry, err := claims.GetExpirationTime()
	if err != nil || expiry == nil {
		return false
	}
	return expiry.Before(time.Now())
}

package session

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frotaops/frotactl/internal/api"
	"github.com/frotaops/frotactl/internal/credstore"
	"github.com/frotaops/frotactl/internal/model"
	"github.com/frotaops/frotactl/internal/notify"
	"github.com/frotaops/frotactl/internal/terminology"
)

type fixture struct {
	manager  *Manager
	client   *api.Client
	creds    *credstore.Store
	recorder *notify.Recorder
	terms    *terminology.Resolver
	views    *[]string
}

func newFixture(t *testing.T, handler http.Handler) fixture {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := api.NewClient(server.URL)
	require.NoError(t, err)

	log := logrus.New()
	log.SetOutput(io.Discard)

	creds, err := credstore.Open(filepath.Join(t.TempDir(), "state.json"), log)
	require.NoError(t, err)

	recorder := &notify.Recorder{}
	terms := &terminology.Resolver{}
	views := &[]string{}
	navigate := func(view string) { *views = append(*views, view) }

	manager := NewManager(client, creds, recorder, terms, navigate, log)
	client.SetTokenSource(manager)
	return fixture{manager: manager, client: client, creds: creds, recorder: recorder, terms: terms, views: views}
}

func sector(s string) *string { return &s }

func loginHandler(t *testing.T, token string, user model.User) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/login/token", r.URL.Path)
		require.NoError(t, r.ParseForm())
		if r.PostForm.Get("password") != "right" {
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]string{"detail": "Credenciais inválidas"})
			return
		}
		_ = json.NewEncoder(w).Encode(model.TokenData{AccessToken: token, TokenType: "bearer", User: user})
	})
}

func TestLogin_SuccessStoresSessionAndSector(t *testing.T) {
	user := model.User{
		ID: 1, FullName: "Ana", Email: "ana@agro.com", Role: model.RoleActiveClient,
		Organization: &model.OrganizationNested{ID: 2, Name: "Fazenda", Sector: sector("agronegocio")},
	}
	f := newFixture(t, loginHandler(t, "tok-1", user))

	ok := f.manager.Login(context.Background(), "ana@agro.com", "right")
	require.True(t, ok)

	assert.True(t, f.manager.IsAuthenticated())
	assert.Equal(t, "tok-1", f.manager.Token())
	assert.Equal(t, "Ana", f.manager.User().FullName)
	assert.Equal(t, terminology.SectorAgro, f.terms.Sector())

	persisted, ok := f.creds.GetString(credstore.KeyAccessToken)
	require.True(t, ok)
	assert.Equal(t, "tok-1", persisted)
}

func TestLogin_FailureClearsAnyPartialSession(t *testing.T) {
	user := model.User{ID: 1, FullName: "Ana", Role: model.RoleActiveClient}
	f := newFixture(t, loginHandler(t, "tok-1", user))

	require.True(t, f.manager.Login(context.Background(), "ana@agro.com", "right"))
	require.False(t, f.manager.Login(context.Background(), "ana@agro.com", "wrong"))

	assert.False(t, f.manager.IsAuthenticated())
	assert.Nil(t, f.manager.User())
	_, ok := f.creds.GetString(credstore.KeyAccessToken)
	assert.False(t, ok)
}

func TestImpersonation_RoundTripRestoresAdmin(t *testing.T) {
	admin := model.User{ID: 1, FullName: "Root", Role: model.RoleActiveClient, IsSuperuser: true}
	f := newFixture(t, loginHandler(t, "admin-tok", admin))
	require.True(t, f.manager.Login(context.Background(), "root@ops.com", "right"))

	target := model.User{
		ID: 9, FullName: "Demo", Role: model.RoleDemoClient,
		Organization: &model.OrganizationNested{ID: 5, Name: "Obra", Sector: sector("construcao_civil")},
	}
	f.manager.StartImpersonation("target-tok", target)

	assert.True(t, f.manager.IsImpersonating())
	assert.Equal(t, "target-tok", f.manager.Token())
	assert.Equal(t, "Demo", f.manager.User().FullName)
	assert.True(t, f.manager.IsDemo())
	assert.Equal(t, terminology.SectorConstruction, f.terms.Sector())
	assert.Equal(t, []string{"/dashboard"}, *f.views)

	// The origin survives persistence, so a fresh manager on the same
	// state file still knows it is impersonating.
	orig, ok := f.creds.GetString(credstore.KeyOriginalToken)
	require.True(t, ok)
	assert.Equal(t, "admin-tok", orig)

	f.manager.StopImpersonation()
	assert.False(t, f.manager.IsImpersonating())
	assert.Equal(t, "admin-tok", f.manager.Token())
	assert.Equal(t, "Root", f.manager.User().FullName)
	assert.Equal(t, []string{"/dashboard", "/admin"}, *f.views)

	_, ok = f.creds.GetString(credstore.KeyOriginalToken)
	assert.False(t, ok)
}

func TestStartImpersonation_WithoutSessionIsNoOp(t *testing.T) {
	f := newFixture(t, http.NotFoundHandler())

	f.manager.StartImpersonation("target-tok", model.User{ID: 9})

	assert.False(t, f.manager.IsAuthenticated())
	assert.False(t, f.manager.IsImpersonating())
	assert.Empty(t, *f.views)
}

func TestStopImpersonation_WithoutSavedOriginLogsOut(t *testing.T) {
	admin := model.User{ID: 1, FullName: "Root", Role: model.RoleActiveClient}
	f := newFixture(t, loginHandler(t, "admin-tok", admin))
	require.True(t, f.manager.Login(context.Background(), "root@ops.com", "right"))

	// Simulate inconsistent persisted state: active session but no
	// saved origin.
	f.manager.StopImpersonation()

	assert.False(t, f.manager.IsAuthenticated())
	assert.Equal(t, []string{"/auth/login"}, *f.views)
}

func TestRequestPasswordReset_SameMessageEitherWay(t *testing.T) {
	okServer := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	failServer := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(map[string]string{"detail": "usuário não encontrado"})
	})

	success := newFixture(t, okServer)
	success.manager.RequestPasswordReset(context.Background(), "exists@x.com")

	failure := newFixture(t, failServer)
	failure.manager.RequestPasswordReset(context.Background(), "nobody@x.com")

	require.Len(t, success.recorder.Events, 1)
	require.Len(t, failure.recorder.Events, 1)
	assert.Equal(t, success.recorder.Events[0], failure.recorder.Events[0])
	assert.Equal(t, "positive", failure.recorder.Events[0].Severity)
	assert.Equal(t, 0, failure.recorder.BySeverity("negative"))
}

func TestResetPassword_SurfacesValidationDetail(t *testing.T) {
	f := newFixture(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"detail": "Token expirado"})
	}))

	ok := f.manager.ResetPassword(context.Background(), "stale", "newpass")
	assert.False(t, ok)
	require.Len(t, f.recorder.Events, 1)
	assert.Equal(t, "negative", f.recorder.Events[0].Severity)
	assert.Equal(t, "Token expirado", f.recorder.Events[0].Message)
}

func TestInit_RestoresPersistedSession(t *testing.T) {
	user := model.User{
		ID: 3, FullName: "Bia", Role: model.RoleDriver,
		Organization: &model.OrganizationNested{ID: 1, Name: "Frota", Sector: sector("frete")},
	}
	f := newFixture(t, loginHandler(t, "tok-x", user))
	require.True(t, f.manager.Login(context.Background(), "bia@x.com", "right"))

	log := logrus.New()
	log.SetOutput(io.Discard)
	terms := &terminology.Resolver{}
	restored := NewManager(f.client, f.creds, &notify.Recorder{}, terms, nil, log)
	restored.Init()

	assert.True(t, restored.IsAuthenticated())
	assert.Equal(t, "Bia", restored.User().FullName)
	assert.True(t, restored.IsDriver())
	assert.Equal(t, terminology.SectorFreight, terms.Sector())
}

func TestInit_DiscardsSessionWhenUserEntryCorrupt(t *testing.T) {
	user := model.User{ID: 3, FullName: "Bia", Role: model.RoleDriver}
	f := newFixture(t, loginHandler(t, "tok-x", user))
	require.True(t, f.manager.Login(context.Background(), "bia@x.com", "right"))

	// Overwrite the persisted profile with something that cannot decode
	// back into a user. The token alone must not restore a session.
	require.NoError(t, f.creds.Set(credstore.KeyUser, "corrompido"))

	log := logrus.New()
	log.SetOutput(io.Discard)
	restored := NewManager(f.client, f.creds, &notify.Recorder{}, &terminology.Resolver{}, nil, log)
	restored.Init()

	assert.False(t, restored.IsAuthenticated())
	assert.Empty(t, restored.Token())
	assert.Nil(t, restored.User())
	_, ok := f.creds.GetString(credstore.KeyAccessToken)
	assert.False(t, ok, "orphaned token is removed from the state file")
}

func TestTokenExpired(t *testing.T) {
	t.Parallel()

	// exp in 2001; header/payload are unsigned but parseable.
	expired := "eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9.eyJzdWIiOiIxIiwiZXhwIjo5NzgzMDcyMDB9.x"
	assert.True(t, tokenExpired(expired))

	// Opaque tokens are kept; the server stays the authority.
	assert.False(t, tokenExpired("not-a-jwt"))
}

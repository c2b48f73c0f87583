package store

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frotaops/frotactl/internal/events"
	"github.com/frotaops/frotactl/internal/model"
)

func TestUsers_CreatePrependsReturnedRecord(t *testing.T) {
	t.Parallel()

	h := newHarness(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			_ = json.NewEncoder(w).Encode(model.User{ID: 3, FullName: "Novo Motorista", Role: model.RoleDriver})
		default:
			_ = json.NewEncoder(w).Encode([]model.User{{ID: 1, FullName: "Ana"}})
		}
	}))

	s := NewUsers(h.deps)
	s.FetchAll(context.Background())
	require.Len(t, s.List(), 1)

	require.NoError(t, s.Create(context.Background(), model.UserCreate{FullName: "Novo Motorista", Role: model.RoleDriver}))

	list := s.List()
	require.Len(t, list, 2)
	assert.Equal(t, int64(3), list[0].ID)

	require.Len(t, *h.changes, 1)
	assert.Equal(t, events.ResourceUser, (*h.changes)[0].Resource)
	assert.Equal(t, events.ActionCreated, (*h.changes)[0].Action)
}

func TestUsers_UpdatePatchesOnlyMatchingEntry(t *testing.T) {
	t.Parallel()

	h := newHarness(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPut:
			require.Equal(t, "/users/2", r.URL.Path)
			_ = json.NewEncoder(w).Encode(model.User{ID: 2, FullName: "Bia Silva"})
		default:
			_ = json.NewEncoder(w).Encode([]model.User{
				{ID: 1, FullName: "Ana"},
				{ID: 2, FullName: "Bia"},
			})
		}
	}))

	s := NewUsers(h.deps)
	s.FetchAll(context.Background())

	name := "Bia Silva"
	require.NoError(t, s.Update(context.Background(), 2, model.UserUpdate{FullName: &name}))

	list := s.List()
	assert.Equal(t, "Ana", list[0].FullName, "other entries untouched")
	assert.Equal(t, "Bia Silva", list[1].FullName)
}

func TestUsers_DeleteFiltersOnlyMatchingID(t *testing.T) {
	t.Parallel()

	h := newHarness(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodDelete:
			w.WriteHeader(http.StatusNoContent)
		default:
			_ = json.NewEncoder(w).Encode([]model.User{{ID: 1}, {ID: 2}, {ID: 3}})
		}
	}))

	s := NewUsers(h.deps)
	s.FetchAll(context.Background())

	require.NoError(t, s.Delete(context.Background(), 2))

	list := s.List()
	require.Len(t, list, 2)
	assert.Equal(t, int64(1), list[0].ID)
	assert.Equal(t, int64(3), list[1].ID)
}

func TestUsers_DriversFiltersByRole(t *testing.T) {
	t.Parallel()

	h := newHarness(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode([]model.User{
			{ID: 1, Role: model.RoleActiveClient},
			{ID: 2, Role: model.RoleDriver},
		})
	}))

	s := NewUsers(h.deps)
	s.FetchAll(context.Background())

	drivers := s.Drivers()
	require.Len(t, drivers, 1)
	assert.Equal(t, int64(2), drivers[0].ID)
}

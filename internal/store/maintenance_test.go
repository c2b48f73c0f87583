package store

import (
	"context"
	"encoding/json"
	"net/http"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frotaops/frotactl/internal/model"
)

func TestMaintenance_AddCommentNotifiesAndRefetches(t *testing.T) {
	t.Parallel()

	var fetches atomic.Int32
	h := newHarness(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/maintenance/":
			fetches.Add(1)
			_ = json.NewEncoder(w).Encode([]model.MaintenanceRequest{{ID: 4}})
		case r.Method == http.MethodPost && r.URL.Path == "/maintenance/4/comments":
			var payload model.MaintenanceCommentCreate
			require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
			assert.Equal(t, "Peça chegou, agendado para sexta.", payload.CommentText)
			w.WriteHeader(http.StatusCreated)
		default:
			http.NotFound(w, r)
		}
	}))

	s := NewMaintenance(h.deps)
	err := s.AddComment(context.Background(), 4, model.MaintenanceCommentCreate{
		CommentText: "Peça chegou, agendado para sexta.",
	})
	require.NoError(t, err)

	assert.Equal(t, int32(1), fetches.Load(), "comment thread comes back embedded in the list")
	require.Len(t, h.recorder.Events, 1)
	assert.Equal(t, "positive", h.recorder.Events[0].Severity)
	assert.Equal(t, "Comentário enviado!", h.recorder.Events[0].Message)
}

func TestMaintenance_AddCommentFailureKeepsQuiet(t *testing.T) {
	t.Parallel()

	h := newHarness(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_ = json.NewEncoder(w).Encode(map[string]string{"detail": "Comentário vazio."})
	}))

	s := NewMaintenance(h.deps)
	err := s.AddComment(context.Background(), 4, model.MaintenanceCommentCreate{})
	require.Error(t, err)

	require.Len(t, h.recorder.Events, 1)
	assert.Equal(t, "negative", h.recorder.Events[0].Severity)
	assert.Equal(t, "Comentário vazio.", h.recorder.Events[0].Message)
}

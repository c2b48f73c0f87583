package store

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frotaops/frotactl/internal/model"
)

func TestNotifications_FetchAllRecountsUnread(t *testing.T) {
	t.Parallel()

	h := newHarness(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode([]model.Notification{
			{ID: 1, IsRead: false},
			{ID: 2, IsRead: true},
			{ID: 3, IsRead: false},
		})
	}))

	s := NewNotifications(h.deps)
	s.FetchAll(context.Background())

	assert.Len(t, s.List(), 3)
	assert.Equal(t, 2, s.UnreadCount())
}

func TestNotifications_MarkAsReadPatchesAndRecounts(t *testing.T) {
	t.Parallel()

	h := newHarness(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPut:
			require.Equal(t, "/notifications/1/read", r.URL.Path)
			w.WriteHeader(http.StatusOK)
		default:
			_ = json.NewEncoder(w).Encode([]model.Notification{
				{ID: 1, IsRead: false},
				{ID: 2, IsRead: false},
			})
		}
	}))

	s := NewNotifications(h.deps)
	s.FetchAll(context.Background())
	require.Equal(t, 2, s.UnreadCount())

	require.NoError(t, s.MarkAsRead(context.Background(), 1))

	assert.Equal(t, 1, s.UnreadCount())
	assert.True(t, s.List()[0].IsRead)
}

func TestNotifications_UnreadCountPollIsSilent(t *testing.T) {
	t.Parallel()

	h := newHarness(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/notifications/unread-count":
			_ = json.NewEncoder(w).Encode(map[string]int{"count": 5})
		default:
			http.Error(w, "boom", http.StatusInternalServerError)
		}
	}))

	s := NewNotifications(h.deps)
	s.FetchUnreadCount(context.Background())
	assert.Equal(t, 5, s.UnreadCount())
	assert.Empty(t, h.recorder.Events)
}

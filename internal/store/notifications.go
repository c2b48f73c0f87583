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

// Notifications caches the current user's in-app notifications and an
// unread counter the badge polls in the background. The background
// fetch is silent: a transient failure must not toast every interval.
type Notifications struct {
	mu       sync.Mutex
	api      *api.Client
	notifier notify.Notifier
	bus      *events.Bus
	log      *logrus.Entry

	notifications []model.Notification
	unreadCount   int
	loading       bool
}

// NewNotifications builds the notification container.
func NewNotifications(d Deps) *Notifications {
	return &Notifications{api: d.API, notifier: d.Notifier, bus: d.Bus, log: d.logger("notifications")}
}

// FetchAll replaces the cached list and recounts unread.
func (s *Notifications) FetchAll(ctx context.Context) {
	s.setLoading(true)
	defer s.setLoading(false)

	var notifications []model.Notification
	if err := s.api.Get(ctx, "/notifications/", nil, &notifications); err != nil {
		s.log.WithError(err).Error("fetch notifications")
		s.notifier.Negative("Falha ao buscar notificações.")
		return
	}

	s.mu.Lock()
	s.notifications = notifications
	s.unreadCount = countUnread(notifications)
	s.mu.Unlock()
}

// FetchUnreadCount refreshes the badge counter. Errors are logged only;
// this runs on a poll loop.
func (s *Notifications) FetchUnreadCount(ctx context.Context) {
	var payload struct {
		Count int `json:"count"`
	}
	if err := s.api.Get(ctx, "/notifications/unread-count", nil, &payload); err != nil {
		s.log.WithError(err).Debug("fetch unread count")
		return
	}

	s.mu.Lock()
	s.unreadCount = payload.Count
	s.mu.Unlock()
}

// MarkAsRead flags one notification read and patches the cache.
func (s *Notifications) MarkAsRead(ctx context.Context, notificationID int64) error {
	path := fmt.Sprintf("/notifications/%d/read", notificationID)
	if err := s.api.Put(ctx, path, nil, nil); err != nil {
		s.notifier.Negative(api.Detail(err, "Erro ao marcar notificação como lida."))
		return err
	}

	s.mu.Lock()
	for i := range s.notifications {
		if s.notifications[i].ID == notificationID {
			s.notifications[i].IsRead = true
			break
		}
	}
	s.unreadCount = countUnread(s.notifications)
	s.mu.Unlock()
	return nil
}

// Create posts a notification (manager broadcast), prepends the
// returned record, and recounts.
func (s *Notifications) Create(ctx context.Context, payload model.NotificationCreate) error {
	var notification model.Notification
	if err := s.api.Post(ctx, "/notifications/", payload, &notification); err != nil {
		s.notifier.Negative(api.Detail(err, "Erro ao enviar notificação."))
		return err
	}

	s.mu.Lock()
	s.notifications = append([]model.Notification{notification}, s.notifications...)
	s.unreadCount = countUnread(s.notifications)
	s.mu.Unlock()

	s.notifier.Info("Notificação enviada.")
	return nil
}

// List returns a copy of the cached notifications.
func (s *Notifications) List() []model.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.Notification(nil), s.notifications...)
}

// UnreadCount returns the badge counter.
func (s *Notifications) UnreadCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.unreadCount
}

// IsLoading reports whether a list fetch is in flight.
func (s *Notifications) IsLoading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

func (s *Notifications) setLoading(loading bool) {
	s.mu.Lock()
	s.loading = loading
	s.mu.Unlock()
}

func countUnread(notifications []model.Notification) int {
	count := 0
	for _, notification := range notifications {
		if !notification.IsRead {
			count++
		}
	}
	return count
}

// Clear drops the cached notifications and badge count; called on
// logout.
func (s *Notifications) Clear() {
	s.mu.Lock()
	s.notifications = nil
	s.unreadCount = 0
	s.mu.Unlock()
}

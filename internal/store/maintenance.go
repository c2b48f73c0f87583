package store

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/frotaops/frotactl/internal/api"
	"github.com/frotaops/frotactl/internal/events"
	"github.com/frotaops/frotactl/internal/model"
	"github.com/frotaops/frotactl/internal/notify"
)

// MaintenanceQuery narrows the request list fetch.
type MaintenanceQuery struct {
	VehicleID int64
	Status    model.MaintenanceStatus
}

// Maintenance caches maintenance requests with their comment threads.
// Mutations refetch the list: status transitions and comments both come
// back embedded in the full record, and the server decides transition
// legality.
type Maintenance struct {
	mu       sync.Mutex
	api      *api.Client
	notifier notify.Notifier
	bus      *events.Bus
	log      *logrus.Entry

	requests []model.MaintenanceRequest
	query    MaintenanceQuery
	loading  bool
}

// NewMaintenance builds the maintenance container.
func NewMaintenance(d Deps) *Maintenance {
	return &Maintenance{api: d.API, notifier: d.Notifier, bus: d.Bus, log: d.logger("maintenance")}
}

// FetchAll replaces the cached list, remembering the filter so
// mutations refetch the same view.
func (s *Maintenance) FetchAll(ctx context.Context, query MaintenanceQuery) {
	s.setLoading(true)
	defer s.setLoading(false)

	s.mu.Lock()
	s.query = query
	s.mu.Unlock()

	params := url.Values{}
	if query.VehicleID > 0 {
		params.Set("vehicle_id", strconv.FormatInt(query.VehicleID, 10))
	}
	if query.Status != "" {
		params.Set("status", string(query.Status))
	}

	var requests []model.MaintenanceRequest
	if err := s.api.Get(ctx, "/maintenance/", params, &requests); err != nil {
		s.log.WithError(err).Error("fetch maintenance requests")
		s.notifier.Negative("Falha ao buscar solicitações de manutenção.")
		return
	}

	s.mu.Lock()
	s.requests = requests
	s.mu.Unlock()
}

func (s *Maintenance) refetch(ctx context.Context) {
	s.mu.Lock()
	query := s.query
	s.mu.Unlock()
	s.FetchAll(ctx, query)
}

// FetchByID reloads one request and patches it into the cached list,
// appending when the list does not hold it yet.
func (s *Maintenance) FetchByID(ctx context.Context, requestID int64) {
	var request model.MaintenanceRequest
	if err := s.api.Get(ctx, fmt.Sprintf("/maintenance/%d", requestID), nil, &request); err != nil {
		s.log.WithError(err).WithField("id", requestID).Error("fetch maintenance request")
		s.notifier.Negative("Falha ao carregar solicitação.")
		return
	}

	s.mu.Lock()
	found := false
	for i := range s.requests {
		if s.requests[i].ID == requestID {
			s.requests[i] = request
			found = true
			break
		}
	}
	if !found {
		s.requests = append(s.requests, request)
	}
	s.mu.Unlock()
}

// Create opens a request and refetches.
func (s *Maintenance) Create(ctx context.Context, payload model.MaintenanceRequestCreate) error {
	if err := s.api.Post(ctx, "/maintenance/", payload, nil); err != nil {
		s.notifier.Negative(api.Detail(err, "Erro ao abrir solicitação."))
		return err
	}
	s.notifier.Positive("Solicitação aberta com sucesso!")
	s.refetch(ctx)
	return nil
}

// UpdateStatus requests a transition. Rejections come back as 4xx with
// the server's reason, surfaced verbatim in the toast.
func (s *Maintenance) UpdateStatus(ctx context.Context, requestID int64, payload model.MaintenanceRequestUpdate) error {
	if err := s.api.Put(ctx, fmt.Sprintf("/maintenance/%d", requestID), payload, nil); err != nil {
		s.notifier.Negative(api.Detail(err, "Erro ao atualizar solicitação."))
		return err
	}
	s.notifier.Positive("Solicitação atualizada com sucesso!")
	s.refetch(ctx)
	return nil
}

// AddComment appends to the request's thread and refetches so the
// embedded thread refreshes.
func (s *Maintenance) AddComment(ctx context.Context, requestID int64, payload model.MaintenanceCommentCreate) error {
	path := fmt.Sprintf("/maintenance/%d/comments", requestID)
	if err := s.api.Post(ctx, path, payload, nil); err != nil {
		s.notifier.Negative(api.Detail(err, "Erro ao enviar comentário."))
		return err
	}
	s.notifier.Positive("Comentário enviado!")
	s.refetch(ctx)
	return nil
}

// List returns a copy of the cached requests.
func (s *Maintenance) List() []model.MaintenanceRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.MaintenanceRequest(nil), s.requests...)
}

// Pending returns cached requests still awaiting a decision.
func (s *Maintenance) Pending() []model.MaintenanceRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	var pending []model.MaintenanceRequest
	for _, request := range s.requests {
		if request.Status == model.MaintenancePending {
			pending = append(pending, request)
		}
	}
	return pending
}

// Get returns a copy of one cached request, or nil.
func (s *Maintenance) Get(requestID int64) *model.MaintenanceRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.requests {
		if s.requests[i].ID == requestID {
			request := s.requests[i]
			return &request
		}
	}
	return nil
}

// IsLoading reports whether a fetch is in flight.
func (s *Maintenance) IsLoading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

func (s *Maintenance) setLoading(loading bool) {
	s.mu.Lock()
	s.loading = loading
	s.mu.Unlock()
}

// Clear drops the cached requests; called on logout.
func (s *Maintenance) Clear() {
	s.mu.Lock()
	s.requests = nil
	s.query = MaintenanceQuery{}
	s.mu.Unlock()
}

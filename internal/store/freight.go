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

// Freight caches the three freight order views a driver or manager
// works from: the organization's full list, the open (claimable) board,
// and the caller's own pending orders. A separately fetched detail
// record backs the active-delivery screen.
type Freight struct {
	mu       sync.Mutex
	api      *api.Client
	notifier notify.Notifier
	bus      *events.Bus
	log      *logrus.Entry

	orders         []model.FreightOrder
	openOrders     []model.FreightOrder
	myPending      []model.FreightOrder
	details        *model.FreightOrder
	loading        bool
	detailsLoading bool
}

// NewFreight builds the freight container.
func NewFreight(d Deps) *Freight {
	return &Freight{api: d.API, notifier: d.Notifier, bus: d.Bus, log: d.logger("freight")}
}

// FetchAll replaces the organization-wide order list.
func (s *Freight) FetchAll(ctx context.Context) {
	s.setLoading(true)
	defer s.setLoading(false)

	var orders []model.FreightOrder
	if err := s.api.Get(ctx, "/freight-orders/", nil, &orders); err != nil {
		s.log.WithError(err).Error("fetch freight orders")
		s.notifier.Negative("Falha ao buscar ordens de frete.")
		return
	}

	s.mu.Lock()
	s.orders = orders
	s.mu.Unlock()
}

// FetchOpen replaces the claimable board.
func (s *Freight) FetchOpen(ctx context.Context) {
	var orders []model.FreightOrder
	if err := s.api.Get(ctx, "/freight-orders/open", nil, &orders); err != nil {
		s.log.WithError(err).Error("fetch open freight orders")
		s.notifier.Negative("Falha ao buscar ordens abertas.")
		return
	}

	s.mu.Lock()
	s.openOrders = orders
	s.mu.Unlock()
}

// FetchMyPending replaces the caller's assigned-but-unfinished orders.
func (s *Freight) FetchMyPending(ctx context.Context) {
	var orders []model.FreightOrder
	if err := s.api.Get(ctx, "/freight-orders/my-pending", nil, &orders); err != nil {
		s.log.WithError(err).Error("fetch pending freight orders")
		s.notifier.Negative("Falha ao buscar suas ordens.")
		return
	}

	s.mu.Lock()
	s.myPending = orders
	s.mu.Unlock()
}

// FetchDetails loads one order with its stops and journey legs. The
// fresh record also replaces the matching my-pending entry so both
// views agree.
func (s *Freight) FetchDetails(ctx context.Context, orderID int64) {
	s.mu.Lock()
	s.detailsLoading = true
	s.mu.Unlock()
	defer func() {
		s.mu.Lock()
		s.detailsLoading = false
		s.mu.Unlock()
	}()

	var order model.FreightOrder
	if err := s.api.Get(ctx, fmt.Sprintf("/freight-orders/%d", orderID), nil, &order); err != nil {
		s.log.WithError(err).WithField("id", orderID).Error("fetch freight order")
		s.notifier.Negative("Falha ao carregar a ordem de frete.")
		return
	}

	s.mu.Lock()
	s.details = &order
	for i := range s.myPending {
		if s.myPending[i].ID == orderID {
			s.myPending[i] = order
			break
		}
	}
	s.mu.Unlock()
}

// Claim assigns an open order to the calling driver, then refreshes the
// board and the driver's pending list.
func (s *Freight) Claim(ctx context.Context, orderID int64, vehicleID int64) error {
	path := fmt.Sprintf("/freight-orders/%d/claim", orderID)
	payload := model.FreightOrderClaim{VehicleID: vehicleID}
	if err := s.api.Post(ctx, path, payload, nil); err != nil {
		s.notifier.Negative(api.Detail(err, "Erro ao aceitar a ordem."))
		return err
	}
	s.notifier.Positive("Ordem aceita com sucesso!")
	s.FetchOpen(ctx)
	s.FetchMyPending(ctx)
	return nil
}

// StartLeg opens the journey leg toward the next stop and refreshes the
// order detail so its embedded legs update.
func (s *Freight) StartLeg(ctx context.Context, orderID int64, payload model.JourneyCreate) (*model.Journey, error) {
	path := fmt.Sprintf("/freight-orders/%d/start-leg", orderID)
	var journey model.Journey
	if err := s.api.Post(ctx, path, payload, &journey); err != nil {
		s.notifier.Negative(api.Detail(err, "Erro ao iniciar o trecho."))
		return nil, err
	}
	s.notifier.Positive("Viagem iniciada!")
	s.bus.Publish(events.Change{Resource: events.ResourceJourney, Action: events.ActionStarted})
	s.FetchDetails(ctx, orderID)
	return &journey, nil
}

// CompleteStop closes the current stop, tying it to the journey leg
// that served it, then refreshes the order detail.
func (s *Freight) CompleteStop(ctx context.Context, orderID, stopID int64, payload model.CompleteStopPayload) error {
	path := fmt.Sprintf("/freight-orders/%d/stops/%d/complete", orderID, stopID)
	if err := s.api.Post(ctx, path, payload, nil); err != nil {
		s.notifier.Negative(api.Detail(err, "Erro ao concluir a parada."))
		return err
	}
	s.notifier.Positive("Parada concluída!")
	s.bus.Publish(events.Change{Resource: events.ResourceJourney, Action: events.ActionEnded})
	s.FetchDetails(ctx, orderID)
	return nil
}

// Create posts a new order and refetches the full list.
func (s *Freight) Create(ctx context.Context, payload model.FreightOrderCreate) error {
	if err := s.api.Post(ctx, "/freight-orders/", payload, nil); err != nil {
		s.notifier.Negative(api.Detail(err, "Erro ao criar a ordem de frete."))
		return err
	}
	s.notifier.Positive("Ordem de frete criada com sucesso!")
	s.FetchAll(ctx)
	return nil
}

// Update puts the order and refetches the full list. When the edited
// order is the one on the detail screen, the detail refreshes too.
func (s *Freight) Update(ctx context.Context, orderID int64, payload model.FreightOrderUpdate) error {
	if err := s.api.Put(ctx, fmt.Sprintf("/freight-orders/%d", orderID), payload, nil); err != nil {
		s.notifier.Negative(api.Detail(err, "Erro ao atualizar a ordem."))
		return err
	}
	s.notifier.Positive("Ordem atualizada com sucesso!")
	s.FetchAll(ctx)

	s.mu.Lock()
	refreshDetails := s.details != nil && s.details.ID == orderID
	s.mu.Unlock()
	if refreshDetails {
		s.FetchDetails(ctx, orderID)
	}
	return nil
}

// List returns a copy of the organization-wide order list.
func (s *Freight) List() []model.FreightOrder {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.FreightOrder(nil), s.orders...)
}

// OpenOrders returns a copy of the claimable board.
func (s *Freight) OpenOrders() []model.FreightOrder {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.FreightOrder(nil), s.openOrders...)
}

// MyPending returns a copy of the caller's pending orders.
func (s *Freight) MyPending() []model.FreightOrder {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.FreightOrder(nil), s.myPending...)
}

// Details returns a copy of the fetched order detail, or nil.
func (s *Freight) Details() *model.FreightOrder {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.details == nil {
		return nil
	}
	order := *s.details
	return &order
}

// ActiveOrder returns the caller's pending order already in transit, or
// nil. A driver works at most one delivery at a time.
func (s *Freight) ActiveOrder() *model.FreightOrder {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.myPending {
		if s.myPending[i].Status == model.FreightInTransit {
			order := s.myPending[i]
			return &order
		}
	}
	return nil
}

// ClaimedOrders returns the caller's pending orders assigned but not
// yet started.
func (s *Freight) ClaimedOrders() []model.FreightOrder {
	s.mu.Lock()
	defer s.mu.Unlock()
	var claimed []model.FreightOrder
	for _, order := range s.myPending {
		if order.Status == model.FreightAssigned {
			claimed = append(claimed, order)
		}
	}
	return claimed
}

// IsLoading reports whether a list fetch is in flight.
func (s *Freight) IsLoading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// IsDetailsLoading reports whether a detail fetch is in flight.
func (s *Freight) IsDetailsLoading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.detailsLoading
}

func (s *Freight) setLoading(loading bool) {
	s.mu.Lock()
	s.loading = loading
	s.mu.Unlock()
}

// Clear drops every cached list and the order detail; called on logout.
func (s *Freight) Clear() {
	s.mu.Lock()
	s.orders = nil
	s.openOrders = nil
	s.myPending = nil
	s.details = nil
	s.mu.Unlock()
}

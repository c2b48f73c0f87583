package store

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/frotaops/frotactl/internal/api"
	"github.com/frotaops/frotactl/internal/events"
	"github.com/frotaops/frotactl/internal/model"
	"github.com/frotaops/frotactl/internal/notify"
)

// PartUpload carries the scalar fields plus optional photo and invoice
// attachments for a multipart part create or update.
type PartUpload struct {
	Fields  map[string]string
	Photo   *api.FilePart
	Invoice *api.FilePart
}

func (u PartUpload) files() []api.FilePart {
	var files []api.FilePart
	if u.Photo != nil {
		files = append(files, *u.Photo)
	}
	if u.Invoice != nil {
		files = append(files, *u.Invoice)
	}
	return files
}

// Parts caches the inventory catalog and, separately, one part's
// transaction history. Every mutation refetches the list: stock is
// server-derived from the ledger, so a local patch could lie.
type Parts struct {
	mu       sync.Mutex
	api      *api.Client
	notifier notify.Notifier
	bus      *events.Bus
	log      *logrus.Entry

	parts          []model.Part
	history        []model.InventoryTransaction
	availableItems []model.InventoryItem
	search         string
	loading        bool
	historyLoading bool
	itemsLoading   bool
}

// NewParts builds the inventory container.
func NewParts(d Deps) *Parts {
	return &Parts{api: d.API, notifier: d.Notifier, bus: d.Bus, log: d.logger("parts")}
}

// FetchAll replaces the cached catalog, remembering the search term so
// mutations can refetch the same view.
func (s *Parts) FetchAll(ctx context.Context, search string) {
	s.setLoading(true)
	defer s.setLoading(false)

	s.mu.Lock()
	s.search = search
	s.mu.Unlock()

	params := url.Values{}
	if search != "" {
		params.Set("search", search)
	}

	var parts []model.Part
	if err := s.api.Get(ctx, "/parts/", params, &parts); err != nil {
		s.log.WithError(err).Error("fetch parts")
		s.notifier.Negative("Falha ao buscar peças.")
		return
	}

	s.mu.Lock()
	s.parts = parts
	s.mu.Unlock()
}

func (s *Parts) refetch(ctx context.Context) {
	s.mu.Lock()
	search := s.search
	s.mu.Unlock()
	s.FetchAll(ctx, search)
}

// Create uploads a new part with its attachments and refetches.
func (s *Parts) Create(ctx context.Context, upload PartUpload) error {
	if err := s.api.SendMultipart(ctx, http.MethodPost, "/parts/", upload.Fields, upload.files(), nil); err != nil {
		s.notifier.Negative(api.Detail(err, "Erro ao adicionar peça."))
		return err
	}
	s.notifier.Positive("Peça adicionada com sucesso!")
	s.refetch(ctx)
	return nil
}

// Update replaces the part's fields and attachments and refetches.
func (s *Parts) Update(ctx context.Context, partID int64, upload PartUpload) error {
	path := fmt.Sprintf("/parts/%d", partID)
	if err := s.api.SendMultipart(ctx, http.MethodPut, path, upload.Fields, upload.files(), nil); err != nil {
		s.notifier.Negative(api.Detail(err, "Erro ao atualizar peça."))
		return err
	}
	s.notifier.Positive("Peça atualizada com sucesso!")
	s.refetch(ctx)
	return nil
}

// Delete removes the part remotely and refetches.
func (s *Parts) Delete(ctx context.Context, partID int64) error {
	if err := s.api.Delete(ctx, fmt.Sprintf("/parts/%d", partID)); err != nil {
		s.notifier.Negative(api.Detail(err, "Erro ao excluir peça."))
		return err
	}
	s.notifier.Positive("Peça excluída com sucesso.")
	s.refetch(ctx)
	return nil
}

// AddItems creates quantity new physical units of the part and
// refetches so the server-computed stock lands in the cache.
func (s *Parts) AddItems(ctx context.Context, partID int64, payload model.AddItemsPayload) error {
	path := fmt.Sprintf("/parts/%d/add-items", partID)
	if err := s.api.Post(ctx, path, payload, nil); err != nil {
		s.notifier.Negative(api.Detail(err, "Erro ao adicionar itens."))
		return err
	}
	s.notifier.Positive(fmt.Sprintf("%d itens adicionados com sucesso!", payload.Quantity))
	s.refetch(ctx)
	return nil
}

// SetItemStatus moves one physical item through its lifecycle (for
// example Disponível to Em Uso when installed on a vehicle) and
// refetches the catalog for the adjusted stock.
func (s *Parts) SetItemStatus(ctx context.Context, itemID int64, payload model.ItemStatusUpdate) error {
	path := fmt.Sprintf("/parts/items/%d/set-status", itemID)
	if err := s.api.Put(ctx, path, payload, nil); err != nil {
		s.notifier.Negative(api.Detail(err, "Erro ao mudar status do item."))
		return err
	}
	s.notifier.Positive("Status do item atualizado com sucesso!")
	s.refetch(ctx)
	return nil
}

// FetchAvailableItems loads the part's uninstalled units, used to pick
// a concrete item when installing. Separate loading flag so the
// catalog view is unaffected.
func (s *Parts) FetchAvailableItems(ctx context.Context, partID int64) {
	s.mu.Lock()
	s.itemsLoading = true
	s.mu.Unlock()
	defer func() {
		s.mu.Lock()
		s.itemsLoading = false
		s.mu.Unlock()
	}()

	params := url.Values{}
	params.Set("status", string(model.ItemAvailable))

	var items []model.InventoryItem
	if err := s.api.Get(ctx, fmt.Sprintf("/parts/%d/items", partID), params, &items); err != nil {
		s.log.WithError(err).WithField("id", partID).Error("fetch available items")
		s.notifier.Negative("Falha ao buscar itens da peça.")
		return
	}

	s.mu.Lock()
	s.availableItems = items
	s.mu.Unlock()
}

// FetchHistory loads the part's transaction ledger. It has its own
// loading flag so the catalog view stays responsive.
func (s *Parts) FetchHistory(ctx context.Context, partID int64) {
	s.mu.Lock()
	s.historyLoading = true
	s.mu.Unlock()
	defer func() {
		s.mu.Lock()
		s.historyLoading = false
		s.mu.Unlock()
	}()

	path := fmt.Sprintf("/parts/%d/history", partID)
	var history []model.InventoryTransaction
	if err := s.api.Get(ctx, path, nil, &history); err != nil {
		s.log.WithError(err).WithField("id", partID).Error("fetch part history")
		s.notifier.Negative("Falha ao buscar histórico da peça.")
		return
	}

	s.mu.Lock()
	s.history = history
	s.mu.Unlock()
}

// List returns a copy of the cached catalog.
func (s *Parts) List() []model.Part {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.Part(nil), s.parts...)
}

// BelowMinStock returns cached parts at or under their minimum stock.
func (s *Parts) BelowMinStock() []model.Part {
	s.mu.Lock()
	defer s.mu.Unlock()
	var low []model.Part
	for _, part := range s.parts {
		if part.Stock <= part.MinStock {
			low = append(low, part)
		}
	}
	return low
}

// History returns a copy of the last fetched ledger.
func (s *Parts) History() []model.InventoryTransaction {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.InventoryTransaction(nil), s.history...)
}

// IsLoading reports whether a catalog fetch is in flight.
func (s *Parts) IsLoading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// AvailableItems returns a copy of the last fetched uninstalled units.
func (s *Parts) AvailableItems() []model.InventoryItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.InventoryItem(nil), s.availableItems...)
}

// IsHistoryLoading reports whether a ledger fetch is in flight.
func (s *Parts) IsHistoryLoading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.historyLoading
}

// IsItemsLoading reports whether an item-list fetch is in flight.
func (s *Parts) IsItemsLoading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.itemsLoading
}

func (s *Parts) setLoading(loading bool) {
	s.mu.Lock()
	s.loading = loading
	s.mu.Unlock()
}

// Clear drops the cached catalog, ledger, and item lists; called on
// logout.
func (s *Parts) Clear() {
	s.mu.Lock()
	s.parts = nil
	s.history = nil
	s.availableItems = nil
	s.search = ""
	s.mu.Unlock()
}

package store

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/frotaops/frotactl/internal/api"
	"github.com/frotaops/frotactl/internal/events"
	"github.com/frotaops/frotactl/internal/model"
	"github.com/frotaops/frotactl/internal/notify"
)

// DocumentQuery narrows the document list fetch to a vehicle or a
// driver; zero values mean unfiltered.
type DocumentQuery struct {
	VehicleID int64
	DriverID  int64
}

// DocumentUpload is a multipart document create: the scalar fields
// plus the file itself.
type DocumentUpload struct {
	Fields map[string]string
	File   api.FilePart
}

// Documents caches expiring documents for vehicles and drivers.
type Documents struct {
	mu       sync.Mutex
	api      *api.Client
	notifier notify.Notifier
	bus      *events.Bus
	log      *logrus.Entry

	documents []model.Document
	loading   bool
}

// NewDocuments builds the document container.
func NewDocuments(d Deps) *Documents {
	return &Documents{api: d.API, notifier: d.Notifier, bus: d.Bus, log: d.logger("documents")}
}

// FetchAll replaces the cached list.
func (s *Documents) FetchAll(ctx context.Context, query DocumentQuery) {
	s.setLoading(true)
	defer s.setLoading(false)

	params := url.Values{}
	if query.VehicleID > 0 {
		params.Set("vehicle_id", strconv.FormatInt(query.VehicleID, 10))
	}
	if query.DriverID > 0 {
		params.Set("driver_id", strconv.FormatInt(query.DriverID, 10))
	}

	var documents []model.Document
	if err := s.api.Get(ctx, "/documents/", params, &documents); err != nil {
		s.log.WithError(err).Error("fetch documents")
		s.notifier.Negative("Falha ao buscar documentos.")
		return
	}

	s.mu.Lock()
	s.documents = documents
	s.mu.Unlock()
}

// Create uploads a document and prepends the returned record.
func (s *Documents) Create(ctx context.Context, upload DocumentUpload) error {
	var document model.Document
	err := s.api.SendMultipart(ctx, http.MethodPost, "/documents/", upload.Fields, []api.FilePart{upload.File}, &document)
	if err != nil {
		s.notifier.Negative(api.Detail(err, "Erro ao enviar documento."))
		return err
	}

	s.mu.Lock()
	s.documents = append([]model.Document{document}, s.documents...)
	s.mu.Unlock()

	s.notifier.Positive("Documento enviado com sucesso!")
	return nil
}

// Delete removes the document remotely and drops it from the cache.
func (s *Documents) Delete(ctx context.Context, documentID int64) error {
	if err := s.api.Delete(ctx, fmt.Sprintf("/documents/%d", documentID)); err != nil {
		s.notifier.Negative(api.Detail(err, "Erro ao excluir documento."))
		return err
	}

	s.mu.Lock()
	kept := s.documents[:0]
	for _, document := range s.documents {
		if document.ID != documentID {
			kept = append(kept, document)
		}
	}
	s.documents = kept
	s.mu.Unlock()

	s.notifier.Positive("Documento excluído com sucesso.")
	return nil
}

// List returns a copy of the cached documents.
func (s *Documents) List() []model.Document {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.Document(nil), s.documents...)
}

// IsLoading reports whether a fetch is in flight.
func (s *Documents) IsLoading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

func (s *Documents) setLoading(loading bool) {
	s.mu.Lock()
	s.loading = loading
	s.mu.Unlock()
}

// Clear drops the cached documents; called on logout.
func (s *Documents) Clear() {
	s.mu.Lock()
	s.documents = nil
	s.mu.Unlock()
}

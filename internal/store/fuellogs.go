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

// FuelLogs caches refueling records. Manual entries are patched into
// the cache from the mutation responses; SyncWithProvider refetches
// because the provider import can land any number of new rows.
type FuelLogs struct {
	mu       sync.Mutex
	api      *api.Client
	notifier notify.Notifier
	bus      *events.Bus
	log      *logrus.Entry

	logs    []model.FuelLog
	loading bool
	syncing bool
}

// NewFuelLogs builds the fuel log container.
func NewFuelLogs(d Deps) *FuelLogs {
	return &FuelLogs{api: d.API, notifier: d.Notifier, bus: d.Bus, log: d.logger("fuellogs")}
}

// FetchAll replaces the cached list, optionally scoped to one vehicle.
func (s *FuelLogs) FetchAll(ctx context.Context, vehicleID int64) {
	s.setLoading(true)
	defer s.setLoading(false)

	params := url.Values{}
	if vehicleID > 0 {
		params.Set("vehicle_id", strconv.FormatInt(vehicleID, 10))
	}

	var logs []model.FuelLog
	if err := s.api.Get(ctx, "/fuel-logs/", params, &logs); err != nil {
		s.log.WithError(err).Error("fetch fuel logs")
		s.notifier.Negative("Falha ao buscar abastecimentos.")
		return
	}

	s.mu.Lock()
	s.logs = logs
	s.mu.Unlock()
}

// Create records a refueling and prepends the returned record.
func (s *FuelLogs) Create(ctx context.Context, payload model.FuelLogCreate) error {
	var entry model.FuelLog
	if err := s.api.Post(ctx, "/fuel-logs/", payload, &entry); err != nil {
		s.notifier.Negative(api.Detail(err, "Erro ao registrar abastecimento."))
		return err
	}

	s.mu.Lock()
	s.logs = append([]model.FuelLog{entry}, s.logs...)
	s.mu.Unlock()

	s.notifier.Positive("Abastecimento registrado com sucesso!")
	return nil
}

// Update patches the returned record into the cache.
func (s *FuelLogs) Update(ctx context.Context, logID int64, payload model.FuelLogUpdate) error {
	var entry model.FuelLog
	if err := s.api.Put(ctx, fmt.Sprintf("/fuel-logs/%d", logID), payload, &entry); err != nil {
		s.notifier.Negative(api.Detail(err, "Erro ao atualizar abastecimento."))
		return err
	}

	s.mu.Lock()
	for i := range s.logs {
		if s.logs[i].ID == logID {
			s.logs[i] = entry
			break
		}
	}
	s.mu.Unlock()

	s.notifier.Positive("Abastecimento atualizado com sucesso!")
	return nil
}

// Delete removes the record remotely and drops it from the cache.
func (s *FuelLogs) Delete(ctx context.Context, logID int64) error {
	if err := s.api.Delete(ctx, fmt.Sprintf("/fuel-logs/%d", logID)); err != nil {
		s.notifier.Negative(api.Detail(err, "Erro ao excluir abastecimento."))
		return err
	}

	s.mu.Lock()
	kept := s.logs[:0]
	for _, entry := range s.logs {
		if entry.ID != logID {
			kept = append(kept, entry)
		}
	}
	s.logs = kept
	s.mu.Unlock()

	s.notifier.Positive("Abastecimento excluído com sucesso.")
	return nil
}

// SyncWithProvider asks the server to pull records from the fuel-card
// provider, then refetches so the imported rows appear.
func (s *FuelLogs) SyncWithProvider(ctx context.Context) error {
	s.mu.Lock()
	s.syncing = true
	s.mu.Unlock()
	defer func() {
		s.mu.Lock()
		s.syncing = false
		s.mu.Unlock()
	}()

	if err := s.api.Post(ctx, "/fuel-logs/sync", nil, nil); err != nil {
		s.notifier.Negative(api.Detail(err, "Erro ao sincronizar com o provedor."))
		return err
	}

	s.notifier.Positive("Sincronização concluída com sucesso!")
	s.FetchAll(ctx, 0)
	return nil
}

// List returns a copy of the cached records.
func (s *FuelLogs) List() []model.FuelLog {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.FuelLog(nil), s.logs...)
}

// Suspicious returns cached records flagged by the fraud screen.
func (s *FuelLogs) Suspicious() []model.FuelLog {
	s.mu.Lock()
	defer s.mu.Unlock()
	var flagged []model.FuelLog
	for _, entry := range s.logs {
		if entry.VerificationStatus == model.FuelSuspicious {
			flagged = append(flagged, entry)
		}
	}
	return flagged
}

// IsLoading reports whether a fetch is in flight.
func (s *FuelLogs) IsLoading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// IsSyncing reports whether a provider sync is in flight.
func (s *FuelLogs) IsSyncing() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.syncing
}

func (s *FuelLogs) setLoading(loading bool) {
	s.mu.Lock()
	s.loading = loading
	s.mu.Unlock()
}

// Clear drops the cached entries; called on logout.
func (s *FuelLogs) Clear() {
	s.mu.Lock()
	s.logs = nil
	s.mu.Unlock()
}

package store

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/frotaops/frotactl/internal/api"
	"github.com/frotaops/frotactl/internal/events"
	"github.com/frotaops/frotactl/internal/model"
	"github.com/frotaops/frotactl/internal/notify"
)

// Reports holds the last generated report of each kind. Generation
// clears the previous result first so a failure never leaves a stale
// report posing as the requested one.
type Reports struct {
	mu       sync.Mutex
	api      *api.Client
	notifier notify.Notifier
	bus      *events.Bus
	log      *logrus.Entry

	vehicle *model.VehicleConsolidatedReport
	drivers *model.DriverPerformanceReport
	fleet   *model.FleetManagementReport
	loading bool
}

// NewReports builds the report container.
func NewReports(d Deps) *Reports {
	return &Reports{api: d.API, notifier: d.Notifier, bus: d.Bus, log: d.logger("reports")}
}

// GenerateVehicle builds the consolidated report for one vehicle.
func (s *Reports) GenerateVehicle(ctx context.Context, req model.ReportRequest) error {
	s.setLoading(true)
	defer s.setLoading(false)

	s.mu.Lock()
	s.vehicle = nil
	s.mu.Unlock()

	var report model.VehicleConsolidatedReport
	if err := s.api.Post(ctx, "/reports/vehicle-consolidated", req, &report); err != nil {
		s.notifier.Negative(api.Detail(err, "Erro ao gerar o relatório."))
		return err
	}

	s.mu.Lock()
	s.vehicle = &report
	s.mu.Unlock()
	return nil
}

// GenerateDrivers builds the driver performance report.
func (s *Reports) GenerateDrivers(ctx context.Context, req model.ReportRequest) error {
	s.setLoading(true)
	defer s.setLoading(false)

	s.mu.Lock()
	s.drivers = nil
	s.mu.Unlock()

	var report model.DriverPerformanceReport
	if err := s.api.Post(ctx, "/reports/driver-performance", req, &report); err != nil {
		s.notifier.Negative(api.Detail(err, "Erro ao gerar o relatório."))
		return err
	}

	s.mu.Lock()
	s.drivers = &report
	s.mu.Unlock()
	return nil
}

// GenerateFleet builds the fleet management report.
func (s *Reports) GenerateFleet(ctx context.Context, req model.ReportRequest) error {
	s.setLoading(true)
	defer s.setLoading(false)

	s.mu.Lock()
	s.fleet = nil
	s.mu.Unlock()

	var report model.FleetManagementReport
	if err := s.api.Post(ctx, "/reports/fleet-management", req, &report); err != nil {
		s.notifier.Negative(api.Detail(err, "Erro ao gerar o relatório."))
		return err
	}

	s.mu.Lock()
	s.fleet = &report
	s.mu.Unlock()
	return nil
}

// Vehicle returns the last consolidated vehicle report, or nil.
func (s *Reports) Vehicle() *model.VehicleConsolidatedReport {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.vehicle == nil {
		return nil
	}
	report := *s.vehicle
	return &report
}

// Drivers returns the last driver performance report, or nil.
func (s *Reports) Drivers() *model.DriverPerformanceReport {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.drivers == nil {
		return nil
	}
	report := *s.drivers
	return &report
}

// Fleet returns the last fleet management report, or nil.
func (s *Reports) Fleet() *model.FleetManagementReport {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fleet == nil {
		return nil
	}
	report := *s.fleet
	return &report
}

// IsLoading reports whether a generation request is in flight.
func (s *Reports) IsLoading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

func (s *Reports) setLoading(loading bool) {
	s.mu.Lock()
	s.loading = loading
	s.mu.Unlock()
}

// Clear drops any generated reports; called on logout.
func (s *Reports) Clear() {
	s.mu.Lock()
	s.vehicle = nil
	s.drivers = nil
	s.fleet = nil
	s.mu.Unlock()
}

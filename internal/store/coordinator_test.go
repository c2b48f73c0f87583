package store

import (
	"context"
	"encoding/json"
	"net/http"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/frotaops/frotactl/internal/events"
	"github.com/frotaops/frotactl/internal/model"
)

type fakeRoles struct {
	manager bool
	driver  bool
	demo    bool
}

func (f fakeRoles) IsManager() bool { return f.manager }
func (f fakeRoles) IsDriver() bool  { return f.driver }
func (f fakeRoles) IsDemo() bool    { return f.demo }

func coordinatorServer(managerHits, driverHits, demoHits *atomic.Int32) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/dashboard/manager":
			managerHits.Add(1)
			_ = json.NewEncoder(w).Encode(model.ManagerDashboard{})
		case "/dashboard/driver":
			driverHits.Add(1)
			_ = json.NewEncoder(w).Encode(model.DriverDashboard{})
		case "/dashboard/demo-stats":
			demoHits.Add(1)
			_ = json.NewEncoder(w).Encode(model.DemoStats{VehicleCount: 2, VehicleLimit: 3})
		default:
			http.NotFound(w, r)
		}
	})
}

func TestCoordinator_ManagerChangeRefreshesManagerDashboard(t *testing.T) {
	t.Parallel()

	var managerHits, driverHits, demoHits atomic.Int32
	h := newHarness(t, coordinatorServer(&managerHits, &driverHits, &demoHits))

	dashboard := NewDashboard(h.deps)
	demo := NewDemo(h.deps)
	NewCoordinator(context.Background(), h.deps, fakeRoles{manager: true}, dashboard, demo)

	h.bus.Publish(events.Change{Resource: events.ResourceVehicle, Action: events.ActionUpdated})

	assert.Equal(t, int32(1), managerHits.Load())
	assert.Equal(t, int32(0), driverHits.Load())
	assert.Equal(t, int32(0), demoHits.Load(), "non-demo session never touches demo stats")
}

func TestCoordinator_DriverChangeRefreshesDriverDashboard(t *testing.T) {
	t.Parallel()

	var managerHits, driverHits, demoHits atomic.Int32
	h := newHarness(t, coordinatorServer(&managerHits, &driverHits, &demoHits))

	dashboard := NewDashboard(h.deps)
	demo := NewDemo(h.deps)
	NewCoordinator(context.Background(), h.deps, fakeRoles{driver: true}, dashboard, demo)

	h.bus.Publish(events.Change{Resource: events.ResourceJourney, Action: events.ActionEnded})

	assert.Equal(t, int32(0), managerHits.Load())
	assert.Equal(t, int32(1), driverHits.Load())
}

func TestCoordinator_DemoCountAffectingForcesStatsRefresh(t *testing.T) {
	t.Parallel()

	var managerHits, driverHits, demoHits atomic.Int32
	h := newHarness(t, coordinatorServer(&managerHits, &driverHits, &demoHits))

	dashboard := NewDashboard(h.deps)
	demo := NewDemo(h.deps)
	NewCoordinator(context.Background(), h.deps, fakeRoles{manager: true, demo: true}, dashboard, demo)

	// Cached stats would normally suppress the fetch; the coordinator
	// forces past the cache.
	demo.Fetch(context.Background(), false)
	assert.Equal(t, int32(1), demoHits.Load())

	h.bus.Publish(events.Change{Resource: events.ResourceVehicle, Action: events.ActionCreated})
	assert.Equal(t, int32(2), demoHits.Load())

	// Updates do not move counts, so the quota stays cached.
	h.bus.Publish(events.Change{Resource: events.ResourceVehicle, Action: events.ActionUpdated})
	assert.Equal(t, int32(2), demoHits.Load())

	h.bus.Publish(events.Change{Resource: events.ResourceJourney, Action: events.ActionStarted})
	assert.Equal(t, int32(3), demoHits.Load())
}

func TestActionCountAffecting(t *testing.T) {
	t.Parallel()

	assert.True(t, events.ActionCreated.CountAffecting())
	assert.True(t, events.ActionDeleted.CountAffecting())
	assert.True(t, events.ActionStarted.CountAffecting())
	assert.False(t, events.ActionUpdated.CountAffecting())
	assert.False(t, events.ActionEnded.CountAffecting())
}

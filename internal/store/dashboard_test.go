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

func TestDashboard_FetchManagerPassesPeriod(t *testing.T) {
	t.Parallel()

	var gotPeriod string
	h := newHarness(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/dashboard/manager", r.URL.Path)
		gotPeriod = r.URL.Query().Get("period")
		_ = json.NewEncoder(w).Encode(model.ManagerDashboard{
			KPIs: model.KPI{TotalVehicles: 4, AvailableVehicles: 2},
		})
	}))

	s := NewDashboard(h.deps)
	s.FetchManager(context.Background(), "30d")

	assert.Equal(t, "30d", gotPeriod)
	dashboard := s.Manager()
	require.NotNil(t, dashboard)
	assert.Equal(t, 4, dashboard.KPIs.TotalVehicles)
}

func TestDashboard_PositionFailureIsSilent(t *testing.T) {
	t.Parallel()

	var fail atomic.Bool
	h := newHarness(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if fail.Load() {
			http.Error(w, "boom", http.StatusBadGateway)
			return
		}
		_ = json.NewEncoder(w).Encode([]model.VehiclePosition{{ID: 1, Latitude: -23.5, Longitude: -46.6}})
	}))

	s := NewDashboard(h.deps)
	s.FetchPositions(context.Background())
	require.Len(t, s.Positions(), 1)

	fail.Store(true)
	s.FetchPositions(context.Background())

	assert.Len(t, s.Positions(), 1, "stale fixes beat an empty map")
	assert.Empty(t, h.recorder.Events, "poll failures never toast")
}

func TestDashboard_ClearDropsEverything(t *testing.T) {
	t.Parallel()

	h := newHarness(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/dashboard/driver":
			_ = json.NewEncoder(w).Encode(model.DriverDashboard{Metrics: model.DriverMetrics{Distance: 120}})
		case "/dashboard/vehicle-positions":
			_ = json.NewEncoder(w).Encode([]model.VehiclePosition{{ID: 1}})
		default:
			http.NotFound(w, r)
		}
	}))

	s := NewDashboard(h.deps)
	s.FetchDriver(context.Background())
	s.FetchPositions(context.Background())
	require.NotNil(t, s.Driver())
	require.Len(t, s.Positions(), 1)

	s.Clear()

	assert.Nil(t, s.Driver())
	assert.Nil(t, s.Manager())
	assert.Empty(t, s.Positions())
}

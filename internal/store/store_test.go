package store

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/frotaops/frotactl/internal/api"
	"github.com/frotaops/frotactl/internal/events"
	"github.com/frotaops/frotactl/internal/notify"
)

type harness struct {
	deps     Deps
	recorder *notify.Recorder
	bus      *events.Bus
	changes  *[]events.Change
}

// newHarness builds container dependencies against an httptest server
// and records every toast and bus change for assertions.
func newHarness(t *testing.T, handler http.Handler) harness {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := api.NewClient(server.URL)
	require.NoError(t, err)

	log := logrus.New()
	log.SetOutput(io.Discard)

	recorder := &notify.Recorder{}
	bus := &events.Bus{}
	changes := &[]events.Change{}
	bus.Subscribe(func(change events.Change) {
		*changes = append(*changes, change)
	})

	return harness{
		deps:     Deps{API: client, Notifier: recorder, Bus: bus, Log: log},
		recorder: recorder,
		bus:      bus,
		changes:  changes,
	}
}

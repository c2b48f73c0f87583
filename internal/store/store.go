package store

import (
	"github.com/sirupsen/logrus"

	"github.com/frotaops/frotactl/internal/api"
	"github.com/frotaops/frotactl/internal/events"
	"github.com/frotaops/frotactl/internal/notify"
)

// Deps are the collaborators every container shares: the HTTP adapter,
// the toast sink, the change bus, and the logger.
type Deps struct {
	API      *api.Client
	Notifier notify.Notifier
	Bus      *events.Bus
	Log      *logrus.Logger
}

func (d Deps) logger(container string) *logrus.Entry {
	return d.Log.WithField("store", container)
}

package store

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/frotaops/frotactl/internal/events"
)

// RoleSource answers the role questions the coordinator routes on. The
// session manager implements it.
type RoleSource interface {
	IsManager() bool
	IsDriver() bool
	IsDemo() bool
}

// Coordinator subscribes to the change bus and re-fetches the caches a
// mutation invalidates: the role-appropriate dashboard after any
// journey, vehicle, or user change, and the demo quota counters after
// count-affecting actions in a demo session. Containers stay unaware
// of each other; this is the only place cross-container policy lives.
type Coordinator struct {
	session   RoleSource
	dashboard *Dashboard
	demo      *Demo
	log       *logrus.Entry
}

// NewCoordinator wires the coordinator onto bus. Refreshes run with
// ctx, normally the application's lifetime context.
func NewCoordinator(ctx context.Context, d Deps, session RoleSource, dashboard *Dashboard, demo *Demo) *Coordinator {
	c := &Coordinator{
		session:   session,
		dashboard: dashboard,
		demo:      demo,
		log:       d.logger("coordinator"),
	}
	d.Bus.Subscribe(func(change events.Change) {
		c.handle(ctx, change)
	})
	return c
}

func (c *Coordinator) handle(ctx context.Context, change events.Change) {
	c.log.WithFields(logrus.Fields{
		"resource": change.Resource,
		"action":   change.Action,
	}).Debug("change published")

	switch {
	case c.session.IsManager():
		c.dashboard.FetchManager(ctx, "")
	case c.session.IsDriver():
		c.dashboard.FetchDriver(ctx)
	}

	if c.session.IsDemo() && change.Action.CountAffecting() {
		c.demo.Fetch(ctx, true)
	}
}

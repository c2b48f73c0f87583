package app

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/frotaops/frotactl/internal/api"
	"github.com/frotaops/frotactl/internal/config"
	"github.com/frotaops/frotactl/internal/credstore"
	"github.com/frotaops/frotactl/internal/events"
	"github.com/frotaops/frotactl/internal/notify"
	"github.com/frotaops/frotactl/internal/session"
	"github.com/frotaops/frotactl/internal/store"
	"github.com/frotaops/frotactl/internal/terminology"
)

// Options configure the application.
type Options struct {
	ConfigPath string
	BaseURL    string // overrides the config file when set
	Navigate   session.Navigator
	Notifier   notify.Notifier
	Log        *logrus.Logger
}

// App is the composition root: the API client, the session, and every
// resource container, wired onto a shared change bus.
type App struct {
	Config      config.Config
	API         *api.Client
	Session     *session.Manager
	Terminology *terminology.Resolver
	Bus         *events.Bus

	Vehicles      *store.Vehicles
	Journeys      *store.Journeys
	Users         *store.Users
	FuelLogs      *store.FuelLogs
	Parts         *store.Parts
	Maintenance   *store.Maintenance
	Freight       *store.Freight
	Fines         *store.Fines
	Documents     *store.Documents
	Implements    *store.Implements
	Tires         *store.Tires
	Costs         *store.Costs
	Clients       *store.Clients
	Notifications *store.Notifications
	Admin         *store.Admin
	Dashboard     *store.Dashboard
	Demo          *store.Demo
	Reports       *store.Reports

	coordinator *store.Coordinator
	clearers    []clearer
	log         *logrus.Logger
}

// clearer is the per-container cache reset invoked on logout.
type clearer interface {
	Clear()
}

// New builds the application. The session is restored from the state
// file before any container exists, so the first fetch already carries
// the persisted token. ctx bounds the coordinator's refreshes and the
// pollers started later.
func New(ctx context.Context, opts Options) (*App, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if opts.BaseURL != "" {
		cfg.BaseURL = opts.BaseURL
	}

	log := opts.Log
	if log == nil {
		log = logrus.New()
	}
	notifier := opts.Notifier
	if notifier == nil {
		notifier = notify.NewLog(log)
	}

	client, err := api.NewClient(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("init api client: %w", err)
	}

	creds, err := credstore.Open(cfg.StatePath, log)
	if err != nil {
		return nil, fmt.Errorf("open state file: %w", err)
	}

	terms := &terminology.Resolver{}
	sess := session.NewManager(client, creds, notifier, terms, opts.Navigate, log)
	sess.Init()
	client.SetTokenSource(sess)

	bus := &events.Bus{}
	deps := store.Deps{API: client, Notifier: notifier, Bus: bus, Log: log}

	a := &App{
		Config:      cfg,
		API:         client,
		Session:     sess,
		Terminology: terms,
		Bus:         bus,

		Vehicles:      store.NewVehicles(deps),
		Journeys:      store.NewJourneys(deps),
		Users:         store.NewUsers(deps),
		FuelLogs:      store.NewFuelLogs(deps),
		Parts:         store.NewParts(deps),
		Maintenance:   store.NewMaintenance(deps),
		Freight:       store.NewFreight(deps),
		Fines:         store.NewFines(deps),
		Documents:     store.NewDocuments(deps),
		Implements:    store.NewImplements(deps),
		Tires:         store.NewTires(deps),
		Costs:         store.NewCosts(deps),
		Clients:       store.NewClients(deps),
		Notifications: store.NewNotifications(deps),
		Admin:         store.NewAdmin(deps, sess),
		Dashboard:     store.NewDashboard(deps),
		Demo:          store.NewDemo(deps),
		Reports:       store.NewReports(deps),

		log: log,
	}
	a.coordinator = store.NewCoordinator(ctx, deps, sess, a.Dashboard, a.Demo)
	a.clearers = []clearer{
		a.Vehicles, a.Journeys, a.Users, a.FuelLogs, a.Parts,
		a.Maintenance, a.Freight, a.Fines, a.Documents, a.Implements,
		a.Tires, a.Costs, a.Clients, a.Notifications, a.Admin,
		a.Dashboard, a.Demo, a.Reports,
	}
	return a, nil
}

// Logout tears down the session and drops every container's cache, so
// nothing from the previous organization survives into the next login.
func (a *App) Logout() {
	a.Session.Logout()
	for _, c := range a.clearers {
		c.Clear()
	}
}

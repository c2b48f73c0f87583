package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/frotaops/frotactl/internal/app"
	"github.com/frotaops/frotactl/internal/model"
	"github.com/frotaops/frotactl/internal/store"
)

func main() {
	os.Exit(run())
}

func run() int {
	// .env is optional; environment wins over the file either way.
	_ = godotenv.Load()

	configPath := flag.String("config", "", "override config path (optional)")
	baseURL := flag.String("url", os.Getenv("FROTAOPS_URL"), "override API base URL (optional)")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	log := logrus.New()
	log.SetLevel(logrus.InfoLevel)
	if *verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	a, err := app.New(ctx, app.Options{
		ConfigPath: *configPath,
		BaseURL:    *baseURL,
		Log:        log,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "frotactl: %v\n", err)
		return 1
	}

	if err := dispatch(ctx, a, flag.Args()); err != nil {
		fmt.Fprintf(os.Stderr, "frotactl: %v\n", err)
		return 1
	}
	return 0
}

func dispatch(ctx context.Context, a *app.App, args []string) error {
	if len(args) == 0 {
		usage()
		return nil
	}
	switch args[0] {
	case "login":
		return cmdLogin(ctx, a, args[1:])
	case "logout":
		a.Logout()
		fmt.Println("sessão encerrada")
		return nil
	case "whoami":
		return cmdWhoami(a)
	case "vehicles":
		return cmdVehicles(ctx, a, args[1:])
	case "journeys":
		return cmdJourneys(ctx, a)
	case "watch":
		return cmdWatch(ctx, a)
	default:
		usage()
		return fmt.Errorf("unknown command %q", args[0])
	}
}

func usage() {
	fmt.Println(`usage: frotactl [flags] <command>

commands:
  login <email>     authenticate and persist the session
  logout            drop the persisted session
  whoami            show the active session
  vehicles [search] list vehicles
  journeys          list journeys
  watch             poll vehicle positions until interrupted`)
}

func cmdLogin(ctx context.Context, a *app.App, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("login needs an email argument")
	}
	password := os.Getenv("FROTAOPS_PASSWORD")
	if password == "" {
		fmt.Print("senha: ")
		if _, err := fmt.Scanln(&password); err != nil {
			return fmt.Errorf("read password: %w", err)
		}
	}
	if !a.Session.Login(ctx, args[0], password) {
		return fmt.Errorf("authentication failed")
	}
	user := a.Session.User()
	fmt.Printf("autenticado como %s (%s)\n", user.FullName, user.Email)
	return nil
}

func cmdWhoami(a *app.App) error {
	user := a.Session.User()
	if user == nil {
		return fmt.Errorf("no active session")
	}
	fmt.Printf("%s <%s> role=%s", user.FullName, user.Email, user.Role)
	if a.Session.IsImpersonating() {
		fmt.Print(" (impersonating)")
	}
	fmt.Println()
	return nil
}

func cmdVehicles(ctx context.Context, a *app.App, args []string) error {
	search := strings.Join(args, " ")
	a.Vehicles.FetchAll(ctx, store.VehicleQuery{Search: search, RowsPerPage: 50})
	vehicles := a.Vehicles.List()
	if len(vehicles) == 0 {
		fmt.Println("nenhum veículo encontrado")
		return nil
	}
	for _, vehicle := range vehicles {
		fmt.Printf("%-6d %-24s %-12s %s\n", vehicle.ID, vehicleLabel(vehicle), vehicle.Status, vehicle.Brand)
	}
	fmt.Printf("%d de %d veículos\n", len(vehicles), a.Vehicles.TotalItems())
	return nil
}

func vehicleLabel(v model.Vehicle) string {
	if v.LicensePlate != nil && *v.LicensePlate != "" {
		return *v.LicensePlate
	}
	if v.Identifier != nil && *v.Identifier != "" {
		return *v.Identifier
	}
	return v.Model
}

func cmdJourneys(ctx context.Context, a *app.App) error {
	a.Journeys.FetchAll(ctx, store.JourneyQuery{})
	for _, journey := range a.Journeys.List() {
		state := "encerrada"
		if journey.IsActive {
			state = "ativa"
		}
		fmt.Printf("%-6d %-10s %-20s %s\n", journey.ID, state, journey.Driver.FullName, vehicleLabel(journey.Vehicle))
	}
	return nil
}

func cmdWatch(ctx context.Context, a *app.App) error {
	a.StartBackground(ctx)
	ticker := time.NewTicker(a.Config.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			for _, pos := range a.Dashboard.Positions() {
				fmt.Printf("%-6d %-12s %9.5f %10.5f %s\n", pos.ID, deref(pos.LicensePlate), pos.Latitude, pos.Longitude, pos.Status)
			}
			fmt.Printf("-- %d não lidas --\n", a.Notifications.UnreadCount())
		}
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

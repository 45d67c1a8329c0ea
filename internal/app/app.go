package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/dalyeok/dalyeok/internal/config"
	"github.com/dalyeok/dalyeok/internal/database"
	"github.com/dalyeok/dalyeok/internal/rest"
	"github.com/gorilla/mux"
	"github.com/robfig/cron/v3"
	log "github.com/sirupsen/logrus"
)

// Application wires configuration, database, router, scheduler tick, and
// server lifecycle.
type Application struct {
	cfg    config.Application
	router *mux.Router
	srv    *http.Server
	cron   *cron.Cron
}

// NewApplication constructs the full HTTP application, ready to Run().
func NewApplication() (*Application, error) {
	cfg, err := config.Load("./config/application.yaml")
	if err != nil {
		return nil, err
	}

	// DB + migrations
	db, err := database.Open(cfg.Database)
	if err != nil {
		return nil, err
	}
	// db will be closed when server shuts down; defer not possible here, leave to process exit.
	if err := database.Migrate(cfg.Database); err != nil {
		return nil, err
	}

	r := mux.NewRouter()

	// Build dependencies (services, handlers...)
	deps, err := BuildDependencies(db, cfg)
	if err != nil {
		return nil, err
	}

	// Middleware chain
	SetupMiddleware(r)

	// Routes
	RegisterRoutes(r, deps)

	// Frontend
	if cfg.Frontend.Enabled {
		frontend := rest.NewFrontendHandler("frontend", "index.html")
		r.PathPrefix("/").Handler(frontend)
	}

	// Notification tick: re-evaluate reminder windows on a fixed cadence.
	c := cron.New()
	tickSpec := fmt.Sprintf("@every %ds", cfg.Notifications.TickSeconds)
	_, err = c.AddFunc(tickSpec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		events, err := deps.EventService.ListEvents(ctx)
		if err != nil {
			log.Errorf("notification tick: failed to list events: %v", err)
			return
		}
		for _, n := range deps.Scheduler.Tick(events) {
			log.Infof("notification: %s", n.Message)
		}
	})
	if err != nil {
		return nil, fmt.Errorf("failed to schedule notification tick: %w", err)
	}

	srv := &http.Server{
		Handler:      r,
		Addr:         cfg.Addr,
		WriteTimeout: 15 * time.Second,
		ReadTimeout:  15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return &Application{cfg: cfg, router: r, srv: srv, cron: c}, nil
}

// Run starts the notification tick and the HTTP server, and blocks.
func (a *Application) Run() error {
	a.cron.Start()
	defer a.cron.Stop()

	log.Infof("Starting server on %s", a.srv.Addr)
	return a.srv.ListenAndServe()
}

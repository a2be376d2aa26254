package main

import (
	"context"
	"fmt"

	"tasktracker/internal/config"
	myHTTP "tasktracker/internal/handler/http"
	"tasktracker/internal/logger"
	"tasktracker/internal/server"
	"tasktracker/internal/service"
	"tasktracker/internal/session"
	"tasktracker/internal/store"
	"tasktracker/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("tasktracker-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := context.Background()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}

	sessionStore, err := newSessionStore(cfg.Storage.Sessions, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating session store")
	}
	sessions := session.NewManager(sessionStore, cfg.App.SessionTTL, log)

	workers.NewWorkers(
		session.NewSweeper(sessionStore, cfg.App.SessionSweepInterval, log),
	).Run()

	services := service.NewServices(storages, log)
	handler := myHTTP.NewHandler(services, sessions, cfg.App, log)

	srv, err := server.NewServer(handler.Init(), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

// newSessionStore selects the session backend: SQLite when a database path is
// configured, the in-memory store otherwise.
func newSessionStore(cfg config.Sessions, log *logger.Logger) (session.Store, error) {
	if cfg.SQLitePath != "" {
		return session.NewSQLiteStore(cfg.SQLitePath, log)
	}

	return session.NewMemoryStore(log), nil
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}

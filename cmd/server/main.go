package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-taskflow/internal/config"
	"github.com/MKhiriev/go-taskflow/internal/handler"
	"github.com/MKhiriev/go-taskflow/internal/logger"
	"github.com/MKhiriev/go-taskflow/internal/server"
	"github.com/MKhiriev/go-taskflow/internal/service"
	"github.com/MKhiriev/go-taskflow/internal/store"
	"github.com/MKhiriev/go-taskflow/internal/workers"
	"github.com/MKhiriev/go-taskflow/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("taskflow-server")
	cfg, err := config.GetServerConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	db, err := store.NewConnect(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err = db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	services, err := service.NewServices(store.NewStorages(db, log), cfg.App, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	bgWorkers := workers.NewWorkers(services.AuthService, cfg.Workers, log)

	srv, err := server.NewServer(handlers, bgWorkers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
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

package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-taskflow/internal/adapter"
	"github.com/MKhiriev/go-taskflow/internal/client"
	"github.com/MKhiriev/go-taskflow/internal/config"
	"github.com/MKhiriev/go-taskflow/internal/logger"
	"github.com/MKhiriev/go-taskflow/internal/session"
	"github.com/MKhiriev/go-taskflow/internal/store"
	"github.com/MKhiriev/go-taskflow/internal/tui"
	"github.com/MKhiriev/go-taskflow/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	log := logger.NewClientLogger("taskflow-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	cookies := store.NewSessionFileStorage(cfg.Storage, log)
	sess := session.NewSession(serverAdapter, cookies, log)
	ui := tui.New(sess, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit), log)

	app, err := client.NewApp(sess, ui, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	defer stop()

	if err = app.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}

package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/fleet-dispatch/internal/config"
	"github.com/MKhiriev/fleet-dispatch/internal/crypto"
	"github.com/MKhiriev/fleet-dispatch/internal/handler"
	"github.com/MKhiriev/fleet-dispatch/internal/logger"
	"github.com/MKhiriev/fleet-dispatch/internal/server"
	"github.com/MKhiriev/fleet-dispatch/internal/service"
	"github.com/MKhiriev/fleet-dispatch/internal/store"
	"github.com/MKhiriev/fleet-dispatch/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Print(buildInfo)

	log := logger.NewLogger("fleet-dispatch-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Warn().Err(err).Msg("keeping default log level")
	}
	if buildVersion != "" {
		cfg.App.Version = buildInfo.BuildVersion()
	}

	log.Debug().
		Str("db_driver", cfg.Storage.DB.Driver).
		Str("address", cfg.Server.HTTPAddress).
		Int("driver_percent", cfg.App.DriverPercent).
		Msg("received configs")

	ctx := context.Background()

	db, err := store.NewConnect(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err = db.Migrate(ctx); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	storages := store.NewStorages(db, log)

	services, err := service.NewServices(storages, crypto.NewPasswordHasher(), cfg.App, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

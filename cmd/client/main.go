package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-app-template/internal/adapter"
	"github.com/MKhiriev/go-app-template/internal/client"
	"github.com/MKhiriev/go-app-template/internal/config"
	"github.com/MKhiriev/go-app-template/internal/logger"
	"github.com/MKhiriev/go-app-template/internal/service"
	"github.com/MKhiriev/go-app-template/internal/store"
	"github.com/MKhiriev/go-app-template/internal/tui"
	"github.com/MKhiriev/go-app-template/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Println(buildInfo)

	cfg, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		os.Exit(1)
	}

	log := logger.NewClientLogger("go-app-client", cfg.Log.File)
	log.Debug().Any("config", cfg).Msg("received configs")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	network, err := adapter.NewHTTPNetworkClient(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create network client")
	}

	storages, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}
	defer storages.Close()

	services, err := service.NewServices(cfg.Auth, network)
	if err != nil {
		log.Fatal().Err(err).Msg("create client services")
	}

	app, err := client.NewApp(ctx, services, storages.Sessions, network, cfg.Home, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	ui := tui.New(app.Store(), buildInfo.WithVersionFallback(cfg.App.Version), log)
	if err = app.Run(ctx, ui); err != nil {
		log.Error().Err(err).Msg("client run error")
		stop()
		_ = storages.Close()
		os.Exit(1)
	}
}

// Command devserver serves the mock backend over HTTP so the client can be
// run with -auth-mode http against a local API.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-app-template/internal/config"
	"github.com/MKhiriev/go-app-template/internal/handler"
	"github.com/MKhiriev/go-app-template/internal/logger"
	"github.com/MKhiriev/go-app-template/internal/server"
	"github.com/MKhiriev/go-app-template/internal/service"
	"github.com/MKhiriev/go-app-template/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	log := logger.NewLogger("go-app-devserver")

	cfg, err := config.GetServerConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	cfg.Version = buildInfo.WithVersionFallback(cfg.Version).BuildVersion()
	log.Info().
		Str("version", cfg.Version).
		Str("date", buildInfo.BuildDate()).
		Str("commit", buildInfo.BuildCommit()).
		Msg("starting dev server")
	log.Debug().Any("config", cfg).Msg("received configs")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	services := service.NewMockServices(cfg.Auth.MockDelay, cfg.Auth.MockSignKey)

	handlers, err := handler.NewHandlers(services, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create handlers")
	}

	srv, err := server.NewServer(handlers, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server")
	}

	if err = srv.Run(ctx); err != nil {
		stop()
		log.Fatal().Err(err).Msg("server run error")
	}
}

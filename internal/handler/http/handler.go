package http

import (
	"github.com/MKhiriev/go-app-template/internal/config"
	"github.com/MKhiriev/go-app-template/internal/logger"
	"github.com/MKhiriev/go-app-template/internal/service"
	"github.com/MKhiriev/go-app-template/internal/utils"
)

type Handler struct {
	services *service.Services

	signKey string
	version string
	traceID *utils.UUIDGenerator

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.ServerConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		signKey:  cfg.Auth.MockSignKey,
		version:  cfg.Version,
		traceID:  utils.NewUUIDGenerator(),
		logger:   logger,
	}
}

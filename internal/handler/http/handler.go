package http

import (
	"time"

	"github.com/MKhiriev/fleet-dispatch/internal/config"
	"github.com/MKhiriev/fleet-dispatch/internal/logger"
	"github.com/MKhiriev/fleet-dispatch/internal/service"
)

type Handler struct {
	services *service.Services

	// requestTimeout bounds the context of every request; zero disables it.
	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		requestTimeout: cfg.RequestTimeout,
		logger:         logger,
	}
}

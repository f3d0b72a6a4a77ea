package service

import (
	"context"

	"github.com/MKhiriev/fleet-dispatch/internal/config"
	"github.com/MKhiriev/fleet-dispatch/internal/logger"
)

// appInfoService reports the version the server was configured or built with.
type appInfoService struct {
	version string
}

func NewAppInfoService(cfg config.App, logger *logger.Logger) (AppInfoService, error) {
	if cfg.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	logger.Debug().Str("version", cfg.Version).Msg("app info service created")
	return &appInfoService{version: cfg.Version}, nil
}

func (s *appInfoService) GetAppVersion(context.Context) string {
	return s.version
}

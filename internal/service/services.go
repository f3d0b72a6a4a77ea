package service

import (
	"fmt"

	"github.com/MKhiriev/fleet-dispatch/internal/config"
	"github.com/MKhiriev/fleet-dispatch/internal/crypto"
	"github.com/MKhiriev/fleet-dispatch/internal/logger"
	"github.com/MKhiriev/fleet-dispatch/internal/store"
)

type Services struct {
	AuthService     AuthService
	DispatchService DispatchService
	AppInfoService  AppInfoService
}

func NewServices(storages *store.Storages, hasher crypto.PasswordHasher, cfg config.App, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	return &Services{
		AuthService:     NewAuthService(storages.UserRepository, hasher, cfg, logger),
		DispatchService: NewDispatchService(storages, hasher, cfg, logger),
		AppInfoService:  appInfo,
	}, nil
}

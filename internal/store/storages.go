package store

import (
	"context"

	"github.com/MKhiriev/fleet-dispatch/internal/logger"
	"github.com/MKhiriev/fleet-dispatch/models"
)

// Storages groups every repository built on one [DB].
type Storages struct {
	UserRepository       UserRepository
	DriverRepository     DriverRepository
	DispatcherRepository DispatcherRepository
	CarRepository        CarRepository
	OrderRepository      OrderRepository
}

// NewStorages builds all repositories on db.
func NewStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		UserRepository:       NewUserRepository(db, logger),
		DriverRepository:     NewDriverRepository(db, logger),
		DispatcherRepository: NewDispatcherRepository(db, logger),
		CarRepository:        NewCarRepository(db, logger),
		OrderRepository:      NewOrderRepository(db, logger),
	}
}

// Lookup exposes the repositories as the read-only record source used by
// validators and mergers. Missing records surface as [ErrRecordNotFound].
type Lookup struct {
	storages *Storages
}

// NewLookup wraps s.
func NewLookup(s *Storages) *Lookup {
	return &Lookup{storages: s}
}

func (l *Lookup) DriverByID(ctx context.Context, id int64) (models.Driver, error) {
	return l.storages.DriverRepository.DriverByID(ctx, id)
}

func (l *Lookup) CarByID(ctx context.Context, id int64) (models.Car, error) {
	return l.storages.CarRepository.CarByID(ctx, id)
}

func (l *Lookup) OrderByID(ctx context.Context, id int64) (models.Order, error) {
	return l.storages.OrderRepository.OrderByID(ctx, id)
}

func (l *Lookup) DispatcherByID(ctx context.Context, id int64) (models.Dispatcher, error) {
	return l.storages.DispatcherRepository.DispatcherByID(ctx, id)
}

func (l *Lookup) UserByID(ctx context.Context, id int64) (models.User, error) {
	return l.storages.UserRepository.UserByID(ctx, id)
}

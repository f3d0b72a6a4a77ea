package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/fleet-dispatch/models"
)

// UserRepository reads and rewrites the credentials shared by drivers and
// dispatchers.
type UserRepository interface {
	UserByID(ctx context.Context, id int64) (models.User, error)
	UserByLogin(ctx context.Context, login string) (models.User, error)
	// UpdateUserCredentials stores user.Login and user.PassHash.
	UpdateUserCredentials(ctx context.Context, user models.User) error
}

// DriverRepository persists drivers together with their user row.
type DriverRepository interface {
	// CreateDriver inserts the user and the driver rows in one transaction
	// and returns the driver with its new ID.
	CreateDriver(ctx context.Context, driver models.Driver) (models.Driver, error)
	DriverByID(ctx context.Context, id int64) (models.Driver, error)
	// UpdateDriverProfile stores every driver field except the credentials.
	UpdateDriverProfile(ctx context.Context, driver models.Driver) error
}

// DispatcherRepository persists dispatchers together with their user row.
type DispatcherRepository interface {
	CreateDispatcher(ctx context.Context, dispatcher models.Dispatcher) (models.Dispatcher, error)
	DispatcherByID(ctx context.Context, id int64) (models.Dispatcher, error)
	UpdateDispatcherProfile(ctx context.Context, dispatcher models.Dispatcher) error
}

// CarRepository persists cars.
type CarRepository interface {
	CreateCar(ctx context.Context, car models.Car) (models.Car, error)
	CarByID(ctx context.Context, id int64) (models.Car, error)
	UpdateCar(ctx context.Context, car models.Car) error
}

// OrderRepository persists orders.
type OrderRepository interface {
	CreateOrder(ctx context.Context, order models.Order) (models.Order, error)
	OrderByID(ctx context.Context, id int64) (models.Order, error)
	UpdateOrder(ctx context.Context, order models.Order) error
	// ListOrders returns orders matching filter ordered by date, then ID.
	ListOrders(ctx context.Context, filter models.OrderFilter) ([]models.Order, error)
}

// Package service holds the use cases of the dispatch server: it merges and
// validates incoming records, hashes credentials, and persists the result
// through the store repositories.
package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/fleet-dispatch/models"
)

// DispatchService manages drivers, dispatchers, cars and orders.
//
// Create methods validate the full record. Update methods take a partial
// record whose zero fields are filled from storage before validation.
// Validation failures are returned as *validators.ValidationError.
type DispatchService interface {
	CreateDriver(ctx context.Context, driver models.Driver) (models.Driver, error)
	UpdateDriver(ctx context.Context, id int64, partial models.Driver) (models.Driver, error)
	GetDriver(ctx context.Context, id int64) (models.Driver, error)

	CreateCar(ctx context.Context, car models.Car) (models.Car, error)
	UpdateCar(ctx context.Context, id int64, partial models.Car) (models.Car, error)
	GetCar(ctx context.Context, id int64) (models.Car, error)

	CreateOrder(ctx context.Context, order models.Order) (models.Order, error)
	UpdateOrder(ctx context.Context, id int64, partial models.Order) (models.Order, error)
	GetOrder(ctx context.Context, id int64) (models.Order, error)
	ListOrders(ctx context.Context, filter models.OrderFilter) ([]models.Order, error)

	CreateDispatcher(ctx context.Context, dispatcher models.Dispatcher) (models.Dispatcher, error)
	UpdateDispatcher(ctx context.Context, id int64, partial models.Dispatcher) (models.Dispatcher, error)
	GetDispatcher(ctx context.Context, id int64) (models.Dispatcher, error)

	// UpdateUser changes login and/or password of a driver or dispatcher.
	UpdateUser(ctx context.Context, id int64, partial models.User) (models.User, error)

	// DriverEarnings sums the cost of the driver's orders dated within
	// [from, to] and applies the driver commission.
	DriverEarnings(ctx context.Context, driverID int64, from, to string) (models.Earnings, error)
}

type AuthService interface {
	Login(ctx context.Context, user models.User) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

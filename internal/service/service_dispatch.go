package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/fleet-dispatch/internal/config"
	"github.com/MKhiriev/fleet-dispatch/internal/crypto"
	"github.com/MKhiriev/fleet-dispatch/internal/logger"
	"github.com/MKhiriev/fleet-dispatch/internal/store"
	"github.com/MKhiriev/fleet-dispatch/internal/validators"
	"github.com/MKhiriev/fleet-dispatch/models"
)

// dispatchService is the store-backed implementation of [DispatchService].
type dispatchService struct {
	drivers     store.DriverRepository
	dispatchers store.DispatcherRepository
	cars        store.CarRepository
	orders      store.OrderRepository
	users       store.UserRepository

	lookup    validators.RecordLookup
	validator validators.Validator
	hasher    crypto.PasswordHasher

	// driverMul is the share of an order's cost paid to its driver.
	driverMul float64

	locks  *recordLocks
	logger *logger.Logger
}

// NewDispatchService wires a [DispatchService] to storages. Referential
// checks read through the same repositories that writes go to.
func NewDispatchService(storages *store.Storages, hasher crypto.PasswordHasher, cfg config.App, logger *logger.Logger) DispatchService {
	lookup := store.NewLookup(storages)

	return &dispatchService{
		drivers:     storages.DriverRepository,
		dispatchers: storages.DispatcherRepository,
		cars:        storages.CarRepository,
		orders:      storages.OrderRepository,
		users:       storages.UserRepository,
		lookup:      lookup,
		validator:   validators.NewEntityValidator(lookup),
		hasher:      hasher,
		driverMul:   cfg.DriverMul(),
		locks:       newRecordLocks(),
		logger:      logger,
	}
}

// ── drivers ───────────────────────────────────────────────────────────────────

// CreateDriver hashes driver.Password, validates the record and stores it.
func (s *dispatchService) CreateDriver(ctx context.Context, driver models.Driver) (models.Driver, error) {
	log := logger.FromContext(ctx)

	if err := s.hashInto(&driver.PassHash, &driver.Password); err != nil {
		log.Err(err).Str("func", "*dispatchService.CreateDriver").Msg("error hashing password")
		return models.Driver{}, err
	}

	if err := s.validator.Validate(ctx, driver); err != nil {
		return models.Driver{}, err
	}

	created, err := s.drivers.CreateDriver(ctx, driver)
	if err != nil {
		log.Err(err).Str("func", "*dispatchService.CreateDriver").Str("login", driver.Login).Msg("error saving driver")
		return models.Driver{}, fmt.Errorf("error saving driver: %w", err)
	}

	return created, nil
}

// UpdateDriver merges partial into the stored driver. Credentials are not
// touched; see UpdateUser.
func (s *dispatchService) UpdateDriver(ctx context.Context, id int64, partial models.Driver) (models.Driver, error) {
	log := logger.FromContext(ctx)

	unlock := s.locks.lock("driver", id)
	defer unlock()

	merged, err := validators.MergeDriver(ctx, partial, id, s.lookup)
	if err != nil {
		return models.Driver{}, err
	}

	if err = s.drivers.UpdateDriverProfile(ctx, merged); err != nil {
		log.Err(err).Str("func", "*dispatchService.UpdateDriver").Int64("driver_id", id).Msg("error updating driver")
		return models.Driver{}, notFound(err, validators.ErrDriverNotFound, "error updating driver")
	}

	return s.GetDriver(ctx, id)
}

func (s *dispatchService) GetDriver(ctx context.Context, id int64) (models.Driver, error) {
	driver, err := s.drivers.DriverByID(ctx, id)
	if err != nil {
		return models.Driver{}, notFound(err, validators.ErrDriverNotFound, "error getting driver")
	}
	return driver, nil
}

// ── cars ──────────────────────────────────────────────────────────────────────

func (s *dispatchService) CreateCar(ctx context.Context, car models.Car) (models.Car, error) {
	if err := s.validator.Validate(ctx, car); err != nil {
		return models.Car{}, err
	}

	created, err := s.cars.CreateCar(ctx, car)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*dispatchService.CreateCar").Msg("error saving car")
		return models.Car{}, fmt.Errorf("error saving car: %w", err)
	}

	return created, nil
}

func (s *dispatchService) UpdateCar(ctx context.Context, id int64, partial models.Car) (models.Car, error) {
	unlock := s.locks.lock("car", id)
	defer unlock()

	merged, err := validators.MergeCar(ctx, partial, id, s.lookup)
	if err != nil {
		return models.Car{}, err
	}

	if err = s.cars.UpdateCar(ctx, merged); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*dispatchService.UpdateCar").Int64("car_id", id).Msg("error updating car")
		return models.Car{}, notFound(err, validators.ErrCarNotFound, "error updating car")
	}

	return merged, nil
}

func (s *dispatchService) GetCar(ctx context.Context, id int64) (models.Car, error) {
	car, err := s.cars.CarByID(ctx, id)
	if err != nil {
		return models.Car{}, notFound(err, validators.ErrCarNotFound, "error getting car")
	}
	return car, nil
}

// ── orders ────────────────────────────────────────────────────────────────────

func (s *dispatchService) CreateOrder(ctx context.Context, order models.Order) (models.Order, error) {
	if err := s.validator.Validate(ctx, order); err != nil {
		return models.Order{}, err
	}

	created, err := s.orders.CreateOrder(ctx, order)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*dispatchService.CreateOrder").Msg("error saving order")
		return models.Order{}, fmt.Errorf("error saving order: %w", err)
	}

	return created, nil
}

func (s *dispatchService) UpdateOrder(ctx context.Context, id int64, partial models.Order) (models.Order, error) {
	unlock := s.locks.lock("order", id)
	defer unlock()

	merged, err := validators.MergeOrder(ctx, partial, id, s.lookup)
	if err != nil {
		return models.Order{}, err
	}

	if err = s.orders.UpdateOrder(ctx, merged); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*dispatchService.UpdateOrder").Int64("order_id", id).Msg("error updating order")
		return models.Order{}, notFound(err, validators.ErrOrderNotFound, "error updating order")
	}

	return merged, nil
}

func (s *dispatchService) GetOrder(ctx context.Context, id int64) (models.Order, error) {
	order, err := s.orders.OrderByID(ctx, id)
	if err != nil {
		return models.Order{}, notFound(err, validators.ErrOrderNotFound, "error getting order")
	}
	return order, nil
}

// ListOrders accepts open-ended periods: an empty bound is not applied.
func (s *dispatchService) ListOrders(ctx context.Context, filter models.OrderFilter) ([]models.Order, error) {
	if err := checkPeriod(filter.From, filter.To); err != nil {
		return nil, err
	}

	orders, err := s.orders.ListOrders(ctx, filter)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*dispatchService.ListOrders").Msg("error listing orders")
		return nil, fmt.Errorf("error listing orders: %w", err)
	}

	return orders, nil
}

// ── dispatchers ───────────────────────────────────────────────────────────────

func (s *dispatchService) CreateDispatcher(ctx context.Context, dispatcher models.Dispatcher) (models.Dispatcher, error) {
	log := logger.FromContext(ctx)

	if err := s.hashInto(&dispatcher.PassHash, &dispatcher.Password); err != nil {
		log.Err(err).Str("func", "*dispatchService.CreateDispatcher").Msg("error hashing password")
		return models.Dispatcher{}, err
	}

	if err := s.validator.Validate(ctx, dispatcher); err != nil {
		return models.Dispatcher{}, err
	}

	created, err := s.dispatchers.CreateDispatcher(ctx, dispatcher)
	if err != nil {
		log.Err(err).Str("func", "*dispatchService.CreateDispatcher").Str("login", dispatcher.Login).Msg("error saving dispatcher")
		return models.Dispatcher{}, fmt.Errorf("error saving dispatcher: %w", err)
	}

	return created, nil
}

func (s *dispatchService) UpdateDispatcher(ctx context.Context, id int64, partial models.Dispatcher) (models.Dispatcher, error) {
	unlock := s.locks.lock("dispatcher", id)
	defer unlock()

	merged, err := validators.MergeDispatcher(ctx, partial, id, s.lookup)
	if err != nil {
		return models.Dispatcher{}, err
	}

	if err = s.dispatchers.UpdateDispatcherProfile(ctx, merged); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*dispatchService.UpdateDispatcher").Int64("dispatcher_id", id).Msg("error updating dispatcher")
		return models.Dispatcher{}, notFound(err, validators.ErrDispatcherNotFound, "error updating dispatcher")
	}

	return s.GetDispatcher(ctx, id)
}

func (s *dispatchService) GetDispatcher(ctx context.Context, id int64) (models.Dispatcher, error) {
	dispatcher, err := s.dispatchers.DispatcherByID(ctx, id)
	if err != nil {
		return models.Dispatcher{}, notFound(err, validators.ErrDispatcherNotFound, "error getting dispatcher")
	}
	return dispatcher, nil
}

// ── users ─────────────────────────────────────────────────────────────────────

// UpdateUser keeps the stored role. An empty partial.Password keeps the
// stored digest. Only a newly supplied login is checked against the login
// charset, so dispatchers created with a looser login can still change
// their password.
func (s *dispatchService) UpdateUser(ctx context.Context, id int64, partial models.User) (models.User, error) {
	unlock := s.locks.lock("user", id)
	defer unlock()

	merged, err := validators.MergeUser(ctx, partial, id, s.lookup, s.hasher)
	if err != nil {
		return models.User{}, err
	}

	if partial.Login != "" && !validators.ValidLogin(merged.Login) {
		return models.User{}, validators.ErrInvalidLogin
	}

	if err = s.users.UpdateUserCredentials(ctx, merged); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*dispatchService.UpdateUser").Int64("user_id", id).Msg("error updating credentials")
		return models.User{}, notFound(err, validators.ErrUserNotFound, "error updating user")
	}

	return merged, nil
}

// ── earnings ──────────────────────────────────────────────────────────────────

// DriverEarnings requires both period bounds.
func (s *dispatchService) DriverEarnings(ctx context.Context, driverID int64, from, to string) (models.Earnings, error) {
	ok, err := validators.ValidPeriod(from, to)
	if err != nil {
		return models.Earnings{}, err
	}
	if !ok {
		return models.Earnings{}, ErrInvalidPeriod
	}

	if _, err = s.GetDriver(ctx, driverID); err != nil {
		return models.Earnings{}, err
	}

	orders, err := s.ListOrders(ctx, models.OrderFilter{DriverID: driverID, From: from, To: to})
	if err != nil {
		return models.Earnings{}, err
	}

	earnings := models.Earnings{
		DriverID: driverID,
		From:     from,
		To:       to,
		Orders:   len(orders),
	}
	for _, order := range orders {
		earnings.Total += order.Cost
	}
	earnings.Share = earnings.Total * s.driverMul

	return earnings, nil
}

// hashInto replaces *plain with its digest in *digest. An empty password
// leaves both empty so that validation reports it.
func (s *dispatchService) hashInto(digest, plain *string) error {
	if *plain == "" {
		return nil
	}

	hashed, err := s.hasher.Hash(*plain)
	if err != nil {
		return fmt.Errorf("error hashing password: %w", err)
	}

	*digest = hashed
	*plain = ""
	return nil
}

// notFound converts a missing record into the matching validation error and
// wraps every other failure with msg.
func notFound(err error, missing *validators.ValidationError, msg string) error {
	if errors.Is(err, store.ErrRecordNotFound) {
		return missing
	}
	return fmt.Errorf("%s: %w", msg, err)
}

// checkPeriod validates the bounds that are set and their order when both
// are present.
func checkPeriod(from, to string) error {
	switch {
	case from != "" && to != "":
		ok, err := validators.ValidPeriod(from, to)
		if err != nil {
			return err
		}
		if !ok {
			return ErrInvalidPeriod
		}
	case from != "" && !validators.ValidDate(from),
		to != "" && !validators.ValidDate(to):
		return validators.ErrInvalidPeriodFormat
	}
	return nil
}

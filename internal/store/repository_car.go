package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/fleet-dispatch/internal/logger"
	"github.com/MKhiriev/fleet-dispatch/models"
)

type carRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewCarRepository constructs a [CarRepository] backed by db.
func NewCarRepository(db *DB, logger *logger.Logger) CarRepository {
	logger.Debug().Msg("creating car repository")
	return &carRepository{
		db:     db,
		logger: logger,
	}
}

// CreateCar inserts car and returns it with the generated id. An owner that
// disappeared after validation yields [ErrReferencedRecordMissing].
func (r *carRepository) CreateCar(ctx context.Context, car models.Car) (models.Car, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertCarQuery(r.db.builder, car)
	if err != nil {
		log.Err(err).Str("func", "*carRepository.CreateCar").Msg("error building insert query")
		return models.Car{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = r.db.queryRow(ctx, query, args, &car.ID); err != nil {
		log.Err(err).
			Str("func", "*carRepository.CreateCar").
			Int64("driver_id", car.DriverID).
			Msg("error inserting car")
		return models.Car{}, r.db.constraintError(err, ErrExecutingStatement)
	}

	return car, nil
}

func (r *carRepository) CarByID(ctx context.Context, id int64) (models.Car, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectCarQuery(r.db.builder, id)
	if err != nil {
		log.Err(err).Str("func", "*carRepository.CarByID").Msg("error building select query")
		return models.Car{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var car models.Car
	err = r.db.queryRow(ctx, query, args,
		&car.ID, &car.License, &car.Brand, &car.DriverID, &car.LoadCapacity, &car.MileageBuy,
	)
	switch {
	case errors.Is(err, ErrRecordNotFound):
		return models.Car{}, ErrRecordNotFound
	case err != nil:
		log.Err(err).Str("func", "*carRepository.CarByID").Int64("car_id", id).Msg("error selecting car")
		return models.Car{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return car, nil
}

func (r *carRepository) UpdateCar(ctx context.Context, car models.Car) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateCarQuery(r.db.builder, car)
	if err != nil {
		log.Err(err).Str("func", "*carRepository.UpdateCar").Msg("error building update query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = r.db.execOne(ctx, query, args)
	switch {
	case errors.Is(err, ErrRecordNotFound):
		return ErrRecordNotFound
	case err != nil:
		log.Err(err).Str("func", "*carRepository.UpdateCar").Int64("car_id", car.ID).Msg("error updating car")
		return r.db.constraintError(err, ErrExecutingStatement)
	}

	return nil
}

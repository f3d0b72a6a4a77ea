package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/fleet-dispatch/internal/logger"
	"github.com/MKhiriev/fleet-dispatch/models"
)

type driverRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewDriverRepository constructs a [DriverRepository] backed by db.
func NewDriverRepository(db *DB, logger *logger.Logger) DriverRepository {
	logger.Debug().Msg("creating driver repository")
	return &driverRepository{
		db:     db,
		logger: logger,
	}
}

// CreateDriver inserts the users row (role "driver") and the drivers row
// sharing its id in a single transaction. driver.PassHash must already be
// set; driver.Password is ignored.
func (r *driverRepository) CreateDriver(ctx context.Context, driver models.Driver) (models.Driver, error) {
	log := logger.FromContext(ctx)

	user := models.User{Login: driver.Login, PassHash: driver.PassHash, Role: models.RoleDriver}

	err := r.db.inTx(ctx, func(tx *sql.Tx) error {
		id, err := r.db.insertUser(ctx, tx, user)
		if err != nil {
			return err
		}
		driver.ID = id

		query, args, err := buildInsertDriverQuery(r.db.builder, driver)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			return r.db.constraintError(err, ErrExecutingStatement)
		}
		return nil
	})
	if err != nil {
		log.Err(err).
			Str("func", "*driverRepository.CreateDriver").
			Str("login", driver.Login).
			Msg("error creating driver")
		return models.Driver{}, err
	}

	driver.Password = ""
	return driver, nil
}

// DriverByID returns the driver joined with its credentials.
func (r *driverRepository) DriverByID(ctx context.Context, id int64) (models.Driver, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectDriverQuery(r.db.builder, id)
	if err != nil {
		log.Err(err).Str("func", "*driverRepository.DriverByID").Msg("error building select query")
		return models.Driver{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var (
		driver     models.Driver
		categories string
	)
	err = r.db.queryRow(ctx, query, args,
		&driver.ID, &driver.Login, &driver.PassHash, &driver.Name, &driver.Surname,
		&driver.Experience, &driver.Address, &driver.City, &driver.Birthday, &categories,
	)
	switch {
	case errors.Is(err, ErrRecordNotFound):
		return models.Driver{}, ErrRecordNotFound
	case err != nil:
		log.Err(err).Str("func", "*driverRepository.DriverByID").Int64("driver_id", id).Msg("error selecting driver")
		return models.Driver{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	driver.Categories = models.ParseCategories(categories)
	return driver, nil
}

// UpdateDriverProfile stores the profile fields of driver.ID.
func (r *driverRepository) UpdateDriverProfile(ctx context.Context, driver models.Driver) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateDriverProfileQuery(r.db.builder, driver)
	if err != nil {
		log.Err(err).Str("func", "*driverRepository.UpdateDriverProfile").Msg("error building update query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = r.db.execOne(ctx, query, args)
	switch {
	case errors.Is(err, ErrRecordNotFound):
		return ErrRecordNotFound
	case err != nil:
		log.Err(err).Str("func", "*driverRepository.UpdateDriverProfile").Int64("driver_id", driver.ID).Msg("error updating driver")
		return r.db.constraintError(err, ErrExecutingStatement)
	}

	return nil
}

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/fleet-dispatch/internal/logger"
	"github.com/MKhiriev/fleet-dispatch/models"
)

type dispatcherRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewDispatcherRepository(db *DB, logger *logger.Logger) DispatcherRepository {
	logger.Debug().Msg("creating dispatcher repository")
	return &dispatcherRepository{
		db:     db,
		logger: logger,
	}
}

// CreateDispatcher mirrors [driverRepository.CreateDriver] with role
// "dispatcher".
func (r *dispatcherRepository) CreateDispatcher(ctx context.Context, dispatcher models.Dispatcher) (models.Dispatcher, error) {
	log := logger.FromContext(ctx)

	user := models.User{Login: dispatcher.Login, PassHash: dispatcher.PassHash, Role: models.RoleDispatcher}

	err := r.db.inTx(ctx, func(tx *sql.Tx) error {
		id, err := r.db.insertUser(ctx, tx, user)
		if err != nil {
			return err
		}
		dispatcher.ID = id

		query, args, err := buildInsertDispatcherQuery(r.db.builder, dispatcher)
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
			Str("func", "*dispatcherRepository.CreateDispatcher").
			Str("login", dispatcher.Login).
			Msg("error creating dispatcher")
		return models.Dispatcher{}, err
	}

	dispatcher.Password = ""
	return dispatcher, nil
}

func (r *dispatcherRepository) DispatcherByID(ctx context.Context, id int64) (models.Dispatcher, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectDispatcherQuery(r.db.builder, id)
	if err != nil {
		log.Err(err).Str("func", "*dispatcherRepository.DispatcherByID").Msg("error building select query")
		return models.Dispatcher{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var dispatcher models.Dispatcher
	err = r.db.queryRow(ctx, query, args,
		&dispatcher.ID, &dispatcher.Login, &dispatcher.PassHash, &dispatcher.Name,
		&dispatcher.Surname, &dispatcher.Address, &dispatcher.City,
	)
	switch {
	case errors.Is(err, ErrRecordNotFound):
		return models.Dispatcher{}, ErrRecordNotFound
	case err != nil:
		log.Err(err).Str("func", "*dispatcherRepository.DispatcherByID").Int64("dispatcher_id", id).Msg("error selecting dispatcher")
		return models.Dispatcher{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return dispatcher, nil
}

func (r *dispatcherRepository) UpdateDispatcherProfile(ctx context.Context, dispatcher models.Dispatcher) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateDispatcherProfileQuery(r.db.builder, dispatcher)
	if err != nil {
		log.Err(err).Str("func", "*dispatcherRepository.UpdateDispatcherProfile").Msg("error building update query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = r.db.execOne(ctx, query, args)
	switch {
	case errors.Is(err, ErrRecordNotFound):
		return ErrRecordNotFound
	case err != nil:
		log.Err(err).Str("func", "*dispatcherRepository.UpdateDispatcherProfile").Int64("dispatcher_id", dispatcher.ID).Msg("error updating dispatcher")
		return r.db.constraintError(err, ErrExecutingStatement)
	}

	return nil
}

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/fleet-dispatch/internal/logger"
	"github.com/MKhiriev/fleet-dispatch/models"
)

// userRepository is the SQL implementation of [UserRepository]. It works on
// the "users" table only; profile tables are handled by the driver and
// dispatcher repositories.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by db.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// UserByID returns the user with the given id or [ErrRecordNotFound].
func (r *userRepository) UserByID(ctx context.Context, id int64) (models.User, error) {
	return r.findUser(ctx, "*userRepository.UserByID", sq.Eq{"id": id})
}

// UserByLogin returns the user holding login or [ErrRecordNotFound].
func (r *userRepository) UserByLogin(ctx context.Context, login string) (models.User, error) {
	return r.findUser(ctx, "*userRepository.UserByLogin", sq.Eq{"login": login})
}

func (r *userRepository) findUser(ctx context.Context, funcName string, where sq.Eq) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectUserQuery(r.db.builder, where)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error building select query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var user models.User
	err = r.db.queryRow(ctx, query, args, &user.ID, &user.Login, &user.PassHash, &user.Role)
	switch {
	case errors.Is(err, ErrRecordNotFound):
		return models.User{}, ErrRecordNotFound
	case err != nil:
		log.Err(err).Str("func", funcName).Msg("error selecting user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return user, nil
}

// UpdateUserCredentials rewrites login and password hash of user.ID.
//
// Error handling:
//   - no row with user.ID → [ErrRecordNotFound].
//   - login taken by another user → [ErrLoginAlreadyExists].
func (r *userRepository) UpdateUserCredentials(ctx context.Context, user models.User) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateUserCredentialsQuery(r.db.builder, user)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateUserCredentials").Msg("error building update query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = r.db.execOne(ctx, query, args)
	switch {
	case errors.Is(err, ErrRecordNotFound):
		return ErrRecordNotFound
	case err != nil:
		log.Err(err).
			Str("func", "*userRepository.UpdateUserCredentials").
			Int64("user_id", user.ID).
			Msg("error updating credentials")
		return r.db.constraintError(err, ErrExecutingStatement)
	}

	return nil
}

// insertUser adds the users row for a new driver or dispatcher within tx and
// returns its id.
func (db *DB) insertUser(ctx context.Context, tx *sql.Tx, user models.User) (int64, error) {
	query, args, err := buildInsertUserQuery(db.builder, user)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var id int64
	if err = tx.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
		return 0, db.constraintError(err, ErrExecutingStatement)
	}
	return id, nil
}

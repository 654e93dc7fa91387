// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/MKhiriev/go-user-directory/internal/logger"
	"github.com/MKhiriev/go-user-directory/models"
)

// userRepository is the SQL implementation of [UserRepository].
// It handles the identity record of users in the "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger     *logger.Logger
	db         *DB
	attributes *attributeRepository
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	return newUserRepository(db, logger)
}

func newUserRepository(db *DB, logger *logger.Logger) *userRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:         db,
		logger:     logger,
		attributes: newAttributeRepository(db, logger),
	}
}

// CreateUser inserts the user row and its initial fields in one
// transaction. Timestamps are assigned here and returned on the user.
//
// Error handling:
//   - duplicate id or username → [ErrConflict], the message names which one;
//   - empty attribute name → [ErrInvalidArgument];
//   - any other driver-level error → [ErrTransientStore].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	now := r.db.now()
	user.CreatedAt, user.UpdatedAt = now, now
	fields := user.Fields.Normalized()

	err := r.db.withTx(ctx, "*userRepository.CreateUser", func(ctx context.Context, tx DBTX) error {
		_, err := tx.ExecContext(ctx, r.db.rebind(createUser),
			user.ID, user.Username, user.PasswordHash, user.Active, user.CreatedAt, user.UpdatedAt)
		if err != nil {
			log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error inserting user")
			return r.conflictError(err, user)
		}

		rows, err := r.attributes.catalog.resolveFields(ctx, tx, fields)
		if err != nil {
			return err
		}
		return r.attributes.insertRows(ctx, tx, user.ID, rows)
	})
	if err != nil {
		return models.User{}, err
	}

	user.Fields = fields
	return user, nil
}

// conflictError tells apart the two unique constraints of users.
func (r *userRepository) conflictError(err error, user models.User) error {
	storeErr := r.db.storeError(err)
	if !errors.Is(storeErr, ErrConflict) {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, storeErr)
	}
	if isUsernameViolation(err) {
		return fmt.Errorf("%w: username %q is already taken", ErrConflict, user.Username)
	}
	return fmt.Errorf("%w: user id %q already exists", ErrConflict, user.ID)
}

// usersUsernameConstraint is the PostgreSQL name of the UNIQUE constraint
// on users.username.
const usersUsernameConstraint = "users_username_key"

// isUsernameViolation reports whether a unique violation was raised by the
// username constraint. PostgreSQL names the constraint; SQLite only names
// the column in its message ("UNIQUE constraint failed: users.username").
func isUsernameViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.ConstraintName == usersUsernameConstraint
	}
	return strings.Contains(err.Error(), "users.username")
}

// FindUserByID loads the user; inactive users are [ErrNotFound] unless
// includeInactive is set.
func (r *userRepository) FindUserByID(ctx context.Context, id string, includeInactive bool) (models.User, error) {
	return r.findUser(ctx, "*userRepository.FindUserByID", findUserByID, id, includeInactive)
}

// FindUserByUsername loads the user; inactive users are [ErrNotFound]
// unless includeInactive is set.
func (r *userRepository) FindUserByUsername(ctx context.Context, username string, includeInactive bool) (models.User, error) {
	return r.findUser(ctx, "*userRepository.FindUserByUsername", findUserByUsername, username, includeInactive)
}

func (r *userRepository) findUser(ctx context.Context, op, query, key string, includeInactive bool) (models.User, error) {
	log := logger.FromContext(ctx)

	args := []any{key}
	if !includeInactive {
		query += activeOnlyClause
		args = append(args, true)
	}

	var user models.User
	err := r.db.QueryRowContext(ctx, r.db.rebind(query), args...).
		Scan(&user.ID, &user.Username, &user.PasswordHash, &user.Active, &user.CreatedAt, &user.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, fmt.Errorf("%w: user %q", ErrNotFound, key)
	}
	if err != nil {
		log.Err(err).Str("func", op).Msg("error loading user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, r.db.storeError(err))
	}

	user.CreatedAt = user.CreatedAt.UTC()
	user.UpdatedAt = user.UpdatedAt.UTC()
	return user, nil
}

// SetUsername renames the user. A username owned by another user is
// [ErrConflict].
func (r *userRepository) SetUsername(ctx context.Context, id, username string) error {
	err := r.update(ctx, "*userRepository.SetUsername", updateUsername, id, username)
	if errors.Is(err, ErrConflict) {
		return fmt.Errorf("%w: username %q is already taken", ErrConflict, username)
	}
	return err
}

// SetPasswordHash replaces the stored hash. An empty hash disables login.
func (r *userRepository) SetPasswordHash(ctx context.Context, id, hash string) error {
	return r.update(ctx, "*userRepository.SetPasswordHash", updatePasswordHash, id, hash)
}

// SetActive toggles the active flag.
func (r *userRepository) SetActive(ctx context.Context, id string, active bool) error {
	return r.update(ctx, "*userRepository.SetActive", updateActive, id, active)
}

func (r *userRepository) update(ctx context.Context, op, query, id string, value any) error {
	log := logger.FromContext(ctx)

	res, err := r.db.ExecContext(ctx, r.db.rebind(query), value, r.db.now(), id)
	if err != nil {
		log.Err(err).Str("func", op).Msg("error updating user")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, r.db.storeError(err))
	}

	found, err := affectedOne(res)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, r.db.storeError(err))
	}
	if !found {
		return fmt.Errorf("%w: user %q", ErrNotFound, id)
	}
	return nil
}

// RemoveUser deletes the attribute values of the user and then the user,
// in one transaction.
func (r *userRepository) RemoveUser(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	return r.db.withTx(ctx, "*userRepository.RemoveUser", func(ctx context.Context, tx DBTX) error {
		if _, err := tx.ExecContext(ctx, r.db.rebind(deleteUserAttributes), id); err != nil {
			log.Err(err).Str("func", "*userRepository.RemoveUser").Msg("error deleting attributes")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, r.db.storeError(err))
		}

		res, err := tx.ExecContext(ctx, r.db.rebind(deleteUser), id)
		if err != nil {
			log.Err(err).Str("func", "*userRepository.RemoveUser").Msg("error deleting user")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, r.db.storeError(err))
		}

		found, err := affectedOne(res)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, r.db.storeError(err))
		}
		if !found {
			return fmt.Errorf("%w: user %q", ErrNotFound, id)
		}
		return nil
	})
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorClassification is the result type returned by [ErrorClassificator.Classify].
// It tells the repositories which taxonomy kind a driver error belongs to.
type ErrorClassification int

const (
	// Failure is the default classification: the store or the connection
	// failed and the caller may retry the whole operation.
	Failure ErrorClassification = iota

	// UniqueViolation marks a duplicate username or primary identifier.
	UniqueViolation

	// ForeignKeyViolation marks a reference to a user or attribute type
	// that does not exist.
	ForeignKeyViolation

	// InvalidData marks values the engine refused to store or compare.
	InvalidData
)

// ErrorClassificator maps a driver error to an [ErrorClassification].
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// PostgresErrorClassifier implements [ErrorClassificator] for PostgreSQL.
// It inspects the pgconn error code returned by the pgx driver.
type PostgresErrorClassifier struct{}

// NewPostgresErrorClassifier constructs a [PostgresErrorClassifier] ready for use.
func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify implements [ErrorClassificator]. Errors that are not
// *pgconn.PgError are classified as [Failure].
func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	if err == nil {
		return Failure
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return ClassifyPgError(pgErr)
	}

	return Failure
}

// ClassifyPgError maps a *pgconn.PgError to an [ErrorClassification] based on
// the PostgreSQL error code.
// See https://www.postgresql.org/docs/current/errcodes-appendix.html for the
// full list of PostgreSQL error codes.
func ClassifyPgError(pgErr *pgconn.PgError) ErrorClassification {
	switch pgErr.Code {
	// Class 23 (integrity constraint violations)
	case pgerrcode.UniqueViolation:
		return UniqueViolation
	case pgerrcode.ForeignKeyViolation:
		return ForeignKeyViolation

	// Class 22 (data exceptions)
	case pgerrcode.DataException,
		pgerrcode.InvalidDatetimeFormat,
		pgerrcode.InvalidTextRepresentation,
		pgerrcode.StringDataRightTruncationDataException:
		return InvalidData
	}

	return Failure
}

// storeError wraps a driver error with the taxonomy kind it belongs to.
// Errors that already carry a kind are returned unchanged.
func (db *DB) storeError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrInvalidArgument) || errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrConflict) || errors.Is(err, ErrTransientStore) {
		return err
	}

	switch db.errorClassificator.Classify(err) {
	case UniqueViolation:
		return fmt.Errorf("%w: %w", ErrConflict, err)
	case ForeignKeyViolation:
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	case InvalidData:
		return fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}
	return fmt.Errorf("%w: %w", ErrTransientStore, err)
}

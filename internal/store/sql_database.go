// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/MKhiriev/go-user-directory/internal/config"
	"github.com/MKhiriev/go-user-directory/internal/logger"
	"github.com/MKhiriev/go-user-directory/migrations"
)

// DB is a connection pool bound to a dialect and to the error classifier of
// its driver.
type DB struct {
	*sql.DB
	dialect            Dialect
	errorClassificator ErrorClassificator
	logger             *logger.Logger
	clock              func() time.Time
}

// NewConnect opens the database selected by cfg.Driver.
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		return NewConnectPostgres(ctx, cfg, log)
	case config.DriverSQLite:
		return NewConnectSQLite(ctx, cfg, log)
	}

	log.Error().Str("func", "NewConnect").Str("driver", cfg.Driver).Msg("unsupported database driver")
	return nil, fmt.Errorf("%w: unsupported database driver %q", ErrInvalidArgument, cfg.Driver)
}

// newDB wraps an open pool.
func newDB(conn *sql.DB, dialect Dialect, classifier ErrorClassificator, log *logger.Logger) *DB {
	return &DB{
		DB:                 conn,
		dialect:            dialect,
		errorClassificator: classifier,
		logger:             log,
		clock:              utcNow,
	}
}

// Migrate applies the embedded schema for the connection's dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect.Name)
}

// Dialect returns the dialect the connection was opened with.
func (db *DB) Dialect() Dialect {
	return db.dialect
}

func (db *DB) rebind(query string) string {
	return db.dialect.rebind(query)
}

func (db *DB) now() time.Time {
	return db.clock()
}

// utcNow truncates to microseconds, the precision PostgreSQL stores.
func utcNow() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

func configurePool(conn *sql.DB, cfg config.DB) {
	if cfg.MaxOpenConns > 0 {
		conn.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		conn.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		conn.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}
}

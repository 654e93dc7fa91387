// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
)

// Dialect captures the few places where the supported engines disagree:
// bind-parameter syntax and case-insensitive pattern matching. The schema
// and every other statement are shared.
type Dialect struct {
	// Name is the dialect name understood by the migration runner.
	Name string

	// DriverName is the database/sql driver registered for the dialect.
	DriverName string

	placeholder  sq.PlaceholderFormat
	likeOperator string
}

var (
	// PostgresDialect targets PostgreSQL through the pgx stdlib driver.
	PostgresDialect = Dialect{
		Name:         "postgres",
		DriverName:   "pgx",
		placeholder:  sq.Dollar,
		likeOperator: "ILIKE",
	}

	// SQLiteDialect targets SQLite through mattn/go-sqlite3. LIKE is
	// case-insensitive for ASCII in SQLite.
	SQLiteDialect = Dialect{
		Name:         "sqlite3",
		DriverName:   "sqlite3",
		placeholder:  sq.Question,
		likeOperator: "LIKE",
	}
)

// DialectByName returns the dialect registered under name.
func DialectByName(name string) (Dialect, error) {
	switch name {
	case PostgresDialect.Name:
		return PostgresDialect, nil
	case SQLiteDialect.Name:
		return SQLiteDialect, nil
	}
	return Dialect{}, fmt.Errorf("%w: unsupported dialect %q", ErrInvalidArgument, name)
}

// builder returns a squirrel statement builder emitting the dialect's
// placeholders.
func (d Dialect) builder() sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(d.placeholder)
}

// rebind converts a statement written with '?' placeholders to the
// dialect's syntax.
func (d Dialect) rebind(query string) string {
	rebound, err := d.placeholder.ReplacePlaceholders(query)
	if err != nil {
		return query
	}
	return rebound
}

// quoteIdentifier quotes a (possibly qualified) identifier. Both engines
// accept ANSI double-quoted identifiers.
func quoteIdentifier(parts ...string) string {
	return pgx.Identifier(parts).Sanitize()
}

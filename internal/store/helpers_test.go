// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"database/sql"
	"fmt"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-user-directory/internal/logger"
)

var fixedNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

var whitespace = regexp.MustCompile(`\s+`)

// collapsedRegexpMatcher matches the expectation against the statement with
// its whitespace collapsed, so expectations can be written on one line.
var collapsedRegexpMatcher = sqlmock.QueryMatcherFunc(func(expectedSQL, actualSQL string) error {
	actual := whitespace.ReplaceAllString(strings.TrimSpace(actualSQL), " ")
	re, err := regexp.Compile(expectedSQL)
	if err != nil {
		return err
	}
	if !re.MatchString(actual) {
		return fmt.Errorf("could not match actual sql %q with expected regexp %q", actual, expectedSQL)
	}
	return nil
})

func newMockDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(collapsedRegexpMatcher))
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	return newDBFromSQL(conn, PostgresDialect), mock
}

func newDBFromSQL(conn *sql.DB, dialect Dialect) *DB {
	var classifier ErrorClassificator = NewPostgresErrorClassifier()
	if dialect.Name == SQLiteDialect.Name {
		classifier = NewSQLiteErrorClassifier()
	}
	db := newDB(conn, dialect, classifier, logger.Nop())
	db.clock = func() time.Time { return fixedNow }
	return db
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func pgConstraintError(code, constraint string) error {
	return &pgconn.PgError{
		Code:           code,
		ConstraintName: constraint,
		Message:        "duplicate key value violates unique constraint \"" + constraint + "\"",
	}
}

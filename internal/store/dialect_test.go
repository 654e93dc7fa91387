// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDialect_Rebind(t *testing.T) {
	query := "SELECT id FROM users WHERE username = ? AND active = ?"

	assert.Equal(t, "SELECT id FROM users WHERE username = $1 AND active = $2", PostgresDialect.rebind(query))
	assert.Equal(t, query, SQLiteDialect.rebind(query))
}

func TestDialectByName(t *testing.T) {
	d, err := DialectByName("postgres")
	require.NoError(t, err)
	assert.Equal(t, "pgx", d.DriverName)

	d, err = DialectByName("sqlite3")
	require.NoError(t, err)
	assert.Equal(t, "LIKE", d.likeOperator)

	_, err = DialectByName("mysql")
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestQuoteIdentifier(t *testing.T) {
	assert.Equal(t, `"u"."created_at"`, quoteIdentifier("u", "created_at"))
	assert.Equal(t, `"we""ird"`, quoteIdentifier(`we"ird`))
}

func TestWithForeignKeys(t *testing.T) {
	assert.Equal(t, ":memory:?_foreign_keys=on", withForeignKeys(":memory:"))
	assert.Equal(t, "file:dir.db?cache=shared&_foreign_keys=on", withForeignKeys("file:dir.db?cache=shared"))
	assert.Equal(t, "dir.db?_fk=1", withForeignKeys("dir.db?_fk=1"))
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-user-directory/internal/logger"
)

func newTestCatalog(t *testing.T) (*attributeCatalog, sqlmock.Sqlmock) {
	db, mock := newMockDB(t)
	catalog := newAttributeCatalog(db, logger.Nop())
	catalog.newID = func() string { return "new-type-id" }
	return catalog, mock
}

func TestResolve_Existing(t *testing.T) {
	catalog, mock := newTestCatalog(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name FROM attribute_types WHERE name = $1")).
		WithArgs("email").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow("type-email", "email"))

	attributeType, err := catalog.Resolve(context.Background(), "  email ")
	require.NoError(t, err)
	assert.Equal(t, "type-email", attributeType.ID)
	assert.Equal(t, "email", attributeType.Name)
	require.NoError(t, mock.ExpectationsWereMet())
}

// TestResolve_InsertsThenRereads covers first use: the insert ignores a
// duplicate and the identifier is always read back from the table.
func TestResolve_InsertsThenRereads(t *testing.T) {
	catalog, mock := newTestCatalog(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM attribute_types")).
		WithArgs("email").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}))
	mock.ExpectExec(regexp.QuoteMeta("ON CONFLICT (name) DO NOTHING")).
		WithArgs("new-type-id", "email").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(regexp.QuoteMeta("FROM attribute_types")).
		WithArgs("email").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow("winner-id", "email"))

	attributeType, err := catalog.Resolve(context.Background(), "email")
	require.NoError(t, err)
	assert.Equal(t, "winner-id", attributeType.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestResolve_EmptyName(t *testing.T) {
	catalog, mock := newTestCatalog(t)

	_, err := catalog.Resolve(context.Background(), "   ")
	require.ErrorIs(t, err, ErrInvalidArgument)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestResolve_InsertFailure(t *testing.T) {
	catalog, mock := newTestCatalog(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM attribute_types")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO attribute_types")).
		WillReturnError(pgError(pgerrcode.AdminShutdown))

	_, err := catalog.Resolve(context.Background(), "email")
	require.ErrorIs(t, err, ErrTransientStore)
	assert.ErrorIs(t, err, ErrExecutingStatement)
}

func TestResolveAll_DeduplicatesNames(t *testing.T) {
	catalog, mock := newTestCatalog(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM attribute_types")).
		WithArgs("a").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow("id-a", "a"))
	mock.ExpectQuery(regexp.QuoteMeta("FROM attribute_types")).
		WithArgs("b").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow("id-b", "b"))

	types, err := catalog.ResolveAll(context.Background(), []string{"b", " a", "a "})
	require.NoError(t, err)
	assert.Len(t, types, 2)
	assert.Equal(t, "id-a", types["a"].ID)
	assert.Equal(t, "id-b", types["b"].ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestNameOf(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		catalog, mock := newTestCatalog(t)

		mock.ExpectQuery(regexp.QuoteMeta("WHERE id = $1")).
			WithArgs("type-email").
			WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow("type-email", "email"))

		attributeType, err := catalog.NameOf(context.Background(), "type-email")
		require.NoError(t, err)
		assert.Equal(t, "email", attributeType.Name)
	})

	t.Run("not found", func(t *testing.T) {
		catalog, mock := newTestCatalog(t)

		mock.ExpectQuery(regexp.QuoteMeta("WHERE id = $1")).
			WillReturnRows(sqlmock.NewRows([]string{"id", "name"}))

		_, err := catalog.NameOf(context.Background(), "missing")
		require.ErrorIs(t, err, ErrNotFound)
	})
}

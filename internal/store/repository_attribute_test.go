// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-user-directory/internal/logger"
	"github.com/MKhiriev/go-user-directory/models"
)

func newTestAttributeRepo(t *testing.T) (*attributeRepository, sqlmock.Sqlmock) {
	db, mock := newMockDB(t)
	return newAttributeRepository(db, logger.Nop()), mock
}

func expectTouch(mock sqlmock.Sqlmock, affected int64) {
	mock.ExpectExec(regexp.QuoteMeta("UPDATE users SET updated_at = $1 WHERE id = $2")).
		WithArgs(fixedNow, testUserID).
		WillReturnResult(sqlmock.NewResult(0, affected))
}

func expectKnownType(mock sqlmock.Sqlmock, name, id string) {
	mock.ExpectQuery(regexp.QuoteMeta("FROM attribute_types")).
		WithArgs(name).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(id, name))
}

func TestAddValues_EmptyValuesStoreEmptyString(t *testing.T) {
	repo, mock := newTestAttributeRepo(t)

	mock.ExpectBegin()
	expectTouch(mock, 1)
	expectKnownType(mock, "nickname", "type-nick")
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO attribute_values")).
		WithArgs(testUserID, "type-nick", "").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.AddValues(context.Background(), testUserID, "nickname", nil))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestReplaceAll(t *testing.T) {
	t.Run("replaces every row", func(t *testing.T) {
		repo, mock := newTestAttributeRepo(t)

		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM attribute_values WHERE user_id = $1")).
			WithArgs(testUserID).
			WillReturnResult(sqlmock.NewResult(0, 4))
		expectTouch(mock, 1)
		expectKnownType(mock, "a", "id-a")
		expectKnownType(mock, "b", "id-b")
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO attribute_values (user_id,attribute_type_id,value) VALUES ($1,$2,$3),($4,$5,$6),($7,$8,$9)")).
			WithArgs(testUserID, "id-a", "1", testUserID, "id-a", "2", testUserID, "id-b", "x").
			WillReturnResult(sqlmock.NewResult(0, 3))
		mock.ExpectCommit()

		err := repo.ReplaceAll(context.Background(), testUserID, models.Fields{"b": {"x"}, "a": {"1", "2"}})
		require.NoError(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("nil fields clears the user", func(t *testing.T) {
		repo, mock := newTestAttributeRepo(t)

		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM attribute_values")).
			WillReturnResult(sqlmock.NewResult(0, 2))
		expectTouch(mock, 1)
		mock.ExpectCommit()

		require.NoError(t, repo.ReplaceAll(context.Background(), testUserID, nil))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown user rolls back", func(t *testing.T) {
		repo, mock := newTestAttributeRepo(t)

		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM attribute_values")).
			WillReturnResult(sqlmock.NewResult(0, 0))
		expectTouch(mock, 0)
		mock.ExpectRollback()

		err := repo.ReplaceAll(context.Background(), testUserID, models.Fields{"a": {"1"}})
		require.ErrorIs(t, err, ErrNotFound)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("insert failure rolls back", func(t *testing.T) {
		repo, mock := newTestAttributeRepo(t)

		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM attribute_values")).
			WillReturnResult(sqlmock.NewResult(0, 1))
		expectTouch(mock, 1)
		expectKnownType(mock, "a", "id-a")
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO attribute_values")).
			WillReturnError(errors.New("disk full"))
		mock.ExpectRollback()

		err := repo.ReplaceAll(context.Background(), testUserID, models.Fields{"a": {"1"}})
		require.ErrorIs(t, err, ErrTransientStore)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("begin failure", func(t *testing.T) {
		repo, mock := newTestAttributeRepo(t)

		mock.ExpectBegin().WillReturnError(errors.New("too many connections"))

		err := repo.ReplaceAll(context.Background(), testUserID, nil)
		require.ErrorIs(t, err, ErrBeginningTransaction)
		assert.ErrorIs(t, err, ErrTransientStore)
	})
}

func TestRemoveAttribute_NothingToRemove(t *testing.T) {
	repo, mock := newTestAttributeRepo(t)

	for range 2 {
		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM attribute_values WHERE user_id = $1 AND attribute_type_id IN")).
			WithArgs(testUserID, "nonexistent").
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectCommit()
	}

	require.NoError(t, repo.RemoveAttribute(context.Background(), testUserID, "nonexistent"))
	require.NoError(t, repo.RemoveAttribute(context.Background(), testUserID, "nonexistent"))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRemoveAttribute_TouchesUser(t *testing.T) {
	repo, mock := newTestAttributeRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM attribute_values")).
		WithArgs(testUserID, "email").
		WillReturnResult(sqlmock.NewResult(0, 2))
	expectTouch(mock, 1)
	mock.ExpectCommit()

	require.NoError(t, repo.RemoveAttribute(context.Background(), testUserID, "email"))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetValues(t *testing.T) {
	t.Run("insertion order", func(t *testing.T) {
		repo, mock := newTestAttributeRepo(t)

		mock.ExpectQuery(regexp.QuoteMeta("ORDER BY av.id")).
			WithArgs(testUserID, "f").
			WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow("a").AddRow("b"))

		values, err := repo.GetValues(context.Background(), testUserID, "f")
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b"}, values)
	})

	t.Run("empty, not nil", func(t *testing.T) {
		repo, mock := newTestAttributeRepo(t)

		mock.ExpectQuery(regexp.QuoteMeta("ORDER BY av.id")).
			WillReturnRows(sqlmock.NewRows([]string{"value"}))

		values, err := repo.GetValues(context.Background(), testUserID, "f")
		require.NoError(t, err)
		assert.NotNil(t, values)
		assert.Empty(t, values)
	})
}

func TestDistinctValues(t *testing.T) {
	repo, mock := newTestAttributeRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT DISTINCT av.value")).
		WithArgs("role").
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow("admin").AddRow("customer"))

	values, err := repo.DistinctValues(context.Background(), "role")
	require.NoError(t, err)
	assert.Equal(t, []string{"admin", "customer"}, values)
}

func TestGetFields_SingleQuery(t *testing.T) {
	repo, mock := newTestAttributeRepo(t)
	other := "0195a1b2-c3d4-7e5f-8a9b-000000000002"

	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT av.user_id, t.name, av.value FROM attribute_values av JOIN attribute_types t ON t.id = av.attribute_type_id WHERE av.user_id IN ($1,$2) AND t.name IN ($3,$4) ORDER BY av.user_id, av.id")).
		WithArgs(testUserID, other, "email", "role").
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "name", "value"}).
			AddRow(testUserID, "role", "admin").
			AddRow(testUserID, "role", "customer").
			AddRow(testUserID, "email", "a@example.com"))

	fields, err := repo.GetFields(context.Background(), []string{testUserID, other}, []string{"role", "email"})
	require.NoError(t, err)

	assert.Equal(t, []string{"admin", "customer"}, fields[testUserID].Values("role"))
	assert.Equal(t, "a@example.com", fields[testUserID].Get("email"))
	require.Contains(t, fields, other)
	assert.Empty(t, fields[other])
}

func TestGetFields_NoUsers(t *testing.T) {
	repo, mock := newTestAttributeRepo(t)

	fields, err := repo.GetFields(context.Background(), nil, []string{"role"})
	require.NoError(t, err)
	assert.Empty(t, fields)
	require.NoError(t, mock.ExpectationsWereMet())
}

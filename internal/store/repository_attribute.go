// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-user-directory/internal/logger"
	"github.com/MKhiriev/go-user-directory/models"
)

// attributeRepository is the SQL implementation of [AttributeRepository].
// Every write runs in a transaction that also bumps the owner's updated_at,
// which doubles as the existence check of the owner.
type attributeRepository struct {
	db      *DB
	catalog *attributeCatalog
	logger  *logger.Logger
}

// NewAttributeRepository constructs an [AttributeRepository] backed by db.
func NewAttributeRepository(db *DB, log *logger.Logger) AttributeRepository {
	return newAttributeRepository(db, log)
}

func newAttributeRepository(db *DB, log *logger.Logger) *attributeRepository {
	log.Debug().Msg("creating attribute repository")
	return &attributeRepository{
		db:      db,
		catalog: newAttributeCatalog(db, log),
		logger:  log,
	}
}

// AddValues appends values to the named attribute of the user. No values
// stores a single empty string.
func (r *attributeRepository) AddValues(ctx context.Context, userID, name string, values []string) error {
	return r.AddFields(ctx, userID, models.Fields{name: values})
}

// AddFields appends every attribute of fields to the user.
func (r *attributeRepository) AddFields(ctx context.Context, userID string, fields models.Fields) error {
	return r.db.withTx(ctx, "*attributeRepository.AddFields", func(ctx context.Context, tx DBTX) error {
		if err := r.touch(ctx, tx, userID); err != nil {
			return err
		}

		rows, err := r.catalog.resolveFields(ctx, tx, fields)
		if err != nil {
			return err
		}

		return r.insertRows(ctx, tx, userID, rows)
	})
}

// ReplaceAll implements [AttributeRepository]. On any failure the
// transaction is rolled back and the previous attributes stay in place.
func (r *attributeRepository) ReplaceAll(ctx context.Context, userID string, fields models.Fields) error {
	log := logger.FromContext(ctx)

	return r.db.withTx(ctx, "*attributeRepository.ReplaceAll", func(ctx context.Context, tx DBTX) error {
		if _, err := tx.ExecContext(ctx, r.db.rebind(deleteUserAttributes), userID); err != nil {
			log.Err(err).Str("func", "*attributeRepository.ReplaceAll").Msg("error deleting attributes")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, r.db.storeError(err))
		}

		if err := r.touch(ctx, tx, userID); err != nil {
			return err
		}

		rows, err := r.catalog.resolveFields(ctx, tx, fields)
		if err != nil {
			return err
		}

		return r.insertRows(ctx, tx, userID, rows)
	})
}

// RemoveAttribute deletes every value of the named attribute. Removing an
// attribute the user does not have succeeds.
func (r *attributeRepository) RemoveAttribute(ctx context.Context, userID, name string) error {
	log := logger.FromContext(ctx)

	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("%w: attribute name is empty", ErrInvalidArgument)
	}

	return r.db.withTx(ctx, "*attributeRepository.RemoveAttribute", func(ctx context.Context, tx DBTX) error {
		res, err := tx.ExecContext(ctx, r.db.rebind(deleteUserAttribute), userID, name)
		if err != nil {
			log.Err(err).Str("func", "*attributeRepository.RemoveAttribute").Msg("error deleting attribute")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, r.db.storeError(err))
		}

		removed, err := affectedOne(res)
		if err != nil || !removed {
			return nil
		}

		_, err = tx.ExecContext(ctx, r.db.rebind(touchUser), r.db.now(), userID)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, r.db.storeError(err))
		}
		return nil
	})
}

// GetValues returns the values of the named attribute in insertion order.
// The result is empty, not nil, when the user has no such attribute.
func (r *attributeRepository) GetValues(ctx context.Context, userID, name string) ([]string, error) {
	return r.queryStrings(ctx, "*attributeRepository.GetValues", selectAttributeValues, userID, strings.TrimSpace(name))
}

// DistinctValues returns every distinct value stored for the attribute
// across all users, in lexical order.
func (r *attributeRepository) DistinctValues(ctx context.Context, name string) ([]string, error) {
	return r.queryStrings(ctx, "*attributeRepository.DistinctValues", selectDistinctValues, strings.TrimSpace(name))
}

// GetFields implements [AttributeRepository]. Every requested user is a key
// of the result, with empty Fields when nothing matched.
func (r *attributeRepository) GetFields(ctx context.Context, userIDs []string, names []string) (map[string]models.Fields, error) {
	log := logger.FromContext(ctx)

	result := make(map[string]models.Fields, len(userIDs))
	if len(userIDs) == 0 {
		return result, nil
	}
	for _, id := range userIDs {
		result[id] = models.Fields{}
	}

	query, args, err := r.buildGetFieldsQuery(userIDs, names)
	if err != nil {
		log.Err(err).Str("func", "*attributeRepository.GetFields").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*attributeRepository.GetFields").Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, r.db.storeError(err))
	}
	defer rows.Close()

	for rows.Next() {
		var userID, name, value string
		if err = rows.Scan(&userID, &name, &value); err != nil {
			log.Err(err).Str("func", "*attributeRepository.GetFields").Msg("error scanning row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, r.db.storeError(err))
		}
		result[userID].Add(name, value)
	}
	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*attributeRepository.GetFields").Msg("error iterating rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, r.db.storeError(err))
	}

	return result, nil
}

func (r *attributeRepository) buildGetFieldsQuery(userIDs []string, names []string) (string, []any, error) {
	query := r.db.dialect.builder().
		Select("av.user_id", "t.name", "av.value").
		From("attribute_values av").
		Join("attribute_types t ON t.id = av.attribute_type_id").
		Where(sq.Eq{"av.user_id": userIDs}).
		OrderBy("av.user_id", "av.id")

	if len(names) > 0 {
		query = query.Where(sq.Eq{"t.name": uniqueNames(names)})
	}

	return query.ToSql()
}

// touch bumps updated_at of the user and fails with [ErrNotFound] when the
// user does not exist.
func (r *attributeRepository) touch(ctx context.Context, tx DBTX, userID string) error {
	res, err := tx.ExecContext(ctx, r.db.rebind(touchUser), r.db.now(), userID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*attributeRepository.touch").Msg("error updating user")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, r.db.storeError(err))
	}

	found, err := affectedOne(res)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, r.db.storeError(err))
	}
	if !found {
		return fmt.Errorf("%w: user %q", ErrNotFound, userID)
	}
	return nil
}

// insertRows writes rows with a single multi-row INSERT. Rows are inserted
// in slice order, which the sequence column of attribute_values records.
func (r *attributeRepository) insertRows(ctx context.Context, tx DBTX, userID string, rows []attributeRow) error {
	if len(rows) == 0 {
		return nil
	}

	insert := r.db.dialect.builder().
		Insert("attribute_values").
		Columns("user_id", "attribute_type_id", "value")
	for _, row := range rows {
		insert = insert.Values(userID, row.typeID, row.value)
	}

	query, args, err := insert.ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*attributeRepository.insertRows").Msg("error inserting attribute values")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, r.db.storeError(err))
	}
	return nil
}

func (r *attributeRepository) queryStrings(ctx context.Context, op, query string, args ...any) ([]string, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, r.db.rebind(query), args...)
	if err != nil {
		log.Err(err).Str("func", op).Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, r.db.storeError(err))
	}
	defer rows.Close()

	values := make([]string, 0)
	for rows.Next() {
		var value string
		if err = rows.Scan(&value); err != nil {
			log.Err(err).Str("func", op).Msg("error scanning row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, r.db.storeError(err))
		}
		values = append(values, value)
	}
	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", op).Msg("error iterating rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, r.db.storeError(err))
	}

	return values, nil
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/MKhiriev/go-user-directory/internal/logger"
	"github.com/MKhiriev/go-user-directory/models"
	"github.com/google/uuid"
)

// attributeCatalog is the SQL implementation of [AttributeCatalog].
//
// A name is resolved with "insert, ignore duplicate, re-read": the unique
// constraint on attribute_types.name decides the winner when two callers
// create the same name concurrently, and both read back the winning row.
type attributeCatalog struct {
	db     *DB
	logger *logger.Logger
	newID  func() string
}

// NewAttributeCatalog constructs an [AttributeCatalog] backed by db.
func NewAttributeCatalog(db *DB, log *logger.Logger) AttributeCatalog {
	return newAttributeCatalog(db, log)
}

func newAttributeCatalog(db *DB, log *logger.Logger) *attributeCatalog {
	log.Debug().Msg("creating attribute catalog")
	return &attributeCatalog{
		db:     db,
		logger: log,
		newID:  newAttributeTypeID,
	}
}

func newAttributeTypeID() string {
	return uuid.Must(uuid.NewV7()).String()
}

// Resolve implements [AttributeCatalog].
func (c *attributeCatalog) Resolve(ctx context.Context, name string) (models.AttributeType, error) {
	return c.resolve(ctx, c.db, name)
}

// ResolveAll implements [AttributeCatalog]. Names are resolved in lexical
// order; duplicates after trimming are resolved once.
func (c *attributeCatalog) ResolveAll(ctx context.Context, names []string) (map[string]models.AttributeType, error) {
	result := make(map[string]models.AttributeType, len(names))
	for _, name := range uniqueNames(names) {
		attributeType, err := c.resolve(ctx, c.db, name)
		if err != nil {
			return nil, err
		}
		result[attributeType.Name] = attributeType
	}
	return result, nil
}

// NameOf implements [AttributeCatalog].
func (c *attributeCatalog) NameOf(ctx context.Context, id string) (models.AttributeType, error) {
	log := logger.FromContext(ctx)

	var attributeType models.AttributeType
	err := c.db.QueryRowContext(ctx, c.db.rebind(findAttributeTypeByID), id).
		Scan(&attributeType.ID, &attributeType.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return models.AttributeType{}, fmt.Errorf("%w: attribute type %q", ErrNotFound, id)
	}
	if err != nil {
		log.Err(err).Str("func", "*attributeCatalog.NameOf").Msg("error looking up attribute type")
		return models.AttributeType{}, fmt.Errorf("%w: %w", ErrExecutingQuery, c.db.storeError(err))
	}

	return attributeType, nil
}

// resolve runs on q so that writers can resolve names inside their own
// transaction.
func (c *attributeCatalog) resolve(ctx context.Context, q DBTX, name string) (models.AttributeType, error) {
	log := logger.FromContext(ctx)

	name = strings.TrimSpace(name)
	if name == "" {
		return models.AttributeType{}, fmt.Errorf("%w: attribute name is empty", ErrInvalidArgument)
	}

	attributeType, err := c.lookup(ctx, q, name)
	if err == nil || !errors.Is(err, ErrNotFound) {
		return attributeType, err
	}

	if _, err = q.ExecContext(ctx, c.db.rebind(insertAttributeTypeIgnoreConflict), c.newID(), name); err != nil {
		log.Err(err).Str("func", "*attributeCatalog.resolve").Str("name", name).Msg("error inserting attribute type")
		return models.AttributeType{}, fmt.Errorf("%w: %w", ErrExecutingStatement, c.db.storeError(err))
	}

	// the row is ours or a concurrent caller's; either way it exists now
	return c.lookup(ctx, q, name)
}

func (c *attributeCatalog) lookup(ctx context.Context, q DBTX, name string) (models.AttributeType, error) {
	var attributeType models.AttributeType
	err := q.QueryRowContext(ctx, c.db.rebind(findAttributeTypeByName), name).
		Scan(&attributeType.ID, &attributeType.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return models.AttributeType{}, fmt.Errorf("%w: attribute type %q", ErrNotFound, name)
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*attributeCatalog.lookup").Msg("error looking up attribute type")
		return models.AttributeType{}, fmt.Errorf("%w: %w", ErrExecutingQuery, c.db.storeError(err))
	}
	return attributeType, nil
}

// attributeRow is one value ready to be inserted into attribute_values.
type attributeRow struct {
	typeID string
	value  string
}

// resolveFields resolves every name of fields on q and flattens the values
// into rows. Attributes are emitted in lexical order and values keep the
// order they were given in.
func (c *attributeCatalog) resolveFields(ctx context.Context, q DBTX, fields models.Fields) ([]attributeRow, error) {
	normalized := fields.Normalized()

	rows := make([]attributeRow, 0, len(normalized))
	for _, name := range normalized.Names() {
		attributeType, err := c.resolve(ctx, q, name)
		if err != nil {
			return nil, err
		}
		for _, value := range normalized[name] {
			rows = append(rows, attributeRow{typeID: attributeType.ID, value: value})
		}
	}
	return rows, nil
}

func uniqueNames(names []string) []string {
	out := make([]string, 0, len(names))
	for _, name := range names {
		out = append(out, strings.TrimSpace(name))
	}
	slices.Sort(out)
	return slices.Compact(out)
}

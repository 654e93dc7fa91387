// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
)

func TestPostgresErrorClassifier_Classify(t *testing.T) {
	classifier := NewPostgresErrorClassifier()

	tests := []struct {
		name string
		err  error
		want ErrorClassification
	}{
		{name: "nil", err: nil, want: Failure},
		{name: "plain error", err: errors.New("boom"), want: Failure},
		{name: "unique violation", err: pgError(pgerrcode.UniqueViolation), want: UniqueViolation},
		{name: "wrapped unique violation", err: fmt.Errorf("insert: %w", pgError(pgerrcode.UniqueViolation)), want: UniqueViolation},
		{name: "foreign key violation", err: pgError(pgerrcode.ForeignKeyViolation), want: ForeignKeyViolation},
		{name: "invalid text", err: pgError(pgerrcode.InvalidTextRepresentation), want: InvalidData},
		{name: "connection failure", err: pgError(pgerrcode.ConnectionFailure), want: Failure},
		{name: "deadlock", err: pgError(pgerrcode.DeadlockDetected), want: Failure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, classifier.Classify(tt.err))
		})
	}
}

func TestDB_StoreError(t *testing.T) {
	db, _ := newMockDB(t)

	tests := []struct {
		name string
		err  error
		want error
	}{
		{name: "unique violation", err: pgError(pgerrcode.UniqueViolation), want: ErrConflict},
		{name: "foreign key violation", err: pgError(pgerrcode.ForeignKeyViolation), want: ErrNotFound},
		{name: "data exception", err: pgError(pgerrcode.DataException), want: ErrInvalidArgument},
		{name: "anything else", err: errors.New("connection refused"), want: ErrTransientStore},
		{name: "already classified", err: fmt.Errorf("%w: user", ErrNotFound), want: ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := db.storeError(tt.err)
			assert.ErrorIs(t, got, tt.want)
			assert.ErrorIs(t, got, tt.err)
		})
	}

	assert.NoError(t, db.storeError(nil))
}

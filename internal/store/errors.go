// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Error taxonomy of the directory. Every error returned by a repository
// wraps exactly one of these kinds; callers match them with [errors.Is].
var (
	// ErrInvalidArgument is returned for malformed input: an empty attribute
	// name, an unknown sort column, an unsupported comparison operator.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNotFound is returned when a referenced user or attribute type does
	// not exist.
	ErrNotFound = errors.New("not found")

	// ErrConflict is returned on uniqueness violations (duplicate username
	// or duplicate primary identifier).
	ErrConflict = errors.New("conflict")

	// ErrTransientStore is returned when the underlying store or connection
	// fails. Operations are not retried internally.
	ErrTransientStore = errors.New("store failure")
)

// Low-level database operation errors. These are joined with a taxonomy kind
// when a SQL-level operation fails before any domain logic can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when iterating a multi-row result fails
	// mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)

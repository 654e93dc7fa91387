// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks directory input before it reaches storage:
// user identifiers, usernames, attribute names and search specifications.
//
// A Validator is scoped with field names (see fields.go) so a single
// implementation can check just the part of a value an operation touches,
// e.g. only FieldID and FieldUsername when renaming a user.
package validators

import "context"

// Validator validates arbitrary input values.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}

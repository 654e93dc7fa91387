// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

//go:generate mockgen -destination=../mock/service_mock.go -package=mock github.com/MKhiriev/go-user-directory/internal/service DirectoryService,PasswordHasher,IDGenerator

import (
	"context"

	"github.com/MKhiriev/go-user-directory/models"
)

// DirectoryService is the entry point of the user directory. Transport
// layers (HTTP, GraphQL, CLI) call it directly.
type DirectoryService interface {
	// Create stores a new user with its initial fields and returns it
	// hydrated with every field. An empty id is replaced by a generated one.
	Create(ctx context.Context, username string, password models.Password, fields models.Fields, id string) (models.User, error)
	// Authenticate reports whether password is valid for the active user
	// named username. Unknown users, disabled logins and wrong passwords
	// are all reported as false without an error.
	Authenticate(ctx context.Context, username, password string) (models.User, bool, error)

	FindByID(ctx context.Context, id string, includeInactive bool) (models.User, error)
	FindByUsername(ctx context.Context, username string, includeInactive bool) (models.User, error)
	// FindByAttributes returns the first active user, by id, whose
	// attributes satisfy every equality of criteria.
	FindByAttributes(ctx context.Context, criteria map[string]string) (models.User, bool, error)
	IsUsernameAvailable(ctx context.Context, username string) (bool, error)

	SetUsername(ctx context.Context, id, username string) error
	SetPassword(ctx context.Context, id string, password models.Password) error
	SetActive(ctx context.Context, id string, active bool) error
	Remove(ctx context.Context, id string) error

	AddField(ctx context.Context, id, name string, values []string) error
	AddFields(ctx context.Context, id string, fields models.Fields) error
	ReplaceFields(ctx context.Context, id string, fields models.Fields) error
	RemoveField(ctx context.Context, id, name string) error
	GetFields(ctx context.Context, id string, names []string) (models.Fields, error)
	GetValues(ctx context.Context, id, name string) ([]string, error)
	DistinctValues(ctx context.Context, name string) ([]string, error)

	Search(ctx context.Context, spec models.SearchSpec) (models.SearchResult, error)
}

// DirectoryServiceWrapper defines middleware composition for DirectoryService.
// Implementations wrap an existing DirectoryService to add behavior such as
// validating.
type DirectoryServiceWrapper interface {
	Wrap(DirectoryService) DirectoryService // returns a decorated DirectoryService applying additional behavior
}

// PasswordHasher is the hashing capability used for credentials.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) bool
}

// IDGenerator produces time-ordered unique identifiers for new users.
type IDGenerator interface {
	Generate() string
}

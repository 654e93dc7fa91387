// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-user-directory/models"
)

// AttributeCatalog maps attribute names to stable identifiers.
type AttributeCatalog interface {
	// Resolve returns the identifier of name, creating it on first use.
	// Concurrent first uses of the same name observe the same identifier.
	Resolve(ctx context.Context, name string) (models.AttributeType, error)
	// ResolveAll resolves every name and returns the types keyed by name.
	ResolveAll(ctx context.Context, names []string) (map[string]models.AttributeType, error)
	// NameOf looks an attribute type up by identifier.
	NameOf(ctx context.Context, id string) (models.AttributeType, error)
}

// UserRepository persists the identity record of users.
type UserRepository interface {
	// CreateUser inserts the user together with its initial fields in one
	// transaction and returns the stored record.
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByID(ctx context.Context, id string, includeInactive bool) (models.User, error)
	FindUserByUsername(ctx context.Context, username string, includeInactive bool) (models.User, error)
	SetUsername(ctx context.Context, id, username string) error
	SetPasswordHash(ctx context.Context, id, hash string) error
	SetActive(ctx context.Context, id string, active bool) error
	// RemoveUser deletes the user and every attribute value it owns.
	RemoveUser(ctx context.Context, id string) error
}

// AttributeRepository stores multi-valued attributes per user.
type AttributeRepository interface {
	AddValues(ctx context.Context, userID, name string, values []string) error
	AddFields(ctx context.Context, userID string, fields models.Fields) error
	// ReplaceAll atomically swaps every attribute of the user for fields.
	// A nil or empty fields leaves the user without attributes.
	ReplaceAll(ctx context.Context, userID string, fields models.Fields) error
	RemoveAttribute(ctx context.Context, userID, name string) error
	GetValues(ctx context.Context, userID, name string) ([]string, error)
	// GetFields loads the named attributes of every listed user with one
	// query. An empty names slice loads all attributes.
	GetFields(ctx context.Context, userIDs []string, names []string) (map[string]models.Fields, error)
	DistinctValues(ctx context.Context, name string) ([]string, error)
}

// SearchRepository runs compiled searches.
type SearchRepository interface {
	Search(ctx context.Context, spec models.SearchSpec) (models.SearchResult, error)
}

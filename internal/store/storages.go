// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "github.com/MKhiriev/go-user-directory/internal/logger"

// Storages groups the repositories sharing one connection pool.
type Storages struct {
	Catalog    AttributeCatalog
	Users      UserRepository
	Attributes AttributeRepository
	Search     SearchRepository
}

// NewStorages wires every repository to db.
func NewStorages(db *DB, log *logger.Logger) *Storages {
	catalog := NewAttributeCatalog(db, log)
	attributes := NewAttributeRepository(db, log)

	return &Storages{
		Catalog:    catalog,
		Users:      NewUserRepository(db, log),
		Attributes: attributes,
		Search:     NewSearchRepository(db, attributes, log),
	}
}

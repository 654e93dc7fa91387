// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-user-directory/internal/config"
	"github.com/MKhiriev/go-user-directory/internal/logger"
	"github.com/MKhiriev/go-user-directory/internal/store"
	"github.com/MKhiriev/go-user-directory/internal/utils"
)

type Services struct {
	DirectoryService DirectoryService
}

// NewServices builds the directory service over storages. Inputs are
// validated before they reach the core service.
func NewServices(storages *store.Storages, cfg config.App, logger *logger.Logger) *Services {
	core := NewDirectoryService(storages, utils.NewBcryptHasher(cfg.BcryptCost), utils.NewUUIDGenerator(), logger)

	return &Services{
		DirectoryService: NewDirectoryValidationService().Wrap(core),
	}
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"

	"github.com/MKhiriev/go-user-directory/internal/store"
	"github.com/MKhiriev/go-user-directory/internal/utils"
)

// Error taxonomy returned by [DirectoryService]. These are the store's
// kinds, so errors.Is works across both layers.
var (
	ErrInvalidArgument = store.ErrInvalidArgument
	ErrNotFound        = store.ErrNotFound
	ErrConflict        = store.ErrConflict
	ErrTransientStore  = store.ErrTransientStore
)

var (
	ErrEmptyPassword   = errors.New("password is empty, use NoLogin to disable login")
	ErrUsernameTaken   = errors.New("username is already taken")
	ErrHashingPassword = errors.New("failed to hash password")
	ErrPasswordTooLong = utils.ErrPasswordTooLong
)

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"errors"

	"github.com/MKhiriev/go-user-directory/models"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidUserID       = errors.New("invalid user ID")
	ErrEmptyUsername       = errors.New("username is required")
	ErrEmptyAttributeName  = errors.New("attribute name is required")
	ErrEmptyCriteria       = errors.New("at least one attribute criterion is required")
	ErrUnsupportedOperator = errors.New("unsupported comparison operator")
	ErrInvalidActiveFilter = errors.New("invalid active filter")
	ErrInvalidSortKey      = models.ErrInvalidSortKey
	ErrInvalidTimestamp    = errors.New("timestamp comparison value must be RFC 3339")
)

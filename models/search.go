// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ActiveFilter selects users by their active flag. The zero value selects
// active users only.
type ActiveFilter int

const (
	// ActiveOnly selects only active users.
	ActiveOnly ActiveFilter = iota
	// InactiveOnly selects only inactive users.
	InactiveOnly
	// ActiveAny disables filtering by the active flag.
	ActiveAny
)

// Operator is a comparison operator used by [Comparison].
type Operator string

const (
	OperatorEq Operator = "eq"
	OperatorGt Operator = "gt"
	OperatorLt Operator = "lt"
)

// Valid reports whether o is one of the supported operators.
func (o Operator) Valid() bool {
	switch o {
	case OperatorEq, OperatorGt, OperatorLt:
		return true
	}
	return false
}

// Comparison compares the value of Field with Value. Field is either an
// attribute name or one of the identity timestamps ("created_at",
// "updated_at"). Attribute values are compared as strings, so dates must be
// stored in a lexically sortable format (RFC 3339).
type Comparison struct {
	Field    string   `json:"field"`
	Operator Operator `json:"operator"`
	Value    string   `json:"value"`
}

// Identity columns that can be used as sort keys.
const (
	SortByID        = "id"
	SortByUsername  = "username"
	SortByActive    = "active"
	SortByCreatedAt = "created_at"
	SortByUpdatedAt = "updated_at"
)

// IdentityColumns lists the sortable identity columns.
var IdentityColumns = []string{SortByID, SortByUsername, SortByActive, SortByCreatedAt, SortByUpdatedAt}

// IsIdentityColumn reports whether name is a sortable identity column.
func IsIdentityColumn(name string) bool {
	for _, column := range IdentityColumns {
		if column == name {
			return true
		}
	}
	return false
}

// ErrInvalidSortKey is returned by [SearchSpec.SortKey] for a key that is
// neither an identity column nor a returned attribute.
var ErrInvalidSortKey = errors.New("sort key must be an identity column or a returned attribute")

// Sort describes the ordering of search results. An empty Key orders by id.
type Sort struct {
	Key        string `json:"key"`
	Descending bool   `json:"descending"`
}

// SearchSpec is the structured search request. Every criterion is optional;
// the zero value returns all active users.
type SearchSpec struct {
	Active ActiveFilter `json:"active"`

	CreatedAfter *time.Time `json:"created_after,omitempty"`
	UpdatedAfter *time.Time `json:"updated_after,omitempty"`

	// Comparisons are AND-combined.
	Comparisons []Comparison `json:"comparisons,omitempty"`

	// HasFields requires each listed attribute to have a non-empty value.
	HasFields []string `json:"has_fields,omitempty"`

	// MissingFields matches when ANY listed attribute is unset or has only
	// empty values.
	MissingFields []string `json:"missing_fields,omitempty"`

	// MatchAllFields requires, for every attribute, a value equal to one of
	// the listed values.
	MatchAllFields map[string][]string `json:"match_all_fields,omitempty"`

	// ContainsFields requires, for every attribute, a value containing the
	// given substring.
	ContainsFields map[string]string `json:"contains_fields,omitempty"`

	// Query matches the username or any attribute value by substring.
	Query string `json:"query,omitempty"`

	// IDs restricts results to the listed identifiers when non-nil.
	// Malformed identifiers are dropped; an allow-list with no valid
	// identifiers yields no results.
	IDs []string `json:"ids,omitempty"`

	Sort Sort `json:"sort"`

	// Limit <= 0 means unlimited. Offset < 0 is treated as zero.
	Limit  int `json:"limit,omitempty"`
	Offset int `json:"offset,omitempty"`

	// ReturnFields lists the attributes hydrated into result rows.
	ReturnFields []string `json:"return_fields,omitempty"`
}

// SortKey returns the effective sort key: SortByID when none is set.
// Attributes are sortable only when they are listed in ReturnFields.
func (s SearchSpec) SortKey() (string, error) {
	key := strings.TrimSpace(s.Sort.Key)
	if key == "" {
		return SortByID, nil
	}
	if IsIdentityColumn(key) {
		return key, nil
	}
	for _, name := range s.ReturnFields {
		if strings.TrimSpace(name) == key {
			return key, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidSortKey, key)
}

// SearchResult is one page of users plus the size of the whole match set.
type SearchResult struct {
	Users         []User `json:"users"`
	TotalMatching int64  `json:"total_matching"`
}

// ParseLimit parses a limit from user input. Non-numeric and negative
// values fall back to unlimited (0).
func ParseLimit(s string) int {
	return parseNonNegative(s)
}

// ParseOffset parses an offset from user input. Non-numeric and negative
// values fall back to zero.
func ParseOffset(s string) int {
	return parseNonNegative(s)
}

func parseNonNegative(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

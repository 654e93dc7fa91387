// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// User is a directory entry: the identity record plus the attributes that
// were hydrated for it by the query that loaded it.
type User struct {
	// ID is the opaque unique identifier of the user (a time-ordered UUID).
	ID string `json:"id"`

	// Username is unique across the directory, trimmed and non-empty.
	Username string `json:"username"`

	// PasswordHash is the output of the hashing capability. An empty hash
	// means login is disabled for this user. Never exposed via JSON.
	PasswordHash string `json:"-"`

	// Active reports whether the user participates in default lookups.
	Active bool `json:"active"`

	// CreatedAt and UpdatedAt are server-assigned UTC timestamps.
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Fields holds the hydrated attributes. It is nil when no attributes
	// were requested.
	Fields Fields `json:"fields,omitempty"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// CanLogin reports whether a password hash is set.
func (u User) CanLogin() bool {
	return u.PasswordHash != ""
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// AttributeType names a user-defined attribute. The name to ID mapping is a
// bijection: a name is resolved to exactly one ID for the lifetime of the
// directory.
type AttributeType struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// TableName returns the name of the database table
// associated with the AttributeType model.
func (a AttributeType) TableName() string {
	return "attribute_types"
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

// Statements are written with '?' placeholders and rebound to the dialect
// of the connection before execution.
const (
	userColumns = `id, username, password_hash, active, created_at, updated_at`

	createUser = `INSERT INTO users (id, username, password_hash, active, created_at, updated_at)
    VALUES (?, ?, ?, ?, ?, ?);`

	findUserByID = `SELECT ` + userColumns + `
    FROM users
    WHERE id = ?`

	findUserByUsername = `SELECT ` + userColumns + `
    FROM users
    WHERE username = ?`

	activeOnlyClause = ` AND active = ?`

	updateUsername = `UPDATE users
    SET username = ?, updated_at = ?
    WHERE id = ?;`

	updatePasswordHash = `UPDATE users
    SET password_hash = ?, updated_at = ?
    WHERE id = ?;`

	updateActive = `UPDATE users
    SET active = ?, updated_at = ?
    WHERE id = ?;`

	touchUser = `UPDATE users
    SET updated_at = ?
    WHERE id = ?;`

	deleteUser = `DELETE FROM users
    WHERE id = ?;`

	deleteUserAttributes = `DELETE FROM attribute_values
    WHERE user_id = ?;`

	deleteUserAttribute = `DELETE FROM attribute_values
    WHERE user_id = ? AND attribute_type_id IN (
        SELECT id FROM attribute_types WHERE name = ?
    );`

	findAttributeTypeByName = `SELECT id, name
    FROM attribute_types
    WHERE name = ?;`

	findAttributeTypeByID = `SELECT id, name
    FROM attribute_types
    WHERE id = ?;`

	insertAttributeTypeIgnoreConflict = `INSERT INTO attribute_types (id, name)
    VALUES (?, ?)
    ON CONFLICT (name) DO NOTHING;`

	selectAttributeValues = `SELECT av.value
    FROM attribute_values av
    JOIN attribute_types t ON t.id = av.attribute_type_id
    WHERE av.user_id = ? AND t.name = ?
    ORDER BY av.id;`

	selectDistinctValues = `SELECT DISTINCT av.value
    FROM attribute_values av
    JOIN attribute_types t ON t.id = av.attribute_type_id
    WHERE t.name = ?
    ORDER BY av.value;`
)

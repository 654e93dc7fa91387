// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

// Field name constants used to specify which fields should be validated.
// These constants are passed to Validate to restrict validation to a
// subset of fields (field-level scoping).
const (
	// FieldID targets the user identifier. It must be a well-formed UUID.
	FieldID = "id"

	// FieldUsername targets the username. It must be non-empty once trimmed.
	FieldUsername = "username"

	// FieldAttributeName targets a single attribute name passed as a string.
	FieldAttributeName = "attribute_name"

	// FieldAttributes targets the attribute bag of a user.
	FieldAttributes = "fields"

	// FieldCriteria targets a non-empty attribute bag used as lookup criteria.
	FieldCriteria = "criteria"

	// FieldActive targets the active filter of a search.
	FieldActive = "active"

	// FieldComparisons targets the comparisons of a search.
	FieldComparisons = "comparisons"

	// FieldAttributeCriteria targets every attribute name referenced by the
	// existence, match and substring criteria of a search.
	FieldAttributeCriteria = "attribute_criteria"

	// FieldSort targets the sort key of a search.
	FieldSort = "sort"

	// FieldReturnFields targets the attributes hydrated into search results.
	FieldReturnFields = "return_fields"
)

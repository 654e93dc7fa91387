// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"slices"
	"strings"
)

// Fields is the bag of user-defined attributes: attribute name to its
// ordered list of values.
type Fields map[string][]string

// Get returns the first value of the named attribute or an empty string.
func (f Fields) Get(name string) string {
	values := f[name]
	if len(values) == 0 {
		return ""
	}
	return values[0]
}

// Values returns all values of the named attribute. The returned slice is
// never nil.
func (f Fields) Values(name string) []string {
	values := f[name]
	if values == nil {
		return []string{}
	}
	return values
}

// Add appends values to the named attribute.
func (f Fields) Add(name string, values ...string) {
	f[name] = append(f[name], values...)
}

// Names returns the attribute names in lexical order.
func (f Fields) Names() []string {
	names := make([]string, 0, len(f))
	for name := range f {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Normalized returns a copy with trimmed attribute names and every
// attribute carrying at least one value: an attribute given without values
// is stored as a single empty string.
func (f Fields) Normalized() Fields {
	out := make(Fields, len(f))
	for name, values := range f {
		name = strings.TrimSpace(name)
		out[name] = append(out[name], NormalizeValues(values)...)
	}
	return out
}

// NormalizeValues maps "no value provided" to a single empty-string value.
func NormalizeValues(values []string) []string {
	if len(values) == 0 {
		return []string{""}
	}
	return slices.Clone(values)
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFields_GetAndValues(t *testing.T) {
	f := Fields{"email": {"a@example.com", "b@example.com"}, "blank": {}}

	assert.Equal(t, "a@example.com", f.Get("email"))
	assert.Equal(t, "", f.Get("blank"))
	assert.Equal(t, "", f.Get("missing"))

	assert.Equal(t, []string{"a@example.com", "b@example.com"}, f.Values("email"))
	assert.NotNil(t, f.Values("missing"))
	assert.Empty(t, f.Values("missing"))
}

func TestFields_AddAndNames(t *testing.T) {
	f := Fields{}
	f.Add("role", "admin")
	f.Add("role", "auditor")
	f.Add("email")

	assert.Equal(t, []string{"admin", "auditor"}, f["role"])
	assert.Equal(t, []string{"email", "role"}, f.Names())
}

func TestFields_Normalized(t *testing.T) {
	in := Fields{
		" role ": {"admin"},
		"role":   {"auditor"},
		"email":  nil,
	}

	out := in.Normalized()

	assert.Equal(t, []string{""}, out["email"])
	assert.ElementsMatch(t, []string{"admin", "auditor"}, out["role"])
	assert.NotContains(t, out, " role ")

	out["email"][0] = "changed"
	assert.Nil(t, in["email"])
}

func TestNormalizeValues(t *testing.T) {
	assert.Equal(t, []string{""}, NormalizeValues(nil))
	assert.Equal(t, []string{""}, NormalizeValues([]string{}))

	src := []string{"a", "b"}
	got := NormalizeValues(src)
	got[0] = "z"
	assert.Equal(t, "a", src[0])
}

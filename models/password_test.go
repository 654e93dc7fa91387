// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPassword(t *testing.T) {
	none := NoLogin()
	assert.True(t, none.IsNoLogin())
	assert.Empty(t, none.Plain())
	assert.Equal(t, "NoLogin", none.String())

	secret := PlainText("hunter2")
	assert.False(t, secret.IsNoLogin())
	assert.Equal(t, "hunter2", secret.Plain())
	assert.NotContains(t, fmt.Sprint(secret), "hunter2")

	assert.False(t, PlainText("").IsNoLogin())
}

func TestUser_CanLogin(t *testing.T) {
	assert.False(t, User{}.CanLogin())
	assert.True(t, User{PasswordHash: "$2a$10$abc"}.CanLogin())
}

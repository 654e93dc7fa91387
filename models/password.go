// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Password is the credential supplied on create or password change.
// It is either NoLogin (the user cannot authenticate) or a plain-text
// password that will be hashed before it is persisted.
type Password struct {
	plain   string
	enabled bool
}

// NoLogin returns a Password that disables login.
func NoLogin() Password {
	return Password{}
}

// PlainText returns a Password carrying the given plain-text secret.
func PlainText(plain string) Password {
	return Password{plain: plain, enabled: true}
}

// IsNoLogin reports whether the password disables login.
func (p Password) IsNoLogin() bool {
	return !p.enabled
}

// Plain returns the plain-text secret. It is empty for NoLogin.
func (p Password) Plain() string {
	return p.plain
}

// String never reveals the secret.
func (p Password) String() string {
	if p.IsNoLogin() {
		return "NoLogin"
	}
	return "PlainText(***)"
}

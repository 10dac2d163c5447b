// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Identity is the authenticated-identity snapshot kept in a session.
// It is taken at login time and is not refreshed when the persisted
// User row changes afterwards.
type Identity struct {
	UserID int64  `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
}

// IsAnonymous reports whether i carries no authenticated user.
func (i Identity) IsAnonymous() bool {
	return i.UserID == 0
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// User represents a registered account of the site.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the surrogate key assigned by the database on insert.
	UserID int64 `json:"id"`

	// Name is the display name entered at registration.
	Name string `json:"name"`

	// Email is the unique login of the user. Compared case-sensitively,
	// exactly as stored.
	Email string `json:"email"`

	// Password is the stored credential string produced by the configured
	// credential verifier. With the default plaintext scheme it is the
	// password itself, so it is never serialized.
	Password string `json:"-"`

	// CreatedAt is assigned at insert and never changes.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Identity returns the minimal snapshot of u that is cached in a session.
func (u User) Identity() Identity {
	return Identity{
		UserID: u.UserID,
		Name:   u.Name,
		Email:  u.Email,
	}
}

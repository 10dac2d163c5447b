// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Comment is an append-only message posted by a user on the voices page.
type Comment struct {
	ID     int64 `json:"id"`
	UserID int64 `json:"user_id"`

	// FirstName and LastName are what the poster typed into the form.
	// They are a snapshot independent of User.Name.
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`

	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`

	// UserName is the poster's current User.Name, filled only by the
	// listing that joins users. Nil when the user no longer exists.
	UserName *string `json:"user_name,omitempty"`
}

// TableName returns the name of the database table
// associated with the Comment model.
func (c Comment) TableName() string {
	return "comments"
}

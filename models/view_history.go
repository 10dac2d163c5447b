// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// ItemType names the content table a view history entry points into.
type ItemType string

const (
	ItemTypeExercise ItemType = "exercise"
	ItemTypeAdvice   ItemType = "advice"
)

// IsValid reports whether t is one of the known item types.
func (t ItemType) IsValid() bool {
	switch t {
	case ItemTypeExercise, ItemTypeAdvice:
		return true
	}
	return false
}

// String implements fmt.Stringer.
func (t ItemType) String() string {
	return string(t)
}

// ViewHistory is one entry of a user's view history.
//
// There is at most one entry per (UserID, ItemType, ItemID): viewing the
// same item again moves ViewedAt forward instead of adding a row.
// ItemID is not enforced by a foreign key.
type ViewHistory struct {
	ID       int64    `json:"id"`
	UserID   int64    `json:"user_id"`
	ItemType ItemType `json:"item_type"`
	ItemID   int64    `json:"item_id"`

	// ItemName is a snapshot of the content name at the time of the first view.
	ItemName string `json:"item_name"`

	ViewedAt time.Time `json:"viewed_at"`
}

// TableName returns the name of the database table
// associated with the ViewHistory model.
func (v ViewHistory) TableName() string {
	return "view_history"
}

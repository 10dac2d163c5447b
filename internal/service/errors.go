// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"

	"github.com/MKhiriev/hope-garden/internal/session"
	"github.com/MKhiriev/hope-garden/internal/store"
	"github.com/MKhiriev/hope-garden/internal/validators"
)

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongCredentials    = errors.New("wrong email or password")

	ErrCommentNotSaved = errors.New("comment was not saved")
	ErrContentNotSaved = errors.New("content was not saved")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)

// DefaultReason is returned by [Reason] for errors the user cannot fix.
const DefaultReason = "Internal server error. Please try again later."

var reasons = []struct {
	err    error
	reason string
}{
	{validators.ErrRegistrationFieldsRequired, "All fields are required"},
	{validators.ErrPasswordTooShort, "Password must be at least 6 characters long"},
	{store.ErrEmailAlreadyExists, "A user with this email is already registered"},
	{validators.ErrCredentialsRequired, "Email and password are required"},
	{ErrWrongCredentials, "Invalid email or password"},
	{validators.ErrCommentFieldsRequired, "Please fill in all fields!"},
	{ErrCommentNotSaved, "The comment was not saved. Please try again."},
	{validators.ErrContentFieldsRequired, "Name, text and video are required"},
	{ErrContentNotSaved, "The content was not saved. Please try again."},
	{store.ErrExerciseNotFound, "Exercise not found"},
	{store.ErrAdviceNotFound, "Advice not found"},
	{store.ErrUserNotFound, "User not found"},
	{validators.ErrInvalidItemType, "Unknown item type"},
	{store.ErrInvalidItemType, "Unknown item type"},
	{session.ErrLoginRequired, "Please log in"},
}

// Reason returns the message shown to the user for err. Errors that carry
// no user-facing meaning yield [DefaultReason].
func Reason(err error) string {
	for _, r := range reasons {
		if errors.Is(err, r.err) {
			return r.reason
		}
	}
	return DefaultReason
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/hope-garden/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// ErrorClassificator maps a driver error to an [ErrorClassification].
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// UserRepository persists user accounts and checks credentials.
type UserRepository interface {
	// CreateUser inserts a user. The password is stored in the form produced
	// by the configured credential verifier. Returns [ErrEmailAlreadyExists]
	// when the email is taken.
	CreateUser(ctx context.Context, name, email, password string) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
	// VerifyCredentials reports whether email exists and password matches its
	// stored credential. An unknown email is (false, nil).
	VerifyCredentials(ctx context.Context, email, password string) (bool, error)
	// DeleteUser removes the user together with its comments and history.
	DeleteUser(ctx context.Context, userID int64) error
	ListUsers(ctx context.Context) ([]models.User, error)
}

// ContentRepository holds the exercise and advice catalogues.
type ContentRepository interface {
	ListExercises(ctx context.Context) ([]models.Exercise, error)
	GetExercise(ctx context.Context, id int64) (models.Exercise, error)
	// AddExercise returns (false, nil) when a constraint rejects the row.
	AddExercise(ctx context.Context, name, description, videoURL string) (bool, error)

	ListAdvice(ctx context.Context) ([]models.Advice, error)
	GetAdvice(ctx context.Context, id int64) (models.Advice, error)
	// AddAdvice returns (false, nil) when a constraint rejects the row.
	AddAdvice(ctx context.Context, name, content, videoURL string) (bool, error)

	// SeedIfEmpty fills each empty catalogue with the initial content.
	SeedIfEmpty(ctx context.Context) error
}

// CommentRepository stores comments of the voices page.
type CommentRepository interface {
	// AddComment returns (false, nil) when userID does not reference a user.
	AddComment(ctx context.Context, userID int64, firstName, lastName, text string) (bool, error)
	// ListComments returns every comment, newest first, with the poster's
	// current name.
	ListComments(ctx context.Context) ([]models.Comment, error)
	ListUserComments(ctx context.Context, userID int64) ([]models.Comment, error)
}

// ViewHistoryRepository keeps one entry per viewed item and user.
type ViewHistoryRepository interface {
	// RecordView inserts the entry or, when it already exists, moves its
	// viewed_at forward. Returns (false, nil) when userID does not reference
	// a user.
	RecordView(ctx context.Context, userID int64, itemType models.ItemType, itemID int64, itemName string) (bool, error)
	// ListViewHistory returns the most recent entries, newest first.
	ListViewHistory(ctx context.Context, userID int64) ([]models.ViewHistory, error)
}

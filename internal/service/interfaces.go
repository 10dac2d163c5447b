// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service implements the use cases of the site on top of the
// repositories in package store and the session store in package session.
//
// Transports call services only; they never reach the repositories
// directly. Every failure a user can cause maps to a sentinel error and a
// human-readable message available through [Reason].
package service

import (
	"context"

	"github.com/MKhiriev/hope-garden/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService registers users and manages their sessions.
type AuthService interface {
	// Register validates req and creates the user.
	Register(ctx context.Context, req models.RegisterRequest) (models.User, error)
	// Login checks the credentials and opens a session. It returns the
	// session token and the identity bound to it.
	Login(ctx context.Context, req models.LoginRequest) (string, models.Identity, error)
	// Logout closes the session of token. Unknown tokens are ignored.
	Logout(ctx context.Context, token string)
	// CurrentIdentity resolves token; the second value is false for
	// anonymous requests.
	CurrentIdentity(ctx context.Context, token string) (models.Identity, bool)
	// RequireAuth resolves token or returns session.ErrLoginRequired.
	RequireAuth(ctx context.Context, token string) (models.Identity, error)
}

// ContentService exposes the exercise and advice catalogues.
type ContentService interface {
	ListExercises(ctx context.Context) ([]models.Exercise, error)
	GetExercise(ctx context.Context, id int64) (models.Exercise, error)
	// OpenExercise returns the exercise and records it in the view history
	// of identity.
	OpenExercise(ctx context.Context, identity models.Identity, id int64) (models.Exercise, error)
	AddExercise(ctx context.Context, req models.ExerciseRequest) error

	ListAdvice(ctx context.Context) ([]models.Advice, error)
	GetAdvice(ctx context.Context, id int64) (models.Advice, error)
	// OpenAdvice returns the advice and records it in the view history of
	// identity.
	OpenAdvice(ctx context.Context, identity models.Identity, id int64) (models.Advice, error)
	AddAdvice(ctx context.Context, req models.AdviceRequest) error
}

// CommentService manages the comments of the voices page.
type CommentService interface {
	PostComment(ctx context.Context, identity models.Identity, req models.CommentRequest) error
	ListComments(ctx context.Context) ([]models.Comment, error)
	ListUserComments(ctx context.Context, identity models.Identity) ([]models.Comment, error)
}

// HistoryService reads the view history of a user.
type HistoryService interface {
	ListViewHistory(ctx context.Context, identity models.Identity) ([]models.ViewHistory, error)
}

// AppInfoService reports build information.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

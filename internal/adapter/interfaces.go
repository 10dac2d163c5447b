// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides a client for the hope-garden JSON API.
//
// The primary abstraction is [ServerAdapter]. The HTTP implementation
// ([NewHTTPServerAdapter]) keeps the session cookie issued by Login in a
// cookie jar and sends it with every later request.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] (e.g. [ErrConflict] for
// 409, [ErrUnauthorized] for 401 or a redirect to the login page).
package adapter

import (
	"context"

	"github.com/MKhiriev/hope-garden/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines communication with the hope-garden server.
type ServerAdapter interface {
	// Register creates an account. It does not log the user in.
	Register(ctx context.Context, req models.RegisterRequest) (models.User, error)

	// Login authenticates and keeps the returned session cookie for all
	// subsequent requests.
	Login(ctx context.Context, req models.LoginRequest) (models.Identity, error)

	// Logout ends the server-side session and drops the cookie.
	Logout(ctx context.Context) error

	// Me returns the identity bound to the current session. The boolean is
	// false when the client is anonymous.
	Me(ctx context.Context) (models.Identity, bool, error)

	ListExercises(ctx context.Context) ([]models.Exercise, error)
	// GetExercise opens an exercise, which also records it in the view history.
	GetExercise(ctx context.Context, id int64) (models.Exercise, error)
	AddExercise(ctx context.Context, req models.ExerciseRequest) error

	ListAdvice(ctx context.Context) ([]models.Advice, error)
	// GetAdvice opens an advice item, which also records it in the view history.
	GetAdvice(ctx context.Context, id int64) (models.Advice, error)
	AddAdvice(ctx context.Context, req models.AdviceRequest) error

	ListComments(ctx context.Context) ([]models.Comment, error)
	PostComment(ctx context.Context, req models.CommentRequest) error
	ListUserComments(ctx context.Context) ([]models.Comment, error)

	// History returns the most recently viewed items, newest first.
	History(ctx context.Context) ([]models.ViewHistory, error)

	// Version returns the server version string.
	Version(ctx context.Context) (string, error)
}

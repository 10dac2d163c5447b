// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/hope-garden/internal/logger"
	"github.com/MKhiriev/hope-garden/internal/session"
	"github.com/MKhiriev/hope-garden/internal/store"
	"github.com/MKhiriev/hope-garden/internal/validators"
	"github.com/MKhiriev/hope-garden/models"
)

// authService is the concrete implementation of AuthService.
// It validates registration and login forms, delegates credential storage
// and comparison to the UserRepository and keeps sessions in a
// session.Store.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// sessions maps issued tokens to identity snapshots.
	sessions session.Store

	// gate answers identity lookups for incoming tokens.
	gate *session.Gate

	validator validators.Validator

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService over the given repository and
// session store.
//
// The returned service is safe for concurrent use as long as sessions is.
func NewAuthService(userRepository store.UserRepository, sessions session.Store, validator validators.Validator, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		sessions:       sessions,
		gate:           session.NewGate(sessions),
		validator:      validator,
		logger:         logger,
	}
}

// Register creates a new user account.
//
// Returns the persisted user or:
//   - ErrInvalidDataProvided wrapping the validator error if a field is
//     missing or the password is shorter than 6 characters.
//   - store.ErrEmailAlreadyExists (wrapped) if the email is taken.
//   - A wrapped storage error for any other failure.
func (a *authService) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, req); err != nil {
		log.Debug().Err(err).Str("email", req.Email).Msg("invalid registration data provided")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	user, err := a.userRepository.CreateUser(ctx, req.Name, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, store.ErrEmailAlreadyExists) {
			log.Info().Str("email", req.Email).Msg("registration with taken email")
		} else {
			log.Err(err).Str("email", req.Email).Msg("user creation ended with error")
		}
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	log.Info().Int64("id", user.UserID).Msg("user registered")
	return user, nil
}

// Login authenticates a user by email and password and opens a session.
//
// Returns the session token and the identity snapshot bound to it, or:
//   - ErrInvalidDataProvided wrapping the validator error if a field is empty.
//   - ErrWrongCredentials if the email is unknown or the password does not
//     match.
//   - A wrapped storage or session error for any other failure.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (string, models.Identity, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, req); err != nil {
		log.Debug().Err(err).Msg("invalid login data provided")
		return "", models.Identity{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	ok, err := a.userRepository.VerifyCredentials(ctx, req.Email, req.Password)
	if err != nil {
		log.Err(err).Str("email", req.Email).Msg("credential verification failed")
		return "", models.Identity{}, fmt.Errorf("credential verification failed: %w", err)
	}
	if !ok {
		log.Info().Str("email", req.Email).Msg("wrong email or password")
		return "", models.Identity{}, ErrWrongCredentials
	}

	user, err := a.userRepository.FindUserByEmail(ctx, req.Email)
	if err != nil {
		log.Err(err).Str("email", req.Email).Msg("user search by email failed")
		return "", models.Identity{}, fmt.Errorf("user search by email failed: %w", err)
	}

	identity := user.Identity()
	token, err := a.sessions.Create(identity)
	if err != nil {
		log.Err(err).Int64("id", user.UserID).Msg("session creation failed")
		return "", models.Identity{}, fmt.Errorf("session creation failed: %w", err)
	}

	log.Info().Int64("id", user.UserID).Msg("user logged in")
	return token, identity, nil
}

// Logout forgets the session of token.
func (a *authService) Logout(ctx context.Context, token string) {
	if token == "" {
		return
	}
	a.sessions.Destroy(token)
	logger.FromContext(ctx).Debug().Msg("session destroyed")
}

func (a *authService) CurrentIdentity(ctx context.Context, token string) (models.Identity, bool) {
	return a.gate.CurrentIdentity(token)
}

func (a *authService) RequireAuth(ctx context.Context, token string) (models.Identity, error) {
	return a.gate.RequireAuth(token)
}

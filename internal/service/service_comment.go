// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/hope-garden/internal/logger"
	"github.com/MKhiriev/hope-garden/internal/session"
	"github.com/MKhiriev/hope-garden/internal/store"
	"github.com/MKhiriev/hope-garden/internal/validators"
	"github.com/MKhiriev/hope-garden/models"
)

type commentService struct {
	commentRepository store.CommentRepository
	validator         validators.Validator

	logger *logger.Logger
}

func NewCommentService(commentRepository store.CommentRepository, validator validators.Validator, logger *logger.Logger) CommentService {
	return &commentService{
		commentRepository: commentRepository,
		validator:         validator,
		logger:            logger,
	}
}

// PostComment stores a comment of identity. The names in req are stored as
// typed and are independent of the user's registered name.
func (c *commentService) PostComment(ctx context.Context, identity models.Identity, req models.CommentRequest) error {
	if identity.IsAnonymous() {
		return session.ErrLoginRequired
	}

	log := logger.FromContext(ctx)

	if err := c.validator.Validate(ctx, req); err != nil {
		log.Debug().Err(err).Int64("user_id", identity.UserID).Msg("invalid comment provided")
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	ok, err := c.commentRepository.AddComment(ctx, identity.UserID, req.FirstName, req.LastName, req.Comment)
	if err != nil {
		log.Err(err).Int64("user_id", identity.UserID).Msg("error adding comment")
		return fmt.Errorf("error adding comment: %w", err)
	}
	if !ok {
		log.Warn().Int64("user_id", identity.UserID).Msg("comment was not saved")
		return ErrCommentNotSaved
	}

	return nil
}

func (c *commentService) ListComments(ctx context.Context) ([]models.Comment, error) {
	return c.commentRepository.ListComments(ctx)
}

func (c *commentService) ListUserComments(ctx context.Context, identity models.Identity) ([]models.Comment, error) {
	if identity.IsAnonymous() {
		return nil, session.ErrLoginRequired
	}
	return c.commentRepository.ListUserComments(ctx, identity.UserID)
}

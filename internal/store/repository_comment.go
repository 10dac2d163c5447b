// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/hope-garden/internal/logger"
	"github.com/MKhiriev/hope-garden/models"
)

// commentRepository is the SQL implementation of [CommentRepository].
type commentRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewCommentRepository constructs a [CommentRepository].
func NewCommentRepository(db *DB, logger *logger.Logger) CommentRepository {
	logger.Debug().Msg("creating comment repository")
	return &commentRepository{
		db:     db,
		logger: logger,
	}
}

func commentDest(c *models.Comment) []any {
	return []any{&c.ID, &c.UserID, &c.FirstName, &c.LastName, &c.Comment, &c.CreatedAt, &c.UserName}
}

// AddComment implements [CommentRepository].
func (r *commentRepository) AddComment(ctx context.Context, userID int64, firstName, lastName, text string) (bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertCommentQuery(r.db.builder, userID, firstName, lastName, text, r.db.timestamp())
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		if class := r.db.classify(err); class.IsConstraintViolation() {
			log.Warn().Err(err).
				Str("func", "*commentRepository.AddComment").
				Int64("user_id", userID).
				Stringer("class", class).
				Msg("comment rejected by constraint")
			return false, nil
		}
		log.Err(err).
			Str("func", "*commentRepository.AddComment").
			Int64("user_id", userID).
			Msg("error inserting comment")
		return false, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return true, nil
}

// ListComments implements [CommentRepository].
func (r *commentRepository) ListComments(ctx context.Context) ([]models.Comment, error) {
	return r.listComments(ctx, "*commentRepository.ListComments", nil)
}

// ListUserComments implements [CommentRepository].
func (r *commentRepository) ListUserComments(ctx context.Context, userID int64) ([]models.Comment, error) {
	return r.listComments(ctx, "*commentRepository.ListUserComments", &userID)
}

func (r *commentRepository) listComments(ctx context.Context, funcName string, userID *int64) ([]models.Comment, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListCommentsQuery(r.db.builder, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error selecting comments")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	comments, err := collectRows(rows, commentDest)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error scanning comments")
		return nil, err
	}
	return comments, nil
}

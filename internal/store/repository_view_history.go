// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/hope-garden/internal/logger"
	"github.com/MKhiriev/hope-garden/models"
)

// viewHistoryRepository is the SQL implementation of [ViewHistoryRepository].
//
// Deduplication is done by the database: a unique index on
// (user_id, item_type, item_id) and a single INSERT ... ON CONFLICT DO UPDATE
// statement, so concurrent views of the same item by the same user can never
// produce two rows.
type viewHistoryRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewViewHistoryRepository constructs a [ViewHistoryRepository].
func NewViewHistoryRepository(db *DB, logger *logger.Logger) ViewHistoryRepository {
	logger.Debug().Msg("creating view history repository")
	return &viewHistoryRepository{
		db:     db,
		logger: logger,
	}
}

func viewHistoryDest(v *models.ViewHistory) []any {
	return []any{&v.ID, &v.UserID, &v.ItemType, &v.ItemID, &v.ItemName, &v.ViewedAt}
}

// RecordView implements [ViewHistoryRepository]. The stored item name is the
// one from the first view; later views only move viewed_at.
func (r *viewHistoryRepository) RecordView(ctx context.Context, userID int64, itemType models.ItemType, itemID int64, itemName string) (bool, error) {
	log := logger.FromContext(ctx)

	if !itemType.IsValid() {
		return false, fmt.Errorf("%w: %q", ErrInvalidItemType, itemType)
	}

	query, args, err := buildRecordViewQuery(r.db.builder, userID, itemType, itemID, itemName, r.db.timestamp())
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		if class := r.db.classify(err); class.IsConstraintViolation() {
			log.Warn().Err(err).
				Str("func", "*viewHistoryRepository.RecordView").
				Int64("user_id", userID).
				Stringer("class", class).
				Msg("view rejected by constraint")
			return false, nil
		}
		log.Err(err).
			Str("func", "*viewHistoryRepository.RecordView").
			Int64("user_id", userID).
			Str("item_type", itemType.String()).
			Int64("item_id", itemID).
			Msg("error recording view")
		return false, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return true, nil
}

// ListViewHistory implements [ViewHistoryRepository].
func (r *viewHistoryRepository) ListViewHistory(ctx context.Context, userID int64) ([]models.ViewHistory, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListViewHistoryQuery(r.db.builder, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*viewHistoryRepository.ListViewHistory").Int64("user_id", userID).Msg("error selecting history")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	history, err := collectRows(rows, viewHistoryDest)
	if err != nil {
		log.Err(err).Str("func", "*viewHistoryRepository.ListViewHistory").Int64("user_id", userID).Msg("error scanning history")
		return nil, err
	}
	return history, nil
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/hope-garden/internal/logger"
	"github.com/MKhiriev/hope-garden/models"
)

// contentRepository is the SQL implementation of [ContentRepository] over
// the "exercise" and "advice" tables.
type contentRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewContentRepository constructs a [ContentRepository].
func NewContentRepository(db *DB, logger *logger.Logger) ContentRepository {
	logger.Debug().Msg("creating content repository")
	return &contentRepository{
		db:     db,
		logger: logger,
	}
}

func exerciseDest(e *models.Exercise) []any {
	return []any{&e.ID, &e.Name, &e.Description, &e.VideoURL, &e.CreatedAt}
}

func adviceDest(a *models.Advice) []any {
	return []any{&a.ID, &a.Name, &a.Content, &a.VideoURL, &a.CreatedAt}
}

// ListExercises implements [ContentRepository].
func (r *contentRepository) ListExercises(ctx context.Context) ([]models.Exercise, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectContentQuery(r.db.builder, models.Exercise{}.TableName(), exerciseColumns, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*contentRepository.ListExercises").Msg("error selecting exercises")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	exercises, err := collectRows(rows, exerciseDest)
	if err != nil {
		log.Err(err).Str("func", "*contentRepository.ListExercises").Msg("error scanning exercises")
		return nil, err
	}
	return exercises, nil
}

// GetExercise implements [ContentRepository].
func (r *contentRepository) GetExercise(ctx context.Context, id int64) (models.Exercise, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectContentQuery(r.db.builder, models.Exercise{}.TableName(), exerciseColumns, &id)
	if err != nil {
		return models.Exercise{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var exercise models.Exercise
	err = r.db.QueryRowContext(ctx, query, args...).Scan(exerciseDest(&exercise)...)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Exercise{}, ErrExerciseNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*contentRepository.GetExercise").Int64("id", id).Msg("error selecting exercise")
		return models.Exercise{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return exercise, nil
}

// AddExercise implements [ContentRepository].
func (r *contentRepository) AddExercise(ctx context.Context, name, description, videoURL string) (bool, error) {
	return r.addContent(ctx, "*contentRepository.AddExercise", models.Exercise{}.TableName(), "description", name, description, videoURL)
}

// ListAdvice implements [ContentRepository].
func (r *contentRepository) ListAdvice(ctx context.Context) ([]models.Advice, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectContentQuery(r.db.builder, models.Advice{}.TableName(), adviceColumns, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*contentRepository.ListAdvice").Msg("error selecting advice")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	advice, err := collectRows(rows, adviceDest)
	if err != nil {
		log.Err(err).Str("func", "*contentRepository.ListAdvice").Msg("error scanning advice")
		return nil, err
	}
	return advice, nil
}

// GetAdvice implements [ContentRepository].
func (r *contentRepository) GetAdvice(ctx context.Context, id int64) (models.Advice, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectContentQuery(r.db.builder, models.Advice{}.TableName(), adviceColumns, &id)
	if err != nil {
		return models.Advice{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var advice models.Advice
	err = r.db.QueryRowContext(ctx, query, args...).Scan(adviceDest(&advice)...)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Advice{}, ErrAdviceNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*contentRepository.GetAdvice").Int64("id", id).Msg("error selecting advice")
		return models.Advice{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return advice, nil
}

// AddAdvice implements [ContentRepository].
func (r *contentRepository) AddAdvice(ctx context.Context, name, content, videoURL string) (bool, error) {
	return r.addContent(ctx, "*contentRepository.AddAdvice", models.Advice{}.TableName(), "content", name, content, videoURL)
}

func (r *contentRepository) addContent(ctx context.Context, funcName, table, bodyColumn, name, body, videoURL string) (bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertContentQuery(r.db.builder, table, bodyColumn, name, body, videoURL, r.db.timestamp())
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		if class := r.db.classify(err); class.IsConstraintViolation() {
			log.Warn().Err(err).Str("func", funcName).Stringer("class", class).Msg("content rejected by constraint")
			return false, nil
		}
		log.Err(err).Str("func", funcName).Msg("error inserting content")
		return false, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return true, nil
}

// SeedIfEmpty implements [ContentRepository]. Each table is filled only when
// it has no rows; both tables are handled in one transaction.
func (r *contentRepository) SeedIfEmpty(ctx context.Context) error {
	log := logger.FromContext(ctx)

	err := r.db.inTx(ctx, func(tx *sql.Tx) error {
		seeded, err := r.seedTable(ctx, tx, models.Exercise{}.TableName(), "description", seedExercises)
		if err != nil {
			return err
		}
		if seeded {
			log.Info().Str("func", "*contentRepository.SeedIfEmpty").Int("rows", len(seedExercises)).Msg("exercise table seeded")
		}

		seeded, err = r.seedTable(ctx, tx, models.Advice{}.TableName(), "content", seedAdvice)
		if err != nil {
			return err
		}
		if seeded {
			log.Info().Str("func", "*contentRepository.SeedIfEmpty").Int("rows", len(seedAdvice)).Msg("advice table seeded")
		}
		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "*contentRepository.SeedIfEmpty").Msg("error seeding content")
		return err
	}

	return nil
}

func (r *contentRepository) seedTable(ctx context.Context, tx *sql.Tx, table, bodyColumn string, rows []seedContent) (bool, error) {
	query, args, err := buildCountQuery(r.db.builder, table)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var count int64
	if err = tx.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if count > 0 {
		return false, nil
	}

	createdAt := r.db.timestamp()
	for _, row := range rows {
		query, args, err = buildInsertContentQuery(r.db.builder, table, bodyColumn, row.name, row.body, row.videoURL, createdAt)
		if err != nil {
			return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			return false, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	return true, nil
}

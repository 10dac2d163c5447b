// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/hope-garden/internal/logger"
	"github.com/MKhiriev/hope-garden/internal/store"
	"github.com/MKhiriev/hope-garden/internal/validators"
	"github.com/MKhiriev/hope-garden/models"
)

type contentService struct {
	contentRepository     store.ContentRepository
	viewHistoryRepository store.ViewHistoryRepository
	validator             validators.Validator

	logger *logger.Logger
}

func NewContentService(contentRepository store.ContentRepository, viewHistoryRepository store.ViewHistoryRepository, validator validators.Validator, logger *logger.Logger) ContentService {
	return &contentService{
		contentRepository:     contentRepository,
		viewHistoryRepository: viewHistoryRepository,
		validator:             validator,
		logger:                logger,
	}
}

func (c *contentService) ListExercises(ctx context.Context) ([]models.Exercise, error) {
	return c.contentRepository.ListExercises(ctx)
}

func (c *contentService) GetExercise(ctx context.Context, id int64) (models.Exercise, error) {
	return c.contentRepository.GetExercise(ctx, id)
}

func (c *contentService) OpenExercise(ctx context.Context, identity models.Identity, id int64) (models.Exercise, error) {
	exercise, err := c.contentRepository.GetExercise(ctx, id)
	if err != nil {
		return models.Exercise{}, err
	}

	c.recordView(ctx, identity, models.ItemTypeExercise, exercise.ID, exercise.Name)
	return exercise, nil
}

func (c *contentService) AddExercise(ctx context.Context, req models.ExerciseRequest) error {
	if err := c.validator.Validate(ctx, req); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	ok, err := c.contentRepository.AddExercise(ctx, req.Name, req.Description, req.VideoURL)
	if err != nil {
		return fmt.Errorf("error adding exercise: %w", err)
	}
	if !ok {
		return ErrContentNotSaved
	}
	return nil
}

func (c *contentService) ListAdvice(ctx context.Context) ([]models.Advice, error) {
	return c.contentRepository.ListAdvice(ctx)
}

func (c *contentService) GetAdvice(ctx context.Context, id int64) (models.Advice, error) {
	return c.contentRepository.GetAdvice(ctx, id)
}

func (c *contentService) OpenAdvice(ctx context.Context, identity models.Identity, id int64) (models.Advice, error) {
	advice, err := c.contentRepository.GetAdvice(ctx, id)
	if err != nil {
		return models.Advice{}, err
	}

	c.recordView(ctx, identity, models.ItemTypeAdvice, advice.ID, advice.Name)
	return advice, nil
}

func (c *contentService) AddAdvice(ctx context.Context, req models.AdviceRequest) error {
	if err := c.validator.Validate(ctx, req); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	ok, err := c.contentRepository.AddAdvice(ctx, req.Name, req.Content, req.VideoURL)
	if err != nil {
		return fmt.Errorf("error adding advice: %w", err)
	}
	if !ok {
		return ErrContentNotSaved
	}
	return nil
}

// recordView stores the view of an opened item. A failed record never
// fails the page itself.
func (c *contentService) recordView(ctx context.Context, identity models.Identity, itemType models.ItemType, itemID int64, itemName string) {
	if identity.IsAnonymous() {
		return
	}

	log := logger.FromContext(ctx)

	ok, err := c.viewHistoryRepository.RecordView(ctx, identity.UserID, itemType, itemID, itemName)
	if err != nil {
		log.Err(err).
			Int64("user_id", identity.UserID).
			Str("item_type", itemType.String()).
			Int64("item_id", itemID).
			Msg("error recording view")
		return
	}
	if !ok {
		log.Warn().
			Int64("user_id", identity.UserID).
			Str("item_type", itemType.String()).
			Int64("item_id", itemID).
			Msg("view was not recorded")
	}
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/MKhiriev/hope-garden/internal/config"
	"github.com/MKhiriev/hope-garden/internal/logger"
	"github.com/MKhiriev/hope-garden/internal/session"
	"github.com/MKhiriev/hope-garden/internal/store"
	"github.com/MKhiriev/hope-garden/internal/validators"
)

type Services struct {
	AuthService    AuthService
	ContentService ContentService
	CommentService CommentService
	HistoryService HistoryService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, sessions session.Store, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	validator := validators.NewRequestValidator()

	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, sessions, validator, logger),
		ContentService: NewContentService(storages.ContentRepository, storages.ViewHistoryRepository, validator, logger),
		CommentService: NewCommentService(storages.CommentRepository, validator, logger),
		HistoryService: NewHistoryService(storages.ViewHistoryRepository, logger),
		AppInfoService: appInfoService,
	}, nil
}

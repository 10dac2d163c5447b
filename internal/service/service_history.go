// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/hope-garden/internal/logger"
	"github.com/MKhiriev/hope-garden/internal/session"
	"github.com/MKhiriev/hope-garden/internal/store"
	"github.com/MKhiriev/hope-garden/models"
)

type historyService struct {
	viewHistoryRepository store.ViewHistoryRepository

	logger *logger.Logger
}

func NewHistoryService(viewHistoryRepository store.ViewHistoryRepository, logger *logger.Logger) HistoryService {
	return &historyService{
		viewHistoryRepository: viewHistoryRepository,
		logger:                logger,
	}
}

// ListViewHistory returns the most recent views of identity, newest first.
func (h *historyService) ListViewHistory(ctx context.Context, identity models.Identity) ([]models.ViewHistory, error) {
	if identity.IsAnonymous() {
		return nil, session.ErrLoginRequired
	}
	return h.viewHistoryRepository.ListViewHistory(ctx, identity.UserID)
}

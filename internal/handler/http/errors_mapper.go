// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/hope-garden/internal/logger"
	"github.com/MKhiriev/hope-garden/internal/service"
	"github.com/MKhiriev/hope-garden/internal/session"
	"github.com/MKhiriev/hope-garden/internal/store"
	"github.com/MKhiriev/hope-garden/internal/utils"
	"github.com/MKhiriev/hope-garden/models"
)

var errorStatusMap = map[error]int{
	utils.ErrInvalidJSON: http.StatusBadRequest,

	service.ErrInvalidDataProvided:   http.StatusBadRequest,
	service.ErrWrongCredentials:      http.StatusUnauthorized,
	service.ErrCommentNotSaved:       http.StatusUnprocessableEntity,
	service.ErrContentNotSaved:       http.StatusUnprocessableEntity,
	service.ErrVersionIsNotSpecified: http.StatusInternalServerError,

	session.ErrLoginRequired:   http.StatusUnauthorized,
	session.ErrGeneratingToken: http.StatusInternalServerError,
	ErrNoIdentityInContext:     http.StatusUnauthorized,

	store.ErrEmailAlreadyExists: http.StatusConflict,
	store.ErrUserNotFound:       http.StatusNotFound,
	store.ErrExerciseNotFound:   http.StatusNotFound,
	store.ErrAdviceNotFound:     http.StatusNotFound,
	store.ErrInvalidItemType:    http.StatusBadRequest,

	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrExecutingStatement:   http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrScanningRow:          http.StatusInternalServerError,
	store.ErrScanningRows:         http.StatusInternalServerError,
	store.ErrSealingCredential:    http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

func reasonFromError(err error) string {
	if errors.Is(err, utils.ErrInvalidJSON) {
		return "Invalid JSON was passed"
	}
	return service.Reason(err)
}

// writeError answers the request with the status and user-facing reason of
// err.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	status := statusFromError(err)
	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	utils.WriteJSON(w, models.ErrorResponse{Reason: reasonFromError(err)}, status)
}

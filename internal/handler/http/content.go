// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/hope-garden/internal/logger"
	"github.com/MKhiriev/hope-garden/internal/store"
	"github.com/MKhiriev/hope-garden/internal/utils"
	"github.com/MKhiriev/hope-garden/models"
)

func (h *Handler) listExercises(w http.ResponseWriter, r *http.Request) {
	exercises, err := h.services.ContentService.ListExercises(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, exercises, http.StatusOK)
}

// getExercise returns the exercise and records the view. A non-numeric id
// is answered like a missing one.
func (h *Handler) getExercise(w http.ResponseWriter, r *http.Request) {
	identity, err := identityFromRequest(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	id, ok := idFromURL(r)
	if !ok {
		h.writeError(w, r, store.ErrExerciseNotFound)
		return
	}

	exercise, err := h.services.ContentService.OpenExercise(r.Context(), identity, id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, exercise, http.StatusOK)
}

func (h *Handler) addExercise(w http.ResponseWriter, r *http.Request) {
	var req models.ExerciseRequest
	if err := utils.DecodeJSON(w, r, &req); err != nil {
		logger.FromRequest(r).Err(err).Msg("invalid JSON was passed")
		h.writeError(w, r, err)
		return
	}

	if err := h.services.ContentService.AddExercise(r.Context(), req); err != nil {
		h.writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusCreated)
}

func (h *Handler) listAdvice(w http.ResponseWriter, r *http.Request) {
	advice, err := h.services.ContentService.ListAdvice(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, advice, http.StatusOK)
}

// getAdvice returns the advice and records the view. A non-numeric id is
// answered like a missing one.
func (h *Handler) getAdvice(w http.ResponseWriter, r *http.Request) {
	identity, err := identityFromRequest(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	id, ok := idFromURL(r)
	if !ok {
		h.writeError(w, r, store.ErrAdviceNotFound)
		return
	}

	advice, err := h.services.ContentService.OpenAdvice(r.Context(), identity, id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, advice, http.StatusOK)
}

func (h *Handler) addAdvice(w http.ResponseWriter, r *http.Request) {
	var req models.AdviceRequest
	if err := utils.DecodeJSON(w, r, &req); err != nil {
		logger.FromRequest(r).Err(err).Msg("invalid JSON was passed")
		h.writeError(w, r, err)
		return
	}

	if err := h.services.ContentService.AddAdvice(r.Context(), req); err != nil {
		h.writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusCreated)
}

func idFromURL(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

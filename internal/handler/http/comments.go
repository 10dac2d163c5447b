// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/hope-garden/internal/logger"
	"github.com/MKhiriev/hope-garden/internal/utils"
	"github.com/MKhiriev/hope-garden/models"
)

func (h *Handler) listComments(w http.ResponseWriter, r *http.Request) {
	comments, err := h.services.CommentService.ListComments(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, comments, http.StatusOK)
}

func (h *Handler) postComment(w http.ResponseWriter, r *http.Request) {
	identity, err := identityFromRequest(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	var req models.CommentRequest
	if err = utils.DecodeJSON(w, r, &req); err != nil {
		logger.FromRequest(r).Err(err).Msg("invalid JSON was passed")
		h.writeError(w, r, err)
		return
	}

	if err = h.services.CommentService.PostComment(r.Context(), identity, req); err != nil {
		h.writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusCreated)
}

func (h *Handler) listUserComments(w http.ResponseWriter, r *http.Request) {
	identity, err := identityFromRequest(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	comments, err := h.services.CommentService.ListUserComments(r.Context(), identity)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, comments, http.StatusOK)
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/hope-garden/internal/logger"
	"github.com/MKhiriev/hope-garden/internal/utils"
	"github.com/MKhiriev/hope-garden/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.RegisterRequest
	if err := utils.DecodeJSON(w, r, &req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		h.writeError(w, r, err)
		return
	}

	user, err := h.services.AuthService.Register(ctx, req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	log.Debug().Int64("id", user.UserID).Msg("user successfully registered")
	utils.WriteJSON(w, user, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := utils.DecodeJSON(w, r, &req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		h.writeError(w, r, err)
		return
	}

	token, identity, err := h.services.AuthService.Login(ctx, req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	log.Debug().Int64("id", identity.UserID).Msg("user successfully logged in")

	h.setSessionCookie(w, token)
	utils.WriteJSON(w, identity, http.StatusOK)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	h.services.AuthService.Logout(r.Context(), h.sessionToken(r))
	h.clearSessionCookie(w)
	w.WriteHeader(http.StatusNoContent)
}

// me reports the identity of the session owner, or 204 for anonymous
// requests.
func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	identity, ok := h.services.AuthService.CurrentIdentity(r.Context(), h.sessionToken(r))
	if !ok {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	utils.WriteJSON(w, identity, http.StatusOK)
}

func identityFromRequest(r *http.Request) (models.Identity, error) {
	identity, ok := utils.GetIdentityFromContext(r.Context())
	if !ok {
		return models.Identity{}, ErrNoIdentityInContext
	}
	return identity, nil
}

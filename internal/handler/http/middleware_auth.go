// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/hope-garden/internal/logger"
	"github.com/MKhiriev/hope-garden/internal/utils"
)

// auth is an HTTP middleware that admits only requests carrying a live
// session cookie.
//
// The identity bound to the session is stored in the request context under
// [utils.IdentityCtxKey] before delegating to the next handler. Requests
// without a session, or with an unknown or destroyed token, are answered
// with 302 Found pointing at the configured login path.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		identity, err := h.services.AuthService.RequireAuth(r.Context(), h.sessionToken(r))
		if err != nil {
			log.Debug().Err(err).Str("uri", r.RequestURI).Msg("redirecting to login")
			http.Redirect(w, r, h.loginPath, http.StatusFound)
			return
		}

		ctx := utils.WithIdentity(r.Context(), identity)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

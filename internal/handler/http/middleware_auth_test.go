// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/hope-garden/internal/session"
	"github.com/MKhiriev/hope-garden/internal/utils"
	"github.com/MKhiriev/hope-garden/models"
)

func TestAuth_PutsIdentityIntoContext(t *testing.T) {
	h, m := newMockedHandler(t)
	m.expectAuthenticated()

	var (
		called bool
		got    models.Identity
		ok     bool
	)
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		got, ok = utils.GetIdentityFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(sessionCookie())
	rec := httptest.NewRecorder()

	h.auth(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.True(t, called)
	require.True(t, ok)
	assert.Equal(t, testIdentity, got)
}

func TestAuth_RedirectsToLogin(t *testing.T) {
	tests := []struct {
		name   string
		cookie *http.Cookie
		token  string
	}{
		{name: "no cookie", token: ""},
		{name: "unknown token", cookie: sessionCookie(), token: testToken},
		{name: "other cookie name", cookie: &http.Cookie{Name: "other", Value: testToken}, token: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newMockedHandler(t)
			m.auth.EXPECT().RequireAuth(gomock.Any(), tt.token).Return(models.Identity{}, session.ErrLoginRequired)

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				t.Fatal("next handler must not be called")
			})

			req := httptest.NewRequest(http.MethodGet, "/api/history", nil)
			if tt.cookie != nil {
				req.AddCookie(tt.cookie)
			}
			rec := httptest.NewRecorder()

			h.auth(next).ServeHTTP(rec, req)

			assert.Equal(t, http.StatusFound, rec.Code)
			assert.Equal(t, "/login", rec.Header().Get("Location"))
		})
	}
}

func TestIdentityFromRequest_Missing(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	_, err := identityFromRequest(req)

	assert.ErrorIs(t, err, ErrNoIdentityInContext)
}

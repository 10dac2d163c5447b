// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/hope-garden/internal/config"
	"github.com/MKhiriev/hope-garden/internal/service"
	"github.com/MKhiriev/hope-garden/internal/store"
	"github.com/MKhiriev/hope-garden/internal/validators"
	"github.com/MKhiriev/hope-garden/models"
)

func decodeReason(t *testing.T, body []byte) string {
	t.Helper()
	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(body, &resp))
	return resp.Reason
}

// ─────────────────────────────────────────────
// register
// ─────────────────────────────────────────────

func TestRegister_Created(t *testing.T) {
	h, m := newMockedHandler(t)

	m.auth.EXPECT().
		Register(gomock.Any(), models.RegisterRequest{Name: "Ann", Email: "ann@example.com", Password: "secret"}).
		Return(models.User{UserID: 1, Name: "Ann", Email: "ann@example.com", Password: "secret"}, nil)

	rec := doRequest(h.Init(), http.MethodPost, "/api/user/register", `{"name":"Ann","email":"ann@example.com","password":"secret"}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.NotContains(t, rec.Body.String(), "secret", "password must never be serialized")

	var user models.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &user))
	assert.Equal(t, int64(1), user.UserID)
}

func TestRegister_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		serviceErr error
		wantStatus int
		wantReason string
	}{
		{
			name:       "invalid JSON",
			body:       `{"name":`,
			wantStatus: http.StatusBadRequest,
			wantReason: "Invalid JSON was passed",
		},
		{
			name:       "short password",
			body:       `{"name":"Ann","email":"a@b.c","password":"123"}`,
			serviceErr: fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, validators.ErrPasswordTooShort),
			wantStatus: http.StatusBadRequest,
			wantReason: "Password must be at least 6 characters long",
		},
		{
			name:       "duplicate email",
			body:       `{"name":"Ann","email":"a@b.c","password":"secret"}`,
			serviceErr: fmt.Errorf("user creation ended with error: %w", store.ErrEmailAlreadyExists),
			wantStatus: http.StatusConflict,
			wantReason: "A user with this email is already registered",
		},
		{
			name:       "storage failure",
			body:       `{"name":"Ann","email":"a@b.c","password":"secret"}`,
			serviceErr: fmt.Errorf("user creation ended with error: %w", store.ErrExecutingStatement),
			wantStatus: http.StatusInternalServerError,
			wantReason: service.DefaultReason,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newMockedHandler(t)
			if tt.serviceErr != nil {
				m.auth.EXPECT().Register(gomock.Any(), gomock.Any()).Return(models.User{}, tt.serviceErr)
			}

			rec := doRequest(h.Init(), http.MethodPost, "/api/user/register", tt.body)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantReason, decodeReason(t, rec.Body.Bytes()))
		})
	}
}

// ─────────────────────────────────────────────
// login / logout / me
// ─────────────────────────────────────────────

func TestLogin_SetsSessionCookie(t *testing.T) {
	h, m := newMockedHandler(t)

	m.auth.EXPECT().
		Login(gomock.Any(), models.LoginRequest{Email: "ann@example.com", Password: "secret"}).
		Return(testToken, testIdentity, nil)

	rec := doRequest(h.Init(), http.MethodPost, "/api/user/login", `{"email":"ann@example.com","password":"secret"}`)

	require.Equal(t, http.StatusOK, rec.Code)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	c := cookies[0]
	assert.Equal(t, config.DefaultSessionCookieName, c.Name)
	assert.Equal(t, testToken, c.Value)
	assert.Equal(t, "/", c.Path)
	assert.True(t, c.HttpOnly)
	assert.False(t, c.Secure)
	assert.Equal(t, http.SameSiteLaxMode, c.SameSite)

	var identity models.Identity
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &identity))
	assert.Equal(t, testIdentity, identity)
}

func TestLogin_WrongCredentials(t *testing.T) {
	h, m := newMockedHandler(t)

	m.auth.EXPECT().Login(gomock.Any(), gomock.Any()).Return("", models.Identity{}, service.ErrWrongCredentials)

	rec := doRequest(h.Init(), http.MethodPost, "/api/user/login", `{"email":"ann@example.com","password":"bad"}`)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Empty(t, rec.Result().Cookies())
	assert.Equal(t, "Invalid email or password", decodeReason(t, rec.Body.Bytes()))
}

func TestLogout_DeletesCookie(t *testing.T) {
	h, m := newMockedHandler(t)

	m.auth.EXPECT().Logout(gomock.Any(), testToken)

	rec := doRequest(h.Init(), http.MethodPost, "/api/user/logout", "", sessionCookie())

	assert.Equal(t, http.StatusNoContent, rec.Code)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, config.DefaultSessionCookieName, cookies[0].Name)
	assert.Equal(t, -1, cookies[0].MaxAge)
}

func TestLogout_WithoutCookie(t *testing.T) {
	h, m := newMockedHandler(t)

	m.auth.EXPECT().Logout(gomock.Any(), "")

	rec := doRequest(h.Init(), http.MethodPost, "/api/user/logout", "")

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestMe(t *testing.T) {
	h, m := newMockedHandler(t)
	router := h.Init()

	m.auth.EXPECT().CurrentIdentity(gomock.Any(), testToken).Return(testIdentity, true)
	m.auth.EXPECT().CurrentIdentity(gomock.Any(), "").Return(models.Identity{}, false)

	rec := doRequest(router, http.MethodGet, "/api/user/me", "", sessionCookie())
	require.Equal(t, http.StatusOK, rec.Code)

	var identity models.Identity
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &identity))
	assert.Equal(t, testIdentity, identity)

	rec = doRequest(router, http.MethodGet, "/api/user/me", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}

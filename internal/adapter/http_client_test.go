// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/hope-garden/internal/logger"
	"github.com/MKhiriev/hope-garden/models"
)

func newTestAdapter(t *testing.T, serverURL string) ServerAdapter {
	t.Helper()

	a, err := NewHTTPServerAdapter(HTTPClientConfig{BaseURL: serverURL}, logger.Nop())
	require.NoError(t, err)
	return a
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// ── Auth ──────────────────────────────────────────────────────────────────────

func TestRegister_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/user/register", r.URL.Path)

		var req models.RegisterRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "ann@example.com", req.Email)

		writeJSON(w, http.StatusCreated, models.User{UserID: 7, Name: req.Name, Email: req.Email})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.Register(context.Background(), models.RegisterRequest{Name: "Ann", Email: "ann@example.com", Password: "secret1"})

	require.NoError(t, err)
	assert.Equal(t, int64(7), got.UserID)
	assert.Equal(t, "Ann", got.Name)
}

func TestRegister_Conflict(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusConflict, models.ErrorResponse{Reason: "A user with this email is already registered"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Register(context.Background(), models.RegisterRequest{Email: "ann@example.com"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConflict)
	assert.Contains(t, err.Error(), "already registered")
}

func TestLogin_KeepsSessionCookie(t *testing.T) {
	const token = "abc123"

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/user/login":
			http.SetCookie(w, &http.Cookie{Name: "session_id", Value: token, Path: "/", HttpOnly: true})
			writeJSON(w, http.StatusOK, models.Identity{UserID: 1, Name: "Ann", Email: "ann@example.com"})
		case "/api/user/me":
			c, err := r.Cookie("session_id")
			if err != nil || c.Value != token {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			writeJSON(w, http.StatusOK, models.Identity{UserID: 1, Name: "Ann", Email: "ann@example.com"})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	ctx := context.Background()

	_, ok, err := a.Me(ctx)
	require.NoError(t, err)
	assert.False(t, ok, "anonymous before login")

	identity, err := a.Login(ctx, models.LoginRequest{Email: "ann@example.com", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), identity.UserID)

	me, ok, err := a.Me(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, identity, me)
}

func TestLogin_WrongCredentials(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusUnauthorized, models.ErrorResponse{Reason: "Invalid email or password"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Login(context.Background(), models.LoginRequest{Email: "ann@example.com", Password: "nope"})

	require.Error(t, err)
	assert.True(t, IsUnauthorized(err))
}

func TestLogout_NoContent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/user/logout", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	assert.NoError(t, newTestAdapter(t, srv.URL).Logout(context.Background()))
}

// ── Content ───────────────────────────────────────────────────────────────────

func TestListExercises_Success(t *testing.T) {
	want := []models.Exercise{{ID: 1, Name: "Breathing"}, {ID: 2, Name: "Stretching"}}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/exercises", r.URL.Path)
		writeJSON(w, http.StatusOK, want)
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL).ListExercises(context.Background())

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Stretching", got[1].Name)
}

func TestGetExercise_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/exercises/99", r.URL.Path)
		writeJSON(w, http.StatusNotFound, models.ErrorResponse{Reason: "Exercise not found"})
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).GetExercise(context.Background(), 99)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "Exercise not found")
}

func TestGetAdvice_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/advice/3", r.URL.Path)
		writeJSON(w, http.StatusOK, models.Advice{ID: 3, Name: "Sleep"})
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL).GetAdvice(context.Background(), 3)

	require.NoError(t, err)
	assert.Equal(t, "Sleep", got.Name)
}

func TestAddAdvice_BadRequest(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Reason: "Name, text and video are required"})
	}))
	defer srv.Close()

	err := newTestAdapter(t, srv.URL).AddAdvice(context.Background(), models.AdviceRequest{})

	assert.ErrorIs(t, err, ErrBadRequest)
}

func TestAddExercise_Created(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	err := newTestAdapter(t, srv.URL).AddExercise(context.Background(), models.ExerciseRequest{Name: "a", Description: "b", VideoURL: "c"})

	assert.NoError(t, err)
}

// ── Comments & history ───────────────────────────────────────────────────────

func TestPostComment_NotSaved(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusUnprocessableEntity, models.ErrorResponse{Reason: "The comment was not saved. Please try again."})
	}))
	defer srv.Close()

	err := newTestAdapter(t, srv.URL).PostComment(context.Background(), models.CommentRequest{FirstName: "A", LastName: "B", Comment: "c"})

	assert.ErrorIs(t, err, ErrNotSaved)
}

func TestHistory_RedirectMeansUnauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/login" {
			t.Error("redirect must not be followed")
		}
		http.Redirect(w, r, "/login", http.StatusFound)
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).History(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Contains(t, err.Error(), "/login")
}

func TestListUserComments_InternalServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Reason: "Internal server error. Please try again later."})
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).ListUserComments(context.Background())

	assert.ErrorIs(t, err, ErrInternalServerError)
}

func TestVersion_PlainText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte("1.4.0"))
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL).Version(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "1.4.0", got)
}

func TestMapHTTPError_UnknownStatusFallsBackToStatusText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).ListComments(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "http 418")
	assert.Contains(t, err.Error(), http.StatusText(http.StatusTeapot))
}

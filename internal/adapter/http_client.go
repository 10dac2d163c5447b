// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/hope-garden/internal/logger"
	"github.com/MKhiriev/hope-garden/models"
)

const (
	DefaultBaseURL = "http://localhost:8000"
	DefaultTimeout = 15 * time.Second
)

type HTTPClientConfig struct {
	BaseURL string
	Timeout time.Duration
}

type httpServerAdapter struct {
	client *resty.Client
	logger *logger.Logger
}

// NewHTTPServerAdapter builds a [ServerAdapter] over resty. Redirects are
// not followed so that a redirect to the login page surfaces as
// [ErrUnauthorized].
func NewHTTPServerAdapter(cfg HTTPClientConfig, logger *logger.Logger) (ServerAdapter, error) {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}

	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("create cookie jar: %w", err)
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout).
		SetCookieJar(jar).
		SetRedirectPolicy(resty.RedirectPolicyFunc(func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		}))

	return &httpServerAdapter{client: cli, logger: logger}, nil
}

func (h *httpServerAdapter) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	var user models.User
	if err := h.postJSON(ctx, "/api/user/register", req, &user); err != nil {
		return models.User{}, fmt.Errorf("register request: %w", err)
	}
	return user, nil
}

func (h *httpServerAdapter) Login(ctx context.Context, req models.LoginRequest) (models.Identity, error) {
	var identity models.Identity
	if err := h.postJSON(ctx, "/api/user/login", req, &identity); err != nil {
		return models.Identity{}, fmt.Errorf("login request: %w", err)
	}

	h.logger.Debug().Int64("user_id", identity.UserID).Msg("logged in")
	return identity, nil
}

func (h *httpServerAdapter) Logout(ctx context.Context) error {
	if err := h.postJSON(ctx, "/api/user/logout", nil, nil); err != nil {
		return fmt.Errorf("logout request: %w", err)
	}
	return nil
}

func (h *httpServerAdapter) Me(ctx context.Context) (models.Identity, bool, error) {
	var identity models.Identity
	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&identity).
		Get("/api/user/me")
	if err != nil {
		return models.Identity{}, false, fmt.Errorf("me request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Identity{}, false, err
	}

	if resp.StatusCode() == http.StatusNoContent {
		return models.Identity{}, false, nil
	}
	return identity, true, nil
}

func (h *httpServerAdapter) ListExercises(ctx context.Context) ([]models.Exercise, error) {
	var exercises []models.Exercise
	if err := h.getJSON(ctx, "/api/exercises", &exercises); err != nil {
		return nil, fmt.Errorf("list exercises request: %w", err)
	}
	return exercises, nil
}

func (h *httpServerAdapter) GetExercise(ctx context.Context, id int64) (models.Exercise, error) {
	var exercise models.Exercise
	if err := h.getJSON(ctx, "/api/exercises/"+strconv.FormatInt(id, 10), &exercise); err != nil {
		return models.Exercise{}, fmt.Errorf("get exercise request: %w", err)
	}
	return exercise, nil
}

func (h *httpServerAdapter) AddExercise(ctx context.Context, req models.ExerciseRequest) error {
	if err := h.postJSON(ctx, "/api/exercises", req, nil); err != nil {
		return fmt.Errorf("add exercise request: %w", err)
	}
	return nil
}

func (h *httpServerAdapter) ListAdvice(ctx context.Context) ([]models.Advice, error) {
	var advice []models.Advice
	if err := h.getJSON(ctx, "/api/advice", &advice); err != nil {
		return nil, fmt.Errorf("list advice request: %w", err)
	}
	return advice, nil
}

func (h *httpServerAdapter) GetAdvice(ctx context.Context, id int64) (models.Advice, error) {
	var advice models.Advice
	if err := h.getJSON(ctx, "/api/advice/"+strconv.FormatInt(id, 10), &advice); err != nil {
		return models.Advice{}, fmt.Errorf("get advice request: %w", err)
	}
	return advice, nil
}

func (h *httpServerAdapter) AddAdvice(ctx context.Context, req models.AdviceRequest) error {
	if err := h.postJSON(ctx, "/api/advice", req, nil); err != nil {
		return fmt.Errorf("add advice request: %w", err)
	}
	return nil
}

func (h *httpServerAdapter) ListComments(ctx context.Context) ([]models.Comment, error) {
	var comments []models.Comment
	if err := h.getJSON(ctx, "/api/comments", &comments); err != nil {
		return nil, fmt.Errorf("list comments request: %w", err)
	}
	return comments, nil
}

func (h *httpServerAdapter) PostComment(ctx context.Context, req models.CommentRequest) error {
	if err := h.postJSON(ctx, "/api/comments", req, nil); err != nil {
		return fmt.Errorf("post comment request: %w", err)
	}
	return nil
}

func (h *httpServerAdapter) ListUserComments(ctx context.Context) ([]models.Comment, error) {
	var comments []models.Comment
	if err := h.getJSON(ctx, "/api/user/comments", &comments); err != nil {
		return nil, fmt.Errorf("list user comments request: %w", err)
	}
	return comments, nil
}

func (h *httpServerAdapter) History(ctx context.Context) ([]models.ViewHistory, error) {
	var history []models.ViewHistory
	if err := h.getJSON(ctx, "/api/history", &history); err != nil {
		return nil, fmt.Errorf("history request: %w", err)
	}
	return history, nil
}

func (h *httpServerAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().SetContext(ctx).Get("/api/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}
	return strings.TrimSpace(resp.String()), nil
}

func (h *httpServerAdapter) getJSON(ctx context.Context, path string, result any) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		SetResult(result).
		Get(path)
	if err != nil {
		return err
	}
	return mapHTTPError(resp)
}

func (h *httpServerAdapter) postJSON(ctx context.Context, path string, body, result any) error {
	req := h.client.R().SetContext(ctx)
	if body != nil {
		req.SetHeader("Content-Type", "application/json").SetBody(body)
	}
	if result != nil {
		req.SetResult(result)
	}

	resp, err := req.Post(path)
	if err != nil {
		return err
	}
	return mapHTTPError(resp)
}

// IsUnauthorized reports whether err means the session is missing or expired.
func IsUnauthorized(err error) bool {
	return errors.Is(err, ErrUnauthorized)
}

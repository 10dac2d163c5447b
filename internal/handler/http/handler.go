// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"time"

	"github.com/MKhiriev/hope-garden/internal/config"
	"github.com/MKhiriev/hope-garden/internal/logger"
	"github.com/MKhiriev/hope-garden/internal/service"
	"github.com/MKhiriev/hope-garden/internal/utils"
)

type Handler struct {
	services *service.Services

	// cookieName is the name of the cookie carrying the session token.
	cookieName string
	// secureCookie marks the session cookie as HTTPS only.
	secureCookie bool
	// loginPath is where anonymous requests to protected routes are sent.
	loginPath string

	requestTimeout time.Duration
	traceIDs       *utils.UUIDGenerator

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.StructuredConfig, logger *logger.Logger) *Handler {
	h := &Handler{
		services:       services,
		cookieName:     cfg.App.SessionCookieName,
		secureCookie:   cfg.App.SecureCookie,
		loginPath:      cfg.App.LoginPath,
		requestTimeout: cfg.Server.RequestTimeout,
		traceIDs:       utils.NewUUIDGenerator(),
		logger:         logger,
	}

	if h.cookieName == "" {
		h.cookieName = config.DefaultSessionCookieName
	}
	if h.loginPath == "" {
		h.loginPath = config.DefaultLoginPath
	}

	logger.Info().Msg("http handler created")
	return h
}

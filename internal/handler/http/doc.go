// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the HTTP transport layer of the application.
//
// It exposes route wiring, JSON request handlers and the middleware chain:
// request tracing, access logging, request timeouts and the session gate
// that redirects anonymous requests to the login page. Handlers decode the
// request, call the service layer and map service errors to status codes
// and user-facing reasons.
package http

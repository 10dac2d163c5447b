// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import "errors"

var (
	// ErrLoginRequired is returned by [Gate.RequireAuth] when the request
	// carries no valid session. Transports answer it with a redirect to the
	// login page.
	ErrLoginRequired = errors.New("login required")

	// ErrGeneratingToken is returned when the random source fails.
	ErrGeneratingToken = errors.New("failed to generate session token")
)

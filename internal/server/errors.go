// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	// errNoServersAreCreated is returned when no transport address is configured.
	errNoServersAreCreated = errors.New("no servers are created")
	// errNoHandler is returned when an address is configured but the matching
	// handler was not built.
	errNoHandler = errors.New("handler for an enabled transport is missing")
)

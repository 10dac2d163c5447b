// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "context"

// Server runs the enabled transports.
type Server interface {
	// RunServer serves until SIGTERM, SIGINT or SIGQUIT and then shuts down.
	RunServer()

	// Run serves until ctx is done or a transport fails. The returned error
	// is the transport failure, if any.
	Run(ctx context.Context) error

	// Shutdown stops every transport. Calling it more than once is safe.
	Shutdown()
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// ErrNoIdentityInContext is returned by handlers behind the auth middleware
// when the request context carries no identity.
var ErrNoIdentityInContext = errors.New("no identity in request context")

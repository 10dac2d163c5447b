// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import "github.com/MKhiriev/hope-garden/models"

//go:generate mockgen -source=interfaces.go -destination=../mock/session_store_mock.go -package=mock

// Store maps session tokens to identities. Implementations must be safe for
// concurrent use.
type Store interface {
	// Create issues a new unguessable token bound to identity.
	Create(identity models.Identity) (string, error)
	// Resolve returns the identity bound to token. The empty token and
	// unknown tokens resolve to (zero, false).
	Resolve(token string) (models.Identity, bool)
	// Destroy forgets token. Unknown tokens are ignored.
	Destroy(token string)
	// Len returns the number of live sessions.
	Len() int
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import "github.com/MKhiriev/hope-garden/models"

// Gate answers "who is this request" and "may it reach protected content"
// from the session token the request carries.
type Gate struct {
	store Store
}

// NewGate returns a Gate over store.
func NewGate(store Store) *Gate {
	return &Gate{store: store}
}

// CurrentIdentity resolves token. A missing or unknown token is anonymous.
func (g *Gate) CurrentIdentity(token string) (models.Identity, bool) {
	return g.store.Resolve(token)
}

// RequireAuth returns the identity bound to token or [ErrLoginRequired].
func (g *Gate) RequireAuth(token string) (models.Identity, error) {
	identity, ok := g.store.Resolve(token)
	if !ok {
		return models.Identity{}, ErrLoginRequired
	}
	return identity, nil
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"sync"

	"github.com/MKhiriev/hope-garden/models"
)

// tokenBytes is the amount of randomness in a token (256 bits).
const tokenBytes = 32

// memoryStore is the in-process [Store].
type memoryStore struct {
	mu       sync.RWMutex
	sessions map[string]models.Identity
	random   io.Reader
}

// NewMemoryStore returns an empty in-memory [Store].
func NewMemoryStore() Store {
	return newMemoryStore(rand.Reader)
}

func newMemoryStore(random io.Reader) *memoryStore {
	return &memoryStore{
		sessions: make(map[string]models.Identity),
		random:   random,
	}
}

// Create implements [Store]. Tokens are 32 random bytes, hex-encoded.
func (s *memoryStore) Create(identity models.Identity) (string, error) {
	buf := make([]byte, tokenBytes)
	if _, err := io.ReadFull(s.random, buf); err != nil {
		return "", fmt.Errorf("%w: %w", ErrGeneratingToken, err)
	}
	token := hex.EncodeToString(buf)

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, taken := s.sessions[token]; taken {
		return "", fmt.Errorf("%w: token collision", ErrGeneratingToken)
	}
	s.sessions[token] = identity

	return token, nil
}

// Resolve implements [Store].
func (s *memoryStore) Resolve(token string) (models.Identity, bool) {
	if token == "" {
		return models.Identity{}, false
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	identity, ok := s.sessions[token]
	return identity, ok
}

// Destroy implements [Store].
func (s *memoryStore) Destroy(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, token)
}

// Len implements [Store].
func (s *memoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.sessions)
}

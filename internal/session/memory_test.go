// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import (
	"bytes"
	"encoding/hex"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/hope-garden/models"
)

var ann = models.Identity{UserID: 1, Name: "Ann", Email: "ann@example.com"}

func TestMemoryStore_CreateResolveDestroy(t *testing.T) {
	s := NewMemoryStore()

	token, err := s.Create(ann)
	require.NoError(t, err)

	got, ok := s.Resolve(token)
	require.True(t, ok)
	assert.Equal(t, ann, got)
	assert.Equal(t, 1, s.Len())

	s.Destroy(token)

	_, ok = s.Resolve(token)
	assert.False(t, ok)
	assert.Zero(t, s.Len())
}

func TestMemoryStore_TokenFormat(t *testing.T) {
	s := NewMemoryStore()

	token, err := s.Create(ann)
	require.NoError(t, err)

	assert.Len(t, token, 64)
	raw, err := hex.DecodeString(token)
	require.NoError(t, err)
	assert.Len(t, raw, tokenBytes)
}

func TestMemoryStore_TokensAreDistinct(t *testing.T) {
	s := NewMemoryStore()

	seen := make(map[string]struct{})
	for range 1000 {
		token, err := s.Create(ann)
		require.NoError(t, err)
		_, dup := seen[token]
		require.False(t, dup)
		seen[token] = struct{}{}
	}
	assert.Equal(t, 1000, s.Len())
}

func TestMemoryStore_SameIdentityManySessions(t *testing.T) {
	s := NewMemoryStore()

	first, err := s.Create(ann)
	require.NoError(t, err)
	second, err := s.Create(ann)
	require.NoError(t, err)

	s.Destroy(first)

	got, ok := s.Resolve(second)
	require.True(t, ok)
	assert.Equal(t, ann, got)
}

func TestMemoryStore_ResolveUnknownAndEmpty(t *testing.T) {
	s := NewMemoryStore()

	_, ok := s.Resolve("")
	assert.False(t, ok)

	_, ok = s.Resolve("deadbeef")
	assert.False(t, ok)

	// destroying an unknown token is a no-op
	s.Destroy("deadbeef")
	s.Destroy("")
	assert.Zero(t, s.Len())
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("entropy exhausted") }

func TestMemoryStore_RandomFailure(t *testing.T) {
	s := newMemoryStore(failingReader{})

	token, err := s.Create(ann)
	assert.ErrorIs(t, err, ErrGeneratingToken)
	assert.Empty(t, token)
	assert.Zero(t, s.Len())
}

func TestMemoryStore_Collision(t *testing.T) {
	// the same 64 zero bytes are handed out twice
	s := newMemoryStore(bytes.NewReader(make([]byte, 2*tokenBytes)))

	_, err := s.Create(ann)
	require.NoError(t, err)

	_, err = s.Create(ann)
	assert.ErrorIs(t, err, ErrGeneratingToken)
	assert.Equal(t, 1, s.Len())
}

func TestMemoryStore_Concurrent(t *testing.T) {
	s := NewMemoryStore()

	const workers = 64
	var wg sync.WaitGroup
	tokens := make(chan string, workers)

	for i := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			identity := models.Identity{UserID: int64(i + 1)}
			token, err := s.Create(identity)
			if err != nil {
				t.Error(err)
				return
			}
			if got, ok := s.Resolve(token); !ok || got != identity {
				t.Errorf("resolve %d: got %+v, %v", i, got, ok)
			}
			tokens <- token
		}()
	}
	wg.Wait()
	close(tokens)

	assert.Equal(t, workers, s.Len())

	for token := range tokens {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.Destroy(token)
		}()
	}
	wg.Wait()

	assert.Zero(t, s.Len())
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	sq "github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/hope-garden/internal/config"
	"github.com/MKhiriev/hope-garden/internal/logger"
	"github.com/MKhiriev/hope-garden/migrations"
)

var fixedTime = time.Date(2026, 3, 14, 9, 26, 53, 589793000, time.UTC)

// newMockDB returns a PostgreSQL-flavoured DB backed by sqlmock.
func newMockDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	db := newDB(conn, migrations.DialectPostgres, sq.Dollar, NewPostgresErrorClassifier(), logger.Nop())
	db.now = func() time.Time { return fixedTime }
	return db, mock
}

// stepClock returns a strictly increasing time on every call.
type stepClock struct {
	mu   sync.Mutex
	next time.Time
	step time.Duration
}

func newStepClock() *stepClock {
	return &stepClock{next: fixedTime, step: time.Millisecond}
}

func (c *stepClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := c.next
	c.next = c.next.Add(c.step)
	return now
}

// newTestSQLiteDB opens a migrated SQLite database in a fresh temporary
// directory. The parent directory of the file does not exist beforehand.
func newTestSQLiteDB(t *testing.T) (*DB, *stepClock) {
	t.Helper()
	ctx := context.Background()

	cfg := config.DB{
		Driver: config.DriverSQLite,
		DSN:    filepath.Join(t.TempDir(), "data", "advice.db"),
	}
	db, err := NewConnectSQLite(ctx, cfg, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, db.Migrate(ctx))

	clock := newStepClock()
	db.now = clock.Now
	return db, clock
}

// failingVerifier cannot seal any password.
type failingVerifier struct{}

var errSeal = errors.New("seal failed")

func (failingVerifier) Seal(string) (string, error) { return "", errSeal }
func (failingVerifier) Verify(string, string) bool  { return false }

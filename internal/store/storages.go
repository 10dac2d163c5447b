// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/hope-garden/internal/config"
	"github.com/MKhiriev/hope-garden/internal/crypto"
	"github.com/MKhiriev/hope-garden/internal/logger"
)

// Storages groups every repository of the application over one database.
type Storages struct {
	UserRepository        UserRepository
	ContentRepository     ContentRepository
	CommentRepository     CommentRepository
	ViewHistoryRepository ViewHistoryRepository

	db *DB
}

// NewStorages connects to the database selected by cfg, brings the schema up
// to date and, unless cfg.SkipSeed is set, seeds the empty content tables.
// Any failure here is fatal for the caller.
func NewStorages(ctx context.Context, cfg config.DB, verifier crypto.CredentialVerifier, log *logger.Logger) (*Storages, error) {
	var (
		db  *DB
		err error
	)

	switch cfg.Driver {
	case config.DriverSQLite:
		db, err = NewConnectSQLite(ctx, cfg, log)
	case config.DriverPostgres:
		db, err = NewConnectPostgres(ctx, cfg, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, cfg.Driver)
	}
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(ctx); err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("error migrating database")
		db.Close()
		return nil, err
	}

	storages := NewStoragesFromDB(db, verifier, log)

	if !cfg.SkipSeed {
		if err = storages.ContentRepository.SeedIfEmpty(ctx); err != nil {
			db.Close()
			return nil, fmt.Errorf("error seeding content: %w", err)
		}
	}

	return storages, nil
}

// NewStoragesFromDB builds the repositories over an already migrated db.
func NewStoragesFromDB(db *DB, verifier crypto.CredentialVerifier, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository:        NewUserRepository(db, verifier, log),
		ContentRepository:     NewContentRepository(db, log),
		CommentRepository:     NewCommentRepository(db, log),
		ViewHistoryRepository: NewViewHistoryRepository(db, log),
		db:                    db,
	}
}

// Ping checks that the database is reachable.
func (s *Storages) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close releases the database connections.
func (s *Storages) Close() error {
	return s.db.Close()
}

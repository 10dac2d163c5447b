// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container of the
// hope-garden server. It aggregates all sub-configurations and is populated
// by merging defaults, environment variables, command-line flags and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings: sessions, credentials and the
	// application version.
	App App `envPrefix:"APP_"`

	// Storage holds configuration of the relational store.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP and
	// gRPC servers.
	Server Server `envPrefix:"SERVER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Storage groups the configuration of all storage backends.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the version string of the running application.
	// Exposed via the /api/version endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// CredentialScheme selects how user passwords are stored and compared:
	// "plaintext" (compatible with existing data, a known security gap),
	// "bcrypt" or "argon2id".
	// Env: APP_CREDENTIAL_SCHEME
	CredentialScheme string `env:"CREDENTIAL_SCHEME"`

	// BcryptCost is the bcrypt work factor used when CredentialScheme is
	// "bcrypt". Zero selects the library default.
	// Env: APP_BCRYPT_COST
	BcryptCost int `env:"BCRYPT_COST"`

	// SessionCookieName is the name of the cookie carrying the session token.
	// Env: APP_SESSION_COOKIE_NAME
	SessionCookieName string `env:"SESSION_COOKIE_NAME"`

	// SecureCookie marks the session cookie as Secure (HTTPS only).
	// Env: APP_SECURE_COOKIE
	SecureCookie bool `env:"SECURE_COOKIE"`

	// LoginPath is where unauthenticated requests to protected routes are
	// redirected.
	// Env: APP_LOGIN_PATH
	LoginPath string `env:"LOGIN_PATH"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8000").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// GRPCAddress is the TCP address of the gRPC health endpoint.
	// Empty disables the gRPC server.
	// Env: SERVER_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// Driver selects the database/sql driver: "sqlite3" or "pgx".
	// Env: STORAGE_DB_DRIVER
	Driver string `env:"DRIVER"`

	// DSN is the data source name. For sqlite3 it is the database file
	// path (e.g. "data/advice.db"), for pgx a PostgreSQL connection string.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`

	// SkipSeed disables inserting the initial exercise and advice content
	// into empty tables at startup.
	// Env: STORAGE_DB_SKIP_SEED
	SkipSeed bool `env:"SKIP_SEED"`
}

// Supported values of DB.Driver.
const (
	DriverSQLite   = "sqlite3"
	DriverPostgres = "pgx"
)

// Supported values of App.CredentialScheme.
const (
	CredentialSchemePlaintext = "plaintext"
	CredentialSchemeBcrypt    = "bcrypt"
	CredentialSchemeArgon2ID  = "argon2id"
)

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (later sources override earlier non-zero fields):
//  1. Built-in defaults
//  2. Environment variables
//  3. Command-line flags
//  4. JSON file (path resolved from sources 2 and 3)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags().
		withJSON().
		build()
}

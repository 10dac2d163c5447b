// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

// Default values applied before any other configuration source.
const (
	DefaultHTTPAddress       = ":8000"
	DefaultRequestTimeout    = 30 * time.Second
	DefaultDBPath            = "data/advice.db"
	DefaultSessionCookieName = "session_id"
	DefaultLoginPath         = "/login"
	DefaultVersion           = "dev"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Version:           DefaultVersion,
			CredentialScheme:  CredentialSchemePlaintext,
			SessionCookieName: DefaultSessionCookieName,
			LoginPath:         DefaultLoginPath,
		},
		Storage: Storage{
			DB: DB{
				Driver: DriverSQLite,
				DSN:    DefaultDBPath,
			},
		},
		Server: Server{
			HTTPAddress:    DefaultHTTPAddress,
			RequestTimeout: DefaultRequestTimeout,
		},
	}
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto implements the credential schemes a user password can be
// stored with.
package crypto

import (
	"errors"
	"fmt"
)

// Supported credential schemes.
const (
	SchemePlaintext = "plaintext"
	SchemeBcrypt    = "bcrypt"
	SchemeArgon2ID  = "argon2id"
)

// ErrUnknownScheme is returned by NewCredentialVerifier for an unsupported
// scheme name.
var ErrUnknownScheme = errors.New("unknown credential scheme")

// NewCredentialVerifier returns the verifier for scheme. bcryptCost is used
// only by the bcrypt scheme; zero selects the library default.
func NewCredentialVerifier(scheme string, bcryptCost int) (CredentialVerifier, error) {
	switch scheme {
	case SchemePlaintext:
		return NewPlaintextVerifier(), nil
	case SchemeBcrypt:
		return NewBcryptVerifier(bcryptCost), nil
	case SchemeArgon2ID:
		return NewArgon2Verifier(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownScheme, scheme)
	}
}

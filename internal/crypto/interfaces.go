// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/credential_verifier_mock.go -package=mock

// CredentialVerifier decides how a password is stored in the users table
// and how a supplied password is checked against the stored value.
//
// Swapping the implementation changes the storage format without touching
// any caller: registration always goes through Seal and login always goes
// through Verify.
type CredentialVerifier interface {
	// Seal returns the string to persist for password.
	Seal(password string) (string, error)

	// Verify reports whether supplied matches the stored credential.
	// It never returns an error: a malformed stored value simply does not
	// match.
	Verify(stored, supplied string) bool
}

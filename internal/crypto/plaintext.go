// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "crypto/subtle"

// PlaintextVerifier stores passwords verbatim and compares them byte for
// byte. It keeps existing databases readable and is the default scheme.
// Anyone with read access to the users table can read every password.
type PlaintextVerifier struct{}

// NewPlaintextVerifier constructs a [PlaintextVerifier].
func NewPlaintextVerifier() *PlaintextVerifier {
	return &PlaintextVerifier{}
}

// Seal implements [CredentialVerifier].
func (PlaintextVerifier) Seal(password string) (string, error) {
	return password, nil
}

// Verify implements [CredentialVerifier]. The comparison is exact: no
// trimming and no case folding.
func (PlaintextVerifier) Verify(stored, supplied string) bool {
	return subtle.ConstantTimeCompare([]byte(stored), []byte(supplied)) == 1
}

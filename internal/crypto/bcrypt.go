// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// BcryptVerifier stores bcrypt hashes of passwords.
type BcryptVerifier struct {
	cost int
}

// NewBcryptVerifier constructs a [BcryptVerifier]. A cost outside the range
// accepted by bcrypt is replaced by [bcrypt.DefaultCost].
func NewBcryptVerifier(cost int) *BcryptVerifier {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptVerifier{cost: cost}
}

// Seal implements [CredentialVerifier].
func (v *BcryptVerifier) Seal(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), v.cost)
	if err != nil {
		return "", fmt.Errorf("bcrypt: %w", err)
	}
	return string(hash), nil
}

// Verify implements [CredentialVerifier].
func (v *BcryptVerifier) Verify(stored, supplied string) bool {
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(supplied)) == nil
}

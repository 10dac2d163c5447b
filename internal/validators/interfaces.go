// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators holds the input rules applied before a request reaches
// storage: required registration fields and password length, login fields,
// comment fields, new content fields and view item types.
//
// The rules live here rather than in the store, which accepts whatever it is
// given and only enforces its own constraints.
package validators

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/validator_mock.go -package=mock

// Validator validates a request value, optionally restricted to the named
// fields.
type Validator interface {
	Validate(context.Context, any, ...string) error
}

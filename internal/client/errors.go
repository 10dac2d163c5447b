// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "errors"

var (
	ErrNoCommand           = errors.New("no command given")
	ErrUnknownCommand      = errors.New("unknown command")
	ErrInvalidArguments    = errors.New("invalid command arguments")
	ErrCredentialsRequired = errors.New("email and password are required for this command")
)

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrRegistrationFieldsRequired = errors.New("all fields are required")
	ErrPasswordTooShort           = errors.New("password must be at least 6 characters long")
	ErrCredentialsRequired        = errors.New("email and password are required")
	ErrCommentFieldsRequired      = errors.New("please fill in all fields")
	ErrContentFieldsRequired      = errors.New("name, text and video are required")
	ErrInvalidItemType            = errors.New("item type must be exercise or advice")
)

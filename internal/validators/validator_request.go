// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/hope-garden/models"
)

// Field name constants accepted by [RequestValidator.Validate] to restrict
// validation to a subset of rules.
const (
	// FieldRequired checks that every required field of the request is set.
	FieldRequired = "required"

	// FieldPasswordLength checks the minimal password length of a
	// registration.
	FieldPasswordLength = "password_length"
)

// MinPasswordLength is the minimal number of characters (not bytes) of a
// password at registration.
const MinPasswordLength = 6

// RequestValidator implements [Validator] for the request models of the
// site.
type RequestValidator struct{}

// NewRequestValidator constructs a [RequestValidator].
func NewRequestValidator() Validator {
	return &RequestValidator{}
}

// Validate dispatches on the dynamic type of obj. Both value and pointer
// forms are accepted.
//
// Supported types:
//   - models.RegisterRequest
//   - models.LoginRequest
//   - models.CommentRequest
//   - models.ExerciseRequest
//   - models.AdviceRequest
//   - models.ItemType
//
// Returns ErrUnsupportedType for anything else.
func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RegisterRequest:
		return v.validateRegister(value, fields...)
	case *models.RegisterRequest:
		return v.validateRegister(*value, fields...)
	case models.LoginRequest:
		return v.validateLogin(value, fields...)
	case *models.LoginRequest:
		return v.validateLogin(*value, fields...)
	case models.CommentRequest:
		return v.validateComment(value, fields...)
	case *models.CommentRequest:
		return v.validateComment(*value, fields...)
	case models.ExerciseRequest:
		return v.validateContent(fields, value.Name, value.Description, value.VideoURL)
	case *models.ExerciseRequest:
		return v.validateContent(fields, value.Name, value.Description, value.VideoURL)
	case models.AdviceRequest:
		return v.validateContent(fields, value.Name, value.Content, value.VideoURL)
	case *models.AdviceRequest:
		return v.validateContent(fields, value.Name, value.Content, value.VideoURL)
	case models.ItemType:
		if !value.IsValid() {
			return ErrInvalidItemType
		}
		return nil
	default:
		return ErrUnsupportedType
	}
}

func (v *RequestValidator) validateRegister(request models.RegisterRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldRequired, FieldPasswordLength}
	}

	for _, f := range fields {
		switch f {
		case FieldRequired:
			if request.Name == "" || request.Email == "" || request.Password == "" {
				return ErrRegistrationFieldsRequired
			}
		case FieldPasswordLength:
			if utf8.RuneCountInString(request.Password) < MinPasswordLength {
				return ErrPasswordTooShort
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validateLogin(request models.LoginRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldRequired}
	}

	for _, f := range fields {
		switch f {
		case FieldRequired:
			if request.Email == "" || request.Password == "" {
				return ErrCredentialsRequired
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateComment rejects fields that are empty or whitespace only.
func (v *RequestValidator) validateComment(request models.CommentRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldRequired}
	}

	for _, f := range fields {
		switch f {
		case FieldRequired:
			if isBlank(request.FirstName) || isBlank(request.LastName) || isBlank(request.Comment) {
				return ErrCommentFieldsRequired
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validateContent(fields []string, name, body, videoURL string) error {
	if len(fields) == 0 {
		fields = []string{FieldRequired}
	}

	for _, f := range fields {
		switch f {
		case FieldRequired:
			if isBlank(name) || isBlank(body) || isBlank(videoURL) {
				return ErrContentFieldsRequired
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

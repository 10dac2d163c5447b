// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// RegisterRequest carries the registration form.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest carries the login form.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// CommentRequest carries the comment form of the voices page.
type CommentRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Comment   string `json:"comment"`
}

// ExerciseRequest carries a new exercise.
type ExerciseRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	VideoURL    string `json:"video_url"`
}

// AdviceRequest carries a new advice entry.
type AdviceRequest struct {
	Name     string `json:"name"`
	Content  string `json:"content"`
	VideoURL string `json:"video_url"`
}

// ErrorResponse is the JSON body written for failed requests. Reason is a
// human-readable message that can be shown to the user as is.
type ErrorResponse struct {
	Reason string `json:"reason"`
}

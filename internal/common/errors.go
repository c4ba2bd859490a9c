// Package common defines shared constants and sentinel errors used across
// client and reference server layers of YouQuote. Callers should use errors.Is
// to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound   = errors.New("not found")
	ErrorEmailTaken = errors.New("email already taken")
	ErrInvalidLogin = errors.New("invalid email or password")

	// Lifecycle errors.
	ErrIllegalTransition = errors.New("illegal lifecycle transition")

	// Validation errors.
	ErrValidation    = errors.New("validation failed")
	ErrorInvalidRole = errors.New("invalid role")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
	ErrForbidden    = errors.New("forbidden")
)

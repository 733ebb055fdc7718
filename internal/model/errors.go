package model

import "errors"

// Sentinel errors shared across repositories and services.
var (
	// ErrNotFound indicates that a requested record does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrTokenInvalid indicates a malformed or unverifiable access token.
	ErrTokenInvalid = errors.New("token is invalid")

	// ErrTokenExpired indicates an access token past its expiry.
	ErrTokenExpired = errors.New("token has expired")

	// ErrForbidden indicates the caller is not allowed to perform the operation.
	ErrForbidden = errors.New("operation forbidden")

	// ErrAIGenerationFailed indicates the AI provider could not produce content.
	ErrAIGenerationFailed = errors.New("AI content generation failed")
)

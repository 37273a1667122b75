package services

import "errors"

// Common service-level errors
var (
	// Auth errors
	ErrInvalidToken    = errors.New("invalid token")
	ErrInvalidUserInfo = errors.New("invalid user information")
	ErrSessionNotFound = errors.New("session not found")
	ErrUnauthorized    = errors.New("unauthorized access")

	// Domain errors
	ErrUnitNotFound       = errors.New("unit not found")
	ErrObligationNotFound = errors.New("obligation not found")
	ErrCategoryNotFound   = errors.New("expense category not found")
)

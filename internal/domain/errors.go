package domain

import "errors"

var (
	ErrNotFound            = errors.New("resource not found")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrDuplicateEmail      = errors.New("user with this email already exists")
	ErrRefreshTokenInvalid = errors.New("invalid or expired refresh token")
	ErrCarNotOwned         = errors.New("car not found")
	ErrInvalidImage        = errors.New("invalid image format: expected a base64 encoded image")
	ErrAINotConfigured     = errors.New("ai service is not configured")
	ErrReceiptProcessing   = errors.New("failed to process receipt")
	ErrInvalidExportFormat = errors.New("unsupported export format")
)

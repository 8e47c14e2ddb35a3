package services

import "errors"

// Sentinel errors surfaced to handlers; messages double as user-facing text.
var (
	ErrPasswordMismatch   = errors.New("passwords do not match")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrIdeaNotFound       = errors.New("idea not found")
	ErrReportNotFound     = errors.New("report not found")
	ErrRequestNotFound    = errors.New("request not found")
	ErrNotOwner           = errors.New("idea not found or permission denied")
	ErrUnauthorized       = errors.New("unauthorized")
)

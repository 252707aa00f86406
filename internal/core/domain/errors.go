package domain

import "errors"

var (
	ErrUserExists         = errors.New("user already exists")
	ErrUserNotFound       = errors.New("username or email not found")
	ErrInvalidCredentials = errors.New("invalid password")
	ErrInvalidInput       = errors.New("missing required fields")
	ErrInvalidStatus      = errors.New("invalid status")
	ErrNoteNotFound       = errors.New("note not found")
	ErrSessionNotFound    = errors.New("session not found")
)

package application

import "errors"

// Errors returned by the credential and user services. Lower-level causes are
// logged and never attached, so callers cannot tell a missing identity from a
// wrong secret or see library internals.
var (
	ErrHashingFailure       = errors.New("password hashing failed")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrDirectoryUnavailable = errors.New("user directory unavailable")
	ErrTokenSigning         = errors.New("token signing failed")
	ErrUserNotFound         = errors.New("user not found")
	ErrUsernameTaken        = errors.New("username already exists")
)

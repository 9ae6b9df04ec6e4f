package domain

import "errors"

// Authentication and registration errors.
var (
	// ErrInvalidCredentials is returned for every failed login regardless of
	// whether the username existed or the password mismatched.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserExists         = errors.New("user already exists")
	ErrUserNotFound       = errors.New("user not found")

	// ErrMissingDefaultRole indicates the deployment was not seeded with the
	// role assigned to new registrations. Fatal at startup.
	ErrMissingDefaultRole = errors.New("default role not found")
	ErrRoleNotFound       = errors.New("role not found")
)

// Token validation errors. The API layer collapses all three into a plain
// unauthenticated outcome so clients get no cryptographic diagnostics.
var (
	ErrTokenMalformed   = errors.New("token is malformed")
	ErrInvalidSignature = errors.New("token signature is invalid")
	ErrTokenExpired     = errors.New("token is expired")
)

// Authorization and entity access errors.
var (
	ErrForbidden    = errors.New("access forbidden")
	ErrNotFound     = errors.New("record not found")
	ErrInvalidInput = errors.New("invalid input")
)

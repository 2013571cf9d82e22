package authentic

import "errors"

var (
	// ErrNotFound is returned when a resource is not found
	ErrNotFound = errors.New("not found")
	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")
	// ErrUnauthorized is returned when a bearer token is missing or malformed
	ErrUnauthorized = errors.New("unauthorized")
	// ErrInvalidCredentials is returned when a login attempt fails
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrTokenExpired is returned when a token is past its expiry
	ErrTokenExpired = errors.New("token expired")
	// ErrStorage is returned when an underlying disk or object store operation fails
	ErrStorage = errors.New("storage failure")
)

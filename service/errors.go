// file: service/errors.go

package service

import "errors"

// Caller-facing failure kinds for the auth use cases. Each is terminal
// and non-retryable; the HTTP layer maps them to status codes without
// exposing which internal step failed.
var (
	// ErrInvalidToken is the single outcome for every token
	// verification failure. Malformed text, a bad signature and an
	// expired token are deliberately indistinguishable to callers.
	ErrInvalidToken = errors.New("invalid or expired token")

	// ErrInvalidCredentials covers both an unknown email and a wrong
	// password so login cannot be used as an account oracle.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrDuplicateIdentity is returned when registration collides with
	// an existing username or email.
	ErrDuplicateIdentity = errors.New("username or email already exists")

	// ErrUnknownSession is returned when no session matches the
	// presented token.
	ErrUnknownSession = errors.New("session not found or no longer valid")

	// ErrExpiredRefreshToken is returned when the session bounding a
	// refresh token has passed its expiry.
	ErrExpiredRefreshToken = errors.New("refresh token expired")
)

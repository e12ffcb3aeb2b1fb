package auth

import "errors"

var (
	// ErrInvalidCredentials is returned when the email/password pair is
	// rejected, by either the live backend or the mock strategy.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrMalformedResponse is returned when the live backend's login body
	// lacks a token or user despite a success status.
	ErrMalformedResponse = errors.New("malformed authentication response")
)

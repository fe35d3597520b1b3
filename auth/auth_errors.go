package auth

import "errors"

var (
	// ErrInvalidCredentials covers both an unknown identifier and a wrong
	// secret: the caller is never told which half of the pair failed.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrLookupUnavailable means the sub-admin directory could not be read.
	// Distinct from ErrInvalidCredentials: the user should retry, not
	// second-guess the password.
	ErrLookupUnavailable = errors.New("login failed, try again")
)

package credstore

import "errors"

var (
	// ErrInvalidInput indicates an empty username or password.
	ErrInvalidInput = errors.New("credstore: username and password are required")

	// ErrWeakPassword indicates the password fails the strength policy.
	ErrWeakPassword = errors.New("credstore: password does not meet policy requirements")

	// ErrUsernameTaken indicates the username is already registered.
	ErrUsernameTaken = errors.New("credstore: username already taken")
)

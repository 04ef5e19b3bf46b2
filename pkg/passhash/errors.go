package passhash

import "errors"

var (
	// ErrRandomSource indicates the secure random source failed.
	ErrRandomSource = errors.New("passhash: secure random source unavailable")
)

package sessiontoken

import "errors"

var (
	// ErrTokenGeneration indicates the secure random source failed while
	// minting a token.
	ErrTokenGeneration = errors.New("sessiontoken: token generation failed")
)

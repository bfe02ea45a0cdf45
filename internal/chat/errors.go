package chat

import "errors"

var (
	// ErrSessionNotFound indicates an unknown or expired session id.
	ErrSessionNotFound = errors.New("session not found")

	// ErrEmptyMessage indicates a turn with no usable text.
	ErrEmptyMessage = errors.New("message is empty")
)

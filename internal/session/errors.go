package session

import "errors"

var (
	// ErrSessionNotFound is returned when a session token is unknown or the
	// session it referenced has expired. The two cases are not distinguished.
	ErrSessionNotFound = errors.New("session not found")
)

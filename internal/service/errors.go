package service

import "errors"

var (
	// ErrInvalidDataProvided is returned when a request payload is missing a
	// required field (empty username/password at registration, empty title
	// or category at task creation).
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrInvalidCredentials is returned on login when the username is
	// unknown or the password does not verify. The two cases are not
	// distinguished to the caller.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrInvalidDueDate is returned when a due-date string cannot be parsed
	// as an ISO-8601 date ("2006-01-02") or RFC 3339 timestamp.
	ErrInvalidDueDate = errors.New("invalid due date")
)

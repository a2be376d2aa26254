package http

import (
	"errors"
	"net/http"

	"tasktracker/internal/service"
	"tasktracker/internal/session"
	"tasktracker/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided: http.StatusBadRequest,
	service.ErrInvalidDueDate:      http.StatusBadRequest,
	service.ErrInvalidCredentials:  http.StatusUnauthorized,

	store.ErrUsernameTaken: http.StatusBadRequest,
	store.ErrUserNotFound:  http.StatusNotFound,

	// Absent task and foreign task collapse into the same 404: the API must
	// never reveal whether a task ID exists for another user.
	store.ErrTaskNotFound: http.StatusNotFound,

	session.ErrSessionNotFound: http.StatusUnauthorized,

	store.ErrBuildingSQLQuery: http.StatusInternalServerError,
	store.ErrExecutingQuery:   http.StatusInternalServerError,
	store.ErrScanningRow:      http.StatusInternalServerError,
	store.ErrScanningRows:     http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// statusText returns the sentinel's message for mapped errors and a generic
// status text otherwise, so internal error details never leak to clients.
func statusText(err error) string {
	for target := range errorStatusMap {
		if errors.Is(err, target) {
			return target.Error()
		}
	}
	return http.StatusText(http.StatusInternalServerError)
}

package api

import (
	"errors"
	"fmt"
	"net/http"
)

// Error is a server-rejected request (non-2xx). Network-level failures are
// wrapped plain errors and never carry a status.
type Error struct {
	Status int
	Detail string
}

func (e *Error) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	return fmt.Sprintf("request failed (status %d)", e.Status)
}

// IsUnauthorized reports whether err is a 401/403 rejection. Only these clear
// the session; transient failures (5xx, network) must not destroy a valid
// login.
func IsUnauthorized(err error) bool {
	var apiErr *Error
	if !errors.As(err, &apiErr) {
		return false
	}
	return apiErr.Status == http.StatusUnauthorized || apiErr.Status == http.StatusForbidden
}

// StatusOf returns the HTTP status of a server rejection, or 0 for
// network-level failures.
func StatusOf(err error) int {
	var apiErr *Error
	if !errors.As(err, &apiErr) {
		return 0
	}
	return apiErr.Status
}

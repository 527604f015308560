package client

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	errMissingHost = errors.New("catalog host is required")
	errCallCatalog = errors.New("call catalog")
)

// APIError is returned when the catalog answers with a non-2xx status.
type APIError struct {
	Method     string
	Path       string
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s %s: catalog returned %d: %s", e.Method, e.Path, e.StatusCode, e.Body)
}

// Retryable reports whether the same request may succeed later.
func (e *APIError) Retryable() bool {
	return e.StatusCode == http.StatusTooManyRequests || e.StatusCode >= http.StatusInternalServerError
}

// IsNotFound reports whether err carries a 404 from the catalog.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

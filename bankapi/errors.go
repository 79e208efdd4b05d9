package bankapi

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrUnavailable wraps transport failures: the backend could not be reached
// or the request was cancelled before a response arrived.
var ErrUnavailable = errors.New("bank backend unavailable")

// APIError is a non-2xx response from the backend. Body holds the trimmed
// response payload, which the backend uses for human-readable messages.
type APIError struct {
	Method     string
	Path       string
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("%s %s: status %d: %s", e.Method, e.Path, e.StatusCode, e.Body)
	}
	return fmt.Sprintf("%s %s: status %d", e.Method, e.Path, e.StatusCode)
}

// CustomerNotFoundError is returned by GetCustomer when the backend has no
// customer with the requested id.
type CustomerNotFoundError struct {
	ID int64
}

func (e *CustomerNotFoundError) Error() string {
	return fmt.Sprintf("No existe un cliente con ID %d.", e.ID)
}

func statusOf(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}

func IsBadRequest(err error) bool { return statusOf(err) == http.StatusBadRequest }

func IsNotFound(err error) bool {
	var nf *CustomerNotFoundError
	return errors.As(err, &nf) || statusOf(err) == http.StatusNotFound
}

// Detail returns the backend's message for err, if the backend sent one.
func Detail(err error) (string, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Body != "" {
		return apiErr.Body, true
	}
	return "", false
}

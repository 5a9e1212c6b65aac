package api

import (
	"errors"
	"fmt"
)

// ErrAuthRequired is returned before any request is issued when no usable
// bearer token is available. Callers surface it as a sign-in prompt.
var ErrAuthRequired = errors.New("authentication required")

// HTTPError is a non-2xx response. Message carries the server-supplied
// "detail" or "message" field when one was present.
type HTTPError struct {
	Status  int
	Message string
}

func (e *HTTPError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api: status %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("api: status %d", e.Status)
}

// NetworkError is a transport-level failure (DNS, refused connection,
// cancelled context). The request never produced an HTTP status.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("api: network failure: %v", e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// IsNotFound reports whether err is an HTTP 404.
func IsNotFound(err error) bool {
	var httpErr *HTTPError
	return errors.As(err, &httpErr) && httpErr.Status == 404
}

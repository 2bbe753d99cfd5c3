package marketplace

import (
	"errors"
	"fmt"
)

// StatusError reports a request the marketplace received but rejected with a
// non-2xx status.
type StatusError struct {
	// Op labels the failed operation, e.g. "ozon: import stocks".
	Op string

	// URL is the full request URL.
	URL string

	// StatusCode is the HTTP status the marketplace answered with.
	StatusCode int

	// Body is the (truncated) response body, kept for diagnostics.
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: %s rejected with status %d: %s", e.Op, e.URL, e.StatusCode, e.Body)
}

// TransportError reports a request that never produced an HTTP response:
// DNS failures, refused connections, timeouts, truncated bodies.
type TransportError struct {
	// Op labels the failed operation.
	Op string

	// URL is the full request URL.
	URL string

	// Err is the underlying transport failure.
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %s unreachable: %v", e.Op, e.URL, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// IsRejected reports whether err is an application-level rejection.
func IsRejected(err error) bool {
	var se *StatusError
	return errors.As(err, &se)
}

// IsUnavailable reports whether err is a connectivity failure.
func IsUnavailable(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}

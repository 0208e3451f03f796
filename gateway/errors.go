package gateway

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidCredentials is returned by VerifyAdmin on any non-matching
	// pair. It is always surfaced to the caller and never falls back.
	ErrInvalidCredentials = errors.New("invalid admin credentials")

	// ErrNotFound signals a lookup with no matching record
	ErrNotFound = errors.New("record not found")
)

// TransportError wraps a failure to reach the backend at all (network,
// endpoint down, database unreachable).
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: backend unreachable: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// MalformedResponseError marks a response body that is not JSON, typically
// an HTML error page served in place of the API.
type MalformedResponseError struct {
	Op      string
	Snippet string
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("%s: malformed backend response: %q", e.Op, e.Snippet)
}

// BackendError carries an explicit error payload returned by the backend.
type BackendError struct {
	Op      string
	Message string
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("%s: backend error: %s", e.Op, e.Message)
}

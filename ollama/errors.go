package ollama

import (
	"errors"
	"fmt"
	"net/http"
)

// Sentinel errors for gateway operations.
var (
	// ErrRequestFailed indicates the API answered with a non-success status
	// or the request could not be completed.
	ErrRequestFailed = errors.New("request failed")

	// ErrUnauthorized indicates the API key was missing or rejected.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrRateLimited indicates the API rejected the request with 429.
	ErrRateLimited = errors.New("rate limited")

	// ErrTimeout indicates the request did not finish in time.
	ErrTimeout = errors.New("request timed out")
)

// Error wraps gateway errors with the operation and HTTP details.
type Error struct {
	Op         string // Operation that failed ("web_search", "web_fetch")
	StatusCode int    // HTTP status, zero when no response was received
	Body       string // Preview of the response body
	Err        error  // Underlying error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("ollama %s: %v", e.Op, e.Err)
	}
	if e.Body == "" {
		return fmt.Sprintf("ollama %s: status %d: %v", e.Op, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("ollama %s: status %d: %v: %s", e.Op, e.StatusCode, e.Err, e.Body)
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *Error) Unwrap() error {
	return e.Err
}

// Retryable reports whether the failure is likely transient.
func (e *Error) Retryable() bool {
	if e.StatusCode >= http.StatusInternalServerError {
		return true
	}
	return errors.Is(e.Err, ErrRateLimited) || errors.Is(e.Err, ErrTimeout)
}

// statusError maps a non-success HTTP status to an *Error.
func statusError(op string, status int, body string) *Error {
	var err error
	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		err = ErrUnauthorized
	case status == http.StatusTooManyRequests:
		err = ErrRateLimited
	default:
		err = ErrRequestFailed
	}
	return &Error{Op: op, StatusCode: status, Body: body, Err: err}
}

// IsRetryable checks if an error is likely transient and worth retrying.
func IsRetryable(err error) bool {
	var gwErr *Error
	if errors.As(err, &gwErr) {
		return gwErr.Retryable()
	}
	return errors.Is(err, ErrRateLimited) || errors.Is(err, ErrTimeout)
}

// IsAuthError checks if an error is authentication-related.
func IsAuthError(err error) bool {
	return errors.Is(err, ErrUnauthorized)
}

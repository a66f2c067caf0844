package api

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrUnavailable means the service could not be reached at all
	// (connection refused, DNS failure, timeout).
	ErrUnavailable = errors.New("server unavailable")

	// ErrUnauthorized matches any 401/403 rejection via errors.Is.
	ErrUnauthorized = errors.New("unauthorized")
)

// Error is a rejection returned by the paper service. Message carries the
// backend's human-readable reason verbatim; callers surface it unchanged.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("request failed with status %d", e.Status)
}

// Unwrap lets errors.Is(err, ErrUnauthorized) match authorization failures
// without losing the backend message.
func (e *Error) Unwrap() error {
	switch e.Status {
	case http.StatusUnauthorized, http.StatusForbidden:
		return ErrUnauthorized
	}
	return nil
}

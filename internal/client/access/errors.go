package access

import "errors"

// ErrAttemptInFlight is returned when an operation is invoked while a prior
// request for the same attempt is still outstanding. The UI disables its
// buttons while loading, so hitting this means a caller bug.
var ErrAttemptInFlight = errors.New("attempt already in flight")

// ValidationError is a locally detected precondition failure. It never
// reaches the network and is rendered inline next to the offending field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

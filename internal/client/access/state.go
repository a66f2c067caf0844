// Package access gates the two privileged paper operations, view and
// download, behind the correct combination of factors, and normalizes the
// paper service's responses into a small set of attempt states.
package access

import "github.com/quarkpapers/quark/internal/client/models"

// State is the progress of the current access attempt.
//
// View flow:
//
//	Idle -> Requesting -> { Displaying | AwaitingPassword | Failed }
//	AwaitingPassword -> Requesting (on resubmit with a password)
//
// Download flow:
//
//	Idle -> Validating -> { Requesting -> { Success | Failed } | ValidationFailed }
//
// Displaying and Success are terminal for a successful attempt; Failed and
// ValidationFailed are terminal for the attempt but recoverable by invoking
// the operation again with corrected input.
type State string

const (
	StateIdle             State = "idle"
	StateRequesting       State = "requesting"
	StateDisplaying       State = "displaying"
	StateAwaitingPassword State = "awaiting_password"
	StateFailed           State = "failed"
	StateValidating       State = "validating"
	StateValidationFailed State = "validation_failed"
	StateSuccess          State = "success"
)

// Action distinguishes the two privileged operations.
type Action string

const (
	ActionView     Action = "view"
	ActionDownload Action = "download"
)

// Attempt is the transient state of one in-progress view or download for one
// paper. It lives in memory only and is discarded on success or reset.
type Attempt struct {
	PaperID       string
	Action        Action
	PaperPassword string
	OTP           string
}

// Download is the outcome of a successful download attempt: the watermarked
// document (still a base64 data URI, as returned by the service) and the
// filename to save it under.
type Download struct {
	Filename string
	Content  string
}

// identityFn borrows the current identity from the session holder. It may
// return nil before login.
type identityFn func() *models.Identity

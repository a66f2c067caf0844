// Package common contains shared constants and sentinel errors used across
// Quark client components.
package common

const (
	// AuthorizationHeader carries the bearer credential on outbound requests.
	AuthorizationHeader = "Authorization"

	// RequestIDHeader carries the per-request correlation id attached by the
	// REST client.
	RequestIDHeader = "X-Request-Id"

	// ContentTypeJSON is the media type of every request and response body
	// exchanged with the paper service.
	ContentTypeJSON = "application/json"
)

package activity

import "errors"

// Failure kinds surfaced by the gateway boundary. Handlers match them
// with errors.Is to pick an HTTP status; everything else maps to an
// internal error.
var (
	// ErrUpstreamUnavailable indicates the gateway could not be
	// reached or answered with a server-side failure.
	ErrUpstreamUnavailable = errors.New("upstream gateway unavailable")

	// ErrAuthenticationFailed indicates the gateway rejected our
	// credentials.
	ErrAuthenticationFailed = errors.New("upstream authentication failed")

	// ErrMalformedData indicates the gateway response does not match
	// the expected shape and totals derived from it cannot be trusted.
	ErrMalformedData = errors.New("malformed upstream data")

	// ErrTooManyPages indicates the activity window spans more pages
	// than the client is configured to drain. The request fails rather
	// than returning silently incomplete totals.
	ErrTooManyPages = errors.New("too many result pages")
)

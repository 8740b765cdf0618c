package models

import "errors"

var (
	// ErrInvalidMonth indicates a month parameter that is not one of the
	// twelve recognized month names. Maps to a 400 at the HTTP surface.
	ErrInvalidMonth = errors.New("invalid month name")

	// ErrStore indicates a failure talking to the record store. Maps to a
	// 500 at the HTTP surface. Never retried.
	ErrStore = errors.New("store failure")

	// ErrFetch indicates the remote dataset was unreachable or returned
	// malformed data. Non-fatal during bootstrap, 500 from manual reseed.
	ErrFetch = errors.New("dataset fetch failure")

	// ErrDuplicateKey indicates a bulk insert collided with an existing
	// transaction id.
	ErrDuplicateKey = errors.New("duplicate transaction id")
)

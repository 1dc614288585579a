package models

import (
	"github.com/cockroachdb/errors"
)

// Base errors, related to default API status codes
var (
	// BadParameterError is rendered with the http status code 400
	BadParameterError = errors.New("bad parameter")

	// NotFoundError is rendered with the http status code 404
	NotFoundError = errors.New("not found")
)

// Registry lookup errors. The two cases are deliberately distinct: a caller
// must be able to tell "confirmed absent from the registry" apart from
// "could not determine" (and possibly retry the latter).
var (
	// ErrAircraftNotFound means the registry positively has no record for the
	// n-number. Terminal for a research run.
	ErrAircraftNotFound = errors.Wrap(NotFoundError, "aircraft not found in registry")

	// ErrRegistryUnavailable means the registry source was unreachable or its
	// response could not be parsed. Terminal for a research run, but retryable
	// by the caller.
	ErrRegistryUnavailable = errors.New("registry source unavailable")
)

var ErrInvalidNNumber = errors.Wrap(BadParameterError, "invalid n-number")

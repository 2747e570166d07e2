package claimsource

import "errors"

var (
	// ErrNoBackend is reported when no backend URL is configured.
	ErrNoBackend = errors.New("no claims backend configured")
	// ErrUnexpectedStatus is reported for non-2xx responses.
	ErrUnexpectedStatus = errors.New("unexpected claims backend status")
	// ErrNotArray is reported when the payload is not a JSON array.
	ErrNotArray = errors.New("claims payload is not an array")
	// ErrInvalidRecord marks a record dropped by validation.
	ErrInvalidRecord = errors.New("invalid claim record")
)

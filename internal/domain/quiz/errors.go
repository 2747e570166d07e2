package quiz

import "errors"

var (
	// ErrInvalidTransition is returned for actions not allowed in the current step or phase.
	ErrInvalidTransition = errors.New("invalid quiz transition")
	// ErrInvalidValue is returned for unknown actions or values outside the catalogs.
	ErrInvalidValue = errors.New("invalid quiz value")
)

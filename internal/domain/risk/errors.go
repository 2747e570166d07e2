package risk

import "errors"

// ErrInvalidScore is returned by Validate for NaN, infinite or out-of-range scores.
var ErrInvalidScore = errors.New("invalid fraud score")

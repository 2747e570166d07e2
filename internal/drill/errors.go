package drill

import "errors"

// Sentinel errors for drill runs.
var (
	ErrUnhealthy        = errors.New("service unhealthy")
	ErrUnexpectedStatus = errors.New("unexpected status")
	ErrNotPerfect       = errors.New("ideal answers did not score full marks")
	ErrDrillFailed      = errors.New("drill failed")
)

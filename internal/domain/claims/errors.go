package claims

import "errors"

var (
	// ErrUnknownColumn is returned for sort columns outside the table.
	ErrUnknownColumn = errors.New("unknown sort column")
	// ErrUnknownDirection is returned for sort directions other than asc/desc.
	ErrUnknownDirection = errors.New("unknown sort direction")
)

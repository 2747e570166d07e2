package model

import "errors"

// ErrUnknownOption is returned when input does not name a catalog entry or enum value.
var ErrUnknownOption = errors.New("unknown option")

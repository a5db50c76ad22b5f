package event

import "errors"

// ErrInvalidInput marks a value rejected at the input boundary
var ErrInvalidInput = errors.New("invalid input")

package services

import "errors"

// ErrInvalidInput marks request-level validation failures (unknown enum
// values, backward status moves). Handlers map it to 400.
var ErrInvalidInput = errors.New("invalid input")

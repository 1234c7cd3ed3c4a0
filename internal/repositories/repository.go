package repositories

import "errors"

// ErrNotFound is returned when a record does not exist in its store.
var ErrNotFound = errors.New("record not found")

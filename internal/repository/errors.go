package repository

import "errors"

// ErrNotFound is returned when an id does not resolve in any store.
var ErrNotFound = errors.New("not found")

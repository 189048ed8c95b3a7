package repository

import "errors"

// ErrNotFound is returned, wrapped with the entity name, when a lookup by id
// matches no row.
var ErrNotFound = errors.New("not found")

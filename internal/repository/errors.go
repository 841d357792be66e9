package repository

import "errors"

// ErrNotFound is returned when a record does not exist. Implementations map
// their driver's no-rows error to this so callers never import database/sql.
var ErrNotFound = errors.New("record not found")

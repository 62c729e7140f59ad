package repository

import "errors"

// ErrNotFound is returned when a query targets a row that does not
// exist. The service layer maps it to the appropriate HTTP error.
var ErrNotFound = errors.New("record not found")

package attendance

import "errors"

var (
	// ErrEmployeeNotFound covers both a missing employee and a soft-deleted
	// one; marking requires the referenced employee to be active.
	ErrEmployeeNotFound = errors.New("employee not found or inactive")
)

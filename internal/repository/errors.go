package repository

import "errors"

var (
	// ErrNotFound is returned when no payment exists for a provider and id.
	ErrNotFound = errors.New("payment not found")

	// ErrDuplicate is returned by Create when the provider already holds the id.
	ErrDuplicate = errors.New("payment already exists")
)

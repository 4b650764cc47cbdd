package service

import "errors"

// Sentinel errors shared across services. Handlers translate these into
// the HTTP error taxonomy.
var (
	ErrNotFound     = errors.New("resource not found")
	ErrRateLimited  = errors.New("too many requests")
	ErrInvalidInput = errors.New("invalid input")
	ErrUnauthorized = errors.New("unauthorized")

	ErrCollectionNotAllowed = errors.New("collection not allowed")
	ErrOperationNotAllowed  = errors.New("operation not allowed")
	ErrBadQuery             = errors.New("unsupported query payload")
)

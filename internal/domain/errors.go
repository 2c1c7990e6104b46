package domain

import "errors"

// ErrNotFound is returned by repo and service functions when the requested
// entry does not exist in the store.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned when input fails validation (empty text,
// malformed id, malformed date bound).
// Handlers should map this to HTTP 400 Bad Request.
var ErrValidation = errors.New("validation error")

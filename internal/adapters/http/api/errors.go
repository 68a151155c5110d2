package api

import "errors"

// Sentinel kinds for API errors. Messages match the public error contract.
var (
	ErrBodyNotJSON      = errors.New("request body must be JSON")
	ErrBadDate          = errors.New("invalid date format. Use YYYY-MM-DD")
	ErrBadLimit         = errors.New("limit must be an integer")
	ErrEndpointNotFound = errors.New("endpoint not found")
	ErrMethodNotAllowed = errors.New("method not allowed")
)

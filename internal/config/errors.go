package config

import "errors"

// Sentinel kinds for configuration errors.
var (
	ErrEmptyAddr     = errors.New("addr must not be empty")
	ErrInvalidLimits = errors.New("default_limit must be >= 1 and <= max_limit")
)

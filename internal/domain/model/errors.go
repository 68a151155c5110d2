package model

import "errors"

// Sentinel kinds for score validation errors.
var (
	ErrInvalidScore = errors.New("invalid score")
)

package task

import "errors"

var (
	ErrInvalidUser   = errors.New("invalid user ID")
	ErrInvalidStatus = errors.New("invalid status value, must be one of: ongoing, completed, blocked")
)

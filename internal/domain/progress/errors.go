package progress

import "errors"

var (
	ErrInvalidUser       = errors.New("invalid user ID")
	ErrInvalidCompletion = errors.New("completion must be an integer between 0 and 100")
)

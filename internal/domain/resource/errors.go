package resource

import "errors"

var (
	ErrResourceNotFound = errors.New("resource not found")
)

package user

import "errors"

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrUserAlreadyExists   = errors.New("user already exists")
	ErrUserAlreadyApproved = errors.New("user already approved")

	ErrResetTokenInvalid = errors.New("invalid or expired reset token")
)

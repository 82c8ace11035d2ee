package errors

import "errors"

var (
	ErrChurchNotFound    = errors.New("church not found")
	ErrDuplicateChurch   = errors.New("church name already in use")
	ErrResourceNotFound  = errors.New("resource not found")
	ErrDuplicateResource = errors.New("resource name already in use")
	ErrUserNotFound      = errors.New("user not found")
	ErrDuplicateEmail    = errors.New("email already in use")
	ErrInvalidInput      = errors.New("invalid directory input")
	ErrInvalidMonth      = errors.New("month must be between 1 and 12")
)

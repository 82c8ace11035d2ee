package errors

import "errors"

var (
	ErrBirthdayNotFound     = errors.New("birthday not found")
	ErrInvalidBirthdayInput = errors.New("invalid birthday input")
	ErrInvalidBirthdayDate  = errors.New("day and month do not form a valid date")
	ErrInvalidMonth         = errors.New("month must be between 1 and 12")
)

package domain

import "errors"

var (
	ErrUserNotFound     = errors.New("user not found")
	ErrDuplicateUser    = errors.New("user already registered")
	ErrInvalidTimeRange = errors.New("invalid time range")
	ErrInvalidMonth     = errors.New("invalid month")
	ErrInvalidArgument  = errors.New("invalid argument")
)

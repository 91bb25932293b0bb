package driver

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidDriverID       = errors.New("invalid driver id")
	ErrInvalidUserID         = errors.New("invalid user id")
	ErrInvalidName           = errors.New("invalid name")
	ErrInvalidPhone          = errors.New("invalid phone")
	ErrInvalidCity           = errors.New("invalid city")

	ErrDriverNotFound = errors.New("driver not found")
	ErrConflict       = errors.New("driver already exists")
)

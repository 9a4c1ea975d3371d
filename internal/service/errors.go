package service

import "errors"

var (
	// ErrInvalidDataProvided is returned when a required input field is
	// missing or empty before anything touches disk.
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrInvalidCredentials is returned for every authentication failure:
	// unknown username or national id, wrong password or secret code, and a
	// deactivated citizen row all look identical to the caller.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

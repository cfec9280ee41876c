package domain

import "errors"

var (
	// ErrNotFound is returned when a slug does not match any room.
	ErrNotFound = errors.New("not found")
	// ErrInvalidRoom wraps every catalog validation failure.
	ErrInvalidRoom = errors.New("invalid room")
)

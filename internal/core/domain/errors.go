package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors shared across services and repositories. The HTTP layer
// discriminates on these with errors.Is / errors.As, never on message text.
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrRoomNotFound       = errors.New("room not found")
	ErrBookingNotFound    = errors.New("booking not found")
	ErrSchedulingConflict = errors.New("booking overlaps an existing booking for this room")
)

// MissingFieldError reports a required input field that was absent.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("required field %q is missing", e.Field)
}

// DuplicateFieldError reports a uniqueness violation on a field such as a
// user's email or a room's name.
type DuplicateFieldError struct {
	Field string
	Value string
}

func (e *DuplicateFieldError) Error() string {
	return fmt.Sprintf("%s %q is already in use", e.Field, e.Value)
}

// InvalidFieldError reports a field whose value is malformed, e.g. a date
// that does not parse or an end time before the start time.
type InvalidFieldError struct {
	Field  string
	Reason string
}

func (e *InvalidFieldError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

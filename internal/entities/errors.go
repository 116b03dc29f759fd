package entities

import (
	"errors"
	"fmt"
)

var (
	ErrPickupNotFound    = errors.New("pickup not found")
	ErrValidation        = errors.New("validation failed")
	ErrCodeMismatch      = errors.New("pickup code does not match")
	ErrInvalidTransition = errors.New("transition not allowed from current status")
	ErrForbidden         = errors.New("action not allowed for this actor")
	ErrItemIndex         = errors.New("item index out of range")
	ErrEmptyItems        = errors.New("at least one item is required")
	ErrCollaborator      = errors.New("pickup api request failed")
	ErrConcurrentWrite   = errors.New("pickup was changed by another writer")
)

// ValidationError reports a single missing or malformed field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// TransitionError wraps ErrInvalidTransition with the status the pickup was found in.
type TransitionError struct {
	Event  string
	Status Status
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("cannot %s pickup in status %q", e.Event, e.Status)
}

func (e *TransitionError) Is(target error) bool {
	return target == ErrInvalidTransition
}

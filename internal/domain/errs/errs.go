// Package errs holds the error taxonomy shared by every layer of the console:
// validation failures caught before any network call, actions forbidden by the
// lifecycle state, and failures reported by the rental API.
package errs

import (
	"errors"
	"fmt"
)

var (
	ErrValidation             = errors.New("validation error")
	ErrInvalidStateTransition = errors.New("invalid state transition")
	ErrRemote                 = errors.New("remote error")
	ErrConfirmationRequired   = errors.New("confirmation required")
)

const defaultValidationReason = "invalid value"

// ValidationError reports malformed or out-of-range input.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	reason := e.Reason
	if reason == "" {
		reason = defaultValidationReason
	}
	if e.Field == "" {
		return reason
	}
	return fmt.Sprintf("%s: %s", e.Field, reason)
}

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// Invalid builds a ValidationError for field.
func Invalid(field, format string, args ...any) error {
	return &ValidationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

// InvalidStateTransition reports an action attempted against a lifecycle
// state that forbids it.
type InvalidStateTransition struct {
	Status string
	Action string
}

func (e *InvalidStateTransition) Error() string {
	return fmt.Sprintf("cannot %s while %s", e.Action, e.Status)
}

func (e *InvalidStateTransition) Is(target error) bool { return target == ErrInvalidStateTransition }

// RemoteError wraps a non-success response or a transport failure from the
// rental API. Message carries the best message the API returned.
type RemoteError struct {
	Op         string
	StatusCode int
	Message    string
	Err        error
}

func (e *RemoteError) Error() string {
	switch {
	case e.StatusCode != 0 && e.Message != "":
		return fmt.Sprintf("%s: status %d: %s", e.Op, e.StatusCode, e.Message)
	case e.StatusCode != 0:
		return fmt.Sprintf("%s: status %d", e.Op, e.StatusCode)
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	default:
		return e.Op + ": remote failure"
	}
}

func (e *RemoteError) Is(target error) bool { return target == ErrRemote }

func (e *RemoteError) Unwrap() error { return e.Err }

// RequireConfirmation fails with ErrConfirmationRequired (a validation error)
// unless the operator explicitly confirmed a destructive action.
func RequireConfirmation(confirmed bool, action string) error {
	if confirmed {
		return nil
	}
	return &confirmationError{action: action}
}

type confirmationError struct{ action string }

func (e *confirmationError) Error() string {
	return fmt.Sprintf("%s requires explicit confirmation", e.action)
}

func (e *confirmationError) Is(target error) bool {
	return target == ErrConfirmationRequired || target == ErrValidation
}

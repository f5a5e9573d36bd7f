package booking

import (
	"errors"
	"fmt"
)

var (
	// ErrStepIncomplete is returned when forward navigation is attempted
	// before the active step's data is complete.
	ErrStepIncomplete = errors.New("current step is not complete")

	// ErrCodeIncomplete is returned when a submitted OTP has fewer than six
	// digits after normalization. The workflow state is unchanged.
	ErrCodeIncomplete = errors.New("OTP must be 6 digits")

	// ErrCodeMismatch is returned in strict mode when a submitted code does
	// not equal the generated one. The caller may retry.
	ErrCodeMismatch = errors.New("OTP does not match")

	// ErrWorkflowClosed is returned for operations on a dismissed workflow.
	ErrWorkflowClosed = errors.New("booking workflow has been closed")
)

// StateError reports an operation attempted in the wrong booking status.
type StateError struct {
	Op     string
	Status string
}

func (e *StateError) Error() string {
	return fmt.Sprintf("%s not allowed in status %q", e.Op, e.Status)
}

func newStateError(op, status string) error {
	return &StateError{Op: op, Status: status}
}

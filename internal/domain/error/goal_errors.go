// Package error defines domain-specific errors for the Habit Tracker application.
package error

import "errors"

// Goal domain errors.
var (
	// ErrGoalNotFound is returned when no node of the goal tree has the requested id.
	ErrGoalNotFound = errors.New("goal not found")

	// ErrMissingGoalFields is returned when a title, unit or deadline is empty.
	ErrMissingGoalFields = errors.New("title, unit and deadline are required")

	// ErrInvalidTargetValue is returned when a big goal target is zero or negative.
	ErrInvalidTargetValue = errors.New("target value must be greater than zero")

	// ErrInvalidCurrentValue is returned when a progress value is negative.
	ErrInvalidCurrentValue = errors.New("current value cannot be negative")

	// ErrInvalidGoalDate is returned when a deadline or target date cannot be parsed.
	ErrInvalidGoalDate = errors.New("invalid date format, expected YYYY-MM-DD")
)

// GoalErrorCode defines error codes for goal errors.
// Format: GOL-XXYYYY where XX is category and YYYY is specific error.
type GoalErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeMissingGoalFields   GoalErrorCode = "GOL-010001"
	ErrCodeInvalidTargetValue  GoalErrorCode = "GOL-010002"
	ErrCodeInvalidCurrentValue GoalErrorCode = "GOL-010003"
	ErrCodeInvalidGoalDate     GoalErrorCode = "GOL-010004"
	ErrCodeInvalidGoalID       GoalErrorCode = "GOL-010005"

	// Not found errors (02XXXX)
	ErrCodeGoalNotFound GoalErrorCode = "GOL-020001"
)

// GoalError represents a goal hierarchy error with code and message.
type GoalError struct {
	Code    GoalErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *GoalError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *GoalError) Unwrap() error {
	return e.Err
}

// NewGoalError creates a new GoalError with the given code and message.
func NewGoalError(code GoalErrorCode, message string, err error) *GoalError {
	return &GoalError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

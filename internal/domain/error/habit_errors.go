package error

import "errors"

// Habit domain errors.
var (
	ErrHabitNotFound         = errors.New("habit not found")
	ErrHabitAlreadyExists    = errors.New("a habit with this name already exists")
	ErrMissingHabitFields    = errors.New("name and unit are required")
	ErrInvalidDailyGoal      = errors.New("daily goal must be greater than zero")
	ErrInvalidProgressAmount = errors.New("amount must be a positive number")
	ErrSessionTooShort       = errors.New("focus session must last at least one minute")
)

// HabitErrorCode defines error codes for habit errors.
// Format: HAB-XXYYYY where XX is category and YYYY is specific error.
type HabitErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeMissingHabitFields    HabitErrorCode = "HAB-010001"
	ErrCodeInvalidDailyGoal      HabitErrorCode = "HAB-010002"
	ErrCodeInvalidProgressAmount HabitErrorCode = "HAB-010003"
	ErrCodeSessionTooShort       HabitErrorCode = "HAB-010004"

	// Not found errors (02XXXX)
	ErrCodeHabitNotFound HabitErrorCode = "HAB-020001"

	// Conflict errors (03XXXX)
	ErrCodeHabitAlreadyExists HabitErrorCode = "HAB-030001"
)

// HabitError represents a habit tracking error with code and message.
type HabitError struct {
	Code    HabitErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *HabitError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *HabitError) Unwrap() error {
	return e.Err
}

// NewHabitError creates a new HabitError with the given code and message.
func NewHabitError(code HabitErrorCode, message string, err error) *HabitError {
	return &HabitError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

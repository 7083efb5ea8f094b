package error

import "errors"

// Schedule and template domain errors.
var (
	// ErrScheduleItemNotFound is returned when a schedule item is not found.
	ErrScheduleItemNotFound = errors.New("schedule item not found")

	// ErrTemplateNotFound is returned when a template is not found.
	ErrTemplateNotFound = errors.New("template not found")

	// ErrSavedItemNotFound is returned when a saved item is not found.
	ErrSavedItemNotFound = errors.New("saved item not found")

	// ErrMissingScheduleTitle is returned when a schedule entry has no title.
	ErrMissingScheduleTitle = errors.New("title is required")

	// ErrMissingHabitReference is returned when a habit entry does not name its habit.
	ErrMissingHabitReference = errors.New("habit name is required for habit entries")

	// ErrInvalidTimeFormat is returned when a time is not HH:MM.
	ErrInvalidTimeFormat = errors.New("time must use the HH:MM format")

	// ErrInvalidTimeRange is returned when the end time is not after the start time.
	ErrInvalidTimeRange = errors.New("end time must be after start time")

	// ErrInvalidScheduleDate is returned when a schedule date is not YYYY-MM-DD.
	ErrInvalidScheduleDate = errors.New("invalid date format, expected YYYY-MM-DD")

	// ErrMissingTemplateName is returned when a template has no name.
	ErrMissingTemplateName = errors.New("template name is required")

	// ErrEmptyTemplate is returned when a template has no entries.
	ErrEmptyTemplate = errors.New("template must contain at least one item")
)

// ScheduleErrorCode defines error codes for schedule errors.
// Format: SCH-XXYYYY where XX is category and YYYY is specific error.
type ScheduleErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeMissingScheduleTitle  ScheduleErrorCode = "SCH-010001"
	ErrCodeInvalidTimeFormat     ScheduleErrorCode = "SCH-010002"
	ErrCodeInvalidTimeRange      ScheduleErrorCode = "SCH-010003"
	ErrCodeInvalidScheduleDate   ScheduleErrorCode = "SCH-010004"
	ErrCodeMissingTemplateName   ScheduleErrorCode = "SCH-010005"
	ErrCodeEmptyTemplate         ScheduleErrorCode = "SCH-010006"
	ErrCodeMissingHabitReference ScheduleErrorCode = "SCH-010007"
	ErrCodeInvalidScheduleID     ScheduleErrorCode = "SCH-010008"
	ErrCodeInvalidItemPriority   ScheduleErrorCode = "SCH-010009"

	// Not found errors (02XXXX)
	ErrCodeScheduleItemNotFound ScheduleErrorCode = "SCH-020001"
	ErrCodeTemplateNotFound     ScheduleErrorCode = "SCH-020002"
	ErrCodeSavedItemNotFound    ScheduleErrorCode = "SCH-020003"
)

// ScheduleError represents a schedule error with code and message.
type ScheduleError struct {
	Code    ScheduleErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ScheduleError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ScheduleError) Unwrap() error {
	return e.Err
}

// NewScheduleError creates a new ScheduleError with the given code and message.
func NewScheduleError(code ScheduleErrorCode, message string, err error) *ScheduleError {
	return &ScheduleError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// ScheduleValidationError maps a domain validation sentinel to its coded error.
func ScheduleValidationError(err error) *ScheduleError {
	switch {
	case errors.Is(err, ErrMissingScheduleTitle):
		return NewScheduleError(ErrCodeMissingScheduleTitle, err.Error(), err)
	case errors.Is(err, ErrMissingHabitReference):
		return NewScheduleError(ErrCodeMissingHabitReference, err.Error(), err)
	case errors.Is(err, ErrInvalidTimeFormat):
		return NewScheduleError(ErrCodeInvalidTimeFormat, err.Error(), err)
	case errors.Is(err, ErrInvalidTimeRange):
		return NewScheduleError(ErrCodeInvalidTimeRange, err.Error(), err)
	case errors.Is(err, ErrInvalidScheduleDate):
		return NewScheduleError(ErrCodeInvalidScheduleDate, err.Error(), err)
	case errors.Is(err, ErrMissingTemplateName):
		return NewScheduleError(ErrCodeMissingTemplateName, err.Error(), err)
	case errors.Is(err, ErrEmptyTemplate):
		return NewScheduleError(ErrCodeEmptyTemplate, err.Error(), err)
	default:
		return NewScheduleError(ErrCodeMissingScheduleTitle, "invalid schedule item", err)
	}
}

package error

import "errors"

// Todo domain errors.
var (
	// ErrTodoNotFound is returned when a todo is not found.
	ErrTodoNotFound = errors.New("todo not found")

	// ErrMissingTodoTitle is returned when a todo has no title.
	ErrMissingTodoTitle = errors.New("title is required")

	// ErrInvalidPriority is returned for priorities outside none, low, medium and high.
	ErrInvalidPriority = errors.New("priority must be: none, low, medium, or high")
)

// TodoErrorCode defines error codes for todo errors.
type TodoErrorCode string

const (
	ErrCodeMissingTodoTitle TodoErrorCode = "TDO-010001"
	ErrCodeInvalidPriority  TodoErrorCode = "TDO-010002"
	ErrCodeInvalidTodoDate  TodoErrorCode = "TDO-010003"
	ErrCodeInvalidTodoID    TodoErrorCode = "TDO-010004"
	ErrCodeTodoNotFound     TodoErrorCode = "TDO-020001"
)

// TodoError represents a todo error with code and message.
type TodoError struct {
	Code    TodoErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *TodoError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *TodoError) Unwrap() error {
	return e.Err
}

// NewTodoError creates a new TodoError with the given code and message.
func NewTodoError(code TodoErrorCode, message string, err error) *TodoError {
	return &TodoError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

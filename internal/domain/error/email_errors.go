package error

import "errors"

var (
	// ErrInvalidTemplate is returned when a queued job names a template the renderer does not know.
	ErrInvalidTemplate = errors.New("invalid email template")

	// ErrPermanentEmailFailure marks a send that will never succeed, such as a rejected recipient.
	ErrPermanentEmailFailure = errors.New("permanent email failure")
)

// EmailErrorCode identifies a goal-notification email failure.
// Format: EMAIL-XXYYYY, 01 queueing, 02 delivery, 03 templates.
type EmailErrorCode string

const (
	ErrCodeEmailQueueFailed EmailErrorCode = "EMAIL-010001"

	ErrCodePermanentEmailFailure EmailErrorCode = "EMAIL-020002"
	ErrCodeTemporaryEmailFailure EmailErrorCode = "EMAIL-020003"

	ErrCodeInvalidTemplate EmailErrorCode = "EMAIL-030001"
)

// EmailError wraps a failure while queueing, rendering or sending a notification email.
type EmailError struct {
	Code    EmailErrorCode
	Message string
	Err     error
}

func (e *EmailError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *EmailError) Unwrap() error {
	return e.Err
}

// Permanent reports whether retrying the job is pointless.
// Unknown templates never render, so they count as permanent too.
func (e *EmailError) Permanent() bool {
	return e.Code == ErrCodePermanentEmailFailure || e.Code == ErrCodeInvalidTemplate
}

// NewEmailError creates a new EmailError with the given code and message.
func NewEmailError(code EmailErrorCode, message string, err error) *EmailError {
	return &EmailError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

package error

import "errors"

// Persistence errors.
var (
	// ErrSnapshotRead is returned when a snapshot document cannot be loaded or decoded.
	ErrSnapshotRead = errors.New("failed to load saved data")

	// ErrSnapshotWrite is returned when a snapshot document cannot be written.
	ErrSnapshotWrite = errors.New("failed to save changes")
)

// PersistenceErrorCode defines error codes for snapshot persistence failures.
type PersistenceErrorCode string

const (
	ErrCodeSnapshotRead  PersistenceErrorCode = "PER-990001"
	ErrCodeSnapshotWrite PersistenceErrorCode = "PER-990002"
)

// PersistenceError is surfaced to clients with a generic message; the cause is only logged.
type PersistenceError struct {
	Code    PersistenceErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *PersistenceError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// NewSnapshotReadError wraps a failed load.
func NewSnapshotReadError(err error) *PersistenceError {
	return &PersistenceError{Code: ErrCodeSnapshotRead, Message: ErrSnapshotRead.Error(), Err: err}
}

// NewSnapshotWriteError wraps a failed save.
func NewSnapshotWriteError(err error) *PersistenceError {
	return &PersistenceError{Code: ErrCodeSnapshotWrite, Message: ErrSnapshotWrite.Error(), Err: err}
}

package errors

import (
	"errors"
	"fmt"
	"io/fs"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

const (
	ErrUnknown  ErrorCode = "UNKNOWN"
	ErrInternal ErrorCode = "INTERNAL"

	// User facing failures
	ErrOperationFailed ErrorCode = "OPERATION_FAILED"
	ErrDuplicatePath   ErrorCode = "DUPLICATE_PATH"

	// Configuration errors
	ErrConfig            ErrorCode = "CONFIG"
	ErrConfigPathMissing ErrorCode = "CONFIG_PATH_MISSING"

	// FileSystem errors
	ErrFileNotFound ErrorCode = "FILE_NOT_FOUND"
	ErrPermission   ErrorCode = "PERMISSION"
	ErrFileSystem   ErrorCode = "FILE_SYSTEM"
	ErrIO           ErrorCode = "IO"
)

// FugaError represents a structured error with code and details
type FugaError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface. Messages are shown to users as-is,
// so the code is kept out of the string.
func (e *FugaError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Wrapped)
	}
	return e.Message
}

// Unwrap implements the errors.Unwrap interface
func (e *FugaError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *FugaError) Is(target error) bool {
	var targetErr *FugaError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new FugaError with the given code and message
func New(code ErrorCode, message string) *FugaError {
	return &FugaError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new FugaError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *FugaError {
	return New(code, fmt.Sprintf(format, args...))
}

// Wrap wraps an existing error with a FugaError
func Wrap(err error, code ErrorCode, message string) *FugaError {
	if err == nil {
		return nil
	}
	e := New(code, message)
	e.Wrapped = err
	return e
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *FugaError {
	if err == nil {
		return nil
	}
	return Wrap(err, code, fmt.Sprintf(format, args...))
}

// WithDetail adds a detail to the error
func (e *FugaError) WithDetail(key string, value interface{}) *FugaError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// FileNotFound reports a path that does not exist.
func FileNotFound(path string) *FugaError {
	return Newf(ErrFileNotFound, "File not found: %s", path).WithDetail("path", path)
}

// PermissionDenied always names the concrete path together with the OS message.
func PermissionDenied(path string, cause error) *FugaError {
	msg := "permission denied"
	if cause != nil {
		msg = cause.Error()
	}
	return Newf(ErrPermission, "Permission denied for %s: %s", path, msg).WithDetail("path", path)
}

// OperationFailed is the generic user-facing failure.
func OperationFailed(message string) *FugaError {
	return Newf(ErrOperationFailed, "Operation failed: %s", message)
}

// DuplicatePath reports a copy, move or link whose source and destination
// resolve to the same absolute path.
func DuplicatePath(source, destination string) *FugaError {
	return Newf(ErrDuplicatePath, "Source and destination are the same: %s -> %s", source, destination).
		WithDetail("source", source).
		WithDetail("destination", destination)
}

// FileSystem wraps failures of the underlying copy, move and link primitives.
func FileSystem(message string) *FugaError {
	return Newf(ErrFileSystem, "File system error: %s", message)
}

// Config reports a persistence layer failure.
func Config(err error) *FugaError {
	return Newf(ErrConfig, "Configuration error: %v", err)
}

// ConfigPathMissing is returned when no configuration location can be determined.
func ConfigPathMissing() *FugaError {
	return New(ErrConfigPathMissing, "Configuration path is missing")
}

// FromIOError classifies an OS error for path.
func FromIOError(err error, path string) *FugaError {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, fs.ErrNotExist):
		return FileNotFound(path)
	case errors.Is(err, fs.ErrPermission):
		return PermissionDenied(path, unwrapPathError(err))
	default:
		return Wrapf(err, ErrIO, "I/O error for %s", path)
	}
}

// unwrapPathError drops the op/path prefix of *fs.PathError so the path is
// not repeated in the final message.
func unwrapPathError(err error) error {
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		return pathErr.Err
	}
	return err
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var fugaErr *FugaError
	if errors.As(err, &fugaErr) {
		return fugaErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a FugaError
func GetErrorCode(err error) ErrorCode {
	var fugaErr *FugaError
	if errors.As(err, &fugaErr) {
		return fugaErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a FugaError
func GetErrorDetails(err error) map[string]interface{} {
	var fugaErr *FugaError
	if errors.As(err, &fugaErr) {
		return fugaErr.Details
	}
	return nil
}

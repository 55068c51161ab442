package errors

import (
	stderrors "errors"
	"fmt"
)

// AppError is the unified error type.
type AppError struct {
	// Code is a machine-readable error code.
	Code ErrorCode `json:"code"`
	// Message is a human-readable error message.
	Message string `json:"message"`
	// Details contains additional context for the error.
	Details map[string]any `json:"details,omitempty"`
	// Cause is the underlying error that caused this error.
	Cause error `json:"-"`
}

// Error returns the string representation of the error.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause of the error.
func (e *AppError) Unwrap() error { return e.Cause }

// Is reports whether target is an *AppError with the same code, so that
// code-only sentinels match errors carrying extra details.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

// WithCause sets the underlying cause of the error and returns the receiver.
func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

// WithDetail sets a single detail key-value pair and returns the receiver.
func (e *AppError) WithDetail(key string, value any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// New creates a new AppError.
func New(code ErrorCode, message string) *AppError {
	return &AppError{Code: code, Message: message}
}

// --- Common Error Constructors ---

// EndlessStream creates the error reported when op needs a finite stream
// but received one declared endless.
func EndlessStream(op string) *AppError {
	return &AppError{
		Code:    ErrCodeEndlessStream,
		Message: fmt.Sprintf("%s requires a finite stream", op),
		Details: map[string]any{"operation": op},
	}
}

// NotClonable creates the error reported when op needs to copy a stage
// chain that contains a non-clonable stage.
func NotClonable(op string) *AppError {
	return &AppError{
		Code:    ErrCodeNotClonable,
		Message: fmt.Sprintf("%s requires a clonable stream", op),
		Details: map[string]any{"operation": op},
	}
}

// InvalidArgument creates an error for a bad stage argument.
func InvalidArgument(arg, reason string) *AppError {
	details := make(map[string]any)
	if arg != "" {
		details["argument"] = arg
	}
	return &AppError{
		Code:    ErrCodeInvalidArgument,
		Message: fmt.Sprintf("Invalid argument: %s", reason),
		Details: details,
	}
}

// InvalidConfig creates an error for configuration that could not be loaded.
func InvalidConfig(source string, cause error) *AppError {
	return &AppError{
		Code:    ErrCodeInvalidConfig,
		Message: fmt.Sprintf("Unable to load configuration from %s.", source),
		Details: map[string]any{"source": source},
		Cause:   cause,
	}
}

// Validation creates a new AppError for validation errors.
func Validation(message string) *AppError {
	return &AppError{Code: ErrCodeInvalidInput, Message: message}
}

// Internal creates a new AppError for an unexpected failure.
func Internal(cause error) *AppError {
	return &AppError{
		Code:    ErrCodeInternal,
		Message: "An unexpected error occurred.",
		Cause:   cause,
	}
}

// IsAppError checks if an error is an AppError.
func IsAppError(err error) bool {
	var appErr *AppError
	return stderrors.As(err, &appErr)
}

// AsAppError converts an error to an AppError if possible.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// HasCode reports whether err is, or wraps, an AppError with code.
func HasCode(err error, code ErrorCode) bool {
	appErr, ok := AsAppError(err)
	return ok && appErr.Code == code
}

// Is forwards to the standard library errors.Is so callers need a single
// errors import.
func Is(err, target error) bool { return stderrors.Is(err, target) }

// As forwards to the standard library errors.As.
func As(err error, target any) bool { return stderrors.As(err, target) }

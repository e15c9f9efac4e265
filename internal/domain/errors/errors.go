package errors

import (
	"net/http"

	"addressbook/internal/errors"
)

// Kind classifies an AppError into one of the failure families surfaced to callers.
type Kind int

const (
	KindInternal Kind = iota
	KindNotFound
	KindValidation
	KindConflict
)

// String returns the lowercase name of the kind, used in logs.
func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindValidation:
		return "validation"
	case KindConflict:
		return "conflict"
	default:
		return "internal"
	}
}

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	Kind() Kind        // Failure family
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-facing detail
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	kind      Kind
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(kind Kind, httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		kind:      kind,
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// Kind returns the failure family
func (e *BaseError) Kind() Kind {
	return e.kind
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-facing detail
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// Is reports whether target is a BaseError with the same error code.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return t.errorCode == e.errorCode
}

// NewValidationError builds a one-off validation failure with a custom detail message.
func NewValidationError(message string) *BaseError {
	return NewBaseError(KindValidation, http.StatusBadRequest, ErrValidationFailed.errorCode, message, "")
}

// Predefined error types
var (
	// Address-related errors
	ErrAddressNotFound = NewBaseError(
		KindNotFound,
		http.StatusNotFound,
		"ADDRESS_NOT_FOUND",
		"Address not found",
		"",
	)

	ErrAddressCoordinatesConflict = NewBaseError(
		KindConflict,
		http.StatusBadRequest,
		"ADDRESS_COORDINATES_CONFLICT",
		"Address with given coordinates already exists",
		"",
	)

	ErrAddressCoordinatesTaken = NewBaseError(
		KindConflict,
		http.StatusBadRequest,
		"ADDRESS_COORDINATES_TAKEN",
		"Updated coordinates matches with the coordinates of another address",
		"",
	)

	ErrCoordinatesNotChanged = NewBaseError(
		KindValidation,
		http.StatusBadRequest,
		"COORDINATES_NOT_CHANGED",
		"Latitude and longitude are not changed",
		"",
	)

	// User-related errors
	ErrUserNotFound = NewBaseError(
		KindNotFound,
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"User not found",
		"",
	)

	ErrUserEmailConflict = NewBaseError(
		KindConflict,
		http.StatusBadRequest,
		"USER_EMAIL_CONFLICT",
		"User with given email already exists",
		"",
	)

	ErrUserEmailTaken = NewBaseError(
		KindConflict,
		http.StatusBadRequest,
		"USER_EMAIL_TAKEN",
		"Email is been used by another user",
		"",
	)

	ErrEmailNotChanged = NewBaseError(
		KindValidation,
		http.StatusBadRequest,
		"EMAIL_NOT_CHANGED",
		"Email is not changed",
		"",
	)

	// Validation-related errors
	ErrNoValuesToUpdate = NewBaseError(
		KindValidation,
		http.StatusBadRequest,
		"NO_VALUES_TO_UPDATE",
		"No values to update",
		"",
	)

	ErrValidationFailed = NewBaseError(
		KindValidation,
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		KindInternal,
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// Unwrap exposes the driver error.
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// Kind returns KindInternal
func (e *DatabaseExecuteError) Kind() Kind {
	return KindInternal
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-facing detail
func (e *DatabaseExecuteError) Message() string {
	return "Internal server error"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}

// KindOf returns the kind of the first AppError in err's chain, or KindInternal.
func KindOf(err error) Kind {
	var appErr AppError
	if errors.As(err, &appErr) {
		return appErr.Kind()
	}

	return KindInternal
}

// IsNotFound reports whether err is a not-found failure.
func IsNotFound(err error) bool {
	return KindOf(err) == KindNotFound
}

// IsValidation reports whether err is a validation failure.
func IsValidation(err error) bool {
	return KindOf(err) == KindValidation
}

// IsConflict reports whether err is a uniqueness conflict.
func IsConflict(err error) bool {
	return KindOf(err) == KindConflict
}

package errors

import (
	"maps"
	"net/http"
	"sort"
	"strings"

	"storefront/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
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

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Catalog-related errors
	ErrProductNotFound = NewBaseError(
		http.StatusNotFound,
		"PRODUCT_NOT_FOUND",
		"Product not found",
		"",
	)

	// Cart and checkout errors
	ErrEmptyCart = NewBaseError(
		http.StatusBadRequest,
		"EMPTY_CART",
		"Your cart is empty",
		"",
	)

	ErrSubmissionInProgress = NewBaseError(
		http.StatusConflict,
		"SUBMISSION_IN_PROGRESS",
		"An order is already being placed",
		"",
	)

	ErrOrderSubmissionFailed = NewBaseError(
		http.StatusBadGateway,
		"ORDER_SUBMISSION_FAILED",
		"Failed to place order. Please try again.",
		"",
	)

	ErrOrderHistoryUnavailable = NewBaseError(
		http.StatusBadGateway,
		"ORDER_HISTORY_UNAVAILABLE",
		"Failed to load orders",
		"",
	)

	// Navigation errors
	ErrInvalidTransition = NewBaseError(
		http.StatusConflict,
		"INVALID_TRANSITION",
		"That action is not available from the current view",
		"",
	)

	ErrUnknownAction = NewBaseError(
		http.StatusBadRequest,
		"UNKNOWN_ACTION",
		"Unknown navigation action",
		"",
	)

	// Preference errors
	ErrInvalidHeroVariant = NewBaseError(
		http.StatusBadRequest,
		"INVALID_HERO_VARIANT",
		"Unknown hero image option",
		"",
	)

	// Persistence errors
	ErrStorageUnavailable = NewBaseError(
		http.StatusInsufficientStorage,
		"STORAGE_UNAVAILABLE",
		"Could not save your changes",
		"",
	)

	// Session errors
	ErrSessionInvalid = NewBaseError(
		http.StatusUnauthorized,
		"SESSION_INVALID",
		"Invalid or expired session",
		"",
	)

	// Share errors
	ErrShareFailed = NewBaseError(
		http.StatusInternalServerError,
		"SHARE_FAILED",
		"Failed to share product",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)
)

// ValidationError reports per-field validation failures, keyed by field name.
type ValidationError struct {
	fields map[string]string
}

// NewValidationError creates a validation error from field messages.
func NewValidationError(fields map[string]string) *ValidationError {
	return &ValidationError{fields: fields}
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.fields))
	for k := range e.fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.fields[k])
	}

	return "validation failed: " + strings.Join(parts, "; ")
}

// HTTPCode returns the HTTP status code
func (e *ValidationError) HTTPCode() int {
	return http.StatusBadRequest
}

// ErrorCode returns the business error code
func (e *ValidationError) ErrorCode() string {
	return ErrValidationFailed.ErrorCode()
}

// Message returns the user-friendly error message
func (e *ValidationError) Message() string {
	return ErrValidationFailed.Message()
}

// Details returns the joined field messages
func (e *ValidationError) Details() string {
	return e.Error()
}

// Fields returns a copy of the per-field messages.
func (e *ValidationError) Fields() map[string]string {
	return maps.Clone(e.fields)
}

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

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Database operation failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}

// Unwrap returns the underlying database error
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

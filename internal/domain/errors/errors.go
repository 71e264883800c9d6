package errors

import (
	"fmt"
	"net/http"

	"tilemart/internal/errors"
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
	// ErrValidation is returned when required input is missing or malformed.
	// It is detected before any network call and is never retried automatically.
	ErrValidation = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"input validation failed",
		"",
	)

	// ErrAuthRequired is returned when an operation needs an authenticated
	// session; the caller resolves it by redirecting to login.
	ErrAuthRequired = NewBaseError(
		http.StatusUnauthorized,
		"AUTH_REQUIRED",
		"please login to continue",
		"",
	)

	// ErrForbidden is returned when the current role does not hold the
	// required capability.
	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"access denied",
		"",
	)

	// ErrDecodeFailed is returned when a selected file cannot be decoded as
	// an image; it aborts the create flow before any network call.
	ErrDecodeFailed = NewBaseError(
		http.StatusBadRequest,
		"IMAGE_DECODE_FAILED",
		"selected file could not be decoded as an image",
		"",
	)

	// ErrNetworkFailure is returned when the catalog API is unreachable.
	ErrNetworkFailure = NewBaseError(
		http.StatusBadGateway,
		"NETWORK_FAILURE",
		"catalog service unreachable",
		"",
	)

	// ErrTileNotFound is returned when the catalog no longer has a tile.
	ErrTileNotFound = NewBaseError(
		http.StatusNotFound,
		"TILE_NOT_FOUND",
		"tile not found",
		"",
	)

	// ErrInvalidCredentials is returned on a rejected login attempt.
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"email or password incorrect",
		"",
	)

	// ErrInternalError covers anything not mapped to a more specific value.
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"internal error",
		"",
	)
)

// UploadFailedError is surfaced when the seller-upload endpoint returns a
// non-success status. The draft that produced it stays intact for retry.
type UploadFailedError struct {
	Status int
	Body   string
}

// Error implements the error interface
func (e *UploadFailedError) Error() string {
	return fmt.Sprintf("upload failed: %d %s", e.Status, e.Body)
}

// HTTPCode returns the HTTP status code
func (e *UploadFailedError) HTTPCode() int {
	return e.Status
}

// ErrorCode returns the business error code
func (e *UploadFailedError) ErrorCode() string {
	return "UPLOAD_FAILED"
}

// Message returns the user-friendly error message
func (e *UploadFailedError) Message() string {
	return "failed to upload tile"
}

// Details returns detailed error information
func (e *UploadFailedError) Details() string {
	return e.Body
}

// UpdateFailedError is surfaced when a tile update is rejected; editing state
// is retained so the seller can correct and resubmit.
type UpdateFailedError struct {
	Body string
}

// Error implements the error interface
func (e *UpdateFailedError) Error() string {
	return fmt.Sprintf("update failed: %s", e.Body)
}

// HTTPCode returns the HTTP status code
func (e *UpdateFailedError) HTTPCode() int {
	return http.StatusBadGateway
}

// ErrorCode returns the business error code
func (e *UpdateFailedError) ErrorCode() string {
	return "UPDATE_FAILED"
}

// Message returns the user-friendly error message
func (e *UpdateFailedError) Message() string {
	return "failed to update tile"
}

// Details returns detailed error information
func (e *UpdateFailedError) Details() string {
	return e.Body
}

// DeleteFailedError is surfaced when a tile deletion is rejected; the tile
// remains listed.
type DeleteFailedError struct {
	Body string
}

// Error implements the error interface
func (e *DeleteFailedError) Error() string {
	return fmt.Sprintf("delete failed: %s", e.Body)
}

// HTTPCode returns the HTTP status code
func (e *DeleteFailedError) HTTPCode() int {
	return http.StatusBadGateway
}

// ErrorCode returns the business error code
func (e *DeleteFailedError) ErrorCode() string {
	return "DELETE_FAILED"
}

// Message returns the user-friendly error message
func (e *DeleteFailedError) Message() string {
	return "failed to delete tile"
}

// Details returns detailed error information
func (e *DeleteFailedError) Details() string {
	return e.Body
}

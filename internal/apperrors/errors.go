package apperrors

import (
	"errors"
	"net/http"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnsupportedCurrency indicates a currency code outside the fixed supported set.
var ErrUnsupportedCurrency = errors.New("unsupported currency")

// ErrConversion indicates that the upstream rate lookup failed or returned incomplete data.
var ErrConversion = errors.New("currency conversion failed")

// AppError carries an HTTP-ish status code and a human readable message
// alongside the underlying cause. It unwraps to the cause so callers can
// keep using errors.Is against the sentinels above.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	if e.Message == "" {
		return e.Err.Error()
	}
	return e.Message + ": " + e.Err.Error()
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates an AppError wrapping err.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewValidationError creates an error matching ErrValidation.
func NewValidationError(message string) *AppError {
	return &AppError{Code: http.StatusBadRequest, Message: message, Err: ErrValidation}
}

// NewNotFoundError creates an error matching ErrNotFound.
func NewNotFoundError(message string) *AppError {
	return &AppError{Code: http.StatusNotFound, Message: message, Err: ErrNotFound}
}

// NewUnsupportedCurrencyError creates an error matching ErrUnsupportedCurrency.
func NewUnsupportedCurrencyError(code string) *AppError {
	return &AppError{Code: http.StatusBadRequest, Message: "currency '" + code + "'", Err: ErrUnsupportedCurrency}
}

// NewConversionError creates an error matching ErrConversion. cause may be nil.
func NewConversionError(message string, cause error) *AppError {
	if cause == nil {
		return &AppError{Code: http.StatusBadGateway, Message: message, Err: ErrConversion}
	}
	return &AppError{Code: http.StatusBadGateway, Message: message, Err: errors.Join(ErrConversion, cause)}
}

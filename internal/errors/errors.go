package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
)

// ErrorType represents the type of error
type ErrorType string

const (
	ErrorTypeValidation       ErrorType = "validation"
	ErrorTypeMissingParameter ErrorType = "missing_parameter"
	ErrorTypeEmptyResult      ErrorType = "empty_result"
	ErrorTypeDatabase         ErrorType = "database"
	ErrorTypeNotFound         ErrorType = "not_found"
	ErrorTypeInternal         ErrorType = "internal"
	ErrorTypeUnavailable      ErrorType = "service_unavailable"
)

// EmptyResultMessage is returned to callers when an aggregate has nothing to work on.
const EmptyResultMessage = "Error when processing request"

// FieldErrors maps a payload field to everything wrong with it
type FieldErrors map[string][]string

// Add records a message for a field
func (f FieldErrors) Add(field, msg string) {
	f[field] = append(f[field], msg)
}

// APIError represents a structured API error
type APIError struct {
	Type      ErrorType `json:"type"`
	Message   string    `json:"message"`
	Code      int       `json:"code"`
	RequestID string    `json:"request_id,omitempty"`
	Details   any       `json:"details,omitempty"`
	err       error     // Internal error for logging
}

// Error implements the error interface
func (e *APIError) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: %s (internal: %v)", e.Type, e.Message, e.err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func (e *APIError) Unwrap() error {
	return e.err
}

// WithRequestID adds a request ID to the error
func (e *APIError) WithRequestID(id string) *APIError {
	e.RequestID = id
	return e
}

// WithDetails adds additional details to the error
func (e *APIError) WithDetails(details any) *APIError {
	e.Details = details
	return e
}

// NewValidationError creates a new validation error
func NewValidationError(msg string, err error) *APIError {
	return &APIError{
		Type:    ErrorTypeValidation,
		Message: msg,
		Code:    http.StatusBadRequest,
		err:     err,
	}
}

// NewFieldValidationError creates a validation error listing every violated field
func NewFieldValidationError(fields FieldErrors) *APIError {
	return NewValidationError("invalid reading", nil).WithDetails(fields)
}

// NewMissingParameterError creates an error for an absent required query parameter
func NewMissingParameterError(param string) *APIError {
	return &APIError{
		Type:    ErrorTypeMissingParameter,
		Message: fmt.Sprintf("%s is a required parameter", param),
		Code:    http.StatusBadRequest,
	}
}

// NewEmptyResultError creates an error for an aggregate over no rows
func NewEmptyResultError(err error) *APIError {
	return &APIError{
		Type:    ErrorTypeEmptyResult,
		Message: EmptyResultMessage,
		Code:    http.StatusNotFound,
		err:     err,
	}
}

// NewDatabaseError creates a new database error
func NewDatabaseError(msg string, err error) *APIError {
	return &APIError{
		Type:    ErrorTypeDatabase,
		Message: msg,
		Code:    http.StatusInternalServerError,
		err:     err,
	}
}

// NewNotFoundError creates a new not found error
func NewNotFoundError(msg string, err error) *APIError {
	return &APIError{
		Type:    ErrorTypeNotFound,
		Message: msg,
		Code:    http.StatusNotFound,
		err:     err,
	}
}

// NewInternalError creates a new internal server error
func NewInternalError(msg string, err error) *APIError {
	return &APIError{
		Type:    ErrorTypeInternal,
		Message: msg,
		Code:    http.StatusInternalServerError,
		err:     err,
	}
}

// NewUnavailableError creates a new service unavailable error
func NewUnavailableError(msg string, err error) *APIError {
	return &APIError{
		Type:    ErrorTypeUnavailable,
		Message: msg,
		Code:    http.StatusServiceUnavailable,
		err:     err,
	}
}

// AsAPIError returns err as an APIError, wrapping unknown errors as internal
func AsAPIError(err error) *APIError {
	var apiErr *APIError
	if stderrors.As(err, &apiErr) {
		return apiErr
	}
	return NewInternalError("internal server error", err)
}

func isType(err error, t ErrorType) bool {
	var apiErr *APIError
	if stderrors.As(err, &apiErr) {
		return apiErr.Type == t
	}
	return false
}

// IsNotFound checks if an error is a NotFound error
func IsNotFound(err error) bool {
	return isType(err, ErrorTypeNotFound)
}

// IsValidation checks if an error is a Validation error
func IsValidation(err error) bool {
	return isType(err, ErrorTypeValidation)
}

// IsEmptyResult checks if an error is an EmptyResult error
func IsEmptyResult(err error) bool {
	return isType(err, ErrorTypeEmptyResult)
}

// IsMissingParameter checks if an error is a MissingParameter error
func IsMissingParameter(err error) bool {
	return isType(err, ErrorTypeMissingParameter)
}

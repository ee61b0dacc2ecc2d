package errors

import (
	"fmt"
	"net/http"

	"github.com/NomadCrew/tripboard/logger"
)

type ErrorType string

const (
	ValidationError  ErrorType = "VALIDATION_ERROR"
	NotFoundError    ErrorType = "NOT_FOUND"
	ServerError      ErrorType = "SERVER_ERROR"
	UpstreamError    ErrorType = "UPSTREAM_ERROR"
	UnavailableError ErrorType = "SERVICE_UNAVAILABLE"
	RateLimitError   ErrorType = "RATE_LIMITED"
	StorageError     ErrorType = "STORAGE_ERROR"
)

// AppError represents a structured application error
type AppError struct {
	Type       ErrorType `json:"type"`
	Code       string    `json:"code"`
	Message    string    `json:"message"`
	Detail     string    `json:"detail,omitempty"`
	HTTPStatus int       `json:"-"`
	Raw        error     `json:"-"`
}

func (e *AppError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Type, e.Message, e.Detail)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Raw
}

// GetHTTPStatus returns the status the error handler should answer with.
func (e *AppError) GetHTTPStatus() int {
	if e.HTTPStatus == 0 {
		return getHTTPStatus(e.Type)
	}
	return e.HTTPStatus
}

// New creates a new AppError
func New(errType ErrorType, message string, detail string) *AppError {
	return &AppError{
		Type:       errType,
		Message:    message,
		Detail:     detail,
		HTTPStatus: getHTTPStatus(errType),
	}
}

// Wrap wraps a raw error with AppError context
func Wrap(err error, errType ErrorType, message string) *AppError {
	if err == nil {
		return nil
	}
	return &AppError{
		Type:       errType,
		Message:    message,
		Detail:     err.Error(),
		HTTPStatus: getHTTPStatus(errType),
		Raw:        err,
	}
}

// Helper functions for common errors
func NotFound(entity string, id interface{}) *AppError {
	return &AppError{
		Type:       NotFoundError,
		Message:    fmt.Sprintf("%s not found", entity),
		Detail:     fmt.Sprintf("ID: %v", id),
		HTTPStatus: http.StatusNotFound,
	}
}

func ValidationFailed(message string, details string) *AppError {
	return &AppError{
		Type:       ValidationError,
		Message:    message,
		Detail:     details,
		HTTPStatus: http.StatusBadRequest,
	}
}

func InternalServerError(message string) *AppError {
	return &AppError{
		Type:       ServerError,
		Message:    message,
		HTTPStatus: http.StatusInternalServerError,
	}
}

// UpstreamFailed reports a failing collaborator (trip backend, database).
func UpstreamFailed(service string, err error) *AppError {
	logger.GetLogger().Errorw("Upstream call failed", "service", service, "error", err)
	return &AppError{
		Type:       UpstreamError,
		Message:    fmt.Sprintf("%s request failed", service),
		Detail:     "Please try again later",
		HTTPStatus: http.StatusBadGateway,
		Raw:        err,
	}
}

// NewStorageError hides key-value store failures behind a generic message.
func NewStorageError(err error) *AppError {
	logger.GetLogger().Errorw("Storage error", "error", err)
	return &AppError{
		Type:       StorageError,
		Message:    "Storage operation failed",
		Detail:     "Please try again later",
		HTTPStatus: http.StatusInternalServerError,
		Raw:        err,
	}
}

func Unavailable(message string) *AppError {
	return &AppError{
		Type:       UnavailableError,
		Message:    message,
		HTTPStatus: http.StatusServiceUnavailable,
	}
}

func RateLimited(detail string) *AppError {
	return &AppError{
		Type:       RateLimitError,
		Message:    "Too many requests",
		Detail:     detail,
		HTTPStatus: http.StatusTooManyRequests,
	}
}

func getHTTPStatus(errType ErrorType) int {
	switch errType {
	case ValidationError:
		return http.StatusBadRequest
	case NotFoundError:
		return http.StatusNotFound
	case UpstreamError:
		return http.StatusBadGateway
	case UnavailableError:
		return http.StatusServiceUnavailable
	case RateLimitError:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

func NewError(errType ErrorType, code string, message string, status int) error {
	return &AppError{
		Type:       errType,
		Code:       code,
		Message:    message,
		HTTPStatus: status,
	}
}

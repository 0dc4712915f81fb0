// Package response writes HTTP bodies. Successful results are written bare;
// failures use a single error envelope.
package response

import (
	"net/http"

	deliverycontext "account/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

// InternalErrorMessage is the only message a 5xx response ever carries.
const InternalErrorMessage = "Internal server error"

// ErrorResponse defines the structure for error responses
type ErrorResponse struct {
	Error *ErrorInfo `json:"error"`
	Meta  *MetaInfo  `json:"meta"`
}

// ErrorInfo contains detailed error information
type ErrorInfo struct {
	Code    string `json:"code"`              // Machine-readable error code, e.g., "VALIDATION_FAILED"
	Message string `json:"message"`           // User-friendly error message
	Details any    `json:"details,omitempty"` // Additional error context (only for 4xx errors)
}

// MetaInfo represents response metadata
type MetaInfo struct {
	RequestID string `json:"request_id"` // Request tracking ID
}

// JSON writes data as the whole response body.
func JSON(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, data)
}

// OK returns a 200 with data as the body
func OK(c echo.Context, data any) error {
	return JSON(c, http.StatusOK, data)
}

// Created returns a 201 with data as the body
func Created(c echo.Context, data any) error {
	return JSON(c, http.StatusCreated, data)
}

// NoContent returns an empty 204
func NoContent(c echo.Context) error {
	return c.NoContent(http.StatusNoContent)
}

// Error returns an error response
func Error(c echo.Context, statusCode int, errorCode string, message string, details any) error {
	// Details should not be included for 5xx errors or authentication/authorization errors
	if statusCode >= http.StatusInternalServerError || statusCode == http.StatusUnauthorized || statusCode == http.StatusForbidden {
		details = nil
	}
	if statusCode >= http.StatusInternalServerError {
		message = InternalErrorMessage
	}

	return c.JSON(statusCode, ErrorResponse{
		Error: &ErrorInfo{
			Code:    errorCode,
			Message: message,
			Details: details,
		},
		Meta: &MetaInfo{
			RequestID: deliverycontext.GetRequestID(c),
		},
	})
}

// InternalServerError returns a 500 error
func InternalServerError(c echo.Context, errorCode string) error {
	return Error(c, http.StatusInternalServerError, errorCode, InternalErrorMessage, nil)
}

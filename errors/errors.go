// Package errors provides the error handling system for the promptgate server.
// It includes typed gateway errors, JSON error response formatting and
// integrated logging with Uber's zap logger.
//
// Every error leaves the server in the same wire shape:
//
//	{"error": "<human readable message>"}
//
// Internally each error carries a Type so handlers and logs can tell input
// validation failures apart from upstream provider failures, even though the
// client only ever sees the HTTP status and the message.
//
// Basic usage:
//
//	errors.WriteError(w, errors.NewValidationError(requestID, "Prompt is required"))
package errors

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// ErrorType represents the category of a failure. The category is never sent
// to clients; it drives status codes, logging and metrics.
type ErrorType string

const (
	// ValidationError represents input validation failures
	ValidationError ErrorType = "validation_error"

	// ProviderError represents failures of the upstream LLM provider
	ProviderError ErrorType = "provider_error"

	// InternalError represents unexpected internal server errors
	InternalError ErrorType = "internal_error"
)

// GatewayError is the server's error type. It implements the error interface
// and keeps the underlying cause for logging while serializing to the
// minimal {"error": message} body.
type GatewayError struct {
	// Type categorizes the error for internal handling
	Type ErrorType

	// Message is the human-readable description returned to the client
	Message string

	// Code is the HTTP status code
	Code int

	// RequestID links the error to a specific request in the logs
	RequestID string

	// err is the underlying error
	err error
}

// Error implements the error interface. It returns a string that
// combines the error type, message, and underlying error (if any).
func (e *GatewayError) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Type, e.Message, e.err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying error, implementing the unwrap
// interface for error chains.
func (e *GatewayError) Unwrap() error {
	return e.err
}

// Is implements error matching for errors.Is, allowing type-based
// error matching while ignoring other fields.
func (e *GatewayError) Is(target error) bool {
	t, ok := target.(*GatewayError)
	if !ok {
		return false
	}
	return e.Type == t.Type
}

// MarshalJSON renders the error in its wire form.
func (e *GatewayError) MarshalJSON() ([]byte, error) {
	return json.Marshal(ErrorResponse{Error: e.Message})
}

// WriteError formats and writes a GatewayError to an http.ResponseWriter.
// It sets the content type and status code, then writes the error body.
func WriteError(w http.ResponseWriter, err *GatewayError) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(err.Code)
	json.NewEncoder(w).Encode(err)
}

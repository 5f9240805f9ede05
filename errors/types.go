package errors

import (
	"net/http"
)

// MsgPromptRequired is the fixed message for requests without a usable prompt.
const MsgPromptRequired = "Prompt is required"

// msgProviderFallback is used when the provider failed without a description.
const msgProviderFallback = "upstream request failed"

// NewError creates a new GatewayError with the given parameters.
// It is a general-purpose constructor that allows full control over
// the error's fields. For most cases, use one of the specialized
// constructors below.
//
// Example:
//
//	err := NewError(InternalError, "encoding failed", 500, "req_123", encErr)
func NewError(errType ErrorType, message string, code int, requestID string, err error) *GatewayError {
	return &GatewayError{
		Type:      errType,
		Message:   message,
		Code:      code,
		RequestID: requestID,
		err:       err,
	}
}

// NewValidationError creates a validation error. Use this for any request
// validation failure, such as an unparseable body or a missing prompt.
//
// Example:
//
//	err := NewValidationError("req_123", MsgPromptRequired)
func NewValidationError(requestID, message string) *GatewayError {
	return &GatewayError{
		Type:      ValidationError,
		Message:   message,
		Code:      http.StatusBadRequest,
		RequestID: requestID,
	}
}

// NewProviderError creates a provider error from an upstream failure.
// The message is the stringified cause so callers see what went wrong,
// whatever the kind of failure (network, authentication, quota, timeout).
//
// Example:
//
//	err := NewProviderError("req_123", providerErr)
func NewProviderError(requestID string, err error) *GatewayError {
	message := msgProviderFallback
	if err != nil && err.Error() != "" {
		message = err.Error()
	}
	return &GatewayError{
		Type:      ProviderError,
		Message:   message,
		Code:      http.StatusInternalServerError,
		RequestID: requestID,
		err:       err,
	}
}

// NewInternalError creates an internal server error for unexpected failures
// that are not covered by the other types, such as panics or response
// encoding failures.
//
// Example:
//
//	err := NewInternalError("req_123", encErr)
func NewInternalError(requestID string, err error) *GatewayError {
	message := "An internal error occurred"
	if err != nil && err.Error() != "" {
		message = err.Error()
	}
	return &GatewayError{
		Type:      InternalError,
		Message:   message,
		Code:      http.StatusInternalServerError,
		RequestID: requestID,
		err:       err,
	}
}

package errors

import (
	"errors"
	"testing"
)

func TestGatewayError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *GatewayError
		want string
	}{
		{
			name: "basic error without wrapped error",
			err: &GatewayError{
				Type:    ValidationError,
				Message: "Prompt is required",
			},
			want: "validation_error: Prompt is required",
		},
		{
			name: "error with wrapped error",
			err: &GatewayError{
				Type:    ProviderError,
				Message: "generation failed",
				err:     errors.New("connection refused"),
			},
			want: "provider_error: generation failed: connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.err.Error()
			if got != tt.want {
				t.Errorf("GatewayError.Error() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGatewayError_Is(t *testing.T) {
	err1 := &GatewayError{Type: ProviderError, Message: "test1"}
	err2 := &GatewayError{Type: ProviderError, Message: "test2"}
	err3 := &GatewayError{Type: ValidationError, Message: "test3"}

	if !errors.Is(err1, err2) {
		t.Error("Expected errors.Is(err1, err2) to be true for same error type")
	}

	if errors.Is(err1, err3) {
		t.Error("Expected errors.Is(err1, err3) to be false for different error types")
	}
}

func TestGatewayError_Unwrap(t *testing.T) {
	innerErr := errors.New("inner error")
	err := NewProviderError("req-1", innerErr)

	if unwrapped := err.Unwrap(); unwrapped != innerErr {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, innerErr)
	}
	if !errors.Is(err, innerErr) {
		t.Error("Expected errors.Is to find the wrapped cause")
	}
}

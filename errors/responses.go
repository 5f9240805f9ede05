// Package errors provides error response utilities.
package errors

import (
	"errors"
)

// ErrorResponse is the body returned to clients when a request fails.
type ErrorResponse struct {
	Error string `json:"error"`
}

// As is a wrapper around errors.As for better error type assertion
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

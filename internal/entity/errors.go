package entity

import "errors"

// Domain errors
var (
	// Prompt input errors
	ErrMissingField     = errors.New("required field is missing")
	ErrMalformedContext = errors.New("context input cannot be serialized")
	ErrInvalidParameter = errors.New("invalid parameter")

	// Export errors
	ErrUnsupportedFormat = errors.New("unsupported export format")
)

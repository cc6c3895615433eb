package client

import (
	"errors"

	"github.com/mertdeveci5/apollo-tools/client/internal/types"
)

// Re-export shared SDK errors so callers compare against a single symbol.
type (
	// RequestError reports a transport failure or non-2xx Apollo response.
	RequestError = types.RequestError
	// DecodeError reports a response body that was not valid JSON.
	DecodeError = types.DecodeError
	// ValidationError reports rejected input; no network call was made.
	ValidationError = types.ValidationError
)

// IsRequestError reports whether err is a RequestError.
func IsRequestError(err error) bool {
	var re *RequestError
	return errors.As(err, &re)
}

// IsDecodeError reports whether err is a DecodeError.
func IsDecodeError(err error) bool {
	var de *DecodeError
	return errors.As(err, &de)
}

// IsValidationError reports whether err is a ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// errorKind labels an error for the failure counter.
func errorKind(err error) string {
	switch {
	case IsValidationError(err):
		return "validation"
	case IsDecodeError(err):
		return "decode"
	default:
		return "request"
	}
}

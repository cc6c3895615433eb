package types

import "fmt"

// ------------------------------
// Shared Errors
// ------------------------------
//
// Every operation fails with exactly one of these three kinds. An error
// return always means "no records produced"; there are no partial results
// and the SDK never retries.

// RequestError reports a failed HTTP exchange: a transport-level error or a
// non-2xx response from Apollo.
type RequestError struct {
	Op         string // operation name, e.g. "search_people"
	StatusCode int    // HTTP status (0 for transport errors)
	Body       string // response body for debugging, may be empty
	Underlying error  // transport error, nil for status failures
}

func (e *RequestError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s: request failed: HTTP %d", e.Op, e.StatusCode)
	}
	return fmt.Sprintf("%s: request failed: %v", e.Op, e.Underlying)
}

// Unwrap returns the underlying error for error chain compatibility.
func (e *RequestError) Unwrap() error { return e.Underlying }

// DecodeError reports a 2xx response whose body was not valid JSON.
type DecodeError struct {
	Op         string
	Underlying error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s: failed to decode JSON from response: %v", e.Op, e.Underlying)
}

func (e *DecodeError) Unwrap() error { return e.Underlying }

// ValidationError reports rejected input. It is returned before any network
// call is made.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

package imgur

import (
	"errors"
	"fmt"
)

// Common errors returned by the Imgur client.
var (
	// ErrMissingClientID indicates the client was constructed without a client id.
	ErrMissingClientID = errors.New("imgur client id is required")
	// ErrEmptyID indicates an operation was called with an empty identifier.
	ErrEmptyID = errors.New("identifier must not be empty")
	// ErrEmptyPin indicates Authorize was called with an empty pin code.
	ErrEmptyPin = errors.New("pin code must not be empty")
	// ErrMissingImage indicates an upload was attempted without image data.
	ErrMissingImage = errors.New("image data is required")
)

// RequestError represents an Imgur API error response. It is returned whenever
// the response envelope reports success=false or the HTTP status is outside
// the success range.
type RequestError struct {
	StatusCode int
	Message    string
}

// Error implements the error interface
func (e *RequestError) Error() string {
	return fmt.Sprintf("imgur API error: status %d: %s", e.StatusCode, e.Message)
}

// IsNotFound checks if the error indicates a not found response
func (e *RequestError) IsNotFound() bool {
	return e.StatusCode == 404
}

// IsUnauthorized checks if the error indicates an authentication failure
func (e *RequestError) IsUnauthorized() bool {
	return e.StatusCode == 401 || e.StatusCode == 403
}

// IsRateLimited checks if the error indicates the client hit Imgur's rate limit
func (e *RequestError) IsRateLimited() bool {
	return e.StatusCode == 429
}

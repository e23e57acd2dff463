package metadata

import (
	"errors"
	"fmt"
)

// Common errors
var (
	ErrVideoNotFound = errors.New("video not found")
	ErrProvider      = errors.New("metadata provider error")
)

// APIError represents an error from the YouTube Data API
type APIError struct {
	StatusCode int
	Message    string
	Endpoint   string
}

func (e APIError) Error() string {
	return fmt.Sprintf("API error from %s (status %d): %s", e.Endpoint, e.StatusCode, e.Message)
}

func (e APIError) Is(target error) bool {
	return target == ErrProvider
}

// NewAPIError creates a new APIError
func NewAPIError(endpoint string, statusCode int, message string) error {
	return APIError{
		Endpoint:   endpoint,
		StatusCode: statusCode,
		Message:    message,
	}
}

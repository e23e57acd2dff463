package captions

import (
	"errors"
	"fmt"
)

// Common errors
var (
	// ErrNoCaptions means the video has no caption tracks at all (or has
	// captions disabled). This is the only signal that should route a
	// request onto the audio transcription fallback.
	ErrNoCaptions = errors.New("no captions available")

	// ErrProvider covers every other provider-side failure: transport
	// errors, unexpected status codes, malformed payloads.
	ErrProvider = errors.New("caption provider error")
)

// APIError represents an error from the caption provider
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

package errors

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPCodeMapping(t *testing.T) {
	tests := []struct {
		name     string
		err      *AppError
		expected int
	}{
		{
			name:     "not found maps to 404",
			err:      NotFound("Video", "abc123"),
			expected: http.StatusNotFound,
		},
		{
			name:     "external service maps to 502",
			err:      ExternalServiceError("youtube", errors.New("quota exceeded")),
			expected: http.StatusBadGateway,
		},
		{
			name:     "internal maps to 500",
			err:      Wrap(errors.New("boom"), ErrCodeInternal, "something broke"),
			expected: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.GetHTTPCode())
		})
	}
}

func TestAppErrorMessageAndCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := ExternalServiceError("youtube", cause)

	assert.Contains(t, err.Error(), "EXTERNAL_SERVICE")
	assert.Contains(t, err.Error(), "connection refused")
	assert.Equal(t, cause, errors.Unwrap(err))
	assert.Equal(t, "youtube", err.Details["service"])
}

func TestNotFoundDetails(t *testing.T) {
	err := NotFound("Video", "abc123")

	require.NotNil(t, err.Details)
	assert.Equal(t, "Video not found", err.Message)
	assert.Equal(t, "Video", err.Details["resource"])
	assert.Equal(t, "abc123", err.Details["id"])
}

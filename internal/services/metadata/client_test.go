package metadata

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(serverURL string) *Client {
	return NewClient(Config{
		APIKey:  "test-key",
		BaseURL: serverURL,
		Timeout: 2 * time.Second,
	})
}

func TestGetVideo(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/videos", r.URL.Path)
		assert.Equal(t, "abc123", r.URL.Query().Get("id"))
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))
		assert.Equal(t, "snippet", r.URL.Query().Get("part"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"items": [{
				"id": "abc123",
				"snippet": {
					"title": "Test Video",
					"description": "A test description",
					"channelTitle": "Test Channel"
				}
			}]
		}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	video, err := client.GetVideo(context.Background(), "abc123")

	require.NoError(t, err)
	assert.Equal(t, "Test Video", video.Title)
	assert.Equal(t, "A test description", video.Description)
	assert.Equal(t, "Test Channel", video.Channel)
}

func TestGetVideoNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"items": []}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := client.GetVideo(context.Background(), "missing")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrVideoNotFound)
	assert.NotErrorIs(t, err, ErrProvider)
}

func TestGetVideoProviderError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"error": {"code": 403, "message": "quotaExceeded"}}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := client.GetVideo(context.Background(), "abc123")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrProvider)

	var apiErr APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusForbidden, apiErr.StatusCode)
	assert.Contains(t, apiErr.Message, "quotaExceeded")
}

func TestGetVideoTransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := newTestClient(server.URL)
	_, err := client.GetVideo(context.Background(), "abc123")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrProvider)
}

func TestGetVideoEmptyID(t *testing.T) {
	client := newTestClient("http://localhost:0")
	_, err := client.GetVideo(context.Background(), "")
	require.Error(t, err)
}

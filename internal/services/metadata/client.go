package metadata

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"time"
)

// Client handles communication with the YouTube Data API v3
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	userAgent  string
}

// Config holds configuration for the metadata client
type Config struct {
	APIKey    string
	BaseURL   string
	UserAgent string
	Timeout   time.Duration
	// ProxyURL routes all requests through a forward proxy when set.
	ProxyURL *url.URL
}

// NewClient creates a new YouTube Data API client
func NewClient(cfg Config) *Client {
	transport := http.DefaultTransport
	if cfg.ProxyURL != nil {
		transport = &http.Transport{Proxy: http.ProxyURL(cfg.ProxyURL)}
	}

	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://www.googleapis.com/youtube/v3"
	}

	if cfg.UserAgent == "" {
		cfg.UserAgent = "VideoInfoAPI/1.0"
	}

	return &Client{
		httpClient: &http.Client{
			Timeout:   cfg.Timeout,
			Transport: transport,
		},
		baseURL:   cfg.BaseURL,
		apiKey:    cfg.APIKey,
		userAgent: cfg.UserAgent,
	}
}

// GetVideo fetches the snippet metadata for a single video
func (c *Client) GetVideo(ctx context.Context, videoID string) (*Video, error) {
	if videoID == "" {
		return nil, fmt.Errorf("video ID cannot be empty")
	}

	params := url.Values{}
	params.Set("id", videoID)
	params.Set("key", c.apiKey)
	params.Set("part", "snippet")

	endpoint := fmt.Sprintf("%s/videos?%s", c.baseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, "GET", endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: executing request: %v", ErrProvider, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var apiErr apiErrorResponse
		msg := "unexpected status"
		if decodeErr := json.NewDecoder(resp.Body).Decode(&apiErr); decodeErr == nil && apiErr.Error.Message != "" {
			msg = apiErr.Error.Message
		}
		log.Printf("[ERROR] YouTube Data API returned status %d for video %s: %s", resp.StatusCode, videoID, msg)
		return nil, NewAPIError("videos.list", resp.StatusCode, msg)
	}

	var listResp videoListResponse
	if err := json.NewDecoder(resp.Body).Decode(&listResp); err != nil {
		return nil, fmt.Errorf("%w: decoding response: %v", ErrProvider, err)
	}

	if len(listResp.Items) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrVideoNotFound, videoID)
	}

	item := listResp.Items[0]
	return &Video{
		ID:          videoID,
		Title:       item.Snippet.Title,
		Description: item.Snippet.Description,
		Channel:     item.Snippet.ChannelTitle,
	}, nil
}

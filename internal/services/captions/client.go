package captions

import (
	"context"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Client fetches caption tracks from the platform's timedtext endpoint
type Client struct {
	httpClient        *http.Client
	baseURL           string
	preferredLanguage string
}

// Config holds configuration for the captions client
type Config struct {
	BaseURL           string
	PreferredLanguage string
	Timeout           time.Duration
	// ProxyURL routes all requests through a forward proxy when set.
	ProxyURL *url.URL
}

// NewClient creates a new captions client
func NewClient(cfg Config) *Client {
	transport := http.DefaultTransport
	if cfg.ProxyURL != nil {
		transport = &http.Transport{Proxy: http.ProxyURL(cfg.ProxyURL)}
	}

	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://video.google.com/timedtext"
	}

	if cfg.PreferredLanguage == "" {
		cfg.PreferredLanguage = "en"
	}

	return &Client{
		httpClient: &http.Client{
			Timeout:   cfg.Timeout,
			Transport: transport,
		},
		baseURL:           cfg.BaseURL,
		preferredLanguage: cfg.PreferredLanguage,
	}
}

// ListTracks returns the caption tracks available for a video.
// Returns ErrNoCaptions when the provider reports none.
func (c *Client) ListTracks(ctx context.Context, videoID string) ([]TrackInfo, error) {
	params := url.Values{}
	params.Set("type", "list")
	params.Set("v", videoID)

	body, err := c.get(ctx, params)
	if err != nil {
		return nil, err
	}

	// An empty body is how the provider reports "captions disabled".
	if len(strings.TrimSpace(string(body))) == 0 {
		return nil, fmt.Errorf("%w: video %s", ErrNoCaptions, videoID)
	}

	var list trackList
	if err := xml.Unmarshal(body, &list); err != nil {
		return nil, fmt.Errorf("%w: parsing track list: %v", ErrProvider, err)
	}

	if len(list.Tracks) == 0 {
		return nil, fmt.Errorf("%w: video %s", ErrNoCaptions, videoID)
	}

	tracks := make([]TrackInfo, 0, len(list.Tracks))
	for _, t := range list.Tracks {
		tracks = append(tracks, TrackInfo{
			Language: t.LangCode,
			Name:     t.Name,
			Default:  t.LangDefault,
		})
	}
	return tracks, nil
}

// FetchTrack lists the available tracks, selects one and returns its entries.
// The preferred language wins; otherwise the first track in provider order is
// used. That second choice is a fallback, not a failure.
func (c *Client) FetchTrack(ctx context.Context, videoID string) (*Track, error) {
	tracks, err := c.ListTracks(ctx, videoID)
	if err != nil {
		return nil, err
	}

	selected := tracks[0]
	for _, t := range tracks {
		if t.Language == c.preferredLanguage {
			selected = t
			break
		}
	}
	if selected.Language != c.preferredLanguage {
		log.Printf("[DEBUG] No %q caption track for video %s, using %q", c.preferredLanguage, videoID, selected.Language)
	}

	params := url.Values{}
	params.Set("v", videoID)
	params.Set("lang", selected.Language)
	params.Set("fmt", "json3")
	if selected.Name != "" {
		params.Set("name", selected.Name)
	}

	body, err := c.get(ctx, params)
	if err != nil {
		return nil, err
	}

	var payload timedText
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("%w: parsing transcript: %v", ErrProvider, err)
	}

	track := &Track{Language: selected.Language}
	for _, event := range payload.Events {
		var text strings.Builder
		for _, seg := range event.Segs {
			text.WriteString(seg.UTF8)
		}
		line := strings.TrimSpace(strings.ReplaceAll(text.String(), "\n", " "))
		if line == "" {
			continue
		}
		track.Entries = append(track.Entries, Entry{
			Start: float64(event.StartMs) / 1000,
			Text:  line,
		})
	}

	log.Printf("[DEBUG] Fetched %d caption entries for video %s (%s)", len(track.Entries), videoID, track.Language)
	return track, nil
}

func (c *Client) get(ctx context.Context, params url.Values) ([]byte, error) {
	endpoint := fmt.Sprintf("%s?%s", c.baseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, "GET", endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: executing request: %v", ErrProvider, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, APIError{
			Endpoint:   "timedtext",
			StatusCode: resp.StatusCode,
			Message:    "unexpected status",
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading response: %v", ErrProvider, err)
	}
	return body, nil
}

package metadata

import "context"

// Service defines the interface for video metadata lookups
type Service interface {
	// GetVideo returns title, description and channel for a video ID.
	// Returns ErrVideoNotFound when the platform does not know the ID.
	GetVideo(ctx context.Context, videoID string) (*Video, error)
}

package transcript

import (
	"context"

	"github.com/learningmode/video-api/internal/services/audio"
	"github.com/learningmode/video-api/internal/services/captions"
	"github.com/learningmode/video-api/internal/services/transcribe"
)

// Service is what the HTTP layer consumes
type Service interface {
	// Transcript returns the readable transcript lines for a video,
	// from captions when available and from speech-to-text otherwise.
	Transcript(ctx context.Context, videoID string) ([]Line, error)
}

// CaptionSource lists and fetches platform caption tracks
type CaptionSource interface {
	FetchTrack(ctx context.Context, videoID string) (*captions.Track, error)
}

// AudioExtractor produces a local audio file for a video
type AudioExtractor interface {
	Extract(ctx context.Context, videoID string) (*audio.Asset, error)
}

// BlobStager moves a local file into object storage
type BlobStager interface {
	Stage(ctx context.Context, localPath, bucket string) (string, error)
}

// JobRunner runs an asynchronous transcription job to completion
type JobRunner interface {
	Transcribe(ctx context.Context, videoID, mediaURI string) (*transcribe.Result, error)
}

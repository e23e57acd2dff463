package transcript

import (
	"context"
	"errors"
	"log"

	"github.com/learningmode/video-api/internal/services/captions"
)

// Pipeline resolves a transcript for a video: platform captions first, and
// only when the platform reports no captions at all, the slow path of
// extracting audio, staging it in object storage and running an
// asynchronous speech-to-text job.
type Pipeline struct {
	captions  CaptionSource
	extractor AudioExtractor
	stager    BlobStager
	runner    JobRunner
	bucket    string
}

// NewPipeline creates a transcript pipeline
func NewPipeline(captionSource CaptionSource, extractor AudioExtractor, stager BlobStager, runner JobRunner, bucket string) *Pipeline {
	return &Pipeline{
		captions:  captionSource,
		extractor: extractor,
		stager:    stager,
		runner:    runner,
		bucket:    bucket,
	}
}

// Transcript returns exactly one transcript representation per request:
// caption-derived lines, or job-derived lines, never a mix.
//
// Only ErrNoCaptions routes to the audio fallback. Other caption errors
// (network trouble, malformed payloads) do not prove the captions are
// absent, so they surface instead of triggering the expensive fallback.
// Every failure in the fallback chain is terminal.
func (p *Pipeline) Transcript(ctx context.Context, videoID string) ([]Line, error) {
	track, err := p.captions.FetchTrack(ctx, videoID)
	if err == nil {
		log.Printf("[DEBUG] Using %s caption track for video %s", track.Language, videoID)
		return FromCaptionTrack(track), nil
	}
	if !errors.Is(err, captions.ErrNoCaptions) {
		return nil, err
	}

	log.Printf("[DEBUG] No captions for video %s, falling back to audio transcription", videoID)

	asset, err := p.extractor.Extract(ctx, videoID)
	if err != nil {
		return nil, err
	}

	mediaURI, err := p.stager.Stage(ctx, asset.Path, p.bucket)
	if err != nil {
		return nil, err
	}

	result, err := p.runner.Transcribe(ctx, videoID, mediaURI)
	if err != nil {
		return nil, err
	}

	return FromJobResult(result), nil
}

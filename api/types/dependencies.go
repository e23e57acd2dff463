package types

import (
	"github.com/learningmode/video-api/internal/services/metadata"
	"github.com/learningmode/video-api/internal/services/transcript"
)

// Dependencies holds all the dependencies needed by handlers
type Dependencies struct {
	Metadata    metadata.Service
	Transcripts transcript.Service
}

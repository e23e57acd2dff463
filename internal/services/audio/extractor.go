package audio

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/lrstanley/go-ytdlp"
)

// Asset is a locally extracted audio file. The caller that stages it takes
// ownership of the file and is responsible for removing it.
type Asset struct {
	VideoID string
	Path    string
}

// Extractor downloads a video's best audio stream and transcodes it
type Extractor struct {
	outputDir string
	format    string
	quality   string
}

// Config holds configuration for the audio extractor
type Config struct {
	OutputDir string
	Format    string
	Quality   string
}

// NewExtractor creates a new audio extractor
func NewExtractor(cfg Config) *Extractor {
	if cfg.OutputDir == "" {
		cfg.OutputDir = os.TempDir()
	}
	if cfg.Format == "" {
		cfg.Format = "mp3"
	}
	if cfg.Quality == "" {
		cfg.Quality = "5"
	}
	return &Extractor{
		outputDir: cfg.OutputDir,
		format:    cfg.Format,
		quality:   cfg.Quality,
	}
}

// Extract downloads the best available audio stream for the video and
// transcodes it to the configured format. The output path carries a
// per-attempt random suffix so concurrent requests for the same video
// never collide.
func (e *Extractor) Extract(ctx context.Context, videoID string) (*Asset, error) {
	if err := os.MkdirAll(e.outputDir, 0o755); err != nil {
		return nil, fmt.Errorf("%w: creating output directory: %v", ErrExtraction, err)
	}

	outputPath := filepath.Join(e.outputDir, fmt.Sprintf("%s-%s.%s", videoID, attemptSuffix(), e.format))
	log.Printf("[DEBUG] Extracting audio for video %s to %s", videoID, outputPath)

	dl := ytdlp.New().
		Format("bestaudio/best").
		ExtractAudio().
		AudioFormat(e.format).
		AudioQuality(e.quality).
		NoPlaylist().
		Output(outputPath)

	result, err := dl.Run(ctx, "https://www.youtube.com/watch?v="+videoID)
	if err != nil {
		if result != nil && result.Stderr != "" {
			return nil, fmt.Errorf("%w: yt-dlp: %v: %s", ErrExtraction, err, result.Stderr)
		}
		return nil, fmt.Errorf("%w: yt-dlp: %v", ErrExtraction, err)
	}

	finalPath, err := resolveArtifact(outputPath, e.format)
	if err != nil {
		return nil, err
	}

	log.Printf("[DEBUG] Extracted audio artifact: %s", finalPath)
	return &Asset{VideoID: videoID, Path: finalPath}, nil
}

// resolveArtifact locates the extracted file on disk. The audio postprocessor
// sometimes appends another format extension to the requested output path, so
// both spellings are checked before giving up.
func resolveArtifact(outputPath, format string) (string, error) {
	if _, err := os.Stat(outputPath); err == nil {
		return outputPath, nil
	}

	doubled := outputPath + "." + format
	if _, err := os.Stat(doubled); err == nil {
		return doubled, nil
	}

	return "", fmt.Errorf("%w: no output file at %s", ErrExtraction, outputPath)
}

func attemptSuffix() string {
	var b [4]byte
	if _, err := rand.Read(b[:]); err != nil {
		// rand.Read only fails when the OS entropy source is broken
		return "0000"
	}
	return hex.EncodeToString(b[:])
}

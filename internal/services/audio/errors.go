package audio

import "errors"

var (
	// ErrExtraction is returned when the audio download or transcode fails,
	// or when no output artifact exists afterwards. There is no further
	// fallback behind this failure.
	ErrExtraction = errors.New("audio extraction failed")
)

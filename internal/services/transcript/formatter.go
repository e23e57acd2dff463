package transcript

import (
	"strconv"
	"strings"

	"github.com/learningmode/video-api/internal/services/captions"
	"github.com/learningmode/video-api/internal/services/transcribe"
)

// segmentWordLimit is how many recognized words close a segment. Fixed-size
// windowing, not sentence detection.
const segmentWordLimit = 5

// Line is one timestamped transcript line returned to the caller
type Line struct {
	Start float64 `json:"start"` // seconds from the start of the video
	Text  string  `json:"text"`
}

// FromCaptionTrack converts caption entries one-to-one into lines, keeping
// order, timestamps and text unchanged.
func FromCaptionTrack(track *captions.Track) []Line {
	lines := make([]Line, 0, len(track.Entries))
	for _, entry := range track.Entries {
		lines = append(lines, Line{Start: entry.Start, Text: entry.Text})
	}
	return lines
}

// FromJobResult groups recognized words into fixed-size segments. Only
// pronunciation items count; punctuation and other non-word items are
// dropped entirely and never extend or reset a segment. Each segment is
// stamped with its first word's start time, and a trailing partial segment
// is always emitted.
func FromJobResult(result *transcribe.Result) []Line {
	var (
		lines   []Line
		words   []string
		started bool
		start   float64
	)

	flush := func() {
		if len(words) == 0 {
			return
		}
		lines = append(lines, Line{Start: start, Text: strings.Join(words, " ")})
		words = nil
		started = false
	}

	for _, item := range result.Results.Items {
		if item.Type != transcribe.ItemTypePronunciation {
			continue
		}

		word := item.BestContent()
		if word == "" {
			continue
		}

		if !started {
			start = parseSeconds(item.StartTime)
			started = true
		}
		words = append(words, word)

		if len(words) >= segmentWordLimit {
			flush()
		}
	}
	flush()

	return lines
}

func parseSeconds(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

package transcript

import (
	"fmt"
	"testing"

	"github.com/learningmode/video-api/internal/services/captions"
	"github.com/learningmode/video-api/internal/services/transcribe"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func word(start string, content string) transcribe.Item {
	return transcribe.Item{
		Type:         transcribe.ItemTypePronunciation,
		StartTime:    start,
		Alternatives: []transcribe.Alternative{{Confidence: "0.99", Content: content}},
	}
}

func punctuation(content string) transcribe.Item {
	return transcribe.Item{
		Type:         transcribe.ItemTypePunctuation,
		Alternatives: []transcribe.Alternative{{Content: content}},
	}
}

func jobResult(items ...transcribe.Item) *transcribe.Result {
	return &transcribe.Result{Results: transcribe.ResultData{Items: items}}
}

func TestFromCaptionTrackIsOneToOne(t *testing.T) {
	track := &captions.Track{
		Language: "en",
		Entries: []captions.Entry{
			{Start: 0, Text: "Hello"},
			{Start: 2, Text: "world"},
			{Start: 5.5, Text: "again"},
		},
	}

	lines := FromCaptionTrack(track)

	require.Len(t, lines, 3)
	assert.Equal(t, Line{Start: 0, Text: "Hello"}, lines[0])
	assert.Equal(t, Line{Start: 2, Text: "world"}, lines[1])
	assert.Equal(t, Line{Start: 5.5, Text: "again"}, lines[2])
}

func TestFromJobResultGroupsByFiveWords(t *testing.T) {
	var items []transcribe.Item
	for i := 0; i <= 6; i++ {
		items = append(items, word(fmt.Sprintf("%d.0", i), fmt.Sprintf("w%d", i)))
	}

	lines := FromJobResult(jobResult(items...))

	require.Len(t, lines, 2)
	assert.Equal(t, Line{Start: 0, Text: "w0 w1 w2 w3 w4"}, lines[0])
	assert.Equal(t, Line{Start: 5, Text: "w5 w6"}, lines[1])
}

func TestFromJobResultDropsPunctuation(t *testing.T) {
	lines := FromJobResult(jobResult(
		word("0.0", "one"),
		word("1.0", "two"),
		word("2.0", "three"),
		punctuation(","),
		word("3.0", "four"),
		word("4.0", "five"),
	))

	require.Len(t, lines, 1)
	assert.Equal(t, Line{Start: 0, Text: "one two three four five"}, lines[0])
}

func TestFromJobResultEmitsTrailingPartialSegment(t *testing.T) {
	lines := FromJobResult(jobResult(
		word("1.5", "only"),
		word("2.0", "three"),
		word("2.5", "words"),
	))

	require.Len(t, lines, 1)
	assert.Equal(t, Line{Start: 1.5, Text: "only three words"}, lines[0])
}

func TestFromJobResultPunctuationDoesNotOpenSegment(t *testing.T) {
	// A leading non-word item must not claim the segment timestamp
	lines := FromJobResult(jobResult(
		punctuation("."),
		word("3.0", "word"),
	))

	require.Len(t, lines, 1)
	assert.Equal(t, Line{Start: 3, Text: "word"}, lines[0])
}

func TestFromJobResultTakesBestAlternative(t *testing.T) {
	item := transcribe.Item{
		Type:      transcribe.ItemTypePronunciation,
		StartTime: "0.0",
		Alternatives: []transcribe.Alternative{
			{Confidence: "0.95", Content: "best"},
			{Confidence: "0.40", Content: "worst"},
		},
	}

	lines := FromJobResult(jobResult(item))

	require.Len(t, lines, 1)
	assert.Equal(t, "best", lines[0].Text)
}

func TestFromJobResultEmptyInput(t *testing.T) {
	assert.Empty(t, FromJobResult(jobResult()))
	assert.Empty(t, FromJobResult(jobResult(punctuation("."))))
}

package transcribe

// Item type tags used by the transcription service
const (
	ItemTypePronunciation = "pronunciation"
	ItemTypePunctuation   = "punctuation"
)

// Result is the raw transcription job output as published by the service
type Result struct {
	JobName   string     `json:"jobName"`
	AccountID string     `json:"accountId"`
	Status    string     `json:"status"`
	Results   ResultData `json:"results"`
}

// ResultData holds the recognized items and the flattened transcript text
type ResultData struct {
	Transcripts []TranscriptText `json:"transcripts"`
	Items       []Item           `json:"items"`
}

// TranscriptText is the full transcript as one string
type TranscriptText struct {
	Transcript string `json:"transcript"`
}

// Item is a single recognized unit: a spoken word or a punctuation mark.
// Start and end times are decimal-second strings and are only present on
// pronunciation items.
type Item struct {
	Type         string        `json:"type"`
	StartTime    string        `json:"start_time"`
	EndTime      string        `json:"end_time"`
	Alternatives []Alternative `json:"alternatives"`
}

// Alternative is one candidate reading of an item, best guess first
type Alternative struct {
	Confidence string `json:"confidence"`
	Content    string `json:"content"`
}

// BestContent returns the top-ranked alternative's text, or "" when the
// service returned none.
func (i Item) BestContent() string {
	if len(i.Alternatives) == 0 {
		return ""
	}
	return i.Alternatives[0].Content
}

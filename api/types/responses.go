package types

// Status constants for API responses
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// TranscriptUnavailable is returned in place of transcript lines when
// every way of producing a transcript has failed. Metadata is still
// served in that case.
const TranscriptUnavailable = "Transcript could not be fetched."

// VideoInfoResponse is the combined metadata + transcript payload.
// Transcript is either a []transcript.Line or the TranscriptUnavailable
// placeholder string.
type VideoInfoResponse struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Channel     string `json:"channel"`
	Transcript  any    `json:"transcript"`
}

// ErrorResponse for error responses
type ErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

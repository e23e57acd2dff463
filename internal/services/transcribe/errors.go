package transcribe

import "errors"

// Common errors
var (
	// ErrSubmission is returned when the job could not be started at all
	// (bad media reference, quota, permissions).
	ErrSubmission = errors.New("transcription submission failed")

	// ErrJobFailed is returned when the service reports the job terminal
	// and failed.
	ErrJobFailed = errors.New("transcription job failed")

	// ErrPollTimeout is returned when the job did not reach a terminal
	// status within the configured wait budget.
	ErrPollTimeout = errors.New("transcription job timed out")
)

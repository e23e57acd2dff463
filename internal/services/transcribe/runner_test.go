package transcribe

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/service/transcribeservice"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTranscribe struct {
	startErr   error
	startInput *transcribeservice.StartTranscriptionJobInput

	// statuses are returned by successive GetTranscriptionJob calls; the
	// last entry repeats once the slice is exhausted.
	statuses      []string
	failureReason string
	resultURI     string
	getCalls      int
}

func (f *fakeTranscribe) StartTranscriptionJobWithContext(ctx aws.Context, input *transcribeservice.StartTranscriptionJobInput, opts ...request.Option) (*transcribeservice.StartTranscriptionJobOutput, error) {
	f.startInput = input
	if f.startErr != nil {
		return nil, f.startErr
	}
	return &transcribeservice.StartTranscriptionJobOutput{}, nil
}

func (f *fakeTranscribe) GetTranscriptionJobWithContext(ctx aws.Context, input *transcribeservice.GetTranscriptionJobInput, opts ...request.Option) (*transcribeservice.GetTranscriptionJobOutput, error) {
	idx := f.getCalls
	if idx >= len(f.statuses) {
		idx = len(f.statuses) - 1
	}
	f.getCalls++

	status := f.statuses[idx]
	job := &transcribeservice.TranscriptionJob{
		TranscriptionJobName:   input.TranscriptionJobName,
		TranscriptionJobStatus: aws.String(status),
	}
	if status == transcribeservice.TranscriptionJobStatusCompleted {
		job.Transcript = &transcribeservice.Transcript{TranscriptFileUri: aws.String(f.resultURI)}
	}
	if status == transcribeservice.TranscriptionJobStatusFailed {
		job.FailureReason = aws.String(f.failureReason)
	}
	return &transcribeservice.GetTranscriptionJobOutput{TranscriptionJob: job}, nil
}

func fastConfig() Config {
	return Config{
		PollInterval: time.Millisecond,
		PollTimeout:  time.Second,
	}
}

func TestTranscribeHappyPath(t *testing.T) {
	resultServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{
			"jobName": "transcription-xyz789-1",
			"status": "COMPLETED",
			"results": {
				"transcripts": [{"transcript": "hello world"}],
				"items": [
					{"type": "pronunciation", "start_time": "0.0", "alternatives": [{"confidence": "0.99", "content": "hello"}]},
					{"type": "pronunciation", "start_time": "1.0", "alternatives": [{"confidence": "0.98", "content": "world"}]}
				]
			}
		}`))
	}))
	defer resultServer.Close()

	fake := &fakeTranscribe{
		statuses:  []string{transcribeservice.TranscriptionJobStatusInProgress, transcribeservice.TranscriptionJobStatusCompleted},
		resultURI: resultServer.URL,
	}
	runner := NewRunnerWithClient(fake, fastConfig())

	result, err := runner.Transcribe(context.Background(), "xyz789", "s3://bucket/xyz789.mp3")

	require.NoError(t, err)
	require.Len(t, result.Results.Items, 2)
	assert.Equal(t, "hello", result.Results.Items[0].BestContent())
	assert.GreaterOrEqual(t, fake.getCalls, 2)

	// Job identity: media reference and per-attempt unique name
	assert.Equal(t, "s3://bucket/xyz789.mp3", aws.StringValue(fake.startInput.Media.MediaFileUri))
	assert.True(t, strings.HasPrefix(aws.StringValue(fake.startInput.TranscriptionJobName), "transcription-xyz789-"))
	assert.Equal(t, "en-US", aws.StringValue(fake.startInput.LanguageCode))
	assert.Equal(t, "mp3", aws.StringValue(fake.startInput.MediaFormat))
}

func TestTranscribeSubmissionFailure(t *testing.T) {
	fake := &fakeTranscribe{startErr: errors.New("insufficient permissions")}
	runner := NewRunnerWithClient(fake, fastConfig())

	_, err := runner.Transcribe(context.Background(), "xyz789", "s3://bucket/xyz789.mp3")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSubmission)
	assert.Zero(t, fake.getCalls, "submit failure must not start polling")
}

func TestTranscribeJobFailure(t *testing.T) {
	fake := &fakeTranscribe{
		statuses:      []string{transcribeservice.TranscriptionJobStatusFailed},
		failureReason: "unsupported media",
	}
	runner := NewRunnerWithClient(fake, fastConfig())

	_, err := runner.Transcribe(context.Background(), "xyz789", "s3://bucket/xyz789.mp3")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrJobFailed)
	assert.Contains(t, err.Error(), "unsupported media")
}

func TestTranscribePollTimeout(t *testing.T) {
	fake := &fakeTranscribe{statuses: []string{transcribeservice.TranscriptionJobStatusInProgress}}
	runner := NewRunnerWithClient(fake, Config{
		PollInterval: time.Millisecond,
		PollTimeout:  5 * time.Millisecond,
	})

	_, err := runner.Transcribe(context.Background(), "xyz789", "s3://bucket/xyz789.mp3")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrPollTimeout)
	assert.NotErrorIs(t, err, ErrJobFailed)
}

func TestTranscribeCancellation(t *testing.T) {
	fake := &fakeTranscribe{statuses: []string{transcribeservice.TranscriptionJobStatusInProgress}}
	runner := NewRunnerWithClient(fake, Config{
		PollInterval: time.Second,
		PollTimeout:  time.Minute,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := runner.Transcribe(ctx, "xyz789", "s3://bucket/xyz789.mp3")

	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestTranscribeCompletedWithoutResultLocation(t *testing.T) {
	fake := &fakeTranscribe{
		statuses:  []string{transcribeservice.TranscriptionJobStatusCompleted},
		resultURI: "",
	}
	runner := NewRunnerWithClient(fake, fastConfig())

	_, err := runner.Transcribe(context.Background(), "xyz789", "s3://bucket/xyz789.mp3")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrJobFailed)
}

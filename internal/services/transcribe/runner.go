package transcribe

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/transcribeservice"
)

// TranscribeAPI is the slice of the transcription service client the runner
// needs; *transcribeservice.TranscribeService satisfies it
type TranscribeAPI interface {
	StartTranscriptionJobWithContext(ctx aws.Context, input *transcribeservice.StartTranscriptionJobInput, opts ...request.Option) (*transcribeservice.StartTranscriptionJobOutput, error)
	GetTranscriptionJobWithContext(ctx aws.Context, input *transcribeservice.GetTranscriptionJobInput, opts ...request.Option) (*transcribeservice.GetTranscriptionJobOutput, error)
}

// Runner submits asynchronous transcription jobs and waits for their results
type Runner struct {
	client       TranscribeAPI
	httpClient   *http.Client
	language     string
	mediaFormat  string
	pollInterval time.Duration
	pollTimeout  time.Duration
	now          func() time.Time
}

// Config holds configuration for the job runner
type Config struct {
	Language     string
	MediaFormat  string
	PollInterval time.Duration
	PollTimeout  time.Duration
	// ResultTimeout bounds the plain HTTP fetch of the published result.
	ResultTimeout time.Duration
}

// NewRunner creates a runner backed by a real transcription service client
func NewRunner(awsSession *session.Session, cfg Config) *Runner {
	return NewRunnerWithClient(transcribeservice.New(awsSession), cfg)
}

// NewRunnerWithClient creates a runner with an injected service client
func NewRunnerWithClient(client TranscribeAPI, cfg Config) *Runner {
	if cfg.Language == "" {
		cfg.Language = "en-US"
	}
	if cfg.MediaFormat == "" {
		cfg.MediaFormat = "mp3"
	}
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = 5 * time.Second
	}
	if cfg.PollTimeout <= 0 {
		cfg.PollTimeout = 30 * time.Minute
	}
	if cfg.ResultTimeout <= 0 {
		cfg.ResultTimeout = 30 * time.Second
	}
	return &Runner{
		client:       client,
		httpClient:   &http.Client{Timeout: cfg.ResultTimeout},
		language:     cfg.Language,
		mediaFormat:  cfg.MediaFormat,
		pollInterval: cfg.PollInterval,
		pollTimeout:  cfg.PollTimeout,
		now:          time.Now,
	}
}

// Transcribe starts a job for the staged media reference, waits for it to
// reach a terminal status and returns the parsed result payload. The job
// name embeds the video ID and the submission time so retried requests for
// the same video never collide.
func (r *Runner) Transcribe(ctx context.Context, videoID, mediaURI string) (*Result, error) {
	jobName := fmt.Sprintf("transcription-%s-%d", videoID, r.now().Unix())
	log.Printf("[DEBUG] Starting transcription job %s for %s", jobName, mediaURI)

	_, err := r.client.StartTranscriptionJobWithContext(ctx, &transcribeservice.StartTranscriptionJobInput{
		TranscriptionJobName: aws.String(jobName),
		Media:                &transcribeservice.Media{MediaFileUri: aws.String(mediaURI)},
		MediaFormat:          aws.String(r.mediaFormat),
		LanguageCode:         aws.String(r.language),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: starting job %s: %v", ErrSubmission, jobName, err)
	}

	resultURI, err := r.waitForJob(ctx, jobName)
	if err != nil {
		return nil, err
	}

	return r.fetchResult(ctx, jobName, resultURI)
}

// waitForJob polls the job status on a fixed interval until it is terminal,
// the wait budget runs out, or the request context is canceled.
func (r *Runner) waitForJob(ctx context.Context, jobName string) (string, error) {
	deadline := r.now().Add(r.pollTimeout)

	for {
		out, err := r.client.GetTranscriptionJobWithContext(ctx, &transcribeservice.GetTranscriptionJobInput{
			TranscriptionJobName: aws.String(jobName),
		})
		if err != nil {
			return "", fmt.Errorf("polling transcription job %s: %w", jobName, err)
		}

		job := out.TranscriptionJob
		status := aws.StringValue(job.TranscriptionJobStatus)
		switch status {
		case transcribeservice.TranscriptionJobStatusCompleted:
			if job.Transcript == nil || aws.StringValue(job.Transcript.TranscriptFileUri) == "" {
				return "", fmt.Errorf("%w: job %s completed without a result location", ErrJobFailed, jobName)
			}
			return aws.StringValue(job.Transcript.TranscriptFileUri), nil
		case transcribeservice.TranscriptionJobStatusFailed:
			return "", fmt.Errorf("%w: job %s: %s", ErrJobFailed, jobName, aws.StringValue(job.FailureReason))
		}

		if r.now().After(deadline) {
			return "", fmt.Errorf("%w: job %s still %s after %s", ErrPollTimeout, jobName, status, r.pollTimeout)
		}

		log.Printf("[DEBUG] Transcription job %s is %s, waiting", jobName, status)
		select {
		case <-ctx.Done():
			return "", fmt.Errorf("waiting for transcription job %s: %w", jobName, ctx.Err())
		case <-time.After(r.pollInterval):
		}
	}
}

// fetchResult retrieves the published result payload with a plain HTTP GET
func (r *Runner) fetchResult(ctx context.Context, jobName, resultURI string) (*Result, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", resultURI, nil)
	if err != nil {
		return nil, fmt.Errorf("creating result request for job %s: %w", jobName, err)
	}

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching result for job %s: %w", jobName, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching result for job %s: status %d", jobName, resp.StatusCode)
	}

	var result Result
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decoding result for job %s: %w", jobName, err)
	}

	log.Printf("[DEBUG] Transcription job %s produced %d items", jobName, len(result.Results.Items))
	return &result, nil
}

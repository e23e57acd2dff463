package storage

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
)

// S3API is the slice of the S3 client the stager needs; *s3.S3 satisfies it
type S3API interface {
	PutObjectWithContext(ctx aws.Context, input *s3.PutObjectInput, opts ...request.Option) (*s3.PutObjectOutput, error)
}

// Stager uploads local files to S3 and hands back durable s3:// references
type Stager struct {
	s3 S3API
}

// NewStager creates a stager backed by a real S3 client
func NewStager(awsSession *session.Session) *Stager {
	return &Stager{s3: s3.New(awsSession)}
}

// NewStagerWithClient creates a stager with an injected S3 client
func NewStagerWithClient(client S3API) *Stager {
	return &Stager{s3: client}
}

// Stage uploads the file under its base name and returns the s3:// URI.
// On success the local file is deleted; on failure it is left in place so
// the caller can inspect or retry it.
func (s *Stager) Stage(ctx context.Context, localPath, bucket string) (string, error) {
	objectName := filepath.Base(localPath)

	f, err := os.Open(localPath)
	if err != nil {
		return "", fmt.Errorf("%w: opening %s: %v", ErrStaging, localPath, err)
	}
	defer f.Close()

	_, err = s.s3.PutObjectWithContext(ctx, &s3.PutObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(objectName),
		Body:   f,
	})
	if err != nil {
		return "", fmt.Errorf("%w: uploading %s to bucket %s: %v", ErrStaging, objectName, bucket, err)
	}

	uri := fmt.Sprintf("s3://%s/%s", bucket, objectName)
	log.Printf("[DEBUG] Uploaded %s to %s", localPath, uri)

	if err := os.Remove(localPath); err != nil {
		// The upload succeeded, so the reference is still valid; the
		// leftover file is only a disk-space concern.
		log.Printf("[ERROR] Failed to delete local file %s after upload: %v", localPath, err)
	}

	return uri, nil
}

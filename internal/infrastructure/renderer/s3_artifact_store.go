package renderer

import (
	"bytes"
	"context"
	"fmt"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

const defaultArtifactsBucket = "quote-artifacts"

// IArtifactStore stores rendered quote documents and returns an opaque
// reference the rest of the system can hand around.
type IArtifactStore interface {
	Put(ctx context.Context, key string, body []byte, contentType string) (string, error)
}

// S3ArtifactStore keeps rendered documents in an S3 bucket. The returned
// artifact reference is s3://bucket/key.
type S3ArtifactStore struct {
	client *s3.Client
	bucket string
}

var _ IArtifactStore = (*S3ArtifactStore)(nil)

func NewS3ArtifactStore(client *s3.Client) *S3ArtifactStore {
	bucket := os.Getenv("ARTIFACTS_BUCKET")
	if bucket == "" {
		bucket = defaultArtifactsBucket
	}
	return &S3ArtifactStore{client: client, bucket: bucket}
}

func (s *S3ArtifactStore) Put(ctx context.Context, key string, body []byte, contentType string) (string, error) {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("s3://%s/%s", s.bucket, key), nil
}

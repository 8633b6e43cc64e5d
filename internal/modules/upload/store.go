package upload

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stewartjane/packet-core/internal/config"
)

// Store writes blobs to an S3-compatible bucket and returns their public URL.
type Store interface {
	Put(ctx context.Context, key, contentType string, body io.Reader) (string, error)
}

// S3Store talks to AWS S3 or any compatible endpoint (R2, MinIO).
type S3Store struct {
	client *s3.Client
	opts   config.S3Options
}

func NewS3Store(opts config.S3Options) *S3Store {
	clientOpts := s3.Options{
		Region: opts.Region,
		Credentials: aws.NewCredentialsCache(
			credentials.NewStaticCredentialsProvider(opts.AccessKeyID, opts.SecretAccessKey, ""),
		),
		UsePathStyle: opts.PathStyleAccess,
	}
	if opts.Endpoint != "" {
		clientOpts.BaseEndpoint = aws.String(opts.Endpoint)
	}
	return &S3Store{client: s3.New(clientOpts), opts: opts}
}

// Configured reports whether the bucket settings are present. The admin UI
// disables uploads when they are not.
func (s *S3Store) Configured() bool {
	return s.opts.Bucket != "" && s.opts.AccessKeyID != ""
}

func (s *S3Store) Put(ctx context.Context, key, contentType string, body io.Reader) (string, error) {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.opts.Bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("put object %s: %w", key, err)
	}
	return s.publicURL(key), nil
}

// publicURL prefers the configured CDN domain, then the custom endpoint,
// then the default AWS hostname.
func (s *S3Store) publicURL(key string) string {
	if s.opts.CustomDomain != "" {
		return strings.TrimSuffix(s.opts.CustomDomain, "/") + "/" + key
	}
	if s.opts.Endpoint != "" {
		base := strings.TrimSuffix(s.opts.Endpoint, "/")
		if s.opts.PathStyleAccess {
			return fmt.Sprintf("%s/%s/%s", base, s.opts.Bucket, key)
		}
		return fmt.Sprintf("%s/%s", base, key)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.opts.Bucket, s.opts.Region, key)
}

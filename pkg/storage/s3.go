package storage

import (
	"context"
	"errors"
	"fmt"
	"io"

	appConfig "lolatlas/pkg/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// ErrBucketDisabled is returned when no credentials were configured.
var ErrBucketDisabled = errors.New("bucket credentials not configured")

// ObjectPutter is anything able to store an object under a key.
type ObjectPutter interface {
	PutObject(ctx context.Context, key string, body io.Reader, contentType string) error
}

// s3API is the subset of the s3 client used by the bucket.
type s3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// Bucket writes private objects to a single S3 bucket.
type Bucket struct {
	client s3API
	name   string
}

// NewBucket creates the s3 client for the given bucket name.
func NewBucket(cfg appConfig.BucketConfiguration, name string) (*Bucket, error) {
	if cfg.AccessKey == "" || cfg.AccessSecret == "" {
		return nil, ErrBucketDisabled
	}
	if name == "" {
		return nil, fmt.Errorf("no bucket name configured")
	}

	awsCfg := aws.Config{
		Region: cfg.Region,
		Credentials: aws.NewCredentialsCache(
			credentials.NewStaticCredentialsProvider(
				cfg.AccessKey,
				cfg.AccessSecret,
				"",
			),
		),
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	return &Bucket{client: client, name: name}, nil
}

// PutObject uploads the body under the given key.
func (b *Bucket) PutObject(ctx context.Context, key string, body io.Reader, contentType string) error {
	_, err := b.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(b.name),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
		ACL:         types.ObjectCannedACLPrivate,
	})
	if err != nil {
		return fmt.Errorf("failed to upload %s to S3 bucket %s: %w", key, b.name, err)
	}
	return nil
}

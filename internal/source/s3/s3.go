// Package s3 reads documents from an S3-compatible bucket (AWS S3 or MinIO).
package s3

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"

	"github.com/kailas-cloud/isstracker/internal/source"
)

// objectAPI is the subset of *s3.Client used by Source.
type objectAPI interface {
	GetObject(ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	HeadBucket(ctx context.Context, in *s3.HeadBucketInput, optFns ...func(*s3.Options)) (*s3.HeadBucketOutput, error)
}

// Config holds S3 source settings.
type Config struct {
	Bucket    string
	Prefix    string // optional key prefix, e.g. "feeds/2022-02"
	Region    string // default us-east-1
	Endpoint  string // optional; custom endpoint (e.g. MinIO)
	PathStyle bool
}

// Source reads documents as objects under Bucket/Prefix.
type Source struct {
	client objectAPI
	bucket string
	prefix string
}

var _ source.Source = (*Source)(nil)

// New creates an S3 source. Credentials come from the default AWS chain.
func New(ctx context.Context, cfg Config) (*Source, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("s3 bucket required")
	}
	region := cfg.Region
	if region == "" {
		region = "us-east-1"
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.UsePathStyle = cfg.PathStyle
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	})
	return newWithClient(client, cfg.Bucket, cfg.Prefix), nil
}

func newWithClient(client objectAPI, bucket, prefix string) *Source {
	return &Source{client: client, bucket: bucket, prefix: strings.Trim(prefix, "/")}
}

// Name returns "s3://bucket[/prefix]".
func (s *Source) Name() string {
	if s.prefix == "" {
		return "s3://" + s.bucket
	}
	return "s3://" + s.bucket + "/" + s.prefix
}

// Open fetches the object for the named document.
func (s *Source) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	key := s.keyFor(name)
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{Bucket: &s.bucket, Key: &key})
	if err != nil {
		if isNotFound(err) {
			return nil, &source.Error{Op: source.OpOpen, Document: name, Err: source.ErrNotFound}
		}
		return nil, &source.Error{Op: source.OpOpen, Document: name, Err: err}
	}
	return out.Body, nil
}

// Ping checks that the bucket exists and is accessible.
func (s *Source) Ping(ctx context.Context) error {
	if _, err := s.client.HeadBucket(ctx, &s3.HeadBucketInput{Bucket: &s.bucket}); err != nil {
		return &source.Error{Op: source.OpPing, Err: err}
	}
	return nil
}

func (s *Source) keyFor(name string) string {
	if s.prefix == "" {
		return name
	}
	return path.Join(s.prefix, name)
}

func isNotFound(err error) bool {
	var nsk *types.NoSuchKey
	if errors.As(err, &nsk) {
		return true
	}
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "NoSuchKey", "NotFound":
			return true
		}
	}
	return false
}

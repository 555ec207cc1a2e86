package storage

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/Gouravlamba/eminent-news/internal/config"
	"github.com/aws/aws-sdk-go-v2/aws"
	awscfg "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3Store uploads short videos to a bucket. A custom endpoint (MinIO,
// LocalStack) switches the client to path-style addressing.
type S3Store struct {
	uploader      *manager.Uploader
	bucket        string
	region        string
	endpoint      string
	publicBaseURL string
}

func NewS3Store(ctx context.Context, cfg config.S3Config) (*S3Store, error) {
	if !cfg.Enabled() {
		return nil, fmt.Errorf("s3 bucket is not configured")
	}

	opts := []func(*awscfg.LoadOptions) error{}
	if cfg.Region != "" {
		opts = append(opts, awscfg.WithRegion(cfg.Region))
	}
	awsCfg, err := awscfg.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	return &S3Store{
		uploader:      manager.NewUploader(client),
		bucket:        cfg.Bucket,
		region:        awsCfg.Region,
		endpoint:      cfg.Endpoint,
		publicBaseURL: cfg.PublicBaseURL,
	}, nil
}

func (s *S3Store) Upload(ctx context.Context, key, contentType string, body io.Reader) (string, error) {
	_, err := s.uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", err
	}
	return s.PublicURL(key), nil
}

// PublicURL is the address the object is served from.
func (s *S3Store) PublicURL(key string) string {
	escaped := escapeKey(key)
	switch {
	case s.publicBaseURL != "":
		return strings.TrimRight(s.publicBaseURL, "/") + "/" + escaped
	case s.endpoint != "":
		return strings.TrimRight(s.endpoint, "/") + "/" + s.bucket + "/" + escaped
	default:
		return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, escaped)
	}
}

func escapeKey(key string) string {
	parts := strings.Split(key, "/")
	for i, p := range parts {
		parts[i] = url.PathEscape(p)
	}
	return strings.Join(parts, "/")
}

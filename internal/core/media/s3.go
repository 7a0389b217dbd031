package media

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3Config holds the settings for an S3-backed media store. Endpoint and
// PublicBaseURL are for S3-compatible providers (MinIO, Supabase storage,
// R2); leave them empty for plain AWS.
type S3Config struct {
	Bucket          string
	Region          string
	Endpoint        string
	PublicBaseURL   string
	AccessKeyID     string
	SecretAccessKey string
}

// S3Store stores media objects in an S3 bucket and serves them through the
// bucket's public URL (or a configured CDN/base URL).
type S3Store struct {
	client        *s3.Client
	uploader      *manager.Uploader
	bucket        string
	publicBaseURL string
}

// NewS3Store builds an S3 media store from config. Static credentials are
// used when provided, otherwise the default AWS credential chain applies.
func NewS3Store(ctx context.Context, cfg S3Config) (*S3Store, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("s3 media store requires a bucket")
	}

	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}
	if cfg.AccessKeyID != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, "")))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	publicBase := cfg.PublicBaseURL
	if publicBase == "" {
		if cfg.Endpoint != "" {
			publicBase = strings.TrimSuffix(cfg.Endpoint, "/") + "/" + cfg.Bucket
		} else {
			publicBase = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.Bucket, cfg.Region)
		}
	}

	return &S3Store{
		client:        client,
		uploader:      manager.NewUploader(client),
		bucket:        cfg.Bucket,
		publicBaseURL: strings.TrimSuffix(publicBase, "/"),
	}, nil
}

// Upload writes the object and returns its public URL.
func (s *S3Store) Upload(ctx context.Context, key string, data []byte, mimeType string) (string, error) {
	_, err := s.uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(mimeType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload object %s: %w", key, err)
	}

	return s.publicBaseURL + "/" + key, nil
}

// Remove deletes the object. S3 DeleteObject is a no-op for missing keys,
// which matches the Store contract.
func (s *S3Store) Remove(ctx context.Context, key string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("failed to delete object %s: %w", key, err)
	}
	return nil
}

package infra

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"path/filepath"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/Vovarama1992/speakeasy/internal/ports"
)

type S3Options struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	Region    string
	Insecure  bool
}

type s3Client struct {
	client *minio.Client
	bucket string
	host   string
}

func NewS3Client(ctx context.Context, opts S3Options) (ports.S3Client, error) {
	if opts.Endpoint == "" || opts.Bucket == "" {
		return nil, errors.New("S3_ENDPOINT and S3_BUCKET are required")
	}

	client, err := minio.New(opts.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(opts.AccessKey, opts.SecretKey, ""),
		Secure: !opts.Insecure,
		Region: opts.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to init S3 client: %w", err)
	}

	exists, err := client.BucketExists(ctx, opts.Bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("bucket %q does not exist", opts.Bucket)
	}

	scheme := "https"
	if opts.Insecure {
		scheme = "http"
	}
	return &s3Client{
		client: client,
		bucket: opts.Bucket,
		host:   fmt.Sprintf("%s://%s", scheme, opts.Endpoint),
	}, nil
}

// PutObject uploads r and returns its public URL.
func (s *s3Client) PutObject(ctx context.Context, key string, r io.Reader, size int64, contentType string) (string, error) {
	_, err := s.client.PutObject(ctx, s.bucket, key, r, size, minio.PutObjectOptions{
		ContentType:  contentType,
		UserMetadata: map[string]string{"uploaded-at": time.Now().Format(time.RFC3339)},
	})
	if err != nil {
		return "", fmt.Errorf("upload failed: %w", err)
	}
	return buildPublicURL(s.host, s.bucket, key), nil
}

func buildPublicURL(host, bucket, key string) string {
	parts := strings.Split(filepath.ToSlash(key), "/")
	for i, p := range parts {
		parts[i] = url.PathEscape(p)
	}
	return fmt.Sprintf("%s/%s/%s", host, bucket, strings.Join(parts, "/"))
}

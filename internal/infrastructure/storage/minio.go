package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/johnquangdev/meeting-insights/pkg/config"
)

// MinIOClient wraps MinIO operations for uploaded meeting recordings
type MinIOClient struct {
	client     *minio.Client
	bucket     string
	publicURL  string
	maxRetries int
}

// NewMinIOClient creates a new MinIO client and ensures the recordings bucket
func NewMinIOClient(cfg *config.Config) (*MinIOClient, error) {
	minioClient, err := minio.New(cfg.Storage.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.Storage.AccessKeyID, cfg.Storage.SecretAccessKey, ""),
		Secure: cfg.Storage.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %w", err)
	}

	client := &MinIOClient{
		client:     minioClient,
		bucket:     cfg.Storage.BucketName,
		publicURL:  cfg.Storage.PublicURL,
		maxRetries: cfg.Analytics.UploadRetries,
	}

	ctx := context.Background()
	if err := client.ensureBucket(ctx); err != nil {
		return nil, fmt.Errorf("failed to initialize bucket: %w", err)
	}

	return client, nil
}

func (m *MinIOClient) ensureBucket(ctx context.Context) error {
	exists, err := m.client.BucketExists(ctx, m.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if !exists {
		if err := m.client.MakeBucket(ctx, m.bucket, minio.MakeBucketOptions{}); err != nil {
			return fmt.Errorf("failed to create bucket: %w", err)
		}
	}
	return nil
}

// UploadRecording uploads an audio recording, retrying transient failures
// with exponential backoff. The reader must be seekable across attempts, so
// content is buffered up front.
func (m *MinIOClient) UploadRecording(ctx context.Context, objectName string, reader io.Reader, contentType string) error {
	content, err := io.ReadAll(reader)
	if err != nil {
		return fmt.Errorf("failed to read recording: %w", err)
	}

	operation := func() error {
		_, err := m.client.PutObject(ctx, m.bucket, objectName,
			bytes.NewReader(content), int64(len(content)),
			minio.PutObjectOptions{ContentType: contentType})
		return err
	}

	policy := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewExponentialBackOff(), uint64(m.maxRetries)),
		ctx,
	)
	if err := backoff.Retry(operation, policy); err != nil {
		return fmt.Errorf("failed to upload recording after retries: %w", err)
	}
	return nil
}

// UploadText uploads text content such as exported reports
func (m *MinIOClient) UploadText(ctx context.Context, objectName string, content string) error {
	return m.UploadRecording(ctx, objectName, bytes.NewReader([]byte(content)), "text/plain")
}

// GetFileURL returns a presigned URL for accessing an uploaded object. When a
// public URL is configured the internal endpoint is swapped for it, which
// matters when MinIO sits behind a reverse proxy.
func (m *MinIOClient) GetFileURL(ctx context.Context, objectName string, expiry time.Duration) (string, error) {
	url, err := m.client.PresignedGetObject(ctx, m.bucket, objectName, expiry, nil)
	if err != nil {
		return "", fmt.Errorf("failed to generate presigned URL: %w", err)
	}

	if m.publicURL != "" {
		urlStr := url.String()
		bucketPos := len(url.Scheme) + 3 + len(url.Host)
		if bucketPos < len(urlStr) {
			return m.publicURL + urlStr[bucketPos:], nil
		}
	}

	return url.String(), nil
}

// ListRecordings lists uploaded objects under a prefix
func (m *MinIOClient) ListRecordings(ctx context.Context, prefix string) ([]string, error) {
	var files []string

	objectCh := m.client.ListObjects(ctx, m.bucket, minio.ListObjectsOptions{
		Prefix:    prefix,
		Recursive: true,
	})

	for object := range objectCh {
		if object.Err != nil {
			return nil, fmt.Errorf("error listing objects: %w", object.Err)
		}
		files = append(files, object.Key)
	}

	return files, nil
}

package storage

import (
	"context"
	"time"
)

// Storage defines the interface for resume object storage.
type Storage interface {
	// PresignUpload generates a pre-signed URL for uploading a resume.
	PresignUpload(ctx context.Context, key, contentType string, expiry time.Duration) (string, error)
	// PresignDownload generates a pre-signed URL for downloading a resume.
	PresignDownload(ctx context.Context, key string, expiry time.Duration) (string, error)
}

// Ensure S3Client implements Storage interface
var _ Storage = (*S3Client)(nil)

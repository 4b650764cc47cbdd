package storage

import (
	"context"
	"time"
)

// Package storage contains object storage abstractions for S3-compatible
// backends. Uploads never pass through this process: clients receive a
// presigned URL and talk to the backend directly.

// Storage issues time-limited presigned URLs against a single bucket.
type Storage interface {
	// PresignPut returns a URL permitting one direct upload of the given
	// content type under key, valid for expiry.
	PresignPut(ctx context.Context, key, contentType string, expiry time.Duration) (string, error)

	// Bucket reports the bucket name, used when recording storage paths.
	Bucket() string
}

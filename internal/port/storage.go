package port

import (
	"context"
	"io"
	"time"
)

// UploadInput describes one object write.
type UploadInput struct {
	Bucket      string
	Key         string
	Body        io.Reader
	ContentType string
	Size        int64
	// Filename, when set, is offered to browsers as the download name.
	Filename string
}

// UploadOutput reports where an upload landed.
type UploadOutput struct {
	Location string
	ETag     string
}

// ObjectStorage stores report outputs and draft evidence files. Keys are
// slash-separated; bucket is the S3 bucket or the top-level directory of the
// disk backend.
type ObjectStorage interface {
	Upload(ctx context.Context, input UploadInput) (*UploadOutput, error)
	Download(ctx context.Context, bucket, key string) ([]byte, error)
	Delete(ctx context.Context, bucket, key string) error
	// GetPresignedURL returns a time-limited download URL. Backends without
	// signing ignore expiry.
	GetPresignedURL(ctx context.Context, bucket, key string, expiry time.Duration) (string, error)
}

// Package local stores objects as plain files under a root directory. Buckets
// map to subdirectories.
package local

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"cmcreport/internal/domain"
	"cmcreport/internal/port"
)

type diskStorage struct {
	root string
}

// NewDiskStorage creates an ObjectStorage rooted at dir, creating it if needed.
func NewDiskStorage(dir string) (port.ObjectStorage, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("disk storage: %w", err)
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return nil, fmt.Errorf("disk storage mkdir: %w", err)
	}
	return &diskStorage{root: abs}, nil
}

// path resolves bucket/key inside root, rejecting keys that escape it.
func (d *diskStorage) path(bucket, key string) (string, error) {
	if key == "" {
		return "", fmt.Errorf("disk storage: empty key: %w", domain.ErrInvalidRequest)
	}
	p := filepath.Join(d.root, filepath.FromSlash(bucket), filepath.FromSlash(key))
	rel, err := filepath.Rel(d.root, p)
	if err != nil || rel == "." || strings.HasPrefix(rel, "..") {
		return "", fmt.Errorf("disk storage: key %q outside root: %w", key, domain.ErrInvalidRequest)
	}
	return p, nil
}

func (d *diskStorage) Upload(ctx context.Context, input port.UploadInput) (*port.UploadOutput, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	p, err := d.path(input.Bucket, input.Key)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return nil, fmt.Errorf("disk upload mkdir: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(p), ".upload-*")
	if err != nil {
		return nil, fmt.Errorf("disk upload: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, input.Body); err != nil {
		tmp.Close()
		return nil, fmt.Errorf("disk upload write: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return nil, fmt.Errorf("disk upload close: %w", err)
	}
	if err := os.Rename(tmp.Name(), p); err != nil {
		return nil, fmt.Errorf("disk upload rename: %w", err)
	}
	return &port.UploadOutput{Location: "file://" + filepath.ToSlash(p)}, nil
}

func (d *diskStorage) Download(ctx context.Context, bucket, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	p, err := d.path(bucket, key)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(p)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("disk download %s: %w", key, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("disk download %s: %w", key, err)
	}
	return data, nil
}

func (d *diskStorage) Delete(_ context.Context, bucket, key string) error {
	p, err := d.path(bucket, key)
	if err != nil {
		return err
	}
	if err := os.Remove(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("disk delete %s: %w", key, err)
	}
	return nil
}

// GetPresignedURL returns a file URL; local files have no expiry.
func (d *diskStorage) GetPresignedURL(_ context.Context, bucket, key string, _ time.Duration) (string, error) {
	p, err := d.path(bucket, key)
	if err != nil {
		return "", err
	}
	if _, err := os.Stat(p); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("disk presign %s: %w", key, domain.ErrNotFound)
		}
		return "", fmt.Errorf("disk presign %s: %w", key, err)
	}
	return "file://" + filepath.ToSlash(p), nil
}
